package entity

import (
	"gorm.io/gorm"
)

// Per-user cumulative ride totals, upserted when a ride is recorded and
// when a rental ends.
type LeaderboardEntry struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex" json:"userId"`
	User   User `json:"user" gorm:"foreignKey:UserID;references:ID"`

	DistanceKm float64 `json:"distanceKm"`
	CO2SavedKg float64 `gorm:"column:co2_saved_kg" json:"co2SavedKg"`
}
