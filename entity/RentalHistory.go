package entity

import (
	"time"

	"gorm.io/gorm"
)

// RentalHistory is an append-only snapshot written when a rental ends.
// Plate and email are denormalized so the row survives bike/user deletion.
type RentalHistory struct {
	gorm.Model
	ApplicationID uint `json:"applicationId" gorm:"index"`
	UserID        uint `json:"userId" gorm:"index"`
	BikeID        uint `json:"bikeId"`

	BikePlate string `json:"bikePlate"`
	UserEmail string `json:"userEmail"`

	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}
