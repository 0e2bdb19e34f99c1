package entity

import (
	"gorm.io/gorm"
)

const (
	BikeAvailable = "available"
	BikeRented    = "rented"
)

type Bike struct {
	gorm.Model
	Name   string `json:"name"`
	Plate  string `gorm:"uniqueIndex;not null" json:"plate"`
	Status string `gorm:"not null;default:available" json:"status"` // available / rented

	// last known GPS fix, nil when the tracker never reported
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`

	Amenities []string `gorm:"serializer:json" json:"amenities"`
	PhotoURL  string   `json:"photoUrl"`
}
