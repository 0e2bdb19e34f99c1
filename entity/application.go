package entity

import (
	"time"

	"gorm.io/gorm"
)

// A rental application: the bike link stays empty until an admin assigns one.
type Application struct {
	gorm.Model

	// applicant snapshot at submission time
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`

	// academic
	StudentNumber string `json:"studentNumber"`
	Program       string `json:"program"`
	YearLevel     string `json:"yearLevel"`

	// address
	AddressLine string `json:"addressLine"`
	City        string `json:"city"`
	Province    string `json:"province"`
	PostalCode  string `json:"postalCode"`

	// uploaded scan of the registration/ID document
	DocumentURL string `gorm:"column:document_url" json:"documentUrl"`

	// who applied
	UserID uint `json:"userId" gorm:"index"`
	User   User `json:"user" gorm:"foreignKey:UserID;references:ID"`

	// lifecycle: pending / approved / rejected / assigned / active / completed
	Status string `gorm:"not null;default:pending" json:"status"`

	// set while a bike is assigned, cleared on termination
	BikeID     *uint      `json:"bikeId,omitempty"`
	Bike       *Bike      `json:"bike,omitempty" gorm:"foreignKey:BikeID"`
	AssignedAt *time.Time `json:"assignedAt,omitempty"`

	AdminID      *uint      `json:"adminId,omitempty"`
	ReviewedAt   *time.Time `json:"reviewedAt,omitempty"`
	RejectReason *string    `json:"rejectReason,omitempty"`
}
