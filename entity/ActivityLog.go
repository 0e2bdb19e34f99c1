package entity

import (
	"gorm.io/gorm"
)

// Audit trail of admin actions. Append-only.
type ActivityLog struct {
	gorm.Model
	Type        string `json:"type"` // e.g. application_status, bike_assign, user_delete
	AdminName   string `json:"adminName"`
	AdminEmail  string `json:"adminEmail"`
	Description string `json:"description"`
}
