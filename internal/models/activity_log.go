package models

import "time"

// Append-only audit trail. Write-only for the booking engine, read only by
// the admin dashboard.
type ActivityLog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Type        string `gorm:"size:50;not null" json:"type"`
	Description string `gorm:"type:text" json:"description"`

	CreatedAt time.Time `json:"created_at"`
}
