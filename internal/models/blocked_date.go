package models

import "time"

// Full-day closure. A row for a date makes it unbookable regardless of
// working hours or overrides.
type BlockedDate struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Date string `gorm:"size:10;uniqueIndex;not null" json:"date"` // YYYY-MM-DD

	CreatedAt time.Time `json:"created_at"`
}
