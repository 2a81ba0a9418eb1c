package models

import "time"

// Partial closure inside a working day (lunch break, personal appointment).
// Same overlap semantics as a booking.
type BlockedTimeSlot struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Date      string `gorm:"size:10;index;not null" json:"date"` // YYYY-MM-DD
	StartTime string `gorm:"size:5;not null" json:"start_time"`  // HH:MM
	EndTime   string `gorm:"size:5;not null" json:"end_time"`    // HH:MM

	CreatedAt time.Time `json:"created_at"`
}
