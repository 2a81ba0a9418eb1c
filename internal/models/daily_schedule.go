package models

import "time"

// Per-date override of the default working hours.
type DailySchedule struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Date      string `gorm:"size:10;uniqueIndex;not null" json:"date"` // YYYY-MM-DD
	StartTime string `gorm:"size:5;not null" json:"start_time"`        // HH:MM
	EndTime   string `gorm:"size:5;not null" json:"end_time"`          // HH:MM

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
