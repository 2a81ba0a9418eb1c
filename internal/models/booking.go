package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ServiceID       string `gorm:"size:50;not null" json:"service_id"`
	ServiceTitle    string `gorm:"size:100;not null" json:"service_title"`
	ServiceDuration int    `json:"service_duration"`

	Date      string `gorm:"size:10;index;not null" json:"date"` // YYYY-MM-DD
	StartTime string `gorm:"size:5;not null" json:"start_time"`  // HH:MM
	EndTime   string `gorm:"size:5;not null" json:"end_time"`    // HH:MM

	CustomerName  string `gorm:"size:100;not null" json:"customer_name"`
	CustomerPhone string `gorm:"size:20;index;not null" json:"customer_phone"` // digits only

	CancellationToken string `gorm:"size:36;uniqueIndex" json:"cancellation_token"`

	Status           string `gorm:"size:20;default:'confirmed'" json:"status"`
	IsVerified       bool   `gorm:"default:false" json:"is_verified"`
	VerificationCode string `gorm:"size:4" json:"-"`

	CancelledAt *time.Time `json:"cancelled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
