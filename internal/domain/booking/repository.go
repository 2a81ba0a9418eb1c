package booking

import (
	"context"

	"github.com/AdarCosmetics/salon-scheduler/internal/models"
)

// Repository is everything the booking use cases need from the data store.
type Repository interface {
	// -------- Day reads (availability + conflict re-check) --------

	// ListBookingsForDate returns every non-cancelled booking on a date.
	ListBookingsForDate(ctx context.Context, date string) ([]models.Booking, error)

	ListBlockedSlotsForDate(ctx context.Context, date string) ([]models.BlockedTimeSlot, error)

	// IsDateBlocked reports whether the date has a full-day closure row.
	IsDateBlocked(ctx context.Context, date string) (bool, error)

	// GetScheduleOverride returns the per-date custom hours, or nil.
	GetScheduleOverride(ctx context.Context, date string) (*models.DailySchedule, error)

	// -------- Booking writes --------

	CreateBooking(ctx context.Context, b *models.Booking) error

	UpdateBooking(ctx context.Context, b *models.Booking) error

	// -------- Lookups --------

	GetBookingByID(ctx context.Context, id uint) (*models.Booking, error)

	GetBookingByToken(ctx context.Context, token string) (*models.Booking, error)

	// FindLatestUnverified returns the most recently created unverified
	// booking matching phone and code, or nil when there is none.
	FindLatestUnverified(ctx context.Context, phone, code string) (*models.Booking, error)
}
