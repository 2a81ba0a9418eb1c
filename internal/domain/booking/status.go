package booking

import (
	"time"

	"github.com/AdarCosmetics/salon-scheduler/internal/httperr"
	"github.com/AdarCosmetics/salon-scheduler/internal/models"
)

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// ===============================
// Domain Actions
// ===============================

// Cancel is a soft delete: the row is never removed, only flagged.
// Cancelling twice is not an error; the operation is idempotent so stale
// cancellation links keep working.
func Cancel(b *models.Booking, now time.Time) bool {
	if Status(b.Status) == StatusCancelled {
		return false
	}
	b.Status = string(StatusCancelled)
	b.CancelledAt = &now
	return true
}

// Verify moves a booking from unverified to verified. One-way: there is no
// path back, and the code must string-match exactly.
func Verify(b *models.Booking, code string) error {
	if b.IsVerified {
		return nil
	}
	if b.VerificationCode == "" || b.VerificationCode != code {
		return httperr.ErrBusiness(httperr.CodeVerificationMismatch)
	}
	b.IsVerified = true
	return nil
}
