package booking

import (
	"context"
	"fmt"

	"github.com/AdarCosmetics/salon-scheduler/internal/audit"
	domain "github.com/AdarCosmetics/salon-scheduler/internal/domain/booking"
	"github.com/AdarCosmetics/salon-scheduler/internal/httperr"
	"github.com/AdarCosmetics/salon-scheduler/internal/models"
	"github.com/AdarCosmetics/salon-scheduler/internal/timezone"
)

type CancelByToken struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelByToken(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
) *CancelByToken {
	return &CancelByToken{
		repo:  repo,
		audit: auditDispatcher,
	}
}

// Lookup resolves a cancellation link. Already-cancelled bookings are a
// valid state, not an error, so stale links render an "already cancelled"
// page instead of a 404.
func (uc *CancelByToken) Lookup(ctx context.Context, token string) (*models.Booking, error) {
	b, err := uc.repo.GetBookingByToken(ctx, token)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeBookingNotFound)
	}
	return b, nil
}

// Execute cancels the booking behind a token. Idempotent: repeating the call
// reports alreadyCancelled instead of failing.
func (uc *CancelByToken) Execute(
	ctx context.Context,
	token string,
) (b *models.Booking, alreadyCancelled bool, err error) {

	b, err = uc.Lookup(ctx, token)
	if err != nil {
		return nil, false, err
	}

	if !domain.Cancel(b, timezone.Now()) {
		return b, true, nil
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, false, err
	}

	uc.audit.Dispatch(audit.Event{
		Type: audit.EventBookingCancelled,
		Description: fmt.Sprintf("תור בוטל: %s, %s בתאריך %s בשעה %s",
			b.CustomerName, b.ServiceTitle, b.Date, b.StartTime),
	})

	return b, false, nil
}
