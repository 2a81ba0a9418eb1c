package booking

import (
	"context"
	"fmt"

	"github.com/AdarCosmetics/salon-scheduler/internal/audit"
	domain "github.com/AdarCosmetics/salon-scheduler/internal/domain/booking"
	"github.com/AdarCosmetics/salon-scheduler/internal/httperr"
	"github.com/AdarCosmetics/salon-scheduler/internal/models"
	"github.com/AdarCosmetics/salon-scheduler/internal/session"
	"github.com/AdarCosmetics/salon-scheduler/internal/validators"
)

type VerifyCodeInput struct {
	Phone     string
	Code      string
	BookingID *uint // nil = find-by-phone flow
}

type VerifyCode struct {
	repo     domain.Repository
	sessions session.Store
	audit    *audit.Dispatcher
}

func NewVerifyCode(
	repo domain.Repository,
	sessions session.Store,
	auditDispatcher *audit.Dispatcher,
) *VerifyCode {
	return &VerifyCode{
		repo:     repo,
		sessions: sessions,
		audit:    auditDispatcher,
	}
}

// Execute flips a booking to verified on an exact code match. Wrong codes
// leave the booking untouched and the caller may retry.
func (uc *VerifyCode) Execute(ctx context.Context, in VerifyCodeInput) (*models.Booking, error) {
	phone := validators.PhoneDigits(in.Phone)

	if in.BookingID != nil {
		return uc.verifyExactBooking(ctx, phone, in.Code, *in.BookingID)
	}
	return uc.verifyByPhone(ctx, phone, in.Code)
}

// Booking flow: the caller knows which booking it just created.
func (uc *VerifyCode) verifyExactBooking(
	ctx context.Context,
	phone string,
	code string,
	bookingID uint,
) (*models.Booking, error) {

	b, err := uc.repo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeBookingNotFound)
	}

	if b.CustomerPhone != phone {
		return nil, httperr.ErrBusiness(httperr.CodePhoneMismatch)
	}

	if err := domain.Verify(b, code); err != nil {
		uc.audit.Dispatch(audit.Event{
			Type:        audit.EventVerificationFailed,
			Description: fmt.Sprintf("אימות נכשל ל-%s: קוד שגוי", phone),
		})
		return nil, err
	}

	return uc.finish(ctx, b, phone)
}

// "My appointments" flow: match the latest unverified booking by phone+code.
func (uc *VerifyCode) verifyByPhone(
	ctx context.Context,
	phone string,
	code string,
) (*models.Booking, error) {

	b, err := uc.repo.FindLatestUnverified(ctx, phone, code)
	if err != nil {
		return nil, err
	}
	if b == nil {
		uc.audit.Dispatch(audit.Event{
			Type:        audit.EventVerificationFailed,
			Description: fmt.Sprintf("אימות נכשל ל-%s: קוד שגוי", phone),
		})
		return nil, httperr.ErrBusiness(httperr.CodeVerificationMismatch)
	}

	if err := domain.Verify(b, code); err != nil {
		return nil, err
	}

	return uc.finish(ctx, b, phone)
}

func (uc *VerifyCode) finish(
	ctx context.Context,
	b *models.Booking,
	phone string,
) (*models.Booking, error) {

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	// remember the phone for 24h so the next booking skips the SMS
	if err := uc.sessions.Set(ctx, phone); err != nil {
		// losing the session only costs a future re-verification
		uc.audit.Dispatch(audit.Event{
			Type:        audit.EventVerificationFailed,
			Description: fmt.Sprintf("שמירת סשן נכשלה ל-%s", phone),
		})
	}

	uc.audit.Dispatch(audit.Event{
		Type:        audit.EventVerified,
		Description: fmt.Sprintf("תור אומת: %s ל-%s", b.CustomerName, phone),
	})

	return b, nil
}
