package booking

import (
	"context"
	"fmt"
	"log"
	"math/rand"

	"github.com/google/uuid"

	"github.com/AdarCosmetics/salon-scheduler/internal/audit"
	"github.com/AdarCosmetics/salon-scheduler/internal/catalog"
	domain "github.com/AdarCosmetics/salon-scheduler/internal/domain/booking"
	"github.com/AdarCosmetics/salon-scheduler/internal/httperr"
	"github.com/AdarCosmetics/salon-scheduler/internal/models"
	"github.com/AdarCosmetics/salon-scheduler/internal/schedule"
	"github.com/AdarCosmetics/salon-scheduler/internal/session"
	"github.com/AdarCosmetics/salon-scheduler/internal/sms"
	"github.com/AdarCosmetics/salon-scheduler/internal/timezone"
	"github.com/AdarCosmetics/salon-scheduler/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	ServiceID     string
	Date          string // YYYY-MM-DD
	StartTime     string // HH:MM
	CustomerName  string
	CustomerPhone string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo     domain.Repository
	sessions session.Store
	sender   sms.Sender
	audit    *audit.Dispatcher

	newCode  func() string
	newToken func() string
}

func NewCreateBooking(
	repo domain.Repository,
	sessions session.Store,
	sender sms.Sender,
	auditDispatcher *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:     repo,
		sessions: sessions,
		sender:   sender,
		audit:    auditDispatcher,
		newCode: func() string {
			return fmt.Sprintf("%04d", rand.Intn(10000))
		},
		newToken: uuid.NewString,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	if !validators.IsValidIsraeliMobile(in.CustomerPhone) {
		return nil, httperr.ErrBusiness("invalid_phone")
	}
	phone := validators.PhoneDigits(in.CustomerPhone)

	service, ok := catalog.ByID(in.ServiceID)
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeServiceNotFound)
	}

	date, err := timezone.ParseDate(in.Date)
	if err != nil {
		return nil, schedule.FormatError{Value: in.Date}
	}

	start, err := schedule.ToMinutes(in.StartTime)
	if err != nil {
		return nil, err
	}
	end := start + service.DurationMinutes
	candidate := schedule.Interval{Start: start, End: end}

	// --------------------------------------------------
	// Conflict validation on fresh reads. The slot list
	// the customer picked from may be stale by now.
	// --------------------------------------------------

	blocked, err := uc.repo.IsDateBlocked(ctx, in.Date)
	if err != nil {
		return nil, err
	}
	if blocked {
		return nil, httperr.ErrBusiness(httperr.CodeDateBlocked)
	}

	var override *schedule.Override
	if ds, err := uc.repo.GetScheduleOverride(ctx, in.Date); err != nil {
		return nil, err
	} else if ds != nil {
		override = &schedule.Override{StartTime: ds.StartTime, EndTime: ds.EndTime}
	}

	hours, open, err := schedule.ResolveWorkingHours(date, override)
	if err != nil {
		return nil, err
	}
	if !open || start < hours.Open || end > hours.Close {
		return nil, httperr.ErrBusiness(httperr.CodeOutsideWorkingHours)
	}

	if err := uc.assertSlotFree(ctx, in.Date, candidate); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Verified session decides whether a code is needed
	// --------------------------------------------------

	sess, err := uc.sessions.Get(ctx, phone)
	if err != nil {
		// session store trouble only costs the customer a re-verification
		log.Println("session lookup failed:", err)
		sess = nil
	}

	code := ""
	if sess == nil {
		code = uc.newCode()
	}

	b := &models.Booking{
		ServiceID:         service.ID,
		ServiceTitle:      service.Title,
		ServiceDuration:   service.DurationMinutes,
		Date:              in.Date,
		StartTime:         schedule.ToHHMM(start),
		EndTime:           schedule.ToHHMM(end),
		CustomerName:      in.CustomerName,
		CustomerPhone:     phone,
		CancellationToken: uc.newToken(),
		Status:            string(domain.StatusConfirmed),
		IsVerified:        sess != nil,
		VerificationCode:  code,
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Best-effort side effects: SMS + audit never fail
	// the booking that was already persisted.
	// --------------------------------------------------

	if code != "" {
		if err := uc.sender.SendVerificationCode(ctx, phone, code); err != nil {
			log.Println("sms send failed:", err)
			uc.audit.Dispatch(audit.Event{
				Type:        audit.EventSMSFailed,
				Description: fmt.Sprintf("SMS נכשל ל-%s: %v", phone, err),
			})
		} else {
			uc.audit.Dispatch(audit.Event{
				Type:        audit.EventSMSSent,
				Description: fmt.Sprintf("SMS נשלח בהצלחה ל-%s", phone),
			})
		}
	}

	uc.audit.Dispatch(audit.Event{
		Type: audit.EventBookingCreated,
		Description: fmt.Sprintf("תור חדש: %s, %s בתאריך %s בשעה %s",
			b.CustomerName, b.ServiceTitle, b.Date, b.StartTime),
	})

	return b, nil
}

// assertSlotFree re-derives the busy intervals and rejects the candidate on
// any overlap. The read and the insert are not transactional, so two
// concurrent submissions for the same slot can both pass.
func (uc *CreateBooking) assertSlotFree(
	ctx context.Context,
	date string,
	candidate schedule.Interval,
) error {

	bookings, err := uc.repo.ListBookingsForDate(ctx, date)
	if err != nil {
		return err
	}
	blockedSlots, err := uc.repo.ListBlockedSlotsForDate(ctx, date)
	if err != nil {
		return err
	}

	ranges := make([]schedule.TimeRange, 0, len(bookings)+len(blockedSlots))
	for _, b := range bookings {
		ranges = append(ranges, schedule.TimeRange{StartTime: b.StartTime, EndTime: b.EndTime})
	}
	for _, s := range blockedSlots {
		ranges = append(ranges, schedule.TimeRange{StartTime: s.StartTime, EndTime: s.EndTime})
	}

	busy, err := schedule.BusyIntervals(ranges)
	if err != nil {
		return err
	}

	if schedule.ConflictsWith(candidate, busy) {
		return httperr.ErrBusiness(httperr.CodeSlotConflict)
	}
	return nil
}
