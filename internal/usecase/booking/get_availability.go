package booking

import (
	"context"

	"github.com/AdarCosmetics/salon-scheduler/internal/catalog"
	domain "github.com/AdarCosmetics/salon-scheduler/internal/domain/booking"
	"github.com/AdarCosmetics/salon-scheduler/internal/httperr"
	"github.com/AdarCosmetics/salon-scheduler/internal/schedule"
	"github.com/AdarCosmetics/salon-scheduler/internal/timezone"
)

type GetAvailability struct {
	repo domain.Repository

	today      func() string
	nowMinutes func() int
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{
		repo:       repo,
		today:      timezone.Today,
		nowMinutes: timezone.NowMinutes,
	}
}

// Execute computes the bookable slots for one date and one service.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	dateStr string,
	serviceID string,
) ([]schedule.Slot, error) {

	service, ok := catalog.ByID(serviceID)
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeServiceNotFound)
	}

	date, err := timezone.ParseDate(dateStr)
	if err != nil {
		return nil, schedule.FormatError{Value: dateStr}
	}

	input, err := uc.loadDay(ctx, dateStr)
	if err != nil {
		return nil, err
	}

	// same-day cutoff applies only when the target date is today
	nowMinutes := -1
	if dateStr == uc.today() {
		nowMinutes = uc.nowMinutes()
	}

	return schedule.AvailableSlots(date, *input, service.DurationMinutes, nowMinutes)
}

// loadDay gathers everything the engine needs for one date: the full-day
// block flag, the optional schedule override and the raw busy ranges.
func (uc *GetAvailability) loadDay(
	ctx context.Context,
	dateStr string,
) (*schedule.DayInput, error) {

	blocked, err := uc.repo.IsDateBlocked(ctx, dateStr)
	if err != nil {
		return nil, err
	}
	if blocked {
		return &schedule.DayInput{FullyBlocked: true}, nil
	}

	var override *schedule.Override
	if ds, err := uc.repo.GetScheduleOverride(ctx, dateStr); err != nil {
		return nil, err
	} else if ds != nil {
		override = &schedule.Override{StartTime: ds.StartTime, EndTime: ds.EndTime}
	}

	bookings, err := uc.repo.ListBookingsForDate(ctx, dateStr)
	if err != nil {
		return nil, err
	}

	blockedSlots, err := uc.repo.ListBlockedSlotsForDate(ctx, dateStr)
	if err != nil {
		return nil, err
	}

	busy := make([]schedule.TimeRange, 0, len(bookings)+len(blockedSlots))
	for _, b := range bookings {
		busy = append(busy, schedule.TimeRange{StartTime: b.StartTime, EndTime: b.EndTime})
	}
	for _, s := range blockedSlots {
		busy = append(busy, schedule.TimeRange{StartTime: s.StartTime, EndTime: s.EndTime})
	}

	return &schedule.DayInput{Override: override, Busy: busy}, nil
}
