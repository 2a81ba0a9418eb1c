package booking

import (
	"context"
	"errors"
	"sync"

	"github.com/AdarCosmetics/salon-scheduler/internal/audit"
	"github.com/AdarCosmetics/salon-scheduler/internal/models"
)

// ======================================================
// FAKE REPOSITORY
// ======================================================

type fakeRepo struct {
	bookings     []models.Booking
	blockedSlots []models.BlockedTimeSlot
	blockedDates map[string]bool
	overrides    map[string]models.DailySchedule

	nextID uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		blockedDates: make(map[string]bool),
		overrides:    make(map[string]models.DailySchedule),
	}
}

func (r *fakeRepo) ListBookingsForDate(_ context.Context, date string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.Date == date && b.Status != "cancelled" {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListBlockedSlotsForDate(_ context.Context, date string) ([]models.BlockedTimeSlot, error) {
	var out []models.BlockedTimeSlot
	for _, s := range r.blockedSlots {
		if s.Date == date {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeRepo) IsDateBlocked(_ context.Context, date string) (bool, error) {
	return r.blockedDates[date], nil
}

func (r *fakeRepo) GetScheduleOverride(_ context.Context, date string) (*models.DailySchedule, error) {
	if ds, ok := r.overrides[date]; ok {
		return &ds, nil
	}
	return nil, nil
}

func (r *fakeRepo) CreateBooking(_ context.Context, b *models.Booking) error {
	r.nextID++
	b.ID = r.nextID
	r.bookings = append(r.bookings, *b)
	return nil
}

func (r *fakeRepo) UpdateBooking(_ context.Context, b *models.Booking) error {
	for i := range r.bookings {
		if r.bookings[i].ID == b.ID {
			r.bookings[i] = *b
			return nil
		}
	}
	return errors.New("booking not found")
}

func (r *fakeRepo) GetBookingByID(_ context.Context, id uint) (*models.Booking, error) {
	for i := range r.bookings {
		if r.bookings[i].ID == id {
			b := r.bookings[i]
			return &b, nil
		}
	}
	return nil, errors.New("booking not found")
}

func (r *fakeRepo) GetBookingByToken(_ context.Context, token string) (*models.Booking, error) {
	for i := range r.bookings {
		if r.bookings[i].CancellationToken == token {
			b := r.bookings[i]
			return &b, nil
		}
	}
	return nil, errors.New("booking not found")
}

func (r *fakeRepo) FindLatestUnverified(_ context.Context, phone, code string) (*models.Booking, error) {
	// bookings are appended in creation order, so walk backwards
	for i := len(r.bookings) - 1; i >= 0; i-- {
		b := r.bookings[i]
		if b.CustomerPhone == phone && b.VerificationCode == code && !b.IsVerified {
			return &b, nil
		}
	}
	return nil, nil
}

// ======================================================
// FAKE SMS SENDER
// ======================================================

type fakeSender struct {
	mu    sync.Mutex
	sent  []string // "phone:code"
	fail  bool
	calls int
}

func (s *fakeSender) SendVerificationCode(_ context.Context, phone, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.fail {
		return errors.New("gateway down")
	}
	s.sent = append(s.sent, phone+":"+code)
	return nil
}

// ======================================================
// IN-MEMORY AUDIT SINK
// ======================================================

type memorySink struct {
	mu      sync.Mutex
	entries []audit.Event
}

func (s *memorySink) Log(eventType, description string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, audit.Event{Type: eventType, Description: description})
	return nil
}

func (s *memorySink) types() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e.Type)
	}
	return out
}
