package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AdarCosmetics/salon-scheduler/internal/httperr"
	"github.com/AdarCosmetics/salon-scheduler/internal/models"
	"github.com/AdarCosmetics/salon-scheduler/internal/schedule"
)

func newAvailabilityUC(repo *fakeRepo) *GetAvailability {
	uc := NewGetAvailability(repo)
	uc.today = func() string { return "2000-01-01" } // never "today" unless a test says so
	uc.nowMinutes = func() int { return 0 }
	return uc
}

func slotKeys(slots []schedule.Slot) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.Start+"-"+s.End)
	}
	return out
}

func TestGetAvailabilityEmptySunday(t *testing.T) {
	uc := newAvailabilityUC(newFakeRepo())

	slots, err := uc.Execute(context.Background(), testSunday, "anatomical-gel")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"09:00-10:30", "10:30-12:00", "12:00-13:30",
		"13:30-15:00", "15:00-16:30", "16:30-18:00",
	}, slotKeys(slots))
}

func TestGetAvailabilitySkipsBusyRanges(t *testing.T) {
	repo := newFakeRepo()
	repo.bookings = append(repo.bookings, models.Booking{
		Date: testSunday, StartTime: "09:00", EndTime: "10:30", Status: "confirmed",
	})
	repo.blockedSlots = append(repo.blockedSlots, models.BlockedTimeSlot{
		Date: testSunday, StartTime: "12:00", EndTime: "13:00",
	})
	uc := newAvailabilityUC(repo)

	slots, err := uc.Execute(context.Background(), testSunday, "anatomical-gel")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"10:30-12:00",
		"13:00-14:30", "14:30-16:00", "16:00-17:30",
	}, slotKeys(slots))
}

func TestGetAvailabilityCancelledBookingsIgnored(t *testing.T) {
	repo := newFakeRepo()
	repo.bookings = append(repo.bookings, models.Booking{
		Date: testSunday, StartTime: "09:00", EndTime: "10:30", Status: "cancelled",
	})
	uc := newAvailabilityUC(repo)

	slots, err := uc.Execute(context.Background(), testSunday, "anatomical-gel")
	require.NoError(t, err)
	assert.Len(t, slots, 6, "cancelled bookings free their slot")
}

func TestGetAvailabilityBlockedDate(t *testing.T) {
	repo := newFakeRepo()
	repo.blockedDates[testSunday] = true
	repo.overrides[testSunday] = models.DailySchedule{
		Date: testSunday, StartTime: "08:00", EndTime: "20:00",
	}
	uc := newAvailabilityUC(repo)

	slots, err := uc.Execute(context.Background(), testSunday, "gel-pedicure")
	require.NoError(t, err)
	assert.Empty(t, slots, "full-day block wins over the override")
}

func TestGetAvailabilityScheduleOverride(t *testing.T) {
	repo := newFakeRepo()
	repo.overrides[testSunday] = models.DailySchedule{
		Date: testSunday, StartTime: "10:00", EndTime: "13:00",
	}
	uc := newAvailabilityUC(repo)

	slots, err := uc.Execute(context.Background(), testSunday, "anatomical-gel")
	require.NoError(t, err)
	assert.Equal(t, []string{"10:00-11:30", "11:30-13:00"}, slotKeys(slots))
}

func TestGetAvailabilitySameDayCutoff(t *testing.T) {
	repo := newFakeRepo()
	uc := NewGetAvailability(repo)
	uc.today = func() string { return testSunday }
	nowMin, err := schedule.ToMinutes("14:05")
	require.NoError(t, err)
	uc.nowMinutes = func() int { return nowMin }

	slots, err := uc.Execute(context.Background(), testSunday, "anatomical-gel")
	require.NoError(t, err)
	assert.Equal(t, []string{"15:00-16:30", "16:30-18:00"}, slotKeys(slots))

	// a different date is untouched by the cutoff
	slots, err = uc.Execute(context.Background(), "2025-06-09", "anatomical-gel")
	require.NoError(t, err)
	assert.Len(t, slots, 6)
}

func TestGetAvailabilityUnknownService(t *testing.T) {
	uc := newAvailabilityUC(newFakeRepo())

	_, err := uc.Execute(context.Background(), testSunday, "no-such-service")
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeServiceNotFound))
}

func TestGetAvailabilityBadDate(t *testing.T) {
	uc := newAvailabilityUC(newFakeRepo())

	_, err := uc.Execute(context.Background(), "08/06/2025", "gel-pedicure")
	require.Error(t, err)
	var fe schedule.FormatError
	assert.ErrorAs(t, err, &fe)
}
