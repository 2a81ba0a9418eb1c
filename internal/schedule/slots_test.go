package schedule

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func slotStrings(slots []Slot) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.Start+"-"+s.End)
	}
	return out
}

func TestBuildSlotsBackToBack(t *testing.T) {
	windows := []Interval{{540, 1080}}

	slots := BuildSlots(windows, 90, nil)
	require.Len(t, slots, 6)

	for i := 0; i < len(slots)-1; i++ {
		assert.Equal(t, slots[i].End, slots[i+1].Start, "slots must be back-to-back")
	}
	assert.Equal(t, Interval{540, 630}, slots[0])
	assert.Equal(t, Interval{990, 1080}, slots[5])
}

func TestBuildSlotsWindowTooNarrow(t *testing.T) {
	assert.Empty(t, BuildSlots([]Interval{{540, 600}}, 90, nil))
	assert.Empty(t, BuildSlots(nil, 90, nil))
	assert.Empty(t, BuildSlots([]Interval{{540, 1080}}, 0, nil))
}

func TestBuildSlotsNeverCrossClose(t *testing.T) {
	for _, duration := range []int{20, 40, 90, 150} {
		for _, s := range BuildSlots([]Interval{{540, 1080}}, duration, nil) {
			assert.LessOrEqual(t, s.End, 1080, "duration %d", duration)
		}
	}
}

func TestFilterPast(t *testing.T) {
	slots := []Interval{{540, 630}, {630, 720}, {720, 810}}

	kept := FilterPast(slots, 571) // 09:31
	require.Len(t, kept, 2)
	assert.Equal(t, 630, kept[0].Start)

	// boundary: a slot starting exactly now is kept
	kept = FilterPast(slots, 630)
	require.Len(t, kept, 2)

	assert.Empty(t, FilterPast(slots, 1440))
}

// ======================================================
// FULL PIPELINE SCENARIOS
// ======================================================

func TestAvailableSlotsPlainSunday(t *testing.T) {
	slots, err := AvailableSlots(date(time.Sunday), DayInput{}, 90, -1)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"09:00-10:30", "10:30-12:00", "12:00-13:30",
		"13:30-15:00", "15:00-16:30", "16:30-18:00",
	}, slotStrings(slots))
}

func TestAvailableSlotsFridayShortDay(t *testing.T) {
	slots, err := AvailableSlots(date(time.Friday), DayInput{}, 40, -1)
	require.NoError(t, err)

	// 11:40-12:00 is only 20 minutes and must be dropped
	assert.Equal(t, []string{
		"09:00-09:40", "09:40-10:20", "10:20-11:00", "11:00-11:40",
	}, slotStrings(slots))
}

func TestAvailableSlotsAroundBlockedSlot(t *testing.T) {
	in := DayInput{
		Busy: []TimeRange{{StartTime: "12:00", EndTime: "13:00"}},
	}

	slots, err := AvailableSlots(date(time.Sunday), in, 90, -1)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"09:00-10:30", "10:30-12:00",
		"13:00-14:30", "14:30-16:00", "16:00-17:30",
	}, slotStrings(slots))
}

func TestAvailableSlotsFullyBlockedDate(t *testing.T) {
	in := DayInput{
		FullyBlocked: true,
		Override:     &Override{StartTime: "08:00", EndTime: "20:00"},
		Busy:         []TimeRange{{StartTime: "10:00", EndTime: "11:00"}},
	}

	slots, err := AvailableSlots(date(time.Sunday), in, 40, -1)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestAvailableSlotsSaturdayClosed(t *testing.T) {
	slots, err := AvailableSlots(date(time.Saturday), DayInput{}, 40, -1)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestAvailableSlotsSameDayCutoff(t *testing.T) {
	now, err := ToMinutes("14:05")
	require.NoError(t, err)

	slots, err := AvailableSlots(date(time.Tuesday), DayInput{}, 90, now)
	require.NoError(t, err)

	// 90-minute grid from 09:00; first slot at or after 14:05 starts 15:00
	assert.Equal(t, []string{
		"15:00-16:30", "16:30-18:00",
	}, slotStrings(slots))
}

func TestAvailableSlotsBookedDayWithBookings(t *testing.T) {
	in := DayInput{
		Busy: []TimeRange{
			{StartTime: "10:00", EndTime: "10:40"},
			{StartTime: "15:00", EndTime: "15:40"},
		},
	}

	slots, err := AvailableSlots(date(time.Monday), in, 40, -1)
	require.NoError(t, err)

	busy, err := BusyIntervals(in.Busy)
	require.NoError(t, err)

	for _, s := range slots {
		start, err := ToMinutes(s.Start)
		require.NoError(t, err)
		end, err := ToMinutes(s.End)
		require.NoError(t, err)
		assert.False(t, ConflictsWith(Interval{start, end}, busy), "slot %s-%s", s.Start, s.End)
	}
}

// Randomized busy sets against the whole pipeline: generated slots never
// overlap any busy interval, never leave working hours, and stay ordered.
func TestAvailableSlotsProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 300; i++ {
		n := rng.Intn(6)
		ranges := make([]TimeRange, 0, n)
		for j := 0; j < n; j++ {
			start := 540 + rng.Intn(480)
			end := start + 10 + rng.Intn(120)
			if end > 1439 {
				end = 1439
			}
			ranges = append(ranges, TimeRange{StartTime: ToHHMM(start), EndTime: ToHHMM(end)})
		}
		duration := 10 + rng.Intn(11)*10

		slots, err := AvailableSlots(date(time.Wednesday), DayInput{Busy: ranges}, duration, -1)
		require.NoError(t, err)

		busy, err := BusyIntervals(ranges)
		require.NoError(t, err)

		prev := -1
		for _, s := range slots {
			start, _ := ToMinutes(s.Start)
			end, _ := ToMinutes(s.End)

			require.Equal(t, duration, end-start)
			require.GreaterOrEqual(t, start, 540)
			require.LessOrEqual(t, end, 1080)
			require.Greater(t, start, prev)
			prev = start

			for _, b := range busy {
				require.False(t, Overlaps(Interval{start, end}, b),
					"slot %s-%s overlaps busy %v (duration %d)", s.Start, s.End, b, duration)
			}
		}
	}
}

func TestConflictsWithScenario(t *testing.T) {
	// confirmed booking 10:00-10:40, candidate 10:20-11:00 must be rejected
	busy := []Interval{{600, 640}}
	assert.True(t, ConflictsWith(Interval{620, 660}, busy))

	// the slot right after is fine
	assert.False(t, ConflictsWith(Interval{640, 680}, busy))
}
