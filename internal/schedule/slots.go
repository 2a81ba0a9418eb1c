package schedule

import "time"

// ======================================================
// SLOT GENERATION
// ======================================================

// Slot is one bookable interval of exactly one service's duration.
type Slot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// DayInput is everything the engine needs to compute a day's slots.
type DayInput struct {
	FullyBlocked bool        // date present in blocked_dates
	Override     *Override   // optional custom schedule for this date
	Busy         []TimeRange // bookings + blocked time slots, raw
}

// BuildSlots walks each free window emitting back-to-back slots of the given
// duration. A slot never crosses a window boundary; a window narrower than
// the duration contributes nothing.
//
// Each candidate is additionally re-checked against the raw busy intervals
// before being emitted, and silently dropped on overlap. The window sweep
// already guarantees this; the check stays as an invariant guard.
func BuildSlots(windows []Interval, duration int, busy []Interval) []Interval {
	if duration <= 0 {
		return nil
	}

	var slots []Interval
	for _, w := range windows {
		for cursor := w.Start; cursor+duration <= w.End; cursor += duration {
			candidate := Interval{Start: cursor, End: cursor + duration}
			if ConflictsWith(candidate, busy) {
				continue
			}
			slots = append(slots, candidate)
		}
	}
	return slots
}

// FilterPast drops slots that already started. A slot starting exactly now
// survives. Callers apply it only when the target date is today.
func FilterPast(slots []Interval, nowMinutes int) []Interval {
	var kept []Interval
	for _, s := range slots {
		if s.Start >= nowMinutes {
			kept = append(kept, s)
		}
	}
	return kept
}

// AvailableSlots runs the whole pipeline for one day: resolve working hours,
// aggregate busy intervals, sweep free windows, cut slots. nowMinutes < 0
// means the date is not today and no cutoff applies.
func AvailableSlots(date time.Time, in DayInput, durationMinutes int, nowMinutes int) ([]Slot, error) {
	// full-day block wins over everything, including overrides
	if in.FullyBlocked {
		return []Slot{}, nil
	}

	hours, open, err := ResolveWorkingHours(date, in.Override)
	if err != nil {
		return nil, err
	}
	if !open {
		return []Slot{}, nil
	}

	busy, err := BusyIntervals(in.Busy)
	if err != nil {
		return nil, err
	}

	windows := FreeWindows(hours, busy)
	intervals := BuildSlots(windows, durationMinutes, busy)

	if nowMinutes >= 0 {
		intervals = FilterPast(intervals, nowMinutes)
	}

	slots := make([]Slot, 0, len(intervals))
	for _, iv := range intervals {
		slots = append(slots, Slot{Start: ToHHMM(iv.Start), End: ToHHMM(iv.End)})
	}
	return slots, nil
}
