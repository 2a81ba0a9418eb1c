package schedule

import "sort"

// ======================================================
// INTERVALS
// ======================================================

// Interval is a half-open [Start, End) range in minutes since midnight.
type Interval struct {
	Start int
	End   int
}

// TimeRange is an interval still expressed as wall-clock strings, the way
// bookings and blocked slots come out of the database.
type TimeRange struct {
	StartTime string
	EndTime   string
}

// Overlaps reports whether two half-open intervals intersect.
func Overlaps(a, b Interval) bool {
	return a.Start < b.End && a.End > b.Start
}

// ConflictsWith reports whether the candidate overlaps any busy interval.
// Used at submission time as a defensive re-check against a stale slot list.
func ConflictsWith(candidate Interval, busy []Interval) bool {
	for _, b := range busy {
		if Overlaps(candidate, b) {
			return true
		}
	}
	return false
}

// BusyIntervals converts raw booking and blocked-slot ranges to minute
// intervals. The result is intentionally neither sorted nor merged; that is
// FreeWindows' job.
func BusyIntervals(ranges []TimeRange) ([]Interval, error) {
	busy := make([]Interval, 0, len(ranges))
	for _, r := range ranges {
		start, err := ToMinutes(r.StartTime)
		if err != nil {
			return nil, err
		}
		end, err := ToMinutes(r.EndTime)
		if err != nil {
			return nil, err
		}
		busy = append(busy, Interval{Start: start, End: end})
	}
	return busy, nil
}

// FreeWindows subtracts the busy intervals from the working-hours range and
// returns the remaining free windows, sorted and disjoint.
//
// A cursor sweeps forward from open; it never moves backward, so intervals
// that start before the cursor (already covered, ties included) are absorbed
// naturally.
func FreeWindows(hours Hours, busy []Interval) []Interval {
	sorted := make([]Interval, len(busy))
	copy(sorted, busy)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})

	var windows []Interval
	cursor := hours.Open

	for _, iv := range sorted {
		if iv.Start > cursor {
			end := iv.Start
			if end > hours.Close {
				end = hours.Close
			}
			if end > cursor {
				windows = append(windows, Interval{Start: cursor, End: end})
			}
		}
		if iv.End > cursor {
			cursor = iv.End
		}
	}

	if cursor < hours.Close {
		windows = append(windows, Interval{Start: cursor, End: hours.Close})
	}

	return windows
}
