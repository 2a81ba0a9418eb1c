package schedule

import "time"

// ======================================================
// WORKING HOURS
// ======================================================

// Hours is the open/close range of a single day, in minutes since midnight.
// The range is half-open: [Open, Close).
type Hours struct {
	Open  int
	Close int
}

// Override replaces the weekday defaults for one specific date
// (admin-defined custom schedule).
type Override struct {
	StartTime string // "HH:MM"
	EndTime   string // "HH:MM"
}

// Weekday defaults of the salon.
var (
	weekdayHours = Hours{Open: 9 * 60, Close: 18 * 60} // Sunday–Thursday
	fridayHours  = Hours{Open: 9 * 60, Close: 12 * 60}
)

// ResolveWorkingHours returns the bookable range for a date. The second
// return is false when the day is closed (Saturday, or an override with
// open == close).
//
// An override is taken verbatim, even when it is wider or narrower than the
// defaults. Bookings and blocks never influence this decision.
func ResolveWorkingHours(date time.Time, override *Override) (Hours, bool, error) {
	if override != nil {
		open, err := ToMinutes(override.StartTime)
		if err != nil {
			return Hours{}, false, err
		}
		closing, err := ToMinutes(override.EndTime)
		if err != nil {
			return Hours{}, false, err
		}
		if closing <= open {
			return Hours{}, false, nil
		}
		return Hours{Open: open, Close: closing}, true, nil
	}

	switch date.Weekday() {
	case time.Saturday:
		return Hours{}, false, nil
	case time.Friday:
		return fridayHours, true, nil
	default:
		return weekdayHours, true, nil
	}
}
