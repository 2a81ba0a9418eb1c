package timezone

import "time"

// The salon operates in a single fixed locale; every wall-clock value in the
// system is interpreted there.
const BusinessTimezone = "Asia/Jerusalem"

const DateLayout = "2006-01-02"

func Location() *time.Location {
	loc, err := time.LoadLocation(BusinessTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func Now() time.Time {
	return time.Now().In(Location())
}

// Today returns the current calendar date as YYYY-MM-DD.
func Today() string {
	return Now().Format(DateLayout)
}

// NowMinutes returns the current wall-clock time as minutes since midnight.
func NowMinutes() int {
	now := Now()
	return now.Hour()*60 + now.Minute()
}

// ParseDate parses a YYYY-MM-DD calendar date in the business locale.
func ParseDate(dateStr string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, dateStr, Location())
}
