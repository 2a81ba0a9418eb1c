package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// date returns a fixed calendar date on the given weekday.
// 2025-06-01 is a Sunday.
func date(weekday time.Weekday) time.Time {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	return base.AddDate(0, 0, int(weekday))
}

func TestResolveWorkingHoursDefaults(t *testing.T) {
	tests := []struct {
		name    string
		weekday time.Weekday
		open    bool
		hours   Hours
	}{
		{name: "sunday full day", weekday: time.Sunday, open: true, hours: Hours{540, 1080}},
		{name: "tuesday full day", weekday: time.Tuesday, open: true, hours: Hours{540, 1080}},
		{name: "thursday full day", weekday: time.Thursday, open: true, hours: Hours{540, 1080}},
		{name: "friday short day", weekday: time.Friday, open: true, hours: Hours{540, 720}},
		{name: "saturday closed", weekday: time.Saturday, open: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hours, open, err := ResolveWorkingHours(date(tt.weekday), nil)
			require.NoError(t, err)
			assert.Equal(t, tt.open, open)
			if tt.open {
				assert.Equal(t, tt.hours, hours)
			}
		})
	}
}

func TestResolveWorkingHoursOverride(t *testing.T) {
	// override wins verbatim, even on a closed Saturday
	hours, open, err := ResolveWorkingHours(
		date(time.Saturday),
		&Override{StartTime: "10:00", EndTime: "14:00"},
	)
	require.NoError(t, err)
	require.True(t, open)
	assert.Equal(t, Hours{600, 840}, hours)

	// override narrower than defaults
	hours, open, err = ResolveWorkingHours(
		date(time.Monday),
		&Override{StartTime: "11:00", EndTime: "13:00"},
	)
	require.NoError(t, err)
	require.True(t, open)
	assert.Equal(t, Hours{660, 780}, hours)

	// open == close effectively closes the day
	_, open, err = ResolveWorkingHours(
		date(time.Monday),
		&Override{StartTime: "09:00", EndTime: "09:00"},
	)
	require.NoError(t, err)
	assert.False(t, open)
}

func TestResolveWorkingHoursBadOverride(t *testing.T) {
	_, _, err := ResolveWorkingHours(
		date(time.Monday),
		&Override{StartTime: "bogus", EndTime: "13:00"},
	)
	require.Error(t, err)
	var fe FormatError
	assert.ErrorAs(t, err, &fe)
}
