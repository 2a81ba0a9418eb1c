package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatError indicates a malformed HH:MM string. With validated inputs it
// should never surface; treat it as a programming-error assertion.
type FormatError struct {
	Value string
}

func (e FormatError) Error() string {
	return fmt.Sprintf("invalid time %q, expected HH:MM", e.Value)
}

// ToMinutes parses "HH:MM" (an optional trailing ":SS" is ignored) into
// minutes since midnight.
func ToMinutes(hhmm string) (int, error) {
	parts := strings.Split(hhmm, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, FormatError{Value: hhmm}
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return 0, FormatError{Value: hhmm}
	}

	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, FormatError{Value: hhmm}
	}

	return hours*60 + minutes, nil
}

// ToHHMM formats minutes since midnight as zero-padded "HH:MM".
// Callers never pass negative values.
func ToHHMM(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
