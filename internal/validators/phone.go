package validators

import "strings"

// PhoneDigits strips every non-digit character from a phone number.
func PhoneDigits(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsValidIsraeliMobile accepts local mobile formats like 0501234567 or
// 050-123-4567 (9-10 digits starting with 05).
func IsValidIsraeliMobile(phone string) bool {
	digits := PhoneDigits(phone)
	if len(digits) < 9 || len(digits) > 10 {
		return false
	}
	return strings.HasPrefix(digits, "05")
}
