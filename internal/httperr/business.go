package httperr

import "errors"

// Codes shared between use cases and handlers.
const (
	CodeSlotConflict         = "slot_conflict"
	CodeDateBlocked          = "date_blocked"
	CodeOutsideWorkingHours  = "outside_working_hours"
	CodeServiceNotFound      = "service_not_found"
	CodeBookingNotFound      = "booking_not_found"
	CodePhoneMismatch        = "phone_mismatch"
	CodeVerificationMismatch = "verification_mismatch"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
