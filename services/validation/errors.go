package validation

import (
	"errors"
	"fmt"
)

// Failure codes callers can switch on. Every rejection the engine produces
// carries exactly one of these.
const (
	CodeInvalidDateTime   = "invalidDateTime"
	CodePastDateTime      = "pastDateTime"
	CodeNoScheduleConfig  = "noScheduleConfig"
	CodeTimeNotConfigured = "timeNotConfigured"
	CodeSlotNotFound      = "slotNotFound"
	CodeVehicleConflict   = "vehicleConflict"
	CodeDriverConflict    = "driverConflict"
	CodeNoVehicles        = "noVehicles"
	CodeAtCapacity        = "atCapacity"
	CodeOverCapacity      = "overCapacity"
	CodeNegativeOverride  = "negativeOverride"
	CodeOverrideTooHigh   = "overrideTooHigh"
)

// ValidationError is a typed rejection from one of the validators. It is
// never retried internally; callers map it to the appropriate API response.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newError(code, format string, args ...interface{}) *ValidationError {
	return &ValidationError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// IsCode reports whether err is a ValidationError carrying the given code.
func IsCode(err error, code string) bool {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Code == code
	}
	return false
}

// CodeOf returns the failure code of err, or "" if err is not a
// ValidationError.
func CodeOf(err error) string {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Code
	}
	return ""
}
