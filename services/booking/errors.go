package booking

import (
	"fmt"
	"strings"
)

// ValidationError reports a defective booking submission. The caller can
// recover by resubmitting corrected data, so handlers map it to a 4xx.
type ValidationError struct {
	// MissingFields holds every required field that was absent or blank,
	// not just the first one found.
	MissingFields []string
	Reason        string
}

func (e *ValidationError) Error() string {
	if len(e.MissingFields) > 0 {
		return fmt.Sprintf("please fill in all required fields: %s", strings.Join(e.MissingFields, ", "))
	}
	return e.Reason
}

// NewMissingFieldsError builds a ValidationError enumerating missing fields.
func NewMissingFieldsError(fields []string) error {
	return &ValidationError{MissingFields: fields}
}

// NewInvalidFieldError builds a ValidationError for a field that was present
// but failed to parse or violated a bound.
func NewInvalidFieldError(reason string) error {
	return &ValidationError{Reason: reason}
}

// RelayError reports a failed submission to the form relay. Status is zero
// when the request never produced a response (network error or timeout).
// A relay failure aborts the whole booking: without a relayed record the
// user must not be sent to the payment gateway.
type RelayError struct {
	Status int
	Body   string
}

func (e *RelayError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("failed to submit booking to relay: %s", e.Body)
	}
	return fmt.Sprintf("failed to submit booking to relay: %d - %s", e.Status, e.Body)
}
