package application

import "errors"

var (
	// ErrNotFound is returned when a referenced entity does not exist.
	ErrNotFound = errors.New("application: not found")
	// ErrAssignmentConflict is returned when the requested slot overlaps an
	// existing assignment for the same room and day. Terminal for the call.
	ErrAssignmentConflict = errors.New("application: assignment conflict")
	// ErrBlackoutConflict is returned when the requested slot overlaps a
	// blackout window for the room. Terminal for the call.
	ErrBlackoutConflict = errors.New("application: blackout conflict")
	// ErrRequestNotPending is returned when the request has already been
	// resolved and cannot transition to Accepted again.
	ErrRequestNotPending = errors.New("application: request not pending")
	// ErrInvalidCredentials is returned when a login attempt fails.
	ErrInvalidCredentials = errors.New("application: invalid credentials")
)

// ValidationError captures field level validation issues that callers can
// surface to users. Validation failures are rejected before any store call.
type ValidationError struct {
	FieldErrors map[string]string
}

// Error implements the error interface.
func (v *ValidationError) Error() string {
	if v == nil {
		return ""
	}
	return "validation failed"
}

// HasErrors reports whether any field level issues were recorded.
func (v *ValidationError) HasErrors() bool {
	return v != nil && len(v.FieldErrors) > 0
}

// add records a field level validation error.
func (v *ValidationError) add(field, message string) {
	if v.FieldErrors == nil {
		v.FieldErrors = make(map[string]string)
	}
	v.FieldErrors[field] = message
}
