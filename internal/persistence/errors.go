package persistence

import "errors"

var (
	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = errors.New("persistence: not found")
	// ErrDuplicate is returned when an insert violates a uniqueness rule.
	ErrDuplicate = errors.New("persistence: duplicate")
	// ErrConstraintViolation is returned when a record violates a check constraint.
	ErrConstraintViolation = errors.New("persistence: constraint violation")
	// ErrForeignKeyViolation is returned when a referenced record is missing.
	ErrForeignKeyViolation = errors.New("persistence: foreign key violation")
	// ErrAssignmentOverlap is returned when an assignment insert would
	// double-book a room slot. The store guard is authoritative; callers may
	// pre-check but must still handle this error.
	ErrAssignmentOverlap = errors.New("persistence: assignment overlap")
	// ErrBlackoutOverlap is returned when an assignment insert lands inside a
	// blackout window for the room.
	ErrBlackoutOverlap = errors.New("persistence: blackout overlap")
)
