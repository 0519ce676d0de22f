package repositories

import "errors"

var (
	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateEmail is returned when a user write collides with the unique email index.
	ErrDuplicateEmail = errors.New("email already exists")
	// ErrBookingDecided is returned when a status decision hits a booking that is no longer WAITING.
	ErrBookingDecided = errors.New("booking already decided")
)
