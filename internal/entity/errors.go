package entity

import "errors"

var (
	ErrBookNotFound  = errors.New("book not found")
	ErrDuplicateISBN = errors.New("duplicate isbn")
	// ErrAvailabilityConflict is returned when an availability change would
	// push available_copies outside [0, total_copies].
	ErrAvailabilityConflict = errors.New("availability conflict")
	ErrNoOpenLoan           = errors.New("no open loan")
)
