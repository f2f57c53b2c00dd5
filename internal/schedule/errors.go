package schedule

import "errors"

var (
	// ErrServiceNotFound is returned when the requested service ID is unknown.
	ErrServiceNotFound = errors.New("service not found")

	// ErrBeforeOpening is returned when a booking would start before opening hour.
	ErrBeforeOpening = errors.New("booking starts before opening hour")

	// ErrAfterClosing is returned when a booking would end after closing hour.
	ErrAfterClosing = errors.New("booking ends after closing hour")

	// ErrSlotConflict is returned when the requested interval overlaps an existing booking.
	ErrSlotConflict = errors.New("slot conflicts with an existing booking")
)
