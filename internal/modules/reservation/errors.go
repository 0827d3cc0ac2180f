package reservation

import "errors"

var (
	ErrValidation                = errors.New("validation error")
	ErrInvalidSlotTime           = errors.New("reservation time is not hour-aligned or is in the past")
	ErrSlotNoLongerAvailable     = errors.New("slot is no longer available")
	ErrReservationNotFound       = errors.New("reservation not found")
	ErrReservationCreationFailed = errors.New("reservation creation failed after retries")
)
