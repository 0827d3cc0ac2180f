package availability

import "errors"

var (
	ErrValidation        = errors.New("validation error")
	ErrInvalidSlotTime   = errors.New("slot time is not hour-aligned or is in the past")
	ErrSlotNotFound      = errors.New("time slot not found")
	ErrInvalidTransition = errors.New("invalid slot status transition")
)
