package domain

import "time"

type ReservationStatus string

const (
	ReservationActive    ReservationStatus = "active"
	ReservationCancelled ReservationStatus = "cancelled"
)

// Reservation binds one student, one instructor and one aircraft to one hour.
// The three slot ids are non-owning references to the legs consumed at
// booking time; cancellation releases them back to available.
type Reservation struct {
	ID           string            `json:"reservationId"`
	StudentID    string            `json:"studentId"`
	InstructorID string            `json:"instructorId"`
	AircraftID   string            `json:"aircraftId"`
	StartTime    time.Time         `json:"startTime"`
	Status       ReservationStatus `json:"status"`

	StudentSlotID    string `json:"-"`
	InstructorSlotID string `json:"-"`
	AircraftSlotID   string `json:"-"`

	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
}
