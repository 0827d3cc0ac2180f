package reservation

import (
	"time"

	"flightsched/internal/domain"
)

type BookingRequest struct {
	StudentID       string    `json:"studentId" binding:"required"`
	ReservationTime time.Time `json:"reservationTime" binding:"required"`
}

type ReservationView struct {
	ReservationID string `json:"reservationId"`
	StudentID     string `json:"studentId"`
	InstructorID  string `json:"instructorId"`
	AircraftID    string `json:"aircraftId"`
	StartTime     string `json:"startTime"`
	Status        string `json:"status"`
}

func NewReservationView(r domain.Reservation) ReservationView {
	return ReservationView{
		ReservationID: r.ID,
		StudentID:     r.StudentID,
		InstructorID:  r.InstructorID,
		AircraftID:    r.AircraftID,
		StartTime:     r.StartTime.UTC().Format(time.RFC3339),
		Status:        string(r.Status),
	}
}

// Details is the tooltip projection the UI shows on hover.
type Details struct {
	ID           string `json:"id"`
	Time         string `json:"time"`
	StudentID    string `json:"studentId"`
	InstructorID string `json:"instructorId"`
	AircraftID   string `json:"aircraftId"`
	Status       string `json:"status"`
}
