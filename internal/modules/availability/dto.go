package availability

import (
	"time"

	"flightsched/internal/domain"
)

type ParticipantRangeRequest struct {
	ParticipantID   string    `json:"participantId" binding:"required"`
	ParticipantType string    `json:"participantType" binding:"required"`
	TimeBegin       time.Time `json:"timeBegin" binding:"required"`
	TimeEnd         time.Time `json:"timeEnd" binding:"required"`
}

type TypeRangeRequest struct {
	ParticipantType string    `json:"participantType" binding:"required"`
	TimeBegin       time.Time `json:"timeBegin" binding:"required"`
	TimeEnd         time.Time `json:"timeEnd" binding:"required"`
}

type MakeAvailableRequest struct {
	ParticipantID   string    `json:"participantId" binding:"required"`
	ParticipantType string    `json:"participantType" binding:"required"`
	StartTime       time.Time `json:"startTime" binding:"required"`
}

type MakeUnavailableRequest struct {
	TimeSlotID string `json:"timeSlotId" binding:"required"`
}

// SlotView is the client-facing slot projection. ReservationID is exposed
// only on scheduled slots; on consumed instructor/aircraft legs it is an
// internal bookkeeping detail.
type SlotView struct {
	TimeSlotID      string  `json:"timeSlotId"`
	ParticipantID   string  `json:"participantId"`
	ParticipantType string  `json:"participantType"`
	StartTime       string  `json:"startTime"`
	Status          string  `json:"status"`
	ReservationID   *string `json:"reservationId,omitempty"`
}

func NewSlotView(s domain.TimeSlot) SlotView {
	v := SlotView{
		TimeSlotID:      s.ID,
		ParticipantID:   s.ParticipantID,
		ParticipantType: string(s.ParticipantType),
		StartTime:       s.StartTime.UTC().Format(time.RFC3339),
		Status:          string(s.Status),
	}
	if s.Status == domain.SlotScheduled {
		v.ReservationID = s.ReservationID
	}
	return v
}

func NewSlotViews(slots []domain.TimeSlot) []SlotView {
	out := make([]SlotView, 0, len(slots))
	for _, s := range slots {
		out = append(out, NewSlotView(s))
	}
	return out
}
