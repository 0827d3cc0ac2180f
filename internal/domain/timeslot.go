package domain

import "time"

type SlotStatus string

const (
	SlotAvailable   SlotStatus = "available"
	SlotUnavailable SlotStatus = "unavailable"
	SlotScheduled   SlotStatus = "scheduled"
)

// TimeSlot is one participant's one-hour availability record.
// StartTime is always truncated to the top of an hour in UTC; a participant
// holds at most one slot per hour. ReservationID is set only while the slot
// is scheduled. Slots are never deleted — cancellation reverts the status.
type TimeSlot struct {
	ID              string          `json:"timeSlotId"`
	ParticipantID   string          `json:"participantId"`
	ParticipantType ParticipantType `json:"participantType"`
	StartTime       time.Time       `json:"startTime"`
	Status          SlotStatus      `json:"status"`
	ReservationID   *string         `json:"reservationId,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
