package domain

import "time"

type ParticipantType string

const (
	ParticipantStudent    ParticipantType = "student"
	ParticipantInstructor ParticipantType = "instructor"
	ParticipantAircraft   ParticipantType = "aircraft"
)

func (t ParticipantType) Valid() bool {
	switch t {
	case ParticipantStudent, ParticipantInstructor, ParticipantAircraft:
		return true
	}
	return false
}

// Participant is registered the first time it marks an hour available
// (or by the seeder) and is immutable once a slot references it.
type Participant struct {
	ID        string          `json:"id"`
	Type      ParticipantType `json:"type"`
	Name      string          `json:"name,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}
