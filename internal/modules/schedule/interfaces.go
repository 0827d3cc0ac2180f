package schedule

import (
	"context"
	"time"

	"flightsched/internal/domain"
)

// SlotReader is the read-only slice of slot storage the resolver consumes.
type SlotReader interface {
	ListByParticipant(ctx context.Context, participantID string, participantType domain.ParticipantType, from, to time.Time) ([]domain.TimeSlot, error)
	ListAvailableByType(ctx context.Context, participantType domain.ParticipantType, from, to time.Time) ([]domain.TimeSlot, error)
	ListAvailableByTypeAtHour(ctx context.Context, participantType domain.ParticipantType, hour time.Time) ([]domain.TimeSlot, error)
}
