package availability

import (
	"context"
	"time"

	"flightsched/internal/domain"
)

// SlotRepository defines the slot storage operations the store needs.
type SlotRepository interface {
	Create(ctx context.Context, s *domain.TimeSlot) error
	GetByID(ctx context.Context, id string) (*domain.TimeSlot, error)
	GetByParticipantAndHour(ctx context.Context, participantID string, hour time.Time) (*domain.TimeSlot, error)
	ListByParticipant(ctx context.Context, participantID string, participantType domain.ParticipantType, from, to time.Time) ([]domain.TimeSlot, error)
	ListAvailableByType(ctx context.Context, participantType domain.ParticipantType, from, to time.Time) ([]domain.TimeSlot, error)
	UpdateStatus(ctx context.Context, id string, from, to domain.SlotStatus) error
}

// ParticipantRegistry registers a participant on first contact.
type ParticipantRegistry interface {
	Register(ctx context.Context, p *domain.Participant) error
}
