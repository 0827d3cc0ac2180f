package availability

import (
	"context"
	"errors"
	"time"

	"flightsched/internal/domain"
	"flightsched/internal/monitoring"
	"flightsched/internal/repository"

	"github.com/google/uuid"
)

type Service struct {
	slots        SlotRepository
	participants ParticipantRegistry
}

func NewService(slots SlotRepository, participants ParticipantRegistry) *Service {
	return &Service{
		slots:        slots,
		participants: participants,
	}
}

// SetAvailable creates the participant's slot for the given hour, or flips an
// existing withdrawn slot back to available. Marking an hour the participant
// already has scheduled is rejected — the reservation must be cancelled first.
func (s *Service) SetAvailable(ctx context.Context, participantID string, participantType domain.ParticipantType, startTime time.Time) (*domain.TimeSlot, error) {
	if participantID == "" || !participantType.Valid() {
		return nil, ErrValidation
	}
	start := startTime.UTC()
	if !start.Truncate(time.Hour).Equal(start) || start.Before(time.Now().UTC()) {
		return nil, ErrInvalidSlotTime
	}

	existing, err := s.slots.GetByParticipantAndHour(ctx, participantID, start)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return s.remark(ctx, existing)
	}

	if err := s.participants.Register(ctx, &domain.Participant{ID: participantID, Type: participantType}); err != nil {
		return nil, err
	}

	slot := &domain.TimeSlot{
		ID:              uuid.NewString(),
		ParticipantID:   participantID,
		ParticipantType: participantType,
		StartTime:       start,
		Status:          domain.SlotAvailable,
	}
	if err := s.slots.Create(ctx, slot); err != nil {
		if errors.Is(err, repository.ErrSlotConflict) {
			// lost a create race for the same hour; fall back to the winner's row
			current, gerr := s.slots.GetByParticipantAndHour(ctx, participantID, start)
			if gerr != nil {
				return nil, gerr
			}
			if current == nil {
				return nil, ErrSlotNotFound
			}
			return s.remark(ctx, current)
		}
		return nil, err
	}

	monitoring.SlotMarked("available")
	return slot, nil
}

func (s *Service) remark(ctx context.Context, slot *domain.TimeSlot) (*domain.TimeSlot, error) {
	switch slot.Status {
	case domain.SlotScheduled:
		return nil, ErrInvalidTransition
	case domain.SlotAvailable:
		return slot, nil
	}

	// withdrawn slot: flip back to available unless a reservation consumed it
	if err := s.slots.UpdateStatus(ctx, slot.ID, domain.SlotUnavailable, domain.SlotAvailable); err != nil {
		if errors.Is(err, repository.ErrSlotConflict) {
			return nil, ErrInvalidTransition
		}
		return nil, err
	}

	monitoring.SlotMarked("available")
	slot.Status = domain.SlotAvailable
	return slot, nil
}

// SetUnavailable withdraws an available slot. Withdrawing a scheduled slot is
// rejected; withdrawing an already-unavailable slot is a no-op success so a
// double-click never surfaces an error.
func (s *Service) SetUnavailable(ctx context.Context, slotID string) (*domain.TimeSlot, error) {
	if slotID == "" {
		return nil, ErrValidation
	}

	slot, err := s.slots.GetByID(ctx, slotID)
	if err != nil {
		return nil, err
	}
	if slot == nil {
		return nil, ErrSlotNotFound
	}

	switch slot.Status {
	case domain.SlotScheduled:
		return nil, ErrInvalidTransition
	case domain.SlotUnavailable:
		return slot, nil
	}

	if err := s.slots.UpdateStatus(ctx, slot.ID, domain.SlotAvailable, domain.SlotUnavailable); err != nil {
		if errors.Is(err, repository.ErrSlotConflict) {
			// the slot changed under us; report what it became
			current, gerr := s.slots.GetByID(ctx, slotID)
			if gerr != nil {
				return nil, gerr
			}
			if current == nil {
				return nil, ErrSlotNotFound
			}
			if current.Status == domain.SlotUnavailable {
				return current, nil
			}
			return nil, ErrInvalidTransition
		}
		return nil, err
	}

	monitoring.SlotMarked("unavailable")
	slot.Status = domain.SlotUnavailable
	return slot, nil
}

// SlotsByParticipant returns the participant's slots in [from, to), every
// status, in a stable order. The result is recomputed from storage on each
// call so polling clients always see committed state.
func (s *Service) SlotsByParticipant(ctx context.Context, participantID string, participantType domain.ParticipantType, from, to time.Time) ([]domain.TimeSlot, error) {
	if participantID == "" || !participantType.Valid() || !to.After(from) {
		return nil, ErrValidation
	}
	return s.slots.ListByParticipant(ctx, participantID, participantType, from, to)
}

// AvailableSlotsByType returns available slots of one participant type in
// [from, to).
func (s *Service) AvailableSlotsByType(ctx context.Context, participantType domain.ParticipantType, from, to time.Time) ([]domain.TimeSlot, error) {
	if !participantType.Valid() || !to.After(from) {
		return nil, ErrValidation
	}
	return s.slots.ListAvailableByType(ctx, participantType, from, to)
}
