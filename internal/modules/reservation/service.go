package reservation

import (
	"context"
	"errors"
	"time"

	"flightsched/internal/domain"
	"flightsched/internal/monitoring"
	"flightsched/internal/pkg/code"
	"flightsched/internal/repository"

	"go.uber.org/zap"
)

// maxBookAttempts bounds the retry loop around the two transient races:
// a duplicate reservation code and a leg stolen between resolve and commit.
const maxBookAttempts = 5

type Service struct {
	reservations ReservationRepository
	resolver     Resolver
	log          *zap.Logger
}

func NewService(reservations ReservationRepository, resolver Resolver, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		reservations: reservations,
		resolver:     resolver,
		log:          log,
	}
}

// Book converts a jointly-available hour into a committed reservation.
// Bookability is re-derived at call time — a caller-supplied snapshot may be
// stale by the time the request arrives. All three leg transitions and the
// reservation row commit in one transaction or not at all.
func (s *Service) Book(ctx context.Context, studentID string, startTime time.Time) (*domain.Reservation, error) {
	if studentID == "" {
		return nil, ErrValidation
	}
	hour := startTime.UTC()
	if !hour.Truncate(time.Hour).Equal(hour) || hour.Before(time.Now().UTC()) {
		return nil, ErrInvalidSlotTime
	}

	var lastErr error
	for attempt := 0; attempt < maxBookAttempts; attempt++ {
		legs, err := s.resolver.ResolveHour(ctx, studentID, hour)
		if err != nil {
			return nil, err
		}
		if legs == nil {
			monitoring.BookingAttempt("conflict")
			return nil, ErrSlotNoLongerAvailable
		}

		id, err := code.Generate()
		if err != nil {
			return nil, err
		}

		res := &domain.Reservation{
			ID:               id,
			StudentID:        legs.Student.ParticipantID,
			InstructorID:     legs.Instructor.ParticipantID,
			AircraftID:       legs.Aircraft.ParticipantID,
			StartTime:        hour,
			Status:           domain.ReservationActive,
			StudentSlotID:    legs.Student.ID,
			InstructorSlotID: legs.Instructor.ID,
			AircraftSlotID:   legs.Aircraft.ID,
		}

		err = s.reservations.BookLegs(ctx, res)
		if err == nil {
			monitoring.BookingAttempt("success")
			return res, nil
		}

		switch {
		case errors.Is(err, repository.ErrDuplicateReservationID):
			s.log.Warn("reservation code collision, regenerating",
				zap.String("reservation_id", id))
			lastErr = err
		case errors.Is(err, repository.ErrSlotConflict):
			s.log.Warn("booking lost a leg race, re-resolving",
				zap.String("student_id", studentID),
				zap.Time("hour", hour))
			lastErr = err
		default:
			return nil, err
		}
	}

	if errors.Is(lastErr, repository.ErrDuplicateReservationID) {
		monitoring.BookingAttempt("failed")
		return nil, ErrReservationCreationFailed
	}
	monitoring.BookingAttempt("conflict")
	return nil, ErrSlotNoLongerAvailable
}

// Cancel releases a reservation and its three legs. Cancelling an
// already-cancelled reservation is a no-op success so a client double-click
// never surfaces an error.
func (s *Service) Cancel(ctx context.Context, reservationID string) error {
	if reservationID == "" {
		return ErrValidation
	}

	res, err := s.reservations.GetByID(ctx, reservationID)
	if err != nil {
		return err
	}
	if res == nil {
		return ErrReservationNotFound
	}
	if res.Status == domain.ReservationCancelled {
		monitoring.Cancellation("noop")
		return nil
	}

	if err := s.reservations.ReleaseLegs(ctx, reservationID); err != nil {
		if errors.Is(err, repository.ErrSlotConflict) {
			// a concurrent cancel got there first
			monitoring.Cancellation("noop")
			return nil
		}
		return err
	}

	monitoring.Cancellation("success")
	return nil
}

// Details returns the reservation projection. Cancelled reservations remain
// readable — cancellation reverts slots, it does not erase history.
func (s *Service) Details(ctx context.Context, reservationID string) (*Details, error) {
	if reservationID == "" {
		return nil, ErrValidation
	}

	res, err := s.reservations.GetByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, ErrReservationNotFound
	}

	return &Details{
		ID:           res.ID,
		Time:         res.StartTime.UTC().Format(time.RFC3339),
		StudentID:    res.StudentID,
		InstructorID: res.InstructorID,
		AircraftID:   res.AircraftID,
		Status:       string(res.Status),
	}, nil
}
