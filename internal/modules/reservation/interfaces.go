package reservation

import (
	"context"
	"time"

	"flightsched/internal/domain"
	"flightsched/internal/modules/schedule"
)

// ReservationRepository persists reservations and performs the atomic
// leg transitions.
type ReservationRepository interface {
	BookLegs(ctx context.Context, res *domain.Reservation) error
	ReleaseLegs(ctx context.Context, reservationID string) error
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
}

// Resolver re-derives joint availability at booking time.
type Resolver interface {
	ResolveHour(ctx context.Context, studentID string, hour time.Time) (*schedule.Legs, error)
}
