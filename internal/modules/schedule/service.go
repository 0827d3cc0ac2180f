package schedule

import (
	"context"
	"time"

	"flightsched/internal/domain"
)

// BookableSlot is a student slot decorated with the hour-exact counts of
// available instructors and aircraft.
type BookableSlot struct {
	Slot            domain.TimeSlot
	Bookable        bool
	InstructorCount int
	AircraftCount   int
}

// Legs are the three slots a booking would consume at one hour.
type Legs struct {
	Student    domain.TimeSlot
	Instructor domain.TimeSlot
	Aircraft   domain.TimeSlot
}

type Service struct {
	slots SlotReader
}

func NewService(slots SlotReader) *Service {
	return &Service{slots: slots}
}

// BookableSlots computes joint availability for a student over [from, to).
// A student slot at hour h is bookable iff the slot itself is available and
// at least one instructor and one aircraft have an available slot starting
// exactly at h. The result is a pure function of current store state —
// no caching, recomputed on every poll.
func (s *Service) BookableSlots(ctx context.Context, studentID string, from, to time.Time) ([]BookableSlot, error) {
	if studentID == "" || !to.After(from) {
		return nil, ErrValidation
	}

	studentSlots, err := s.slots.ListByParticipant(ctx, studentID, domain.ParticipantStudent, from, to)
	if err != nil {
		return nil, err
	}
	instructorSlots, err := s.slots.ListAvailableByType(ctx, domain.ParticipantInstructor, from, to)
	if err != nil {
		return nil, err
	}
	aircraftSlots, err := s.slots.ListAvailableByType(ctx, domain.ParticipantAircraft, from, to)
	if err != nil {
		return nil, err
	}

	instructorCount := countByHour(instructorSlots)
	aircraftCount := countByHour(aircraftSlots)

	out := make([]BookableSlot, 0, len(studentSlots))
	for _, slot := range studentSlots {
		if slot.Status != domain.SlotAvailable && slot.Status != domain.SlotScheduled {
			continue
		}
		h := slot.StartTime.UTC().Unix()
		b := BookableSlot{
			Slot:            slot,
			InstructorCount: instructorCount[h],
			AircraftCount:   aircraftCount[h],
		}
		b.Bookable = slot.Status == domain.SlotAvailable && b.InstructorCount > 0 && b.AircraftCount > 0
		out = append(out, b)
	}
	return out, nil
}

// ResolveHour re-derives bookability for one student hour at call time and
// returns the legs a booking would consume. The instructor and aircraft are
// chosen deterministically: first by ascending participant id. Returns
// (nil, nil) when the hour is not jointly bookable.
func (s *Service) ResolveHour(ctx context.Context, studentID string, hour time.Time) (*Legs, error) {
	studentSlots, err := s.slots.ListByParticipant(ctx, studentID, domain.ParticipantStudent, hour, hour.Add(time.Hour))
	if err != nil {
		return nil, err
	}

	var student *domain.TimeSlot
	for i := range studentSlots {
		if studentSlots[i].StartTime.UTC().Equal(hour.UTC()) && studentSlots[i].Status == domain.SlotAvailable {
			student = &studentSlots[i]
			break
		}
	}
	if student == nil {
		return nil, nil
	}

	instructors, err := s.slots.ListAvailableByTypeAtHour(ctx, domain.ParticipantInstructor, hour)
	if err != nil {
		return nil, err
	}
	aircraft, err := s.slots.ListAvailableByTypeAtHour(ctx, domain.ParticipantAircraft, hour)
	if err != nil {
		return nil, err
	}
	if len(instructors) == 0 || len(aircraft) == 0 {
		return nil, nil
	}

	return &Legs{
		Student:    *student,
		Instructor: instructors[0],
		Aircraft:   aircraft[0],
	}, nil
}

func countByHour(slots []domain.TimeSlot) map[int64]int {
	counts := make(map[int64]int, len(slots))
	for _, s := range slots {
		counts[s.StartTime.UTC().Unix()]++
	}
	return counts
}
