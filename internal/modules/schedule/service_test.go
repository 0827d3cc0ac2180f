package schedule

import (
	"context"
	"testing"
	"time"

	"flightsched/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSlotReader struct {
	mock.Mock
}

func (m *MockSlotReader) ListByParticipant(ctx context.Context, participantID string, participantType domain.ParticipantType, from, to time.Time) ([]domain.TimeSlot, error) {
	args := m.Called(ctx, participantID, participantType, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TimeSlot), args.Error(1)
}

func (m *MockSlotReader) ListAvailableByType(ctx context.Context, participantType domain.ParticipantType, from, to time.Time) ([]domain.TimeSlot, error) {
	args := m.Called(ctx, participantType, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TimeSlot), args.Error(1)
}

func (m *MockSlotReader) ListAvailableByTypeAtHour(ctx context.Context, participantType domain.ParticipantType, hour time.Time) ([]domain.TimeSlot, error) {
	args := m.Called(ctx, participantType, hour)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TimeSlot), args.Error(1)
}

func slotAt(id, participantID string, pt domain.ParticipantType, hour time.Time, status domain.SlotStatus) domain.TimeSlot {
	return domain.TimeSlot{
		ID:              id,
		ParticipantID:   participantID,
		ParticipantType: pt,
		StartTime:       hour,
		Status:          status,
	}
}

func TestService_BookableSlots_CountsAndFlags(t *testing.T) {
	slots := new(MockSlotReader)
	svc := NewService(slots)

	h9 := time.Date(2030, 1, 1, 9, 0, 0, 0, time.UTC)
	h10 := h9.Add(time.Hour)
	h11 := h9.Add(2 * time.Hour)
	from, to := h9, h9.Add(24*time.Hour)

	slots.On("ListByParticipant", mock.Anything, "student-1", domain.ParticipantStudent, from, to).
		Return([]domain.TimeSlot{
			slotAt("s9", "student-1", domain.ParticipantStudent, h9, domain.SlotAvailable),
			slotAt("s10", "student-1", domain.ParticipantStudent, h10, domain.SlotAvailable),
			slotAt("s11", "student-1", domain.ParticipantStudent, h11, domain.SlotScheduled),
		}, nil)
	slots.On("ListAvailableByType", mock.Anything, domain.ParticipantInstructor, from, to).
		Return([]domain.TimeSlot{
			slotAt("i9a", "instructor-1", domain.ParticipantInstructor, h9, domain.SlotAvailable),
			slotAt("i9b", "instructor-2", domain.ParticipantInstructor, h9, domain.SlotAvailable),
			slotAt("i11", "instructor-1", domain.ParticipantInstructor, h11, domain.SlotAvailable),
		}, nil)
	slots.On("ListAvailableByType", mock.Anything, domain.ParticipantAircraft, from, to).
		Return([]domain.TimeSlot{
			slotAt("a9", "aircraft-1", domain.ParticipantAircraft, h9, domain.SlotAvailable),
			slotAt("a10", "aircraft-1", domain.ParticipantAircraft, h10, domain.SlotAvailable),
		}, nil)

	out, err := svc.BookableSlots(context.Background(), "student-1", from, to)
	require.NoError(t, err)
	require.Len(t, out, 3)

	// 09:00 — both legs present, bookable
	assert.True(t, out[0].Bookable)
	assert.Equal(t, 2, out[0].InstructorCount)
	assert.Equal(t, 1, out[0].AircraftCount)

	// 10:00 — aircraft but no instructor
	assert.False(t, out[1].Bookable)
	assert.Equal(t, 0, out[1].InstructorCount)
	assert.Equal(t, 1, out[1].AircraftCount)

	// 11:00 — legs present, but the student slot is already scheduled
	assert.False(t, out[2].Bookable)
	assert.Equal(t, 1, out[2].InstructorCount)
	assert.Equal(t, 0, out[2].AircraftCount)
}

func TestService_BookableSlots_SkipsUnavailableStudentSlots(t *testing.T) {
	slots := new(MockSlotReader)
	svc := NewService(slots)

	h := time.Date(2030, 1, 1, 9, 0, 0, 0, time.UTC)
	from, to := h, h.Add(time.Hour)

	slots.On("ListByParticipant", mock.Anything, "student-1", domain.ParticipantStudent, from, to).
		Return([]domain.TimeSlot{
			slotAt("s9", "student-1", domain.ParticipantStudent, h, domain.SlotUnavailable),
		}, nil)
	slots.On("ListAvailableByType", mock.Anything, domain.ParticipantInstructor, from, to).
		Return([]domain.TimeSlot{}, nil)
	slots.On("ListAvailableByType", mock.Anything, domain.ParticipantAircraft, from, to).
		Return([]domain.TimeSlot{}, nil)

	out, err := svc.BookableSlots(context.Background(), "student-1", from, to)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestService_BookableSlots_RejectsEmptyRange(t *testing.T) {
	svc := NewService(new(MockSlotReader))

	h := time.Date(2030, 1, 1, 9, 0, 0, 0, time.UTC)
	_, err := svc.BookableSlots(context.Background(), "student-1", h, h)

	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_ResolveHour_PicksFirstByParticipantID(t *testing.T) {
	slots := new(MockSlotReader)
	svc := NewService(slots)

	h := time.Date(2030, 1, 1, 9, 0, 0, 0, time.UTC)

	slots.On("ListByParticipant", mock.Anything, "student-1", domain.ParticipantStudent, h, h.Add(time.Hour)).
		Return([]domain.TimeSlot{
			slotAt("s9", "student-1", domain.ParticipantStudent, h, domain.SlotAvailable),
		}, nil)
	// repository returns these ordered by participant_id ascending
	slots.On("ListAvailableByTypeAtHour", mock.Anything, domain.ParticipantInstructor, h).
		Return([]domain.TimeSlot{
			slotAt("i1", "instructor-1", domain.ParticipantInstructor, h, domain.SlotAvailable),
			slotAt("i2", "instructor-2", domain.ParticipantInstructor, h, domain.SlotAvailable),
		}, nil)
	slots.On("ListAvailableByTypeAtHour", mock.Anything, domain.ParticipantAircraft, h).
		Return([]domain.TimeSlot{
			slotAt("a1", "aircraft-1", domain.ParticipantAircraft, h, domain.SlotAvailable),
			slotAt("a2", "aircraft-2", domain.ParticipantAircraft, h, domain.SlotAvailable),
		}, nil)

	legs, err := svc.ResolveHour(context.Background(), "student-1", h)
	require.NoError(t, err)
	require.NotNil(t, legs)

	assert.Equal(t, "instructor-1", legs.Instructor.ParticipantID)
	assert.Equal(t, "aircraft-1", legs.Aircraft.ParticipantID)
	assert.Equal(t, "s9", legs.Student.ID)
}

func TestService_ResolveHour_NotBookableWithoutLegs(t *testing.T) {
	slots := new(MockSlotReader)
	svc := NewService(slots)

	h := time.Date(2030, 1, 1, 9, 0, 0, 0, time.UTC)

	slots.On("ListByParticipant", mock.Anything, "student-1", domain.ParticipantStudent, h, h.Add(time.Hour)).
		Return([]domain.TimeSlot{
			slotAt("s9", "student-1", domain.ParticipantStudent, h, domain.SlotAvailable),
		}, nil)
	slots.On("ListAvailableByTypeAtHour", mock.Anything, domain.ParticipantInstructor, h).
		Return([]domain.TimeSlot{}, nil)
	slots.On("ListAvailableByTypeAtHour", mock.Anything, domain.ParticipantAircraft, h).
		Return([]domain.TimeSlot{
			slotAt("a1", "aircraft-1", domain.ParticipantAircraft, h, domain.SlotAvailable),
		}, nil)

	legs, err := svc.ResolveHour(context.Background(), "student-1", h)
	require.NoError(t, err)
	assert.Nil(t, legs)
}

func TestService_ResolveHour_StudentSlotNotAvailable(t *testing.T) {
	slots := new(MockSlotReader)
	svc := NewService(slots)

	h := time.Date(2030, 1, 1, 9, 0, 0, 0, time.UTC)

	slots.On("ListByParticipant", mock.Anything, "student-1", domain.ParticipantStudent, h, h.Add(time.Hour)).
		Return([]domain.TimeSlot{
			slotAt("s9", "student-1", domain.ParticipantStudent, h, domain.SlotScheduled),
		}, nil)

	legs, err := svc.ResolveHour(context.Background(), "student-1", h)
	require.NoError(t, err)
	assert.Nil(t, legs)
}
