package repository

import (
	"context"
	"errors"
	"time"

	"flightsched/internal/domain"

	"gorm.io/gorm"
)

type SlotRepository struct {
	db *gorm.DB
}

func NewSlotRepository(db *gorm.DB) *SlotRepository {
	return &SlotRepository{db: db}
}

type slotModel struct {
	ID              string    `gorm:"column:id;primaryKey"`
	ParticipantID   string    `gorm:"column:participant_id;uniqueIndex:idx_participant_hour"`
	ParticipantType string    `gorm:"column:participant_type;index:idx_type_time"`
	StartTime       time.Time `gorm:"column:start_time;uniqueIndex:idx_participant_hour;index:idx_type_time"`
	Status          string    `gorm:"column:status"`
	ReservationID   *string   `gorm:"column:reservation_id"`
	CreatedAt       time.Time `gorm:"column:created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at"`
}

func (slotModel) TableName() string { return "time_slots" }

func toDomainSlot(m slotModel) *domain.TimeSlot {
	return &domain.TimeSlot{
		ID:              m.ID,
		ParticipantID:   m.ParticipantID,
		ParticipantType: domain.ParticipantType(m.ParticipantType),
		StartTime:       m.StartTime.UTC(),
		Status:          domain.SlotStatus(m.Status),
		ReservationID:   m.ReservationID,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func toSlotModel(s *domain.TimeSlot) slotModel {
	return slotModel{
		ID:              s.ID,
		ParticipantID:   s.ParticipantID,
		ParticipantType: string(s.ParticipantType),
		StartTime:       s.StartTime.UTC(),
		Status:          string(s.Status),
		ReservationID:   s.ReservationID,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

// Create inserts a new slot. The (participant_id, start_time) unique index
// turns a concurrent insert for the same hour into ErrSlotConflict.
func (r *SlotRepository) Create(ctx context.Context, s *domain.TimeSlot) error {
	m := toSlotModel(s)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		if isDuplicateKey(tx.Error) {
			return ErrSlotConflict
		}
		return tx.Error
	}
	*s = *toDomainSlot(m)
	return nil
}

func (r *SlotRepository) GetByID(ctx context.Context, id string) (*domain.TimeSlot, error) {
	var m slotModel
	tx := r.db.WithContext(ctx).First(&m, "id = ?", id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return toDomainSlot(m), nil
}

func (r *SlotRepository) GetByParticipantAndHour(ctx context.Context, participantID string, hour time.Time) (*domain.TimeSlot, error) {
	var m slotModel
	tx := r.db.WithContext(ctx).
		First(&m, "participant_id = ? AND start_time = ?", participantID, hour.UTC())
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return toDomainSlot(m), nil
}

// ListByParticipant returns every slot of one participant inside [from, to),
// ordered by start_time then id so repeated polls see a stable sequence.
func (r *SlotRepository) ListByParticipant(ctx context.Context, participantID string, participantType domain.ParticipantType, from, to time.Time) ([]domain.TimeSlot, error) {
	var ms []slotModel
	tx := r.db.WithContext(ctx).
		Where("participant_id = ? AND participant_type = ? AND start_time >= ? AND start_time < ?",
			participantID, string(participantType), from.UTC(), to.UTC()).
		Order("start_time asc, id asc").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.TimeSlot, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainSlot(m))
	}
	return out, nil
}

// ListAvailableByType returns available slots of one participant type inside
// [from, to), ordered by start_time then participant id.
func (r *SlotRepository) ListAvailableByType(ctx context.Context, participantType domain.ParticipantType, from, to time.Time) ([]domain.TimeSlot, error) {
	var ms []slotModel
	tx := r.db.WithContext(ctx).
		Where("participant_type = ? AND status = ? AND start_time >= ? AND start_time < ?",
			string(participantType), string(domain.SlotAvailable), from.UTC(), to.UTC()).
		Order("start_time asc, participant_id asc").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.TimeSlot, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainSlot(m))
	}
	return out, nil
}

// ListAvailableByTypeAtHour returns available slots of one type at exactly the
// given hour, ascending participant id. The booking tie-break (pick the first)
// relies on this ordering.
func (r *SlotRepository) ListAvailableByTypeAtHour(ctx context.Context, participantType domain.ParticipantType, hour time.Time) ([]domain.TimeSlot, error) {
	var ms []slotModel
	tx := r.db.WithContext(ctx).
		Where("participant_type = ? AND status = ? AND start_time = ?",
			string(participantType), string(domain.SlotAvailable), hour.UTC()).
		Order("participant_id asc").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.TimeSlot, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainSlot(m))
	}
	return out, nil
}

// UpdateStatus flips a slot from one status to another with a compare-and-swap
// on the current status. Slots consumed by an active reservation (non-null
// reservation_id) are excluded — only cancellation releases those.
// ErrSlotConflict means the slot was not in `from` anymore, or was consumed,
// when the update ran.
func (r *SlotRepository) UpdateStatus(ctx context.Context, id string, from, to domain.SlotStatus) error {
	tx := r.db.WithContext(ctx).
		Model(&slotModel{}).
		Where("id = ? AND status = ? AND reservation_id IS NULL", id, string(from)).
		Update("status", string(to))
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrSlotConflict
	}
	return nil
}
