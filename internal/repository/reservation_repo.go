package repository

import (
	"context"
	"errors"
	"time"

	"flightsched/internal/domain"

	"gorm.io/gorm"
)

type ReservationRepository struct {
	db *gorm.DB
}

func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

type reservationModel struct {
	ID           string    `gorm:"column:id;primaryKey"`
	StudentID    string    `gorm:"column:student_id;index"`
	InstructorID string    `gorm:"column:instructor_id"`
	AircraftID   string    `gorm:"column:aircraft_id"`
	StartTime    time.Time `gorm:"column:start_time"`
	Status       string    `gorm:"column:status"`

	StudentSlotID    string `gorm:"column:student_slot_id"`
	InstructorSlotID string `gorm:"column:instructor_slot_id"`
	AircraftSlotID   string `gorm:"column:aircraft_slot_id"`

	CreatedAt   time.Time  `gorm:"column:created_at"`
	UpdatedAt   time.Time  `gorm:"column:updated_at"`
	CancelledAt *time.Time `gorm:"column:cancelled_at"`
}

func (reservationModel) TableName() string { return "reservations" }

func toDomainReservation(m reservationModel) *domain.Reservation {
	return &domain.Reservation{
		ID:               m.ID,
		StudentID:        m.StudentID,
		InstructorID:     m.InstructorID,
		AircraftID:       m.AircraftID,
		StartTime:        m.StartTime.UTC(),
		Status:           domain.ReservationStatus(m.Status),
		StudentSlotID:    m.StudentSlotID,
		InstructorSlotID: m.InstructorSlotID,
		AircraftSlotID:   m.AircraftSlotID,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
		CancelledAt:      m.CancelledAt,
	}
}

func (r *ReservationRepository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	var m reservationModel
	tx := r.db.WithContext(ctx).First(&m, "id = ?", id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return toDomainReservation(m), nil
}

// BookLegs commits a booking in one transaction: the reservation row plus the
// three slot transitions. Every slot update is a compare-and-swap on
// status='available'; if any leg was taken in the meantime the whole
// transaction rolls back with ErrSlotConflict. A duplicate reservation id
// rolls back with ErrDuplicateReservationID so the caller can regenerate the
// code and retry.
func (r *ReservationRepository) BookLegs(ctx context.Context, res *domain.Reservation) error {
	m := reservationModel{
		ID:               res.ID,
		StudentID:        res.StudentID,
		InstructorID:     res.InstructorID,
		AircraftID:       res.AircraftID,
		StartTime:        res.StartTime.UTC(),
		Status:           string(domain.ReservationActive),
		StudentSlotID:    res.StudentSlotID,
		InstructorSlotID: res.InstructorSlotID,
		AircraftSlotID:   res.AircraftSlotID,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&m).Error; err != nil {
			if isDuplicateKey(err) {
				return ErrDuplicateReservationID
			}
			return err
		}

		if err := casSlot(tx, res.StudentSlotID, domain.SlotScheduled, &res.ID); err != nil {
			return err
		}
		if err := casSlot(tx, res.InstructorSlotID, domain.SlotUnavailable, &res.ID); err != nil {
			return err
		}
		if err := casSlot(tx, res.AircraftSlotID, domain.SlotUnavailable, &res.ID); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}

	*res = *toDomainReservation(m)
	return nil
}

// ReleaseLegs cancels an active reservation and frees its three slots in one
// transaction. Returns ErrSlotConflict when the reservation is not active
// anymore (a concurrent cancel already released the legs).
func (r *ReservationRepository) ReleaseLegs(ctx context.Context, reservationID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UTC()
		upd := tx.Model(&reservationModel{}).
			Where("id = ? AND status = ?", reservationID, string(domain.ReservationActive)).
			Updates(map[string]any{
				"status":       string(domain.ReservationCancelled),
				"cancelled_at": &now,
			})
		if upd.Error != nil {
			return upd.Error
		}
		if upd.RowsAffected == 0 {
			return ErrSlotConflict
		}

		rel := tx.Model(&slotModel{}).
			Where("reservation_id = ?", reservationID).
			Updates(map[string]any{
				"status":         string(domain.SlotAvailable),
				"reservation_id": nil,
			})
		if rel.Error != nil {
			return rel.Error
		}
		if rel.RowsAffected != 3 {
			return ErrSlotConflict
		}
		return nil
	})
}

func casSlot(tx *gorm.DB, slotID string, to domain.SlotStatus, reservationID *string) error {
	upd := tx.Model(&slotModel{}).
		Where("id = ? AND status = ?", slotID, string(domain.SlotAvailable)).
		Updates(map[string]any{
			"status":         string(to),
			"reservation_id": reservationID,
		})
	if upd.Error != nil {
		return upd.Error
	}
	if upd.RowsAffected == 0 {
		return ErrSlotConflict
	}
	return nil
}
