package repository

import (
	"context"
	"errors"
	"time"

	"flightsched/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ParticipantRepository struct {
	db *gorm.DB
}

func NewParticipantRepository(db *gorm.DB) *ParticipantRepository {
	return &ParticipantRepository{db: db}
}

type participantModel struct {
	ID        string    `gorm:"column:id;primaryKey"`
	Type      string    `gorm:"column:type;index"`
	Name      string    `gorm:"column:name"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (participantModel) TableName() string { return "participants" }

func toDomainParticipant(m participantModel) *domain.Participant {
	return &domain.Participant{
		ID:        m.ID,
		Type:      domain.ParticipantType(m.Type),
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
	}
}

// Register inserts the participant if it is not known yet. An existing row is
// left untouched — participants are immutable once referenced by a slot.
func (r *ParticipantRepository) Register(ctx context.Context, p *domain.Participant) error {
	m := participantModel{ID: p.ID, Type: string(p.Type), Name: p.Name}
	tx := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&m)
	return tx.Error
}

func (r *ParticipantRepository) GetByID(ctx context.Context, id string) (*domain.Participant, error) {
	var m participantModel
	tx := r.db.WithContext(ctx).First(&m, "id = ?", id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return toDomainParticipant(m), nil
}
