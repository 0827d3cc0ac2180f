package repository

import "gorm.io/gorm"

// AutoMigrate creates or updates the engine's tables and indexes.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&participantModel{},
		&slotModel{},
		&reservationModel{},
	)
}
