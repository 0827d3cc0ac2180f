package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	// ErrSlotConflict means a status compare-and-swap found the slot in a
	// different state than expected — somebody else won the race.
	ErrSlotConflict = errors.New("slot status conflict")

	// ErrDuplicateReservationID means the generated reservation code already
	// exists. Callers regenerate and retry.
	ErrDuplicateReservationID = errors.New("duplicate reservation id")
)

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	// the modernc sqlite driver is not covered by gorm's error translation
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
