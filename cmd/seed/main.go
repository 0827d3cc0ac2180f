package main

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"flightsched/internal/config"
	"flightsched/internal/database"
	"flightsched/internal/domain"
	"flightsched/internal/modules/availability"
	"flightsched/internal/pkg/logger"
	"flightsched/internal/repository"
)

// Seeds a demo roster: three students, two instructors, two aircraft, each
// available 09:00-17:00 UTC for the next three days.
func main() {
	cfg := config.Load()

	log := logger.New(cfg.Env)
	defer log.Sync()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("database connection failed", zap.Error(err))
	}
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("migration failed", zap.Error(err))
	}

	log.Info("cleaning old data")
	db.Exec("DELETE FROM reservations")
	db.Exec("DELETE FROM time_slots")
	db.Exec("DELETE FROM participants")

	participantRepo := repository.NewParticipantRepository(db)
	slotRepo := repository.NewSlotRepository(db)
	store := availability.NewService(slotRepo, participantRepo)

	roster := []domain.Participant{
		{ID: "student-1", Type: domain.ParticipantStudent, Name: "Alice Tan"},
		{ID: "student-2", Type: domain.ParticipantStudent, Name: "Ben Ortiz"},
		{ID: "student-3", Type: domain.ParticipantStudent, Name: "Chris Ma"},
		{ID: "instructor-1", Type: domain.ParticipantInstructor, Name: "Dana Cole"},
		{ID: "instructor-2", Type: domain.ParticipantInstructor, Name: "Evan Park"},
		{ID: "aircraft-1", Type: domain.ParticipantAircraft, Name: "Cessna 172 N12345"},
		{ID: "aircraft-2", Type: domain.ParticipantAircraft, Name: "Piper PA-28 N67890"},
	}

	ctx := context.Background()
	for _, p := range roster {
		if err := participantRepo.Register(ctx, &p); err != nil {
			log.Fatal("seed participant failed", zap.String("id", p.ID), zap.Error(err))
		}
	}

	start := time.Now().UTC().Truncate(time.Hour).Add(time.Hour)
	created := 0
	for day := 0; day < 3; day++ {
		for hour := 9; hour < 17; hour++ {
			t := time.Date(start.Year(), start.Month(), start.Day(), hour, 0, 0, 0, time.UTC).AddDate(0, 0, day)
			if !t.After(time.Now().UTC()) {
				continue
			}
			for _, p := range roster {
				if _, err := store.SetAvailable(ctx, p.ID, p.Type, t); err != nil {
					log.Fatal("seed slot failed",
						zap.String("participant", p.ID),
						zap.Time("start", t),
						zap.Error(err))
				}
				created++
			}
		}
	}

	fmt.Printf("seeded %d participants, %d slots\n", len(roster), created)
}
