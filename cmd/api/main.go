package main

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"flightsched/internal/config"
	"flightsched/internal/database"
	"flightsched/internal/middleware"
	"flightsched/internal/modules/availability"
	"flightsched/internal/modules/reservation"
	"flightsched/internal/modules/schedule"
	"flightsched/internal/pkg/logger"
	"flightsched/internal/repository"
)

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

	participantRepo := repository.NewParticipantRepository(db)
	slotRepo := repository.NewSlotRepository(db)
	reservationRepo := repository.NewReservationRepository(db)

	availabilityService := availability.NewService(slotRepo, participantRepo)
	availabilityHandler := availability.NewHandler(availabilityService)

	scheduleService := schedule.NewService(slotRepo)
	scheduleHandler := schedule.NewHandler(scheduleService)

	reservationService := reservation.NewService(reservationRepo, scheduleService, log)
	reservationHandler := reservation.NewHandler(reservationService)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORS())

	flight := r.Group("/flight")
	{
		availabilityHandler.RegisterRoutes(flight)
		scheduleHandler.RegisterRoutes(flight)
		reservationHandler.RegisterRoutes(flight)
	}

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	log.Info("starting api",
		zap.String("port", cfg.Port),
		zap.String("env", cfg.Env))

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
