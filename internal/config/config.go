package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL string
	Port        string
	Env         string
}

// Load reads .env when present, then the environment. Defaults keep the
// service runnable with zero setup: a local sqlite file on :9000.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		Port:        os.Getenv("PORT"),
		Env:         os.Getenv("APP_ENV"),
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "flightsched.db"
	}
	if cfg.Port == "" {
		cfg.Port = "9000"
	}
	if cfg.Env == "" {
		cfg.Env = "development"
	}

	return cfg
}
