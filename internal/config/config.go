package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config is the environment-level configuration for the scheduler front
// ends. Flags may still override individual values per run.
type Config struct {
	Env      string
	LogLevel string

	StartHour     int
	EndHour       int
	SlotMinutes   int
	MaxIterations int
	Seed          int64
}

// Load reads a .env file when present, then the process environment, with
// defaults for everything.
func Load() (*Config, error) {
	// Missing .env is fine; the environment alone is enough.
	_ = godotenv.Load(".env")

	v := viper.New()
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("LOG_LEVEL", "")
	v.SetDefault("SCHEDULER_START_HOUR", 8)
	v.SetDefault("SCHEDULER_END_HOUR", 18)
	v.SetDefault("SCHEDULER_SLOT_MINUTES", 30)
	v.SetDefault("SCHEDULER_MAX_ITERATIONS", 1000)
	v.SetDefault("SCHEDULER_SEED", 0)
	v.AutomaticEnv()

	cfg := &Config{
		Env:           v.GetString("ENV"),
		LogLevel:      v.GetString("LOG_LEVEL"),
		StartHour:     v.GetInt("SCHEDULER_START_HOUR"),
		EndHour:       v.GetInt("SCHEDULER_END_HOUR"),
		SlotMinutes:   v.GetInt("SCHEDULER_SLOT_MINUTES"),
		MaxIterations: v.GetInt("SCHEDULER_MAX_ITERATIONS"),
		Seed:          v.GetInt64("SCHEDULER_SEED"),
	}

	if cfg.StartHour < 0 || cfg.EndHour > 24 || cfg.StartHour >= cfg.EndHour {
		return nil, fmt.Errorf("invalid scheduling hours: %v..%v", cfg.StartHour, cfg.EndHour)
	}
	if cfg.SlotMinutes <= 0 {
		return nil, fmt.Errorf("SCHEDULER_SLOT_MINUTES must be positive: %v", cfg.SlotMinutes)
	}
	if cfg.MaxIterations <= 0 {
		return nil, fmt.Errorf("SCHEDULER_MAX_ITERATIONS must be positive: %v", cfg.MaxIterations)
	}
	return cfg, nil
}
