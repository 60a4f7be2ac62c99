package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	// Act
	cfg, err := Load()

	// Assert
	assert.Nil(t, err)
	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, 8, cfg.StartHour)
	assert.Equal(t, 18, cfg.EndHour)
	assert.Equal(t, 30, cfg.SlotMinutes)
	assert.Equal(t, 1000, cfg.MaxIterations)
	assert.Equal(t, int64(0), cfg.Seed)
}

func TestLoadFromEnvironment(t *testing.T) {
	// Arrange
	t.Setenv("ENV", EnvProduction)
	t.Setenv("SCHEDULER_START_HOUR", "9")
	t.Setenv("SCHEDULER_END_HOUR", "17")
	t.Setenv("SCHEDULER_SLOT_MINUTES", "60")
	t.Setenv("SCHEDULER_MAX_ITERATIONS", "500")
	t.Setenv("SCHEDULER_SEED", "42")

	// Act
	cfg, err := Load()

	// Assert
	assert.Nil(t, err)
	assert.Equal(t, EnvProduction, cfg.Env)
	assert.Equal(t, 9, cfg.StartHour)
	assert.Equal(t, 17, cfg.EndHour)
	assert.Equal(t, 60, cfg.SlotMinutes)
	assert.Equal(t, 500, cfg.MaxIterations)
	assert.Equal(t, int64(42), cfg.Seed)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Run("Inverted hours", func(t *testing.T) {
		t.Setenv("SCHEDULER_START_HOUR", "18")
		t.Setenv("SCHEDULER_END_HOUR", "8")

		_, err := Load()
		assert.NotNil(t, err)
	})

	t.Run("Non-positive slot duration", func(t *testing.T) {
		t.Setenv("SCHEDULER_SLOT_MINUTES", "0")

		_, err := Load()
		assert.NotNil(t, err)
	})

	t.Run("Non-positive iteration budget", func(t *testing.T) {
		t.Setenv("SCHEDULER_MAX_ITERATIONS", "-1")

		_, err := Load()
		assert.NotNil(t, err)
	})
}
