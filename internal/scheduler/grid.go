package scheduler

import (
	"fmt"

	"unischeduler/internal/model"
)

// GridConfig bounds the universe of candidate start times. Zero values fall
// back to the defaults: 08:00 to 18:00 in 30-minute steps.
type GridConfig struct {
	StartHour   int
	EndHour     int
	SlotMinutes int
}

const (
	DefaultStartHour   = 8
	DefaultEndHour     = 18
	DefaultSlotMinutes = 30
)

func (cfg GridConfig) withDefaults() GridConfig {
	if cfg.StartHour == 0 {
		cfg.StartHour = DefaultStartHour
	}
	if cfg.EndHour == 0 {
		cfg.EndHour = DefaultEndHour
	}
	if cfg.SlotMinutes == 0 {
		cfg.SlotMinutes = DefaultSlotMinutes
	}
	return cfg
}

func (cfg GridConfig) validate() error {
	if cfg.StartHour < 0 || cfg.EndHour > 24 || cfg.StartHour >= cfg.EndHour {
		return fmt.Errorf("invalid grid hours: %v..%v", cfg.StartHour, cfg.EndHour)
	}
	if cfg.SlotMinutes <= 0 {
		return fmt.Errorf("slot duration must be positive: %v", cfg.SlotMinutes)
	}
	return nil
}

// Slot is one candidate placement start. End is the nominal end of the slot;
// the engine only consumes Start and derives real end times from course
// durations.
type Slot struct {
	Day   string
	Start string
	End   string
}

// buildGrid enumerates every (day, start) candidate across the five teaching
// days. Output order is irrelevant to the engine, which shuffles before each
// attempt; the enumeration itself is deterministic for a given config.
func buildGrid(cfg GridConfig) []Slot {
	var slots []Slot
	for _, day := range model.Days {
		for minute := cfg.StartHour * 60; minute < cfg.EndHour*60; minute += cfg.SlotMinutes {
			start := fmt.Sprintf("%02d:%02d", minute/60, minute%60)
			endMinute := minute + cfg.SlotMinutes
			end := fmt.Sprintf("%02d:%02d", endMinute/60, endMinute%60)
			slots = append(slots, Slot{Day: day, Start: start, End: end})
		}
	}
	return slots
}
