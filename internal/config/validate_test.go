package config

import (
	"errors"
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*NumblocksConfig)
		field  string
	}{
		{"target min too low", func(c *NumblocksConfig) { c.Targets.Min = 1 }, "targets.min"},
		{"target max too high", func(c *NumblocksConfig) { c.Targets.Max = 101 }, "targets.max"},
		{"min above max", func(c *NumblocksConfig) { c.Targets.Min, c.Targets.Max = 60, 40 }, "targets"},
		{"unreachable target", func(c *NumblocksConfig) { c.Rules.MaxValue = 50 }, "targets.max"},
		{"zero celebrate", func(c *NumblocksConfig) { c.Timing.CelebrateMS = 0 }, "timing.celebrate_ms"},
		{"zero next level", func(c *NumblocksConfig) { c.Timing.NextLevelMS = 0 }, "timing.next_level_ms"},
		{"zero surface scale", func(c *NumblocksConfig) { c.Surface.RowUnits = 0 }, "surface"},
		{"loud", func(c *NumblocksConfig) { c.Audio.Volume = 1.5 }, "audio.volume"},
		{"progression", func(c *NumblocksConfig) { c.Difficulty.Progression.Type = "time" }, "difficulty.progression.type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultNumblocksConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalid) {
				t.Fatalf("Validate() = %v, want ErrInvalid", err)
			}
			var verr ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("error %v carries no ValidationError", err)
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("error %q does not name %s", err, tt.field)
			}
		})
	}
}

func TestValidateJoinsErrors(t *testing.T) {
	cfg := DefaultNumblocksConfig()
	cfg.Targets.Min = 0
	cfg.Audio.Volume = -1
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected errors")
	}
	if !strings.Contains(err.Error(), "targets.min") || !strings.Contains(err.Error(), "audio.volume") {
		t.Errorf("joined error misses a field: %v", err)
	}
}
