package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// ValidationError names the offending field.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrInvalid, e.Field, e.Message)
}

func (e ValidationError) Unwrap() error {
	return ErrInvalid
}

func invalid(field, format string, args ...any) error {
	return ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// Validate checks value ranges. All failures are joined.
func (c NumblocksConfig) Validate() error {
	var errs []error

	if c.Rules.MaxValue < 2 || c.Rules.MaxValue > 100 {
		errs = append(errs, invalid("rules.max_value", "%d outside [2, 100]", c.Rules.MaxValue))
	}
	if c.Rules.MergeTolerance < 0 {
		errs = append(errs, invalid("rules.merge_tolerance", "must not be negative"))
	}
	if c.Rules.SpawnMargin < 0 {
		errs = append(errs, invalid("rules.spawn_margin", "must not be negative"))
	}

	if c.Targets.Min < 2 || c.Targets.Min > 100 {
		errs = append(errs, invalid("targets.min", "%d outside [2, 100]", c.Targets.Min))
	}
	if c.Targets.Max < 2 || c.Targets.Max > 100 {
		errs = append(errs, invalid("targets.max", "%d outside [2, 100]", c.Targets.Max))
	}
	if c.Targets.Min > c.Targets.Max {
		errs = append(errs, invalid("targets", "min %d above max %d", c.Targets.Min, c.Targets.Max))
	}
	if c.Targets.Max > c.Rules.MaxValue {
		errs = append(errs, invalid("targets.max", "%d cannot be reached with max_value %d", c.Targets.Max, c.Rules.MaxValue))
	}

	if c.Timing.CelebrateMS <= 0 {
		errs = append(errs, invalid("timing.celebrate_ms", "must be positive"))
	}
	if c.Timing.NextLevelMS <= 0 {
		errs = append(errs, invalid("timing.next_level_ms", "must be positive"))
	}
	if c.Timing.DoubleClickMS < 0 {
		errs = append(errs, invalid("timing.double_click_ms", "must not be negative"))
	}

	if c.Surface.ColUnits <= 0 || c.Surface.RowUnits <= 0 {
		errs = append(errs, invalid("surface", "col_units and row_units must be positive"))
	}
	if c.Surface.HUDRows < 0 || c.Surface.FooterRows < 0 {
		errs = append(errs, invalid("surface", "row counts must not be negative"))
	}

	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, invalid("audio.volume", "%.2f outside [0, 1]", c.Audio.Volume))
	}

	switch c.Difficulty.Progression.Type {
	case "", "none", "score":
	default:
		errs = append(errs, invalid("difficulty.progression.type", "unknown type %q", c.Difficulty.Progression.Type))
	}

	return errors.Join(errs...)
}
