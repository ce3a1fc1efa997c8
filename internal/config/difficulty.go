package config

import "math"

// DifficultyManager calculates the target range based on score.
type DifficultyManager struct {
	cfg          DifficultyConfig
	targets      TargetsConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig, targets TargetsConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		targets:      targets,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type == "score"
}

// Level returns the current difficulty level (0.0 to 1.0) for a score.
func (d *DifficultyManager) Level(score int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}
	progress := clampF(float64(score)/maxAt, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// TargetRange returns the inclusive target bounds for a score.
// The lower bound climbs halfway towards the upper bound at full difficulty.
func (d *DifficultyManager) TargetRange(score int) (lo, hi int) {
	lo, hi = d.targets.Min, d.targets.Max
	span := float64(hi-lo) / 2
	lo += int(math.Round(d.Level(score) * span))
	return min(lo, hi), hi
}

func clampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
