// Package config provides YAML-based configuration loading and difficulty
// management for numblocks.
package config

import "time"

// NumblocksConfig contains all tunable settings of the game.
type NumblocksConfig struct {
	Rules      RulesConfig      `yaml:"rules" toml:"rules"`
	Targets    TargetsConfig    `yaml:"targets" toml:"targets"`
	Timing     TimingConfig     `yaml:"timing" toml:"timing"`
	Surface    SurfaceConfig    `yaml:"surface" toml:"surface"`
	Audio      AudioConfig      `yaml:"audio" toml:"audio"`
	Mode       ModeConfig       `yaml:"mode" toml:"mode"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
}

// RulesConfig defines board limits and distances, in surface units.
type RulesConfig struct {
	MaxValue       int     `yaml:"max_value" toml:"max_value"`
	MergeTolerance float64 `yaml:"merge_tolerance" toml:"merge_tolerance"`
	SpawnMargin    float64 `yaml:"spawn_margin" toml:"spawn_margin"`
	FloorOffset    float64 `yaml:"floor_offset" toml:"floor_offset"`
	SplitOffset    float64 `yaml:"split_offset" toml:"split_offset"`
}

// TargetsConfig bounds the randomly chosen level target (inclusive).
type TargetsConfig struct {
	Min int `yaml:"min" toml:"min"`
	Max int `yaml:"max" toml:"max"`
}

// TimingConfig holds delays in milliseconds.
type TimingConfig struct {
	CelebrateMS   int `yaml:"celebrate_ms" toml:"celebrate_ms"`       // Solved level stays visible
	NextLevelMS   int `yaml:"next_level_ms" toml:"next_level_ms"`     // Empty surface before the next level
	DoubleClickMS int `yaml:"double_click_ms" toml:"double_click_ms"` // Second press within this window splits
}

// CelebrateDelay returns the celebration delay.
func (t TimingConfig) CelebrateDelay() time.Duration {
	return time.Duration(t.CelebrateMS) * time.Millisecond
}

// NextLevelDelay returns the delay before the next level spawns.
func (t TimingConfig) NextLevelDelay() time.Duration {
	return time.Duration(t.NextLevelMS) * time.Millisecond
}

// DoubleClick returns the double-click window.
func (t TimingConfig) DoubleClick() time.Duration {
	return time.Duration(t.DoubleClickMS) * time.Millisecond
}

// SurfaceConfig maps terminal cells to surface units.
type SurfaceConfig struct {
	ColUnits   float64 `yaml:"col_units" toml:"col_units"` // Surface units per terminal column
	RowUnits   float64 `yaml:"row_units" toml:"row_units"` // Surface units per terminal row
	HUDRows    int     `yaml:"hud_rows" toml:"hud_rows"`
	FooterRows int     `yaml:"footer_rows" toml:"footer_rows"`
}

// AudioConfig controls sound output.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled" toml:"enabled"`
	Volume     float64 `yaml:"volume" toml:"volume"` // 0.0 to 1.0
	SampleRate int     `yaml:"sample_rate" toml:"sample_rate"`
}

// ModeConfig selects the starting mode.
type ModeConfig struct {
	Free bool `yaml:"free" toml:"free"`
}

// DifficultyConfig defines how targets tighten as the score grows.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled" toml:"enabled"`
	InitialLevel float64           `yaml:"initial_level" toml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression" toml:"progression"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type" toml:"type"`     // "score" or "none"
	MaxAt int    `yaml:"max_at" toml:"max_at"` // Score at which max difficulty is reached
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFree   DifficultyPreset = "free"
)

// Presets lists the known presets in display order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFree}
}
