package config

import (
	_ "embed"
)

//go:embed defaults/numblocks.yaml
var defaultNumblocksYAML []byte

// DefaultNumblocksConfig returns the built-in configuration.
func DefaultNumblocksConfig() NumblocksConfig {
	return NumblocksConfig{
		Rules: RulesConfig{
			MaxValue:       100,
			MergeTolerance: 25,
			SpawnMargin:    20,
			FloorOffset:    10,
			SplitOffset:    50,
		},
		Targets: TargetsConfig{
			Min: 10,
			Max: 100,
		},
		Timing: TimingConfig{
			CelebrateMS:   1500,
			NextLevelMS:   400,
			DoubleClickMS: 400,
		},
		Surface: SurfaceConfig{
			ColUnits:   9,
			RowUnits:   18,
			HUDRows:    2,
			FooterRows: 1,
		},
		Audio: AudioConfig{
			Enabled:    true,
			Volume:     1.0,
			SampleRate: 44100,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "none",
				MaxAt: 20,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultNumblocksYAML
}
