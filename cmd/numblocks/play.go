package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/numblocks/internal/audio"
	"github.com/vovakirdan/numblocks/internal/config"
	"github.com/vovakirdan/numblocks/internal/core"
	"github.com/vovakirdan/numblocks/internal/games/numblocks"
	"github.com/vovakirdan/numblocks/internal/platform/tui"
	"github.com/vovakirdan/numblocks/internal/registry"
)

const defaultMode = "numblocks"

var (
	flagMute        bool
	flagProgression bool
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing. The mode defaults to the challenge.

Mouse:
  Drag          - Move a block; drop it on another to add them
  Double-click  - Split one unit off a block
  Right-click   - Change a block's shape

Keys:
  1 / 0      - Add a 1 / a 10
  Tab        - Select the next block
  T / X      - Shape / split the selected block
  M          - Switch challenge and free play
  N          - New level
  P/Esc      - Pause
  A          - Sound on/off
  Q/Ctrl+C   - Quit

Difficulty options:
  easy    - Targets from 10 to 30
  normal  - Targets from 10 to 100
  hard    - Targets from 50 to 100
  free    - No targets, build up to 100

Examples:
  numblocks play
  numblocks play numblocks_free
  numblocks play --difficulty hard --progression
  numblocks play --config ./my-numblocks.yaml --mute`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	for _, c := range []*cobra.Command{rootCmd, playCmd} {
		c.Flags().BoolVar(&flagMute, "mute", false, "Start without sound")
		c.Flags().BoolVar(&flagProgression, "progression", false, "Raise the lowest target as the score grows")
	}
}

// loadConfig loads the configuration and applies the command-line overrides.
func loadConfig() (config.NumblocksConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return cfg, err
		}
		config.ApplyPreset(&cfg, preset)
	}
	if flagProgression {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.Progression.Type = "score"
	}
	return cfg, cfg.Validate()
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger := loggerFrom(cmd)

	modeID := defaultMode
	if len(args) > 0 {
		modeID = args[0]
	}
	if !registry.Exists(modeID) {
		return fmt.Errorf("unknown mode %q; run 'numblocks list' to see available modes", modeID)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	numblocks.SetConfig(cfg)
	numblocks.SetLogger(logger)

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	player := newPlayer(cfg.Audio, flagMute, logger)
	defer player.Close()

	game, err := registry.Create(modeID)
	if err != nil {
		return err
	}

	logger.Info("starting", "mode", modeID, "size", fmt.Sprintf("%dx%d", width, height), "seed", flagSeed)
	if err := tui.Run(game, player, logger, runtime); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// newPlayer opens the speaker as configured. A muted player keeps its
// device so the mute key can bring sound back.
func newPlayer(cfg config.AudioConfig, muted bool, logger *log.Logger) *audio.Player {
	player := audio.New(audio.Config{
		Enabled:    cfg.Enabled,
		Volume:     cfg.Volume,
		SampleRate: cfg.SampleRate,
	}, logger)
	if muted {
		player.ToggleMute()
	}
	return player
}
