// numblocks is a terminal number puzzle: drag numbered blocks onto each
// other until they add up to the target.
//
// Usage:
//
//	numblocks                  - Play the challenge mode
//	numblocks play [mode]      - Play a mode (numblocks, numblocks_free)
//	numblocks list             - List available modes
//	numblocks shapes [value]   - Show the shapes a value can take
//	numblocks config show      - Print the effective configuration
//	numblocks config init      - Write the default configuration file
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--config <path>      - Use a custom YAML or TOML config
//	--difficulty <name>  - Preset: easy, normal, hard, free
//	--log-level <level>  - debug, info, warn, error
//	--log-file <path>    - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import modes to register them
	_ "github.com/vovakirdan/numblocks/internal/games/numblocks"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

// logFile is the open --log-file, closed after the command runs.
var logFile *os.File

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "numblocks",
	Short: "Numblocks - add numbered blocks together in your terminal",
	Long: `Numblocks is a terminal puzzle about numbers. Each level asks for a
target; drag blocks onto each other with the mouse until one of them
shows it.

Available commands:
  play     - Play a mode (the default)
  list     - Show all modes
  shapes   - Show the shapes of a value
  config   - Show or create the configuration

Examples:
  numblocks
  numblocks play numblocks_free
  numblocks --difficulty easy
  numblocks shapes 12 24 100
  numblocks config show --config ./my-numblocks.toml`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPostRun: func(*cobra.Command, []string) {
		if logFile != nil {
			logFile.Close()
		}
	},
	RunE: runPlay,
}

func init() {
	// Assigned here rather than in the literal: setupLogging refers back to
	// rootCmd through isPlay, which would be an initialization cycle.
	rootCmd.PersistentPreRunE = setupLogging

	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a custom config (YAML, or TOML by extension)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, free")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(shapesCmd)
	rootCmd.AddCommand(configCmd)
}

// setupLogging builds the logger and stores it in the command context.
// The game takes over the terminal, so play logs nowhere without --log-file.
func setupLogging(cmd *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var w io.Writer = os.Stderr
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		logFile = f
		w = f
	case isPlay(cmd):
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Prefix:          "numblocks",
		Level:           level,
	})
	cmd.SetContext(log.WithContext(cmd.Context(), logger))
	return nil
}

func isPlay(cmd *cobra.Command) bool {
	return cmd == rootCmd || cmd == playCmd
}

// loggerFrom returns the logger set up for cmd.
func loggerFrom(cmd *cobra.Command) *log.Logger {
	return log.FromContext(cmd.Context())
}
