package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/numblocks/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available modes",
	Long:  `Shows every registered mode with its controls.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	games := registry.List()

	if len(games) == 0 {
		fmt.Fprintln(out, "No modes available.")
		return
	}

	fmt.Fprintln(out, "Available modes:")
	fmt.Fprintln(out)

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range games {
		fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	// Controls are shared by the modes; show them once.
	if g, err := registry.Create(games[0].ID); err == nil {
		if controls := registry.ControlsOf(g); len(controls) > 0 {
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Controls:")
			for _, c := range controls {
				fmt.Fprintf(out, "  %-14s %s\n", c.Keys, c.Description)
			}
		}
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'numblocks play <id>' to play a mode.")
}
