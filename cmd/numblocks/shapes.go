package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/numblocks/internal/games/numblocks/engine"
)

var shapesCmd = &cobra.Command{
	Use:   "shapes [value...]",
	Short: "Show the shapes a value can take",
	Long: `Lists the widths a block of each value cycles through when it is
reshaped, with the resulting height. Uneven shapes leave the end of the
bottom row empty. Without arguments, values 1 to 20 are shown.

Examples:
  numblocks shapes
  numblocks shapes 12 24 100`,
	RunE: runShapes,
}

func runShapes(cmd *cobra.Command, args []string) error {
	values, err := parseValues(args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "  %5s  %-6s  %s\n", "Value", "Colour", "Shapes (width x height)")
	for _, v := range values {
		style := engine.StyleFor(v)
		swatch := lipgloss.NewStyle().Background(lipgloss.Color(style.Fill)).Render("      ")

		shapes := make([]string, 0, len(engine.ValidWidths(v)))
		for _, w := range engine.ValidWidths(v) {
			s := fmt.Sprintf("%dx%d", w, engine.HeightFor(v, w))
			if !engine.IsExactShape(v, w) {
				s += "*"
			}
			shapes = append(shapes, s)
		}
		fmt.Fprintf(out, "  %5d  %s  %s\n", v, swatch, strings.Join(shapes, " "))
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "  * uneven: the bottom row is not full")
	return nil
}

func parseValues(args []string) ([]int, error) {
	if len(args) == 0 {
		values := make([]int, 20)
		for i := range values {
			values[i] = i + 1
		}
		return values, nil
	}

	values := make([]int, 0, len(args))
	for _, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil || v < 1 || v > engine.DefaultRules().MaxValue {
			return nil, fmt.Errorf("invalid value %q: want a whole number from 1 to %d", a, engine.DefaultRules().MaxValue)
		}
		values = append(values, v)
	}
	return values, nil
}
