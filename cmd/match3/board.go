package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/engine"
	"github.com/vovakirdan/tui-match3/internal/games/match3"
)

var (
	flagBoardWidth   int
	flagBoardHeight  int
	flagBoardVariety int
	flagBoardGlyphs  bool
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Print a freshly generated board",
	Long: `Generate a match-free board and print it together with every swap
that would make a match. Useful for picking seeds.

Sizes default to the configured board.

Examples:
  match3 board
  match3 board --seed 42
  match3 board --width 6 --height 6 --variety 4 --glyphs`,
	RunE: runBoard,
}

func init() {
	boardCmd.Flags().IntVar(&flagBoardWidth, "width", 0, "Board width")
	boardCmd.Flags().IntVar(&flagBoardHeight, "height", 0, "Board height")
	boardCmd.Flags().IntVar(&flagBoardVariety, "variety", 0, "Number of tile kinds")
	boardCmd.Flags().BoolVar(&flagBoardGlyphs, "glyphs", false, "Print tile glyphs instead of digits")
	boardCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom match3 config YAML")
}

func runBoard(cmd *cobra.Command, _ []string) error {
	settings, err := config.LoadMatch3(flagConfig)
	if err != nil {
		return err
	}

	board := settings.Board
	board.Width = override(board.Width, flagBoardWidth)
	board.Height = override(board.Height, flagBoardHeight)
	board.Variety = override(board.Variety, flagBoardVariety)
	if err := board.Validate(); err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g, err := engine.Initialize(board.Width, board.Height, board.Variety, engine.NewRandom(seed))
	if err != nil {
		return err
	}

	glyph := engine.TileKind.Rune
	if flagBoardGlyphs {
		glyph = match3.Glyph
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Board %dx%d, %d kinds, seed %d\n\n", board.Width, board.Height, board.Variety, seed)
	for y := range g.Height() {
		row := make([]string, 0, g.Width())
		for _, c := range g.Row(y) {
			k, _ := g.Get(c)
			row = append(row, string(glyph(k)))
		}
		fmt.Fprintf(out, "  %s\n", strings.Join(row, " "))
	}

	legend := make([]string, 0, board.Variety)
	for k := range board.Variety {
		kind := engine.TileKind(k)
		legend = append(legend, fmt.Sprintf("%c=%s", glyph(kind), kind))
	}
	fmt.Fprintf(out, "\nKinds: %s\n\n", strings.Join(legend, " "))

	swaps := engine.PossibleSwaps(g)
	if len(swaps) == 0 {
		fmt.Fprintln(out, "No possible swaps: the board is stuck.")
		return nil
	}
	fmt.Fprintf(out, "Possible swaps (%d):\n", len(swaps))
	for _, s := range swaps {
		fmt.Fprintf(out, "  %v <-> %v\n", s.A, s.B)
	}
	return nil
}

// override returns flag when it was set, else v.
func override(v, flag int) int {
	if flag > 0 {
		return flag
	}
	return v
}
