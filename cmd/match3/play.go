package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/platform/tui"
	"github.com/vovakirdan/tui-match3/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [board]",
	Short: "Play a board",
	Long: `Start playing the specified board preset (default: match3).

Controls:
  Arrows/WASD/HJKL - Move the cursor
  Space/Enter      - Select a tile (Enter again cancels)
  Direction        - With a tile selected, swap toward that neighbour
  P                - Pause
  E                - End the round
  R                - Restart (after game over)
  B/Esc            - Back
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Two fewer tile kinds (at least 3)
  normal - The board's own number of kinds
  hard   - Two more tile kinds (at most 10)
  fixed  - The board exactly as configured

Examples:
  match3 play
  match3 play match3_mini
  match3 play match3 --difficulty hard
  match3 play --config ./my-match3.yaml --log ./match3.log`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom match3 config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := "match3"
	if len(args) > 0 {
		gameID = args[0]
	}

	// Config first: it may register extra presets
	if _, err := applySettings(); err != nil {
		return err
	}
	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("%w (run 'match3 list' to see available boards)", err)
	}

	closeLog, err := openLog()
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore(cmd)
	if store != nil {
		defer store.Close()
	}

	if _, err := tui.Run(game, store, terminalConfig()); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
