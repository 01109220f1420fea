package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/platform/tui"
	"github.com/vovakirdan/tui-match3/internal/registry"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a board picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to pick a board, Left/Right to change the difficulty
and Enter to play. After a round you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Left/Right   - Change difficulty
  Enter/Space  - Play board
  Tab          - Scoreboard
  Q            - Quit

Examples:
  match3 menu
  match3 menu --difficulty easy
  match3 menu --db ./scores.db`,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom match3 config YAML")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Initial difficulty: easy, normal, hard, fixed")
}

func runMenu(cmd *cobra.Command, _ []string) error {
	difficulty, err := applySettings()
	if err != nil {
		return err
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

	cfg := terminalConfig()
	for {
		result, err := tui.RunMenu(store, cfg, difficulty)
		if err != nil {
			return err
		}
		// Size changes and the chosen difficulty carry over to the next round.
		cfg, difficulty = result.Config, result.Difficulty

		switch {
		case result.Quit:
			return nil
		case result.WantsScoreboard:
			back, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil || !back {
				return err
			}
			continue
		case result.GameID == "":
			return nil
		}

		back, err := playRound(result.GameID, difficulty, store, cfg)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			continue
		}
		if !back {
			// Quit from inside the game ends the session.
			return nil
		}
	}
}

// playRound runs one game picked in the menu and reports whether the player
// went back to the menu.
func playRound(gameID string, difficulty config.DifficultyPreset, store *storage.Store, cfg core.RuntimeConfig) (bool, error) {
	game, err := registry.Create(gameID)
	if err != nil {
		return false, err
	}
	if ds, ok := game.(registry.DifficultySetter); ok {
		ds.SetDifficulty(difficulty)
	}
	// A fixed --seed replays the same board every round.
	if flagSeed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return tui.Run(game, store, cfg)
}
