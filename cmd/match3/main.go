// match3 is a terminal match-3 puzzle: swap neighbouring tiles to line up
// three or more of a kind.
//
// Usage:
//
//	match3 list              - List available boards
//	match3 play [board]      - Play a board (default: match3)
//	match3 menu              - Start menu to pick boards interactively
//	match3 serve             - Start SSH server for remote play
//	match3 scores <board>    - Show high scores for a board
//	match3 board             - Print a freshly generated board
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible boards
//	--db <path>     - Set database path (default: ~/.match3/scores.db)
//	--log <path>    - Write debug logs to a file
//	--theme <name>  - Tile colors: default, neon, pastel, mono
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3"
	"github.com/vovakirdan/tui-match3/internal/platform/tui"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogPath string
	flagTheme   string

	// Shared by play and menu
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "match3",
	SilenceUsage: true,
	Short:        "Match-3 - Swap tiles and line up three of a kind",
	Long: `Match-3 is a terminal puzzle game. Swap two neighbouring tiles to
line up three or more of the same kind in a row or column. Matched tiles
are replaced and score points; a swap that matches nothing is undone.

Available commands:
  list     - Show all available boards
  play     - Play a specific board directly
  menu     - Interactive board picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores
  board    - Print a generated board and its possible swaps

Examples:
  match3 list
  match3 play
  match3 play match3_mini --difficulty easy
  match3 menu
  match3 serve --ssh :2222
  match3 scores match3
  match3 board --width 6 --height 6 --seed 42`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.match3/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write debug logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "default", "Tile colors: default, neon, pastel, mono")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(boardCmd)
}

// applySettings loads the board configuration, difficulty and theme for new games.
func applySettings() (config.DifficultyPreset, error) {
	difficulty, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return difficulty, err
	}

	if err := tui.SetTheme(flagTheme); err != nil {
		return difficulty, err
	}

	cfg, err := config.LoadMatch3(flagConfig)
	if err != nil {
		return difficulty, err
	}
	match3.Configure(cfg)
	match3.SetDifficultyPreset(difficulty)
	return difficulty, nil
}

// openLog routes game events to the --log file. The returned func closes it.
func openLog() (func(), error) {
	if flagLogPath == "" {
		return func() {}, nil
	}

	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}

	match3.SetLogger(log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "match3",
		Level:           log.DebugLevel,
	}))
	return func() {
		match3.SetLogger(nil)
		f.Close()
	}, nil
}

// terminalConfig sizes new games to the current terminal, 80x24 when stdout
// is not one.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the scores database. Games run without a leaderboard when
// it cannot be opened, so a failure is only a warning.
func openStore(cmd *cobra.Command) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}
