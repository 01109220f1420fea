package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/registry"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

var (
	flagRankBy string
	flagLimit  int
)

var scoresCmd = &cobra.Command{
	Use:   "scores <board>",
	Short: "Show the leaderboard of a board",
	Long: `Print the best rounds recorded for a board preset.

Rounds are ranked by score unless --by picks combos, best_run or recent.

Examples:
  match3 scores match3
  match3 scores match3_mini --by combos --limit 5`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagRankBy, "by", "score", "Ranking: score, combos, best_run, recent")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of rounds to show")
}

var (
	scoresHeader = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Padding(0, 1)
	scoresCell   = lipgloss.NewStyle().Padding(0, 1)
	scoresDim    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func runScores(cmd *cobra.Command, args []string) error {
	info, ok := registry.Lookup(args[0])
	if !ok {
		return fmt.Errorf("unknown board %q (run 'match3 list' to see available boards)", args[0])
	}
	by, err := storage.ParseRanking(flagRankBy)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	scores, err := store.RankedScores(info.ID, by, flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (%s), ranked by %s\n\n", info.Title, info.Board(), by)
	if len(scores) == 0 {
		fmt.Fprintf(out, "No rounds recorded yet. Play 'match3 play %s' to set the first one!\n", info.ID)
		return nil
	}
	fmt.Fprintln(out, scoresTable(scores))

	if stats, err := store.GetGameStats(info.ID); err == nil {
		fmt.Fprintln(out, scoresDim.Render(fmt.Sprintf("Best %d | %d rounds | %d moves | %d combos",
			stats.HighScore, stats.GamesCount, stats.TotalMoves, stats.TotalCombos)))
	}
	return nil
}

func scoresTable(scores []storage.ScoreEntry) *table.Table {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(scoresDim).
		Headers("Rank", "Score", "Moves", "Combos", "Best", "Date").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return scoresHeader
			}
			return scoresCell
		})
	for i, e := range scores {
		t.Row(
			strconv.Itoa(i+1),
			strconv.Itoa(e.Score),
			strconv.Itoa(e.Moves),
			strconv.Itoa(e.Combos),
			strconv.Itoa(e.BestRun),
			e.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
	return t
}
