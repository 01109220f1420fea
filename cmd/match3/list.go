package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available boards",
	Long: `Shows every board preset with its size and number of tile kinds.
Presets come from the match3 config, so --config may add boards.`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom match3 config YAML")
}

func runList(cmd *cobra.Command, _ []string) error {
	if _, err := applySettings(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	boards := registry.List()
	if len(boards) == 0 {
		fmt.Fprintln(out, "No boards available.")
		return nil
	}

	t := table.New().
		Border(lipgloss.HiddenBorder()).
		Headers("ID", "TITLE", "SIZE", "KINDS").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return scoresHeader
			}
			return scoresCell
		})
	for _, b := range boards {
		t.Row(b.ID, b.Title, fmt.Sprintf("%dx%d", b.Width, b.Height), strconv.Itoa(b.Variety))
	}

	fmt.Fprintln(out, t)
	fmt.Fprintln(out, scoresDim.Render("Run 'match3 play <id>' to play a board."))
	return nil
}
