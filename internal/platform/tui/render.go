package tui

import (
	"strings"

	"github.com/vovakirdan/tui-match3/internal/core"
)

// RenderScreen styles a Screen with the active theme. Each row is split into
// runs of one color so every run costs a single escape sequence.
func RenderScreen(s *core.Screen) string {
	rows := make([]string, s.Height())
	for y := range rows {
		rows[y] = renderRow(s, y)
	}
	return strings.Join(rows, "\n")
}

func renderRow(s *core.Screen, y int) string {
	var sb strings.Builder
	run := make([]rune, 0, s.Width())
	color := core.ColorDefault

	flush := func() {
		if len(run) > 0 {
			sb.WriteString(theme.Style(color).Render(string(run)))
			run = run[:0]
		}
	}
	for x := range s.Width() {
		cell := s.GetCell(x, y)
		if cell.Color != color {
			flush()
			color = cell.Color
		}
		run = append(run, cell.Rune)
	}
	flush()
	return sb.String()
}
