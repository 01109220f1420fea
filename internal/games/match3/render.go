package match3

import (
	"fmt"

	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/engine"
)

const (
	cellWidth    = 3 // Glyph plus one marker column on each side
	hudHeight    = 3
	messageLines = 3
	minPanelW    = 36
)

// Tile appearance, indexed by kind.
var (
	glyphs = [engine.NamedKinds]rune{'●', '▲', '■', '◆', '★', '♥', '♣', '♠', '✚', '✿'}
	colors = [engine.NamedKinds]core.Color{
		core.ColorOrange,
		core.ColorYellow,
		core.ColorBrightGreen,
		core.ColorGreen,
		core.ColorBrightRed,
		core.ColorWhite,
		core.ColorBrightMagenta,
		core.ColorBrightCyan,
		core.ColorBrightBlue,
		core.ColorMagenta,
	}
)

// Glyph returns the symbol drawn for a tile kind.
func Glyph(k engine.TileKind) rune {
	if int(k) < len(glyphs) {
		return glyphs[k]
	}
	return k.Rune()
}

// KindColor returns the color of a tile kind.
func KindColor(k engine.TileKind) core.Color {
	if int(k) < len(colors) {
		return colors[k]
	}
	return core.ColorDefault
}

// minScreenSize returns the smallest screen that fits the board, HUD and messages.
func minScreenSize(boardW, boardH int) (w, h int) {
	w = max(boardW*cellWidth+2, minPanelW)
	h = hudHeight + boardH + 2 + 1 + messageLines + 1 + 1
	return w, h
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	if g.err != nil {
		dst.DrawTextCenteredColored(g.screenH/2, "Cannot build board", core.ColorRed)
		dst.DrawTextCentered(g.screenH/2+1, g.err.Error())
		return
	}

	boardW := g.board.Width*cellWidth + 2
	boardH := g.board.Height + 2
	frame := core.NewRect(0, hudHeight, g.screenW, boardH).Centered(boardW, boardH)
	boardX, boardY := frame.X, frame.Y

	g.renderHUD(dst, boardX, boardW)
	g.renderBoard(dst, boardX, boardY)
	g.renderMessages(dst, boardY+boardH+1)

	dst.DrawTextCenteredColored(g.screenH-1, g.Controls(), core.ColorGray)

	g.renderOverlays(dst, boardX+boardW/2, boardY+boardH/2)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	minW, minH := minScreenSize(g.board.Width, g.board.Height)
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minW, minH))
}

// renderHUD draws the title, score and move counters.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	dst.DrawTextCenteredColored(0, g.Title(), core.ColorBrightWhite)

	scoreStr := fmt.Sprintf("Score: %d", g.session.Score())
	movesStr := fmt.Sprintf("Moves: %d", g.session.Moves())
	movesX := boardX + boardW - len(movesStr)
	if boardX+len(scoreStr)+1 > movesX {
		// Board narrower than both counters.
		dst.DrawTextCentered(1, scoreStr+"  "+movesStr)
	} else {
		dst.DrawText(boardX, 1, scoreStr)
		dst.DrawText(movesX, 1, movesStr)
	}

	info := fmt.Sprintf("Kinds: %d  Best run: %d", g.board.Variety, g.bestRun)
	if g.lastDelta > 0 {
		info += fmt.Sprintf("  Last: +%d", g.lastDelta)
	}
	dst.DrawTextCenteredColored(2, info, core.ColorGray)
}

// renderBoard draws the frame, tiles and cursor markers.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	dst.DrawBox(core.NewRect(boardX, boardY, g.board.Width*cellWidth+2, g.board.Height+2), core.ColorGray)

	grid := g.session.Grid()
	for _, cell := range grid.Cells() {
		c := cell.Coord
		px := boardX + 1 + c.X*cellWidth
		py := boardY + 1 + c.Y

		kind := g.displayKind(grid, c, cell.Kind)
		color := KindColor(kind)
		if _, ok := g.flash[c]; ok {
			color = core.ColorBrightWhite
		}
		dst.SetColored(px+1, py, Glyph(kind), color)

		if left, right, markColor, ok := g.marker(grid, c); ok {
			dst.SetColored(px, py, left, markColor)
			dst.SetColored(px+2, py, right, markColor)
		}
	}
}

// displayKind shows a pending swap before it is evaluated.
func (g *Game) displayKind(grid *engine.Grid, c engine.Coord, k engine.TileKind) engine.TileKind {
	if g.pending == nil {
		return k
	}
	var other engine.Coord
	switch c {
	case g.pending.a:
		other = g.pending.b
	case g.pending.b:
		other = g.pending.a
	default:
		return k
	}
	if swapped, err := grid.Get(other); err == nil {
		return swapped
	}
	return k
}

// marker returns the brackets drawn around a cell, if any.
func (g *Game) marker(grid *engine.Grid, c engine.Coord) (left, right rune, color core.Color, ok bool) {
	switch {
	case g.pending != nil && (c == g.pending.a || c == g.pending.b):
		return '~', '~', core.ColorBrightYellow, true
	case g.selecting && c == g.selected:
		return '<', '>', core.ColorBrightYellow, true
	case c == g.cursor && !g.gameOver:
		return '[', ']', core.ColorBrightWhite, true
	case g.selecting && c.Adjacent(g.selected):
		for _, n := range grid.Neighbors(g.selected) {
			if n == c {
				return '·', '·', core.ColorGray, true
			}
		}
	}
	return 0, 0, core.ColorDefault, false
}

// renderMessages draws combo messages and the current notice.
func (g *Game) renderMessages(dst *core.Screen, y int) {
	visible := g.visibleMessages()
	if len(visible) > messageLines {
		visible = visible[len(visible)-messageLines:]
	}
	for i, m := range visible {
		color := KindColor(m.kind)
		if remaining := m.hideAt - g.tick; remaining*3 < uint64(g.timing.messageFade) {
			color = core.ColorGray
		}
		dst.DrawTextCenteredColored(y+i, m.text, color)
	}

	if g.notice != "" {
		dst.DrawTextCenteredColored(y+messageLines, g.notice, core.ColorCyan)
	}
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, centerX, centerY int) {
	if g.paused {
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
		return
	}

	if g.gameOver {
		title := "GAME OVER"
		if g.ended {
			title = "ROUND ENDED"
		}
		summary := fmt.Sprintf("Score %d in %d moves", g.session.Score(), g.session.Moves())
		g.drawOverlay(dst, centerX, centerY, title, summary, "Press R to restart")
	}
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len([]rune(line)))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := centerX - boxW/2
	boxY := centerY - boxH/2

	// Clear area behind overlay
	for y := boxY; y < boxY+boxH; y++ {
		for x := boxX; x < boxX+boxW; x++ {
			dst.Set(x, y, ' ')
		}
	}

	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorBrightWhite)

	for i, line := range lines {
		x := centerX - len([]rune(line))/2
		dst.DrawText(x, boxY+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD: Move | Space: Select | E: End | P: Pause | Q: Quit"
}
