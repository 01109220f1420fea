package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-match3/internal/registry"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show the board list sidebar
	sidebarWidth       = 22  // Width of the board list sidebar
	maxScores          = 100 // Max rounds to load per board
	fixedColumnsWidth  = 6 + 8 + 7 + 8 + 7 + 5
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	NextBoard key.Binding
	PrevBoard key.Binding
	Sort      key.Binding
	Clear     key.Binding
	Confirm   key.Binding
	Cancel    key.Binding
	Back      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextBoard, k.PrevBoard, k.Sort, k.Clear, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextBoard, k.PrevBoard},
		{k.Sort, k.Clear, k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextBoard: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab/→", "next board"),
		),
		PrevBoard: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab/←", "prev board"),
		),
		Sort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sort"),
		),
		Clear: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "clear board"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("n", "esc"),
			key.WithHelp("n", "cancel"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

var (
	sbTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	sbDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	sbActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	sbWarnStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))
	sbPanelStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

// ScoreboardModel is the Bubble Tea model for the leaderboard screen.
// It shows the rounds of one board at a time, ranked by the chosen order.
type ScoreboardModel struct {
	boards   []registry.GameInfo
	current  int
	ranking  storage.Ranking
	store    *storage.Store
	scores   []storage.ScoreEntry
	stats    *storage.GameStats
	status   string // Last action or error, shown under the table
	readOnly bool   // Clearing disabled, e.g. on a shared server

	confirmClear bool

	table table.Model
	help  help.Model
	keys  ScoreboardKeyMap

	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		boards: registry.List(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.help.Width = width
	m.table = m.newTable()
	m.reload()
	return m
}

// ReadOnly returns a copy of the scoreboard that cannot clear scores.
func (m ScoreboardModel) ReadOnly() ScoreboardModel {
	m.readOnly = true
	m.keys.Clear.SetEnabled(false)
	return m
}

// wide reports whether the board list fits beside the table.
func (m ScoreboardModel) wide() bool {
	return m.width >= minWidthForSidebar
}

// board returns the selected board, if any.
func (m ScoreboardModel) board() (registry.GameInfo, bool) {
	if len(m.boards) == 0 {
		return registry.GameInfo{}, false
	}
	return m.boards[m.current], true
}

// newTable builds the round table for the current size.
func (m ScoreboardModel) newTable() table.Model {
	avail := m.width - 6 // Panel border and padding
	if m.wide() {
		avail -= sidebarWidth + 4
	}
	dateW := max(12, min(avail-fixedColumnsWidth, 20))

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Score", Width: 8},
			{Title: "Moves", Width: 7},
			{Title: "Pts/Mv", Width: 8},
			{Title: "Combos", Width: 7},
			{Title: "Best", Width: 5},
			{Title: "Date", Width: dateW},
		}),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-10)), // Title, stats, tabs, status and help
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// reload fetches the selected board's rounds and stats in the current ranking.
func (m *ScoreboardModel) reload() {
	m.scores = nil
	m.stats = nil

	b, ok := m.board()
	if ok && m.store != nil {
		scores, err := m.store.RankedScores(b.ID, m.ranking, maxScores)
		if err != nil {
			m.status = err.Error()
		}
		m.scores = scores
		if stats, err := m.store.GetGameStats(b.ID); err == nil {
			m.stats = stats
		}
	}

	m.table.SetRows(scoreRows(m.scores))
	m.table.GotoTop()
}

// scoreRows formats rounds as table rows.
func scoreRows(scores []storage.ScoreEntry) []table.Row {
	rows := make([]table.Row, len(scores))
	for i, s := range scores {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			strconv.Itoa(s.Score),
			strconv.Itoa(s.Moves),
			pointsPerMove(s),
			strconv.Itoa(s.Combos),
			strconv.Itoa(s.BestRun),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

// pointsPerMove is the round's average gain per committed swap.
func pointsPerMove(s storage.ScoreEntry) string {
	if s.Moves == 0 {
		return "-"
	}
	return strconv.FormatFloat(float64(s.Score)/float64(s.Moves), 'f', 1, 64)
}

// statsLine summarizes every round played on the selected board.
func (m ScoreboardModel) statsLine() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return ""
	}
	return fmt.Sprintf("%d rounds | avg %.1f | %d moves | %d combos | longest run %d",
		m.stats.GamesCount, m.stats.AvgScore, m.stats.TotalMoves, m.stats.TotalCombos, m.stats.BestRun)
}

// step moves the board selection by delta, wrapping around.
func (m *ScoreboardModel) step(delta int) {
	if len(m.boards) == 0 {
		return
	}
	m.current = (m.current + delta + len(m.boards)) % len(m.boards)
	m.status = ""
	m.reload()
}

// clear deletes every round of the selected board.
func (m *ScoreboardModel) clear() {
	b, ok := m.board()
	if !ok || m.store == nil {
		return
	}
	if err := m.store.ClearScores(b.ID); err != nil {
		m.status = err.Error()
		return
	}
	m.status = fmt.Sprintf("Cleared %s", b.Title)
	m.reload()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.confirmClear {
			return m.updateConfirm(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.table.SetRows(scoreRows(m.scores))
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// handleKey processes keys while browsing.
func (m ScoreboardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		m.goingBack = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.NextBoard):
		m.step(1)

	case key.Matches(msg, m.keys.PrevBoard):
		m.step(-1)

	case key.Matches(msg, m.keys.Sort):
		m.ranking = m.ranking.Next()
		m.status = ""
		m.reload()

	case key.Matches(msg, m.keys.Clear):
		if !m.readOnly && m.store != nil && len(m.scores) > 0 {
			m.confirmClear = true
		}

	case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}
	return m, nil
}

// updateConfirm answers the "clear this board?" prompt.
func (m ScoreboardModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.confirmClear = false
		m.clear()
	case key.Matches(msg, m.keys.Cancel):
		m.confirmClear = false
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	title := "HIGH SCORES"
	if b, ok := m.board(); ok {
		title = fmt.Sprintf("HIGH SCORES - %s", b.Title)
	}

	sections := []string{
		sbTitleStyle.Render(centerStyled(title, m.width)),
		sbDimStyle.Render(centerStyled(m.subtitle(), m.width)),
		"",
	}

	if m.wide() {
		sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top,
			sbPanelStyle.Width(sidebarWidth).Render(m.boardList()),
			"  ",
			sbPanelStyle.Render(m.tableContent()),
		))
	} else {
		sections = append(sections,
			centerStyled(m.boardTabs(), m.width),
			"",
			centerStyled(sbPanelStyle.Render(m.tableContent()), m.width),
		)
	}

	sections = append(sections, m.footer(), sbDimStyle.Render(m.help.View(m.keys)))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// subtitle shows the ranking and, when known, the board's totals.
func (m ScoreboardModel) subtitle() string {
	line := "ranked by " + m.ranking.String()
	if stats := m.statsLine(); stats != "" {
		line += " | " + stats
	}
	return line
}

// boardList renders the sidebar of boards with their sizes.
func (m ScoreboardModel) boardList() string {
	var b strings.Builder
	b.WriteString("Boards\n")
	b.WriteString(strings.Repeat("─", sidebarWidth-4))

	for i, g := range m.boards {
		b.WriteString("\n")
		name := truncate(g.Title, sidebarWidth-6)
		if i == m.current {
			b.WriteString(sbActiveStyle.Render("> " + name))
		} else {
			b.WriteString("  " + name)
		}
		if size := g.Board(); size != "" {
			b.WriteString("\n")
			b.WriteString(sbDimStyle.Render("  " + truncate(size, sidebarWidth-6)))
		}
	}
	return b.String()
}

// boardTabs renders the narrow layout's board selector.
func (m ScoreboardModel) boardTabs() string {
	b, ok := m.board()
	if !ok {
		return ""
	}
	label := b.Title
	if size := b.Board(); size != "" {
		label += " (" + size + ")"
	}
	return fmt.Sprintf("< %s >  %d/%d", sbActiveStyle.Render(label), m.current+1, len(m.boards))
}

// tableContent renders the table or an empty message.
func (m ScoreboardModel) tableContent() string {
	if len(m.scores) == 0 {
		return sbDimStyle.Italic(true).Padding(2, 4).
			Render("No scores recorded yet.\nClear some tiles to set a high score!")
	}
	return m.table.View()
}

// footer shows the clear prompt or the last status message.
func (m ScoreboardModel) footer() string {
	if m.confirmClear {
		b, _ := m.board()
		count := len(m.scores)
		if m.stats != nil {
			count = m.stats.GamesCount
		}
		return sbWarnStyle.Render(fmt.Sprintf("Delete all %d rounds of %s? (y/n)", count, b.Title))
	}
	return sbDimStyle.Render(m.status)
}

// truncate shortens s to at most n runes, marking the cut with a dot.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n || n < 2 {
		return s
	}
	return string(r[:n-1]) + "."
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	model := NewScoreboardModel(store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
