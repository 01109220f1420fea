package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/core"

	// Registers the board presets listed by the menu and scoreboard
	_ "github.com/vovakirdan/tui-match3/internal/games/match3"
)

func menuUpdate(t *testing.T, m MenuModel, msg tea.Msg) MenuModel {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func TestMenuListsPresets(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig(), config.DifficultyNormal)

	ids := make(map[string]MenuItem)
	for _, item := range m.items {
		ids[item.GameID] = item
	}
	for _, id := range []string{"match3", "match3_mini", "match3_zoo"} {
		if _, ok := ids[id]; !ok {
			t.Errorf("menu missing preset %q", id)
		}
	}
	if ids["match3_mini"].Board != "6x6, 4 kinds" {
		t.Errorf("match3_mini board = %q", ids["match3_mini"].Board)
	}

	view := m.View()
	if !strings.Contains(view, "Difficulty: < normal >") {
		t.Errorf("view missing difficulty:\n%s", view)
	}
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig(), config.DifficultyNormal)

	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	result := m.Result()
	if result.Quit || result.WantsScoreboard {
		t.Fatalf("Result() = %+v, expected a selection", result)
	}
	if result.GameID != m.items[1].GameID {
		t.Errorf("GameID = %q, expected %q", result.GameID, m.items[1].GameID)
	}
	if result.Difficulty != config.DifficultyHard {
		t.Errorf("Difficulty = %s, expected hard", result.Difficulty)
	}
}

func TestMenuDifficultyWraps(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig(), config.DifficultyEasy)
	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.Difficulty() != config.DifficultyFixed {
		t.Errorf("Difficulty() = %s, expected fixed", m.Difficulty())
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig(), "")
	if m.Difficulty() != config.DifficultyNormal {
		t.Errorf("default Difficulty() = %s, expected normal", m.Difficulty())
	}

	tab := menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if !tab.Result().WantsScoreboard {
		t.Error("Tab should open the scoreboard")
	}

	quit := menuUpdate(t, m, runeKey('q'))
	if !quit.Result().Quit {
		t.Error("q should quit")
	}
}

func TestMenuViewFollowsDifficulty(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig(), config.DifficultyNormal)
	if !strings.Contains(m.View(), "6x6     4 kinds") {
		t.Errorf("normal view should show the mini board with 4 kinds:\n%s", m.View())
	}

	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyRight})
	view := m.View()
	if !strings.Contains(view, "6x6     6 kinds") {
		t.Errorf("hard view should show the mini board with 6 kinds:\n%s", view)
	}
	if !strings.Contains(view, difficultyHints[config.DifficultyHard]) {
		t.Errorf("hard view missing its hint:\n%s", view)
	}
}
