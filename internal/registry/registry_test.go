package registry

import (
	"testing"

	"github.com/vovakirdan/tui-match3/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string {
	return g.id
}

func (g *stubGame) Title() string {
	return "Stub"
}

func (g *stubGame) Reset(core.RuntimeConfig) {}

func (g *stubGame) Step(core.InputFrame) core.StepResult {
	return core.StepResult{}
}

func (g *stubGame) Render(*core.Screen) {}

func (g *stubGame) State() core.GameState {
	return core.GameState{}
}

func stubFactory(id string) Factory {
	return func() Game { return &stubGame{id: id} }
}

func TestRegisterAndCreate(t *testing.T) {
	info := GameInfo{ID: "test_register", Title: "Stub", Width: 5, Height: 4, Variety: 3}
	Register(info, stubFactory(info.ID))

	if !Exists(info.ID) {
		t.Fatal("Exists() = false after Register")
	}

	g, err := Create(info.ID)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if g.ID() != info.ID {
		t.Errorf("Create().ID() = %q, expected %q", g.ID(), info.ID)
	}

	got, ok := Lookup(info.ID)
	if !ok || got != info {
		t.Errorf("Lookup() = %+v, %v, expected %+v", got, ok, info)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	info := GameInfo{ID: "test_duplicate", Title: "Stub"}
	Register(info, stubFactory(info.ID))

	defer func() {
		if recover() == nil {
			t.Error("second Register() should panic")
		}
	}()
	Register(info, stubFactory(info.ID))
}

func TestReplaceOverwrites(t *testing.T) {
	Replace(GameInfo{ID: "test_replace", Title: "Small", Width: 3, Height: 3, Variety: 3}, stubFactory("test_replace"))
	Replace(GameInfo{ID: "test_replace", Title: "Large", Width: 9, Height: 9, Variety: 7}, stubFactory("test_replace"))

	got, ok := Lookup("test_replace")
	if !ok {
		t.Fatal("Lookup() found nothing after Replace")
	}
	if got.Title != "Large" || got.Board() != "9x9, 7 kinds" {
		t.Errorf("Lookup() = %+v, expected the second registration", got)
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("test_missing"); err == nil {
		t.Error("Create() of an unknown id should fail")
	}
	if Exists("test_missing") {
		t.Error("Exists() = true for an unknown id")
	}
}

func TestListSortedByID(t *testing.T) {
	Replace(GameInfo{ID: "test_list_b"}, stubFactory("test_list_b"))
	Replace(GameInfo{ID: "test_list_a"}, stubFactory("test_list_a"))

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Fatalf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}

func TestGameInfoBoard(t *testing.T) {
	tests := []struct {
		info     GameInfo
		expected string
	}{
		{GameInfo{Width: 8, Height: 8, Variety: 6}, "8x8, 6 kinds"},
		{GameInfo{Width: 10, Height: 8, Variety: 10}, "10x8, 10 kinds"},
		{GameInfo{}, ""},
	}
	for _, tc := range tests {
		if got := tc.info.Board(); got != tc.expected {
			t.Errorf("Board() = %q, expected %q", got, tc.expected)
		}
	}
}
