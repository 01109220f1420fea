package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := FrameOf(ActionUp, ActionSelect)

	if !f.Has(ActionUp) || !f.Has(ActionSelect) {
		t.Error("FrameOf should set every given action")
	}
	if f.Has(ActionDown) {
		t.Error("Has(ActionDown) should be false")
	}

	f.Clear()
	if f.Has(ActionUp) {
		t.Error("Clear should reset all actions")
	}

	if !f.Empty() {
		t.Errorf("cleared frame still has %v", f.Actions())
	}

	var zero InputFrame
	zero.Set(ActionNone)
	if !zero.Empty() || zero.Has(ActionNone) {
		t.Error("ActionNone must not be recorded")
	}
	zero.Set(ActionEnd)
	zero.Set(ActionUp)
	zero.Set(ActionEnd)
	got := zero.Actions()
	if len(got) != 2 || got[0] != ActionUp || got[1] != ActionEnd {
		t.Errorf("Actions() = %v, expected [Up End]", got)
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionNone:   "None",
		ActionSelect: "Select",
		ActionPause:  "Pause",
		Action(-1):   "Unknown",
		Action(99):   "Unknown",
	}
	for a, want := range tests {
		if got := a.String(); got != want {
			t.Errorf("Action(%d).String() = %q, expected %q", int(a), got, want)
		}
	}
}

func TestRuntimeConfigTicks(t *testing.T) {
	tests := []struct {
		rate, ms, expected int
	}{
		{60, 600, 36},
		{60, 1600, 96},
		{30, 1500, 45},
		// Never zero, and the default rate when unset.
		{60, 1, 1},
		{0, 1000, 60},
	}

	for _, tc := range tests {
		cfg := RuntimeConfig{TickRate: tc.rate}
		if got := cfg.Ticks(tc.ms); got != tc.expected {
			t.Errorf("Ticks(%d) at %d fps = %d, expected %d", tc.ms, tc.rate, got, tc.expected)
		}
	}
}
