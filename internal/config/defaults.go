package config

import (
	_ "embed"
)

//go:embed defaults/match3.yaml
var defaultMatch3YAML []byte

// DefaultMatch3Config returns the default match-3 configuration.
func DefaultMatch3Config() Match3Config {
	return Match3Config{
		Board: BoardConfig{
			Width:   8,
			Height:  8,
			Variety: 6,
		},
		Timing: TimingConfig{
			SwapDelayMs:    600,
			ComboStaggerMs: 1600,
			MessageFadeMs:  1500,
			HighlightMs:    400,
		},
		Presets: []PresetConfig{
			{ID: "match3", Title: "Match-3", Width: 8, Height: 8, Variety: 6},
			{ID: "match3_mini", Title: "Match-3 Mini", Width: 6, Height: 6, Variety: 4},
			{ID: "match3_zoo", Title: "Match-3 Zoo", Width: 10, Height: 8, Variety: 10},
		},
	}
}
