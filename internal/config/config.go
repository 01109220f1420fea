// Package config provides YAML-based game configuration loading and
// difficulty management for the match-3 platform.
package config

import (
	"errors"
	"fmt"
)

// Board bounds accepted by Validate.
const (
	MinBoardSize = 3
	MaxBoardSize = 16
	MinVariety   = 3
	MaxVariety   = 10
)

// Match3Config contains all configuration for the match-3 game.
type Match3Config struct {
	Board   BoardConfig    `yaml:"board"`
	Timing  TimingConfig   `yaml:"timing"`
	Presets []PresetConfig `yaml:"presets"`
}

// BoardConfig defines the default board shape and tile variety.
type BoardConfig struct {
	Width   int `yaml:"width"`
	Height  int `yaml:"height"`
	Variety int `yaml:"variety"`
}

// TimingConfig defines presentation delays in milliseconds.
type TimingConfig struct {
	SwapDelayMs    int `yaml:"swap_delay_ms"`    // Pause between a swap request and its evaluation
	ComboStaggerMs int `yaml:"combo_stagger_ms"` // Gap between consecutive combo messages
	MessageFadeMs  int `yaml:"message_fade_ms"`  // How long a combo message stays visible
	HighlightMs    int `yaml:"highlight_ms"`     // Flash duration for matched cells
}

// PresetConfig describes one playable board registered as its own game.
type PresetConfig struct {
	ID      string `yaml:"id"`
	Title   string `yaml:"title"`
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	Variety int    `yaml:"variety"`
}

// Board returns the preset's board configuration.
func (p PresetConfig) Board() BoardConfig {
	return BoardConfig{Width: p.Width, Height: p.Height, Variety: p.Variety}
}

// Validate checks that the board can be initialized.
func (b BoardConfig) Validate() error {
	if b.Width < MinBoardSize || b.Height < MinBoardSize {
		return fmt.Errorf("config: board %dx%d is smaller than %dx%d", b.Width, b.Height, MinBoardSize, MinBoardSize)
	}
	if b.Width > MaxBoardSize || b.Height > MaxBoardSize {
		return fmt.Errorf("config: board %dx%d is larger than %dx%d", b.Width, b.Height, MaxBoardSize, MaxBoardSize)
	}
	if b.Variety < MinVariety || b.Variety > MaxVariety {
		return fmt.Errorf("config: variety %d outside %d..%d", b.Variety, MinVariety, MaxVariety)
	}
	return nil
}

// Validate checks the board, the timings and every preset.
func (c Match3Config) Validate() error {
	if err := c.Board.Validate(); err != nil {
		return err
	}
	if c.Timing.SwapDelayMs < 0 || c.Timing.ComboStaggerMs < 0 ||
		c.Timing.MessageFadeMs < 0 || c.Timing.HighlightMs < 0 {
		return errors.New("config: timings must not be negative")
	}

	seen := make(map[string]bool, len(c.Presets))
	for _, p := range c.Presets {
		if p.ID == "" {
			return errors.New("config: preset without id")
		}
		if seen[p.ID] {
			return fmt.Errorf("config: duplicate preset %q", p.ID)
		}
		seen[p.ID] = true
		if err := p.Board().Validate(); err != nil {
			return fmt.Errorf("preset %q: %w", p.ID, err)
		}
	}
	return nil
}

// Preset returns the preset with the given id.
func (c Match3Config) Preset(id string) (PresetConfig, bool) {
	for _, p := range c.Presets {
		if p.ID == id {
			return p, true
		}
	}
	return PresetConfig{}, false
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficulty converts a flag value to a preset.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	case "":
		return DifficultyNormal, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// VarietyForPreset returns the tile variety after applying a difficulty preset.
// Fewer kinds make matches easier to find.
func VarietyForPreset(variety int, preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		variety -= 2
	case DifficultyHard:
		variety += 2
	}
	return clamp(variety, MinVariety, MaxVariety)
}

// ApplyMatch3Preset modifies the board based on a difficulty preset.
func ApplyMatch3Preset(b *BoardConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		return
	}
	b.Variety = VarietyForPreset(b.Variety, preset)
}

func clamp(val, lo, hi int) int {
	return max(lo, min(hi, val))
}
