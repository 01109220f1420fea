package tui

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-match3/internal/core"
)

// Theme maps screen colors to terminal styles. Tile kinds are drawn with
// the colors listed in the match3 renderer, so a theme recolors the board.
type Theme struct {
	Name   string
	styles map[core.Color]lipgloss.Style
}

// Style returns the style for a color, falling back to the default style.
func (t Theme) Style(c core.Color) lipgloss.Style {
	if style, ok := t.styles[c]; ok {
		return style
	}
	return t.styles[core.ColorDefault]
}

// with returns a copy of the theme with the given colors overridden.
func (t Theme) with(name string, codes map[core.Color]string) Theme {
	styles := make(map[core.Color]lipgloss.Style, len(t.styles))
	for c, s := range t.styles {
		styles[c] = s
	}
	for c, code := range codes {
		styles[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(code))
	}
	return Theme{Name: name, styles: styles}
}

// DefaultTheme uses the basic ANSI palette.
func DefaultTheme() Theme {
	return Theme{Name: "default"}.with("default", map[core.Color]string{
		core.ColorRed:           "1",
		core.ColorGreen:         "2",
		core.ColorYellow:        "3",
		core.ColorBlue:          "4",
		core.ColorMagenta:       "5",
		core.ColorCyan:          "6",
		core.ColorWhite:         "7",
		core.ColorBrightRed:     "9",
		core.ColorBrightGreen:   "10",
		core.ColorBrightYellow:  "11",
		core.ColorBrightBlue:    "12",
		core.ColorBrightMagenta: "13",
		core.ColorBrightCyan:    "14",
		core.ColorBrightWhite:   "15",
		core.ColorOrange:        "208",
		core.ColorGray:          "245",
	}).withDefault()
}

// withDefault sets the uncolored style.
func (t Theme) withDefault() Theme {
	t.styles[core.ColorDefault] = lipgloss.NewStyle()
	return t
}

// NeonTheme returns a saturated 256-color theme.
func NeonTheme() Theme {
	return DefaultTheme().with("neon", map[core.Color]string{
		core.ColorOrange:        "202", // Neon orange
		core.ColorYellow:        "227", // Neon yellow
		core.ColorBrightGreen:   "118", // Neon green
		core.ColorGreen:         "48",
		core.ColorBrightRed:     "197",
		core.ColorWhite:         "231",
		core.ColorBrightMagenta: "199", // Neon pink
		core.ColorBrightCyan:    "87",  // Neon cyan
		core.ColorBrightBlue:    "63",
		core.ColorMagenta:       "171", // Neon purple
	})
}

// PastelTheme returns a softer theme.
func PastelTheme() Theme {
	return DefaultTheme().with("pastel", map[core.Color]string{
		core.ColorOrange:        "216",
		core.ColorYellow:        "229", // Pastel yellow
		core.ColorBrightGreen:   "157", // Pastel green
		core.ColorGreen:         "151",
		core.ColorBrightRed:     "210",
		core.ColorWhite:         "255",
		core.ColorBrightMagenta: "218", // Pastel pink
		core.ColorBrightCyan:    "123", // Pastel cyan
		core.ColorBrightBlue:    "153",
		core.ColorMagenta:       "183", // Pastel purple
	})
}

// MonochromeTheme returns a grayscale theme; tiles stay apart by glyph.
func MonochromeTheme() Theme {
	return DefaultTheme().with("mono", map[core.Color]string{
		core.ColorOrange:        "255",
		core.ColorYellow:        "253",
		core.ColorBrightGreen:   "251",
		core.ColorGreen:         "249",
		core.ColorBrightRed:     "247",
		core.ColorWhite:         "255",
		core.ColorBrightMagenta: "245",
		core.ColorBrightCyan:    "243",
		core.ColorBrightBlue:    "241",
		core.ColorMagenta:       "239",
	})
}

var themes = map[string]func() Theme{
	"default": DefaultTheme,
	"neon":    NeonTheme,
	"pastel":  PastelTheme,
	"mono":    MonochromeTheme,
}

// ThemeNames lists the built-in themes in sorted order.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Global theme variable (can be changed at startup)
var theme = DefaultTheme()

// SetTheme selects a built-in theme by name. Empty selects the default.
func SetTheme(name string) error {
	if name == "" {
		name = "default"
	}
	factory, ok := themes[name]
	if !ok {
		return fmt.Errorf("tui: unknown theme %q (want one of %v)", name, ThemeNames())
	}
	theme = factory()
	return nil
}

// CurrentTheme returns the active theme.
func CurrentTheme() Theme {
	return theme
}
