// Package ui provides the terminal host for the token field: chip styling,
// flow layout, key bindings and the bubbletea model.
// Light and dark palettes are supported.
package ui

import (
	"os"
	"strconv"
	"strings"

	"tokenfield/internal/config"
	"tokenfield/internal/tokenfield"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	// Light Mode Colors (Default)
	LightForeground = lipgloss.Color("#101F38") // Dark Blue
	LightAccent     = lipgloss.Color("#2196F3") // Blue
	LightChip       = lipgloss.Color("#e1e4e8")
	LightMuted      = lipgloss.Color("#8a94a6")
	LightBorder     = lipgloss.Color("#c3c9d2")

	// Dark Mode Colors
	DarkForeground = lipgloss.Color("#f2f2f2")
	DarkAccent     = lipgloss.Color("#8BC34A") // Lime Green
	DarkChip       = lipgloss.Color("#1e2a3d")
	DarkMuted      = lipgloss.Color("#5b6b85")
	DarkBorder     = lipgloss.Color("#2a3850")

	// Semantic Colors (same in both modes)
	Destructive = lipgloss.Color("#e53935") // Red
	Success     = lipgloss.Color("#8BC34A") // Lime Green
)

// CloseGlyph is the remove affordance drawn at the end of every chip.
const CloseGlyph = "✕"

// Theme holds the current color scheme
type Theme struct {
	Foreground lipgloss.Color
	Accent     lipgloss.Color
	Chip       lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	IsDark     bool
}

// LightTheme returns the light mode theme
func LightTheme() Theme {
	return Theme{
		Foreground: LightForeground,
		Accent:     LightAccent,
		Chip:       LightChip,
		Muted:      LightMuted,
		Border:     LightBorder,
		IsDark:     false,
	}
}

// DarkTheme returns the dark mode theme
func DarkTheme() Theme {
	return Theme{
		Foreground: DarkForeground,
		Accent:     DarkAccent,
		Chip:       DarkChip,
		Muted:      DarkMuted,
		Border:     DarkBorder,
		IsDark:     true,
	}
}

// DetectTheme picks a theme from the terminal environment, defaulting to light.
func DetectTheme() Theme {
	// Format is usually "foreground;background"; 0-6 and 8 are dark backgrounds.
	if parts := strings.Split(os.Getenv("COLORFGBG"), ";"); len(parts) == 2 {
		if bgIdx, err := strconv.Atoi(parts[1]); err == nil {
			if (bgIdx >= 0 && bgIdx <= 6) || bgIdx == 8 {
				return DarkTheme()
			}
		}
	}

	if os.Getenv("TOKENFIELD_DARK_MODE") == "1" {
		return DarkTheme()
	}

	return LightTheme()
}

// ThemeByName resolves a config theme name. Unknown names and "auto" detect.
func ThemeByName(name string) Theme {
	switch name {
	case config.ThemeLight:
		return LightTheme()
	case config.ThemeDark:
		return DarkTheme()
	default:
		return DetectTheme()
	}
}

// Styles holds all the styled components
type Styles struct {
	Theme Theme

	// Container
	Container        lipgloss.Style
	ContainerFocused lipgloss.Style

	// Chips
	Chip         lipgloss.Style
	ChipInvalid  lipgloss.Style
	ChipSelected lipgloss.Style

	// Input
	Input       lipgloss.Style
	Placeholder lipgloss.Style

	// Footer
	Footer  lipgloss.Style
	Valid   lipgloss.Style
	Invalid lipgloss.Style
	Muted   lipgloss.Style
}

// NewStyles creates a new Styles instance with the given theme
func NewStyles(theme Theme) Styles {
	return Styles{
		Theme: theme,

		Container: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, ContainerPaddingH),

		ContainerFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Accent).
			Padding(0, ContainerPaddingH),

		Chip: lipgloss.NewStyle().
			Background(theme.Chip).
			Foreground(theme.Foreground).
			Padding(0, ChipPaddingH),

		ChipInvalid: lipgloss.NewStyle().
			Background(Destructive).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, ChipPaddingH),

		ChipSelected: lipgloss.NewStyle().
			Background(theme.Accent).
			Foreground(lipgloss.Color("#ffffff")).
			Bold(true).
			Padding(0, ChipPaddingH),

		Input: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Placeholder: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Footer: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 1),

		Valid: lipgloss.NewStyle().
			Foreground(Success).
			Bold(true),

		Invalid: lipgloss.NewStyle().
			Foreground(Destructive).
			Bold(true),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),
	}
}

// DefaultStyles returns styles for the detected theme
func DefaultStyles() Styles {
	return NewStyles(DetectTheme())
}

// RenderChip draws one token. Every variant has the same width so layout
// does not shift when a chip is selected.
func (s Styles) RenderChip(tok tokenfield.Token, selected bool) string {
	st := s.Chip
	switch {
	case selected:
		st = s.ChipSelected
	case !tok.Valid():
		st = s.ChipInvalid
	}
	return st.Render(tok.Text + " " + CloseGlyph)
}

// ChipWidth returns the rendered width of tok in cells.
func (s Styles) ChipWidth(tok tokenfield.Token) int {
	return lipgloss.Width(s.RenderChip(tok, false))
}

// closeOffset is the column of the close glyph inside a chip of width w.
func (s Styles) closeOffset(w int) int {
	return w - s.Chip.GetPaddingRight() - lipgloss.Width(CloseGlyph)
}
