package config

// Theme names accepted by UIConfig.Theme.
const (
	ThemeAuto  = "auto"
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// ValidThemes lists all supported themes.
var ValidThemes = []string{ThemeAuto, ThemeLight, ThemeDark}

// UIConfig holds user interface configuration.
type UIConfig struct {
	// Theme is auto, light or dark. Auto inspects COLORFGBG.
	Theme string `yaml:"theme"`

	// Placeholder is shown in the empty input
	Placeholder string `yaml:"placeholder"`

	// Width caps the container width (0 = terminal width)
	Width int `yaml:"width,omitempty"`

	// ShowHelp renders the key binding footer
	ShowHelp bool `yaml:"show_help"`

	// Mouse enables clicking chip close buttons
	Mouse bool `yaml:"mouse"`
}

// DefaultUIConfig returns sensible UI defaults.
func DefaultUIConfig() *UIConfig {
	return &UIConfig{
		Theme:       ThemeAuto,
		Placeholder: "Type values, separated by commas...",
		Width:       0,
		ShowHelp:    true,
		Mouse:       true,
	}
}
