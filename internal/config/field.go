package config

import "tokenfield/internal/tokenfield"

// FieldConfig configures the token field itself.
type FieldConfig struct {
	// Separator splits typed or pasted text into tokens
	Separator string `yaml:"separator"`

	// Validator is a validate.Parse spec, e.g. "email" or "email+maxlen:64"
	Validator string `yaml:"validator"`

	// MinInputWidth is the narrowest input kept on a chip line, in cells
	MinInputWidth int `yaml:"min_input_width"`

	// Gutter is left free at the right edge of the container, in cells
	Gutter int `yaml:"gutter"`
}

// DefaultFieldConfig returns the default field settings.
func DefaultFieldConfig() *FieldConfig {
	return &FieldConfig{
		Separator:     tokenfield.DefaultSeparator,
		Validator:     "",
		MinInputWidth: tokenfield.DefaultMinWidth,
		Gutter:        tokenfield.DefaultGutter,
	}
}

// Sizer returns the layout policy described by the config.
func (c FieldConfig) Sizer() tokenfield.Sizer {
	return tokenfield.Sizer{Gutter: c.Gutter, MinWidth: c.MinInputWidth}
}
