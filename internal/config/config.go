package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all tokenfield configuration.
type Config struct {
	// Field behaviour
	Field FieldConfig `yaml:"field"`

	// Terminal presentation
	UI UIConfig `yaml:"ui"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Field:   *DefaultFieldConfig(),
		UI:      *DefaultUIConfig(),
		Logging: *DefaultLoggingConfig(),
	}
}

// DefaultConfigPath returns the default path to the YAML config file.
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".tokenfield", "config.yaml")
	}
	return filepath.Join(dir, "tokenfield", "config.yaml")
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Missing file: defaults, still subject to env overrides
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Override with environment variables
	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if sep := os.Getenv("TOKENFIELD_SEPARATOR"); sep != "" {
		c.Field.Separator = sep
	}
	if v, ok := os.LookupEnv("TOKENFIELD_VALIDATOR"); ok {
		c.Field.Validator = v
	}
	if os.Getenv("TOKENFIELD_DARK_MODE") == "1" {
		c.UI.Theme = ThemeDark
	}
	if os.Getenv("TOKENFIELD_DEBUG") == "1" {
		c.Logging.DebugMode = true
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Field.Separator == "" {
		return fmt.Errorf("%w: field.separator must not be empty", ErrInvalidConfig)
	}
	if c.Field.MinInputWidth < 1 {
		return fmt.Errorf("%w: field.min_input_width must be at least 1, got %d", ErrInvalidConfig, c.Field.MinInputWidth)
	}
	if c.Field.Gutter < 0 {
		return fmt.Errorf("%w: field.gutter must not be negative, got %d", ErrInvalidConfig, c.Field.Gutter)
	}

	validTheme := false
	for _, t := range ValidThemes {
		if c.UI.Theme == t {
			validTheme = true
			break
		}
	}
	if !validTheme {
		return fmt.Errorf("%w: invalid theme: %s (valid: %v)", ErrInvalidConfig, c.UI.Theme, ValidThemes)
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: invalid log level: %s", ErrInvalidConfig, c.Logging.Level)
	}

	return nil
}
