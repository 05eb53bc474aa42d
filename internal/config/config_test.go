package config

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// =============================================================================
// UNIFIED CONFIG TESTS
// =============================================================================

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Field.Separator != "," {
		t.Errorf("expected Separator=\",\", got %q", cfg.Field.Separator)
	}
	if cfg.UI.Theme != ThemeAuto {
		t.Errorf("expected Theme=auto, got %s", cfg.UI.Theme)
	}
	if cfg.Logging.DebugMode {
		t.Error("expected logging to be off by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestConfig_SaveLoad(t *testing.T) {
	// Ensure no env vars interfere
	t.Setenv("TOKENFIELD_SEPARATOR", "")
	t.Setenv("TOKENFIELD_DARK_MODE", "")
	t.Setenv("TOKENFIELD_DEBUG", "")

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.Field.Separator = ";"
	cfg.Field.Validator = "email"
	cfg.UI.Theme = ThemeDark

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Field.Separator != ";" {
		t.Errorf("expected Separator=;, got %s", loaded.Field.Separator)
	}
	if loaded.Field.Validator != "email" {
		t.Errorf("expected Validator=email, got %s", loaded.Field.Validator)
	}
	if loaded.UI.Theme != ThemeDark {
		t.Errorf("expected Theme=dark, got %s", loaded.UI.Theme)
	}
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Field.MinInputWidth != DefaultFieldConfig().MinInputWidth {
		t.Errorf("expected default min width, got %d", cfg.Field.MinInputWidth)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("field:\n  separator: \"|\"\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Field.Separator != "|" {
		t.Errorf("expected Separator=|, got %s", cfg.Field.Separator)
	}
	if cfg.Field.Gutter != DefaultFieldConfig().Gutter {
		t.Errorf("expected default gutter, got %d", cfg.Field.Gutter)
	}
	if !cfg.UI.ShowHelp {
		t.Error("expected ShowHelp default to survive partial file")
	}
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("field: [unclosed"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestFieldConfig_Sizer(t *testing.T) {
	fc := FieldConfig{Gutter: 3, MinInputWidth: 7}
	s := fc.Sizer()
	if s.Gutter != 3 || s.MinWidth != 7 {
		t.Errorf("unexpected sizer %+v", s)
	}
}

func TestLoggingConfig_IsCategoryEnabled(t *testing.T) {
	lc := LoggingConfig{}
	if lc.IsCategoryEnabled("field") {
		t.Error("categories must be off without debug mode")
	}

	lc.DebugMode = true
	if !lc.IsCategoryEnabled("field") {
		t.Error("categories default to on in debug mode")
	}

	lc.Categories = map[string]bool{"ui": false}
	if lc.IsCategoryEnabled("ui") {
		t.Error("explicitly disabled category reported enabled")
	}
	if !lc.IsCategoryEnabled("field") {
		t.Error("unlisted category should stay enabled")
	}
}
