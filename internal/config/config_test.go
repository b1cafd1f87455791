package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := ParseCrossing(GetDefaultYAML("crossing"))
	if err != nil {
		t.Fatalf("ParseCrossing(embedded) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultCrossingConfig()) {
		t.Errorf("embedded YAML and DefaultCrossingConfig() disagree:\nyaml: %+v\ncode: %+v", cfg, DefaultCrossingConfig())
	}
}

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultCrossingConfig().Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
}

func TestGetDefaultYAMLUnknown(t *testing.T) {
	if GetDefaultYAML("flappy") != nil {
		t.Error("unknown game should have no embedded YAML")
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CrossingConfig)
	}{
		{"thresholds out of order", func(c *CrossingConfig) { c.Lanes.River = 0.3 }},
		{"wrap margin under a screen", func(c *CrossingConfig) { c.Window.WrapMargin = 5 }},
		{"road gap too narrow", func(c *CrossingConfig) { c.Road.MinGap = 0.5 }},
		{"no road speeds", func(c *CrossingConfig) { c.Road.Speeds = nil }},
		{"weights mismatch", func(c *CrossingConfig) { c.Road.CarWeights = []float64{1} }},
		{"river faster than road", func(c *CrossingConfig) { c.River.Speeds = []float64{0.5} }},
		{"log gap wider than grid", func(c *CrossingConfig) { c.River.LogMaxGap = 12 }},
		{"train visible on spawn", func(c *CrossingConfig) { c.Rail.SpawnOffset = 5 }},
		{"timer range inverted", func(c *CrossingConfig) { c.Rail.ResetTimerMax = 10 }},
		{"smoothing of one", func(c *CrossingConfig) { c.Camera.Smoothing = 1 }},
		{"start column off grid", func(c *CrossingConfig) { c.Grid.StartColumn = 10 }},
		{"start row unsafe", func(c *CrossingConfig) { c.Grid.StartRow = 7 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultCrossingConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("error should wrap ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestLoadCrossingCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "crossing.yaml")
	data := []byte("grass:\n  tree_chance: 0.5\nrail:\n  warning_ticks: 30\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadCrossing(path)
	if err != nil {
		t.Fatalf("LoadCrossing() failed: %v", err)
	}
	if cfg.Grass.TreeChance != 0.5 {
		t.Errorf("tree_chance = %v, expected 0.5", cfg.Grass.TreeChance)
	}
	if cfg.Rail.WarningTicks != 30 {
		t.Errorf("warning_ticks = %d, expected 30", cfg.Rail.WarningTicks)
	}
	// Untouched keys keep their defaults
	if cfg.Grid.Columns != 10 {
		t.Errorf("columns = %d, expected default 10", cfg.Grid.Columns)
	}
}

func TestLoadCrossingErrors(t *testing.T) {
	if _, err := LoadCrossing(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom file should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("camera:\n  smoothing: 2\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadCrossing(path); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("invalid custom file should fail validation, got %v", err)
	}

	if err := os.WriteFile(path, []byte("grid: [oops"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadCrossing(path); err == nil {
		t.Error("malformed YAML should fail")
	}
}

func TestApplyCrossingPreset(t *testing.T) {
	cfg := DefaultCrossingConfig()
	ApplyCrossingPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	cfg = DefaultCrossingConfig()
	ApplyCrossingPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset: enabled=%v level=%v", cfg.Difficulty.Enabled, cfg.Difficulty.InitialLevel)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("hard preset should stay valid: %v", err)
	}

	cfg = DefaultCrossingConfig()
	ApplyCrossingPreset(&cfg, "")
	if !reflect.DeepEqual(cfg, DefaultCrossingConfig()) {
		t.Error("empty preset should leave config untouched")
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("easy") != DifficultyEasy {
		t.Error("easy should parse")
	}
	if ParsePreset("brutal") != "" {
		t.Error("unknown preset should parse to empty")
	}
}

func TestDifficultySpeed(t *testing.T) {
	cfg := DefaultCrossingConfig().Difficulty
	d := NewDifficultyManager(cfg)

	if got := d.Speed(0.1, 0, 0); got != 0.1 {
		t.Errorf("Speed at row 0 = %v, expected base 0.1", got)
	}
	if got := d.Speed(0.1, 300, 0); got < 0.159 || got > 0.161 {
		t.Errorf("Speed at max_at = %v, expected 0.16", got)
	}
	if got := d.Speed(0.1, 10000, 0); got < 0.159 || got > 0.161 {
		t.Errorf("Speed past max_at should clamp, got %v", got)
	}

	d.SetEnabled(false)
	if got := d.Speed(0.1, 300, 0); got != 0.1 {
		t.Errorf("disabled manager should return base speed, got %v", got)
	}
}

func TestDifficultyLevel(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.5,
		Progression:  ProgressionConfig{Type: "time", MaxAt: 100},
	})

	if got := d.Level(0, 50); got != 0.75 {
		t.Errorf("Level(time=50) = %v, expected 0.75", got)
	}

	d.SetInitialLevel(2)
	if got := d.Level(0, 0); got != 1 {
		t.Errorf("initial level should clamp to 1, got %v", got)
	}

	none := NewDifficultyManager(DifficultyConfig{Enabled: true, Progression: ProgressionConfig{Type: "none"}})
	if none.IsEnabled() {
		t.Error("progression type none should report disabled")
	}
}
