package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.NQ != 2 {
		t.Errorf("expected nq 2, got %d", cfg.NQ)
	}
	if cfg.Grid.NX != 64 || cfg.Grid.NY != 64 {
		t.Errorf("expected 64x64 grid, got %dx%d", cfg.Grid.NX, cfg.Grid.NY)
	}
	if cfg.Field.Placement != "cossin" || cfg.Potential.Placement != "sincos" {
		t.Errorf("unexpected placements %s / %s", cfg.Field.Placement, cfg.Potential.Placement)
	}
	if cfg.Potential.ViewMax != 2 || cfg.Field.ViewMax != 3 {
		t.Error("unexpected view windows")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	data := []byte("nq: 4\nstream:\n  density: 1.5\noutput:\n  format: svg\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.NQ != 4 {
		t.Errorf("expected nq 4, got %d", cfg.NQ)
	}
	if cfg.Stream.Density != 1.5 {
		t.Errorf("expected density 1.5, got %f", cfg.Stream.Density)
	}
	if cfg.Output.Format != "svg" {
		t.Errorf("expected svg, got %s", cfg.Output.Format)
	}
	if cfg.Grid.NX != DefaultNX {
		t.Errorf("unset fields should keep defaults, got nx %d", cfg.Grid.NX)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	cfg := DefaultConfig()
	cfg.NQ = 6
	cfg.Stream.Colormap = "viridis"

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.NQ != 6 || loaded.Stream.Colormap != "viridis" {
		t.Errorf("round trip lost values: nq=%d colormap=%s", loaded.NQ, loaded.Stream.Colormap)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative nq", func(c *Config) { c.NQ = -1 }},
		{"tiny grid", func(c *Config) { c.Grid.NX = 1 }},
		{"empty range", func(c *Config) { c.Grid.Min = 3 }},
		{"bad placement", func(c *Config) { c.Field.Placement = "polar" }},
		{"empty view", func(c *Config) { c.Potential.ViewMin = 2 }},
		{"zero density", func(c *Config) { c.Stream.Density = 0 }},
		{"bad integrator", func(c *Config) { c.Stream.Integrator = "leapfrog" }},
		{"bad colormap", func(c *Config) { c.Stream.Colormap = "jet" }},
		{"bad format", func(c *Config) { c.Output.Format = "gif" }},
		{"bad display", func(c *Config) { c.Output.Display = "x11" }},
		{"zero width", func(c *Config) { c.Output.Width = 0 }},
	}

	for _, tt := range tests {
		cfg := DefaultConfig()
		tt.mutate(cfg)
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("%s: expected ErrInvalidConfig, got %v", tt.name, err)
		}
	}
}

func TestValidateReportsFieldFirst(t *testing.T) {
	for i := 0; i < 20; i++ {
		cfg := DefaultConfig()
		cfg.Field.ViewMin = 5
		cfg.Potential.ViewMin = 5
		err := cfg.Validate()
		if err == nil || !strings.Contains(err.Error(), "field: view") {
			t.Fatalf("run %d: expected the field pipeline error, got %v", i, err)
		}
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("quadrupole")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.NQ != 4 {
		t.Errorf("expected nq 4, got %d", cfg.NQ)
	}
	if empty := GetPreset("empty"); empty == nil || empty.NQ != 0 || empty.Validate() != nil {
		t.Errorf("expected a valid chargeless preset, got %+v", empty)
	}
	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	if len(presets) != len(Presets) {
		t.Errorf("expected %d presets, got %d", len(Presets), len(presets))
	}
	if presets[0] != "dipole" {
		t.Errorf("expected sorted names, got %v", presets)
	}
}
