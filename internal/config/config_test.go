package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.System != "oscillator" {
		t.Errorf("expected system oscillator, got %s", cfg.System)
	}
	if cfg.Render.Density != 3.0 {
		t.Errorf("expected density 3.0, got %f", cfg.Render.Density)
	}
	if cfg.Render.Cmap != "inferno_r" {
		t.Errorf("expected cmap inferno_r, got %s", cfg.Render.Cmap)
	}
	if cfg.Render.DPI != 300.0 {
		t.Errorf("expected dpi 300, got %f", cfg.Render.DPI)
	}
	if !cfg.Render.DarkMode {
		t.Error("dark mode should default on")
	}
	if cfg.Render.Output != "phase_portrait.png" {
		t.Errorf("unexpected default output: %s", cfg.Render.Output)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	data := "system: pendulum\ngrid:\n  q_samples: 51\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.System != "pendulum" {
		t.Errorf("expected system pendulum, got %s", cfg.System)
	}
	if cfg.Grid.QSamples != 51 {
		t.Errorf("expected 51 q samples, got %d", cfg.Grid.QSamples)
	}
	if cfg.Grid.PSamples != DefaultPSamples {
		t.Errorf("expected default p samples, got %d", cfg.Grid.PSamples)
	}
	if !cfg.Render.DarkMode {
		t.Error("absent dark_mode should keep the default")
	}
}

func TestLoadOverridesDarkMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	data := "render:\n  dark_mode: false\n  cmap: viridis\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Render.DarkMode {
		t.Error("dark_mode: false should be honored")
	}
	if cfg.Render.Cmap != "viridis" {
		t.Errorf("expected cmap viridis, got %s", cfg.Render.Cmap)
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")

	cfg := DefaultConfig()
	cfg.System = "doublewell"
	cfg.Params = map[string]float64{"a": 2, "b": 1}
	cfg.Render.DPI = 150

	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.System != "doublewell" {
		t.Errorf("expected system doublewell, got %s", loaded.System)
	}
	if loaded.Params["a"] != 2 {
		t.Errorf("expected param a=2, got %f", loaded.Params["a"])
	}
	if loaded.Render.DPI != 150 {
		t.Errorf("expected dpi 150, got %f", loaded.Render.DPI)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("oscillator", "ellipses")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Params["m"] != 2 || cfg.Params["k"] != 10 {
		t.Errorf("unexpected params: %v", cfg.Params)
	}
	if cfg.Grid.PSamples != 31 {
		t.Errorf("expected 31 p samples, got %d", cfg.Grid.PSamples)
	}
	// Render defaults come along even though the preset omits them.
	if cfg.Render.Density != DefaultDensity {
		t.Errorf("expected default density, got %f", cfg.Render.Density)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("oscillator", "nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if cfg := GetPreset("nonexistent", "ellipses"); cfg != nil {
		t.Error("expected nil for nonexistent system")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets("pendulum")
	if len(presets) == 0 {
		t.Error("expected presets for pendulum")
	}

	if presets := ListPresets("nonexistent"); presets != nil {
		t.Error("expected nil for nonexistent system")
	}
}

func TestRenderOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Render.VecField = true
	cfg.Render.DarkMode = false

	opts := cfg.RenderOptions()
	if !opts.VecField {
		t.Error("vec_field should carry over")
	}
	if opts.DarkMode {
		t.Error("dark mode should carry over")
	}
	if opts.Density != DefaultDensity || opts.Cmap != DefaultCmap {
		t.Errorf("unexpected options: %+v", opts)
	}
}
