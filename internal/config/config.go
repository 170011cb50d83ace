package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/flowmate/internal/render"
)

const (
	DefaultSystem   = "oscillator"
	DefaultQMin     = -5.0
	DefaultQMax     = 5.0
	DefaultQSamples = 21
	DefaultPMin     = -5.0
	DefaultPMax     = 5.0
	DefaultPSamples = 31
	DefaultDensity  = 3.0
	DefaultCmap     = "inferno_r"
	DefaultDPI      = 300.0
	DefaultOutput   = "phase_portrait.png"
)

type Config struct {
	System string             `yaml:"system"`
	Params map[string]float64 `yaml:"params"`
	Grid   GridConfig         `yaml:"grid"`
	Render RenderConfig       `yaml:"render"`
}

type GridConfig struct {
	QMin     float64 `yaml:"q_min"`
	QMax     float64 `yaml:"q_max"`
	QSamples int     `yaml:"q_samples"`
	PMin     float64 `yaml:"p_min"`
	PMax     float64 `yaml:"p_max"`
	PSamples int     `yaml:"p_samples"`
}

type RenderConfig struct {
	VecField bool    `yaml:"vec_field"`
	Output   string  `yaml:"output"`
	Density  float64 `yaml:"density"`
	Cmap     string  `yaml:"cmap"`
	DPI      float64 `yaml:"dpi"`
	DarkMode bool    `yaml:"dark_mode"`
}

func DefaultConfig() *Config {
	return &Config{
		System: DefaultSystem,
		Grid: GridConfig{
			QMin:     DefaultQMin,
			QMax:     DefaultQMax,
			QSamples: DefaultQSamples,
			PMin:     DefaultPMin,
			PMax:     DefaultPMax,
			PSamples: DefaultPSamples,
		},
		Render: RenderConfig{
			Output:   DefaultOutput,
			Density:  DefaultDensity,
			Cmap:     DefaultCmap,
			DPI:      DefaultDPI,
			DarkMode: true,
		},
	}
}

// Load reads a YAML config. Absent fields keep their defaults, so a
// partial file only overrides what it names.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// RenderOptions translates the render section into renderer options.
func (c *Config) RenderOptions() render.Options {
	return render.Options{
		VecField: c.Render.VecField,
		Density:  c.Render.Density,
		Cmap:     c.Render.Cmap,
		DPI:      c.Render.DPI,
		DarkMode: c.Render.DarkMode,
		Output:   c.Render.Output,
	}
}
