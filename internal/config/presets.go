package config

import "sort"

var Presets = map[string]map[string]*Config{
	"oscillator": {
		"ellipses": {
			System: "oscillator",
			Params: map[string]float64{"m": 2, "k": 10},
			Grid:   GridConfig{QMin: -5, QMax: 5, QSamples: 21, PMin: -5, PMax: 5, PSamples: 31},
		},
		"stiff": {
			System: "oscillator",
			Params: map[string]float64{"m": 1, "k": 50},
			Grid:   GridConfig{QMin: -2, QMax: 2, QSamples: 31, PMin: -10, PMax: 10, PSamples: 31},
		},
	},
	"pendulum": {
		"librations": {
			System: "pendulum",
			Grid:   GridConfig{QMin: -3, QMax: 3, QSamples: 31, PMin: -4, PMax: 4, PSamples: 31},
		},
		"separatrix": {
			System: "pendulum",
			Grid:   GridConfig{QMin: -7, QMax: 7, QSamples: 41, PMin: -8, PMax: 8, PSamples: 41},
		},
	},
	"doublewell": {
		"wells": {
			System: "doublewell",
			Params: map[string]float64{"a": 1, "b": 0.5},
			Grid:   GridConfig{QMin: -3, QMax: 3, QSamples: 31, PMin: -2, PMax: 2, PSamples: 31},
		},
	},
	"onion": {
		"layers": {
			System: "onion",
			Params: map[string]float64{"k": 3},
			Grid:   GridConfig{QMin: -5, QMax: 5, QSamples: 21, PMin: -5, PMax: 5, PSamples: 31},
		},
	},
}

// GetPreset returns the named preset with render defaults filled in.
// Nil when the system or preset is unknown.
func GetPreset(system, name string) *Config {
	group, ok := Presets[system]
	if !ok {
		return nil
	}
	preset, ok := group[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.System = preset.System
	cfg.Params = preset.Params
	cfg.Grid = preset.Grid
	return cfg
}

func ListPresets(system string) []string {
	group, ok := Presets[system]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(group))
	for name := range group {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
