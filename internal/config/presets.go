package config

import "sort"

// Presets change only the charge count; grid, views and styling keep
// their defaults.
var Presets = map[string]int{
	"dipole":     2,
	"quadrupole": 4,
	"hexapole":   6,
	"octupole":   8,
	"empty":      0,
}

func GetPreset(name string) *Config {
	nq, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.NQ = nq
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
