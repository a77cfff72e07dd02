package config

import "slices"

var Presets = map[string]*Config{
	"tiny": {
		Bars: 8, MinValue: 10, MaxValue: 100, DelayMS: 250, Height: 12,
		Theme: DefaultTheme, LogLevel: DefaultLogLevel,
	},
	"default": DefaultConfig(),
	"dense": {
		Bars: 100, MinValue: 10, MaxValue: 650, DelayMS: 5, Height: 24,
		Theme: DefaultTheme, LogLevel: DefaultLogLevel,
	},
	"slow": {
		Bars: 20, MinValue: 10, MaxValue: 650, DelayMS: 150, FlashMS: 100, SettleMS: 500, Height: 20,
		Theme: DefaultTheme, LogLevel: DefaultLogLevel,
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
