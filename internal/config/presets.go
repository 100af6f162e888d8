package config

import "sort"

var Presets = map[string]*Config{
	"drift": {
		FPS: DefaultFPS, Theme: DefaultTheme, LogLevel: DefaultLogLevel, LogFile: DefaultLogFile,
		Sim: SimConfig{Dt: 0.1, Duration: 10.0, StopOnEnd: true},
	},
	"dive": {
		FPS: DefaultFPS, Theme: DefaultTheme, LogLevel: DefaultLogLevel, LogFile: DefaultLogFile,
		Sim: SimConfig{Dt: DefaultDt, Duration: 20.0, StopOnEnd: true},
		Script: []KeyAction{
			{At: 0.0, Key: "w", Down: true},
		},
	},
	"coast": {
		FPS: DefaultFPS, Theme: DefaultTheme, LogLevel: DefaultLogLevel, LogFile: DefaultLogFile,
		Sim: SimConfig{Dt: DefaultDt, Duration: 30.0, StopOnEnd: false},
		Script: []KeyAction{
			{At: 0.0, Key: "s", Down: true},
			{At: 3.0, Key: "s", Down: false},
			{At: 12.0, Key: "r", Down: true},
			{At: 12.1, Key: "r", Down: false},
		},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *p
	cfg.Script = append([]KeyAction(nil), p.Script...)
	return &cfg
}

// ListPresets returns preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
