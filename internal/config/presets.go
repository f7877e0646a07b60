package config

import (
	"sort"
	"time"
)

// Pace controls how fast an animation plays.
type Pace struct {
	FrameDelay time.Duration
	FPS        int
}

var Presets = map[string]Pace{
	"relaxed": {FrameDelay: 60 * time.Millisecond, FPS: 30},
	"default": {FrameDelay: DefaultFrameDelay, FPS: DefaultFPS},
	"brisk":   {FrameDelay: 5 * time.Millisecond, FPS: 120},
	"instant": {FrameDelay: 0, FPS: 240},
}

// GetPreset returns the default configuration with the named pace applied,
// or nil for an unknown name.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.FrameDelay = p.FrameDelay
	cfg.FPS = p.FPS
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
