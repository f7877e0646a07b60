package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/sortviz/internal/audio"
)

const (
	DefaultWidth      = 1280
	DefaultHeight     = 720
	DefaultTitle      = "Sorting Visualization"
	DefaultFont       = "/usr/share/fonts/liberation/LiberationMono-Regular.ttf"
	DefaultMaxValue   = 1800
	DefaultFrameDelay = 20 * time.Millisecond
	DefaultFPS        = 60
	DefaultTheme      = "minimal"

	// EnvPrefix scopes environment overrides, e.g. SORTVIZ_AUDIO_BACKEND.
	EnvPrefix = "SORTVIZ_"
)

var ErrInvalidConfig = errors.New("config: invalid value")

type Config struct {
	Window     WindowConfig  `yaml:"window"`
	MaxValue   int           `yaml:"max_value"`
	FrameDelay time.Duration `yaml:"frame_delay"`
	FPS        int           `yaml:"fps"`
	Seed       int64         `yaml:"seed"`
	Theme      string        `yaml:"theme"`
	Audio      AudioConfig   `yaml:"audio"`
	Log        LogConfig     `yaml:"log"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	Font   string `yaml:"font"`
}

type AudioConfig struct {
	Backend    string `yaml:"backend"`
	SampleRate int    `yaml:"sample_rate"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
}

func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
			Title:  DefaultTitle,
			Font:   DefaultFont,
		},
		MaxValue:   DefaultMaxValue,
		FrameDelay: DefaultFrameDelay,
		FPS:        DefaultFPS,
		Theme:      DefaultTheme,
		Audio: AudioConfig{
			Backend:    audio.BackendPortAudio,
			SampleRate: audio.SampleRate,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
			Output: "stderr",
		},
	}
}

// Load reads a yaml file over base (DefaultConfig when nil).
func Load(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := base
	if cfg == nil {
		cfg = DefaultConfig()
	}
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

var sections = []string{"window", "audio", "log"}

// envKey maps SORTVIZ_AUDIO_SAMPLE_RATE to audio.sample_rate and
// SORTVIZ_FRAME_DELAY to frame_delay.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	head, rest, ok := strings.Cut(key, "_")
	if ok && slices.Contains(sections, head) {
		return head + "." + rest
	}
	return key
}

// ApplyEnv overlays SORTVIZ_* environment variables onto cfg.
func ApplyEnv(cfg *Config) error {
	k := koanf.New(".")
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return fmt.Errorf("load env: %w", err)
	}
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "yaml"}); err != nil {
		return fmt.Errorf("apply env: %w", err)
	}
	return nil
}

func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	case c.MaxValue <= 0:
		return fmt.Errorf("%w: max_value %d", ErrInvalidConfig, c.MaxValue)
	case c.FPS <= 0:
		return fmt.Errorf("%w: fps %d", ErrInvalidConfig, c.FPS)
	case c.FrameDelay < 0:
		return fmt.Errorf("%w: frame_delay %s", ErrInvalidConfig, c.FrameDelay)
	case c.Audio.SampleRate <= 0:
		return fmt.Errorf("%w: sample_rate %d", ErrInvalidConfig, c.Audio.SampleRate)
	case !slices.Contains(audio.Backends, c.Audio.Backend):
		return fmt.Errorf("%w: audio backend %q (want one of %v)", ErrInvalidConfig, c.Audio.Backend, audio.Backends)
	}
	return nil
}
