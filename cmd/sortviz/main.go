package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"slices"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/sortviz/internal/audio"
	"github.com/san-kum/sortviz/internal/audio/device"
	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/gui"
	"github.com/san-kum/sortviz/internal/logging"
	"github.com/san-kum/sortviz/internal/session"
	"github.com/san-kum/sortviz/internal/viz"
)

var (
	configFile   string
	preset       string
	audioBackend string
	seed         int64
	logLevel     string
	theme        string
	input        string
	plot         bool
	toneFreq     float64
	toneMs       int
	toneRate     int
	playTone     bool
)

// main registers the commands, opens the GUI when no subcommand is given and
// exits with status 1 if the command fails.
func main() {
	rootCmd := &cobra.Command{
		Use:           "sortviz",
		Short:         "step-by-step sorting algorithm visualizer",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runGUI,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "pace preset")
	rootCmd.PersistentFlags().StringVar(&audioBackend, "audio", "", "audio backend: portaudio, oto or none")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed (0 uses the clock)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "terminal front end",
		RunE:  runTUI,
	}
	tuiCmd.Flags().StringVar(&theme, "theme", "", "color theme: "+strings.Join(viz.ThemeNames(), ", "))

	runCmd := &cobra.Command{
		Use:   "run [algorithm]",
		Short: "run an algorithm to completion without a window",
		Args:  cobra.ExactArgs(1),
		RunE:  runHeadless,
	}
	runCmd.Flags().StringVar(&input, "input", "", "comma separated values instead of a random array")
	runCmd.Flags().BoolVar(&plot, "plot", false, "plot cumulative swaps")

	compareCmd := &cobra.Command{
		Use:   "compare [algorithm...]",
		Short: "run algorithms on the same array and compare their work",
		RunE:  compareAlgorithms,
	}
	compareCmd.Flags().StringVar(&input, "input", "", "comma separated values instead of a random array")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list algorithms",
		RunE:  listAlgorithms,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list pace presets",
		RunE:  listPresets,
	}

	toneCmd := &cobra.Command{
		Use:   "tone",
		Short: "synthesize a tone and report its spectrum peak",
		RunE:  synthTone,
	}
	toneCmd.Flags().Float64Var(&toneFreq, "freq", 440, "frequency in Hz")
	toneCmd.Flags().IntVar(&toneMs, "ms", 30, "duration in milliseconds")
	toneCmd.Flags().IntVar(&toneRate, "rate", audio.SampleRate, "sample rate")
	toneCmd.Flags().BoolVar(&playTone, "play", false, "play the tone on the configured backend")

	rootCmd.AddCommand(tuiCmd, runCmd, compareCmd, listCmd, presetsCmd, toneCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "sortviz: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig layers defaults, preset, config file, environment and flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if err := config.ApplyEnv(cfg); err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("audio") {
		cfg.Audio.Backend = audioBackend
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := validateTheme(cfg.Theme); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validateTheme(name string) error {
	if !slices.Contains(viz.ThemeNames(), name) {
		return fmt.Errorf("%w: theme %q (want one of %v)", config.ErrInvalidConfig, name, viz.ThemeNames())
	}
	return nil
}

// openPlayer falls back to silence when the audio device cannot be opened.
func openPlayer(cfg *config.Config, log *zap.Logger) audio.Player {
	p, err := device.Open(cfg.Audio.Backend, cfg.Audio.SampleRate)
	if err != nil {
		log.Warn("audio unavailable, continuing without sound",
			zap.String("backend", cfg.Audio.Backend), zap.Error(err))
		return audio.Null{}
	}
	return p
}

func newSession(cfg *config.Config, player audio.Player, log *zap.Logger) *session.Controller {
	return session.New(session.Options{
		MaxValue:   cfg.MaxValue,
		SampleRate: cfg.Audio.SampleRate,
		Seed:       cfg.Seed,
		Player:     player,
		Logger:     log,
	})
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log, err := logging.New(cfg.Log.Level, cfg.Log.Format, cfg.Log.Output)
	if err != nil {
		return err
	}
	defer log.Sync()

	player := openPlayer(cfg, log)
	defer player.Close()

	ctx, cancel := signalContext()
	defer cancel()

	return gui.Run(ctx, cfg, newSession(cfg, player, log), log)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// the alternate screen owns the terminal; only file outputs stay on
	output := cfg.Log.Output
	if output == "stderr" || output == "stdout" {
		output = ""
	}
	log, err := logging.New(cfg.Log.Level, cfg.Log.Format, output)
	if err != nil {
		return err
	}
	defer log.Sync()

	player := openPlayer(cfg, log)
	defer player.Close()

	ctx, cancel := signalContext()
	defer cancel()

	return viz.Run(ctx, newSession(cfg, player, log), cfg.FrameDelay, cfg.Theme)
}
