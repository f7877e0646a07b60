package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/sortviz/internal/audio"
	"github.com/san-kum/sortviz/internal/audio/device"
	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/logging"
	"github.com/san-kum/sortviz/internal/session"
	"github.com/san-kum/sortviz/internal/sorting"
)

// plotPoints caps the number of samples handed to asciigraph.
const plotPoints = 200

func parseInput(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	values := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("invalid input value %q: %w", f, err)
		}
		values = append(values, v)
	}
	return values, nil
}

// headlessSession builds a controller that never plays sound.
func headlessSession(cmd *cobra.Command) (*session.Controller, *zap.Logger, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	log, err := logging.New(cfg.Log.Level, cfg.Log.Format, cfg.Log.Output)
	if err != nil {
		return nil, nil, err
	}
	return newSession(cfg, audio.Null{}, log), log, nil
}

func start(ctrl *session.Controller, kind sorting.Kind) error {
	if input == "" {
		return ctrl.SelectAlgorithm(kind)
	}
	values, err := parseInput(input)
	if err != nil {
		return err
	}
	return ctrl.Load(kind, values)
}

func runHeadless(cmd *cobra.Command, args []string) error {
	kind, err := sorting.ParseKind(args[0])
	if err != nil {
		return err
	}

	ctrl, log, err := headlessSession(cmd)
	if err != nil {
		return err
	}
	defer log.Sync()

	if err := start(ctrl, kind); err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	var (
		swaps []float64
		total int
	)
	begin := time.Now()
	err = ctrl.Drain(ctx, func(res sorting.Result) bool {
		if res.Swapped {
			total++
		}
		if plot && !res.Terminated {
			swaps = append(swaps, float64(total))
		}
		return true
	})
	if err != nil {
		return err
	}
	elapsed := time.Since(begin)

	out := cmd.OutOrStdout()
	snap := ctrl.Snapshot()
	fmt.Fprintf(out, "%s on %d values completed in %v\n", kind, len(snap.Values), elapsed)
	fmt.Fprintf(out, "run id:      %s\n", snap.RunID)
	fmt.Fprintf(out, "steps:       %d\n", snap.Stats.Steps)
	fmt.Fprintf(out, "comparisons: %d\n", snap.Stats.Comparisons)
	fmt.Fprintf(out, "swaps:       %d\n", snap.Stats.Swaps)
	fmt.Fprintf(out, "tones:       %d\n", snap.Stats.Tones)
	fmt.Fprintf(out, "sorted:      %v\n", sort.IntsAreSorted(snap.Values))
	if len(snap.Values) <= 20 {
		fmt.Fprintf(out, "result:      %v\n", snap.Values)
	}

	if plot && len(swaps) > 1 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, asciigraph.Plot(downsample(swaps, plotPoints),
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("cumulative swaps per step"),
		))
	}
	return nil
}

func downsample(data []float64, n int) []float64 {
	if len(data) <= n {
		return data
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = data[i*(len(data)-1)/(n-1)]
	}
	return out
}

func compareAlgorithms(cmd *cobra.Command, args []string) error {
	kinds := sorting.Kinds
	if len(args) > 0 {
		kinds = make([]sorting.Kind, 0, len(args))
		for _, a := range args {
			k, err := sorting.ParseKind(a)
			if err != nil {
				return err
			}
			kinds = append(kinds, k)
		}
	}

	ctrl, log, err := headlessSession(cmd)
	if err != nil {
		return err
	}
	defer log.Sync()

	if err := start(ctrl, kinds[0]); err != nil {
		return err
	}
	values := ctrl.Snapshot().Values

	ctx, cancel := signalContext()
	defer cancel()

	fmt.Fprintf(cmd.OutOrStdout(), "comparing algorithms on %d values\n\n", len(values))
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "algorithm\tsteps\tcomparisons\tswaps\ttones\tsorted")
	for _, k := range kinds {
		if err := ctrl.Load(k, values); err != nil {
			return err
		}
		if err := ctrl.Drain(ctx, nil); err != nil {
			return err
		}
		snap := ctrl.Snapshot()
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%v\n", k.Slug(), snap.Stats.Steps, snap.Stats.Comparisons,
			snap.Stats.Swaps, snap.Stats.Tones, sort.IntsAreSorted(snap.Values))
	}
	return w.Flush()
}

func listAlgorithms(cmd *cobra.Command, args []string) error {
	for _, k := range sorting.Kinds {
		fmt.Printf("  %-10s %s\n", k.Slug(), k)
	}
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "preset\tframe_delay\tfps")
	for _, name := range config.ListPresets() {
		p := config.Presets[name]
		fmt.Fprintf(w, "%s\t%v\t%d\n", name, p.FrameDelay, p.FPS)
	}
	return w.Flush()
}

func synthTone(cmd *cobra.Command, args []string) error {
	if toneFreq <= 0 {
		return fmt.Errorf("frequency must be positive, got %f", toneFreq)
	}
	if toneRate <= 0 {
		return fmt.Errorf("sample rate must be positive, got %d", toneRate)
	}

	samples := audio.Synthesize(toneFreq, toneMs, toneRate)
	fmt.Printf("samples:  %d\n", len(samples))
	fmt.Printf("peak:     %.1f Hz\n", audio.DominantFrequency(samples, toneRate))
	fmt.Printf("bin size: %.1f Hz\n", binSize(len(samples), toneRate))

	if !playTone {
		return nil
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	player, err := device.Open(cfg.Audio.Backend, toneRate)
	if err != nil {
		return err
	}
	defer player.Close()

	player.Play(samples)
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(toneMs)*time.Millisecond+100*time.Millisecond)
	defer cancel()
	<-ctx.Done()
	return nil
}

func binSize(n, rate int) float64 {
	if n == 0 {
		return 0
	}
	return float64(rate) / float64(n)
}
