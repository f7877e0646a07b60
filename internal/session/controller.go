// Package session owns the array being sorted and drives the step engine one
// unit per frame tick.
package session

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/san-kum/sortviz/internal/audio"
	"github.com/san-kum/sortviz/internal/sorting"
)

var ErrValueOutOfRange = errors.New("session: value outside [0, max]")

type Options struct {
	Size       int
	MaxValue   int
	SampleRate int
	Seed       int64
	Player     audio.Player
	Logger     *zap.Logger
}

// Stats counts the units of work of the current run.
type Stats struct {
	Steps       int
	Comparisons int
	Swaps       int
	Tones       int
}

// Snapshot is a read-only copy of the session for renderers.
type Snapshot struct {
	Kind      sorting.Kind
	Values    []int
	Highlight []int
	Started   bool
	Finished  bool
	Stats     Stats
	RunID     string
	MaxValue  int
}

// Controller is not safe for concurrent use; a front end drives it from its
// frame loop.
type Controller struct {
	size       int
	maxValue   int
	sampleRate int
	rng        *rand.Rand
	player     audio.Player
	log        *zap.Logger

	values    []int
	kind      sorting.Kind
	state     sorting.State
	started   bool
	finished  bool
	highlight []int
	stats     Stats
	runID     string
	startedAt time.Time
}

func New(opts Options) *Controller {
	if opts.Size <= 0 {
		opts.Size = sorting.DefaultSize
	}
	if opts.MaxValue <= 0 {
		opts.MaxValue = 1
	}
	if opts.SampleRate <= 0 {
		opts.SampleRate = audio.SampleRate
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.Player == nil {
		opts.Player = audio.Null{}
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	return &Controller{
		size:       opts.Size,
		maxValue:   opts.MaxValue,
		sampleRate: opts.SampleRate,
		rng:        rand.New(rand.NewSource(opts.Seed)),
		player:     opts.Player,
		log:        opts.Logger,
		kind:       sorting.None,
		state:      sorting.NewState(sorting.None),
	}
}

// SelectAlgorithm discards any run in progress and starts kind on a freshly
// randomized array.
func (c *Controller) SelectAlgorithm(kind sorting.Kind) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: %d", sorting.ErrUnknownAlgorithm, int(kind))
	}
	values := make([]int, c.size)
	for i := range values {
		values[i] = c.rng.Intn(c.maxValue + 1)
	}
	c.reset(kind, values)
	return nil
}

// Load starts kind on a copy of values instead of a random array.
func (c *Controller) Load(kind sorting.Kind, values []int) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: %d", sorting.ErrUnknownAlgorithm, int(kind))
	}
	for i, v := range values {
		if v < 0 || v > c.maxValue {
			return fmt.Errorf("%w: index %d value %d max %d", ErrValueOutOfRange, i, v, c.maxValue)
		}
	}
	c.reset(kind, append([]int(nil), values...))
	return nil
}

func (c *Controller) reset(kind sorting.Kind, values []int) {
	c.values = values
	c.kind = kind
	c.state = sorting.NewState(kind)
	c.started = true
	c.finished = false
	c.highlight = nil
	c.stats = Stats{}
	c.runID = uuid.NewString()
	c.startedAt = time.Now()

	c.log.Info("algorithm selected",
		zap.String("run_id", c.runID),
		zap.String("algorithm", kind.Slug()),
		zap.Int("size", len(values)),
	)
}

// Tick advances the active run by one unit of work and plays any tone it
// requests. It does nothing before a selection or after completion.
func (c *Controller) Tick() sorting.Result {
	if !c.started || c.finished {
		return sorting.Result{}
	}

	res := sorting.Advance(c.values, &c.state, c.maxValue)
	if res.Terminated {
		c.finished = true
		c.highlight = nil
		c.log.Info("algorithm finished",
			zap.String("run_id", c.runID),
			zap.String("algorithm", c.kind.Slug()),
			zap.Int("steps", c.stats.Steps),
			zap.Int("comparisons", c.stats.Comparisons),
			zap.Int("swaps", c.stats.Swaps),
			zap.Duration("elapsed", time.Since(c.startedAt)),
		)
		return res
	}

	c.stats.Steps++
	if res.Compared {
		c.stats.Comparisons++
	}
	if res.Swapped {
		c.stats.Swaps++
	}
	c.highlight = res.Highlight

	if res.Tone != nil {
		c.stats.Tones++
		ms := int(res.Tone.Duration / time.Millisecond)
		c.player.Play(audio.Synthesize(res.Tone.Frequency, ms, c.sampleRate))
	}

	if c.log.Core().Enabled(zap.DebugLevel) {
		if err := c.state.Validate(len(c.values)); err != nil {
			c.log.Error("step state invariant violated", zap.String("run_id", c.runID), zap.Error(err))
		}
	}
	return res
}

func (c *Controller) Snapshot() Snapshot {
	snap := Snapshot{
		Kind:     c.kind,
		Values:   append([]int(nil), c.values...),
		Started:  c.started,
		Finished: c.finished,
		Stats:    c.stats,
		RunID:    c.runID,
		MaxValue: c.maxValue,
	}
	if c.started && !c.finished {
		snap.Highlight = append([]int(nil), c.highlight...)
	}
	return snap
}

// State exposes the current cursors for diagnostics.
func (c *Controller) State() sorting.State {
	return c.state
}

func (c *Controller) Kind() sorting.Kind {
	return c.kind
}

func (c *Controller) Finished() bool {
	return c.finished
}
