package audio

import (
	"errors"
	"sync"
)

const (
	BackendPortAudio = "portaudio"
	BackendOto       = "oto"
	BackendNone      = "none"
)

var ErrUnknownBackend = errors.New("audio: unknown backend")

// Backends lists the accepted backend names.
var Backends = []string{BackendPortAudio, BackendOto, BackendNone}

// Player plays mono 16-bit buffers fire-and-forget. A new buffer replaces
// whatever is still sounding; an empty buffer is ignored.
type Player interface {
	Play(samples []int16)
	Close() error
}

// Null discards everything it is given.
type Null struct{}

func (Null) Play([]int16) {}
func (Null) Close() error { return nil }

// Voice holds the buffer currently sounding and the read position inside
// it. Device callbacks pull from a Voice while Play swaps its buffer; the
// zero value is silent and ready to use.
type Voice struct {
	mu  sync.Mutex
	buf []int16
	pos int
}

// Set replaces the sounding buffer. Empty buffers are ignored.
func (v *Voice) Set(samples []int16) {
	if len(samples) == 0 {
		return
	}
	v.mu.Lock()
	v.buf = samples
	v.pos = 0
	v.mu.Unlock()
}

// next returns the next sample, or silence once the buffer is exhausted.
func (v *Voice) next() int16 {
	if v.pos >= len(v.buf) {
		return 0
	}
	s := v.buf[v.pos]
	v.pos++
	return s
}

// Fill writes len(out) samples into out under one lock acquisition.
func (v *Voice) Fill(out []int16) {
	v.mu.Lock()
	for i := range out {
		out[i] = v.next()
	}
	v.mu.Unlock()
}

// FillFloat is Fill scaled to [-1, 1] for float stream APIs.
func (v *Voice) FillFloat(out []float32) {
	v.mu.Lock()
	for i := range out {
		out[i] = float32(v.next()) / Amplitude
	}
	v.mu.Unlock()
}
