package device

import (
	"encoding/binary"
	"fmt"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/san-kum/sortviz/internal/audio"
)

// OtoPlayer plays tones through an oto context. oto pulls bytes from Read on
// its own goroutine; the reader never reports EOF, it emits silence between
// tones so the player stays alive.
type OtoPlayer struct {
	ctx     *oto.Context
	voice   audio.Voice
	scratch []int16

	mu     sync.Mutex
	player *oto.Player
}

func NewOtoPlayer(sampleRate int) (*OtoPlayer, error) {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
		BufferSize:   20 * time.Millisecond,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("oto context: %w", err)
	}
	<-ready

	p := &OtoPlayer{ctx: ctx}
	p.player = ctx.NewPlayer(p)
	p.player.Play()
	return p, nil
}

func (p *OtoPlayer) Play(samples []int16) {
	p.voice.Set(samples)
}

// Read implements io.Reader over the current voice as little-endian int16.
func (p *OtoPlayer) Read(b []byte) (int, error) {
	n := len(b) / 2
	if len(p.scratch) < n {
		p.scratch = make([]int16, n)
	}
	buf := p.scratch[:n]
	p.voice.Fill(buf)

	for i, s := range buf {
		binary.LittleEndian.PutUint16(b[2*i:], uint16(s))
	}
	return n * 2, nil
}

// Close stops the oto player. The context itself lives until process exit.
func (p *OtoPlayer) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.player == nil {
		return nil
	}
	err := p.player.Close()
	p.player = nil
	return err
}
