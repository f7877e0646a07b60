package device

import (
	"fmt"

	"github.com/gordonklaus/portaudio"

	"github.com/san-kum/sortviz/internal/audio"
)

// StreamPlayer plays tones through the default PortAudio output device. The
// device callback pulls from the current voice, so a Play from the frame loop
// takes effect on the next callback.
type StreamPlayer struct {
	stream *portaudio.Stream
	voice  audio.Voice
}

func NewStreamPlayer(sampleRate int) (*StreamPlayer, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("portaudio init: %w", err)
	}

	p := &StreamPlayer{}

	// output only, no input channels
	stream, err := portaudio.OpenDefaultStream(0, 2, float64(sampleRate), BufferSize, p.process)
	if err != nil {
		portaudio.Terminate()
		return nil, fmt.Errorf("portaudio open: %w", err)
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return nil, fmt.Errorf("portaudio start: %w", err)
	}

	p.stream = stream
	return p, nil
}

func (p *StreamPlayer) Play(samples []int16) {
	p.voice.Set(samples)
}

func (p *StreamPlayer) process(out [][]float32) {
	if len(out) == 0 {
		return
	}
	p.voice.FillFloat(out[0])
	for ch := 1; ch < len(out); ch++ {
		copy(out[ch], out[0])
	}
}

func (p *StreamPlayer) Close() error {
	var err error
	if p.stream != nil {
		if stopErr := p.stream.Stop(); stopErr != nil {
			err = stopErr
		}
		if closeErr := p.stream.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
		p.stream = nil
	}
	if termErr := portaudio.Terminate(); termErr != nil && err == nil {
		err = termErr
	}
	return err
}
