// Package device plays synthesized tones on the sound card through
// PortAudio or oto. Both backends need cgo and system audio headers; the
// rest of the module only depends on the audio.Player interface.
package device

import (
	"fmt"

	"github.com/san-kum/sortviz/internal/audio"
)

// BufferSize is the PortAudio frames-per-buffer.
const BufferSize = 1024

// Open opens the named backend at sampleRate.
func Open(backend string, sampleRate int) (audio.Player, error) {
	switch backend {
	case audio.BackendPortAudio:
		return NewStreamPlayer(sampleRate)
	case audio.BackendOto:
		return NewOtoPlayer(sampleRate)
	case audio.BackendNone, "":
		return audio.Null{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", audio.ErrUnknownBackend, backend)
	}
}
