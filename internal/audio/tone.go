package audio

import "math"

const (
	SampleRate = 44100

	// Amplitude is full scale for 16-bit samples.
	Amplitude = 32767
)

// Synthesize renders a mono 16-bit sine tone of the given frequency lasting
// durationMs milliseconds. A zero duration yields an empty buffer.
func Synthesize(frequency float64, durationMs, sampleRate int) []int16 {
	if durationMs <= 0 || sampleRate <= 0 {
		return []int16{}
	}
	n := durationMs * sampleRate / 1000
	samples := make([]int16, n)
	dt := 1.0 / float64(sampleRate)
	for i := range samples {
		t := float64(i) * dt
		samples[i] = int16(Amplitude * math.Sin(2*math.Pi*frequency*t))
	}
	return samples
}
