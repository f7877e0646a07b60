package audio

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// DominantFrequency returns the centre frequency of the strongest FFT bin in
// samples, ignoring DC. Resolution is sampleRate/len(samples).
func DominantFrequency(samples []int16, sampleRate int) float64 {
	if len(samples) < 2 || sampleRate <= 0 {
		return 0
	}

	x := make([]float64, len(samples))
	for i, s := range samples {
		x[i] = float64(s) / Amplitude
	}
	spectrum := fft.FFTReal(x)

	best, bestMag := 0, 0.0
	for k := 1; k <= len(x)/2; k++ {
		if mag := cmplx.Abs(spectrum[k]); mag > bestMag {
			best, bestMag = k, mag
		}
	}
	return float64(best) * float64(sampleRate) / float64(len(x))
}
