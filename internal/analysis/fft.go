package analysis

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// PowerSpectrum returns the magnitude of each positive-frequency bin of
// the series. Bin 0 is DC. Arbitrary lengths are accepted.
func PowerSpectrum(series []float64) []float64 {
	if len(series) == 0 {
		return nil
	}
	spectrum := fft.FFTReal(series)
	ps := make([]float64, len(spectrum)/2+1)
	for i := range ps {
		ps[i] = cmplx.Abs(spectrum[i])
	}
	return ps
}

// Detrend subtracts the series mean, removing the DC bin's dominance so
// the flicker band stands out.
func Detrend(series []float64) []float64 {
	if len(series) == 0 {
		return nil
	}
	var sum float64
	for _, v := range series {
		sum += v
	}
	mean := sum / float64(len(series))
	out := make([]float64, len(series))
	for i, v := range series {
		out[i] = v - mean
	}
	return out
}

// DominantFrequency returns the frequency in Hz of the strongest
// non-DC bin, given the rate the series was sampled at.
func DominantFrequency(series []float64, sampleRate float64) float64 {
	ps := PowerSpectrum(Detrend(series))
	if len(ps) < 2 {
		return 0
	}
	peak := 1
	for i := 2; i < len(ps); i++ {
		if ps[i] > ps[peak] {
			peak = i
		}
	}
	return float64(peak) * sampleRate / float64(len(series))
}
