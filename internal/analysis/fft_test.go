package analysis

import (
	"math"
	"testing"

	"github.com/san-kum/pyre/internal/fire"
)

func sine(n int, freq, rate, offset float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = offset + math.Sin(2*math.Pi*freq*float64(i)/rate)
	}
	return out
}

func TestPowerSpectrumPeakBin(t *testing.T) {
	// 7.5 Hz at 60 Hz over 128 samples lands exactly on bin 16.
	series := sine(128, 7.5, 60, 0)
	ps := PowerSpectrum(series)

	peak := 1
	for i := 2; i < len(ps); i++ {
		if ps[i] > ps[peak] {
			peak = i
		}
	}
	if peak != 16 {
		t.Errorf("peak at bin %d, want 16", peak)
	}
}

func TestPowerSpectrumEmpty(t *testing.T) {
	if ps := PowerSpectrum(nil); ps != nil {
		t.Errorf("expected nil for empty input, got %v", ps)
	}
}

func TestDetrendRemovesMean(t *testing.T) {
	series := Detrend([]float64{10, 12, 14})
	var sum float64
	for _, v := range series {
		sum += v
	}
	if math.Abs(sum) > 1e-9 {
		t.Errorf("detrended mean = %g, want 0", sum/3)
	}
}

func TestDominantFrequency(t *testing.T) {
	series := sine(128, 7.5, 60, 100) // large DC offset must not win
	got := DominantFrequency(series, 60)
	if math.Abs(got-7.5) > 1e-9 {
		t.Errorf("dominant frequency = %g Hz, want 7.5", got)
	}
}

func TestCollectMeanHeat(t *testing.T) {
	g, err := fire.NewGrid(16, 16, fire.DefaultParams(), nil)
	if err != nil {
		t.Fatal(err)
	}
	series := CollectMeanHeat(g, 32, 64)
	if len(series) != 32 {
		t.Fatalf("series length = %d, want 32", len(series))
	}
	// A warmed-up default flame is neither cold nor saturated.
	var sum float64
	for _, v := range series {
		sum += v
	}
	mean := sum / float64(len(series))
	if mean <= 0 || mean >= 255 {
		t.Errorf("mean heat = %g, want a developed flame", mean)
	}
}
