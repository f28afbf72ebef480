package analysis

import "github.com/san-kum/pyre/internal/fire"

// CollectMeanHeat advances the grid the given number of steps and
// records the mean cell heat after each one. The grid is warmed up
// first so the series starts from a developed flame, not a cold field.
func CollectMeanHeat(g *fire.Grid, steps, warmup int) []float64 {
	for i := 0; i < warmup; i++ {
		g.Step()
	}
	series := make([]float64, steps)
	for i := range series {
		g.Step()
		series[i] = g.MeanHeat()
	}
	return series
}
