// Package analysis provides offline flicker analysis of fire runs.
//
// A run is reduced to a scalar time series (mean heat per frame) and
// examined in the frequency domain. Real fire flickers in the 1-15 Hz
// band; the simulation's spectrum should land in the same region when
// sampled at the display frame rate.
package analysis
