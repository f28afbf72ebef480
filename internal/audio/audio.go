// Package audio synthesizes a fire crackle from the simulation state.
//
// The renderer feeds the processor the grid's mean heat once per frame;
// the audio callback turns it into filtered noise bursts. Hotter fire
// crackles denser and brighter.
package audio

import (
	"math"
	"math/rand"
	"sync"

	"github.com/gordonklaus/portaudio"
)

const (
	SampleRate = 44100
	BufferSize = 1024
)

type Processor struct {
	Stream *portaudio.Stream
	Active bool

	// Simulation input, written by the render goroutine.
	mu         sync.Mutex
	meanHeat   float64
	heatSmooth float64

	// Synthesis state, owned by the audio callback.
	rng         *rand.Rand
	burstLeft   int     // samples remaining in the current crackle
	burstGain   float64 // amplitude of the current crackle
	filterState [2]float64
	rumblePhase float64
}

func NewProcessor() *Processor {
	return &Processor{
		rng: rand.New(rand.NewSource(1)),
	}
}

func (a *Processor) Start() error {
	portaudio.Initialize()

	// Output only. Duplex streams often fail on Linux when the default
	// input and output devices differ.
	stream, err := portaudio.OpenDefaultStream(0, 2, SampleRate, BufferSize, a.ProcessAudio)
	if err != nil {
		portaudio.Terminate()
		return err
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return err
	}

	a.Stream = stream
	a.Active = true
	return nil
}

func (a *Processor) Stop() {
	if a.Stream != nil {
		a.Stream.Stop()
		a.Stream.Close()
	}
	portaudio.Terminate()
	a.Active = false
}

// SetHeat publishes the grid's current mean heat, 0..255.
func (a *Processor) SetHeat(mean float64) {
	a.mu.Lock()
	a.meanHeat = mean
	a.mu.Unlock()
}

// Low pass filter (one pole).
func lpf(sample, cutoff, dt, state float64) (float64, float64) {
	rc := 1.0 / (2.0 * math.Pi * cutoff)
	alpha := dt / (rc + dt)
	out := state + alpha*(sample-state)
	return out, out
}

func (a *Processor) ProcessAudio(out [][]float32) {
	a.mu.Lock()
	target := a.meanHeat
	a.mu.Unlock()

	// Slow morphing so frame-to-frame flicker does not pump the volume.
	a.heatSmooth = a.heatSmooth*0.995 + target*0.005
	heat := math.Min(a.heatSmooth/255.0, 1.0)

	// Hotter fire: more frequent crackles, brighter filter.
	// Rate spans roughly 2..40 crackles per second.
	burstsPerSec := 2.0 + heat*38.0
	burstChance := burstsPerSec / SampleRate
	cutoff := 400.0 + heat*3600.0
	dt := 1.0 / float64(SampleRate)

	vol := 0.25

	for i := 0; i < len(out[0]); i++ {
		if a.burstLeft <= 0 && a.rng.Float64() < burstChance {
			// 2-12 ms of noise per crackle.
			a.burstLeft = int(SampleRate * (0.002 + a.rng.Float64()*0.010))
			a.burstGain = 0.3 + a.rng.Float64()*0.7
		}

		sample := 0.0
		if a.burstLeft > 0 {
			decay := float64(a.burstLeft) / float64(SampleRate) * 80.0
			if decay > 1 {
				decay = 1
			}
			sample = (a.rng.Float64()*2 - 1) * a.burstGain * decay
			a.burstLeft--
		}

		// Low rumble under the crackles, scaled by heat.
		a.rumblePhase += 2 * math.Pi * 55.0 * dt
		rumble := math.Sin(a.rumblePhase) * 0.08 * heat

		var outL, outR float64
		outL, a.filterState[0] = lpf(sample+rumble, cutoff, dt, a.filterState[0])
		outR, a.filterState[1] = lpf(sample*0.8+rumble, cutoff, dt, a.filterState[1])

		out[0][i] = float32(outL * vol)
		out[1][i] = float32(outR * vol)
	}
}
