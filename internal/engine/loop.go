// Package engine drives the fixed-rate frame loop that composes the
// terminal controller, simulation grid and display surface.
package engine

import (
	"io"
	"math/rand"
	"time"

	"github.com/san-kum/pyre/internal/display"
	"github.com/san-kum/pyre/internal/fire"
	"github.com/san-kum/pyre/internal/palette"
	"github.com/san-kum/pyre/internal/term"
)

// DefaultFPS is the target frame rate of the terminal renderer.
const DefaultFPS = 60

// Config tunes a terminal run.
type Config struct {
	FPS        int
	Fire       fire.Params
	BufferSize int
	Seed       int64
}

// DefaultConfig returns the reference tuning.
func DefaultConfig() Config {
	return Config{
		FPS:        DefaultFPS,
		Fire:       fire.DefaultParams(),
		BufferSize: display.DefaultBufferSize,
		Seed:       time.Now().UnixNano(),
	}
}

// Loop is the frame scheduler. Everything it owns is mutated only from Run;
// there is no parallelism anywhere in the render path.
type Loop struct {
	grid    *fire.Grid
	surface *display.Surface
	pal     *palette.Table
	depth   term.ColorDepth
	period  time.Duration
}

// New builds a loop rendering to out at the given color depth. The initial
// grid is sized on the first iteration, so dimensions are not needed here.
func New(out io.Writer, depth term.ColorDepth, cfg Config) (*Loop, error) {
	if cfg.FPS <= 0 {
		cfg.FPS = DefaultFPS
	}
	grid, err := fire.NewGrid(1, 2, cfg.Fire, rand.New(rand.NewSource(cfg.Seed)))
	if err != nil {
		return nil, err
	}
	return &Loop{
		grid:    grid,
		surface: display.NewSurface(out, cfg.BufferSize),
		pal:     palette.Generate(),
		depth:   depth,
		period:  time.Second / time.Duration(cfg.FPS),
	}, nil
}

// Run executes the frame loop until stopped reports true. Each iteration:
// query dimensions, cold-restart the flame on any change, advance the
// simulation one step, render one frame, then sleep whatever remains of the
// period. Pacing is best-effort; an overrunning frame is not compensated.
//
// The stop flag is only observed here, at iteration boundaries, so a step
// or render in progress always completes before shutdown.
func (l *Loop) Run(size func() (cols, rows int, err error), stopped func() bool) error {
	for !stopped() {
		start := time.Now()

		cols, rows, err := size()
		if err != nil {
			return err
		}
		if cols < 1 {
			cols = 1
		}
		if rows < 2 {
			// The automaton needs a source row plus at least one above it.
			rows = 2
		}
		if l.surface.Resize(cols, rows) {
			if err := l.grid.Resize(cols, rows); err != nil {
				return err
			}
		}

		l.grid.Step()
		if err := l.surface.Render(l.grid, l.pal, l.depth); err != nil {
			return err
		}

		if rem := l.period - time.Since(start); rem > 0 {
			time.Sleep(rem)
		}
	}
	return nil
}

// RunTerminal acquires the terminal, runs the loop and guarantees
// restoration on every exit path, fatal errors included. The user's
// terminal is never left in raw or alternate-screen mode.
func RunTerminal(cfg Config, depthOverride *term.ColorDepth) error {
	tc := term.New()
	if depthOverride != nil {
		tc.SetDepth(*depthOverride)
	}
	if err := tc.Acquire(); err != nil {
		return err
	}
	defer tc.Restore()

	loop, err := New(tc.Out(), tc.Depth(), cfg)
	if err != nil {
		return err
	}
	return loop.Run(tc.Size, tc.Stopped)
}
