package fire

import (
	"errors"
	"math/rand"
)

const (
	// DefaultCoolingMax is the upper bound of the per-cell decay drawn each
	// propagation step. Higher values give shorter flames.
	DefaultCoolingMax = 3

	// DefaultSparkChance is the percent chance that a source cell re-ignites
	// on a given tick.
	DefaultSparkChance = 60

	// sparkFuzz is the range of the random offset subtracted from a fresh
	// spark, so ignited cells land in [206, 255].
	sparkFuzz = 50
)

// Domain errors for grid operations.
var (
	// ErrBadDimensions indicates a grid smaller than one column by two rows.
	ErrBadDimensions = errors.New("fire: grid needs at least 1 column and 2 rows")

	// ErrBadCooling indicates a negative cooling bound.
	ErrBadCooling = errors.New("fire: cooling max must be non-negative")

	// ErrBadSparkChance indicates a spark chance outside [0, 100].
	ErrBadSparkChance = errors.New("fire: spark chance must be in [0, 100]")
)

// Rand is the source of randomness for seeding and propagation. math/rand
// satisfies it; tests substitute fixed sources for deterministic scenarios.
type Rand interface {
	Intn(n int) int
}

// Params tunes the automaton.
type Params struct {
	CoolingMax  int // decay drawn from [0, CoolingMax] per propagated cell
	SparkChance int // percent chance of re-ignition per source cell per tick
}

// DefaultParams returns the reference tuning.
func DefaultParams() Params {
	return Params{CoolingMax: DefaultCoolingMax, SparkChance: DefaultSparkChance}
}

// Grid owns the heat field and advances it one step per tick. It is not
// safe for concurrent use; the frame loop is its single owner.
type Grid struct {
	width  int
	height int
	cells  []byte
	params Params
	rng    Rand
}

// NewGrid allocates a zeroed width×height field.
func NewGrid(width, height int, params Params, rng Rand) (*Grid, error) {
	if width < 1 || height < 2 {
		return nil, ErrBadDimensions
	}
	if params.CoolingMax < 0 {
		return nil, ErrBadCooling
	}
	if params.SparkChance < 0 || params.SparkChance > 100 {
		return nil, ErrBadSparkChance
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]byte, width*height),
		params: params,
		rng:    rng,
	}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows, including the source row.
func (g *Grid) Height() int { return g.height }

// Cells exposes the row-major heat field. Renderers treat it as a read-only
// snapshot; it is valid until the next Step or Resize.
func (g *Grid) Cells() []byte { return g.cells }

// At returns the heat at (x, y). Row 0 is the top.
func (g *Grid) At(x, y int) byte { return g.cells[y*g.width+x] }

// Set writes the heat at (x, y). Intended for tests and priming.
func (g *Grid) Set(x, y int, v byte) { g.cells[y*g.width+x] = v }

// Resize discards the field and allocates a zeroed one. Content is never
// preserved across a resize; the flame restarts cold.
func (g *Grid) Resize(width, height int) error {
	if width < 1 || height < 2 {
		return ErrBadDimensions
	}
	g.width = width
	g.height = height
	g.cells = make([]byte, width*height)
	return nil
}

// Step advances the field one tick: seed the source row, then propagate
// every row above it in ascending order over the shared buffer.
func (g *Grid) Step() {
	g.seed()
	g.propagate()
}

// seed re-ignites the bottom row. Cells that miss the spark roll decay
// slowly so the source flickers.
func (g *Grid) seed() {
	row := (g.height - 1) * g.width
	for x := 0; x < g.width; x++ {
		if g.rng.Intn(100) < g.params.SparkChance {
			g.cells[row+x] = byte(255 - g.rng.Intn(sparkFuzz))
		} else if g.cells[row+x] > 10 {
			g.cells[row+x] -= 5
		}
	}
}

// propagate pulls heat upward. For each cell the source is the cell below
// in the same buffer; the randomized destination column means the sweep is
// a scatter, not an average. The bottom row is never written here.
func (g *Grid) propagate() {
	for y := 0; y < g.height-1; y++ {
		srcRow := (y + 1) * g.width
		dstRow := y * g.width
		for x := 0; x < g.width; x++ {
			src := g.cells[srcRow+x]
			if src == 0 {
				g.cells[dstRow+x] = 0
				continue
			}
			dst := x + g.rng.Intn(3) - 1
			if dst < 0 {
				dst = 0
			} else if dst >= g.width {
				dst = g.width - 1
			}
			decay := byte(g.rng.Intn(g.params.CoolingMax + 1))
			if src > decay {
				g.cells[dstRow+dst] = src - decay
			} else {
				g.cells[dstRow+dst] = 0
			}
		}
	}
}

// MeanHeat returns the average intensity of the whole field. Used by the
// sonification and analysis paths.
func (g *Grid) MeanHeat() float64 {
	if len(g.cells) == 0 {
		return 0
	}
	sum := 0
	for _, c := range g.cells {
		sum += int(c)
	}
	return float64(sum) / float64(len(g.cells))
}

// Fill sets every cell to v. Used by renderer reset keys and tests.
func (g *Grid) Fill(v byte) {
	for i := range g.cells {
		g.cells[i] = v
	}
}
