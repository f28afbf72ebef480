// Package display turns a heat field into a buffered ANSI escape-sequence
// stream. The only drawing primitive is a space glyph over a set background
// color; every cell is re-emitted every frame, so correctness never depends
// on what the terminal already shows.
package display

import (
	"io"

	"github.com/san-kum/pyre/internal/fire"
	"github.com/san-kum/pyre/internal/palette"
	"github.com/san-kum/pyre/internal/term"
)

// Surface renders heat fields to a terminal byte sink. It owns the reused
// output buffer and the pending-clear flag raised by resizes.
type Surface struct {
	buf       *Buffer
	cols      int
	rows      int
	needClear bool
}

// NewSurface builds a surface writing to out through a buffer of bufSize
// bytes (DefaultBufferSize when <= 0). The screen is already cleared by
// terminal acquisition, so no clear is pending initially.
func NewSurface(out io.Writer, bufSize int) *Surface {
	return &Surface{buf: NewBuffer(out, bufSize)}
}

// Resize records new dimensions. On any change the tracked geometry is
// replaced and a full clear is forced on the next render; stale cells from
// the old geometry must never survive. Reports whether a change happened.
func (s *Surface) Resize(cols, rows int) bool {
	if cols == s.cols && rows == s.rows {
		return false
	}
	s.cols = cols
	s.rows = rows
	s.needClear = true
	return true
}

// Render emits one full frame: optional clear, cursor home, one background
// color plus one space per cell for every row except the bottom source row,
// then an attribute reset. The buffer is flushed whenever the next append
// would overflow it and unconditionally at the end.
func (s *Surface) Render(g *fire.Grid, pal *palette.Table, depth term.ColorDepth) error {
	b := s.buf
	if s.needClear {
		b.Clear()
		s.needClear = false
	}
	b.Home()

	cells := g.Cells()
	w := g.Width()
	for y := 0; y < g.Height()-1; y++ {
		row := cells[y*w : (y+1)*w]
		if depth == term.TrueColor {
			for _, c := range row {
				rgb := pal.RGB[c]
				b.BackgroundRGB(rgb.R, rgb.G, rgb.B)
				b.Cell()
			}
		} else {
			for _, c := range row {
				b.BackgroundIndexed(pal.Indexed[c])
				b.Cell()
			}
		}
	}

	b.Reset()
	return b.Flush()
}
