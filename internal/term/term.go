// Package term owns the raw-mode lifecycle of the controlling terminal:
// attribute capture and restoration, dimension queries, color-depth
// negotiation and the cooperative shutdown flag driven by signals.
package term

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"sync"
	"sync/atomic"
	"syscall"

	"golang.org/x/sys/unix"
	xterm "golang.org/x/term"
)

// Domain errors for terminal acquisition. All of them are fatal at startup.
var (
	// ErrNotTerminal indicates stdout is not attached to a terminal.
	ErrNotTerminal = errors.New("term: stdout is not a terminal")

	// ErrGetAttr indicates the original terminal attributes could not be read.
	ErrGetAttr = errors.New("term: cannot read terminal attributes")

	// ErrSetAttr indicates raw mode could not be entered.
	ErrSetAttr = errors.New("term: cannot set terminal attributes")
)

// ColorDepth is the negotiated output color space.
type ColorDepth int

const (
	// Indexed256 emits xterm-256 background indices.
	Indexed256 ColorDepth = iota
	// TrueColor emits 24-bit RGB backgrounds.
	TrueColor
)

func (d ColorDepth) String() string {
	if d == TrueColor {
		return "truecolor"
	}
	return "256"
}

// DetectColorDepth inspects the COLORTERM hint once. Anything other than an
// explicit truecolor advertisement falls back to the 256-color space.
func DetectColorDepth() ColorDepth {
	ct := os.Getenv("COLORTERM")
	if strings.Contains(ct, "truecolor") || strings.Contains(ct, "24bit") {
		return TrueColor
	}
	return Indexed256
}

// Controller manages the terminal for the lifetime of the frame loop.
// Acquire and Restore bracket every run; Restore is safe to call from any
// exit path and runs exactly once.
type Controller struct {
	in    *os.File
	out   *os.File
	orig  unix.Termios
	depth ColorDepth

	restore sync.Once
	stop    atomic.Bool
	sigs    chan os.Signal
}

// New builds a controller over stdin/stdout with the color depth negotiated
// from the environment. The depth is fixed for the process lifetime.
func New() *Controller {
	return &Controller{
		in:    os.Stdin,
		out:   os.Stdout,
		depth: DetectColorDepth(),
	}
}

// Depth returns the negotiated color depth.
func (c *Controller) Depth() ColorDepth { return c.depth }

// SetDepth overrides the negotiated depth. Must be called before Acquire.
func (c *Controller) SetDepth(d ColorDepth) { c.depth = d }

// Out is the byte sink renderers flush escape sequences into.
func (c *Controller) Out() *os.File { return c.out }

// Acquire switches the terminal to non-canonical, non-echoing mode while
// keeping ISIG so interrupt delivery still works, enters the alternate
// screen and hides the cursor. On success the caller must arrange for
// Restore to run on every exit path.
func (c *Controller) Acquire() error {
	if !xterm.IsTerminal(int(c.out.Fd())) {
		return ErrNotTerminal
	}

	tio, err := unix.IoctlGetTermios(int(c.in.Fd()), reqGetAttr)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrGetAttr, err)
	}
	c.orig = *tio

	raw := *tio
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN
	raw.Lflag |= unix.ISIG
	raw.Iflag &^= unix.IXON | unix.ICRNL
	raw.Oflag &^= unix.OPOST

	if err := unix.IoctlSetTermios(int(c.in.Fd()), reqSetAttrFlush, &raw); err != nil {
		return fmt.Errorf("%w: %v", ErrSetAttr, err)
	}

	// Alternate screen, hidden cursor, clean slate.
	c.out.WriteString("\x1b[?1049h\x1b[?25l\x1b[2J")

	c.sigs = make(chan os.Signal, 8)
	signal.Notify(c.sigs, os.Interrupt, syscall.SIGTERM, unix.SIGWINCH)
	go c.watchSignals()

	return nil
}

// watchSignals flips the cooperative stop flag. Nothing is rendered or
// restored from here; the frame loop observes the flag at iteration
// boundaries, so an in-progress render always completes.
func (c *Controller) watchSignals() {
	for sig := range c.sigs {
		switch sig {
		case os.Interrupt, syscall.SIGTERM:
			c.stop.Store(true)
		case unix.SIGWINCH:
			// Advisory only: dimensions are re-queried every tick anyway.
		}
	}
}

// Stopped reports whether a shutdown signal has arrived. Checked once per
// frame-loop iteration.
func (c *Controller) Stopped() bool { return c.stop.Load() }

// RequestStop flips the stop flag programmatically.
func (c *Controller) RequestStop() { c.stop.Store(true) }

// Restore undoes everything Acquire did: shows the cursor, leaves the
// alternate screen, resets colors and restores the saved attributes. It
// runs exactly once no matter how many exit paths reach it.
func (c *Controller) Restore() {
	c.restore.Do(func() {
		c.out.WriteString("\x1b[?25h\x1b[?1049l\x1b[0m")
		unix.IoctlSetTermios(int(c.in.Fd()), reqSetAttrFlush, &c.orig)
		if c.sigs != nil {
			signal.Stop(c.sigs)
			close(c.sigs)
		}
	})
}

// Size queries the current terminal dimensions. Non-blocking; called every
// frame so resizes are picked up even without SIGWINCH.
func (c *Controller) Size() (cols, rows int, err error) {
	ws, err := unix.IoctlGetWinsize(int(c.out.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, fmt.Errorf("term: winsize: %w", err)
	}
	cols, rows = int(ws.Col), int(ws.Row)
	if cols == 0 {
		cols = 80
	}
	if rows == 0 {
		rows = 24
	}
	return cols, rows, nil
}
