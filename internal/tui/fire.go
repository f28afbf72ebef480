// Package tui is the bubbletea fallback renderer. It draws the fire as
// lipgloss-styled cells instead of raw escape sequences, trading speed
// for portability to terminals the raw controller cannot negotiate.
package tui

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/pyre/internal/config"
	"github.com/san-kum/pyre/internal/fire"
	"github.com/san-kum/pyre/internal/palette"
)

type TickMsg time.Time

type Model struct {
	grid    *fire.Grid
	styles  *[256]lipgloss.Style
	period  time.Duration
	running bool
	ready   bool
}

// NewModel builds the renderer. The grid starts at a placeholder size
// and is resized when bubbletea reports the real window dimensions.
func NewModel(cfg *config.Config) (Model, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	grid, err := fire.NewGrid(1, 2, cfg.FireParams(), rand.New(rand.NewSource(seed)))
	if err != nil {
		return Model{}, err
	}

	fps := cfg.Display.FPS
	if fps <= 0 {
		fps = config.DefaultFPS
	}

	return Model{
		grid:    grid,
		styles:  buildStyles(palette.Generate()),
		period:  time.Second / time.Duration(fps),
		running: true,
	}, nil
}

func buildStyles(pal *palette.Table) *[256]lipgloss.Style {
	var styles [256]lipgloss.Style
	for i, c := range pal.RGB {
		hex := fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
		styles[i] = lipgloss.NewStyle().Background(lipgloss.Color(hex))
	}
	return &styles
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.period, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.grid.Fill(0)
		}
	case tea.WindowSizeMsg:
		cols, rows := msg.Width, msg.Height
		if cols < 1 {
			cols = 1
		}
		if rows < 2 {
			rows = 2
		}
		if err := m.grid.Resize(cols, rows); err == nil {
			m.ready = true
		}
	case TickMsg:
		if m.running && m.ready {
			m.grid.Step()
		}
		return m, m.tick()
	}
	return m, nil
}

// View draws every row except the bottom source row, one styled space
// per cell.
func (m Model) View() string {
	if !m.ready {
		return ""
	}
	w, h := m.grid.Width(), m.grid.Height()
	var s strings.Builder
	s.Grow(h * w * 24)
	for y := 0; y < h-1; y++ {
		if y > 0 {
			s.WriteByte('\n')
		}
		x := 0
		for x < w {
			heat := m.grid.At(x, y)
			run := 1
			for x+run < w && m.grid.At(x+run, y) == heat {
				run++
			}
			s.WriteString(m.styles[heat].Render(strings.Repeat(" ", run)))
			x += run
		}
	}
	return s.String()
}

// Run starts the bubbletea program on the alternate screen and blocks
// until the user quits.
func Run(cfg *config.Config) error {
	m, err := NewModel(cfg)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
