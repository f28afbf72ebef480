package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/pyre/internal/config"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Seed = 1
	m, err := NewModel(cfg)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestViewEmptyBeforeFirstSize(t *testing.T) {
	m := newTestModel(t)
	if v := m.View(); v != "" {
		t.Errorf("expected empty view before sizing, got %q", v)
	}
}

func TestWindowSizeResizesGrid(t *testing.T) {
	m := newTestModel(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 10, Height: 5})
	m = next.(Model)

	if m.grid.Width() != 10 || m.grid.Height() != 5 {
		t.Errorf("grid is %dx%d, want 10x5", m.grid.Width(), m.grid.Height())
	}

	// One line fewer than the window: the source row stays hidden.
	lines := strings.Split(m.View(), "\n")
	if len(lines) != 4 {
		t.Errorf("view has %d lines, want 4", len(lines))
	}
}

func TestDegenerateWindowClamped(t *testing.T) {
	m := newTestModel(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 0, Height: 1})
	m = next.(Model)

	if m.grid.Width() != 1 || m.grid.Height() != 2 {
		t.Errorf("grid is %dx%d, want clamped 1x2", m.grid.Width(), m.grid.Height())
	}
}

func TestSpaceTogglesPause(t *testing.T) {
	m := newTestModel(t)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = next.(Model)
	if m.running {
		t.Error("space should pause")
	}
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = next.(Model)
	if !m.running {
		t.Error("space should resume")
	}
}

func TestQuitKeys(t *testing.T) {
	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyCtrlC},
	} {
		m := newTestModel(t)
		_, cmd := m.Update(key)
		if cmd == nil {
			t.Errorf("key %v should quit", key)
		}
	}
}

func TestTickStepsOnlyWhenRunning(t *testing.T) {
	m := newTestModel(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 8, Height: 6})
	m = next.(Model)

	next, cmd := m.Update(TickMsg(time.Now()))
	m = next.(Model)
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}

	// After a handful of ticks a default flame has heat in it.
	for i := 0; i < 20; i++ {
		next, _ = m.Update(TickMsg(time.Now()))
		m = next.(Model)
	}
	if m.grid.MeanHeat() == 0 {
		t.Error("running fire never ignited")
	}
}
