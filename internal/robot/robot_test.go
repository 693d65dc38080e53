package robot

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/gridsweep/gridsweep/internal/grid"
	"github.com/gridsweep/gridsweep/internal/logging"
)

type captureSink struct {
	frames []string
}

func (c *captureSink) Frame(f string) { c.frames = append(c.frames, f) }

func TestMoveInBounds(t *testing.T) {
	g := grid.New(3, 3)
	sink := &captureSink{}
	r := New(g, sink, nil, nil)

	if !r.Move(1, 2) {
		t.Fatal("Move(1,2) failed on an empty in-bounds cell")
	}
	x, y := r.Position()
	if x != 1 || y != 2 {
		t.Errorf("position = (%d,%d), want (1,2)", x, y)
	}
	if len(sink.frames) != 1 {
		t.Errorf("expected 1 rendered frame after move, got %d", len(sink.frames))
	}
}

func TestMoveOutOfBounds(t *testing.T) {
	g := grid.New(3, 3)
	r := New(g, nil, nil, nil)

	tests := []struct {
		name string
		x, y int
	}{
		{"negative x", -1, 0},
		{"negative y", 0, -1},
		{"x at width", 3, 0},
		{"y at height", 0, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if r.Move(tt.x, tt.y) {
				t.Errorf("Move(%d,%d) succeeded out of bounds", tt.x, tt.y)
			}
			x, y := r.Position()
			if x != 0 || y != 0 {
				t.Errorf("failed move changed position to (%d,%d)", x, y)
			}
		})
	}
}

func TestMoveOntoObstacle(t *testing.T) {
	g := grid.New(3, 3)
	g.AddObstacle(1, 0)
	r := New(g, nil, nil, nil)

	if r.Move(1, 0) {
		t.Error("Move succeeded onto an obstacle")
	}
	if x, y := r.Position(); x != 0 || y != 0 {
		t.Errorf("rejected move changed position to (%d,%d)", x, y)
	}
	if r.Moves() != 0 {
		t.Errorf("Moves() = %d after rejected move, want 0", r.Moves())
	}
}

func TestCleanCurrentSpot(t *testing.T) {
	g := grid.New(3, 3)
	g.AddDirt(0, 0)
	r := New(g, nil, nil, nil)

	r.CleanCurrentSpot()
	if state, _ := g.StateAt(0, 0); state != grid.Cleaned {
		t.Errorf("cell state = %v after clean, want cleaned", state)
	}
	if r.CellsCleaned() != 1 {
		t.Errorf("CellsCleaned() = %d, want 1", r.CellsCleaned())
	}

	// Cleaning a non-dirt cell is a no-op.
	r.CleanCurrentSpot()
	if r.CellsCleaned() != 1 {
		t.Errorf("CellsCleaned() = %d after no-op clean, want 1", r.CellsCleaned())
	}
}

func TestStartCleaningNoStrategy(t *testing.T) {
	g := grid.New(3, 3)
	var buf bytes.Buffer
	r := New(g, nil, logging.NewLogger("info", &buf), nil)

	err := r.StartCleaning()
	if !errors.Is(err, ErrNoStrategy) {
		t.Fatalf("StartCleaning() = %v, want ErrNoStrategy", err)
	}
	if r.Moves() != 0 {
		t.Errorf("Moves() = %d with no strategy, want 0", r.Moves())
	}
	if !strings.Contains(buf.String(), "no strategy") {
		t.Errorf("no-strategy condition not reported: %q", buf.String())
	}
}

type stubStrategy struct {
	name  string
	calls int
}

func (s *stubStrategy) Name() string { return s.name }

func (s *stubStrategy) Clean(r *Robot, g *grid.Grid) {
	s.calls++
	r.Move(1, 0)
	r.CleanCurrentSpot()
}

func TestStartCleaningDelegates(t *testing.T) {
	g := grid.New(3, 3)
	g.AddDirt(1, 0)
	r := New(g, nil, nil, nil)

	strat := &stubStrategy{name: "stub"}
	r.SetStrategy(strat)

	if err := r.StartCleaning(); err != nil {
		t.Fatalf("StartCleaning() = %v", err)
	}
	if strat.calls != 1 {
		t.Errorf("strategy invoked %d times, want 1", strat.calls)
	}
	if g.Count(grid.Dirt) != 0 {
		t.Error("dirt not cleaned by delegated pass")
	}
}

func TestSetStrategyLogsChange(t *testing.T) {
	g := grid.New(2, 2)
	var buf bytes.Buffer
	r := New(g, nil, logging.NewLogger("info", &buf), nil)

	r.SetStrategy(&stubStrategy{name: "sweep"})
	if !strings.Contains(buf.String(), "sweep") {
		t.Errorf("strategy change not logged: %q", buf.String())
	}
}
