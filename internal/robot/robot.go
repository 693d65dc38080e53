// Package robot implements the cleaning robot: a position on a grid and the
// two primitives (move, clean) that every strategy drives it through.
// All bounds and obstacle enforcement happens in Move; strategies never
// touch the grid directly.
package robot

import (
	"errors"
	"log/slog"

	"github.com/gridsweep/gridsweep/internal/grid"
	"github.com/gridsweep/gridsweep/internal/logging"
)

// ErrNoStrategy is returned by StartCleaning when no strategy has been set.
var ErrNoStrategy = errors.New("no cleaning strategy set")

// Strategy drives one full cleaning pass over a grid. Implementations move
// the robot exclusively through Move and CleanCurrentSpot and return when
// the pass is complete.
type Strategy interface {
	// Name identifies the strategy in logs and run records.
	Name() string

	// Clean runs a single synchronous pass. No state persists across calls.
	Clean(r *Robot, g *grid.Grid)
}

// Robot holds a position on a grid and delegates cleaning passes to its
// current strategy. The grid reference is fixed for the robot's lifetime;
// the strategy is replaceable at any time.
type Robot struct {
	x, y     int
	grid     *grid.Grid
	strategy Strategy
	sink     grid.Sink
	log      *slog.Logger
	trace    *logging.TraceLogger

	moves   int
	cleaned int
}

// New creates a robot at (0,0) on g. The sink receives a frame after every
// successful move and clean; nil means headless. A nil logger discards
// operational output, and trace may be nil to disable step tracing.
func New(g *grid.Grid, sink grid.Sink, log *slog.Logger, trace *logging.TraceLogger) *Robot {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Robot{grid: g, sink: sink, log: log, trace: trace}
}

// Position returns the robot's current coordinates.
func (r *Robot) Position() (x, y int) { return r.x, r.y }

// Moves returns the number of successful moves this robot has made.
func (r *Robot) Moves() int { return r.moves }

// CellsCleaned returns the number of dirt cells this robot has cleaned.
func (r *Robot) CellsCleaned() int { return r.cleaned }

// SetStrategy replaces the robot's current strategy.
func (r *Robot) SetStrategy(s Strategy) {
	r.strategy = s
	name := "none"
	if s != nil {
		name = s.Name()
	}
	r.log.Info("strategy changed", "strategy", name)
	r.trace.Log(map[string]any{"event": "strategy", "name": name})
}

// Move attempts to relocate the robot to (x,y). It succeeds only when the
// target is in bounds and not an obstacle; on success the position updates
// and the grid is rendered at the new position. On failure the robot stays
// put and Move returns false. This is the single gate through which all
// position changes pass.
func (r *Robot) Move(x, y int) bool {
	if !r.grid.InBounds(x, y) || r.grid.IsObstacle(x, y) {
		r.log.Log(nil, logging.LevelTrace, "move rejected", "x", x, "y", y)
		r.trace.Log(map[string]any{"event": "move", "x": x, "y": y, "ok": false})
		return false
	}
	r.x, r.y = x, y
	r.moves++
	r.log.Log(nil, logging.LevelTrace, "moved", "x", x, "y", y)
	r.trace.Log(map[string]any{"event": "move", "x": x, "y": y, "ok": true})
	r.grid.Render(r.sink, r.x, r.y)
	return true
}

// CleanCurrentSpot cleans the robot's current cell if it holds dirt and
// renders the result. Anything other than dirt is left untouched.
func (r *Robot) CleanCurrentSpot() {
	if !r.grid.IsDirt(r.x, r.y) {
		return
	}
	r.grid.Clean(r.x, r.y)
	r.cleaned++
	r.log.Log(nil, logging.LevelTrace, "cleaned", "x", r.x, "y", r.y)
	r.trace.Log(map[string]any{"event": "clean", "x": r.x, "y": r.y})
	r.grid.Render(r.sink, r.x, r.y)
}

// StartCleaning runs one full pass with the current strategy.
// Without a strategy it performs no moves and returns ErrNoStrategy,
// which callers report rather than treat as fatal.
func (r *Robot) StartCleaning() error {
	if r.strategy == nil {
		r.log.Warn("cleaning requested with no strategy set")
		return ErrNoStrategy
	}
	r.log.Info("cleaning pass started", "strategy", r.strategy.Name())
	r.strategy.Clean(r, r.grid)
	r.log.Info("cleaning pass finished",
		"strategy", r.strategy.Name(),
		"moves", r.moves,
		"cleaned", r.cleaned,
		"dirt_left", r.grid.Count(grid.Dirt))
	return nil
}
