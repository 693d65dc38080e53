package strategy

import (
	"log/slog"
	"math/rand/v2"

	"github.com/gridsweep/gridsweep/internal/grid"
	"github.com/gridsweep/gridsweep/internal/robot"
)

// maxAttempts is the per-step budget of random move candidates before the
// walk declares itself stuck.
const maxAttempts = 8

// RandomWalk cleans the current cell and then steps to a random adjacent
// cell, up to a configured maximum number of moves. Each step draws at
// most maxAttempts candidate directions; if none succeeds the walk is
// stuck and the pass ends early. The randomness source is injected so
// tests can pin it down.
type RandomWalk struct {
	maxMoves int
	rng      *rand.Rand
	log      *slog.Logger
}

// NewRandomWalk creates a random walk bounded to maxMoves moves.
// A non-positive maxMoves falls back to DefaultMaxMoves. A nil rng gets a
// freshly seeded generator, and a nil logger discards progress reports.
func NewRandomWalk(maxMoves int, rng *rand.Rand, log *slog.Logger) *RandomWalk {
	if maxMoves < 1 {
		maxMoves = DefaultMaxMoves
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &RandomWalk{maxMoves: maxMoves, rng: rng, log: log}
}

// Name implements robot.Strategy.
func (w *RandomWalk) Name() string { return string(KindRandomWalk) }

// Clean implements robot.Strategy.
func (w *RandomWalk) Clean(r *robot.Robot, g *grid.Grid) {
	for i := 0; i < w.maxMoves; i++ {
		r.CleanCurrentSpot()

		if !w.step(r) {
			x, y := r.Position()
			w.log.Info("random walk stuck", "x", x, "y", y, "moves", i)
			return
		}
	}
	r.CleanCurrentSpot()
	w.log.Info("random walk move budget exhausted", "moves", w.maxMoves)
}

// step tries up to maxAttempts random unit moves and reports whether one
// succeeded. Candidates are uniform over the eight neighbors.
func (w *RandomWalk) step(r *robot.Robot) bool {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		dx, dy := w.direction()
		x, y := r.Position()
		if r.Move(x+dx, y+dy) {
			return true
		}
	}
	return false
}

// direction draws a non-zero (dx,dy) with each component in {-1,0,1}.
func (w *RandomWalk) direction() (dx, dy int) {
	for {
		dx, dy = w.rng.IntN(3)-1, w.rng.IntN(3)-1
		if dx != 0 || dy != 0 {
			return dx, dy
		}
	}
}
