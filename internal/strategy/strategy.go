// Package strategy implements the cleaning traversal algorithms: the
// deterministic sweep and spiral passes and the bounded random walk.
// Strategies drive the robot exclusively through its Move and
// CleanCurrentSpot primitives; obstacle avoidance and bounds safety live
// in the robot, not here.
package strategy

import (
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/gridsweep/gridsweep/internal/robot"
)

// Kind names a strategy variant in configuration and scenario files.
type Kind string

const (
	KindSweep      Kind = "sweep"
	KindRandomWalk Kind = "random"
	KindSpiral     Kind = "spiral"
)

// DefaultMaxMoves bounds a random walk when no budget is configured.
const DefaultMaxMoves = 50

// Options carries strategy-specific parameters for the New factory.
type Options struct {
	// MaxMoves bounds the random walk; ignored by other kinds.
	// Zero means DefaultMaxMoves.
	MaxMoves int

	// Rand is the randomness source for the random walk. Nil means a
	// freshly seeded generator.
	Rand *rand.Rand

	// Logger receives strategy progress reports. Nil discards them.
	Logger *slog.Logger
}

// New constructs the strategy named by kind.
func New(kind Kind, opts Options) (robot.Strategy, error) {
	switch kind {
	case KindSweep:
		return Sweep{}, nil
	case KindRandomWalk:
		return NewRandomWalk(opts.MaxMoves, opts.Rand, opts.Logger), nil
	case KindSpiral:
		return Spiral{}, nil
	default:
		return nil, fmt.Errorf("unknown strategy %q", kind)
	}
}

// Kinds returns the valid strategy names, for usage messages.
func Kinds() []Kind {
	return []Kind{KindSweep, KindRandomWalk, KindSpiral}
}

// visit attempts one cell: move there, then clean whatever cell the robot
// now occupies. A rejected move leaves the robot where it was, so an
// obstacle is simply skipped.
func visit(r *robot.Robot, x, y int) {
	r.Move(x, y)
	r.CleanCurrentSpot()
}
