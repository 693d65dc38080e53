package strategy

import (
	"github.com/gridsweep/gridsweep/internal/grid"
	"github.com/gridsweep/gridsweep/internal/robot"
)

// Sweep traverses the grid row by row in a boustrophedon pattern:
// even-indexed rows left to right, odd-indexed rows right to left.
// Every cell is attempted exactly once; obstacles are skipped in place.
type Sweep struct{}

// Name implements robot.Strategy.
func (Sweep) Name() string { return string(KindSweep) }

// Clean implements robot.Strategy.
func (Sweep) Clean(r *robot.Robot, g *grid.Grid) {
	for y := 0; y < g.Height(); y++ {
		if y%2 == 0 {
			for x := 0; x < g.Width(); x++ {
				visit(r, x, y)
			}
		} else {
			for x := g.Width() - 1; x >= 0; x-- {
				visit(r, x, y)
			}
		}
	}
}
