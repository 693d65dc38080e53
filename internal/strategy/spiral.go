package strategy

import (
	"github.com/gridsweep/gridsweep/internal/grid"
	"github.com/gridsweep/gridsweep/internal/robot"
)

// Spiral traverses the grid in shrinking rectangular layers: top row left
// to right, right column top to bottom, bottom row right to left, left
// column bottom to top, then moves one layer inward. Terminates when the
// boundaries cross, after at most ceil(min(W,H)/2) layers. Same
// skip-on-obstacle semantics as Sweep.
type Spiral struct{}

// Name implements robot.Strategy.
func (Spiral) Name() string { return string(KindSpiral) }

// Clean implements robot.Strategy.
func (Spiral) Clean(r *robot.Robot, g *grid.Grid) {
	top, bottom := 0, g.Height()-1
	left, right := 0, g.Width()-1

	for top <= bottom && left <= right {
		for x := left; x <= right; x++ {
			visit(r, x, top)
		}
		top++

		for y := top; y <= bottom; y++ {
			visit(r, right, y)
		}
		right--

		// The bottom row and left column only remain once the shrunk
		// boundaries still enclose cells.
		if top <= bottom {
			for x := right; x >= left; x-- {
				visit(r, x, bottom)
			}
			bottom--
		}
		if left <= right {
			for y := bottom; y >= top; y-- {
				visit(r, left, y)
			}
			left++
		}
	}
}
