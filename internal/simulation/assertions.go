package simulation

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gridsweep/gridsweep/internal/grid"
)

// AssertVisited fails unless the robot's trajectory matches want exactly.
func (res Result) AssertVisited(t *testing.T, want []Point) {
	t.Helper()
	if diff := cmp.Diff(want, res.Visited); diff != "" {
		t.Errorf("trajectory mismatch (-want +got):\n%s", diff)
	}
}

// AssertCoverage fails unless every non-obstacle cell was visited exactly
// once and no obstacle cell was ever entered. Only meaningful for
// deterministic strategies.
func (res Result) AssertCoverage(t *testing.T) {
	t.Helper()

	visits := make(map[Point]int, len(res.Visited))
	for _, p := range res.Visited {
		visits[p]++
	}

	for y := 0; y < res.Grid.Height(); y++ {
		for x := 0; x < res.Grid.Width(); x++ {
			p := Point{X: x, Y: y}
			if res.Grid.IsObstacle(x, y) {
				if visits[p] > 0 {
					t.Errorf("obstacle cell (%d,%d) was entered %d times", x, y, visits[p])
				}
				continue
			}
			if visits[p] != 1 {
				t.Errorf("cell (%d,%d) visited %d times, want 1", x, y, visits[p])
			}
		}
	}
}

// AssertAllCleaned fails if any dirt remains on the grid.
func (res Result) AssertAllCleaned(t *testing.T) {
	t.Helper()
	if left := res.Grid.Count(grid.Dirt); left != 0 {
		t.Errorf("%d dirt cells remain after the pass", left)
	}
}

// AssertObstaclesIntact fails unless every given cell still holds an
// obstacle.
func (res Result) AssertObstaclesIntact(t *testing.T, obstacles []Point) {
	t.Helper()
	for _, o := range obstacles {
		if !res.Grid.IsObstacle(o.X, o.Y) {
			t.Errorf("obstacle at (%d,%d) was disturbed", o.X, o.Y)
		}
	}
}

// AssertInBounds fails if the trajectory ever left the grid.
func (res Result) AssertInBounds(t *testing.T) {
	t.Helper()
	for _, p := range res.Visited {
		if !res.Grid.InBounds(p.X, p.Y) {
			t.Errorf("robot visited out-of-bounds cell (%d,%d)", p.X, p.Y)
		}
	}
}
