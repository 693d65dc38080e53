// Package simulation provides an end-to-end harness for exercising
// cleaning strategies against real grids and robots. A Runner builds the
// scenario, runs one full pass with frames captured, and reconstructs the
// robot's trajectory from the rendered output so tests assert on what a
// viewer would actually have seen.
package simulation

import (
	"strings"
	"testing"

	"github.com/gridsweep/gridsweep/internal/grid"
	"github.com/gridsweep/gridsweep/internal/render"
	"github.com/gridsweep/gridsweep/internal/robot"
)

// Point is a grid coordinate in a trajectory.
type Point struct {
	X int
	Y int
}

// Scenario defines one simulated cleaning pass.
type Scenario struct {
	Name      string
	Width     int
	Height    int
	Dirt      []Point
	Obstacles []Point
	Strategy  robot.Strategy
}

// Result collects everything observable from a completed pass.
type Result struct {
	Grid   *grid.Grid
	Robot  *robot.Robot
	Frames []string

	// Visited is the robot's position per rendered frame with consecutive
	// duplicates collapsed: the cells the robot occupied, in order.
	Visited []Point
}

// Runner orchestrates simulation scenarios.
type Runner struct {
	t *testing.T
}

// NewRunner creates a simulation runner.
func NewRunner(t *testing.T) *Runner {
	t.Helper()
	return &Runner{t: t}
}

// Run executes the scenario and returns the collected results.
func (r *Runner) Run(sc Scenario) Result {
	r.t.Helper()

	g := grid.New(sc.Width, sc.Height)
	for _, d := range sc.Dirt {
		g.AddDirt(d.X, d.Y)
	}
	for _, o := range sc.Obstacles {
		g.AddObstacle(o.X, o.Y)
	}

	sink := &render.Capture{}
	bot := robot.New(g, sink, nil, nil)
	bot.SetStrategy(sc.Strategy)
	if err := bot.StartCleaning(); err != nil {
		r.t.Fatalf("scenario %q: StartCleaning() = %v", sc.Name, err)
	}

	return Result{
		Grid:    g,
		Robot:   bot,
		Frames:  sink.Frames,
		Visited: trajectory(r.t, sink.Frames),
	}
}

// trajectory extracts the robot position from each frame and collapses
// consecutive duplicates. Every frame carries exactly one robot marker.
func trajectory(t *testing.T, frames []string) []Point {
	t.Helper()
	var visited []Point
	for i, frame := range frames {
		p, ok := robotPosition(frame)
		if !ok {
			t.Fatalf("frame %d has no robot marker:\n%s", i, frame)
		}
		if len(visited) == 0 || visited[len(visited)-1] != p {
			visited = append(visited, p)
		}
	}
	return visited
}

// robotPosition locates the robot marker in a rendered frame. Cells are
// space-separated, so the x coordinate is half the byte offset.
func robotPosition(frame string) (Point, bool) {
	for y, line := range strings.Split(strings.TrimRight(frame, "\n"), "\n") {
		for i := 0; i < len(line); i += 2 {
			if line[i] == grid.RobotSymbol {
				return Point{X: i / 2, Y: y}, true
			}
		}
	}
	return Point{}, false
}
