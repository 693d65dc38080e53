// Package grid models the bounded 2D floor a cleaning robot operates on.
// A grid owns its cell states exclusively; all reads and writes go through
// bounds-checked operations so out-of-range coordinates are never indexed.
package grid

import "strings"

// CellState is the content of a single grid cell.
type CellState uint8

const (
	Empty CellState = iota
	Dirt
	Obstacle
	Cleaned
)

// Symbol returns the single-character display form of the state.
func (s CellState) Symbol() byte {
	switch s {
	case Dirt:
		return 'D'
	case Obstacle:
		return '#'
	case Cleaned:
		return 'C'
	default:
		return '.'
	}
}

// String implements fmt.Stringer.
func (s CellState) String() string {
	switch s {
	case Empty:
		return "empty"
	case Dirt:
		return "dirt"
	case Obstacle:
		return "obstacle"
	case Cleaned:
		return "cleaned"
	default:
		return "unknown"
	}
}

// RobotSymbol marks the robot's cell in a snapshot. It takes priority over
// the underlying cell symbol.
const RobotSymbol = 'R'

// Sink receives rendered grid frames. Implementations own the output medium
// (terminal, log, test capture). A nil Sink is valid and means headless.
type Sink interface {
	Frame(frame string)
}

// Grid is a fixed-size rectangular floor. Dimensions never change after
// construction.
type Grid struct {
	width  int
	height int
	cells  [][]CellState
}

// New creates a width×height grid with every cell Empty. Non-positive
// dimensions are clamped to 1; callers validate user input before this point.
func New(width, height int) *Grid {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	cells := make([][]CellState, height)
	for y := range cells {
		cells[y] = make([]CellState, width)
	}
	return &Grid{width: width, height: height, cells: cells}
}

// Width returns the grid width.
func (g *Grid) Width() int { return g.width }

// Height returns the grid height.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (x,y) lies on the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// StateAt returns the cell state at (x,y). Out-of-bounds coordinates
// report Empty and ok=false.
func (g *Grid) StateAt(x, y int) (state CellState, ok bool) {
	if !g.InBounds(x, y) {
		return Empty, false
	}
	return g.cells[y][x], true
}

// IsDirt reports whether (x,y) is in bounds and holds dirt.
func (g *Grid) IsDirt(x, y int) bool {
	return g.InBounds(x, y) && g.cells[y][x] == Dirt
}

// IsObstacle reports whether (x,y) is in bounds and holds an obstacle.
func (g *Grid) IsObstacle(x, y int) bool {
	return g.InBounds(x, y) && g.cells[y][x] == Obstacle
}

// IsEmpty reports whether (x,y) is in bounds and empty.
func (g *Grid) IsEmpty(x, y int) bool {
	return g.InBounds(x, y) && g.cells[y][x] == Empty
}

// AddDirt places dirt at (x,y). Out-of-bounds writes are silently ignored.
func (g *Grid) AddDirt(x, y int) {
	if g.InBounds(x, y) {
		g.cells[y][x] = Dirt
	}
}

// AddObstacle places an obstacle at (x,y). Out-of-bounds writes are
// silently ignored.
func (g *Grid) AddObstacle(x, y int) {
	if g.InBounds(x, y) {
		g.cells[y][x] = Obstacle
	}
}

// Clean marks (x,y) as Cleaned regardless of its prior state. Idempotent;
// out-of-bounds writes are silently ignored.
func (g *Grid) Clean(x, y int) {
	if g.InBounds(x, y) {
		g.cells[y][x] = Cleaned
	}
}

// Count returns the number of cells currently in the given state.
func (g *Grid) Count(state CellState) int {
	n := 0
	for _, row := range g.cells {
		for _, c := range row {
			if c == state {
				n++
			}
		}
	}
	return n
}

// Snapshot renders the full grid as text, one space-separated row per line,
// with the robot marker overriding the cell symbol at (robotX, robotY).
func (g *Grid) Snapshot(robotX, robotY int) string {
	var b strings.Builder
	b.Grow(g.height * (g.width*2 + 1))
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if x > 0 {
				b.WriteByte(' ')
			}
			if x == robotX && y == robotY {
				b.WriteByte(RobotSymbol)
			} else {
				b.WriteByte(g.cells[y][x].Symbol())
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Render pushes a snapshot for the given robot position to the sink.
// A nil sink makes this a no-op, for headless runs and tests.
func (g *Grid) Render(sink Sink, robotX, robotY int) {
	if sink == nil {
		return
	}
	sink.Frame(g.Snapshot(robotX, robotY))
}
