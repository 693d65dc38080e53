// Package scenario loads and prepares cleaning runs: grid dimensions,
// dirt and obstacle placements (explicit or randomized), and the strategy
// selection. Scenarios come from YAML files or built-in layouts.
package scenario

import (
	"fmt"
	"math/rand/v2"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gridsweep/gridsweep/internal/grid"
	"github.com/gridsweep/gridsweep/internal/strategy"
)

// maxPlaceAttempts bounds the retries for one random placement before the
// grid is considered too crowded.
const maxPlaceAttempts = 100

// Point is a grid coordinate in a scenario file.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// StrategySpec selects a strategy and its parameters.
type StrategySpec struct {
	// Kind is one of "sweep", "random", "spiral". Empty means sweep.
	Kind string `yaml:"kind"`

	// MaxMoves bounds the random walk. Zero means the strategy default.
	MaxMoves int `yaml:"max_moves,omitempty"`
}

// Scenario describes one cleaning run.
type Scenario struct {
	Name   string `yaml:"name"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`

	// Explicit placements. Each target cell must be empty and in bounds.
	Dirt      []Point `yaml:"dirt,omitempty"`
	Obstacles []Point `yaml:"obstacles,omitempty"`

	// Randomized placements, applied after the explicit ones. Random
	// cells are always empty and never the robot's start cell (0,0).
	RandomDirt      int `yaml:"random_dirt,omitempty"`
	RandomObstacles int `yaml:"random_obstacles,omitempty"`

	Strategy StrategySpec `yaml:"strategy"`
}

// Load reads and validates a scenario from a YAML file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Demo returns the fixed demonstration layout: a 12×6 grid with five dirt
// cells and three obstacles.
func Demo() *Scenario {
	return &Scenario{
		Name:   "demo",
		Width:  12,
		Height: 6,
		Dirt: []Point{
			{X: 3, Y: 1}, {X: 7, Y: 2}, {X: 5, Y: 3}, {X: 9, Y: 4}, {X: 2, Y: 4},
		},
		Obstacles: []Point{
			{X: 4, Y: 2}, {X: 8, Y: 1}, {X: 6, Y: 4},
		},
		Strategy: StrategySpec{Kind: string(strategy.KindSweep)},
	}
}

// Validate checks dimensions, placement counts, and the strategy kind.
func (s *Scenario) Validate() error {
	if s.Width < 1 || s.Height < 1 {
		return fmt.Errorf("grid dimensions must be positive, got %dx%d", s.Width, s.Height)
	}
	if s.RandomDirt < 0 || s.RandomObstacles < 0 {
		return fmt.Errorf("random placement counts must not be negative")
	}

	// The robot's start cell stays free, so at most w*h-1 cells can be
	// occupied.
	occupied := len(s.Dirt) + len(s.Obstacles) + s.RandomDirt + s.RandomObstacles
	if occupied > s.Width*s.Height-1 {
		return fmt.Errorf("%d placements do not fit a %dx%d grid", occupied, s.Width, s.Height)
	}

	if s.Strategy.Kind != "" {
		kind := strategy.Kind(s.Strategy.Kind)
		valid := false
		for _, k := range strategy.Kinds() {
			if kind == k {
				valid = true
				break
			}
		}
		if !valid {
			return fmt.Errorf("unknown strategy %q (valid: %v)", s.Strategy.Kind, strategy.Kinds())
		}
	}
	if s.Strategy.MaxMoves < 0 {
		return fmt.Errorf("max_moves must not be negative, got %d", s.Strategy.MaxMoves)
	}
	return nil
}

// StrategyKind returns the selected strategy kind, defaulting to sweep.
func (s *Scenario) StrategyKind() strategy.Kind {
	if s.Strategy.Kind == "" {
		return strategy.KindSweep
	}
	return strategy.Kind(s.Strategy.Kind)
}

// Build constructs and populates the grid. Explicit placements must land
// on empty in-bounds cells; randomized placements draw from rng and skip
// occupied cells and the robot's start cell, with a bounded retry budget.
func (s *Scenario) Build(rng *rand.Rand) (*grid.Grid, error) {
	g := grid.New(s.Width, s.Height)

	for _, p := range s.Dirt {
		if err := place(g, p, g.AddDirt); err != nil {
			return nil, fmt.Errorf("dirt: %w", err)
		}
	}
	for _, p := range s.Obstacles {
		if err := place(g, p, g.AddObstacle); err != nil {
			return nil, fmt.Errorf("obstacle: %w", err)
		}
	}

	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if err := placeRandom(g, rng, s.RandomDirt, g.AddDirt); err != nil {
		return nil, fmt.Errorf("random dirt: %w", err)
	}
	if err := placeRandom(g, rng, s.RandomObstacles, g.AddObstacle); err != nil {
		return nil, fmt.Errorf("random obstacles: %w", err)
	}
	return g, nil
}

// place writes one explicit placement. Placement is only permitted on
// empty cells, uniformly with the randomized path.
func place(g *grid.Grid, p Point, add func(x, y int)) error {
	if !g.InBounds(p.X, p.Y) {
		return fmt.Errorf("(%d,%d) is out of bounds", p.X, p.Y)
	}
	if !g.IsEmpty(p.X, p.Y) {
		return fmt.Errorf("(%d,%d) is already occupied", p.X, p.Y)
	}
	add(p.X, p.Y)
	return nil
}

func placeRandom(g *grid.Grid, rng *rand.Rand, count int, add func(x, y int)) error {
	for i := 0; i < count; i++ {
		placed := false
		for attempt := 0; attempt < maxPlaceAttempts; attempt++ {
			x, y := rng.IntN(g.Width()), rng.IntN(g.Height())
			if x == 0 && y == 0 {
				continue
			}
			if !g.IsEmpty(x, y) {
				continue
			}
			add(x, y)
			placed = true
			break
		}
		if !placed {
			return fmt.Errorf("no free cell found after %d attempts", maxPlaceAttempts)
		}
	}
	return nil
}
