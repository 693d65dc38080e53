package main

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/spf13/cobra"

	"github.com/gridsweep/gridsweep/internal/config"
	"github.com/gridsweep/gridsweep/internal/grid"
	"github.com/gridsweep/gridsweep/internal/history"
	"github.com/gridsweep/gridsweep/internal/logging"
	"github.com/gridsweep/gridsweep/internal/render"
	"github.com/gridsweep/gridsweep/internal/robot"
	"github.com/gridsweep/gridsweep/internal/scenario"
	"github.com/gridsweep/gridsweep/internal/strategy"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a cleaning pass",
		Long: `Run one cleaning pass, either from a YAML scenario file or from an
ad-hoc grid described by flags. Random placements avoid occupied cells
and the robot's start corner.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			scenarioPath, _ := cmd.Flags().GetString("scenario")

			var sc *scenario.Scenario
			if scenarioPath != "" {
				loaded, err := scenario.Load(scenarioPath)
				if err != nil {
					return err
				}
				sc = loaded
			} else {
				width, _ := cmd.Flags().GetInt("width")
				height, _ := cmd.Flags().GetInt("height")
				dirt, _ := cmd.Flags().GetInt("dirt")
				obstacles, _ := cmd.Flags().GetInt("obstacles")
				kind, _ := cmd.Flags().GetString("strategy")
				maxMoves, _ := cmd.Flags().GetInt("max-moves")

				sc = &scenario.Scenario{
					Name:            "ad-hoc",
					Width:           width,
					Height:          height,
					RandomDirt:      dirt,
					RandomObstacles: obstacles,
					Strategy:        scenario.StrategySpec{Kind: kind, MaxMoves: maxMoves},
				}
				if err := sc.Validate(); err != nil {
					return err
				}
			}

			return runScenario(cmd, sc)
		},
	}

	cmd.Flags().String("scenario", "", "Path to a YAML scenario file")
	cmd.Flags().Int("width", 12, "Grid width (ignored with --scenario)")
	cmd.Flags().Int("height", 6, "Grid height (ignored with --scenario)")
	cmd.Flags().Int("dirt", 5, "Number of randomly placed dirt cells")
	cmd.Flags().Int("obstacles", 3, "Number of randomly placed obstacles")
	cmd.Flags().String("strategy", "sweep", "Strategy: sweep, random, or spiral")
	cmd.Flags().Int("max-moves", 0, "Move budget for the random strategy (0 = default)")
	cmd.Flags().Uint64("seed", 0, "Random seed for placement and walks (0 = nondeterministic)")
	cmd.Flags().Bool("headless", false, "Skip frame rendering")

	return cmd
}

// runSummary is the machine-readable outcome of one pass.
type runSummary struct {
	RunID      string `json:"run_id,omitempty"`
	Scenario   string `json:"scenario"`
	Strategy   string `json:"strategy"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Moves      int    `json:"moves"`
	Cleaned    int    `json:"cleaned"`
	DirtLeft   int    `json:"dirt_left"`
	DurationMS int64  `json:"duration_ms"`
}

// runScenario builds the grid, robot, and strategy, runs the pass, records
// it in history, and prints a summary.
func runScenario(cmd *cobra.Command, sc *scenario.Scenario) error {
	jsonOut, _ := cmd.Flags().GetBool("json")
	headless, _ := cmd.Flags().GetBool("headless")
	seed, _ := cmd.Flags().GetUint64("seed")

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		cfg.Logging.Level = lvl
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := logging.NewLogger(cfg.Logging.Level, cmd.ErrOrStderr())

	historyDir, err := cfg.HistoryDir()
	if err != nil {
		return err
	}
	trace := logging.NewTraceLogger(historyDir, cfg.Logging.Level)
	defer trace.Close()

	var rng *rand.Rand
	if seed != 0 {
		rng = rand.New(rand.NewPCG(seed, seed))
	}

	g, err := sc.Build(rng)
	if err != nil {
		return fmt.Errorf("building grid: %w", err)
	}

	strat, err := strategy.New(sc.StrategyKind(), strategy.Options{
		MaxMoves: sc.Strategy.MaxMoves,
		Rand:     rng,
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	var sink grid.Sink
	if !headless && !cfg.Render.Disabled {
		delay := time.Duration(cfg.Render.DelayMS) * time.Millisecond
		sink = render.NewTerminal(cmd.OutOrStdout(), delay)
	}

	bot := robot.New(g, sink, logger, trace)
	bot.SetStrategy(strat)

	started := time.Now()
	if err := bot.StartCleaning(); err != nil {
		// Reported, not fatal: the pass simply did not happen.
		fmt.Fprintf(cmd.ErrOrStderr(), "cannot clean: %v\n", err)
		return nil
	}
	duration := time.Since(started)

	summary := runSummary{
		Scenario:   sc.Name,
		Strategy:   strat.Name(),
		Width:      g.Width(),
		Height:     g.Height(),
		Moves:      bot.Moves(),
		Cleaned:    bot.CellsCleaned(),
		DirtLeft:   g.Count(grid.Dirt),
		DurationMS: duration.Milliseconds(),
	}

	if cfg.History.Enabled {
		if id, err := recordRun(historyDir, summary, started, duration); err != nil {
			logger.Warn("recording run failed", "error", err)
		} else {
			summary.RunID = id
		}
	}

	return printSummary(cmd, summary, jsonOut)
}

func recordRun(dir string, s runSummary, started time.Time, duration time.Duration) (string, error) {
	store, err := history.Open(dir)
	if err != nil {
		return "", err
	}
	defer store.Close()

	run := &history.Run{
		Scenario:  s.Scenario,
		Strategy:  s.Strategy,
		Width:     s.Width,
		Height:    s.Height,
		Moves:     s.Moves,
		Cleaned:   s.Cleaned,
		DirtLeft:  s.DirtLeft,
		StartedAt: started.UTC(),
		Duration:  duration,
	}
	if err := store.Record(context.Background(), run); err != nil {
		return "", err
	}
	return run.ID, nil
}

func printSummary(cmd *cobra.Command, s runSummary, jsonOut bool) error {
	out := cmd.OutOrStdout()
	if jsonOut {
		return json.NewEncoder(out).Encode(s)
	}

	fmt.Fprintf(out, "Pass complete: %s on %dx%d grid (%s)\n", s.Strategy, s.Width, s.Height, s.Scenario)
	fmt.Fprintf(out, "  moves: %d  cleaned: %d  dirt left: %d  took: %dms\n",
		s.Moves, s.Cleaned, s.DirtLeft, s.DurationMS)
	if s.DirtLeft > 0 {
		fmt.Fprintf(out, "  %d dirt cells were not reached\n", s.DirtLeft)
	}
	return nil
}
