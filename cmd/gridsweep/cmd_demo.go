package main

import (
	"github.com/spf13/cobra"

	"github.com/gridsweep/gridsweep/internal/scenario"
)

func newDemoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the fixed demonstration layout",
		Long: `Run the built-in 12x6 demonstration grid: five dirt cells and three
obstacles at fixed positions. The strategy can be swapped with
--strategy; the layout never changes.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			sc := scenario.Demo()

			if kind, _ := cmd.Flags().GetString("strategy"); kind != "" {
				sc.Strategy.Kind = kind
			}
			if maxMoves, _ := cmd.Flags().GetInt("max-moves"); maxMoves > 0 {
				sc.Strategy.MaxMoves = maxMoves
			}
			if err := sc.Validate(); err != nil {
				return err
			}

			return runScenario(cmd, sc)
		},
	}

	cmd.Flags().String("strategy", "", "Strategy: sweep, random, or spiral (default sweep)")
	cmd.Flags().Int("max-moves", 0, "Move budget for the random strategy (0 = default)")
	cmd.Flags().Uint64("seed", 0, "Random seed for walks (0 = nondeterministic)")
	cmd.Flags().Bool("headless", false, "Skip frame rendering")

	return cmd
}
