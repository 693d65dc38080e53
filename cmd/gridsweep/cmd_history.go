package main

import (
	"context"
	"encoding/json"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/gridsweep/gridsweep/internal/config"
	"github.com/gridsweep/gridsweep/internal/history"
)

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded cleaning runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")
			limit, _ := cmd.Flags().GetInt("limit")

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			dir, err := cfg.HistoryDir()
			if err != nil {
				return err
			}

			store, err := history.Open(dir)
			if err != nil {
				return err
			}
			defer store.Close()

			runs, err := store.List(context.Background(), limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonOut {
				return json.NewEncoder(out).Encode(runs)
			}

			if len(runs) == 0 {
				fmt.Fprintln(out, "No runs recorded yet.")
				return nil
			}

			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "STARTED\tSCENARIO\tSTRATEGY\tGRID\tMOVES\tCLEANED\tDIRT LEFT")
			for _, r := range runs {
				fmt.Fprintf(w, "%s\t%s\t%s\t%dx%d\t%d\t%d\t%d\n",
					r.StartedAt.Local().Format(time.DateTime),
					r.Scenario, r.Strategy, r.Width, r.Height,
					r.Moves, r.Cleaned, r.DirtLeft)
			}
			return w.Flush()
		},
	}

	cmd.Flags().Int("limit", 20, "Maximum number of runs to show (0 = all)")
	return cmd
}
