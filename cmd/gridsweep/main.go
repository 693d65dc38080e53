package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "gridsweep",
		Short: "gridsweep - grid-cleaning robot simulator",
		Long: `gridsweep simulates a cleaning robot on a bounded 2D grid of dirt
and obstacles, animating each step in the terminal.

Three strategies are available: a row-by-row sweep, a bounded random
walk, and an inward spiral. Completed runs are recorded so past passes
can be compared with 'gridsweep history'.`,
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("json", false, "Output summaries as JSON")
	rootCmd.PersistentFlags().String("log-level", "", "Log verbosity: info, debug, or trace")

	rootCmd.AddCommand(
		newVersionCmd(),
		newRunCmd(),
		newDemoCmd(),
		newHistoryCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]string{"version": version})
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "gridsweep version %s\n", version)
			}
		},
	}
}
