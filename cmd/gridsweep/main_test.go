package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

// newTestRootCmd creates a root command with persistent flags for testing
// subcommands in isolation.
func newTestRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use: "gridsweep",
	}
	rootCmd.PersistentFlags().Bool("json", false, "Output summaries as JSON")
	rootCmd.PersistentFlags().String("log-level", "", "Log verbosity")
	return rootCmd
}

// isolateHome points HOME at a temp directory so tests never touch the
// real ~/.gridsweep. MUST be called by any test that runs or records.
func isolateHome(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
}

// execute runs a subcommand under a test root and returns its output.
func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	root := newTestRootCmd()
	root.AddCommand(cmd)

	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, newVersionCmd(), "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.Contains(out, version) {
		t.Errorf("version output %q missing %q", out, version)
	}
}

func TestVersionCmdJSON(t *testing.T) {
	out, err := execute(t, newVersionCmd(), "version", "--json")
	if err != nil {
		t.Fatalf("version --json: %v", err)
	}

	var payload map[string]string
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("invalid JSON output %q: %v", out, err)
	}
	if payload["version"] != version {
		t.Errorf("version = %q, want %q", payload["version"], version)
	}
}
