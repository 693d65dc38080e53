package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunCmdAdHocGrid(t *testing.T) {
	isolateHome(t)

	out, err := execute(t, newRunCmd(), "run",
		"--width", "6", "--height", "4", "--dirt", "4", "--obstacles", "2",
		"--strategy", "sweep", "--seed", "11", "--headless", "--json")
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	var summary runSummary
	if err := json.Unmarshal([]byte(out), &summary); err != nil {
		t.Fatalf("invalid JSON summary %q: %v", out, err)
	}
	if summary.Width != 6 || summary.Height != 4 {
		t.Errorf("summary dims = %dx%d, want 6x4", summary.Width, summary.Height)
	}
	if summary.Strategy != "sweep" {
		t.Errorf("strategy = %q, want sweep", summary.Strategy)
	}
	// Sweep reaches every cell, so all four dirt cells get cleaned.
	if summary.Cleaned != 4 || summary.DirtLeft != 0 {
		t.Errorf("cleaned = %d, dirt left = %d, want 4 and 0", summary.Cleaned, summary.DirtLeft)
	}
	if summary.RunID == "" {
		t.Error("summary missing run ID; history recording failed")
	}
}

func TestRunCmdScenarioFile(t *testing.T) {
	isolateHome(t)

	path := filepath.Join(t.TempDir(), "hall.yaml")
	content := `name: hall
width: 8
height: 3
dirt:
  - {x: 4, y: 1}
strategy:
  kind: spiral
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, newRunCmd(), "run", "--scenario", path, "--headless", "--json")
	if err != nil {
		t.Fatalf("run --scenario: %v", err)
	}

	var summary runSummary
	if err := json.Unmarshal([]byte(out), &summary); err != nil {
		t.Fatalf("invalid JSON summary %q: %v", out, err)
	}
	if summary.Scenario != "hall" || summary.Strategy != "spiral" {
		t.Errorf("summary = %+v, want hall/spiral", summary)
	}
	if summary.DirtLeft != 0 {
		t.Errorf("spiral left %d dirt on an obstacle-free grid", summary.DirtLeft)
	}
}

func TestRunCmdInvalidDimensions(t *testing.T) {
	isolateHome(t)

	_, err := execute(t, newRunCmd(), "run", "--width", "0", "--headless")
	if err == nil || !strings.Contains(err.Error(), "positive") {
		t.Errorf("run with zero width = %v, want dimension error", err)
	}
}

func TestRunCmdUnknownStrategy(t *testing.T) {
	isolateHome(t)

	_, err := execute(t, newRunCmd(), "run", "--strategy", "mop", "--headless")
	if err == nil || !strings.Contains(err.Error(), "unknown strategy") {
		t.Errorf("run with unknown strategy = %v, want strategy error", err)
	}
}

func TestRunCmdRendersFrames(t *testing.T) {
	isolateHome(t)
	t.Setenv("GRIDSWEEP_RENDER_DELAY_MS", "0")

	out, err := execute(t, newRunCmd(), "run",
		"--width", "3", "--height", "2", "--dirt", "1", "--obstacles", "0",
		"--seed", "3")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out, "R") || !strings.Contains(out, "robot") {
		t.Errorf("rendered output missing frames or legend: %q", out)
	}
}

func TestDemoCmd(t *testing.T) {
	isolateHome(t)

	out, err := execute(t, newDemoCmd(), "demo", "--headless", "--json")
	if err != nil {
		t.Fatalf("demo: %v", err)
	}

	var summary runSummary
	if err := json.Unmarshal([]byte(out), &summary); err != nil {
		t.Fatalf("invalid JSON summary %q: %v", out, err)
	}
	if summary.Scenario != "demo" || summary.Width != 12 || summary.Height != 6 {
		t.Errorf("summary = %+v, want 12x6 demo", summary)
	}
	// Default sweep cleans all five demo dirt cells.
	if summary.Cleaned != 5 || summary.DirtLeft != 0 {
		t.Errorf("cleaned = %d, dirt left = %d, want 5 and 0", summary.Cleaned, summary.DirtLeft)
	}
}

func TestDemoCmdRejectsUnknownStrategy(t *testing.T) {
	isolateHome(t)

	_, err := execute(t, newDemoCmd(), "demo", "--strategy", "zigzag", "--headless")
	if err == nil || !strings.Contains(err.Error(), "unknown strategy") {
		t.Errorf("demo with unknown strategy = %v, want strategy error", err)
	}
}
