package main

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/gridsweep/gridsweep/internal/history"
)

func TestHistoryCmdEmpty(t *testing.T) {
	isolateHome(t)

	out, err := execute(t, newHistoryCmd(), "history")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if !strings.Contains(out, "No runs recorded") {
		t.Errorf("empty history output = %q", out)
	}
}

func TestHistoryCmdAfterRun(t *testing.T) {
	isolateHome(t)

	if _, err := execute(t, newRunCmd(), "run",
		"--width", "4", "--height", "4", "--dirt", "2", "--obstacles", "0",
		"--seed", "9", "--headless"); err != nil {
		t.Fatalf("run: %v", err)
	}

	out, err := execute(t, newHistoryCmd(), "history")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if !strings.Contains(out, "ad-hoc") || !strings.Contains(out, "sweep") {
		t.Errorf("history output missing the recorded run: %q", out)
	}
	if !strings.Contains(out, "4x4") {
		t.Errorf("history output missing grid dimensions: %q", out)
	}
}

func TestHistoryCmdJSON(t *testing.T) {
	isolateHome(t)

	if _, err := execute(t, newDemoCmd(), "demo", "--headless"); err != nil {
		t.Fatalf("demo: %v", err)
	}

	out, err := execute(t, newHistoryCmd(), "history", "--json")
	if err != nil {
		t.Fatalf("history --json: %v", err)
	}

	var runs []history.Run
	if err := json.Unmarshal([]byte(out), &runs); err != nil {
		t.Fatalf("invalid JSON output %q: %v", out, err)
	}
	if len(runs) != 1 {
		t.Fatalf("history has %d runs, want 1", len(runs))
	}
	if runs[0].Scenario != "demo" || runs[0].Cleaned != 5 {
		t.Errorf("recorded run = %+v", runs[0])
	}
}
