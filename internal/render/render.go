// Package render provides display sinks for grid frames. The terminal
// sink animates a run for a human; the capture sink records frames for
// tests and the simulation harness.
package render

import (
	"fmt"
	"io"
	"time"
)

// Legend explains the cell symbols printed under every terminal frame.
const Legend = "R robot   . empty   D dirt   # obstacle   C cleaned"

// Terminal writes each frame to an io.Writer followed by the legend, with
// an optional pacing delay between frames. The delay is purely cosmetic;
// correctness never depends on it.
type Terminal struct {
	w     io.Writer
	delay time.Duration
}

// NewTerminal creates a terminal sink writing to w. A zero delay renders
// as fast as the writer allows.
func NewTerminal(w io.Writer, delay time.Duration) *Terminal {
	return &Terminal{w: w, delay: delay}
}

// Frame implements grid.Sink.
func (t *Terminal) Frame(frame string) {
	fmt.Fprintf(t.w, "%s%s\n\n", frame, Legend)
	if t.delay > 0 {
		time.Sleep(t.delay)
	}
}

// Capture records every frame it receives, in order.
type Capture struct {
	Frames []string
}

// Frame implements grid.Sink.
func (c *Capture) Frame(frame string) {
	c.Frames = append(c.Frames, frame)
}

// Last returns the most recent frame, or "" if none were rendered.
func (c *Capture) Last() string {
	if len(c.Frames) == 0 {
		return ""
	}
	return c.Frames[len(c.Frames)-1]
}
