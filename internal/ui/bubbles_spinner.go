package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
)

// SpinnerFrames defines the custom animation frames (◐ ◓ ◑ ◒) shared by every
// loading indicator.
var SpinnerFrames = spinner.Spinner{
	Frames: []string{"◐", "◓", "◑", "◒"},
	FPS:    time.Second / 10, // 100ms per frame
}

// SpinnerFrame returns the glyph for the given animation frame counter.
// Negative counters are treated as zero.
func SpinnerFrame(frame int) string {
	if frame < 0 {
		frame = 0
	}
	return SpinnerFrames.Frames[frame%len(SpinnerFrames.Frames)]
}
