package timer

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pomocli/pomo/internal/session"
	"github.com/pomocli/pomo/internal/timeutil"
	"github.com/pomocli/pomo/internal/ui"
)

// barWidth is the fixed width of the progress bar in cells.
const barWidth = 30

const (
	barFilledCell = "█"
	barEmptyCell  = "░"
)

var (
	workStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#B0DB43"))
	breakStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#12EAEA"))
	pausedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFB86C"))
)

// percent returns the completed percentage, floored and clamped to [0,100].
// A zero-length session is always 100% complete.
func percent(elapsedSeconds float64, plannedSeconds int) int {
	if plannedSeconds <= 0 {
		return 100
	}

	p := int(100 * elapsedSeconds / float64(plannedSeconds))
	if p < 0 {
		p = 0
	}

	if p > 100 {
		p = 100
	}

	return p
}

// filledCells returns the number of filled bar cells, floored and clamped
// to [0,width] even under floating-point overshoot.
func filledCells(elapsedSeconds float64, plannedSeconds, width int) int {
	if plannedSeconds <= 0 {
		return width
	}

	n := int(float64(width) * elapsedSeconds / float64(plannedSeconds))
	if n < 0 {
		n = 0
	}

	if n > width {
		n = width
	}

	return n
}

// progressBar renders the fixed-width progress bar for the given elapsed
// time.
func progressBar(elapsedSeconds float64, plannedSeconds, width int) string {
	filled := filledCells(elapsedSeconds, plannedSeconds, width)

	return strings.Repeat(barFilledCell, filled) +
		strings.Repeat(barEmptyCell, width-filled)
}

// kindStyle returns the bar style for a session kind.
func kindStyle(kind session.Kind) lipgloss.Style {
	if kind.IsBreak() {
		return breakStyle
	}

	return workStyle
}

// printHeader writes the one-line session banner shown above the countdown.
func printHeader(w io.Writer, desc session.Descriptor) {
	label := desc.Kind.Label()
	if desc.Kind == session.Work && desc.Title != "" {
		label += ": " + desc.Title
	}

	fmt.Fprintf(
		w,
		"⏱  %s (%s mins). Press %s to pause/resume, %s to quit.\n",
		ui.Highlight(label),
		ui.Yellow(desc.PlannedSeconds/60),
		ui.Green("p"),
		ui.Green("Ctrl+C"),
	)
}

// renderFrame rewrites the countdown line in place with the current
// progress.
func renderFrame(w io.Writer, desc session.Descriptor, elapsedSeconds float64) {
	remaining := float64(desc.PlannedSeconds) - elapsedSeconds
	if remaining < 0 {
		remaining = 0
	}

	mins, secs := timeutil.SecsToMinsAndSecs(remaining)

	bar := kindStyle(desc.Kind).
		Render(progressBar(elapsedSeconds, desc.PlannedSeconds, barWidth))

	fmt.Fprintf(
		w,
		"\r\x1b[K⏳ %s %3d%% %02d:%02d",
		bar,
		percent(elapsedSeconds, desc.PlannedSeconds),
		mins,
		secs,
	)
}

// renderPausedFrame replaces the countdown with a paused marker.
func renderPausedFrame(w io.Writer, desc session.Descriptor, elapsedSeconds float64) {
	bar := kindStyle(desc.Kind).
		Render(progressBar(elapsedSeconds, desc.PlannedSeconds, barWidth))

	fmt.Fprintf(
		w,
		"\r\x1b[K⏸  %s %3d%% %s",
		bar,
		percent(elapsedSeconds, desc.PlannedSeconds),
		pausedStyle.Render("[Paused]"),
	)
}
