// Package notify delivers best-effort end-of-session alerts to the host
// environment. Failures are never surfaced beyond a fallback text line.
package notify

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/gen2brain/beeep"
)

// Notifier delivers a (title, message) alert to the user's environment.
// Implementations must not block the run or propagate failures.
type Notifier interface {
	Notify(title, message string)
}

// Discard is a Notifier that does nothing, for runs with notifications
// disabled.
type Discard struct{}

func (Discard) Notify(_, _ string) {}

// Desktop sends desktop notifications via the host notification service and
// optionally plays a sound. When the notification service is unavailable,
// the alert is printed to Out instead.
type Desktop struct {
	Out   io.Writer
	Sound string
}

// NewDesktop returns a desktop notifier. sound is an optional path to an
// mp3, ogg, flac, or wav file played when a session ends.
func NewDesktop(out io.Writer, sound string) *Desktop {
	return &Desktop{
		Out:   out,
		Sound: sound,
	}
}

// Notify displays the alert. Errors are logged and swallowed.
func (d *Desktop) Notify(title, message string) {
	err := beeep.Notify(title, message, "")
	if err != nil {
		slog.Warn("desktop notification failed", slog.Any("error", err))
		fmt.Fprintf(d.Out, "[%s] %s\n", title, message)
	}

	if d.Sound == "" {
		return
	}

	err = playSound(d.Sound)
	if err != nil {
		slog.Warn(
			"unable to play notification sound",
			slog.String("sound", d.Sound),
			slog.Any("error", err),
		)
	}
}
