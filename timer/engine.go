// Package timer operates the countdown engine and the work/break cycle
// scheduler.
package timer

import (
	"fmt"
	"io"
	"time"

	"github.com/pomocli/pomo/config"
	"github.com/pomocli/pomo/internal/session"
	"github.com/pomocli/pomo/internal/ui"
	"github.com/pomocli/pomo/notify"
)

// defaultTick is the cadence of the render/poll loop.
const defaultTick = 100 * time.Millisecond

// notifyTitle is the title used for end-of-session alerts.
const notifyTitle = "Pomo"

// Engine drives one countdown at a time. It owns the timer state for the
// duration of a run: elapsed time, pause bookkeeping, and rendering.
type Engine struct {
	notifier notify.Notifier
	commands <-chan Command
	out      io.Writer
	tick     time.Duration
}

// NewEngine returns an engine that renders to cfg.Stdout and reads control
// commands from the given channel.
func NewEngine(
	cfg *config.Config,
	notifier notify.Notifier,
	commands <-chan Command,
) *Engine {
	return &Engine{
		notifier: notifier,
		commands: commands,
		out:      cfg.Stdout,
		tick:     defaultTick,
	}
}

// complete renders the final 100% frame and fires the end-of-session alert.
func (e *Engine) complete(desc session.Descriptor) session.Outcome {
	renderFrame(e.out, desc, float64(desc.PlannedSeconds))
	fmt.Fprintf(e.out, "\n%s %s\n", ui.Green("✔"), desc.Kind.Label()+" completed!")

	e.notifier.Notify(notifyTitle, desc.Kind.Label()+" complete!")

	return session.Outcome{
		Descriptor: desc,
		Completed:  true,
	}
}

// Run executes one countdown to completion or cancellation and reports the
// outcome. The loop wakes once per tick, advances elapsed time only while
// unpaused, and polls for commands without ever blocking longer than a
// tick.
func (e *Engine) Run(desc session.Descriptor) session.Outcome {
	if desc.PlannedSeconds <= 0 {
		return e.complete(desc)
	}

	if cancelled := e.drainCommands(); cancelled {
		return session.Outcome{Descriptor: desc}
	}

	printHeader(e.out, desc)

	var (
		start       = time.Now()
		pausedTotal time.Duration
		pausedAt    time.Time
		paused      bool
	)

	// elapsed excludes all paused time, including an in-progress pause
	// window, so pausing never consumes any of the planned duration
	elapsed := func() float64 {
		if paused {
			return (pausedAt.Sub(start) - pausedTotal).Seconds()
		}

		return (time.Since(start) - pausedTotal).Seconds()
	}

	ticker := time.NewTicker(e.tick)
	defer ticker.Stop()

	renderFrame(e.out, desc, 0)

	for {
		select {
		case cmd := <-e.commands:
			switch cmd {
			case TogglePause:
				if paused {
					pausedTotal += time.Since(pausedAt)
					paused = false
				} else {
					pausedAt = time.Now()
					paused = true
					renderPausedFrame(e.out, desc, elapsed())
				}
			case Cancel:
				fmt.Fprintln(e.out)

				return session.Outcome{
					Descriptor:     desc,
					ElapsedSeconds: elapsed(),
				}
			}
		case <-ticker.C:
			if paused {
				renderPausedFrame(e.out, desc, elapsed())
				continue
			}

			secs := elapsed()
			if secs >= float64(desc.PlannedSeconds) {
				return e.complete(desc)
			}

			renderFrame(e.out, desc, secs)
		}
	}
}

// drainCommands discards pause toggles queued between sessions so a stale
// key press never pauses a timer it was not aimed at. A pending Cancel is
// still honored and reported to the caller.
func (e *Engine) drainCommands() (cancelled bool) {
	for {
		select {
		case cmd := <-e.commands:
			if cmd == Cancel {
				cancelled = true
			}
		default:
			return cancelled
		}
	}
}
