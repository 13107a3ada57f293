package timer

import (
	"os"
	"os/signal"
	"strings"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"atomicgo.dev/keyboard"
	"atomicgo.dev/keyboard/keys"
)

// Command is a control event delivered to the engine's render loop.
type Command int

const (
	// TogglePause flips the paused state of the active timer.
	TogglePause Command = iota
	// Cancel aborts the active timer and ends the whole run.
	Cancel
)

// Input translates raw key presses and OS signals into engine commands.
// The buffered command channel is the only state shared between the
// listener goroutine and the render loop; sends never block so the
// countdown is never stalled by input delivery.
type Input struct {
	C         chan Command
	done      chan struct{}
	signals   chan os.Signal
	stopped   atomic.Bool
	closeOnce sync.Once
}

// ListenKeys puts the terminal in raw mode and starts listening for key
// presses. 'p' toggles pause, Ctrl+C or Esc cancels. SIGINT/SIGTERM map to
// Cancel as well so non-interactive termination follows the same path.
func ListenKeys() *Input {
	in := &Input{
		C:       make(chan Command, 8),
		done:    make(chan struct{}),
		signals: make(chan os.Signal, 1),
	}

	go func() {
		defer close(in.done)

		_ = keyboard.Listen(func(key keys.Key) (bool, error) {
			if in.stopped.Load() {
				return true, nil
			}

			switch key.Code {
			case keys.CtrlC, keys.Escape:
				in.send(Cancel)
			case keys.RuneKey:
				if strings.EqualFold(key.String(), "p") {
					in.send(TogglePause)
				}
			}

			return false, nil
		})
	}()

	signal.Notify(in.signals, os.Interrupt, syscall.SIGTERM)

	go func() {
		for range in.signals {
			in.send(Cancel)
		}
	}()

	return in
}

// send delivers a command without ever blocking. A full buffer means the
// engine is behind by several ticks already and dropping is harmless.
func (in *Input) send(c Command) {
	select {
	case in.C <- c:
	default:
	}
}

// Close stops the key listener and restores the terminal state. It is
// idempotent, so a second interrupt arriving during cleanup is a no-op.
func (in *Input) Close() {
	in.closeOnce.Do(func() {
		in.stopped.Store(true)
		signal.Stop(in.signals)

		select {
		case <-in.done:
			return
		default:
		}

		// wake the listener so it can observe the stop flag and restore
		// the terminal
		go func() {
			_ = keyboard.SimulateKeyPress(keys.Escape)
		}()

		select {
		case <-in.done:
		case <-time.After(200 * time.Millisecond):
		}
	})
}
