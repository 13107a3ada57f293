package timer

import (
	"log/slog"
	"os/exec"
	"time"

	"github.com/kballard/go-shellquote"
	"github.com/pterm/pterm"

	"github.com/pomocli/pomo/config"
	"github.com/pomocli/pomo/internal/session"
	"github.com/pomocli/pomo/store"
)

// sessionRunner runs one session to completion or cancellation.
type sessionRunner interface {
	Run(desc session.Descriptor) session.Outcome
}

// Scheduler sequences an unbounded cycle of work and break sessions,
// counting completed work sessions to decide between short and long
// breaks, and turns outcomes into activity log records.
type Scheduler struct {
	cfg    *config.Config
	store  store.Store
	runner sessionRunner
	title  string

	// completedWork increases monotonically and is never reset; long
	// breaks recur whenever it is a multiple of SessionsBeforeLongBreak.
	completedWork int
}

// NewScheduler returns a scheduler that drives the given runner. The title
// is fixed for the entire run.
func NewScheduler(
	cfg *config.Config,
	st store.Store,
	runner sessionRunner,
	title string,
) *Scheduler {
	return &Scheduler{
		cfg:    cfg,
		store:  st,
		runner: runner,
		title:  title,
	}
}

// descriptor builds the immutable descriptor for the next session of the
// given kind.
func (s *Scheduler) descriptor(kind session.Kind) session.Descriptor {
	var minutes int

	switch kind {
	case session.Work:
		minutes = s.cfg.WorkMinutes
	case session.ShortBreak:
		minutes = s.cfg.ShortBreakMinutes
	case session.LongBreak:
		minutes = s.cfg.LongBreakMinutes
	}

	return session.Descriptor{
		Title:          s.title,
		Kind:           kind,
		PlannedSeconds: minutes * 60,
	}
}

// nextBreak selects the break that follows the work session that just
// completed.
func (s *Scheduler) nextBreak() session.Kind {
	if s.completedWork%s.cfg.SessionsBeforeLongBreak == 0 {
		return session.LongBreak
	}

	return session.ShortBreak
}

// logRecord appends a record to the activity log. Persistence failures are
// reported and swallowed: they never abort a timer.
func (s *Scheduler) logRecord(r *session.Record) {
	err := s.store.Append(r)
	if err != nil {
		slog.Warn("unable to record session", slog.Any("error", err))
		pterm.Warning.Printfln("unable to record session: %v", err)

		return
	}

	slog.Info(
		"session recorded",
		slog.String("type", r.Type),
		slog.Float64("minutes", r.Minutes),
	)
}

// runSessionCmd executes the configured post-session command, best-effort.
func (s *Scheduler) runSessionCmd() {
	if s.cfg.SessionCmd == "" {
		return
	}

	cmdSlice, err := shellquote.Split(s.cfg.SessionCmd)
	if err != nil {
		pterm.Warning.Printfln("unable to parse session_cmd option: %v", err)
		return
	}

	if len(cmdSlice) == 0 {
		return
	}

	cmd := exec.Command(cmdSlice[0], cmdSlice[1:]...)

	err = cmd.Run()
	if err != nil {
		slog.Warn("session_cmd failed", slog.Any("error", err))
	}
}

// settle handles a completed session: one log record with the planned
// duration, then the post-session hook.
func (s *Scheduler) settle(out session.Outcome) {
	s.logRecord(session.NewCompletedRecord(out.Descriptor, time.Now()))
	s.runSessionCmd()
}

// finish handles a cancelled session. It logs a partial record when the
// measured elapsed time meets the configured threshold, then stops the
// cycle: the scheduler never resumes after a cancellation.
func (s *Scheduler) finish(out session.Outcome) error {
	threshold := float64(s.cfg.MinSecondsToLog)

	if out.ElapsedSeconds > 0 && out.ElapsedSeconds >= threshold {
		s.logRecord(
			session.NewPartialRecord(
				out.Descriptor,
				out.ElapsedSeconds,
				time.Now(),
			),
		)
	}

	return ErrCancelled
}

// Run drives the work/break cycle until a session is cancelled. It never
// returns nil: the only exit is ErrCancelled or a runner failure
// propagating through an outcome.
func (s *Scheduler) Run() error {
	for {
		out := s.runner.Run(s.descriptor(session.Work))
		if !out.Completed {
			return s.finish(out)
		}

		s.completedWork++
		s.settle(out)

		kind := s.nextBreak()

		desc := s.descriptor(kind)
		if desc.PlannedSeconds == 0 {
			// a zero-length break is skipped entirely: no countdown, no
			// record
			continue
		}

		out = s.runner.Run(desc)
		if !out.Completed {
			return s.finish(out)
		}

		s.settle(out)
	}
}
