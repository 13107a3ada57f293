package timer

import (
	"errors"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/pomocli/pomo/config"
	"github.com/pomocli/pomo/internal/session"
)

// fakeRunner completes a fixed number of sessions, then cancels the next
// one with the configured elapsed time.
type fakeRunner struct {
	descs         []session.Descriptor
	completeN     int
	cancelElapsed float64
}

func (r *fakeRunner) Run(d session.Descriptor) session.Outcome {
	r.descs = append(r.descs, d)

	if len(r.descs) <= r.completeN {
		return session.Outcome{Descriptor: d, Completed: true}
	}

	return session.Outcome{Descriptor: d, ElapsedSeconds: r.cancelElapsed}
}

// memStore records appended log records in memory.
type memStore struct {
	records   []session.Record
	title     string
	appendErr error
}

func (m *memStore) Append(r *session.Record) error {
	if m.appendErr != nil {
		return m.appendErr
	}

	m.records = append(m.records, *r)

	return nil
}

func (m *memStore) LastTitle() (string, error) {
	return m.title, nil
}

func (m *memStore) SaveTitle(title string) error {
	m.title = title
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		Stdout:                  io.Discard,
		Stderr:                  io.Discard,
		WorkMinutes:             25,
		ShortBreakMinutes:       5,
		LongBreakMinutes:        15,
		SessionsBeforeLongBreak: 4,
		MinSecondsToLog:         60,
	}
}

func kinds(descs []session.Descriptor) []session.Kind {
	out := make([]session.Kind, len(descs))
	for i, d := range descs {
		out[i] = d.Kind
	}

	return out
}

func recordTypes(records []session.Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Type
	}

	return out
}

func TestSchedulerBreakSequence(t *testing.T) {
	runner := &fakeRunner{completeN: 8}
	st := &memStore{}

	err := NewScheduler(testConfig(), st, runner, "thesis").Run()
	if !errors.Is(err, ErrCancelled) {
		t.Fatalf("Run() = %v, want ErrCancelled", err)
	}

	// breaks after completed works 1,2,3 are short; after the 4th, long
	wantKinds := []session.Kind{
		session.Work, session.ShortBreak,
		session.Work, session.ShortBreak,
		session.Work, session.ShortBreak,
		session.Work, session.LongBreak,
		session.Work, // cancelled
	}

	if diff := cmp.Diff(wantKinds, kinds(runner.descs)); diff != "" {
		t.Errorf("unexpected session sequence (-want +got):\n%s", diff)
	}

	wantTypes := []string{
		"work", "short_break",
		"work", "short_break",
		"work", "short_break",
		"work", "long_break",
	}

	if diff := cmp.Diff(wantTypes, recordTypes(st.records)); diff != "" {
		t.Errorf("unexpected log records (-want +got):\n%s", diff)
	}
}

func TestSchedulerLogsPlannedMinutesForCompletedSessions(t *testing.T) {
	runner := &fakeRunner{completeN: 2}
	st := &memStore{}

	err := NewScheduler(testConfig(), st, runner, "thesis").Run()
	if !errors.Is(err, ErrCancelled) {
		t.Fatalf("Run() = %v, want ErrCancelled", err)
	}

	if len(st.records) != 2 {
		t.Fatalf("got %d records, want 2", len(st.records))
	}

	if st.records[0].Minutes != 25 {
		t.Errorf("work record minutes = %f, want 25", st.records[0].Minutes)
	}

	if st.records[1].Minutes != 5 {
		t.Errorf("break record minutes = %f, want 5", st.records[1].Minutes)
	}

	for _, r := range st.records {
		if r.Title != "thesis" {
			t.Errorf("record title = %q, want %q", r.Title, "thesis")
		}
	}
}

func TestSchedulerPartialThreshold(t *testing.T) {
	t.Run("below threshold writes no record", func(t *testing.T) {
		runner := &fakeRunner{cancelElapsed: 45}
		st := &memStore{}

		err := NewScheduler(testConfig(), st, runner, "thesis").Run()
		if !errors.Is(err, ErrCancelled) {
			t.Fatalf("Run() = %v, want ErrCancelled", err)
		}

		if len(st.records) != 0 {
			t.Errorf("got %d records, want 0", len(st.records))
		}
	})

	t.Run("at or above threshold writes one partial record", func(t *testing.T) {
		runner := &fakeRunner{cancelElapsed: 90}
		st := &memStore{}

		err := NewScheduler(testConfig(), st, runner, "thesis").Run()
		if !errors.Is(err, ErrCancelled) {
			t.Fatalf("Run() = %v, want ErrCancelled", err)
		}

		if len(st.records) != 1 {
			t.Fatalf("got %d records, want 1", len(st.records))
		}

		r := st.records[0]

		if r.Type != "partial_work" {
			t.Errorf("record type = %q, want partial_work", r.Type)
		}

		if r.Minutes != 1.5 {
			t.Errorf("record minutes = %f, want 1.5", r.Minutes)
		}
	})

	t.Run("zero elapsed never writes a record", func(t *testing.T) {
		cfg := testConfig()
		cfg.MinSecondsToLog = 0

		runner := &fakeRunner{cancelElapsed: 0}
		st := &memStore{}

		err := NewScheduler(cfg, st, runner, "thesis").Run()
		if !errors.Is(err, ErrCancelled) {
			t.Fatalf("Run() = %v, want ErrCancelled", err)
		}

		if len(st.records) != 0 {
			t.Errorf("got %d records, want 0", len(st.records))
		}
	})
}

func TestSchedulerSkipsZeroLengthBreaks(t *testing.T) {
	cfg := testConfig()
	cfg.ShortBreakMinutes = 0

	runner := &fakeRunner{completeN: 2}
	st := &memStore{}

	err := NewScheduler(cfg, st, runner, "thesis").Run()
	if !errors.Is(err, ErrCancelled) {
		t.Fatalf("Run() = %v, want ErrCancelled", err)
	}

	// short breaks are skipped without invoking the engine: every run
	// before the cancelled one is a work session
	wantKinds := []session.Kind{session.Work, session.Work, session.Work}

	if diff := cmp.Diff(wantKinds, kinds(runner.descs)); diff != "" {
		t.Errorf("unexpected session sequence (-want +got):\n%s", diff)
	}

	wantTypes := []string{"work", "work"}

	if diff := cmp.Diff(wantTypes, recordTypes(st.records)); diff != "" {
		t.Errorf("unexpected log records (-want +got):\n%s", diff)
	}
}

func TestSchedulerLongBreakRecurs(t *testing.T) {
	runner := &fakeRunner{completeN: 16}
	st := &memStore{}

	err := NewScheduler(testConfig(), st, runner, "thesis").Run()
	if !errors.Is(err, ErrCancelled) {
		t.Fatalf("Run() = %v, want ErrCancelled", err)
	}

	var longBreaks int

	for _, d := range runner.descs {
		if d.Kind == session.LongBreak {
			longBreaks++
		}
	}

	// 8 completed work sessions -> long breaks after the 4th and 8th
	if longBreaks != 2 {
		t.Errorf("got %d long breaks, want 2", longBreaks)
	}
}

func TestSchedulerSwallowsStoreErrors(t *testing.T) {
	runner := &fakeRunner{completeN: 4}
	st := &memStore{appendErr: errors.New("disk full")}

	err := NewScheduler(testConfig(), st, runner, "thesis").Run()
	if !errors.Is(err, ErrCancelled) {
		t.Fatalf("Run() = %v, want ErrCancelled; store errors must not abort the run", err)
	}

	if len(runner.descs) != 5 {
		t.Errorf("runner invoked %d times, want 5", len(runner.descs))
	}
}
