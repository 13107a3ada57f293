package session

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestKindLabel(t *testing.T) {
	cases := []struct {
		kind Kind
		want string
	}{
		{Work, "Work"},
		{ShortBreak, "Short break"},
		{LongBreak, "Long break"},
	}

	for _, tc := range cases {
		if got := tc.kind.Label(); got != tc.want {
			t.Errorf("%q.Label() = %q, want %q", tc.kind, got, tc.want)
		}
	}
}

func TestKindIsBreak(t *testing.T) {
	if Work.IsBreak() {
		t.Error("Work.IsBreak() = true, want false")
	}

	if !ShortBreak.IsBreak() || !LongBreak.IsBreak() {
		t.Error("break kinds must report IsBreak() = true")
	}
}

func TestKindPartial(t *testing.T) {
	cases := []struct {
		kind Kind
		want string
	}{
		{Work, "partial_work"},
		{ShortBreak, "partial_short_break"},
		{LongBreak, "partial_long_break"},
	}

	for _, tc := range cases {
		if got := tc.kind.Partial(); got != tc.want {
			t.Errorf("%q.Partial() = %q, want %q", tc.kind, got, tc.want)
		}
	}
}

func TestNewCompletedRecordLogsPlannedMinutes(t *testing.T) {
	at := time.Date(2024, time.March, 10, 9, 30, 0, 0, time.UTC)

	d := Descriptor{Title: "thesis", Kind: Work, PlannedSeconds: 1500}

	want := &Record{
		Title:     "thesis",
		Minutes:   25,
		Timestamp: at,
		Type:      "work",
	}

	if diff := cmp.Diff(want, NewCompletedRecord(d, at)); diff != "" {
		t.Errorf("unexpected record (-want +got):\n%s", diff)
	}
}

func TestNewPartialRecordLogsElapsedMinutes(t *testing.T) {
	at := time.Date(2024, time.March, 10, 9, 30, 0, 0, time.UTC)

	d := Descriptor{Title: "thesis", Kind: Work, PlannedSeconds: 1500}

	want := &Record{
		Title:     "thesis",
		Minutes:   1.5,
		Timestamp: at,
		Type:      "partial_work",
	}

	if diff := cmp.Diff(want, NewPartialRecord(d, 90, at)); diff != "" {
		t.Errorf("unexpected record (-want +got):\n%s", diff)
	}
}
