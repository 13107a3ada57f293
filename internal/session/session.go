// Package session defines work and break sessions and their outcomes.
package session

import "time"

// Kind identifies the type of a session. The string values double as the
// `type` column in the activity log.
type Kind string

const (
	Work       Kind = "work"
	ShortBreak Kind = "short_break"
	LongBreak  Kind = "long_break"
)

// partialPrefix marks records for sessions that were cancelled before
// running to completion.
const partialPrefix = "partial_"

// Label returns the display name for a session kind.
func (k Kind) Label() string {
	switch k {
	case Work:
		return "Work"
	case ShortBreak:
		return "Short break"
	case LongBreak:
		return "Long break"
	}

	return string(k)
}

// IsBreak reports whether the kind is a break session.
func (k Kind) IsBreak() bool {
	return k == ShortBreak || k == LongBreak
}

// Partial returns the log record type for a cancelled session of this kind.
func (k Kind) Partial() string {
	return partialPrefix + string(k)
}

// Descriptor describes one session before it is run. It is created by the
// scheduler and never mutated afterwards.
type Descriptor struct {
	Title          string
	Kind           Kind
	PlannedSeconds int
}

// PlannedMinutes returns the planned duration expressed in minutes.
func (d Descriptor) PlannedMinutes() float64 {
	return float64(d.PlannedSeconds) / 60
}

// Outcome is the result of running one timer to natural completion or
// cancellation. ElapsedSeconds is only meaningful for cancelled sessions:
// completed sessions are always accounted at their planned duration.
type Outcome struct {
	Descriptor     Descriptor
	Completed      bool
	ElapsedSeconds float64
}

// Record is one row of the activity log. Records are append-only and never
// mutated or deleted.
type Record struct {
	Timestamp time.Time
	Title     string
	Type      string
	Minutes   float64
}

// NewCompletedRecord builds the log record for a session that ran to
// completion. The planned duration is logged, not the measured wall time.
func NewCompletedRecord(d Descriptor, at time.Time) *Record {
	return &Record{
		Title:     d.Title,
		Minutes:   d.PlannedMinutes(),
		Timestamp: at,
		Type:      string(d.Kind),
	}
}

// NewPartialRecord builds the log record for a cancelled session. Minutes
// reflect the measured elapsed time, unrounded.
func NewPartialRecord(d Descriptor, elapsedSeconds float64, at time.Time) *Record {
	return &Record{
		Title:     d.Title,
		Minutes:   elapsedSeconds / 60,
		Timestamp: at,
		Type:      d.Kind.Partial(),
	}
}
