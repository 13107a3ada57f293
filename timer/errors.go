package timer

import "github.com/pomocli/pomo/internal/apperr"

// ErrCancelled reports that the user stopped the run. It is a control
// signal rather than a failure: callers should log any partial session and
// exit cleanly.
var ErrCancelled = &apperr.Error{
	Message: "session cancelled",
}
