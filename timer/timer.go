// Package timer provides the scheduling capability used by the function
// decorators.
//
// Loop is the host timer facility: a single goroutine that runs callbacks
// one at a time, in non-decreasing order of their deadline. Virtual is a
// manually advanced clock with the same contract for tests.
package timer

import (
	"time"
)

// Handle refers to one scheduled callback.
type Handle interface {
	// Cancel prevents the callback from running. It reports false when the
	// callback already ran, is running, or was cancelled before.
	Cancel() bool
	// Done is closed once the callback has returned or was cancelled.
	Done() <-chan struct{}
}

type Scheduler interface {
	Schedule(cb func(), delay time.Duration) Handle
	Now() time.Time
}
