package decorator

import (
	"context"
	"time"

	"github.com/dlshle/functional/timer"
)

// Delay runs fn once after wait. The returned handle cancels it.
func Delay(fn func(), wait time.Duration, opts ...Option) timer.Handle {
	cfg := resolve(opts)
	cfg.Logger.Tracef(context.Background(), "delaying call by %s", wait)
	return cfg.Scheduler.Schedule(fn, wait)
}

// DelayCall runs fn(args...) once after wait. args is copied, so later
// changes by the caller are not seen by fn.
func DelayCall[A any](fn func(...A), wait time.Duration, args []A, opts ...Option) timer.Handle {
	captured := append([]A(nil), args...)
	return Delay(func() {
		fn(captured...)
	}, wait, opts...)
}
