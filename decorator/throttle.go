package decorator

import (
	"context"
	"sync"
	"time"

	"github.com/dlshle/functional/logging"
	"github.com/dlshle/functional/timer"
)

type throttler[R any] struct {
	fn        func() R
	wait      time.Duration
	scheduler timer.Scheduler
	logger    logging.Logger

	mutex   sync.Mutex
	called  bool
	last    time.Time
	waiting bool
	result  R
}

// Throttle lets fn run at most once per wait window. A call after a quiet
// window runs fn right away. A call inside the window schedules a single
// trailing run at the end of it, unless one is already pending. Every call
// returns the latest result fn produced, which is stale for calls that only
// scheduled work. A scheduled trailing run cannot be cancelled.
func Throttle[R any](fn func() R, wait time.Duration, opts ...Option) func() R {
	cfg := resolve(opts)
	t := &throttler[R]{
		fn:        fn,
		wait:      wait,
		scheduler: cfg.Scheduler,
		logger:    cfg.Logger,
	}
	return t.call
}

func (t *throttler[R]) call() R {
	t.mutex.Lock()
	now := t.scheduler.Now()
	elapsed := now.Sub(t.last)
	if !t.called || elapsed > t.wait {
		t.called = true
		t.last = now
		t.mutex.Unlock()
		return t.invoke()
	}
	if !t.waiting {
		t.waiting = true
		t.logger.Tracef(context.Background(), "trailing call in %s", t.wait-elapsed)
		t.scheduler.Schedule(t.trailing, t.wait-elapsed)
	}
	result := t.result
	t.mutex.Unlock()
	return result
}

func (t *throttler[R]) trailing() {
	t.mutex.Lock()
	t.waiting = false
	t.last = t.scheduler.Now()
	t.mutex.Unlock()
	t.invoke()
}

func (t *throttler[R]) invoke() R {
	result := t.fn()
	t.mutex.Lock()
	t.result = result
	t.mutex.Unlock()
	return result
}
