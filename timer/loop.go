package timer

import (
	"context"
	"sync"
	"time"

	"github.com/dlshle/functional/logging"
)

type Loop struct {
	lock       sync.Mutex
	queue      queue
	wakeup     chan struct{}
	ctx        context.Context
	cancelFunc func()
	stopped    chan struct{}
	logger     logging.Logger
}

type LoopOption func(*Loop)

func WithLogger(logger logging.Logger) LoopOption {
	return func(l *Loop) {
		l.logger = logger
	}
}

// WithContext stops the loop when ctx is done.
func WithContext(ctx context.Context) LoopOption {
	return func(l *Loop) {
		l.ctx = ctx
	}
}

// NewLoop starts a loop goroutine. Call Stop to release it.
func NewLoop(opts ...LoopOption) *Loop {
	l := &Loop{
		wakeup:  make(chan struct{}, 1),
		ctx:     context.Background(),
		stopped: make(chan struct{}),
		logger:  logging.LibraryLogger("[timer]"),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.ctx, l.cancelFunc = context.WithCancel(l.ctx)
	go l.run()
	return l
}

var (
	defaultLoop     *Loop
	defaultLoopOnce sync.Once
)

// Default returns the shared loop, starting it on first use. It is never
// stopped.
func Default() *Loop {
	defaultLoopOnce.Do(func() {
		defaultLoop = NewLoop()
	})
	return defaultLoop
}

func (l *Loop) Now() time.Time {
	return time.Now()
}

func (l *Loop) Schedule(cb func(), delay time.Duration) Handle {
	if delay < 0 {
		delay = 0
	}
	l.lock.Lock()
	if l.ctx.Err() != nil {
		l.lock.Unlock()
		l.logger.Warn(l.ctx, "loop is stopped, callback dropped")
		t := &task{done: make(chan struct{}), index: -1, owner: l}
		close(t.done)
		return t
	}
	t := l.queue.push(l, cb, time.Now().Add(delay))
	isHead := t.index == 0
	l.lock.Unlock()
	l.logger.Debugf(l.ctx, "task %d scheduled in %s", t.id, delay)
	if isHead {
		l.wake()
	}
	return t
}

func (l *Loop) cancel(t *task) bool {
	l.lock.Lock()
	removed := l.queue.remove(t)
	l.lock.Unlock()
	if removed {
		l.logger.Debugf(l.ctx, "task %d cancelled", t.id)
	}
	return removed
}

// Pending reports how many callbacks are waiting.
func (l *Loop) Pending() int {
	l.lock.Lock()
	defer l.lock.Unlock()
	return l.queue.len()
}

// Stop ends the loop and cancels every pending callback. It waits for a
// running callback to return.
func (l *Loop) Stop() {
	l.cancelFunc()
	<-l.stopped
}

func (l *Loop) wake() {
	select {
	case l.wakeup <- struct{}{}:
	default:
	}
}

func (l *Loop) run() {
	defer close(l.stopped)
	for {
		t, wait := l.next()
		if t != nil {
			l.execute(t)
			continue
		}
		var timeout <-chan time.Time
		var tm *time.Timer
		if wait >= 0 {
			tm = time.NewTimer(wait)
			timeout = tm.C
		}
		select {
		case <-l.ctx.Done():
			if tm != nil {
				tm.Stop()
			}
			l.drain()
			return
		case <-l.wakeup:
		case <-timeout:
		}
		if tm != nil {
			tm.Stop()
		}
	}
}

// next pops the head task if it is due, otherwise it reports how long to
// wait for it (-1 when the queue is empty).
func (l *Loop) next() (*task, time.Duration) {
	l.lock.Lock()
	defer l.lock.Unlock()
	now := time.Now()
	if t := l.queue.popDue(now); t != nil {
		return t, 0
	}
	head := l.queue.head()
	if head == nil {
		return nil, -1
	}
	return nil, head.at.Sub(now)
}

func (l *Loop) execute(t *task) {
	defer close(t.done)
	defer func() {
		if recovered := recover(); recovered != nil {
			l.logger.Errorf(l.ctx, "task %d panicked: %v", t.id, recovered)
		}
	}()
	l.logger.Tracef(l.ctx, "task %d fired", t.id)
	t.cb()
}

func (l *Loop) drain() {
	l.lock.Lock()
	defer l.lock.Unlock()
	for head := l.queue.head(); head != nil; head = l.queue.head() {
		l.queue.remove(head)
	}
}
