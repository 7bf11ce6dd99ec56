package timer

import (
	"sync"
	"time"
)

// Virtual is a Scheduler whose clock only moves when Advance is called.
// Callbacks run on the goroutine calling Advance.
type Virtual struct {
	lock  sync.Mutex
	now   time.Time
	queue queue
}

func NewVirtual(start time.Time) *Virtual {
	return &Virtual{now: start}
}

func (v *Virtual) Now() time.Time {
	v.lock.Lock()
	defer v.lock.Unlock()
	return v.now
}

func (v *Virtual) Schedule(cb func(), delay time.Duration) Handle {
	if delay < 0 {
		delay = 0
	}
	v.lock.Lock()
	defer v.lock.Unlock()
	return v.queue.push(v, cb, v.now.Add(delay))
}

func (v *Virtual) cancel(t *task) bool {
	v.lock.Lock()
	defer v.lock.Unlock()
	return v.queue.remove(t)
}

// Advance moves the clock forward by d, running every callback that becomes
// due on the way, including ones scheduled by those callbacks. The clock
// reads each callback's deadline while it runs. It returns the number of
// callbacks run.
func (v *Virtual) Advance(d time.Duration) int {
	v.lock.Lock()
	target := v.now.Add(d)
	v.lock.Unlock()
	fired := 0
	for {
		v.lock.Lock()
		t := v.queue.popDue(target)
		if t == nil {
			v.now = target
			v.lock.Unlock()
			return fired
		}
		if t.at.After(v.now) {
			v.now = t.at
		}
		v.lock.Unlock()
		t.cb()
		close(t.done)
		fired++
	}
}

func (v *Virtual) Pending() int {
	v.lock.Lock()
	defer v.lock.Unlock()
	return v.queue.len()
}
