package timer

import (
	"container/heap"
	"time"
)

type canceller interface {
	cancel(t *task) bool
}

type task struct {
	id    uint64
	cb    func()
	at    time.Time
	index int
	done  chan struct{}
	owner canceller
}

func (t *task) Cancel() bool {
	return t.owner.cancel(t)
}

func (t *task) Done() <-chan struct{} {
	return t.done
}

// taskHeap orders tasks by deadline, then by scheduling order.
type taskHeap []*task

func (h taskHeap) Len() int { return len(h) }
func (h taskHeap) Less(i, j int) bool {
	if h[i].at.Equal(h[j].at) {
		return h[i].id < h[j].id
	}
	return h[i].at.Before(h[j].at)
}
func (h taskHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *taskHeap) Push(x interface{}) {
	t := x.(*task)
	t.index = len(*h)
	*h = append(*h, t)
}

func (h *taskHeap) Pop() interface{} {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*h = old[0 : n-1]
	return t
}

// queue is not safe for concurrent use; owners guard it with their own lock.
type queue struct {
	tasks  taskHeap
	nextID uint64
}

func (q *queue) push(owner canceller, cb func(), at time.Time) *task {
	t := &task{
		id:    q.nextID,
		cb:    cb,
		at:    at,
		done:  make(chan struct{}),
		owner: owner,
	}
	q.nextID++
	heap.Push(&q.tasks, t)
	return t
}

func (q *queue) remove(t *task) bool {
	if t.index < 0 || t.index >= len(q.tasks) || q.tasks[t.index] != t {
		return false
	}
	heap.Remove(&q.tasks, t.index)
	close(t.done)
	return true
}

func (q *queue) head() *task {
	if len(q.tasks) == 0 {
		return nil
	}
	return q.tasks[0]
}

// popDue removes and returns the head task when it is due at now.
func (q *queue) popDue(now time.Time) *task {
	head := q.head()
	if head == nil || head.at.After(now) {
		return nil
	}
	return heap.Pop(&q.tasks).(*task)
}

func (q *queue) len() int {
	return len(q.tasks)
}
