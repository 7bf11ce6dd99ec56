package cache

import (
	"container/heap"
	"sync"
)

// LFUCache evicts the least frequently used entry once more than capacity
// entries are stored. Among equally used entries the one touched longest ago
// goes first.
type LFUCache[K comparable, V any] struct {
	capacity int
	items    map[K]*lfuItem[K, V]
	freqHeap *lfuHeap[K, V]
	clock    uint64
	mutex    sync.Mutex
}

type lfuItem[K comparable, V any] struct {
	key       K
	value     V
	freq      int
	touched   uint64
	heapIndex int
}

// lfuHeap implements heap.Interface and holds lfuItems
type lfuHeap[K comparable, V any] []*lfuItem[K, V]

func (h lfuHeap[K, V]) Len() int { return len(h) }
func (h lfuHeap[K, V]) Less(i, j int) bool {
	if h[i].freq == h[j].freq {
		return h[i].touched < h[j].touched
	}
	return h[i].freq < h[j].freq
}
func (h lfuHeap[K, V]) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].heapIndex = i
	h[j].heapIndex = j
}

func (h *lfuHeap[K, V]) Push(x interface{}) {
	item := x.(*lfuItem[K, V])
	item.heapIndex = len(*h)
	*h = append(*h, item)
}

func (h *lfuHeap[K, V]) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil      // avoid memory leak
	item.heapIndex = -1 // for safety
	*h = old[0 : n-1]
	return item
}

// NewLFUCache panics when capacity is not positive.
func NewLFUCache[K comparable, V any](capacity int) *LFUCache[K, V] {
	if capacity <= 0 {
		panic("lfu cache capacity must be positive")
	}
	return &LFUCache[K, V]{
		capacity: capacity,
		items:    make(map[K]*lfuItem[K, V]),
		freqHeap: &lfuHeap[K, V]{},
	}
}

func (c *LFUCache[K, V]) touch(item *lfuItem[K, V]) {
	c.clock++
	item.freq++
	item.touched = c.clock
	heap.Fix(c.freqHeap, item.heapIndex)
}

func (c *LFUCache[K, V]) Get(key K) (V, bool) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	item, exists := c.items[key]
	if !exists {
		var zero V
		return zero, false
	}
	c.touch(item)
	return item.value, true
}

func (c *LFUCache[K, V]) Set(key K, value V) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	if item, exists := c.items[key]; exists {
		item.value = value
		c.touch(item)
		return nil
	}
	// make room first so the new entry is never its own victim
	if len(c.items) >= c.capacity {
		c.evict()
	}
	c.clock++
	item := &lfuItem[K, V]{
		key:     key,
		value:   value,
		freq:    1,
		touched: c.clock,
	}
	heap.Push(c.freqHeap, item)
	c.items[key] = item
	return nil
}

func (c *LFUCache[K, V]) Delete(key K) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	if item, exists := c.items[key]; exists {
		heap.Remove(c.freqHeap, item.heapIndex)
		delete(c.items, key)
	}
	return nil
}

func (c *LFUCache[K, V]) Has(key K) bool {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	_, exists := c.items[key]
	return exists
}

func (c *LFUCache[K, V]) Len() int {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return len(c.items)
}

func (c *LFUCache[K, V]) Clear() error {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.items = make(map[K]*lfuItem[K, V])
	c.freqHeap = &lfuHeap[K, V]{}
	return nil
}

func (c *LFUCache[K, V]) Keys() []K {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	keys := make([]K, 0, len(c.items))
	for key := range c.items {
		keys = append(keys, key)
	}
	return keys
}

// evict removes the least frequently used item
func (c *LFUCache[K, V]) evict() {
	if c.freqHeap.Len() > 0 {
		item := heap.Pop(c.freqHeap).(*lfuItem[K, V])
		delete(c.items, item.key)
	}
}
