package cache

import (
	"container/list"
	"sync"
)

// LRUCache evicts the least recently read or written entry once more than
// capacity entries are stored.
type LRUCache[K comparable, V any] struct {
	capacity int
	items    map[K]*list.Element
	order    *list.List
	mutex    sync.Mutex
}

type entry[K comparable, V any] struct {
	key   K
	value V
}

// NewLRUCache panics when capacity is not positive.
func NewLRUCache[K comparable, V any](capacity int) *LRUCache[K, V] {
	if capacity <= 0 {
		panic("lru cache capacity must be positive")
	}
	return &LRUCache[K, V]{
		capacity: capacity,
		items:    make(map[K]*list.Element),
		order:    list.New(),
	}
}

func (c *LRUCache[K, V]) Get(key K) (V, bool) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	element, exists := c.items[key]
	if !exists {
		var zero V
		return zero, false
	}
	c.order.MoveToFront(element)
	return element.Value.(*entry[K, V]).value, true
}

func (c *LRUCache[K, V]) Set(key K, value V) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	if element, exists := c.items[key]; exists {
		element.Value.(*entry[K, V]).value = value
		c.order.MoveToFront(element)
		return nil
	}
	c.items[key] = c.order.PushFront(&entry[K, V]{key: key, value: value})
	if c.order.Len() > c.capacity {
		c.evict()
	}
	return nil
}

func (c *LRUCache[K, V]) Delete(key K) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	if element, exists := c.items[key]; exists {
		c.order.Remove(element)
		delete(c.items, key)
	}
	return nil
}

func (c *LRUCache[K, V]) Has(key K) bool {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	_, exists := c.items[key]
	return exists
}

func (c *LRUCache[K, V]) Len() int {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.order.Len()
}

func (c *LRUCache[K, V]) Clear() error {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.items = make(map[K]*list.Element)
	c.order.Init()
	return nil
}

// Keys lists keys from most to least recently used.
func (c *LRUCache[K, V]) Keys() []K {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	keys := make([]K, 0, len(c.items))
	for element := c.order.Front(); element != nil; element = element.Next() {
		keys = append(keys, element.Value.(*entry[K, V]).key)
	}
	return keys
}

// evict removes the least recently used item
func (c *LRUCache[K, V]) evict() {
	element := c.order.Back()
	if element != nil {
		delete(c.items, element.Value.(*entry[K, V]).key)
		c.order.Remove(element)
	}
}
