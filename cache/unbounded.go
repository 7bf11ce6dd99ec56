package cache

import "sync"

// Unbounded is a map guarded by a RWMutex. It grows without limit.
type Unbounded[K comparable, V any] struct {
	items map[K]V
	mutex sync.RWMutex
}

func NewUnbounded[K comparable, V any]() *Unbounded[K, V] {
	return &Unbounded[K, V]{
		items: make(map[K]V),
	}
}

func (c *Unbounded[K, V]) Get(key K) (V, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	v, ok := c.items[key]
	return v, ok
}

func (c *Unbounded[K, V]) Set(key K, value V) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.items[key] = value
	return nil
}

func (c *Unbounded[K, V]) Delete(key K) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	delete(c.items, key)
	return nil
}

func (c *Unbounded[K, V]) Has(key K) bool {
	_, ok := c.Get(key)
	return ok
}

func (c *Unbounded[K, V]) Len() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.items)
}

func (c *Unbounded[K, V]) Clear() error {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.items = make(map[K]V)
	return nil
}

func (c *Unbounded[K, V]) Keys() []K {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	keys := make([]K, 0, len(c.items))
	for key := range c.items {
		keys = append(keys, key)
	}
	return keys
}
