package decorator

import (
	"context"
	"strconv"
	"sync"

	"github.com/dlshle/functional/cache"
	"github.com/dlshle/functional/logging"
	"golang.org/x/sync/singleflight"
)

type memoizer[K comparable, R any] struct {
	fn     func(K) R
	table  cache.Cache[K, R]
	group  singleflight.Group
	logger logging.Logger

	mutex   sync.Mutex
	flights map[K]*flight
	seq     uint64
}

// flight names the singleflight call of one key while callers are inside it.
type flight struct {
	name string
	refs int
}

// Memoize caches fn's result per argument in a table that never evicts.
// Zero results are cached like any other. Keys that are not equal to
// themselves, such as a NaN float, can never be found again, so they are
// passed straight to fn and not stored.
func Memoize[K comparable, R any](fn func(K) R, opts ...Option) func(K) R {
	return MemoizeWith(fn, cache.NewUnbounded[K, R](), opts...)
}

// MemoizeWith caches results in table, typically a bounded cache.LRUCache or
// cache.LFUCache, or a store.BadgerCache. A result the table refuses to store
// is still returned.
func MemoizeWith[K comparable, R any](fn func(K) R, table cache.Cache[K, R], opts ...Option) func(K) R {
	m := &memoizer[K, R]{
		fn:      fn,
		table:   table,
		logger:  resolve(opts).Logger,
		flights: make(map[K]*flight),
	}
	return m.call
}

func (m *memoizer[K, R]) call(key K) R {
	if key != key {
		return m.fn(key)
	}
	if result, ok := m.table.Get(key); ok {
		return result
	}
	// concurrent misses on one key share a single call
	name := m.join(key)
	defer m.leave(key)
	shared, _, _ := m.group.Do(name, func() (interface{}, error) {
		if result, ok := m.table.Get(key); ok {
			return result, nil
		}
		result := m.fn(key)
		if err := m.table.Set(key, result); err != nil {
			m.logger.Warnf(context.Background(), "memoize %#v: %s", key, err.Error())
		}
		return result, nil
	})
	result, _ := shared.(R)
	return result
}

// join hands out the flight name for key. Names come from a counter, so two
// keys share a flight only when they are ==.
func (m *memoizer[K, R]) join(key K) string {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	f, ok := m.flights[key]
	if !ok {
		m.seq++
		f = &flight{name: strconv.FormatUint(m.seq, 10)}
		m.flights[key] = f
	}
	f.refs++
	return f.name
}

func (m *memoizer[K, R]) leave(key K) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	f, ok := m.flights[key]
	if !ok {
		return
	}
	if f.refs--; f.refs == 0 {
		delete(m.flights, key)
	}
}
