// Package cache provides the memo tables used by decorator.Memoize: an
// unbounded map that never evicts (the default) and opt-in bounded LRU and
// LFU tables.
//
// Example usage:
//
//	// never evicts
//	table := cache.NewUnbounded[string, int]()
//
//	// keeps the 100 most recently used results
//	lru := cache.NewLRUCache[string, int](100)
//
//	// keeps the 100 most frequently used results, ties evict the least
//	// recently used
//	lfu := cache.NewLFUCache[string, int](100)
//	lfu.Set("key1", 42)
//	if val, ok := lfu.Get("key1"); ok {
//		fmt.Println("Value:", val)
//	}
package cache
