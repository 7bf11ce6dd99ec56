package cache

import (
	"sort"
	"testing"
)

func exercise(t *testing.T, cache Cache[string, int]) {
	t.Helper()
	cache.Set("key1", 1)
	cache.Set("key2", 2)
	if val, ok := cache.Get("key1"); !ok || val != 1 {
		t.Errorf("Expected 1, got %d", val)
	}
	cache.Set("key1", 10)
	if val, ok := cache.Get("key1"); !ok || val != 10 {
		t.Errorf("Expected 10, got %d", val)
	}
	cache.Delete("key1")
	if cache.Has("key1") {
		t.Error("Expected key1 to be deleted")
	}
	if cache.Len() != 1 {
		t.Errorf("Expected length 1, got %d", cache.Len())
	}
	if keys := cache.Keys(); len(keys) != 1 || keys[0] != "key2" {
		t.Errorf("Expected [key2], got %v", keys)
	}
	cache.Clear()
	if cache.Len() != 0 {
		t.Errorf("Expected length 0 after clear, got %d", cache.Len())
	}
	if _, ok := cache.Get("key2"); ok {
		t.Error("Expected key2 to be cleared")
	}
}

func TestUnbounded(t *testing.T) {
	cache := NewUnbounded[string, int]()
	exercise(t, cache)

	// Test that nothing is evicted
	for i := 0; i < 1000; i++ {
		cache.Set(string(rune('a'+i%26))+string(rune(i)), i)
	}
	if cache.Len() != 1000 {
		t.Errorf("Expected 1000 entries, got %d", cache.Len())
	}
}

func TestLRUCache(t *testing.T) {
	exercise(t, NewLRUCache[string, int](3))

	cache := NewLRUCache[string, int](3)
	cache.Set("key1", 1)
	cache.Set("key2", 2)
	cache.Set("key3", 3)
	cache.Get("key1")

	// Test eviction - key2 is the least recently used
	cache.Set("key4", 4)
	if _, ok := cache.Get("key2"); ok {
		t.Error("Expected key2 to be evicted")
	}
	keys := cache.Keys()
	if len(keys) != 3 || keys[0] != "key4" || keys[2] != "key3" {
		t.Errorf("Expected recency order [key4 key1 key3], got %v", keys)
	}
}

func TestLFUCache(t *testing.T) {
	exercise(t, NewLFUCache[string, int](3))

	cache := NewLFUCache[string, int](3)
	cache.Set("key1", 1)
	cache.Set("key2", 2)
	cache.Set("key3", 3)

	// Access key1 and key2 to increase their frequency
	cache.Get("key1")
	cache.Get("key2")
	cache.Get("key2")
	cache.Get("key1")

	// Test eviction - key3 should be evicted as it has the lowest frequency
	cache.Set("key4", 4)
	if cache.Has("key3") {
		t.Error("Expected key3 to be evicted")
	}

	// key4 has the lowest frequency now but a newcomer must not evict itself
	cache.Set("key5", 5)
	if !cache.Has("key5") || cache.Has("key4") {
		t.Errorf("Expected key4 to make room for key5, got %v", cache.Keys())
	}
}

func TestLFUCacheTieBreak(t *testing.T) {
	cache := NewLFUCache[int, int](2)
	cache.Set(1, 1)
	cache.Set(2, 2)
	cache.Get(2)
	cache.Get(1)
	// both used twice, 2 was touched longest ago
	cache.Set(3, 3)
	keys := cache.Keys()
	sort.Ints(keys)
	if len(keys) != 2 || keys[0] != 1 || keys[1] != 3 {
		t.Errorf("Expected [1 3], got %v", keys)
	}
}

func TestCapacityMustBePositive(t *testing.T) {
	for name, build := range map[string]func(){
		"lru": func() { NewLRUCache[int, int](0) },
		"lfu": func() { NewLFUCache[int, int](-1) },
	} {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("Expected a panic")
				}
			}()
			build()
		})
	}
}
