package cache

// Cache is a memo table keyed by K. Implementations are safe for
// concurrent use.
type Cache[K comparable, V any] interface {
	// Get retrieves a value from the cache by key
	Get(key K) (V, bool)

	// Set adds or updates a value, evicting according to the cache policy
	Set(key K, value V) error

	// Delete removes a value from the cache by key
	Delete(key K) error

	// Has checks if a key exists in the cache without touching its usage
	Has(key K) bool

	// Len returns the number of items in the cache
	Len() int

	// Clear removes all items from the cache
	Clear() error

	// Keys returns all keys in the cache
	Keys() []K
}
