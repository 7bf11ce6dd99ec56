package collection

// Each calls it for every element of c in traversal order. The iterator's
// result, if any, is ignored.
func Each[K comparable, V any](c Collection[K, V], it Iterator[K, V]) {
	c.Each(it)
}

// Keys lists the keys of c in traversal order.
func Keys[K comparable, V any](c Collection[K, V]) []K {
	keys := make([]K, 0, c.Len())
	Each(c, func(_ V, key K, _ Collection[K, V]) {
		keys = append(keys, key)
	})
	return keys
}

// Values lists the elements of c in traversal order.
func Values[K comparable, V any](c Collection[K, V]) []V {
	values := make([]V, 0, c.Len())
	Each(c, func(value V, _ K, _ Collection[K, V]) {
		values = append(values, value)
	})
	return values
}
