// Package collection implements iteration over ordered sequences and
// string-keyed mappings, and the operations built on that single traversal
// primitive.
//
// A Collection is created with Of for slices or FromMap for maps. Slices are
// visited in index order; maps are visited in ascending key order.
package collection

import (
	"sort"

	"github.com/samber/lo"
)

// Iterator is invoked once per element with the element, its key (index for
// sequences) and the collection being traversed.
type Iterator[K comparable, V any] func(value V, key K, c Collection[K, V])

// Predicate tests a single element.
type Predicate[V any] func(V) bool

type Collection[K comparable, V any] interface {
	Each(it Iterator[K, V])
	Len() int
}

type sequence[T any] []T

// Of wraps s as an ordered collection keyed by index. s is not copied.
func Of[T any](s []T) Collection[int, T] {
	return sequence[T](s)
}

func (s sequence[T]) Each(it Iterator[int, T]) {
	for i := 0; i < len(s); i++ {
		it(s[i], i, s)
	}
}

func (s sequence[T]) Len() int {
	return len(s)
}

type mapping[V any] map[string]V

// FromMap wraps m as a keyed collection. m is not copied.
func FromMap[V any](m map[string]V) Collection[string, V] {
	return mapping[V](m)
}

func (m mapping[V]) Each(it Iterator[string, V]) {
	keys := lo.Keys(m)
	sort.Strings(keys)
	for _, k := range keys {
		it(m[k], k, m)
	}
}

func (m mapping[V]) Len() int {
	return len(m)
}
