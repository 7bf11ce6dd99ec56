package collection

import (
	"github.com/dlshle/functional/reflectz"
)

// Reduce folds c from left to right. When initial is omitted the
// accumulator starts at the zero value of A, which is 0 for numbers, not the
// first element.
func Reduce[K comparable, V, A any](c Collection[K, V], f func(acc A, value V) A, initial ...A) A {
	var acc A
	if len(initial) > 0 {
		acc = initial[0]
	}
	Each(c, func(value V, _ K, _ Collection[K, V]) {
		acc = f(acc, value)
	})
	return acc
}

// Contains reports whether some element equals target. Every element is
// visited even after a match.
func Contains[K, V comparable](c Collection[K, V], target V) bool {
	return Reduce(c, func(found bool, value V) bool {
		if found {
			return true
		}
		return value == target
	}, false)
}

// Every reports whether test holds for all elements. Without a test it is
// true for any collection, including an empty one.
func Every[K comparable, V any](c Collection[K, V], test ...Predicate[V]) bool {
	if len(test) == 0 {
		return true
	}
	return Reduce(c, func(all bool, value V) bool {
		if !all {
			return false
		}
		return test[0](value)
	}, true)
}

// Some reports whether test holds for at least one element. The default test
// is the truthiness of the element itself. An empty collection is false.
func Some[K comparable, V any](c Collection[K, V], test ...Predicate[V]) bool {
	if c.Len() == 0 {
		return false
	}
	var p Predicate[V] = func(value V) bool {
		return reflectz.Truthy(value)
	}
	if len(test) > 0 {
		p = test[0]
	}
	return !Every(c, func(value V) bool {
		return !p(value)
	})
}
