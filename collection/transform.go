package collection

import (
	"github.com/dlshle/functional/errors"
	"github.com/dlshle/functional/reflectz"
)

func Map[T, R any](array []T, transformElem func(T) R) []R {
	m := make([]R, 0, len(array))
	Each(Of(array), func(elem T, _ int, _ Collection[int, T]) {
		m = append(m, transformElem(elem))
	})
	return m
}

func Filter[K comparable, V any](c Collection[K, V], keep Predicate[V]) []V {
	m := make([]V, 0, c.Len())
	Each(c, func(elem V, _ K, _ Collection[K, V]) {
		if keep(elem) {
			m = append(m, elem)
		}
	})
	return m
}

func Reject[K comparable, V any](c Collection[K, V], drop Predicate[V]) []V {
	return Filter(c, func(elem V) bool {
		return !drop(elem)
	})
}

// Uniq keeps the first occurrence of every distinct element.
func Uniq[T comparable](array []T) []T {
	seen := make(map[T]struct{}, len(array))
	m := make([]T, 0, len(array))
	Each(Of(array), func(elem T, _ int, _ Collection[int, T]) {
		if _, ok := seen[elem]; ok {
			return
		}
		seen[elem] = struct{}{}
		m = append(m, elem)
	})
	return m
}

// IndexOf returns the index of the first element equal to target, or -1.
func IndexOf[T comparable](array []T, target T) int {
	index := -1
	Each(Of(array), func(elem T, i int, _ Collection[int, T]) {
		if index == -1 && elem == target {
			index = i
		}
	})
	return index
}

// Pluck extracts the named property from every element. Elements may be
// structs (exported field name) or string-keyed maps; a missing map key
// yields the zero V. The first element that can not be read aborts with a
// contract violation.
func Pluck[T, V any](array []T, propertyName string) ([]V, error) {
	var firstErr error
	values := Map(array, func(elem T) V {
		var zero V
		if firstErr != nil {
			return zero
		}
		v, _, err := reflectz.PropertyAs[V](elem, propertyName)
		if err != nil {
			firstErr = err
			return zero
		}
		return v
	})
	if firstErr != nil {
		return nil, firstErr
	}
	return values, nil
}

// Invoke calls methodOrName on every element of list and collects the
// results. methodOrName is either a function, called with the element as its
// first argument followed by args, or the name of a method on the elements,
// called with args. Any other value is rejected before iterating. Failing
// elements leave a nil result and are reported together.
func Invoke[T any](list []T, methodOrName any, args ...any) ([]any, error) {
	var call func(elem T) (any, error)
	switch m := methodOrName.(type) {
	case string:
		call = func(elem T) (any, error) {
			return reflectz.CallMethod(elem, m, args...)
		}
	default:
		if !reflectz.IsFunc(methodOrName) {
			return nil, errors.ContractViolation("invoke needs a function or a method name, got %T", methodOrName)
		}
		call = func(elem T) (any, error) {
			return reflectz.CallFunc(m, elem, args...)
		}
	}
	failures := errors.NewMultiError()
	results := make([]any, 0, len(list))
	Each(Of(list), func(elem T, i int, _ Collection[int, T]) {
		res, err := call(elem)
		if err != nil {
			failures.Add(errors.Errorf("element %d: %w", i, err))
		}
		results = append(results, res)
	})
	return results, errors.ErrorOrNil(failures)
}

// InvokeFunc is the typed form of Invoke for functions.
func InvokeFunc[T, R any](list []T, method func(elem T, args ...any) R, args ...any) []R {
	return Map(list, func(elem T) R {
		return method(elem, args...)
	})
}
