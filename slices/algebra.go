package slices

import (
	"reflect"

	"github.com/dlshle/functional/collection"
	"github.com/dlshle/functional/errors"
	"github.com/dlshle/functional/reflectz"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Zip groups the i-th element of every array into the i-th tuple. The
// result is as long as the longest array; shorter arrays contribute
// mo.None in the positions they lack.
func Zip[T any](arrays ...[]T) [][]mo.Option[T] {
	longest := lo.Max(lo.Map(arrays, func(array []T, _ int) int {
		return len(array)
	}))
	zipped := make([][]mo.Option[T], longest)
	for i := range zipped {
		tuple := make([]mo.Option[T], len(arrays))
		for j, array := range arrays {
			if i < len(array) {
				tuple[j] = mo.Some(array[i])
			} else {
				tuple[j] = mo.None[T]()
			}
		}
		zipped[i] = tuple
	}
	return zipped
}

// Flatten collects the leaves of a nested slice depth first, left to right.
// Slices and arrays are descended into; maps and every other value are
// leaves.
func Flatten(nestedArray any) ([]any, error) {
	v := reflect.ValueOf(nestedArray)
	if !reflectz.IsSequence(v) {
		return nil, errors.ContractViolation("flatten needs a slice or an array, got %T", nestedArray)
	}
	flat := make([]any, 0, v.Len())
	var enter func(v reflect.Value)
	enter = func(v reflect.Value) {
		for i := 0; i < v.Len(); i++ {
			elem := v.Index(i)
			if reflectz.IsSequence(elem) {
				for elem.Kind() == reflect.Interface {
					elem = elem.Elem()
				}
				enter(elem)
				continue
			}
			flat = append(flat, elem.Interface())
		}
	}
	enter(v)
	return flat, nil
}

// Intersection returns the distinct values of the first array that every
// other array contains, in the order they first appear.
func Intersection[T comparable](arrays ...[]T) []T {
	if len(arrays) == 0 {
		return []T{}
	}
	others := lo.Map(arrays[1:], func(array []T, _ int) map[T]struct{} {
		return toSet(array)
	})
	passed := make(map[T]struct{})
	failed := make(map[T]struct{})
	intersection := make([]T, 0)
	collection.Each(collection.Of(arrays[0]), func(elem T, _ int, _ collection.Collection[int, T]) {
		if _, ok := passed[elem]; ok {
			return
		}
		if _, ok := failed[elem]; ok {
			return
		}
		if inAll(others, elem) {
			passed[elem] = struct{}{}
			intersection = append(intersection, elem)
		} else {
			failed[elem] = struct{}{}
		}
	})
	return intersection
}

// Difference returns the elements of array found in none of others, keeping
// their order and duplicates.
func Difference[T comparable](array []T, others ...[]T) []T {
	excluded := toSet(lo.Flatten(others))
	return collection.Reject(collection.Of(array), func(elem T) bool {
		_, ok := excluded[elem]
		return ok
	})
}

func toSet[T comparable](array []T) map[T]struct{} {
	set := make(map[T]struct{}, len(array))
	for _, elem := range array {
		set[elem] = struct{}{}
	}
	return set
}

func inAll[T comparable](sets []map[T]struct{}, elem T) bool {
	for _, set := range sets {
		if _, ok := set[elem]; !ok {
			return false
		}
	}
	return true
}
