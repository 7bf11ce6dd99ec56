package slices

import (
	"cmp"
	"math/rand"
	"reflect"

	"github.com/dlshle/functional/collection"
	"github.com/dlshle/functional/reflectz"
	"github.com/dlshle/functional/utils"
)

// Swap exchanges array[i] and array[j] in place and returns array.
func Swap[T any](array []T, i, j int) []T {
	array[i], array[j] = array[j], array[i]
	return array
}

// Shuffle returns a shuffled copy of array using the shared random source.
func Shuffle[T any](array []T) []T {
	return ShuffleWith(utils.Rando, array)
}

// ShuffleWith returns a shuffled copy of array. Every position is swapped
// with a partner drawn from the whole slice, not from the unvisited tail,
// so permutations are not equally likely.
func ShuffleWith[T any](r *rand.Rand, array []T) []T {
	shuffled := make([]T, len(array))
	copy(shuffled, array)
	n := len(shuffled)
	for i := 0; i < n; i++ {
		Swap(shuffled, i, r.Intn(n))
	}
	return shuffled
}

// SortBy sorts array in place by key using selection sort and returns it.
// Among equal keys the earliest one in the unsorted suffix is selected
// first.
func SortBy[T any, K cmp.Ordered](array []T, key func(T) K) []T {
	for i := range array {
		Swap(array, i, i+minIndex(array[i:], func(a, b T) bool {
			return key(a) < key(b)
		}))
	}
	return array
}

// SortByProperty sorts array in place by the named property of each element
// (see reflectz.Property). Elements whose property is absent sort before
// every present value. A scan that treats a missing key as an unset minimum
// would leave them at the end instead; filter absent elements out first when
// that order is needed. Keys that can not be ordered against each other abort
// the sort with a contract violation, possibly leaving array partially
// sorted.
func SortByProperty[T any](array []T, propertyName string) ([]T, error) {
	keys := make([]sortKey, len(array))
	var err error
	for i, elem := range array {
		if keys[i], err = propertyKey(elem, propertyName); err != nil {
			return array, err
		}
	}
	for i := range array {
		suffix := keys[i:]
		m := minIndex(suffix, func(a, b sortKey) bool {
			if err != nil {
				return false
			}
			less, cmpErr := a.less(b)
			if cmpErr != nil {
				err = cmpErr
			}
			return less
		})
		if err != nil {
			return array, err
		}
		Swap(keys, i, i+m)
		Swap(array, i, i+m)
	}
	return array, nil
}

// minIndex scans s with strict less-than, so the first of equal minima wins.
func minIndex[T any](s []T, less func(a, b T) bool) int {
	index := 0
	collection.Each(collection.Of(s), func(elem T, i int, _ collection.Collection[int, T]) {
		if less(elem, s[index]) {
			index = i
		}
	})
	return index
}

type sortKey struct {
	present bool
	value   reflect.Value
}

func propertyKey(elem any, propertyName string) (sortKey, error) {
	value, present, err := reflectz.Property(elem, propertyName)
	if err != nil {
		return sortKey{}, err
	}
	if present && value.Kind() == reflect.Interface && value.IsNil() {
		present = false
	}
	return sortKey{present: present, value: value}, nil
}

func (k sortKey) less(other sortKey) (bool, error) {
	if !k.present || !other.present {
		return !k.present && other.present, nil
	}
	c, err := reflectz.Compare(k.value, other.value)
	return c < 0, err
}
