package collection

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestCollectionProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	smallInts := gen.SliceOf(gen.IntRange(-8, 8))

	properties.Property("uniq keeps each value once in first-occurrence order", prop.ForAll(
		func(a []int) bool {
			u := Uniq(a)
			seen := map[int]bool{}
			for _, v := range u {
				if seen[v] {
					return false
				}
				seen[v] = true
			}
			// walking a and keeping unseen values must rebuild u
			expected := make([]int, 0, len(u))
			kept := map[int]bool{}
			for _, v := range a {
				if !kept[v] {
					kept[v] = true
					expected = append(expected, v)
				}
			}
			if len(expected) != len(u) {
				return false
			}
			for i := range u {
				if u[i] != expected[i] {
					return false
				}
			}
			return true
		},
		smallInts,
	))

	properties.Property("filter and reject partition the input", prop.ForAll(
		func(a []int, m int) bool {
			p := func(n int) bool { return n%m == 0 }
			kept, dropped := Filter(Of(a), p), Reject(Of(a), p)
			if len(kept)+len(dropped) != len(a) {
				return false
			}
			counts := map[int]int{}
			for _, v := range a {
				counts[v]++
			}
			for _, v := range kept {
				if !p(v) {
					return false
				}
				counts[v]--
			}
			for _, v := range dropped {
				if p(v) {
					return false
				}
				counts[v]--
			}
			for _, c := range counts {
				if c != 0 {
					return false
				}
			}
			return true
		},
		smallInts,
		gen.IntRange(1, 4),
	))

	properties.Property("every is the dual of some over the negated predicate", prop.ForAll(
		func(a []int, m int) bool {
			if len(a) == 0 {
				return true
			}
			p := func(n int) bool { return n%m != 0 }
			notP := func(n int) bool { return !p(n) }
			return Every(Of(a), p) == !Some(Of(a), notP)
		},
		smallInts,
		gen.IntRange(1, 4),
	))

	properties.Property("index of finds the first match", prop.ForAll(
		func(a []int, target int) bool {
			i := IndexOf(a, target)
			if i == -1 {
				return !Contains(Of(a), target)
			}
			for j := 0; j < i; j++ {
				if a[j] == target {
					return false
				}
			}
			return a[i] == target
		},
		smallInts,
		gen.IntRange(-8, 8),
	))

	properties.TestingRun(t)
}
