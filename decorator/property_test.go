package decorator

import (
	"sort"
	"testing"
	"time"

	"github.com/dlshle/functional/timer"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestThrottleProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	const wait = 100 * time.Millisecond

	properties.Property("at most one immediate and one trailing call in the first window", prop.ForAll(
		func(offsets []int) bool {
			sort.Ints(offsets)
			clock := timer.NewVirtual(epoch)
			calls := 0
			wrapped := Throttle(func() int {
				calls++
				return calls
			}, wait, WithScheduler(clock))
			elapsed := 0
			for _, offset := range offsets {
				clock.Advance(time.Duration(offset-elapsed) * time.Millisecond)
				elapsed = offset
				wrapped()
			}
			if len(offsets) == 0 {
				return clock.Advance(wait) == 0 && calls == 0
			}
			// every call landed inside the window opened by the first one
			if calls != 1 {
				return false
			}
			clock.Advance(wait - time.Duration(elapsed-offsets[0])*time.Millisecond)
			expected := len(offsets)
			if expected > 2 {
				expected = 2
			}
			return calls == expected
		},
		gen.SliceOf(gen.IntRange(0, 99)),
	))

	properties.TestingRun(t)
}
