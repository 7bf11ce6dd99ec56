package decorator

import "sync"

// Once runs fn on the first call and returns that result forever after.
// Callers racing the first call wait for it to finish.
func Once[R any](fn func() R) func() R {
	var (
		once   sync.Once
		result R
	)
	return func() R {
		once.Do(func() {
			result = fn()
		})
		return result
	}
}

// OnceWith is Once for a function of one argument. Only the first call's
// argument reaches fn; later arguments are ignored.
func OnceWith[A, R any](fn func(A) R) func(A) R {
	var (
		once   sync.Once
		result R
	)
	return func(arg A) R {
		once.Do(func() {
			result = fn(arg)
		})
		return result
	}
}
