package utils

import (
	"errors"
	"sync"
	"testing"
)

func TestProcessWithErrors(t *testing.T) {
	t.Run("should stop at the first error", func(t *testing.T) {
		calls := 0
		boom := errors.New("boom")
		err := ProcessWithErrors(func() error {
			calls++
			return nil
		}, func() error {
			calls++
			return boom
		}, func() error {
			calls++
			return nil
		})
		if err != boom {
			t.Fatalf("expected boom, got %v", err)
		}
		if calls != 2 {
			t.Fatalf("expected 2 processors to run, got %d", calls)
		}
	})
}

func TestRando(t *testing.T) {
	t.Run("should be usable from many goroutines", func(t *testing.T) {
		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 100; j++ {
					if n := Rando.Intn(10); n < 0 || n >= 10 {
						t.Errorf("out of range %d", n)
					}
				}
			}()
		}
		wg.Wait()
	})
	t.Run("seeded rand should be deterministic", func(t *testing.T) {
		a, b := NewRand(42), NewRand(42)
		for i := 0; i < 10; i++ {
			if a.Int63() != b.Int63() {
				t.Fatalf("sequences diverged at %d", i)
			}
		}
	})
}
