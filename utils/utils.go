package utils

import (
	"math/rand"
	"sync"
	"time"
)

// Rando is safe for concurrent use.
var Rando *rand.Rand

func init() {
	Rando = rand.New(&lockedSource{src: rand.NewSource(time.Now().UnixNano()).(rand.Source64)})
}

type lockedSource struct {
	lock sync.Mutex
	src  rand.Source64
}

func (s *lockedSource) Int63() int64 {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.src.Int63()
}

func (s *lockedSource) Uint64() uint64 {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.src.Uint64()
}

func (s *lockedSource) Seed(seed int64) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.src.Seed(seed)
}

// NewRand returns a source seeded with seed. It is not safe for concurrent use.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func ProcessWithError(processors []func() error) (err error) {
	for _, processor := range processors {
		if err = processor(); err != nil {
			return
		}
	}
	return
}

func ProcessWithErrors(funcs ...func() error) error {
	return ProcessWithError(funcs)
}
