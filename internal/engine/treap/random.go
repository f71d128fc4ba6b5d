package treap

import (
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"
)

// Source produces node priorities. *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	Int() int
}

// lockedSource serializes access to a Source that is not safe for
// concurrent use.
type lockedSource struct {
	mu  sync.Mutex
	src Source
}

func (s *lockedSource) Int() int {
	s.mu.Lock()
	v := s.src.Int()
	s.mu.Unlock()
	return v
}

var source atomic.Pointer[lockedSource]

func init() {
	Seed(uint64(time.Now().UnixNano()))
}

// SetSource replaces the process-wide priority source.
// The source is wrapped so concurrent tree builders may share it.
func SetSource(src Source) {
	source.Store(&lockedSource{src: src})
}

// Seed installs a deterministic PCG source seeded with seed.
func Seed(seed uint64) {
	SetSource(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// nextPriority draws a priority for a newly created leaf.
func nextPriority() int {
	return source.Load().Int()
}
