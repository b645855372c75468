package nlp

import (
	"math/rand"
	"sync"
	"time"
)

// ConfidenceSource produces mock confidence scores of the form
// base + rand*spread, clamped to [0,1]. The values are decorative — they
// carry no statistical meaning — but are isolated here so callers can swap
// in a real model score later without changing their interface.
type ConfidenceSource struct {
	mu     sync.Mutex
	base   float64
	spread float64
	rng    *rand.Rand
}

// NewConfidenceSource returns a time-seeded source.
func NewConfidenceSource(base, spread float64) *ConfidenceSource {
	return NewConfidenceSourceWithRand(base, spread, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewConfidenceSourceWithRand returns a source over a caller-supplied
// generator, for deterministic tests.
func NewConfidenceSourceWithRand(base, spread float64, rng *rand.Rand) *ConfidenceSource {
	return &ConfidenceSource{base: base, spread: spread, rng: rng}
}

// Score returns the next confidence value in [0,1].
func (s *ConfidenceSource) Score() float64 {
	s.mu.Lock()
	v := s.base + s.rng.Float64()*s.spread
	s.mu.Unlock()
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
