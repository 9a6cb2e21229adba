package main

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
	"slices"
	"time"
)

// Sampler draws catalog items without replacement.
type Sampler struct {
	rng  *rand.Rand
	seed int64
}

// NewSampler returns a sampler whose draws depend only on seed.
func NewSampler(seed int64) *Sampler {
	// Non-cryptographic PRNG; shop rotations only need to be reproducible.
	// #nosec G404
	return &Sampler{
		rng:  rand.New(rand.NewPCG(seedWord(seed, "a"), seedWord(seed, "b"))),
		seed: seed,
	}
}

// NewRandomSampler seeds from the clock.
func NewRandomSampler() *Sampler {
	return NewSampler(time.Now().UnixNano())
}

// Seed reports the seed the sampler was built from, so a run can be replayed.
func (s *Sampler) Seed() int64 { return s.seed }

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = fmt.Fprintf(h, "%d:%s", seed, salt)
	return h.Sum64()
}

// GenerateRandomItems removes count items from pool at random and returns them
// in draw order. Items left in pool keep their relative order. If the pool is
// too small nothing is drawn.
func (s *Sampler) GenerateRandomItems(pool *[]Cosmetic, count int) ([]Cosmetic, error) {
	if count < 0 || count > len(*pool) {
		return nil, fmt.Errorf("%w: need %d, have %d", ErrInsufficientItems, count, len(*pool))
	}

	selected := make([]Cosmetic, 0, count)
	for i := 0; i < count; i++ {
		idx := s.rng.IntN(len(*pool))
		selected = append(selected, (*pool)[idx])
		*pool = slices.Delete(*pool, idx, idx+1)
	}
	return selected, nil
}
