package service

import (
	"math/rand"
	"time"
)

// RandomSource supplies uniform integers in [0, n).
// *rand.Rand satisfies it; tests pass deterministic sources.
type RandomSource interface {
	Intn(n int) int
}

// NewRandomSource returns a time-seeded source for production use.
func NewRandomSource() RandomSource {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// shuffle permutes items in place using the Fisher-Yates algorithm.
func shuffle[T any](rng RandomSource, items []T) {
	for i := len(items) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}
