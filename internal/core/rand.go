package core

import (
	"errors"
	"math/rand"
)

// ErrEmptyChoice is returned when picking from an empty candidate set.
var ErrEmptyChoice = errors.New("core: choice from empty set")

// Rand is the source of randomness consumed by game logic.
// *rand.Rand satisfies it; tests substitute scripted sources.
type Rand interface {
	Float64() float64 // uniform in [0, 1)
	Intn(n int) int   // uniform in [0, n)
}

// NewRand returns a seeded source for deterministic gameplay.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// FloatRange returns a uniform value in [lo, hi).
func FloatRange(r Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// IntRange returns a uniform value in [lo, hi], both inclusive.
func IntRange(r Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo+1)
}

// Choose picks one element uniformly.
func Choose[T any](r Rand, items []T) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, ErrEmptyChoice
	}
	return items[r.Intn(len(items))], nil
}
