// Package random wraps math/rand/v2 behind a small interface so generators and
// classifiers can be driven by a seeded source in tests.
package random

import (
	"math"
	"math/rand/v2"
	"sync"
)

// Source is the subset of *rand.Rand the program draws from.
type Source interface {
	Float64() float64
	IntN(n int) int
}

type global struct{}

func (global) Float64() float64 { return rand.Float64() }
func (global) IntN(n int) int   { return rand.IntN(n) }

// New returns a source backed by the runtime's concurrency-safe generator.
func New() Source {
	return global{}
}

type locked struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (l *locked) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Float64()
}

func (l *locked) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.IntN(n)
}

// NewSeeded returns a deterministic source, safe for concurrent use.
func NewSeeded(seed uint64) Source {
	return &locked{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Uniform draws a float in [lo, hi].
func Uniform(src Source, lo, hi float64) float64 {
	return lo + (hi-lo)*src.Float64()
}

// Between draws an int in [lo, hi], both inclusive.
func Between(src Source, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + src.IntN(hi-lo+1)
}

// Confidence draws a score in [lo, hi] rounded to two decimals.
// lo and hi are expected to have at most two decimals so rounding stays in range.
func Confidence(src Source, lo, hi float64) float64 {
	return Round(Uniform(src, lo, hi), 2)
}

// Round rounds v to the given number of decimals, half away from zero.
func Round(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}

// Pick returns a uniformly chosen element of xs. xs must not be empty.
func Pick[T any](src Source, xs []T) T {
	return xs[src.IntN(len(xs))]
}
