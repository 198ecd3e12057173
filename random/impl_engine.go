// SPDX-License-Identifier: MIT
// Package: lvrand/random
//
// impl_engine.go - construction, raw draws and the bounded/real reductions.
//
// Every derived draw is built from Uint64 alone, so one derived draw consumes
// exactly one raw value and advances the state exactly once.

package random

import (
	"fmt"
	"math"
)

// NewSeeded returns an engine whose entire output is determined by seed.
// Complexity: O(312).
func NewSeeded(seed uint64) *Engine {
	e := &Engine{seed: seed}
	e.mt.seed(seed)

	return e
}

// New returns an engine seeded once from a Dispenser (DefaultDispenser unless
// WithDispenser is given). After construction it behaves exactly like
// NewSeeded(e.Seed()).
func New(opts ...Option) *Engine {
	cfg := newEngineConfig(opts...)

	return NewSeeded(uint64(cfg.dispenser.Seed()))
}

// Seed returns the origin seed. It identifies the sequence, not the current
// position in it; use Encode to capture mid-sequence state.
func (e *Engine) Seed() uint64 { return e.seed }

// Uint64 returns the next raw 64-bit value in [Min, Max].
func (e *Engine) Uint64() uint64 { return e.mt.next() }

// UniformInt returns Uint64() % bound, in [0, bound).
// bound==0 yields ErrInvalidArgument and consumes no state.
func (e *Engine) UniformInt(bound uint32) (uint32, error) {
	if bound == 0 {
		return 0, errorf(methodUniformInt, ErrInvalidArgument, "bound must be > 0")
	}

	return e.reduce(bound), nil
}

// UniformInt32 is UniformInt with the default bound MaxUint32Bound.
func (e *Engine) UniformInt32() uint32 {
	return e.reduce(MaxUint32Bound)
}

// reduce is the single bounded reduction shared by every integer draw.
// bound must be non-zero.
func (e *Engine) reduce(bound uint32) uint32 {
	return uint32(e.mt.next() % uint64(bound))
}

// UniformReal returns Uint64() / (Max + 1) as a float64 in [0, 1).
func (e *Engine) UniformReal() float64 {
	return unitReal(e.mt.next())
}

// unitReal maps x to x / 2^64 rounded to nearest. The few values of x close
// enough to Max to round up to 1.0 map to the largest float64 below 1.
func unitReal(x uint64) float64 {
	r := float64(x) * 0x1p-64
	if r == 1 {
		return math.Nextafter(1, 0)
	}

	return r
}

// Intn returns UniformInt(n) as an int, for callers that expect a
// func(int) int random source. Like math/rand.Intn it panics if n <= 0;
// it also panics if n does not fit in uint32.
func (e *Engine) Intn(n int) int {
	if n <= 0 || uint64(n) > uint64(MaxUint32Bound) {
		panic(fmt.Sprintf("random: Intn(%d) out of range", n))
	}

	return int(e.reduce(uint32(n)))
}

// Discard advances the state by n draws without returning them.
// Complexity: O(n).
func (e *Engine) Discard(n uint64) {
	for ; n > 0; n-- {
		e.mt.next()
	}
}

// Perm returns a shuffled permutation of 0..n-1. n == 0 yields an empty
// slice; n < 0 yields ErrInvalidArgument.
func (e *Engine) Perm(n int) ([]int, error) {
	if n < 0 {
		return nil, errorf(methodPerm, ErrInvalidArgument, "n %d < 0", n)
	}
	if n == 0 {
		return []int{}, nil
	}
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	if err := Shuffle[int](e, p); err != nil {
		return nil, err
	}

	return p, nil
}

// Equal reports whether e and other have the same seed AND the same generator
// state, including position within the current block. Engines with the same
// seed but a different number of draws are not equal. Two nil engines are equal.
func (e *Engine) Equal(other *Engine) bool {
	if e == nil || other == nil {
		return e == other
	}

	return e.seed == other.seed && e.mt == other.mt
}

// Clone returns an independent deep copy of e.
func (e *Engine) Clone() *Engine {
	c := *e

	return &c
}

// String returns a short debug description; it is not a serialization.
func (e *Engine) String() string {
	return fmt.Sprintf("random.Engine(seed=%d, pos=%d/%d)", e.seed, e.mt.i, mtN)
}
