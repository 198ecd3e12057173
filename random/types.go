// SPDX-License-Identifier: MIT
// Package: lvrand/random
//
// types.go - public types, constants and capability interfaces.

package random

import "math"

// Generator limits of the MT19937-64 bit source.
const (
	// Max is the largest value Uint64 can return.
	Max uint64 = math.MaxUint64

	// Min is the smallest value Uint64 can return.
	Min uint64 = 0

	// MaxUint32Bound is the default exclusive bound for 32-bit draws.
	MaxUint32Bound uint32 = math.MaxUint32
)

// IntSource is the bounded-integer capability consumed by Shuffle and Sample.
// UniformInt must return a value in [0, bound) or an error; bound==0 is invalid.
//
// *Engine implements IntSource. Tests may substitute a double that replays a
// fixed sequence.
type IntSource interface {
	UniformInt(bound uint32) (uint32, error)
}

// SeedSource produces seeds for engines built without an explicit seed.
type SeedSource func() uint64

// Engine is a deterministic pseudorandom generator: an immutable origin seed
// plus MT19937-64 state that advances once per raw 64-bit draw.
//
// The zero value is not usable; build engines with New or NewSeeded.
// Engine has value semantics: assigning *e to another variable (or calling
// Clone) produces a fully independent copy with identical future output.
type Engine struct {
	seed uint64 // origin seed, fixed at construction
	mt   mt64   // generator state, mutated by every draw
}

var _ IntSource = (*Engine)(nil)
