// SPDX-License-Identifier: MIT
// Package: lvrand/random
//
// impl_dispenser.go - seed dispenser for engines built without a seed.
//
// Lifecycle:
//   • A Dispenser is open until its first Seed call; Install may be called
//     at most once, and only while it is open.
//   • First Seed freezes the policy: the installed SeedSource if any,
//     otherwise an internal Engine seeded from the entropy function.
//   • All methods are safe for concurrent use; racing first uses initialize
//     exactly once.

package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"sync"
	"time"
)

// Dispenser mints seeds for unseeded engines.
type Dispenser struct {
	mu      sync.Mutex
	src     SeedSource    // installed override; nil means internal engine
	entropy func() uint64 // seeds the internal engine on first use
	eng     *Engine       // internal engine, built lazily
	used    bool          // set by the first Seed call
}

// NewDispenser returns an open dispenser. Without options it seeds itself
// from crypto/rand on first use.
func NewDispenser(opts ...DispenserOption) *Dispenser {
	d := &Dispenser{entropy: systemEntropy}
	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Install sets src as the seed policy for the rest of d's lifetime.
// It fails with ErrAlreadyInitialized once d has produced a seed or already
// has a source, and with ErrInvalidArgument for a nil src.
func (d *Dispenser) Install(src SeedSource) error {
	if src == nil {
		return errorf(methodInstall, ErrInvalidArgument, "seed source is nil")
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.used {
		return errorf(methodInstall, ErrAlreadyInitialized, "dispenser already produced a seed")
	}
	if d.src != nil {
		return errorf(methodInstall, ErrAlreadyInitialized, "seed source already installed")
	}
	d.src = src

	return nil
}

// Seed returns the next 32-bit seed. The first call freezes d.
func (d *Dispenser) Seed() uint32 {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.used {
		d.used = true
		if d.src == nil {
			d.eng = NewSeeded(d.entropy())
		}
	}
	if d.src != nil {
		return uint32(d.src())
	}

	return d.eng.UniformInt32()
}

// Initialized reports whether d has produced a seed.
func (d *Dispenser) Initialized() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.used
}

var (
	defaultDispenser     *Dispenser
	defaultDispenserOnce sync.Once
)

// DefaultDispenser returns the process-scoped dispenser used by New when no
// WithDispenser option is given. It is created on first call.
func DefaultDispenser() *Dispenser {
	defaultDispenserOnce.Do(func() {
		defaultDispenser = NewDispenser()
	})

	return defaultDispenser
}

// GlobalSeed is DefaultDispenser().Seed().
func GlobalSeed() uint32 { return DefaultDispenser().Seed() }

// InstallGlobalSeeder installs src on the default dispenser. Call it before
// the first unseeded engine is built; afterwards it fails with
// ErrAlreadyInitialized.
func InstallGlobalSeeder(src SeedSource) error {
	return DefaultDispenser().Install(src)
}

// systemEntropy reads 8 bytes from crypto/rand, falling back to a mixed
// wall-clock value if the system source is unavailable.
func systemEntropy() uint64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err == nil {
		return binary.LittleEndian.Uint64(b[:])
	}

	return mixSeed(uint64(time.Now().UnixNano()), 0)
}

// mixSeed is the SplitMix64 finalizer applied to parent^(stream+golden).
// Nearby inputs map to unrelated outputs.
func mixSeed(parent, stream uint64) uint64 {
	x := parent ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return x
}

// SequentialSeeds returns a SeedSource yielding mixSeed(base, 0),
// mixSeed(base, 1), ... Install it to make every unseeded engine in a test
// run reproducible from one base value. The source is not safe for concurrent
// use on its own; the Dispenser serializes calls to it.
func SequentialSeeds(base uint64) SeedSource {
	var n uint64
	return func() uint64 {
		s := mixSeed(base, n)
		n++
		return s
	}
}
