// SPDX-License-Identifier: MIT
// Package: lvrand/random
//
// options.go - functional options for New and NewDispenser.
//
// Contract:
//   • Option constructors validate and panic on nil inputs; the engine and the
//     dispenser themselves never panic on bad data, they return sentinels.
//   • Later options override earlier ones.

package random

// Option customizes unseeded Engine construction.
type Option func(*engineConfig)

// engineConfig is resolved once per New call.
type engineConfig struct {
	dispenser *Dispenser
}

// WithDispenser makes New mint its seed from d instead of the process-wide
// DefaultDispenser. Panics on nil.
func WithDispenser(d *Dispenser) Option {
	if d == nil {
		panic("random: WithDispenser(nil)")
	}
	return func(c *engineConfig) {
		c.dispenser = d
	}
}

func newEngineConfig(opts ...Option) engineConfig {
	var cfg engineConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.dispenser == nil {
		cfg.dispenser = DefaultDispenser()
	}

	return cfg
}

// DispenserOption customizes a Dispenser.
type DispenserOption func(*Dispenser)

// WithSeedSource pre-installs src, as if Install(src) had been called before
// first use. Panics on nil.
func WithSeedSource(src SeedSource) DispenserOption {
	if src == nil {
		panic("random: WithSeedSource(nil)")
	}
	return func(d *Dispenser) {
		d.src = src
	}
}

// WithEntropy replaces the non-deterministic source used to seed the
// dispenser's internal engine when no SeedSource is installed. Panics on nil.
func WithEntropy(fn func() uint64) DispenserOption {
	if fn == nil {
		panic("random: WithEntropy(nil)")
	}
	return func(d *Dispenser) {
		d.entropy = fn
	}
}
