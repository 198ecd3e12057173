// Package lvrand is the reproducibility layer of the lvlath toolkit: a
// deterministic random engine whose output for a given seed is identical on
// every platform, and whose full state can be checkpointed and restored bit
// for bit.
//
// Layout:
//
//	random/      - Engine (MT19937-64), bounded/real draws, Shuffle, Sample,
//	               text codec, checkpoint files, seed Dispenser
//	cmd/lvrand/  - draw, save, verify and bench from the command line
//
// Quick start:
//
//	e := random.NewSeeded(42)
//	v, _ := e.UniformInt(100) // 6, then 24, then 50, everywhere
//	_ = e.SaveToFile("rng.sz")
//
// Algorithms that consume randomness take a random.IntSource, so tests can
// pass a fixed-sequence double instead of a real engine.
//
//	go get github.com/katalvlaran/lvrand/random
package lvrand
