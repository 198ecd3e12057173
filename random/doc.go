// Package random provides a deterministic, platform-independent pseudorandom
// engine for reproducible numeric experiments.
//
// Overview:
//
//   - Engine wraps a 64-bit Mersenne Twister (MT19937-64) together with the
//     immutable seed it was built from. The raw output is bit-identical to the
//     reference MT19937-64 on every platform.
//   - Bounded integers use plain modulo reduction: UniformInt(n) == Uint64() % n.
//     The small modulo bias for bounds that do not divide 2^64 is accepted in
//     exchange for a formula that can be reproduced anywhere.
//   - Reals are one draw divided by 2^64 and rounded to nearest float64. The
//     draws close enough to Max to round up to 1.0 return the largest float64
//     below 1, so UniformReal is always in [0, 1).
//   - Shuffle (Fisher-Yates, last index first) and Sample (copy, shuffle, truncate)
//     are generic over IntSource, so any bounded-integer source can drive them.
//   - Engines serialize to a stable text form that captures seed and full state.
//     Decoding that text yields an engine that is Equal to the original and
//     continues the exact same sequence.
//
// Construction:
//
//	e := random.NewSeeded(42)   // fully reproducible
//	u := random.New()           // seed minted by the process-wide Dispenser
//
// Seeding policy:
//
//   - NewSeeded uses the given seed verbatim; 0 is an ordinary seed.
//   - New asks a Dispenser for a seed exactly once. The default dispenser is
//     lazily created on first use and seeds itself from crypto/rand unless a
//     SeedSource was installed earlier with InstallGlobalSeeder.
//   - Installing a seeder after the dispenser has produced a seed fails with
//     ErrAlreadyInitialized.
//
// Text form (stable wire format):
//
//	random-v2 <seed> <w0> <w1> ... <w311> <index> endrandom-v2
//
// All numbers are unsigned decimals separated by single spaces.
//
// Errors (sentinel):
//
//   - ErrInvalidArgument     zero bound, nil source, sample count out of range.
//   - ErrIO                  file or stream failure; the concrete *IOError carries the path.
//   - ErrDeserialization     text form could not be parsed into seed + state.
//   - ErrAlreadyInitialized  seeder installed after the dispenser was used.
//
// Concurrency:
//
//   - An Engine is NOT safe for concurrent use; every draw mutates its state.
//     Clone it (or copy the value) to hand independent streams to goroutines.
//   - Dispenser is safe for concurrent use.
//
// Complexity:
//
//   - Uint64, UniformInt, UniformReal: amortized O(1) (a 312-word twist every 312 draws).
//   - Shuffle: O(n) time, O(1) extra space. Sample: O(n) time and space.
//   - Encode/Decode: O(1) (fixed 316 tokens).
//
// Not for cryptographic use.
package random
