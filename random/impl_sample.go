// SPDX-License-Identifier: MIT
// Package: lvrand/random
//
// impl_sample.go - sampling without replacement.
//
// Sample is "copy, shuffle, keep the first count". The returned order is the
// shuffle order, not population order; callers may rely on it.

package random

// Sample returns count distinct positions of population, chosen without
// replacement, in shuffle order. population is never modified.
//
//   - count == 0: returns an empty, non-nil slice; src is not touched.
//   - count < 0 or count > len(population): ErrInvalidArgument.
//   - otherwise: len(population)-1 draws, regardless of count.
//
// Complexity: O(n) time and space.
func Sample[T any](src IntSource, population []T, count int) ([]T, error) {
	if count == 0 {
		return []T{}, nil
	}
	if count < 0 || count > len(population) {
		return nil, errorf(methodSample, ErrInvalidArgument,
			"count %d out of range [0, %d]", count, len(population))
	}

	pop := make([]T, len(population))
	copy(pop, population)
	if err := Shuffle(src, pop); err != nil {
		return nil, err
	}

	return pop[:count:count], nil
}

// SampleInto fills out with len(out) elements sampled from population.
// It delegates to Sample, so both forms consume identical draws and produce
// identical results. On error out is left unchanged.
func SampleInto[T any](src IntSource, population []T, out []T) error {
	chosen, err := Sample(src, population, len(out))
	if err != nil {
		return err
	}
	copy(out, chosen)

	return nil
}
