// SPDX-License-Identifier: MIT
// Package: lvrand/random
//
// impl_shuffle.go - in-place Fisher-Yates shuffle over any IntSource.

package random

// Shuffle permutes s in place. Positions are visited from last to first and
// position i is swapped with j = src.UniformInt(i+1), so the same source state
// and the same length always produce the same permutation.
//
// Slices of length 0 or 1 are left untouched and consume no draws.
// A nil src or a slice longer than MaxUint32Bound yields ErrInvalidArgument;
// errors from src are returned as-is and leave s partially shuffled.
//
// Complexity: O(n) time, O(1) extra space, n-1 draws.
func Shuffle[T any](src IntSource, s []T) error {
	if src == nil {
		return errorf(methodShuffle, ErrInvalidArgument, "source is nil")
	}
	n := len(s)
	if uint64(n) > uint64(MaxUint32Bound) {
		return errorf(methodShuffle, ErrInvalidArgument, "length %d exceeds %d", n, MaxUint32Bound)
	}

	var (
		i   int
		j   uint32
		err error
	)
	for i = n - 1; i > 0; i-- {
		if j, err = src.UniformInt(uint32(i + 1)); err != nil {
			return err
		}
		s[i], s[j] = s[j], s[i]
	}

	return nil
}
