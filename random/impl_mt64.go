// SPDX-License-Identifier: MIT
// Package: lvrand/random
//
// impl_mt64.go - MT19937-64 bit source.
//
// The word size, recurrence, twist and tempering constants are those of the
// reference 64-bit Mersenne Twister (Matsumoto & Nishimura, 2004), so output
// matches every conforming implementation bit for bit.

package random

const (
	mtN         = 312
	mtM         = 156
	mtMatrixA   = 0xB5026F5AA96619E9
	mtUpperMask = 0xFFFFFFFF80000000 // most significant 33 bits
	mtLowerMask = 0x7FFFFFFF         // least significant 31 bits
	mtInitMul   = 6364136223846793005
)

// mt64 is the raw generator state. It is a plain value: copying it copies the
// whole state.
type mt64 struct {
	x [mtN]uint64
	i int // next word to temper; mtN means "twist before next draw"
}

// seed fills the state from a single 64-bit seed.
func (m *mt64) seed(s uint64) {
	m.x[0] = s
	for k := 1; k < mtN; k++ {
		prev := m.x[k-1]
		m.x[k] = mtInitMul*(prev^(prev>>62)) + uint64(k)
	}
	m.i = mtN
}

// twist regenerates all mtN words.
func (m *mt64) twist() {
	var (
		k int
		y uint64
	)
	for k = 0; k < mtN-mtM; k++ {
		y = (m.x[k] & mtUpperMask) | (m.x[k+1] & mtLowerMask)
		m.x[k] = m.x[k+mtM] ^ (y >> 1) ^ ((y & 1) * mtMatrixA)
	}
	for ; k < mtN-1; k++ {
		y = (m.x[k] & mtUpperMask) | (m.x[k+1] & mtLowerMask)
		m.x[k] = m.x[k+mtM-mtN] ^ (y >> 1) ^ ((y & 1) * mtMatrixA)
	}
	y = (m.x[mtN-1] & mtUpperMask) | (m.x[0] & mtLowerMask)
	m.x[mtN-1] = m.x[mtM-1] ^ (y >> 1) ^ ((y & 1) * mtMatrixA)
	m.i = 0
}

// next advances the state by one word and returns it tempered.
func (m *mt64) next() uint64 {
	if m.i >= mtN {
		m.twist()
	}
	z := m.x[m.i]
	m.i++

	z ^= (z >> 29) & 0x5555555555555555
	z ^= (z << 17) & 0x71D67FFFEDA60000
	z ^= (z << 37) & 0xFFF7EEE000000000
	z ^= z >> 43

	return z
}
