package atomic128

// carry returns 1 if x + y overflows 64 bits and 0 otherwise, without a
// branch. The top 63 bits of both operands are summed together with the
// carry out of their bottom bits; bit 63 of that sum is bit 64 of x + y.
func carry(x, y uint64) uint64 {
	return ((x >> 1) + (y >> 1) + (x & y & 1)) >> 63
}

// add128 returns (msw:lsw) + (msb:lsb) modulo 2^128.
func add128(msw, lsw, msb, lsb uint64) (hi, lo uint64) {
	return msw + msb + carry(lsw, lsb), lsw + lsb
}

// Add adds lsb to v modulo 2^128. Not atomic.
func (v *Value) Add(lsb uint64) {
	v.Add128(0, lsb)
}

// Add128 adds msb:lsb to v modulo 2^128. Not atomic; it is meant for the
// compute step of a load, add, CompareAndSet loop.
func (v *Value) Add128(msb, lsb uint64) {
	w := v.words()
	m, l := v.order.msw(), v.order.lsw()
	w[m], w[l] = add128(w[m], w[l], msb, lsb)
}

// AddValue adds other to v modulo 2^128. Not atomic.
func (v *Value) AddValue(other *Value) {
	v.Add128(other.High(), other.Low())
}
