package demo

import "math/bits"

// Rand is the wyhash64 generator the demo scenes draw from. The zero value
// is a generator seeded with 0.
type Rand struct {
	state uint64
}

// NewRand returns a generator starting from seed.
func NewRand(seed uint64) *Rand {
	return &Rand{state: seed}
}

// Seed resets the generator.
func (r *Rand) Seed(seed uint64) {
	r.state = seed
}

// Uint64 returns the next value.
func (r *Rand) Uint64() uint64 {
	r.state += 0x60bee2bee120fc15
	hi, lo := bits.Mul64(r.state, 0xa3b195354a39b70d)
	m1 := hi ^ lo
	hi, lo = bits.Mul64(m1, 0x1b03738712fad5c9)
	return hi ^ lo
}

// Intn returns a value in [0, n). It panics if n <= 0.
func (r *Rand) Intn(n int) int {
	if n <= 0 {
		panic("demo: Intn argument must be positive")
	}
	return int(r.Uint64() % uint64(n))
}

// Color returns a random non-black palette index.
func (r *Rand) Color() uint8 {
	return uint8(r.Intn(15) + 1)
}
