package resample

import (
	"math"

	"gonum.org/v1/gonum/mathext/prng"
)

// Source is the minimal generator contract consumed by Rand.
type Source interface {
	// Uint64 returns a random number in [0, MaxUint64] and advances the
	// generator's state.
	Uint64() uint64
}

// Rand is an explicit random-source handle. It replaces any process-global
// generator: callers construct one from a seed and pass it into the sampler
// and the simulation driver, which makes every draw reproducible.
//
// Rand is NOT safe for concurrent use. Parallel callers must hold one Rand
// per goroutine (see Simulate, which derives per-worker seeds).
type Rand struct {
	src Source
}

// NewRand returns a Rand backed by a seeded MT19937 generator.
//
// MT19937 is not cryptographically secure; statistical sampling does not
// need it to be.
func NewRand(seed uint64) *Rand {
	src := prng.NewMT19937()
	src.Seed(seed)
	return &Rand{src: src}
}

// NewRandFromSource wraps an arbitrary Source. Useful in tests that want a
// deterministic or degenerate generator.
func NewRandFromSource(src Source) *Rand {
	return &Rand{src: src}
}

// Uint64Inclusive returns a uniform pseudo-random number in [0, n].
//
// Uniformity matters here: a naive modulo over the raw 64-bit output would
// skew low indices, which would make "uniform over population indices" a lie.
func (r *Rand) Uint64Inclusive(n uint64) uint64 {
	switch {
	// n+1 is a power of two, so masking is exact.
	//
	// Note: this also covers n == MaxUint64, since n+1 overflows to 0 and
	// integer overflow is defined by the spec: https://go.dev/ref/spec#Integer_overflow
	case n&(n+1) == 0:
		return r.src.Uint64() & n

	// n exceeds MaxInt64, so more than half of all 64-bit values are in
	// range already. Rejection over the full width terminates quickly.
	case n > math.MaxInt64:
		v := r.src.Uint64()
		for v > n {
			v = r.src.Uint64()
		}
		return v

	// General case: reject into the largest multiple of n+1 that fits in
	// 63 bits, then reduce. Matches the approach in math/rand.Int63n.
	default:
		maximum := (1 << 63) - 1 - (1<<63)%(n+1)
		v := r.uint63()
		for v > maximum {
			v = r.uint63()
		}
		return v % (n + 1)
	}
}

// Float64 returns a uniform pseudo-random number in [0, 1).
func (r *Rand) Float64() float64 {
	// Take the top 53 bits: the widest mantissa a float64 can hold exactly.
	return float64(r.src.Uint64()>>11) / (1 << 53)
}

// uint63 returns a random number in [0, MaxInt64].
func (r *Rand) uint63() uint64 {
	return r.src.Uint64() & math.MaxInt64
}
