package game

import "math"

const defaultSeed uint64 = 0x9E3779B97F4A7C15

// Rand is a xorshift64 source kept by value inside State, so copying a state
// also copies its position in the random stream and transitions can be replayed.
type Rand uint64

func NewRand(seed uint64) Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return Rand(seed)
}

func (r *Rand) Uint64() uint64 {
	x := uint64(*r)
	if x == 0 {
		x = defaultSeed
	}
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	*r = Rand(x)
	return x
}

// Intn returns a value in [0, n). Draws above the largest multiple of n are
// rejected so every result is equally likely.
func (r *Rand) Intn(n int) int {
	if n <= 0 {
		panic("game: invalid argument to Intn")
	}
	bound := uint64(n)
	limit := math.MaxUint64 - math.MaxUint64%bound
	for {
		if v := r.Uint64(); v < limit {
			return int(v % bound)
		}
	}
}

// Float64 returns a value in [0, 1).
func (r *Rand) Float64() float64 {
	return float64(r.Uint64()>>11) / (1 << 53)
}

// Shuffle is a Fisher-Yates shuffle over n elements.
func (r *Rand) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		swap(i, r.Intn(i+1))
	}
}
