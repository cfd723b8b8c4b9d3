package crypt

// Parameters of the 48-bit linear congruential generator the game client
// uses to derive its cipher tables (java.util.Random under the hood).
const (
	randMultiplier = 0x5DEECE66D
	randAddend     = 0xB
	randMask       = (1 << 48) - 1
)

// ConnRandom is the deterministic generator both peers run to build the
// connection cipher permutations from the session seed. The sequence must
// match the client's bit for bit or every ciphered line turns to garbage.
type ConnRandom struct {
	state uint64
}

// NewConnRandom seeds the generator the same way java.util.Random does.
func NewConnRandom(seed int32) *ConnRandom {
	return &ConnRandom{state: (uint64(int64(seed)) ^ randMultiplier) & randMask}
}

func (r *ConnRandom) next() int32 {
	r.state = (r.state*randMultiplier + randAddend) & randMask
	return int32(uint32(r.state >> 16))
}

func (r *ConnRandom) nextInt() int32 {
	n := r.next()
	if n < 0 {
		n = -n
		if n < 0 {
			// -MinInt32 overflows back to itself.
			return 0
		}
	}
	return n
}

// IntInRange returns a value in [min, max]. The modulo fold is slightly
// biased; that bias is part of the shared algorithm and must stay.
func (r *ConnRandom) IntInRange(min, max int32) int32 {
	return min + r.nextInt()%(max-min+1)
}
