package physics

// PairKey identifies an unordered entity pair by index. The smaller index
// occupies the high 32 bits, so MakePairKey(a, b) == MakePairKey(b, a).
// Generations are not part of the key.
type PairKey uint64

func MakePairKey(a, b uint32) PairKey {
	if a > b {
		a, b = b, a
	}
	return PairKey(uint64(a)<<32 | uint64(b))
}

// Split returns the two indices, smaller first.
func (k PairKey) Split() (uint32, uint32) {
	return uint32(k >> 32), uint32(k)
}
