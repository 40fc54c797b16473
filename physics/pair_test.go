package physics

import "testing"

func TestMakePairKeySymmetry(t *testing.T) {
	cases := []struct {
		name string
		a, b uint32
	}{
		{"ordered", 3, 7},
		{"reversed", 7, 3},
		{"equal", 5, 5},
		{"zero", 0, 9},
		{"large", 1<<31 + 1, 2},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			k1 := MakePairKey(c.a, c.b)
			k2 := MakePairKey(c.b, c.a)
			if k1 != k2 {
				t.Fatalf("MakePairKey(%d,%d)=%d != MakePairKey(%d,%d)=%d", c.a, c.b, k1, c.b, c.a, k2)
			}

			lo, hi := c.a, c.b
			if lo > hi {
				lo, hi = hi, lo
			}
			gotLo, gotHi := k1.Split()
			if gotLo != lo || gotHi != hi {
				t.Fatalf("Split()=(%d,%d), want (%d,%d)", gotLo, gotHi, lo, hi)
			}
		})
	}
}

func TestPairKeyPacking(t *testing.T) {
	k := MakePairKey(1, 2)
	if uint64(k) != uint64(1)<<32|2 {
		t.Fatalf("expected smaller index in high bits, got %#x", uint64(k))
	}
}
