package common

const (
	// TickRate is the default fixed simulation rate in ticks per second.
	TickRate = 60

	// Drag is the per-tick velocity damping applied by movement.
	Drag = 0.985
)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func Max3(a, b, c float64) float64 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}
