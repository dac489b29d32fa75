package solver

import "math"

// bounds maps between the bounded external parameters x and the unbounded
// internal variables y seen by the optimizers.
type bounds struct {
	lower []float64
	upper []float64
}

func newBounds(lower, upper []float64, n int) bounds {
	b := bounds{lower: make([]float64, n), upper: make([]float64, n)}
	for i := range n {
		b.lower[i] = math.Inf(-1)
		b.upper[i] = math.Inf(1)
		if i < len(lower) {
			b.lower[i] = lower[i]
		}
		if i < len(upper) {
			b.upper[i] = upper[i]
		}
	}

	return b
}

// toExternal writes the bounded parameters for internal point y into dst.
func (b bounds) toExternal(dst, y []float64) []float64 {
	for i, v := range y {
		lo, hi := b.lower[i], b.upper[i]
		switch {
		case math.IsInf(lo, -1) && math.IsInf(hi, 1):
			dst[i] = v
		case math.IsInf(hi, 1):
			dst[i] = lo - 1 + math.Sqrt(v*v+1)
		case math.IsInf(lo, -1):
			dst[i] = hi + 1 - math.Sqrt(v*v+1)
		default:
			dst[i] = lo + (hi-lo)*(math.Sin(v)+1)/2
		}
	}

	return dst
}

// toInternal returns the internal point for external parameters x.
// Values outside the bounds are clamped. Values sitting exactly on a bound
// are moved slightly inside, where the transform has a non-zero slope.
func (b bounds) toInternal(x []float64) []float64 {
	y := make([]float64, len(x))
	for i, v := range x {
		lo, hi := b.lower[i], b.upper[i]
		switch {
		case math.IsInf(lo, -1) && math.IsInf(hi, 1):
			y[i] = v
		case math.IsInf(hi, 1):
			d := math.Max(v-lo, boundNudge)
			y[i] = math.Sqrt((d+1)*(d+1) - 1)
		case math.IsInf(lo, -1):
			d := math.Max(hi-v, boundNudge)
			y[i] = math.Sqrt((d+1)*(d+1) - 1)
		default:
			s := 2*(v-lo)/(hi-lo) - 1
			s = math.Max(-1+boundNudge, math.Min(1-boundNudge, s))
			y[i] = math.Asin(s)
		}
	}

	return y
}

const boundNudge = 1e-8

func (b bounds) contains(x []float64) bool {
	for i, v := range x {
		if v < b.lower[i] || v > b.upper[i] {
			return false
		}
	}

	return true
}
