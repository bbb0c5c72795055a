package numeric

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Remap linearly maps v from [srcMin, srcMax] onto [dstMin, dstMax].
// A zero-width source range maps everything to dstMin. No clamping is done.
func Remap(v, srcMin, srcMax, dstMin, dstMax float64) float64 {
	if srcMax == srcMin {
		return dstMin
	}
	return (v-srcMin)/(srcMax-srcMin)*(dstMax-dstMin) + dstMin
}

func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// FloorMod returns x mod m with the sign of m, so FloorMod(-1, 5) == 4.
func FloorMod(x, m float64) float64 {
	r := math.Mod(x, m)
	if r != 0 && (r < 0) != (m < 0) {
		r += m
	}
	return r
}

// MinMax returns the smallest and largest of vs. Both are zero for an empty slice.
func MinMax[T constraints.Float | constraints.Integer](vs []T) (T, T) {
	if len(vs) == 0 {
		return 0, 0
	}
	lo, hi := vs[0], vs[0]
	for _, v := range vs[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}
