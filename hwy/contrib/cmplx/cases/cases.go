// Package cases holds the shared table of complex test vectors used by the
// conformance checks of the complex transcendental functions, and the
// classification of each vector.
package cases

import (
	"math"

	"github.com/samber/lo"
)

// Class is the category a complex value falls in for edge-case purposes.
type Class int

const (
	// Zero is a value whose parts are both zero, of either sign.
	Zero Class = iota
	// NonZero is a finite value with at least one nonzero part.
	NonZero
	// Inf is a value with at least one infinite part, NaN in the other allowed.
	Inf
	// NaN is a value with a NaN part and a zero or NaN other part.
	NaN
	// NonZeroNaN is a value with a NaN part and a finite nonzero other part.
	NonZeroNaN
)

func (c Class) String() string {
	switch c {
	case Zero:
		return "zero"
	case NonZero:
		return "non_zero"
	case Inf:
		return "inf"
	case NaN:
		return "NaN"
	case NonZeroNaN:
		return "non_zero_nan"
	default:
		return "unknown"
	}
}

// Classify returns the class of z.
func Classify(z complex128) Class {
	re, im := real(z), imag(z)
	switch {
	case z == 0:
		return Zero
	case math.IsInf(re, 0) || math.IsInf(im, 0):
		return Inf
	case math.IsNaN(re) && math.IsNaN(im):
		return NaN
	case math.IsNaN(re):
		if im == 0 {
			return NaN
		}
		return NonZeroNaN
	case math.IsNaN(im):
		if re == 0 {
			return NaN
		}
		return NonZeroNaN
	}
	return NonZero
}

// Magnitudes used for the finite off-grid vectors.
const (
	tiny = 1.e-6
	huge = 1.e+6
)

// gridParts are the values combined pairwise into the 11x11 grid.
// Ordered so the grid runs from NaN through -Inf up to +Inf.
func gridParts() []float64 {
	return []float64{
		math.NaN(),
		math.Inf(-1),
		-2,
		-1,
		-0.5,
		math.Copysign(0, -1),
		0,
		0.5,
		1,
		2,
		math.Inf(1),
	}
}

// Testcases returns the ordered table of test vectors. Each call returns a
// fresh slice the caller may modify.
//
// The table starts with the sixteen sign combinations of (1e-6, 1e-6),
// (1e+6, 1e-6), (1e-6, 1e+6) and (1e+6, 1e+6), then lists every pairing of
// the grid values, row by row on the imaginary part.
func Testcases() []complex128 {
	out := make([]complex128, 0, Len())
	for _, m := range [][2]float64{{tiny, tiny}, {huge, tiny}, {tiny, huge}, {huge, huge}} {
		re, im := m[0], m[1]
		out = append(out,
			complex(re, im),
			complex(-re, im),
			complex(-re, -im),
			complex(re, -im),
		)
	}
	parts := gridParts()
	for _, im := range parts {
		for _, re := range parts {
			out = append(out, complex(re, im))
		}
	}
	return out
}

// Len returns the number of entries in Testcases.
func Len() int {
	n := len(gridParts())
	return 16 + n*n
}

// ByClass returns the test vectors of the given class, in table order.
func ByClass(class Class) []complex128 {
	return lo.Filter(Testcases(), func(z complex128, _ int) bool {
		return Classify(z) == class
	})
}

// Histogram counts the test vectors per class.
func Histogram() map[Class]int {
	return lo.CountValuesBy(Testcases(), Classify)
}
