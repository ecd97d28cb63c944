package cmplx

import "github.com/ajroetker/go-highway-cmplx/hwy"

// Equal reports IEEE equality of both parts: NaN is unequal to everything
// and +0 equals -0.
func Equal[T hwy.Floats](a, b Complex[T]) bool {
	return a.Re == b.Re && a.Im == b.Im
}

// Identical reports whether a and b agree part by part where NaN matches
// any NaN and a zero only matches a zero of the same sign.
func Identical[T hwy.Floats](a, b Complex[T]) bool {
	return SameFloat(a.Re, b.Re) && SameFloat(a.Im, b.Im)
}

// SameFloat is the single-part rule behind Identical.
func SameFloat[T hwy.Floats](x, y T) bool {
	if IsNaN(x) || IsNaN(y) {
		return IsNaN(x) && IsNaN(y)
	}
	return x == y && Signbit(x) == Signbit(y)
}
