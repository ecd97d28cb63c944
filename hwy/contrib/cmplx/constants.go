package cmplx

import (
	stdmath "math"
	"unsafe"

	"github.com/ajroetker/go-highway-cmplx/hwy"
)

// Divisors for the base-changing logarithms. Log10(z) must equal
// Log(z)/math.Log(10) bit for bit, so these come from stdmath.Log and not
// from the math.Ln10 constant.
var (
	ln10_f64 = stdmath.Log(10)
	ln2_f64  = stdmath.Log(2)

	ln10_f32 = float32(ln10_f64)
	ln2_f32  = float32(ln2_f64)
)

// ln10 returns ln(10) in precision T.
func ln10[T hwy.Floats]() T {
	var zero T
	if isFloat32(zero) {
		return T(ln10_f32)
	}
	return T(ln10_f64)
}

// ln2 returns ln(2) in precision T.
func ln2[T hwy.Floats]() T {
	var zero T
	if isFloat32(zero) {
		return T(ln2_f32)
	}
	return T(ln2_f64)
}

func isFloat32[T hwy.Floats](x T) bool {
	return unsafe.Sizeof(x) == 4
}
