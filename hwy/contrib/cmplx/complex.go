package cmplx

import (
	"fmt"
	stdmath "math"

	"github.com/ajroetker/go-highway-cmplx/hwy"
)

// Complex is a complex number with real and imaginary parts of precision T.
// It is an immutable value; all functions return new values.
type Complex[T hwy.Floats] struct {
	Re T
	Im T
}

// New returns re + im*i.
func New[T hwy.Floats](re, im T) Complex[T] {
	return Complex[T]{Re: re, Im: im}
}

// FromComplex128 converts a builtin complex128 to precision T.
func FromComplex128[T hwy.Floats](c complex128) Complex[T] {
	return Complex[T]{Re: T(real(c)), Im: T(imag(c))}
}

// FromComplex64 converts a builtin complex64 to precision T.
func FromComplex64[T hwy.Floats](c complex64) Complex[T] {
	return Complex[T]{Re: T(real(c)), Im: T(imag(c))}
}

// Complex128 returns z as a builtin complex128.
func (z Complex[T]) Complex128() complex128 {
	return complex(float64(z.Re), float64(z.Im))
}

// Complex64 returns z as a builtin complex64, rounding each part to float32.
func (z Complex[T]) Complex64() complex64 {
	return complex(float32(z.Re), float32(z.Im))
}

// Real returns the real part of z.
func (z Complex[T]) Real() T { return z.Re }

// Imag returns the imaginary part of z.
func (z Complex[T]) Imag() T { return z.Im }

// String formats z the way fmt prints builtin complex values, e.g. "(-Inf+0i)".
func (z Complex[T]) String() string {
	return fmt.Sprintf("(%g%+gi)", float64(z.Re), float64(z.Im))
}

// Inf returns positive infinity if sign >= 0, negative infinity if sign < 0.
func Inf[T hwy.Floats](sign int) T {
	return T(stdmath.Inf(sign))
}

// NaN returns an IEEE 754 "not-a-number" value of precision T.
func NaN[T hwy.Floats]() T {
	return T(stdmath.NaN())
}

// IsNaN reports whether x is a NaN.
func IsNaN[T hwy.Floats](x T) bool {
	return x != x
}

// IsInf reports whether x is an infinity, according to sign.
// If sign > 0, IsInf reports whether x is positive infinity.
// If sign < 0, IsInf reports whether x is negative infinity.
// If sign == 0, IsInf reports whether x is either infinity.
func IsInf[T hwy.Floats](x T, sign int) bool {
	return stdmath.IsInf(float64(x), sign)
}

// Signbit reports whether x is negative or negative zero.
func Signbit[T hwy.Floats](x T) bool {
	return stdmath.Signbit(float64(x))
}

// IsNaN reports whether either part of z is NaN and neither is infinite.
func (z Complex[T]) IsNaN() bool {
	if IsInf(z.Re, 0) || IsInf(z.Im, 0) {
		return false
	}
	return IsNaN(z.Re) || IsNaN(z.Im)
}

// IsInf reports whether either part of z is infinite.
func (z Complex[T]) IsInf() bool {
	return IsInf(z.Re, 0) || IsInf(z.Im, 0)
}

// DivReal divides both parts of z by the real value d. The parts are never
// mixed: a signed zero or NaN stays in its own part.
func (z Complex[T]) DivReal(d T) Complex[T] {
	return Complex[T]{Re: z.Re / d, Im: z.Im / d}
}
