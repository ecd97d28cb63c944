package cmplx

import (
	stdmath "math"

	"github.com/ajroetker/go-highway-cmplx/hwy"
)

// Abs returns the absolute value (modulus) of z.
//
// Algorithm: stdmath.Hypot on the parts, evaluated in float64 and rounded
// to T, which avoids overflow for large finite parts.
//
// Special cases:
//   - Abs(±Inf+iy) = Abs(x±iInf) = +Inf, even if the other part is NaN
//   - Abs(NaN+iy) = Abs(x+iNaN) = NaN otherwise
func Abs[T hwy.Floats](z Complex[T]) T {
	return T(stdmath.Hypot(float64(z.Re), float64(z.Im)))
}

// Arg returns the principal argument of z, in the range [-Pi, Pi].
//
// Special cases follow stdmath.Atan2(Im, Re), in particular:
//   - Arg(+0+i0) = +0, Arg(-0+i0) = +Pi
//   - Arg(+0-i0) = -0, Arg(-0-i0) = -Pi
func Arg[T hwy.Floats](z Complex[T]) T {
	return T(stdmath.Atan2(float64(z.Im), float64(z.Re)))
}

// Log returns the principal natural logarithm of z: ln|z| + i*Arg(z).
//
// The branch cut runs along the negative real axis; the sign of a zero
// imaginary part selects the side, so Log(-1+i0) = i*Pi and
// Log(-1-i0) = -i*Pi.
//
// Special cases:
//   - Log(±0+i0) = -Inf + i(+0 or +Pi), with the sign of the zero kept
//   - Log(x+iInf) = +Inf + i*Pi/2 for finite x
//   - Log(x+iNaN) = NaN+iNaN for finite x
//   - Log(-Inf+iy) = +Inf + i*Pi for finite positive y
//   - Log(+Inf+iy) = +Inf + i0 for finite positive y
//   - Log(±Inf+iNaN) = +Inf+iNaN
//   - Log(NaN+iInf) = +Inf+iNaN
//   - Log(NaN+iy) = NaN+iNaN for finite y
func Log[T hwy.Floats](z Complex[T]) Complex[T] {
	return Complex[T]{
		Re: T(stdmath.Log(stdmath.Hypot(float64(z.Re), float64(z.Im)))),
		Im: Arg(z),
	}
}

// Log10 returns the principal base-10 logarithm of z.
//
// Algorithm: Log(z) with each part divided by ln(10). Both divisions are
// exact with respect to the sign of zero and pass NaN and Inf through, so
// Log10 inherits every special case of Log, e.g. Log10(0+i0) = -Inf+i0.
func Log10[T hwy.Floats](z Complex[T]) Complex[T] {
	return Log(z).DivReal(ln10[T]())
}

// Log2 returns the principal base-2 logarithm of z.
//
// Special cases: Same as Log10.
func Log2[T hwy.Floats](z Complex[T]) Complex[T] {
	return Log(z).DivReal(ln2[T]())
}

// BaseLog computes Log for each element of input and writes it to output.
// It processes min(len(input), len(output)) elements.
func BaseLog[T hwy.Floats](input, output []Complex[T]) {
	n := min(len(input), len(output))
	for i := 0; i < n; i++ {
		output[i] = Log(input[i])
	}
}

// BaseLog10 computes Log10 for each element of input and writes it to output.
// It processes min(len(input), len(output)) elements.
func BaseLog10[T hwy.Floats](input, output []Complex[T]) {
	n := min(len(input), len(output))
	for i := 0; i < n; i++ {
		output[i] = Log10(input[i])
	}
}

// Log10Vec computes Log10 lane by lane on split-format vectors, where lane
// i of re and im together hold one complex value. The result has as many
// lanes as the shorter input.
func Log10Vec[T hwy.Floats](re, im hwy.Vec[T]) (hwy.Vec[T], hwy.Vec[T]) {
	reData, imData := re.Data(), im.Data()
	n := min(len(reData), len(imData))
	outRe := make([]T, n)
	outIm := make([]T, n)
	for i := 0; i < n; i++ {
		r := Log10(Complex[T]{Re: reData[i], Im: imData[i]})
		outRe[i], outIm[i] = r.Re, r.Im
	}
	return hwy.Load(outRe), hwy.Load(outIm)
}
