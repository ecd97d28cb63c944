package conformance

import (
	"math"
	stdcmplx "math/cmplx"

	"github.com/ajroetker/go-highway-cmplx/hwy"
	"github.com/ajroetker/go-highway-cmplx/hwy/contrib/cmplx"
)

// CheckComponent applies the per-component rule shared by every check.
//
// If got is NaN, want must be NaN too. Otherwise, when exact is set, got
// must equal want and carry the same sign bit. With exact unset only the
// NaN rule applies.
func CheckComponent(got, want float64, exact bool) (Reason, bool) {
	if math.IsNaN(got) {
		if !math.IsNaN(want) {
			return ReasonNaN, false
		}
		return "", true
	}
	if !exact {
		return "", true
	}
	if got != want {
		return ReasonValue, false
	}
	if math.Signbit(got) != math.Signbit(want) {
		return ReasonSignbit, false
	}
	return "", true
}

// checkPair runs CheckComponent on both parts, real first.
func checkPair(suite Suite, index int, input complex128, got, want complex128, exact bool) error {
	if reason, ok := CheckComponent(real(got), real(want), exact); !ok {
		return &Mismatch{
			Suite: suite, Index: index, Input: input, Component: Real,
			Got: real(got), Want: real(want), Reason: reason,
		}
	}
	if reason, ok := CheckComponent(imag(got), imag(want), exact); !ok {
		return &Mismatch{
			Suite: suite, Index: index, Input: input, Component: Imag,
			Got: imag(got), Want: imag(want), Reason: reason,
		}
	}
	return nil
}

// CheckZero asserts that log10(0+0i) is exactly -Inf+0i in precision T,
// including a positive zero imaginary part.
func CheckZero[T hwy.Floats](suite Suite, log10 func(cmplx.Complex[T]) cmplx.Complex[T]) error {
	input := cmplx.New[T](0, 0)
	want := cmplx.New(cmplx.Inf[T](-1), 0)
	got := log10(input)
	return checkPair(suite, -1, input.Complex128(), got.Complex128(), want.Complex128(), true)
}

// Reference computes log(x)/ln(10) with the standard library's complex
// logarithm, dividing each part by the real ln(10).
func Reference(x complex128) complex128 {
	l := stdcmplx.Log(x)
	ln10 := math.Log(10)
	return complex(real(l)/ln10, imag(l)/ln10)
}

// CheckEdges compares log10 against Reference for every vector, in order,
// and returns the first Mismatch. exact selects whether value and
// sign-of-zero agreement is required in addition to NaN agreement.
func CheckEdges(vectors []complex128, log10 func(cmplx.Complex[float64]) cmplx.Complex[float64], exact bool) error {
	for i, x := range vectors {
		r := log10(cmplx.FromComplex128[float64](x)).Complex128()
		z := Reference(x)
		if err := checkPair(SuiteEdges, i, x, r, z, exact); err != nil {
			return err
		}
	}
	return nil
}
