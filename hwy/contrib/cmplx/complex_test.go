package cmplx

import (
	stdmath "math"
	"testing"
)

func TestString(t *testing.T) {
	tests := []struct {
		z    Complex[float64]
		want string
	}{
		{New(1.0, 2.0), "(1+2i)"},
		{New(stdmath.Inf(-1), 0), "(-Inf+0i)"},
		{New(0.5, -0.25), "(0.5-0.25i)"},
		{New(stdmath.NaN(), stdmath.Inf(1)), "(NaN+Infi)"},
	}

	for _, tt := range tests {
		if got := tt.z.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestConversions(t *testing.T) {
	c := complex(1.5, -2.5)
	z := FromComplex128[float32](c)
	if z.Real() != 1.5 || z.Imag() != -2.5 {
		t.Errorf("FromComplex128(%v) = %v", c, z)
	}
	if got := z.Complex64(); got != complex64(c) {
		t.Errorf("Complex64() = %v, want %v", got, complex64(c))
	}
	if got := FromComplex64[float64](complex64(c)).Complex128(); got != c {
		t.Errorf("Complex128() = %v, want %v", got, c)
	}
}

func TestSameFloat(t *testing.T) {
	negZero := stdmath.Copysign(0, -1)
	nan := stdmath.NaN()
	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"equal", 1, 1, true},
		{"unequal", 1, 2, false},
		{"+0/-0", 0, negZero, false},
		{"-0/-0", negZero, negZero, true},
		{"NaN/NaN", nan, nan, true},
		{"NaN/1", nan, 1, false},
		{"1/NaN", 1, nan, false},
		{"Inf/Inf", stdmath.Inf(1), stdmath.Inf(1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SameFloat(tt.x, tt.y); got != tt.want {
				t.Errorf("SameFloat(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestEqualVersusIdentical(t *testing.T) {
	a := New(0.0, 1.0)
	b := New(stdmath.Copysign(0, -1), 1.0)
	if !Equal(a, b) {
		t.Errorf("Equal(%v, %v) = false, want true", a, b)
	}
	if Identical(a, b) {
		t.Errorf("Identical(%v, %v) = true, want false", a, b)
	}

	n := New(stdmath.NaN(), 0.0)
	if Equal(n, n) {
		t.Errorf("Equal(%v, %v) = true, want false", n, n)
	}
	if !Identical(n, n) {
		t.Errorf("Identical(%v, %v) = false, want true", n, n)
	}
}

func TestClassPredicates(t *testing.T) {
	inf := stdmath.Inf(1)
	nan := stdmath.NaN()
	if !New(inf, nan).IsInf() || New(inf, nan).IsNaN() {
		t.Error("Inf+iNaN should be infinite, not NaN")
	}
	if !New(1, nan).IsNaN() {
		t.Error("1+iNaN should be NaN")
	}
	if New(1.0, 2.0).IsNaN() || New(1.0, 2.0).IsInf() {
		t.Error("1+2i should be neither NaN nor infinite")
	}
	if !IsNaN(NaN[float32]()) || !IsInf(Inf[float32](-1), -1) {
		t.Error("NaN/Inf constructors for float32 are wrong")
	}
	if !Signbit(stdmath.Copysign(0, -1)) || Signbit(0.0) {
		t.Error("Signbit does not distinguish signed zeros")
	}
}

func TestDivReal(t *testing.T) {
	got := New(stdmath.Copysign(0, -1), stdmath.NaN()).DivReal(2)
	if !Signbit(got.Re) || got.Re != 0 {
		t.Errorf("DivReal kept Re = %v, want -0", got.Re)
	}
	if !IsNaN(got.Im) {
		t.Errorf("DivReal Im = %v, want NaN", got.Im)
	}
}
