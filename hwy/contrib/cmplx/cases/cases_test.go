package cases

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTestcasesLayout(t *testing.T) {
	tc := Testcases()
	require.Len(t, tc, Len())
	require.Equal(t, 137, len(tc))

	assert.Equal(t, complex(1e-6, 1e-6), tc[0])
	assert.Equal(t, complex(-1e-6, 1e-6), tc[1])
	assert.Equal(t, complex(1e+6, -1e+6), tc[15])

	// First grid entry is NaN+iNaN, last is +Inf+iInf.
	assert.True(t, math.IsNaN(real(tc[16])) && math.IsNaN(imag(tc[16])))
	assert.Equal(t, complex(math.Inf(1), math.Inf(1)), tc[len(tc)-1])
}

func TestTestcasesFreshCopy(t *testing.T) {
	a := Testcases()
	a[0] = 42
	b := Testcases()
	assert.NotEqual(t, complex128(42), b[0])
}

func TestTestcasesSignedZeros(t *testing.T) {
	var posPos, negNeg bool
	for _, z := range Testcases() {
		if Classify(z) != Zero {
			continue
		}
		switch {
		case !math.Signbit(real(z)) && !math.Signbit(imag(z)):
			posPos = true
		case math.Signbit(real(z)) && math.Signbit(imag(z)):
			negNeg = true
		}
	}
	assert.True(t, posPos, "table is missing +0+0i")
	assert.True(t, negNeg, "table is missing -0-0i")
}

func TestClassify(t *testing.T) {
	inf := math.Inf(1)
	nan := math.NaN()
	negZero := math.Copysign(0, -1)
	tests := []struct {
		z    complex128
		want Class
	}{
		{complex(0, 0), Zero},
		{complex(negZero, negZero), Zero},
		{complex(1, 0), NonZero},
		{complex(0, -2), NonZero},
		{complex(inf, 0), Inf},
		{complex(nan, -inf), Inf},
		{complex(inf, nan), Inf},
		{complex(nan, nan), NaN},
		{complex(nan, 0), NaN},
		{complex(negZero, nan), NaN},
		{complex(nan, 0.5), NonZeroNaN},
		{complex(-2, nan), NonZeroNaN},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.z), "Classify(%v)", tt.z)
	}
}

func TestClassString(t *testing.T) {
	assert.Equal(t, "zero", Zero.String())
	assert.Equal(t, "non_zero_nan", NonZeroNaN.String())
	assert.Equal(t, "unknown", Class(42).String())
}

func TestByClassAndHistogram(t *testing.T) {
	hist := Histogram()
	total := 0
	for class, n := range hist {
		total += n
		assert.Len(t, ByClass(class), n, "class %v", class)
	}
	assert.Equal(t, Len(), total)

	// 4 zeros from the {-0, +0} x {-0, +0} corner of the grid.
	assert.Equal(t, 4, hist[Zero])
	// Every grid pairing with an infinite part: 121 - 9*9.
	assert.Equal(t, 40, hist[Inf])
	// NaN+iNaN plus the NaN pairings with signed zeros.
	assert.Equal(t, 5, hist[NaN])
}
