package conformance

import (
	"fmt"
)

// Component names one part of a complex result.
type Component string

const (
	Real Component = "real"
	Imag Component = "imag"
)

// Reason says which assertion a Mismatch broke.
type Reason string

const (
	// ReasonNaN means Log10 produced NaN where the reference did not.
	ReasonNaN Reason = "nan"
	// ReasonValue means the two values compare unequal.
	ReasonValue Reason = "value"
	// ReasonSignbit means the values are equal but the signs of zero differ.
	ReasonSignbit Reason = "signbit"
)

// Mismatch is the single failure kind of a conformance run: Log10
// disagreed with the expected value on one component of one input.
type Mismatch struct {
	Suite     Suite
	Index     int // position in the test-vector table, -1 for boundary checks
	Input     complex128
	Component Component
	Got       float64
	Want      float64
	Reason    Reason
}

func (m *Mismatch) Error() string {
	where := m.Suite.String()
	if m.Index >= 0 {
		where = fmt.Sprintf("%s[%d]", m.Suite, m.Index)
	}
	return fmt.Sprintf("%s: log10%v: %s part %s mismatch: got %v, want %v",
		where, m.Input, m.Component, m.Reason, m.Got, m.Want)
}
