// Package hwy provides the portable lane container and platform dispatch
// report shared by the contrib packages.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-highway-cmplx/hwy"
//
//	v := hwy.Load(data)
//	hwy.Store(v, output)
package hwy

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// Vec is a portable vector handle. In base (scalar) mode it wraps a slice
// holding at most MaxLanes elements.
//
// Vec instances should not be created directly; use Load or Set instead.
type Vec[T Floats] struct {
	data []T
}

// NumLanes returns the number of lanes (elements) in this vector.
func (v Vec[T]) NumLanes() int {
	return len(v.data)
}

// Data returns the underlying slice representation of the vector.
// This is primarily for testing and should not be used in performance-critical code.
func (v Vec[T]) Data() []T {
	return v.data
}

// Store writes the vector's data to a slice.
// This is the method form of the hwy.Store function.
func (v Vec[T]) Store(dst []T) {
	n := len(v.data)
	if len(dst) < n {
		n = len(dst)
	}
	copy(dst[:n], v.data[:n])
}
