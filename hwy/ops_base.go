package hwy

// Load creates a vector by loading up to MaxLanes elements from src.
func Load[T Floats](src []T) Vec[T] {
	n := min(len(src), MaxLanes[T]())
	data := make([]T, n)
	copy(data, src[:n])
	return Vec[T]{data: data}
}

// Set creates a vector with every lane set to value.
func Set[T Floats](value T) Vec[T] {
	data := make([]T, MaxLanes[T]())
	for i := range data {
		data[i] = value
	}
	return Vec[T]{data: data}
}

// Store writes the vector's lanes to dst.
func Store[T Floats](v Vec[T], dst []T) {
	v.Store(dst)
}
