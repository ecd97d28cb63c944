//go:build !amd64 && !arm64

package hwy

func init() {
	// Other architectures are reported as scalar.
	setScalarMode()
}
