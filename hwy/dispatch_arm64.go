//go:build arm64

package hwy

import "golang.org/x/sys/cpu"

func init() {
	// FMA is part of the ARMv8-A floating-point base.
	hasFMA = cpu.ARM64.HasFP

	if NoSimdEnv() {
		setScalarMode()
		return
	}

	// cpu.ARM64.HasASIMD is always true for ARMv8+.
	if cpu.ARM64.HasASIMD {
		currentLevel = DispatchNEON
		currentWidth = 16 // NEON is 128-bit (16 bytes)
	} else {
		setScalarMode()
	}
}
