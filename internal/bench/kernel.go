package bench

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-dynemit/cpu"
	"github.com/cwbudde/algo-dynemit/internal/vecmath"
)

// ErrLevelUnsupported is returned when a forced level exceeds what the CPU
// can execute.
var ErrLevelUnsupported = errors.New("bench: SIMD level not supported by this CPU")

// DispatchedKernel returns the exported multiply, bound through the
// process-wide detector.
func DispatchedKernel() Kernel {
	return vecmath.MulF32
}

// ForcedKernel returns the multiply variant that dispatch would pick at level.
// It refuses levels above detected, which would fault on an illegal
// instruction.
func ForcedKernel(level, detected cpu.SIMDLevel) (Kernel, error) {
	if !level.Valid() {
		return nil, fmt.Errorf("%w: %d", cpu.ErrUnknownLevel, int(level))
	}
	if !cpu.Supports(detected, level) {
		return nil, fmt.Errorf("%w: %s exceeds detected %s", ErrLevelUnsupported, level, detected)
	}
	ops := vecmath.NewOps(cpu.NewDetector(func() cpu.SIMDLevel { return level }), nil)
	return ops.MulF32, nil
}
