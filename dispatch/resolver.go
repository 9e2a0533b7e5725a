// Package dispatch binds an exported operation to the implementation variant
// that matches the CPU.
//
// An operation author supplies a Selector, a pure mapping from SIMD level to
// variant. A Resolver wraps the selector with the shared detection and
// fail-fast rules, and a Func fixes the resolved variant as the permanent call
// target on first use.
//
//	var addF32 = dispatch.NewFunc(dispatch.Resolver[func(dst, a, b []float32)]{
//		Name:   "vector_add_f32",
//		Select: selectAddF32,
//	})
//
//	func AddF32(dst, a, b []float32) { addF32.Get()(dst, a, b) }
package dispatch

import (
	"os"
	"reflect"

	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-dynemit/cpu"
	"github.com/cwbudde/algo-dynemit/internal/logging"
)

// TrapExitCode is the exit status of a process killed by a resolver trap.
// It matches the status shells report for SIGABRT.
const TrapExitCode = 134

// Selector maps a SIMD level to a variant. It must return a usable variant for
// every level, typically by falling back to a lower-level implementation.
type Selector[F any] func(level cpu.SIMDLevel) F

// Resolver turns a Selector into a never-nil resolution step.
type Resolver[F any] struct {
	// Name identifies the operation in logs and trap messages.
	Name string

	// Detector supplies the level. Nil means cpu.Default().
	Detector *cpu.Detector

	// Select picks the variant for a level.
	Select Selector[F]
}

func (r Resolver[F]) detector() *cpu.Detector {
	if r.Detector != nil {
		return r.Detector
	}
	return cpu.Default()
}

// Resolve reads the cached level and returns the selected variant.
//
// If the selector is missing or yields a nil variant the dispatch table is
// broken. Resolve then logs a fatal entry and terminates the process with
// TrapExitCode; it never returns nil and never panics, so no caller frame can
// observe or recover an unusable binding.
func (r Resolver[F]) Resolve() F {
	level := r.detector().Level()

	if r.Select == nil {
		trap(r.Name, level, "no selector")
	}

	variant := r.Select(level)
	if isNil(variant) {
		trap(r.Name, level, "selector returned no variant")
	}

	logging.WithComponent("dispatch").
		WithField("operation", r.Name).
		WithField("simd_level", level.String()).
		Debug("variant resolved")

	return variant
}

// isNil reports whether v holds no usable value. Variants are usually func
// values, which compare unequal to a nil interface even when nil.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Func, reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// trap terminates the process. os.Exit skips deferred calls, so nothing that
// assumes a bound operation gets to run after this point.
func trap(name string, level cpu.SIMDLevel, reason string) {
	logging.WithComponent("dispatch").
		WithField("operation", name).
		WithField("simd_level", level.String()).
		Log(logrus.FatalLevel, reason)
	os.Exit(TrapExitCode)
}
