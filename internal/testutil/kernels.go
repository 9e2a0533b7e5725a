package testutil

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"
)

// ScenarioLen is the element count of the reference kernel scenario.
const ScenarioLen = 16

// Scenario returns the reference inputs a = [0..15] and b = [1..16].
func Scenario[T Float]() (a, b []T) {
	a = make([]T, ScenarioLen)
	b = make([]T, ScenarioLen)
	for i := range a {
		a[i] = T(i)
		b[i] = T(i + 1)
	}
	return a, b
}

// DeterministicNoise returns values in [-amplitude, amplitude) from a fixed seed.
func DeterministicNoise[T Float](seed int64, amplitude float64, length int) []T {
	out := make([]T, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = T((rng.Float64()*2 - 1) * amplitude)
	}
	return out
}

// Fill sets every element of dst to v.
func Fill[T Float](dst []T, v T) {
	for i := range dst {
		dst[i] = v
	}
}

// Reference applies op element by element, the way the generic variant does.
func Reference[T Float](a, b []T, op func(x, y T) T) []T {
	out := make([]T, len(a))
	for i := range a {
		out[i] = op(a[i], b[i])
	}
	return out
}

// KernelSizes covers empty input, every tail length of a 16-lane body and a
// few sizes spanning several unrolled iterations.
var KernelSizes = []int{0, 1, 2, 3, 4, 5, 7, 8, 9, 15, 16, 17, 31, 32, 33, 63, 64, 65, 100, 1000, 1027}

// SizeStr names a subtest after an element count.
func SizeStr(n int) string {
	if n >= 1024 {
		return fmt.Sprintf("%dK", n/1024)
	}
	return fmt.Sprintf("%d", n)
}

// CheckKernel runs the shared conformance suite against one element-wise
// kernel: the reference scenario, every size in KernelSizes on noise input,
// unaligned slices, dst aliasing either input, zero length and length mismatch.
func CheckKernel[T Float](t *testing.T, kernel func(dst, a, b []T), op func(x, y T) T) {
	t.Helper()

	t.Run("scenario", func(t *testing.T) {
		a, b := Scenario[T]()
		dst := make([]T, ScenarioLen)
		kernel(dst, a, b)
		RequireSliceEqual(t, dst, Reference(a, b, op))
	})

	t.Run("sizes", func(t *testing.T) {
		for _, n := range KernelSizes {
			t.Run(SizeStr(n), func(t *testing.T) {
				a := DeterministicNoise[T](int64(n)+1, 100, n)
				b := DeterministicNoise[T](int64(n)+1000, 100, n)
				dst := make([]T, n)
				kernel(dst, a, b)
				RequireSliceEqual(t, dst, Reference(a, b, op))
			})
		}
	})

	t.Run("unaligned", func(t *testing.T) {
		const n = 67
		a := DeterministicNoise[T](7, 10, n+1)[1:]
		b := DeterministicNoise[T](8, 10, n+3)[3:]
		dst := make([]T, n+2)[2:]
		kernel(dst, a, b)
		RequireSliceEqual(t, dst, Reference(a, b, op))
	})

	t.Run("alias first input", func(t *testing.T) {
		const n = 41
		a := DeterministicNoise[T](11, 10, n)
		b := DeterministicNoise[T](12, 10, n)
		want := Reference(a, b, op)
		kernel(a, a, b)
		RequireSliceEqual(t, a, want)
	})

	t.Run("alias second input", func(t *testing.T) {
		const n = 41
		a := DeterministicNoise[T](13, 10, n)
		b := DeterministicNoise[T](14, 10, n)
		want := Reference(a, b, op)
		kernel(b, a, b)
		RequireSliceEqual(t, b, want)
	})

	t.Run("zero length", func(t *testing.T) {
		const sentinel = 42
		dst := make([]T, 4)
		Fill(dst, sentinel)
		a, b := Scenario[T]()
		kernel(dst[:0], a[:0], b[:0])
		kernel(nil, nil, nil)
		for i, v := range dst {
			if v != sentinel {
				t.Fatalf("dst[%d] = %v modified by zero-length call", i, v)
			}
		}
	})

	t.Run("length mismatch", func(t *testing.T) {
		RequireLengthPanic(t, func() {
			kernel(make([]T, 4), make([]T, 4), make([]T, 3))
		})
		RequireLengthPanic(t, func() {
			kernel(make([]T, 5), make([]T, 4), make([]T, 4))
		})
	})
}

// RequireLengthPanic fails t unless fn panics with the slice length mismatch
// message.
func RequireLengthPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatal("expected panic for slice length mismatch")
		}
		if msg := fmt.Sprint(r); !strings.Contains(msg, "slice length mismatch") {
			t.Fatalf("unexpected panic: %v", msg)
		}
	}()
	fn()
}

// Add, Sub and Mul are the scalar references for CheckKernel.
func Add[T Float](x, y T) T { return x + y }
func Sub[T Float](x, y T) T { return x - y }
func Mul[T Float](x, y T) T { return x * y }
