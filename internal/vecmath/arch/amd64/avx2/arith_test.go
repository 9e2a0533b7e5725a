//go:build amd64 && !purego

package avx2

import (
	"testing"

	"github.com/cwbudde/algo-dynemit/cpu"
	"github.com/cwbudde/algo-dynemit/internal/testutil"
)

func requireAVX2(tb testing.TB) {
	tb.Helper()
	if !cpu.Supports(cpu.Probe(), cpu.SIMDAVX2) {
		tb.Skip("CPU does not support AVX2")
	}
}

func TestAddF32_AVX2(t *testing.T) {
	requireAVX2(t)
	testutil.CheckKernel(t, AddF32, testutil.Add[float32])
}

func TestSubF32_AVX2(t *testing.T) {
	requireAVX2(t)
	testutil.CheckKernel(t, SubF32, testutil.Sub[float32])
}

func TestMulF32_AVX2(t *testing.T) {
	requireAVX2(t)
	testutil.CheckKernel(t, MulF32, testutil.Mul[float32])
}

func TestMulF64_AVX2(t *testing.T) {
	requireAVX2(t)
	testutil.CheckKernel(t, MulF64, testutil.Mul[float64])
}

func BenchmarkMulF32_AVX2_Direct(b *testing.B) {
	requireAVX2(b)
	sizes := []int{16, 64, 256, 1024, 4096}

	for _, n := range sizes {
		b.Run(testutil.SizeStr(n), func(b *testing.B) {
			dst := make([]float32, n)
			a := make([]float32, n)
			src := make([]float32, n)

			b.ResetTimer()
			b.ReportAllocs()

			for i := 0; i < b.N; i++ {
				MulF32(dst, a, src)
			}

			b.SetBytes(int64(n) * 4 * 3)
		})
	}
}

func TestAliasedDestination_AVX2(t *testing.T) {
	requireAVX2(t)

	kernels := []struct {
		name   string
		kernel func(dst, a, b []float32)
		op     func(x, y float32) float32
	}{
		{"add", AddF32, testutil.Add[float32]},
		{"sub", SubF32, testutil.Sub[float32]},
		{"mul", MulF32, testutil.Mul[float32]},
	}

	const n = 37
	for _, k := range kernels {
		t.Run(k.name+"/dst=a", func(t *testing.T) {
			a := testutil.DeterministicNoise[float32](1, 10, n)
			b := testutil.DeterministicNoise[float32](2, 10, n)
			want := testutil.Reference(a, b, k.op)
			k.kernel(a, a, b)
			testutil.RequireSliceEqual(t, a, want)
		})
		t.Run(k.name+"/dst=b", func(t *testing.T) {
			a := testutil.DeterministicNoise[float32](3, 10, n)
			b := testutil.DeterministicNoise[float32](4, 10, n)
			want := testutil.Reference(a, b, k.op)
			k.kernel(b, a, b)
			testutil.RequireSliceEqual(t, b, want)
		})
		t.Run(k.name+"/dst=a=b", func(t *testing.T) {
			a := testutil.DeterministicNoise[float32](5, 10, n)
			want := testutil.Reference(a, a, k.op)
			k.kernel(a, a, a)
			testutil.RequireSliceEqual(t, a, want)
		})
	}
}
