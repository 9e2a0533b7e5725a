package vecmath

import (
	"github.com/cwbudde/algo-dynemit/cpu"
	"github.com/cwbudde/algo-dynemit/internal/vecmath/registry"
)

// DispatchedVariant names the exported entry points in SelfCheck results.
const DispatchedVariant = "dispatched"

const checkLen = 16

// CheckResult is the outcome of running the reference inputs through one
// operation of one variant.
type CheckResult struct {
	Variant string  `json:"variant" yaml:"variant"`
	Op      string  `json:"op" yaml:"op"`
	OK      bool    `json:"ok" yaml:"ok"`
	Index   int     `json:"index,omitempty" yaml:"index,omitempty"`
	Got     float64 `json:"got,omitempty" yaml:"got,omitempty"`
	Want    float64 `json:"want,omitempty" yaml:"want,omitempty"`
}

// SelfCheck runs a = [0..15], b = [1..16] through the exported operations and
// through every registered variant that level can execute. A failed result
// records the first differing element.
func SelfCheck(level cpu.SIMDLevel) []CheckResult {
	dispatched := registry.OpEntry{
		Name:   DispatchedVariant,
		AddF32: AddF32,
		SubF32: SubF32,
		MulF32: MulF32,
		MulF64: MulF64,
	}

	results := checkEntry(&dispatched)
	for _, e := range registry.Global.Executable(level) {
		results = append(results, checkEntry(&e)...)
	}
	return results
}

func checkEntry(e *registry.OpEntry) []CheckResult {
	a32 := make([]float32, checkLen)
	b32 := make([]float32, checkLen)
	a64 := make([]float64, checkLen)
	b64 := make([]float64, checkLen)
	for i := 0; i < checkLen; i++ {
		a32[i], b32[i] = float32(i), float32(i+1)
		a64[i], b64[i] = float64(i), float64(i+1)
	}

	var out []CheckResult
	for _, op := range registry.Ops() {
		if !e.Has(op) {
			continue
		}
		var got, want []float64
		switch op {
		case registry.OpAddF32:
			got, want = run32(e.AddF32, a32, b32), ref(a64, b64, func(x, y float64) float64 { return x + y })
		case registry.OpSubF32:
			got, want = run32(e.SubF32, a32, b32), ref(a64, b64, func(x, y float64) float64 { return x - y })
		case registry.OpMulF32:
			got, want = run32(e.MulF32, a32, b32), ref(a64, b64, func(x, y float64) float64 { return x * y })
		case registry.OpMulF64:
			got = make([]float64, checkLen)
			e.MulF64(got, a64, b64)
			want = ref(a64, b64, func(x, y float64) float64 { return x * y })
		}
		out = append(out, compare(e.Name, op, got, want))
	}
	return out
}

func run32(k registry.Kernel32, a, b []float32) []float64 {
	dst := make([]float32, len(a))
	k(dst, a, b)
	out := make([]float64, len(dst))
	for i, v := range dst {
		out[i] = float64(v)
	}
	return out
}

func ref(a, b []float64, op func(x, y float64) float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = op(a[i], b[i])
	}
	return out
}

func compare(variant string, op registry.Op, got, want []float64) CheckResult {
	for i := range want {
		if got[i] != want[i] {
			return CheckResult{Variant: variant, Op: op.String(), Index: i, Got: got[i], Want: want[i]}
		}
	}
	return CheckResult{Variant: variant, Op: op.String(), OK: true}
}
