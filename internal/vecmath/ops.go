// Package vecmath exposes the dispatched element-wise vector operations.
//
// Each operation is a dispatch.Func whose selector asks the implementation
// registry for the highest-priority variant the detected SIMD level can run.
// The variant is fixed on first call.
package vecmath

import (
	"sync/atomic"

	"github.com/cwbudde/algo-dynemit/cpu"
	"github.com/cwbudde/algo-dynemit/dispatch"
	"github.com/cwbudde/algo-dynemit/internal/vecmath/registry"
)

// Ops is one set of bound operations. The package-level functions use a set
// backed by the process-wide detector and registry.
type Ops struct {
	addF32 *dispatch.Func[registry.Kernel32]
	subF32 *dispatch.Func[registry.Kernel32]
	mulF32 *dispatch.Func[registry.Kernel32]
	mulF64 *dispatch.Func[registry.Kernel64]

	// variants holds the registry entry name each operation bound to, indexed
	// by registry.Op. It is written inside the resolution, before the target.
	variants [registry.OpMulF64 + 1]atomic.Pointer[string]
}

// Unbound is the variant name reported for an operation not yet resolved.
const Unbound = "unbound"

// NewOps returns an unbound operation set. A nil det means cpu.Default(),
// a nil reg means registry.Global.
func NewOps(det *cpu.Detector, reg *registry.OpRegistry) *Ops {
	if reg == nil {
		reg = registry.Global
	}
	o := &Ops{}
	o.addF32 = newFunc(det, registry.OpAddF32, selectRecorded(o, reg, registry.OpAddF32, func(e *registry.OpEntry) registry.Kernel32 { return e.AddF32 }))
	o.subF32 = newFunc(det, registry.OpSubF32, selectRecorded(o, reg, registry.OpSubF32, func(e *registry.OpEntry) registry.Kernel32 { return e.SubF32 }))
	o.mulF32 = newFunc(det, registry.OpMulF32, selectRecorded(o, reg, registry.OpMulF32, func(e *registry.OpEntry) registry.Kernel32 { return e.MulF32 }))
	o.mulF64 = newFunc(det, registry.OpMulF64, selectRecorded(o, reg, registry.OpMulF64, func(e *registry.OpEntry) registry.Kernel64 { return e.MulF64 }))
	return o
}

func newFunc[F any](det *cpu.Detector, op registry.Op, sel dispatch.Selector[F]) *dispatch.Func[F] {
	return dispatch.NewFunc(dispatch.Resolver[F]{
		Name:     op.String(),
		Detector: det,
		Select:   sel,
	})
}

// Select builds a selector that returns field of the best registry entry
// implementing op. It yields the zero value when nothing qualifies, which the
// resolver treats as a broken dispatch table.
func Select[F any](reg *registry.OpRegistry, op registry.Op, field func(*registry.OpEntry) F) dispatch.Selector[F] {
	return selectEntry(reg, op, field, nil)
}

// selectRecorded is Select that also remembers the chosen entry's name.
func selectRecorded[F any](o *Ops, reg *registry.OpRegistry, op registry.Op, field func(*registry.OpEntry) F) dispatch.Selector[F] {
	return selectEntry(reg, op, field, func(name string) {
		o.variants[op].Store(&name)
	})
}

func selectEntry[F any](reg *registry.OpRegistry, op registry.Op, field func(*registry.OpEntry) F, picked func(name string)) dispatch.Selector[F] {
	return func(level cpu.SIMDLevel) F {
		entry := reg.LookupOp(level, op)
		if entry == nil {
			var zero F
			return zero
		}
		if picked != nil {
			picked(entry.Name)
		}
		return field(entry)
	}
}

// AddF32 computes dst[i] = a[i] + b[i] through this set's bound variant.
func (o *Ops) AddF32(dst, a, b []float32) { o.addF32.Get()(dst, a, b) }

// SubF32 computes dst[i] = a[i] - b[i] through this set's bound variant.
func (o *Ops) SubF32(dst, a, b []float32) { o.subF32.Get()(dst, a, b) }

// MulF32 computes dst[i] = a[i] * b[i] through this set's bound variant.
func (o *Ops) MulF32(dst, a, b []float32) { o.mulF32.Get()(dst, a, b) }

// MulF64 is MulF32 for float64 slices.
func (o *Ops) MulF64(dst, a, b []float64) { o.mulF64.Get()(dst, a, b) }

// Bind resolves every operation now instead of on first call.
func (o *Ops) Bind() {
	o.addF32.Bind()
	o.subF32.Bind()
	o.mulF32.Bind()
	o.mulF64.Bind()
}

// Bound reports, per operation, whether its call target has been fixed.
func (o *Ops) Bound() map[registry.Op]bool {
	return map[registry.Op]bool{
		registry.OpAddF32: o.addF32.Bound(),
		registry.OpSubF32: o.subF32.Bound(),
		registry.OpMulF32: o.mulF32.Bound(),
		registry.OpMulF64: o.mulF64.Bound(),
	}
}

var std = NewOps(nil, nil)

// AddF32 performs element-wise addition: dst[i] = a[i] + b[i].
// Slices must have equal length. Panics if lengths differ.
func AddF32(dst, a, b []float32) { std.addF32.Get()(dst, a, b) }

// SubF32 performs element-wise subtraction: dst[i] = a[i] - b[i].
// Slices must have equal length. Panics if lengths differ.
func SubF32(dst, a, b []float32) { std.subF32.Get()(dst, a, b) }

// MulF32 performs element-wise multiplication: dst[i] = a[i] * b[i].
// Slices must have equal length. Panics if lengths differ.
func MulF32(dst, a, b []float32) { std.mulF32.Get()(dst, a, b) }

// MulF64 is MulF32 for float64 slices.
func MulF64(dst, a, b []float64) { std.mulF64.Get()(dst, a, b) }

// Bind eagerly binds the package-level operations.
func Bind() { std.Bind() }

// Binding describes which registered variant serves an operation.
type Binding struct {
	Op      string `json:"op" yaml:"op"`
	Variant string `json:"variant" yaml:"variant"`
}

// Variants reports the variant each operation is bound to, or Unbound for
// operations not called or bound yet. It never triggers a resolution.
func (o *Ops) Variants() []Binding {
	ops := registry.Ops()
	out := make([]Binding, 0, len(ops))
	for _, op := range ops {
		name := Unbound
		if p := o.variants[op].Load(); p != nil {
			name = *p
		}
		out = append(out, Binding{Op: op.String(), Variant: name})
	}
	return out
}

// Variants reports the bindings of the package-level operations.
func Variants() []Binding { return std.Variants() }
