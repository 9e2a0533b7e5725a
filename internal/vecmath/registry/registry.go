// Package registry provides the implementation registry for the dispatched
// vector operations.
//
// Several implementation variants (generic, SSE2, AVX, AVX2, AVX-512) coexist
// in one binary. Each architecture package registers an OpEntry from init(),
// and the vecmath selectors ask the registry for the best entry a given SIMD
// level can execute.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-dynemit/cpu"
)

// Kernel32 is the shape of every float32 element-wise operation:
// dst[i] = a[i] op b[i].
type Kernel32 func(dst, a, b []float32)

// Kernel64 is the float64 counterpart of Kernel32.
type Kernel64 func(dst, a, b []float64)

// Op names an operation slot in an OpEntry.
type Op int

const (
	OpAddF32 Op = iota
	OpSubF32
	OpMulF32
	OpMulF64
)

// Ops lists every operation slot in declaration order.
func Ops() []Op {
	return []Op{OpAddF32, OpSubF32, OpMulF32, OpMulF64}
}

// String returns the operation name used in logs and reports.
func (o Op) String() string {
	switch o {
	case OpAddF32:
		return "vector_add_f32"
	case OpSubF32:
		return "vector_sub_f32"
	case OpMulF32:
		return "vector_mul_f32"
	case OpMulF64:
		return "vector_mul_f64"
	default:
		return "unknown"
	}
}

// OpEntry represents a registered implementation variant.
//
// Not all fields need to be populated; a variant only fills in the operations
// it accelerates and lookups fall through to a lower-priority entry for the rest.
type OpEntry struct {
	// Name is a human-readable identifier for this implementation (e.g., "avx2").
	Name string

	// SIMDLevel is the lowest tier able to execute this implementation.
	SIMDLevel cpu.SIMDLevel

	// Priority determines selection order when multiple compatible implementations exist.
	// Higher priority implementations are preferred. Suggested priorities:
	//   - Generic (SIMDScalar): 0
	//   - SSE2: 10
	//   - AVX: 15
	//   - AVX2: 20
	//   - AVX-512: 30
	Priority int

	// AddF32 performs element-wise addition: dst[i] = a[i] + b[i].
	AddF32 Kernel32

	// SubF32 performs element-wise subtraction: dst[i] = a[i] - b[i].
	SubF32 Kernel32

	// MulF32 performs element-wise multiplication: dst[i] = a[i] * b[i].
	MulF32 Kernel32

	// MulF64 performs element-wise multiplication on float64 slices.
	MulF64 Kernel64
}

// Has reports whether the entry implements op.
func (e *OpEntry) Has(op Op) bool {
	switch op {
	case OpAddF32:
		return e.AddF32 != nil
	case OpSubF32:
		return e.SubF32 != nil
	case OpMulF32:
		return e.MulF32 != nil
	case OpMulF64:
		return e.MulF64 != nil
	default:
		return false
	}
}

// OpRegistry manages the registration and lookup of implementation variants.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool // true if entries are sorted by priority (descending)
}

// Global is the default registry instance used by all dispatched operations.
var Global = &OpRegistry{}

// Register adds an implementation variant to the registry.
//
// This function is typically called from init() functions in architecture-specific
// implementation packages. It is safe to call concurrently, but all registrations
// should complete before the first call to Lookup().
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority entry that level can execute, or nil if
// none is registered.
func (r *OpRegistry) Lookup(level cpu.SIMDLevel) *OpEntry {
	return r.find(level, func(*OpEntry) bool { return true })
}

// LookupOp returns the highest-priority entry that level can execute and that
// implements op. It returns nil only when no registered entry qualifies, which
// cannot happen once the generic package is linked in.
func (r *OpRegistry) LookupOp(level cpu.SIMDLevel, op Op) *OpEntry {
	return r.find(level, func(e *OpEntry) bool { return e.Has(op) })
}

func (r *OpRegistry) find(level cpu.SIMDLevel, accept func(*OpEntry) bool) *OpEntry {
	r.ensureSorted()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if cpu.Supports(level, entry.SIMDLevel) && accept(entry) {
			return entry
		}
	}
	return nil
}

func (r *OpRegistry) ensureSorted() {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()
}

// sortByPriority sorts entries by priority in descending order.
// Must be called with r.mu held (write lock).
func (r *OpRegistry) sortByPriority() {
	// Simple insertion sort (registry is small, ~5 entries)
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// ListEntries returns a copy of all registered entries, sorted by priority.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.ensureSorted()

	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Executable returns the entries that level can execute, highest priority first.
func (r *OpRegistry) Executable(level cpu.SIMDLevel) []OpEntry {
	var out []OpEntry
	for _, e := range r.ListEntries() {
		if cpu.Supports(level, e.SIMDLevel) {
			out = append(out, e)
		}
	}
	return out
}

// Reset clears all registered entries.
// This function is intended for testing purposes only.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}
