package dispatch

import (
	"sync"
	"sync/atomic"
)

// Func is a lazily bound call target for one operation.
//
// The first Get (or Bind) runs the resolver exactly once and stores the
// variant; every later call costs one atomic load and a nil check. The stored
// target never changes for the life of the Func.
type Func[F any] struct {
	resolver Resolver[F]
	target   atomic.Pointer[F]
	once     sync.Once
}

// NewFunc returns an unbound Func that resolves through r.
func NewFunc[F any](r Resolver[F]) *Func[F] {
	return &Func[F]{resolver: r}
}

// Name returns the operation name given to the resolver.
func (f *Func[F]) Name() string {
	return f.resolver.Name
}

// Get returns the bound variant, resolving it on first use.
func (f *Func[F]) Get() F {
	if p := f.target.Load(); p != nil {
		return *p
	}
	return f.bindSlow()
}

// Bind resolves eagerly. Calling it at program start moves the one-time
// resolution cost off the first real call.
func (f *Func[F]) Bind() F {
	return f.Get()
}

// Bound reports whether the call target has been fixed.
func (f *Func[F]) Bound() bool {
	return f.target.Load() != nil
}

func (f *Func[F]) bindSlow() F {
	f.once.Do(func() {
		v := f.resolver.Resolve()
		f.target.Store(&v)
	})
	return *f.target.Load()
}
