package reactive

import "log/slog"

// Derived[T] is a computed cell: its value comes from a compute function
// over other cells rather than from an external write. It starts DIRTY and
// is resolved lazily the first time something reads it; after that, a
// source change marks it STALE and it is only actually recomputed the next
// time it is read or pulled during a flush, and only if a dependency's
// value truly changed.
//
// Named Derived rather than Memo to keep "memoization" (an optimization
// over a pure function) distinct from "a cell whose value is recomputed
// from other cells" (this type's actual semantics, where the compute
// function is expected to have reactive reads, not just arguments).
type Derived[T any] struct {
	nodeData
	compute  func() T
	value    T
	equal    func(a, b T) bool
	hasValue bool
}

// DerivedOption configures a Derived at construction time.
type DerivedOption[T any] func(*Derived[T])

// WithDerivedEquals overrides the equality check used to decide whether a
// recompute actually produced a new value.
func WithDerivedEquals[T any](fn func(a, b T) bool) DerivedOption[T] {
	return func(d *Derived[T]) { d.equal = fn }
}

// NewDerived creates a derived cell computed by fn, attached to the current
// owner.
func NewDerived[T any](fn func() T, opts ...DerivedOption[T]) *Derived[T] {
	o := CurrentOwner()
	d := &Derived[T]{
		nodeData: nodeData{id: nextID(), kind: kindDerived, owner: o, flags: flagDirty},
		compute:  fn,
		equal:    defaultEquals[T],
	}
	for _, opt := range opts {
		opt(d)
	}
	if o != nil {
		o.registerDisposable(func() {
			d.flags.set(flagDisposed)
			unlinkAllDeps(&d.nodeData)
			d.subs, d.subsTail = nil, nil
		})
	}
	return d
}

// Get resolves d to its current value, recomputing it first if it is STALE
// or DIRTY and a dependency actually changed, and links d as a dependency
// of whatever Derived or Effect is currently recomputing. Reading after d's
// owner was disposed returns the last resolved value rather than erroring.
func (d *Derived[T]) Get() T {
	if d.disposed() {
		d.warnDisposed()
		return d.value
	}
	sched := d.schedulerOrFallback()
	if err := sched.ensureFresh(d); err != nil {
		panic(err)
	}
	trackRead(d)
	return d.value
}

// Peek returns d's current value, resolving staleness first but without
// registering a dependency on the calling reaction.
func (d *Derived[T]) Peek() T {
	if d.disposed() {
		d.warnDisposed()
		return d.value
	}
	sched := d.schedulerOrFallback()
	if err := sched.ensureFresh(d); err != nil {
		panic(err)
	}
	return d.value
}

func (d *Derived[T]) warnDisposed() {
	slog.Warn("reactive: disposed derived cell accessed", "error", &DisposedAccessError{NodeID: d.id})
}

// ID returns a process-wide unique identifier, for diagnostics and metrics.
func (d *Derived[T]) ID() uint64 { return d.id }

func (d *Derived[T]) schedulerOrFallback() *scheduler {
	if d.owner != nil {
		return d.owner.scheduler()
	}
	return globalFallbackScheduler()
}

// recompute implements the reaction interface: it is called by the
// scheduler once it has decided d truly needs to run. Old dependency edges
// are dropped first so a compute function that reads a different set of
// signals on this run (a conditional read) doesn't keep a stale edge to a
// signal it no longer reads.
func (d *Derived[T]) recompute(s *scheduler) {
	unlinkAllDeps(&d.nodeData)

	var next T
	var maxLevel uint32
	withListener(d, func() {
		next = d.compute()
	})
	for e := d.deps; e != nil; e = e.nextDep {
		if l := e.source.node().level; l+1 > maxLevel {
			maxLevel = l + 1
		}
	}
	d.level = maxLevel

	changed := !d.hasValue || !d.equal(d.value, next)
	d.value = next
	d.hasValue = true
	if changed {
		d.changedAt = s.execCount
	}
}
