package reactive

import "log/slog"

// Signal[T] is a source cell: the only kind of cell whose value changes
// from the outside rather than being derived from other cells. Reading it
// inside a Derived or Effect links that reaction as a subscriber; writing
// it (when the new value differs under equal) marks every transitive
// subscriber STALE and, outside an open Batch, flushes immediately.
type Signal[T any] struct {
	nodeData
	value T
	equal func(a, b T) bool
}

// SignalOption configures a Signal at construction time.
type SignalOption[T any] func(*Signal[T])

// WithEquals overrides the equality check used to decide whether a Set
// actually changed the value, for types where defaultEquals's reflective
// fallback is too slow or too coarse (e.g. comparing only an id field of a
// larger struct).
func WithEquals[T any](fn func(a, b T) bool) SignalOption[T] {
	return func(s *Signal[T]) { s.equal = fn }
}

// NewSignal creates a source cell holding initial, attached to the current
// owner (see CurrentOwner/WithOwner). Outside of any owner scope the signal
// is still usable but nothing disposes it automatically.
func NewSignal[T any](initial T, opts ...SignalOption[T]) *Signal[T] {
	o := CurrentOwner()
	s := &Signal[T]{
		nodeData: nodeData{id: nextID(), kind: kindSource, owner: o},
		value:    initial,
		equal:    defaultEquals[T],
	}
	for _, opt := range opts {
		opt(s)
	}
	if o != nil {
		o.registerDisposable(func() {
			s.flags.set(flagDisposed)
			s.subs, s.subsTail = nil, nil
		})
	}
	return s
}

// Get returns the current value and, inside a Derived or Effect, links
// this signal as one of its dependencies. Reading after the owning owner
// was disposed returns the last value the signal held rather than erroring:
// a stale closure that outlived its component gets stale data, not a panic.
func (s *Signal[T]) Get() T {
	if s.disposed() {
		s.warnDisposed()
		return s.value
	}
	trackRead(s)
	return s.value
}

// Peek returns the current value without registering a dependency — an
// escape hatch for reading without tracking inside a reaction.
func (s *Signal[T]) Peek() T {
	if s.disposed() {
		s.warnDisposed()
		return s.value
	}
	return s.value
}

// Set assigns v, and if it differs from the current value under s's
// equality check, marks subscribers stale and triggers a flush (batched
// writes defer that flush until the enclosing Batch returns). A write after
// disposal is ignored and logged as a warning on every call: there is no owner
// left to notify, and no subscriber left to stay consistent with.
func (s *Signal[T]) Set(v T) {
	if s.disposed() {
		s.warnDisposed()
		return
	}
	if Debug.DevMode {
		s.checkStrictEffectWrite()
	}
	if s.equal(s.value, v) {
		return
	}
	s.value = v
	s.notify()
}

func (s *Signal[T]) warnDisposed() {
	slog.Warn("reactive: disposed signal accessed", "error", &DisposedAccessError{NodeID: s.id})
}

// checkStrictEffectWrite enforces Config.EffectStrictMode: writing a signal
// from inside the body of an Effect that is currently recomputing is legal
// (OnMount-driven imperative updates do this deliberately) but is also the
// single most common source of an unbounded rerun loop, so DevMode can warn
// or refuse it outright.
func (s *Signal[T]) checkStrictEffectWrite() {
	if Debug.EffectStrictMode == StrictEffectOff {
		return
	}
	e, ok := currentListener().(*Effect)
	if !ok {
		return
	}
	if Debug.EffectStrictMode == StrictEffectPanic {
		panic(&UserError{NodeID: s.id, Reason: "effect wrote a signal while EffectStrictMode is StrictEffectPanic"})
	}
	slog.Warn("reactive: signal written from inside an effect", "signal_id", s.id, "effect_id", e.id)
}

// Update reads the current value, applies fn, and Sets the result —
// convenient for signals holding slices, maps or structs that are easier
// to transform than to replace wholesale.
func (s *Signal[T]) Update(fn func(T) T) {
	s.Set(fn(s.Peek()))
}

func (s *Signal[T]) notify() {
	sched := s.scheduler()
	if sched == nil {
		return
	}
	sched.notifyChanged(s)
}

func (s *Signal[T]) scheduler() *scheduler {
	if s.owner != nil {
		return s.owner.scheduler()
	}
	return globalFallbackScheduler()
}

// ID returns a process-wide unique identifier, for diagnostics and metrics.
func (s *Signal[T]) ID() uint64 { return s.id }
