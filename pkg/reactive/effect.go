package reactive

// Effect is a reaction that runs for its side effects rather than to
// produce a value nothing else can read. It always runs once at creation,
// then again whenever a dependency it read on its last run actually
// changed. The function passed to NewEffect may return a cleanup closure,
// run immediately before the next re-run and once more when the owning
// Owner is disposed.
type Effect struct {
	nodeData
	fn      func() func()
	cleanup func()
}

// EffectOption configures an Effect at construction time.
type EffectOption func(*Effect)

// NewEffect creates and immediately runs an effect, attached to the current
// owner. Outside of Batch, the initial run happens synchronously before
// NewEffect returns.
func NewEffect(fn func() func(), opts ...EffectOption) *Effect {
	o := CurrentOwner()
	e := &Effect{
		nodeData: nodeData{id: nextID(), kind: kindEffect, owner: o, flags: flagDirty},
		fn:       fn,
	}
	for _, opt := range opts {
		opt(e)
	}
	if o != nil {
		o.registerDisposable(func() {
			e.flags.set(flagDisposed)
			sched := e.schedulerOrFallback()
			sched.queue.pop(e)
			unlinkAllDeps(&e.nodeData)
			if e.cleanup != nil {
				c := e.cleanup
				e.cleanup = nil
				c()
			}
		})
	}

	sched := e.schedulerOrFallback()
	sched.markDirty(e)
	if !sched.inBatch() {
		if err := sched.flush(); err != nil {
			panic(err)
		}
	}
	return e
}

// ID returns a process-wide unique identifier, for diagnostics and metrics.
func (e *Effect) ID() uint64 { return e.id }

func (e *Effect) schedulerOrFallback() *scheduler {
	if e.owner != nil {
		return e.owner.scheduler()
	}
	return globalFallbackScheduler()
}

// MarkDirty forces e to re-run on the next flush even if none of its
// tracked dependencies changed — an escape hatch for callers driving an
// effect from something outside the signal graph entirely.
func (e *Effect) MarkDirty() {
	if e.disposed() {
		return
	}
	sched := e.schedulerOrFallback()
	sched.markDirty(e)
	if !sched.inBatch() {
		_ = sched.flush()
	}
}

func (e *Effect) recompute(s *scheduler) {
	unlinkAllDeps(&e.nodeData)

	if e.cleanup != nil {
		c := e.cleanup
		e.cleanup = nil
		c()
	}

	var maxLevel uint32
	withListener(e, func() {
		e.cleanup = e.fn()
	})
	for dep := e.deps; dep != nil; dep = dep.nextDep {
		if l := dep.source.node().level; l+1 > maxLevel {
			maxLevel = l + 1
		}
	}
	e.level = maxLevel
}

// OnMount runs fn exactly once, with no dependency tracking, on the same
// schedule as a new Effect: outside a Batch it runs before OnMount returns.
// It does not wait for the rest of the current owner's subtree to be
// constructed. It's implemented as an effect
// whose body untracks itself and returns no cleanup of its own (any cleanup
// fn wants to register goes through OnCleanup on the owner).
func OnMount(fn func()) *Effect {
	return NewEffect(func() func() {
		Untrack(fn)
		return nil
	})
}
