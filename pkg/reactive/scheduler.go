package reactive

import "sync"

// scheduler owns the flush queue, the batch depth counter and the
// exec-cycle generation used to detect both "did this dependency actually
// change" (for glitch-free STALE resolution) and runaway self-rescheduling
// (CycleLimitExceeded). One scheduler backs one owner tree; tests typically
// create their own with newScheduler so cases don't share global state.
type scheduler struct {
	mu sync.Mutex

	queue      *levelQueue
	batchDepth int

	// execCount is bumped once per top-level flush. A cell's changedAt
	// field is compared against it to answer "did this dependency produce
	// a new value during the flush currently in progress" without storing
	// old values anywhere.
	execCount uint64

	flushing bool

	cycleLimit int

	onFlushStart     func(execCount uint64)
	onFlushEnd       func(execCount uint64, effectsRun int)
	onEffectRun      func(id uint64)
	onCycleLimitTrip func(nodeID uint64)
}

// defaultCycleLimit is a conservative default for CycleLimitExceeded: a
// cell that recomputes more than this many times within one flush is
// almost certainly feeding back into itself.
const defaultCycleLimit = 100

func newScheduler() *scheduler {
	limit := Debug.CycleLimit
	if limit <= 0 {
		limit = defaultCycleLimit
	}
	return &scheduler{
		queue:      newLevelQueue(),
		cycleLimit: limit,
	}
}

var (
	fallbackOnce sync.Once
	fallback     *scheduler
)

// globalFallbackScheduler backs cells created with no current owner (e.g.
// in a quick script or a test that skips WithOwner), so Get/Set still work
// rather than nil-panicking on the common "just try the API" path.
func globalFallbackScheduler() *scheduler {
	fallbackOnce.Do(func() { fallback = newScheduler() })
	return fallback
}

// markStale propagates CLEAN→STALE to n's direct subscribers (and, for
// derived subscribers, recursively beyond them) and enqueues any effect
// subscriber for the next flush. Cells already STALE or DIRTY are left
// alone and not walked further — this is what keeps a diamond dependency
// from being visited more than once per source change.
func (s *scheduler) markStale(n reactiveNode) {
	forEachSub(n.node(), func(sub reactiveNode) {
		subNode := sub.node()
		if subNode.disposed() {
			return
		}
		if subNode.flags.has(flagStale | flagDirty) {
			return
		}
		subNode.flags.set(flagStale)
		switch subNode.kind {
		case kindEffect:
			s.queue.push(sub)
		case kindDerived:
			s.markStale(sub)
		}
	})
}

// markDirty forces n and everything downstream of it to recompute on the
// next flush, regardless of whether reading its sources would otherwise
// prove it unnecessary. Used for the public MarkDirty escape hatch and for
// a freshly created effect's mandatory first run.
func (s *scheduler) markDirty(n reactiveNode) {
	nd := n.node()
	if nd.disposed() {
		return
	}
	nd.flags.set(flagDirty)
	if nd.kind == kindEffect {
		s.queue.push(n)
	}
	s.markStale(n)
}

// ensureFresh resolves n to CLEAN, recomputing it first if necessary. For a
// STALE node this walks its current dependency list and only recomputes if
// a dependency's value actually changed during this flush generation — the
// lazy half of the push-pull hybrid.
func (s *scheduler) ensureFresh(n reactiveNode) error {
	nd := n.node()
	if nd.disposed() {
		return nil
	}
	if nd.flags.has(flagDirty) {
		return s.recomputeNow(n)
	}
	if !nd.flags.has(flagStale) {
		return nil
	}

	changed := false
	for e := nd.deps; e != nil; e = e.nextDep {
		dep := e.source
		depNode := dep.node()
		if depNode.kind != kindSource {
			if err := s.ensureFresh(dep); err != nil {
				return err
			}
		}
		if depNode.changedAt == s.execCount {
			changed = true
		}
	}

	if changed {
		return s.recomputeNow(n)
	}
	nd.flags.clear(flagStale)
	return nil
}

// recomputeNow actually runs n's compute/effect body via the reaction
// interface, then updates bookkeeping (changedAt, cycle count, queue
// rebucketing if n's level rose because it picked up a higher-level
// dependency while recomputing).
func (s *scheduler) recomputeNow(n reactiveNode) error {
	nd := n.node()

	if nd.updatedAt != s.execCount {
		nd.updatedAt = s.execCount
		nd.execsThisFlush = 0
	}
	nd.execsThisFlush++
	if nd.execsThisFlush > s.cycleLimit {
		return &CycleLimitExceededError{NodeID: nd.id, Limit: s.cycleLimit}
	}

	beforeLevel := nd.level
	nd.flags.clear(flagStale | flagDirty)
	nd.flags.set(flagRecomputing)

	rx, ok := n.(reaction)
	if !ok {
		nd.flags.clear(flagRecomputing)
		return nil
	}
	rx.recompute(s)
	nd.flags.clear(flagRecomputing)

	if nd.kind == kindEffect && nd.level != beforeLevel && nd.flags.has(flagPendingNotify) {
		s.queue.pop(n)
		s.queue.push(n)
	}
	return nil
}

// flush drains the pending queue level by level (lowest first, so a cell is
// never processed before all of its sources have settled) until empty,
// returning the first CycleLimitExceeded encountered, if any. Draining a
// level into a slice before processing it means an effect that enqueues a
// same-level effect mid-drain picks that new entry up on the next pass over
// the same level rather than corrupting the in-progress walk.
func (s *scheduler) flush() error {
	if s.flushing {
		return nil // re-entrant flush from inside an effect; outer call finishes the job
	}
	s.flushing = true
	s.execCount++
	if s.onFlushStart != nil {
		s.onFlushStart(s.execCount)
	}
	ran := 0
	defer func() {
		s.flushing = false
		if s.onFlushEnd != nil {
			s.onFlushEnd(s.execCount, ran)
		}
	}()

	for !s.queue.empty() {
		level := s.queue.min
		batch := s.queue.drainLevel(level)
		for _, n := range batch {
			nd := n.node()
			if nd.disposed() {
				continue
			}
			prevRuns := 0
			if nd.updatedAt == s.execCount {
				prevRuns = nd.execsThisFlush
			}
			if err := s.ensureFresh(n); err != nil {
				if cle, ok := err.(*CycleLimitExceededError); ok && s.onCycleLimitTrip != nil {
					s.onCycleLimitTrip(cle.NodeID)
				}
				return err
			}
			if nd.kind == kindEffect && nd.updatedAt == s.execCount && nd.execsThisFlush > prevRuns {
				ran++
				if s.onEffectRun != nil {
					s.onEffectRun(n.node().id)
				}
			}
		}
		s.queue.advanceMin()
	}
	return nil
}

// batch runs fn with flush deferred until the outermost Batch call returns,
// coalescing any number of signal writes into at most one flush.
func (s *scheduler) batch(fn func()) error {
	s.mu.Lock()
	s.batchDepth++
	s.mu.Unlock()

	fn()

	s.mu.Lock()
	s.batchDepth--
	top := s.batchDepth == 0
	s.mu.Unlock()

	if top {
		return s.flush()
	}
	return nil
}

func (s *scheduler) inBatch() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.batchDepth > 0
}

// notifyChanged records that n's value changed during the flush currently
// in progress (or about to begin, for an unbatched write) and propagates
// STALE to its subscribers. Called by Signal.Set. An unbatched write that
// makes the flush fail with CycleLimitExceeded panics with that error.
func (s *scheduler) notifyChanged(n reactiveNode) {
	n.node().changedAt = s.execCount + notifyOffset(s)
	s.markStale(n)
	if !s.inBatch() {
		if err := s.flush(); err != nil {
			panic(err)
		}
	}
}

// notifyOffset accounts for the fact that an unbatched write happens
// before execCount has been bumped for the flush it triggers: flush()
// increments execCount first thing, so a changedAt stamped with the
// pre-increment value would never match during ensureFresh's comparison.
func notifyOffset(s *scheduler) uint64 {
	if s.flushing {
		return 0
	}
	return 1
}
