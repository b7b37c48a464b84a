package reactive

// kind discriminates the three cell variants unified by nodeData, per
// spec §3 ("Cell (the universal reactive node)").
type kind uint8

const (
	kindSource kind = iota
	kindDerived
	kindEffect
)

// nodeData is the scheduling metadata shared by every cell: sources,
// derived values and effects all embed one. Keeping it as a single
// struct lets the hot paths in the scheduler (read/notify/flush) branch
// on a discriminant instead of going through separate types.
type nodeData struct {
	id   uint64
	kind kind

	// level is one greater than the max of this cell's sources' levels
	// at the time of last computation. Source cells are always level 0.
	level uint32

	flags flags

	// updatedAt is the exec-cycle counter value at which this cell last
	// recomputed. Used to dedupe re-execution within a single flush.
	updatedAt uint64

	// changedAt is the exec-cycle counter value at which this cell's value
	// last actually differed from its previous value (as opposed to merely
	// having been recomputed to the same value). Subscribers compare this
	// against the scheduler's current execCount to decide whether a STALE
	// mark should escalate to an actual recompute.
	changedAt uint64

	// execsThisFlush counts recomputations of this cell within the flush
	// identified by updatedAt, reset whenever updatedAt moves to a new
	// generation. Used to detect runaway self-rescheduling.
	execsThisFlush int

	owner *Owner

	// deps/depsTail: doubly-linked list of edges to this cell's sources
	// (what it reads). Empty for source cells.
	deps, depsTail *edge

	// subs/subsTail: doubly-linked list of edges to this cell's observers
	// (what reads it). Empty for effects, which are never read.
	subs, subsTail *edge

	// queueNext/queuePrev: circular linked list membership in the
	// scheduler's level-bucketed queue (see scheduler.go). Unused while a
	// cell is not queued.
	queueNext, queuePrev reactiveNode

	// queueLevel is the bucket index this cell is linked into while
	// flagPendingNotify is set. level can change mid-recompute (a cell
	// picking up a higher-level dependency); queueLevel freezes the bucket
	// it actually lives in until pop() unlinks it, so pop never derives the
	// bucket from the (possibly stale or already-moved-on) level field.
	queueLevel int
}

// reactiveNode is implemented by every cell so the scheduler and edge
// bookkeeping can operate generically over sources, derived cells and
// effects.
type reactiveNode interface {
	node() *nodeData
}

// reaction is a reactiveNode that can be pulled or scheduled to recompute:
// derived cells and effects, but not plain source cells.
type reaction interface {
	reactiveNode
	recompute(s *scheduler)
}

func (n *nodeData) node() *nodeData { return n }

// disposed reports whether this cell's owner has already torn it down.
func (n *nodeData) disposed() bool {
	return n.flags.has(flagDisposed)
}
