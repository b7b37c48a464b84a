package reactive

// edge connects one source cell to one observing cell. Storing edges as a
// doubly-linked list on both ends (instead of a slice per cell) is what
// gives dispose/unsubscribe O(1) behavior regardless of fan-out: removing
// an edge never requires scanning a sibling slice for the matching entry,
// only unlinking four pointers. This is the "slot" from spec §3's
// Cell.slot invariant, generalized from an array index to a link node.
type edge struct {
	source reactiveNode
	sub    reactiveNode

	nextDep, prevDep *edge // siblings in sub's dependency list
	nextSub, prevSub *edge // siblings in source's observer list
}

// link records that sub depends on source, reusing an existing edge when
// sub is mid-recompute and the same source was already linked at this
// position in its previous run (the common case for stable dependency
// order across re-executions).
func link(source, sub reactiveNode) {
	subNode := sub.node()
	srcNode := source.node()

	if subNode.depsTail != nil && subNode.depsTail.source == source {
		return // already the most recent dependency; nothing to do
	}

	if subNode.flags.has(flagRecomputing) {
		var candidate *edge
		if subNode.depsTail != nil {
			candidate = subNode.depsTail.nextDep
		} else {
			candidate = subNode.deps
		}
		if candidate != nil && candidate.source == source {
			subNode.depsTail = candidate
			return
		}
	}

	e := &edge{
		source:  source,
		sub:     sub,
		prevSub: srcNode.subsTail,
	}

	if subNode.flags.has(flagRecomputing) && subNode.depsTail != nil {
		e.nextDep = subNode.depsTail.nextDep
	}

	if subNode.depsTail != nil {
		subNode.depsTail.nextDep = e
		e.prevDep = subNode.depsTail
	} else {
		subNode.deps = e
	}
	subNode.depsTail = e

	if srcNode.subsTail != nil {
		srcNode.subsTail.nextSub = e
	} else {
		srcNode.subs = e
	}
	srcNode.subsTail = e
}

// unlink removes e from both the dependency list of its subscriber and
// the observer list of its source, returning the next dependency edge in
// sub's list (so callers can walk-and-unlink a full list in one pass).
func unlink(e *edge) *edge {
	src := e.source.node()
	next := e.nextDep

	if e.nextSub != nil {
		e.nextSub.prevSub = e.prevSub
	} else {
		src.subsTail = e.prevSub
	}
	if e.prevSub != nil {
		e.prevSub.nextSub = e.nextSub
	} else {
		src.subs = e.nextSub
	}

	return next
}

// unlinkAllDeps removes every dependency edge from n, used before a
// derived cell or effect re-runs its compute function so stale source
// edges don't linger when a source is no longer read this time.
func unlinkAllDeps(n *nodeData) {
	e := n.deps
	for e != nil {
		e = unlink(e)
	}
	n.deps = nil
	n.depsTail = nil
}

// forEachSub walks n's observer list calling fn for each subscriber.
// The list is captured into a local slice first so that handlers which
// add or remove observers during the walk (common when an effect's
// cleanup disposes sibling cells) don't corrupt the iteration — this is
// the "copy before notify" requirement from spec §5.
func forEachSub(n *nodeData, fn func(reactiveNode)) {
	var subs []reactiveNode
	for e := n.subs; e != nil; e = e.nextSub {
		subs = append(subs, e.sub)
	}
	for _, s := range subs {
		fn(s)
	}
}
