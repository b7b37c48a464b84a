package render

import "github.com/fibrecore/fibre/pkg/reactive"

// eachEntry is the per-key bookkeeping Each keeps across runs so an item
// whose key survives a list update has its platform node and owner reused
// rather than torn down and rebuilt. index is a reactive cell updated in
// place on every reconcile — a reused subtree that reads it through the
// index accessor observes its new position without being remounted.
type eachEntry struct {
	owner *reactive.Owner
	node  PlatformNode
	index *reactive.Signal[int]
}

type eachComponent[T any] struct {
	items  func() []T
	key    func(T) string
	render func(item T, index func() int) *VNode

	container PlatformNode
	entries   map[string]*eachEntry
	order     []string
}

// Each renders render(item, index) for every element of items(), keyed by
// key(item), re-running only when items() actually changes. An item whose
// key is present both before and after a change keeps its owner and
// platform node — its subtree is not recreated, only repositioned if its
// index moved. index is an accessor rather than a plain int so a reused
// node's subtree can read its current position reactively: reordering with
// no adds or removes updates every surviving entry's index cell instead of
// remounting anything.
func Each[T any](items func() []T, key func(T) string, render func(item T, index func() int) *VNode) *VNode {
	return &VNode{Kind: KindComponent, Comp: &eachComponent[T]{
		items:  items,
		key:    key,
		render: render,
	}}
}

func (e *eachComponent[T]) Render() *VNode { return nil }

func (e *eachComponent[T]) mountStructural(p Platform, parentPlatform PlatformNode, owner *reactive.Owner) PlatformNode {
	e.container = p.CreateContainer()
	if parentPlatform != nil {
		p.AppendChild(parentPlatform, e.container)
	}
	e.entries = make(map[string]*eachEntry)

	reactive.NewEffect(func() func() {
		e.reconcile(p, owner)
		return nil
	})

	return e.container
}

func (e *eachComponent[T]) reconcile(p Platform, owner *reactive.Owner) {
	items := e.items()
	next := make(map[string]*eachEntry, len(items))
	nextOrder := make([]string, len(items))

	for i, item := range items {
		k := e.key(item)
		nextOrder[i] = k
		if ent, ok := e.entries[k]; ok {
			delete(e.entries, k)
			ent.index.Set(i)
			next[k] = ent
			continue
		}

		childOwner := reactive.NewOwner(owner)
		var node PlatformNode
		var idxSig *reactive.Signal[int]
		it, idx := item, i
		reactive.WithOwner(childOwner, func() {
			idxSig = reactive.NewSignal(idx)
			node = mountNode(p, nil, childOwner, e.render(it, idxSig.Get))
		})
		next[k] = &eachEntry{owner: childOwner, node: node, index: idxSig}
	}

	// Whatever is left in e.entries had a key no longer present: dispose it.
	for _, ent := range e.entries {
		if ent.node != nil {
			p.RemoveChild(e.container, ent.node)
		}
		ent.owner.Dispose()
	}

	// Re-append in the new order. Nodes already in the right relative
	// position are a harmless no-op re-append on most platforms; this
	// trades a cheap redundant call for not having to diff positions.
	for _, k := range nextOrder {
		ent := next[k]
		if ent.node != nil {
			p.AppendChild(e.container, ent.node)
		}
	}

	e.entries = next
	e.order = nextOrder
}
