package render

import "github.com/fibrecore/fibre/pkg/reactive"

type whenComponent struct {
	cond   func() bool
	then   func() *VNode
	elseFn func() *VNode

	container  PlatformNode
	childOwner *reactive.Owner
	shown      bool
	hasBranch  bool
}

// When mounts then() while cond() is true, and elseFn() (if provided)
// otherwise, tearing the previous branch's owner down before mounting the
// new one. The swap is glitch-free because it happens inside a single
// Effect installed synchronously at creation, with no microtask defer.
func When(cond func() bool, then func() *VNode, elseFn ...func() *VNode) *VNode {
	w := &whenComponent{cond: cond, then: then}
	if len(elseFn) > 0 {
		w.elseFn = elseFn[0]
	}
	return &VNode{Kind: KindComponent, Comp: w}
}

func (w *whenComponent) Render() *VNode { return nil }

func (w *whenComponent) mountStructural(p Platform, parentPlatform PlatformNode, owner *reactive.Owner) PlatformNode {
	w.container = p.CreateContainer()
	if parentPlatform != nil {
		p.AppendChild(parentPlatform, w.container)
	}

	reactive.NewEffect(func() func() {
		show := w.cond()
		if w.hasBranch && show == w.shown {
			return nil
		}
		if w.childOwner != nil {
			w.childOwner.Dispose()
			w.childOwner = nil
		}

		var branch func() *VNode
		if show {
			branch = w.then
		} else {
			branch = w.elseFn
		}
		w.shown = show
		w.hasBranch = true
		if branch == nil {
			return nil
		}

		w.childOwner = reactive.NewOwner(owner)
		reactive.WithOwner(w.childOwner, func() {
			if node := mountNode(p, w.container, w.childOwner, branch()); node != nil {
				w.childOwner.OnCleanup(func() { p.RemoveChild(w.container, node) })
			}
		})
		return nil
	})

	return w.container
}
