package render

import "github.com/fibrecore/fibre/pkg/reactive"

type branchComponent[K comparable] struct {
	selector func() K
	cases    map[K]func() *VNode
	fallback func() *VNode

	container  PlatformNode
	childOwner *reactive.Owner
	current    K
	hasCurrent bool
}

// Branch mounts cases[selector()], or fallback if selector() has no entry
// in cases, re-selecting whenever selector() changes — a multi-way
// conditional, generalizing When to more than two arms.
func Branch[K comparable](selector func() K, cases map[K]func() *VNode, fallback func() *VNode) *VNode {
	return &VNode{Kind: KindComponent, Comp: &branchComponent[K]{
		selector: selector,
		cases:    cases,
		fallback: fallback,
	}}
}

func (b *branchComponent[K]) Render() *VNode { return nil }

func (b *branchComponent[K]) mountStructural(p Platform, parentPlatform PlatformNode, owner *reactive.Owner) PlatformNode {
	b.container = p.CreateContainer()
	if parentPlatform != nil {
		p.AppendChild(parentPlatform, b.container)
	}

	reactive.NewEffect(func() func() {
		key := b.selector()
		if b.hasCurrent && key == b.current {
			return nil
		}
		if b.childOwner != nil {
			b.childOwner.Dispose()
			b.childOwner = nil
		}
		b.current = key
		b.hasCurrent = true

		branch, ok := b.cases[key]
		if !ok {
			branch = b.fallback
		}
		if branch == nil {
			return nil
		}

		b.childOwner = reactive.NewOwner(owner)
		reactive.WithOwner(b.childOwner, func() {
			if node := mountNode(p, b.container, b.childOwner, branch()); node != nil {
				b.childOwner.OnCleanup(func() { p.RemoveChild(b.container, node) })
			}
		})
		return nil
	})

	return b.container
}
