package render

import "github.com/fibrecore/fibre/pkg/reactive"

type portalComponent struct {
	target  func() PlatformNode
	content func() *VNode
}

// Portal mounts content() under target() instead of under its logical
// parent, while its owner remains a child of the logical parent's owner:
// disposing the logical ancestor tears the portaled content down with it
// even though the two are never adjacent in the platform tree. An empty
// container is still left in the logical position so the surrounding
// tree's child ordering is unaffected by a Portal's presence.
func Portal(target func() PlatformNode, content func() *VNode) *VNode {
	return &VNode{Kind: KindComponent, Comp: &portalComponent{target: target, content: content}}
}

func (po *portalComponent) Render() *VNode { return nil }

func (po *portalComponent) mountStructural(p Platform, parentPlatform PlatformNode, owner *reactive.Owner) PlatformNode {
	marker := p.CreateContainer()
	if parentPlatform != nil {
		p.AppendChild(parentPlatform, marker)
	}

	target := po.target()
	reactive.WithOwner(owner, func() {
		mountNode(p, target, owner, po.content())
	})

	return marker
}
