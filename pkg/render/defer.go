package render

import "github.com/fibrecore/fibre/pkg/reactive"

type deferComponent struct {
	ready    func() bool
	content  func() *VNode
	fallback func() *VNode

	container  PlatformNode
	childOwner *reactive.Owner
	shown      bool
	hasShown   bool
}

// Defer mounts fallback() until ready() reports true, then swaps to
// content() — a suspense-like boundary for async derived cells: a Derived
// backed by a Resource-style fetch typically drives ready via "has the
// fetch resolved yet".
func Defer(ready func() bool, content func() *VNode, fallback func() *VNode) *VNode {
	return &VNode{Kind: KindComponent, Comp: &deferComponent{ready: ready, content: content, fallback: fallback}}
}

func (d *deferComponent) Render() *VNode { return nil }

func (d *deferComponent) mountStructural(p Platform, parentPlatform PlatformNode, owner *reactive.Owner) PlatformNode {
	d.container = p.CreateContainer()
	if parentPlatform != nil {
		p.AppendChild(parentPlatform, d.container)
	}

	reactive.NewEffect(func() func() {
		isReady := d.ready()
		if d.hasShown && isReady == d.shown {
			return nil
		}
		if d.childOwner != nil {
			d.childOwner.Dispose()
		}
		d.shown = isReady
		d.hasShown = true

		d.childOwner = reactive.NewOwner(owner)
		reactive.WithOwner(d.childOwner, func() {
			var vn *VNode
			if isReady {
				vn = d.content()
			} else {
				vn = d.fallback()
			}
			if node := mountNode(p, d.container, d.childOwner, vn); node != nil {
				d.childOwner.OnCleanup(func() { p.RemoveChild(d.container, node) })
			}
		})
		return nil
	})

	return d.container
}
