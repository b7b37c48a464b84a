package render

import "github.com/fibrecore/fibre/pkg/reactive"

type catchComponent struct {
	body     func() *VNode
	fallback func(err any) *VNode

	container PlatformNode
}

// Catch mounts body(), and if constructing it panics (a UserError raised by
// a component, or any other panic propagating out of the descriptor tree),
// disposes whatever partially mounted and mounts fallback(err) instead. A
// panic raised later, from an Effect deep in body()'s subtree re-running on
// its own schedule, propagates past Catch the same way any other goroutine
// panic would: Catch only guards the synchronous construction of the tree
// it owns, not every future flush.
func Catch(body func() *VNode, fallback func(err any) *VNode) *VNode {
	return &VNode{Kind: KindComponent, Comp: &catchComponent{body: body, fallback: fallback}}
}

func (c *catchComponent) Render() *VNode { return nil }

func (c *catchComponent) mountStructural(p Platform, parentPlatform PlatformNode, owner *reactive.Owner) PlatformNode {
	c.container = p.CreateContainer()
	if parentPlatform != nil {
		p.AppendChild(parentPlatform, c.container)
	}

	bodyOwner := reactive.NewOwner(owner)
	err := func() (recovered any) {
		defer func() { recovered = recover() }()
		reactive.WithOwner(bodyOwner, func() {
			mountNode(p, c.container, bodyOwner, c.body())
		})
		return nil
	}()

	if err != nil {
		bodyOwner.Dispose()
		fallbackOwner := reactive.NewOwner(owner)
		reactive.WithOwner(fallbackOwner, func() {
			mountNode(p, c.container, fallbackOwner, c.fallback(err))
		})
	}

	return c.container
}
