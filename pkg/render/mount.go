package render

import (
	"strings"

	"github.com/fibrecore/fibre/pkg/reactive"
)

// Structural is implemented by the six structural components (Each, When,
// Branch, Catch, Defer, Portal). Unlike an ordinary Component, a Structural
// is not resolved once into a static *VNode: it owns an Effect that mutates
// the platform tree directly as its condition changes, so Mount hands it
// the platform and the owner it should run under instead of calling a
// Render method.
type Structural interface {
	mountStructural(p Platform, parentPlatform PlatformNode, owner *reactive.Owner) PlatformNode
}

// Mount resolves a descriptor tree under a fresh owner and builds the real
// platform nodes for it, synchronously. The returned Owner disposes the
// entire mounted subtree, including every
// Effect the renderer installed for reactive props and structural
// components, when its Dispose method is called.
func Mount(p Platform, parent *reactive.Owner, root *VNode) (*reactive.Owner, error) {
	if p == nil {
		return nil, &PlatformUnavailableError{}
	}
	o := reactive.NewOwner(parent)
	reactive.WithOwner(o, func() {
		mountNode(p, nil, o, root)
	})
	p.NotifyUpdate()
	return o, nil
}

// MountInto is Mount generalized for a backend that needs the mounted tree
// attached under an existing platform node rather than left parentless —
// domhost's document-body container, termhost's root view. MountInto makes
// owner current for the walk but, unlike Mount, does not create one itself:
// a backend's root anchor typically outlives any single Mount call.
func MountInto(p Platform, parent PlatformNode, owner *reactive.Owner, root *VNode) {
	reactive.WithOwner(owner, func() {
		mountNode(p, parent, owner, root)
	})
	p.NotifyUpdate()
}

// mountNode builds v's platform representation under parentPlatform (if
// non-nil, appending as it goes) and returns the single PlatformNode that
// represents v, for callers (Each's keyed reuse, Portal) that need a handle
// to reposition or remove it later. A Fragment or a Component that resolves
// to a Fragment has no single node and returns nil — structural components
// that need node-level control should render a single container instead.
func mountNode(p Platform, parentPlatform PlatformNode, owner *reactive.Owner, v *VNode) PlatformNode {
	if v == nil {
		return nil
	}
	switch v.Kind {
	case KindText, KindRaw:
		return mountText(p, parentPlatform, owner, v)
	case KindFragment:
		for _, child := range v.Children {
			mountNode(p, parentPlatform, owner, child)
		}
		return nil
	case KindElement:
		node := p.CreateElement(v.Tag)
		bindProps(p, node, owner, v.Props)
		for _, child := range v.Children {
			mountNode(p, node, owner, child)
		}
		if parentPlatform != nil {
			p.AppendChild(parentPlatform, node)
		}
		return node
	case KindComponent:
		return mountComponent(p, parentPlatform, owner, v)
	}
	return nil
}

func mountText(p Platform, parentPlatform PlatformNode, owner *reactive.Owner, v *VNode) PlatformNode {
	node := p.CreateText(v.Text)
	if parentPlatform != nil {
		p.AppendChild(parentPlatform, node)
	}
	if v.TextFn != nil {
		reactive.WithOwner(owner, func() {
			reactive.NewEffect(func() func() {
				p.SetText(node, v.TextFn())
				return nil
			})
		})
	}
	return node
}

func mountComponent(p Platform, parentPlatform PlatformNode, owner *reactive.Owner, v *VNode) PlatformNode {
	if v.Comp == nil {
		return nil
	}
	childOwner := reactive.NewOwner(owner)
	var node PlatformNode
	reactive.WithOwner(childOwner, func() {
		if st, ok := v.Comp.(Structural); ok {
			node = st.mountStructural(p, parentPlatform, childOwner)
			return
		}
		resolved := v.Comp.Render()
		node = mountNode(p, parentPlatform, childOwner, resolved)
	})
	return node
}

// bindProps applies v's attributes and event handlers to node. A Bind(...)
// value (type func() any) becomes an Effect that keeps node's attribute
// current; every other value is written once.
func bindProps(p Platform, node PlatformNode, owner *reactive.Owner, props Props) {
	for key, value := range props {
		if key == "key" || key == "onhook" {
			continue
		}
		if strings.HasPrefix(key, "on") {
			unbind := p.BindEvent(node, key, value)
			owner.OnCleanup(unbind)
			continue
		}
		if fn, ok := value.(func() any); ok {
			reactive.WithOwner(owner, func() {
				reactive.NewEffect(func() func() {
					p.SetAttribute(node, key, fn())
					return nil
				})
			})
			continue
		}
		p.SetAttribute(node, key, value)
	}
}
