package termhost

import (
	"github.com/fibrecore/fibre/pkg/render"
)

// termNode is termhost's PlatformNode: a plain tree node mutated in place.
// There's no wire protocol to batch ops for, so unlike domhost's domNode,
// every Platform call here takes effect immediately.
type termNode struct {
	tag      string
	text     string
	isText   bool
	attrs    map[string]any
	handlers map[string]any
	children []*termNode
	parent   *termNode
}

func (n *termNode) removeChild(child *termNode) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			break
		}
	}
	if child.parent == n {
		child.parent = nil
	}
}

func (n *termNode) disabled() bool {
	v, ok := n.attrs["disabled"]
	if !ok {
		return false
	}
	b, _ := v.(bool)
	return b
}

// Platform is the terminal render.Platform: a tree of termNodes repainted
// by a Model's View on every NotifyUpdate.
type Platform struct {
	root     *termNode
	onUpdate func()
}

// NewPlatform creates a termhost Platform with a transparent root anchor.
func NewPlatform() *Platform {
	return &Platform{root: &termNode{attrs: map[string]any{}}}
}

// OnUpdate registers the callback NotifyUpdate invokes — a running Model
// wires this to send itself a repaint message.
func (p *Platform) OnUpdate(fn func()) { p.onUpdate = fn }

func (p *Platform) Root() render.PlatformNode { return p.root }

func (p *Platform) CreateElement(tag string) render.PlatformNode {
	return &termNode{tag: tag, attrs: map[string]any{}, handlers: map[string]any{}}
}

func (p *Platform) CreateText(text string) render.PlatformNode {
	return &termNode{isText: true, text: text}
}

func (p *Platform) CreateContainer() render.PlatformNode {
	return &termNode{attrs: map[string]any{}}
}

func (p *Platform) SetAttribute(node render.PlatformNode, key string, value any) {
	node.(*termNode).attrs[key] = value
}

func (p *Platform) RemoveAttribute(node render.PlatformNode, key string) {
	delete(node.(*termNode).attrs, key)
}

func (p *Platform) SetText(node render.PlatformNode, text string) {
	node.(*termNode).text = text
}

func (p *Platform) AppendChild(parent, child render.PlatformNode) {
	pn, cn := parent.(*termNode), child.(*termNode)
	if cn.parent != nil {
		cn.parent.removeChild(cn)
	}
	cn.parent = pn
	pn.children = append(pn.children, cn)
}

func (p *Platform) InsertBefore(parent, child, before render.PlatformNode) {
	pn, cn, bn := parent.(*termNode), child.(*termNode), before.(*termNode)
	if cn.parent != nil {
		cn.parent.removeChild(cn)
	}
	cn.parent = pn
	idx := len(pn.children)
	for i, c := range pn.children {
		if c == bn {
			idx = i
			break
		}
	}
	pn.children = append(pn.children, nil)
	copy(pn.children[idx+1:], pn.children[idx:])
	pn.children[idx] = cn
}

func (p *Platform) RemoveChild(parent, child render.PlatformNode) {
	parent.(*termNode).removeChild(child.(*termNode))
}

func (p *Platform) GetParent(node render.PlatformNode) (render.PlatformNode, bool) {
	n := node.(*termNode)
	if n.parent == nil {
		return nil, false
	}
	return n.parent, true
}

func (p *Platform) BindEvent(node render.PlatformNode, event string, handler any) func() {
	n := node.(*termNode)
	if n.handlers == nil {
		n.handlers = map[string]any{}
	}
	n.handlers[event] = handler
	return func() { delete(n.handlers, event) }
}

func (p *Platform) NotifyUpdate() {
	if p.onUpdate != nil {
		p.onUpdate()
	}
}

// focusables walks the tree in document order collecting every node with
// a bound onclick handler that isn't disabled — the Tab order for Model.
func focusables(n *termNode) []*termNode {
	var out []*termNode
	var walk func(*termNode)
	walk = func(n *termNode) {
		if n.isText {
			return
		}
		if _, ok := n.handlers["onclick"]; ok && !n.disabled() {
			out = append(out, n)
		}
		for _, c := range n.children {
			walk(c)
		}
	}
	walk(n)
	return out
}
