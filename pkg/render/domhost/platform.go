package domhost

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/fibrecore/fibre/internal/errors"
	"github.com/fibrecore/fibre/pkg/render"
)

// containerTag is the custom element domhost's CreateContainer emits for a
// structural component's container node, chosen uniformly over a
// marker-node alternative so it can hold attributes and nested elements
// like any other tag.
const containerTag = "fibre-slot"

// patchOp is one mutation the browser-side client applies against its real
// DOM. The wire format here is domhost's own minimal JSON framing: just a
// transport (gorilla/websocket, see hub.go) and an ad hoc op list, with no
// wire-protocol compatibility to maintain against anything else.
type patchOp struct {
	Op     string `json:"op"`
	ID     uint64 `json:"id,omitempty"`
	Parent uint64 `json:"parent,omitempty"`
	Before uint64 `json:"before,omitempty"`
	Tag    string `json:"tag,omitempty"`
	Text   string `json:"text,omitempty"`
	Value  any    `json:"value,omitempty"`
	Event  string `json:"event,omitempty"`
}

// domNode is the PlatformNode handle domhost hands back. It never stores
// the rest of the tree: the browser client is the authority on the real
// DOM, domhost only needs enough bookkeeping to address each node in a
// later patch op and route a dispatched event back to its handler.
type domNode struct {
	id     uint64
	parent *domNode
}

// Platform implements render.Platform by recording patch ops instead of
// mutating a real tree, for a Server to broadcast on NotifyUpdate.
type Platform struct {
	mu       sync.Mutex
	nextID   uint64
	pending  []patchOp
	handlers map[uint64]map[string]any
	root     *domNode

	// onFlush receives every flushed batch of ops, in order. A Server wires
	// this to its hub's broadcast and its late-joiner snapshot.
	onFlush func(ops []patchOp)
}

// NewPlatform creates a Platform whose flushed patch batches are delivered
// to onFlush. onFlush may be nil for tests that only care about the
// resulting op log being internally consistent.
func NewPlatform(onFlush func(ops []patchOp)) *Platform {
	return &Platform{
		handlers: make(map[uint64]map[string]any),
		onFlush:  onFlush,
	}
}

func (p *Platform) alloc() uint64 {
	p.nextID++
	return p.nextID
}

// Root returns the platform node the browser-side client attaches to
// document.body on first use, creating it (and emitting the "mount_root"
// op) the first time it's called. A Server calls this once and mounts
// every component tree into it via render.MountInto.
func (p *Platform) Root() render.PlatformNode {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.root == nil {
		p.root = &domNode{id: p.alloc()}
		p.emit(patchOp{Op: "mount_root", ID: p.root.id})
	}
	return p.root
}

func (p *Platform) emit(op patchOp) {
	p.pending = append(p.pending, op)
}

func (p *Platform) CreateElement(tag string) render.PlatformNode {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := &domNode{id: p.alloc()}
	p.emit(patchOp{Op: "create_element", ID: n.id, Tag: tag})
	return n
}

func (p *Platform) CreateText(text string) render.PlatformNode {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := &domNode{id: p.alloc()}
	p.emit(patchOp{Op: "create_text", ID: n.id, Text: text})
	return n
}

func (p *Platform) CreateContainer() render.PlatformNode {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := &domNode{id: p.alloc()}
	p.emit(patchOp{Op: "create_element", ID: n.id, Tag: containerTag})
	return n
}

func (p *Platform) SetAttribute(node render.PlatformNode, key string, value any) {
	n := node.(*domNode)
	p.mu.Lock()
	defer p.mu.Unlock()
	p.emit(patchOp{Op: "set_attribute", ID: n.id, Text: key, Value: value})
}

func (p *Platform) RemoveAttribute(node render.PlatformNode, key string) {
	n := node.(*domNode)
	p.mu.Lock()
	defer p.mu.Unlock()
	p.emit(patchOp{Op: "remove_attribute", ID: n.id, Text: key})
}

func (p *Platform) SetText(node render.PlatformNode, text string) {
	n := node.(*domNode)
	p.mu.Lock()
	defer p.mu.Unlock()
	p.emit(patchOp{Op: "set_text", ID: n.id, Text: text})
}

func (p *Platform) AppendChild(parent, child render.PlatformNode) {
	pn, cn := parent.(*domNode), child.(*domNode)
	p.mu.Lock()
	defer p.mu.Unlock()
	cn.parent = pn
	p.emit(patchOp{Op: "append_child", Parent: pn.id, ID: cn.id})
}

func (p *Platform) InsertBefore(parent, child, before render.PlatformNode) {
	pn, cn, bn := parent.(*domNode), child.(*domNode), before.(*domNode)
	p.mu.Lock()
	defer p.mu.Unlock()
	cn.parent = pn
	p.emit(patchOp{Op: "insert_before", Parent: pn.id, ID: cn.id, Before: bn.id})
}

func (p *Platform) RemoveChild(parent, child render.PlatformNode) {
	pn, cn := parent.(*domNode), child.(*domNode)
	p.mu.Lock()
	defer p.mu.Unlock()
	if cn.parent == pn {
		cn.parent = nil
	}
	delete(p.handlers, cn.id)
	p.emit(patchOp{Op: "remove_child", Parent: pn.id, ID: cn.id})
}

func (p *Platform) GetParent(node render.PlatformNode) (render.PlatformNode, bool) {
	n := node.(*domNode)
	p.mu.Lock()
	defer p.mu.Unlock()
	if n.parent == nil {
		return nil, false
	}
	return n.parent, true
}

func (p *Platform) BindEvent(node render.PlatformNode, event string, handler any) (unbind func()) {
	n := node.(*domNode)
	p.mu.Lock()
	if p.handlers[n.id] == nil {
		p.handlers[n.id] = make(map[string]any)
	}
	p.handlers[n.id][event] = handler
	p.emit(patchOp{Op: "bind_event", ID: n.id, Event: event})
	p.mu.Unlock()

	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		delete(p.handlers[n.id], event)
		p.emit(patchOp{Op: "unbind_event", ID: n.id, Event: event})
	}
}

func (p *Platform) NotifyUpdate() {
	p.mu.Lock()
	ops := p.pending
	p.pending = nil
	onFlush := p.onFlush
	p.mu.Unlock()

	if len(ops) == 0 || onFlush == nil {
		return
	}
	onFlush(ops)
}

// dispatch invokes the handler bound to nodeID for event, if any. value is
// passed to a handler accepting a single string (oninput/onchange style);
// handlers accepting no arguments are called directly.
func (p *Platform) dispatch(nodeID uint64, event string, value string) {
	if !strings.HasPrefix(event, "on") {
		slog.Warn("domhost: unknown event type from client", "error", errors.New("E222").WithDetail(event))
		return
	}

	p.mu.Lock()
	handler := p.handlers[nodeID][event]
	p.mu.Unlock()
	if handler == nil {
		return
	}
	switch h := handler.(type) {
	case func():
		h()
	case func(string):
		h(value)
	}
}
