package render

// fakeNode is the concrete type behind every PlatformNode fakePlatform hands
// out, so tests can assert on tag/text/children without a real DOM or
// terminal backend.
type fakeNode struct {
	tag      string
	text     string
	isText   bool
	attrs    map[string]any
	children []*fakeNode
	parent   *fakeNode
	handlers map[string]any
}

// fakePlatform is an in-memory Platform used only by this package's tests —
// it keeps just enough tree shape to assert mounting/unmounting behavior.
type fakePlatform struct {
	updates int
}

func newFakePlatform() *fakePlatform { return &fakePlatform{} }

func (f *fakePlatform) CreateElement(tag string) PlatformNode {
	return &fakeNode{tag: tag, attrs: map[string]any{}, handlers: map[string]any{}}
}

func (f *fakePlatform) CreateText(text string) PlatformNode {
	return &fakeNode{text: text, isText: true}
}

func (f *fakePlatform) CreateContainer() PlatformNode {
	return &fakeNode{tag: "#container", attrs: map[string]any{}, handlers: map[string]any{}}
}

func (f *fakePlatform) SetAttribute(node PlatformNode, key string, value any) {
	node.(*fakeNode).attrs[key] = value
}

func (f *fakePlatform) RemoveAttribute(node PlatformNode, key string) {
	delete(node.(*fakeNode).attrs, key)
}

func (f *fakePlatform) SetText(node PlatformNode, text string) {
	node.(*fakeNode).text = text
}

func (f *fakePlatform) AppendChild(parent, child PlatformNode) {
	p, c := parent.(*fakeNode), child.(*fakeNode)
	if c.parent != nil {
		c.parent.removeChild(c)
	}
	p.children = append(p.children, c)
	c.parent = p
}

func (f *fakePlatform) InsertBefore(parent, child, before PlatformNode) {
	p, c := parent.(*fakeNode), child.(*fakeNode)
	if c.parent != nil {
		c.parent.removeChild(c)
	}
	var b *fakeNode
	if before != nil {
		b = before.(*fakeNode)
	}
	idx := len(p.children)
	for i, existing := range p.children {
		if existing == b {
			idx = i
			break
		}
	}
	p.children = append(p.children, nil)
	copy(p.children[idx+1:], p.children[idx:])
	p.children[idx] = c
	c.parent = p
}

func (f *fakePlatform) RemoveChild(parent, child PlatformNode) {
	parent.(*fakeNode).removeChild(child.(*fakeNode))
}

func (f *fakePlatform) GetParent(node PlatformNode) (PlatformNode, bool) {
	n := node.(*fakeNode)
	if n.parent == nil {
		return nil, false
	}
	return n.parent, true
}

func (f *fakePlatform) BindEvent(node PlatformNode, event string, handler any) func() {
	n := node.(*fakeNode)
	n.handlers[event] = handler
	return func() { delete(n.handlers, event) }
}

func (f *fakePlatform) NotifyUpdate() { f.updates++ }

func (n *fakeNode) removeChild(child *fakeNode) {
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
