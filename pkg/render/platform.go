package render

// PlatformNode is an opaque handle a Platform hands back from its create*
// calls. Mount and the structural components never inspect it; they only
// ever pass it back into later Platform calls.
type PlatformNode any

// Platform is the abstraction between the renderer and whatever actually
// owns pixels or bytes: a DOM-like backend (domhost) and
// a terminal-like backend (termhost) both implement it, and the fine-
// grained renderer in this package is written entirely against the
// interface, never against either concrete backend.
type Platform interface {
	CreateElement(tag string) PlatformNode
	CreateText(text string) PlatformNode
	// CreateContainer creates a transparent grouping node used to host a
	// structural component's children, resolved uniformly over the
	// marker-node alternative.
	CreateContainer() PlatformNode

	SetAttribute(node PlatformNode, key string, value any)
	RemoveAttribute(node PlatformNode, key string)
	SetText(node PlatformNode, text string)

	// AppendChild appends child to parent. Like DOM's appendChild, if child
	// already has a parent it is moved rather than duplicated — Each relies
	// on this to reorder surviving entries without a separate move call.
	AppendChild(parent, child PlatformNode)
	InsertBefore(parent, child, before PlatformNode)
	RemoveChild(parent, child PlatformNode)

	GetParent(node PlatformNode) (PlatformNode, bool)

	// BindEvent attaches handler to node for the given event name (already
	// normalized to "onclick"-style by the Attr/EventHandler builders) and
	// returns a function that detaches it.
	BindEvent(node PlatformNode, event string, handler any) (unbind func())

	// NotifyUpdate is called once a batch of mutations above has settled,
	// letting a backend coalesce work (domhost flushes a patch frame,
	// termhost re-renders its bubbletea view).
	NotifyUpdate()
}

// PlatformUnavailableError is returned when render.Mount is asked to start
// with a nil Platform (E202).
type PlatformUnavailableError struct{}

func (e *PlatformUnavailableError) Error() string {
	return "render: no platform supplied (E202 PlatformUnavailable)"
}
