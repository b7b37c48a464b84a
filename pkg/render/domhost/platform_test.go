package domhost

import (
	"testing"

	"github.com/fibrecore/fibre/pkg/render"
)

func TestPlatformRecordsElementCreationOps(t *testing.T) {
	var flushed []patchOp
	p := NewPlatform(func(ops []patchOp) { flushed = append(flushed, ops...) })

	div := p.CreateElement("div")
	p.SetAttribute(div, "class", "root")
	p.NotifyUpdate()

	if len(flushed) != 2 {
		t.Fatalf("expected 2 ops, got %d: %+v", len(flushed), flushed)
	}
	if flushed[0].Op != "create_element" || flushed[0].Tag != "div" {
		t.Errorf("op[0] = %+v, want create_element div", flushed[0])
	}
	if flushed[1].Op != "set_attribute" || flushed[1].Text != "class" || flushed[1].Value != "root" {
		t.Errorf("op[1] = %+v, want set_attribute class=root", flushed[1])
	}
}

func TestPlatformContainerUsesFibreSlotTag(t *testing.T) {
	var flushed []patchOp
	p := NewPlatform(func(ops []patchOp) { flushed = append(flushed, ops...) })

	p.CreateContainer()
	p.NotifyUpdate()

	if len(flushed) != 1 || flushed[0].Tag != containerTag {
		t.Fatalf("container op = %+v, want tag %q", flushed, containerTag)
	}
}

func TestPlatformAppendChildTracksParent(t *testing.T) {
	p := NewPlatform(nil)
	parent := p.CreateElement("div")
	child := p.CreateElement("span")
	p.AppendChild(parent, child)

	got, ok := p.GetParent(child)
	if !ok || got != parent {
		t.Fatalf("GetParent(child) = (%v, %v), want (%v, true)", got, ok, parent)
	}

	p.RemoveChild(parent, child)
	if _, ok := p.GetParent(child); ok {
		t.Error("expected no parent after RemoveChild")
	}
}

func TestPlatformDispatchInvokesBoundHandler(t *testing.T) {
	p := NewPlatform(nil)
	btn := p.CreateElement("button")

	var clicked bool
	unbind := p.BindEvent(btn, "onclick", func() { clicked = true })

	p.dispatch(btn.(*domNode).id, "onclick", "")
	if !clicked {
		t.Error("expected onclick handler to run")
	}

	unbind()
	clicked = false
	p.dispatch(btn.(*domNode).id, "onclick", "")
	if clicked {
		t.Error("expected handler to be gone after unbind")
	}
}

func TestPlatformDispatchPassesValueToStringHandler(t *testing.T) {
	p := NewPlatform(nil)
	input := p.CreateElement("input")

	var got string
	p.BindEvent(input, "oninput", func(v string) { got = v })

	p.dispatch(input.(*domNode).id, "oninput", "hello")
	if got != "hello" {
		t.Errorf("got = %q, want %q", got, "hello")
	}
}

func TestPlatformRootCreatedOnce(t *testing.T) {
	p := NewPlatform(nil)
	r1 := p.Root()
	r2 := p.Root()
	if r1 != r2 {
		t.Error("Root() should return the same node on repeated calls")
	}
}

func TestPlatformSatisfiesRenderPlatform(t *testing.T) {
	var _ render.Platform = NewPlatform(nil)
}
