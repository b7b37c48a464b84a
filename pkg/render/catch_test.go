package render

import (
	"testing"

	"github.com/fibrecore/fibre/pkg/reactive"
)

func TestCatchMountsBodyWhenNoPanic(t *testing.T) {
	p := newFakePlatform()
	container := p.CreateContainer().(*fakeNode)

	o := reactive.NewOwner(nil)
	defer o.Dispose()
	reactive.WithOwner(o, func() {
		mountNode(p, container, o, Catch(
			func() *VNode { return Div(ID("ok")) },
			func(err any) *VNode { return Div(ID("fallback")) },
		))
	})

	catchContainer := container.children[0]
	if catchContainer.children[0].attrs["id"] != "ok" {
		t.Fatalf("expected body mounted, got %+v", catchContainer.children)
	}
}

func TestCatchMountsFallbackWhenBodyPanics(t *testing.T) {
	p := newFakePlatform()
	container := p.CreateContainer().(*fakeNode)

	var caught any
	o := reactive.NewOwner(nil)
	defer o.Dispose()
	reactive.WithOwner(o, func() {
		mountNode(p, container, o, Catch(
			func() *VNode { panic("boom") },
			func(err any) *VNode {
				caught = err
				return Div(ID("fallback"))
			},
		))
	})

	catchContainer := container.children[0]
	if catchContainer.children[0].attrs["id"] != "fallback" {
		t.Fatalf("expected fallback mounted, got %+v", catchContainer.children)
	}
	if caught != "boom" {
		t.Errorf("caught = %v, want 'boom'", caught)
	}
}
