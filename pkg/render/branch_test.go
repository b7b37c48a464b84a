package render

import (
	"testing"

	"github.com/fibrecore/fibre/pkg/reactive"
)

func TestBranchSelectsMatchingCase(t *testing.T) {
	p := newFakePlatform()
	container := p.CreateContainer().(*fakeNode)
	status := reactive.NewSignal("loading")

	o := reactive.NewOwner(nil)
	defer o.Dispose()
	reactive.WithOwner(o, func() {
		mountNode(p, container, o, Branch(
			func() string { return status.Get() },
			map[string]func() *VNode{
				"loading": func() *VNode { return Div(ID("spinner")) },
				"ready":   func() *VNode { return Div(ID("content")) },
			},
			func() *VNode { return Div(ID("error")) },
		))
	})

	branchContainer := container.children[0]
	if branchContainer.children[0].attrs["id"] != "spinner" {
		t.Fatalf("expected spinner branch, got %+v", branchContainer.children)
	}

	status.Set("ready")
	if branchContainer.children[0].attrs["id"] != "content" {
		t.Errorf("expected content branch after switch, got %+v", branchContainer.children)
	}

	status.Set("unknown-status")
	if branchContainer.children[0].attrs["id"] != "error" {
		t.Errorf("expected fallback branch for unmatched key, got %+v", branchContainer.children)
	}
}

func TestBranchSkipsRemountOnSameKey(t *testing.T) {
	p := newFakePlatform()
	container := p.CreateContainer().(*fakeNode)
	status := reactive.NewSignal("a")
	mounts := 0

	o := reactive.NewOwner(nil)
	defer o.Dispose()
	reactive.WithOwner(o, func() {
		mountNode(p, container, o, Branch(
			func() string { return status.Get() },
			map[string]func() *VNode{
				"a": func() *VNode { mounts++; return Div() },
			},
			nil,
		))
	})

	if mounts != 1 {
		t.Fatalf("mounts = %d, want 1", mounts)
	}
	status.Set("a")
	if mounts != 1 {
		t.Errorf("mounts = %d after redundant Set, want 1", mounts)
	}
}

func TestBranchSwitchDisposesOldArmAndMountsNewArmExactlyOnce(t *testing.T) {
	p := newFakePlatform()
	container := p.CreateContainer().(*fakeNode)
	phase := reactive.NewSignal("a")

	aMounted, aDisposed, bMounted := 0, 0, 0

	o := reactive.NewOwner(nil)
	defer o.Dispose()
	reactive.WithOwner(o, func() {
		mountNode(p, container, o, Branch(
			func() string { return phase.Get() },
			map[string]func() *VNode{
				"a": func() *VNode {
					reactive.OnMount(func() { aMounted++ })
					reactive.CurrentOwner().OnCleanup(func() { aDisposed++ })
					return Div(ID("a"))
				},
				"b": func() *VNode {
					reactive.OnMount(func() { bMounted++ })
					return Div(ID("b"))
				},
			},
			nil,
		))
	})

	phase.Set("b")

	if aMounted != 1 || aDisposed != 1 || bMounted != 1 {
		t.Errorf("got aMounted=%d aDisposed=%d bMounted=%d, want 1/1/1", aMounted, aDisposed, bMounted)
	}

	branchContainer := container.children[0]
	if len(branchContainer.children) != 1 || branchContainer.children[0].attrs["id"] != "b" {
		t.Errorf("expected exactly arm b mounted, got %+v", branchContainer.children)
	}
}
