package main

import (
	"fmt"

	"github.com/fibrecore/fibre/pkg/reactive"
	"github.com/fibrecore/fibre/pkg/render"
)

// counterApp is the tree `fibre dev` and `fibre term` both mount: a single
// reactive signal driving a DynText node, so both backends exercise a real
// flush-and-patch cycle rather than a static page.
func counterApp() *render.VNode {
	count := reactive.NewSignal(0)

	return render.Div(
		render.H1(render.Text("fibre")),
		render.P(render.Text("A minimal counter exercising the signal graph end to end.")),
		render.Div(
			render.DynText(func() string { return fmt.Sprintf("Count: %d", count.Get()) }),
		),
		render.Button(
			render.Text("Increment"),
			render.OnClick(func() { count.Update(func(v int) int { return v + 1 }) }),
		),
		render.Button(
			render.Text("Reset"),
			render.OnClick(func() { count.Set(0) }),
		),
	)
}
