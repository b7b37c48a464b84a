// Package termhost is the terminal-like Platform backend: it mutates an
// in-memory termNode tree directly (there's no network boundary to batch
// ops across, unlike domhost) and repaints through a bubbletea program
// whose View renders that tree with lipgloss styling.
//
// Containers (render.Platform.CreateContainer) are transparent: they have
// no tag of their own and lay their children out exactly as if the
// container weren't there. domhost instead emits a real <fibre-slot>
// element for the same node, since the "container form" question resolves
// differently per backend — termhost has no comparable invisible-but-
// addressable node to spare.
package termhost
