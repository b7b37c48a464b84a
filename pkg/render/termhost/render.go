package termhost

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Style variables are named after the element they dress, not the color.
var (
	styleButton     = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).Padding(0, 1)
	styleButtonFocus = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("205")).
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(0, 1)
	styleHeading = lipgloss.NewStyle().Bold(true).Underline(true)
	styleMuted   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// inline reports whether a tag's children lay out left-to-right on one
// line rather than stacked — spans and the transparent container tag ("")
// are inline, everything else (div, p, button's own children aside) stacks.
func inline(tag string) bool {
	switch tag {
	case "", "span", "a", "label", "strong", "em", "b", "i":
		return true
	default:
		return false
	}
}

// renderNode renders n and its subtree to a string. focused marks the
// node currently reachable by Tab, which gets the highlighted button style.
func renderNode(n *termNode, focused *termNode) string {
	if n.isText {
		return n.text
	}

	parts := make([]string, len(n.children))
	for i, c := range n.children {
		parts[i] = renderNode(c, focused)
	}

	switch n.tag {
	case "button":
		label := strings.Join(parts, "")
		style := styleButton
		if n == focused {
			style = styleButtonFocus
		}
		return style.Render(label)
	case "h1", "h2", "h3":
		return styleHeading.Render(strings.Join(parts, ""))
	case "small":
		return styleMuted.Render(strings.Join(parts, ""))
	}

	if inline(n.tag) {
		return strings.Join(parts, "")
	}
	return strings.Join(parts, "\n")
}
