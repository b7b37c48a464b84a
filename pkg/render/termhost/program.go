package termhost

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fibrecore/fibre/internal/errors"
	"github.com/fibrecore/fibre/pkg/reactive"
	"github.com/fibrecore/fibre/pkg/render"
)

// refreshMsg asks Model to repaint. It carries no data — every repaint
// re-walks the whole termNode tree, since the reactive graph (not Model)
// owns all state and termhost has no cheap way to know what changed.
type refreshMsg struct{}

// Model is the bubbletea program driving a termhost-rendered tree. It owns
// no application state itself: Update only moves focus between bound
// nodes and relays Enter to the focused node's onclick handler, and View
// repaints whatever the reactive graph currently holds.
type Model struct {
	plat     *Platform
	program  *tea.Program
	focus    []*termNode
	focusIdx int
	quitting bool
}

// NewModel wraps plat. Call SetProgram once the tea.Program exists so
// NotifyUpdate can ask it to repaint — see Run, which does both.
func NewModel(plat *Platform) *Model {
	return &Model{plat: plat}
}

// SetProgram wires the running program so Platform.NotifyUpdate can
// trigger a repaint via refreshMsg.
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.plat.OnUpdate(func() {
		if m.program != nil {
			m.program.Send(refreshMsg{})
		}
	})
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit
		case "tab":
			m.refreshFocus()
			if len(m.focus) > 0 {
				m.focusIdx = (m.focusIdx + 1) % len(m.focus)
			}
		case "shift+tab":
			m.refreshFocus()
			if len(m.focus) > 0 {
				m.focusIdx = (m.focusIdx - 1 + len(m.focus)) % len(m.focus)
			}
		case "enter":
			m.refreshFocus()
			if m.focusIdx >= 0 && m.focusIdx < len(m.focus) {
				if h, ok := m.focus[m.focusIdx].handlers["onclick"].(func()); ok {
					h()
				}
			}
		}
	case refreshMsg:
		// nothing to do beyond the repaint View() performs below
	}
	return m, nil
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	m.refreshFocus()
	var current *termNode
	if m.focusIdx >= 0 && m.focusIdx < len(m.focus) {
		current = m.focus[m.focusIdx]
	}
	return renderNode(m.plat.root, current)
}

func (m *Model) refreshFocus() {
	m.focus = focusables(m.plat.root)
	if m.focusIdx >= len(m.focus) {
		m.focusIdx = 0
	}
}

// Run mounts root onto a fresh termhost Platform and drives it with a
// bubbletea program until the user quits (q or ctrl+c).
func Run(root *render.VNode) error {
	plat := NewPlatform()
	model := NewModel(plat)
	program := tea.NewProgram(model)
	model.SetProgram(program)

	owner := reactive.NewOwner(nil)
	defer owner.Dispose()
	render.MountInto(plat, plat.Root(), owner, root)

	if _, err := program.Run(); err != nil {
		return errors.New("E202").Wrap(err)
	}
	return nil
}
