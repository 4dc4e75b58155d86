package modal

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Section is a renderable dialog fragment. focusedAction identifies the
// button that currently holds focus, or "" when none does.
type Section interface {
	Render(contentWidth int, focusedAction string) string
}

// Modal is a composed dialog.
type Modal struct {
	title    string
	width    int
	sections []Section
	buttons  []ButtonDef
	focusIdx int // index into buttons; -1 when nothing is focused
	primary  string
}

// Option configures a Modal.
type Option func(*Modal)

// WithWidth sets the dialog width including borders.
func WithWidth(w int) Option {
	return func(m *Modal) { m.width = w }
}

// WithPrimaryAction sets the action returned by Enter when no button is
// focused.
func WithPrimaryAction(action string) Option {
	return func(m *Modal) { m.primary = action }
}

// New creates a dialog with the given title.
func New(title string, opts ...Option) *Modal {
	m := &Modal{title: title, width: 50, focusIdx: -1}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// AddSection appends a section and returns the modal for chaining.
func (m *Modal) AddSection(s Section) *Modal {
	m.sections = append(m.sections, s)
	if bs, ok := s.(*buttonSection); ok {
		m.buttons = append(m.buttons, bs.buttons...)
		if m.focusIdx < 0 && len(m.buttons) > 0 {
			m.focusIdx = 0
		}
	}
	return m
}

// FocusedAction returns the action of the focused button, or "".
func (m *Modal) FocusedAction() string {
	if m.focusIdx < 0 || m.focusIdx >= len(m.buttons) {
		return ""
	}
	return m.buttons[m.focusIdx].Action
}

// HandleKey processes a key press. It returns the activated action, or ""
// when the key only moved focus or was not handled.
func (m *Modal) HandleKey(msg tea.KeyMsg) string {
	switch msg.String() {
	case "tab", "right", "l":
		m.cycleFocus(1)
		return ""
	case "shift+tab", "left", "h":
		m.cycleFocus(-1)
		return ""
	case "enter":
		if action := m.FocusedAction(); action != "" {
			return action
		}
		return m.primary
	case "esc":
		return "close"
	}
	return ""
}

func (m *Modal) cycleFocus(delta int) {
	if len(m.buttons) == 0 {
		return
	}
	m.focusIdx = (m.focusIdx + delta + len(m.buttons)) % len(m.buttons)
}

// Render draws the dialog centered in a screenW x screenH area.
func (m *Modal) Render(screenW, screenH int) string {
	contentWidth := m.width - 4 // borders and padding
	if contentWidth < 10 {
		contentWidth = 10
	}

	var parts []string
	parts = append(parts, TitleStyle.Render(m.title))
	parts = append(parts, "")
	for _, s := range m.sections {
		parts = append(parts, s.Render(contentWidth, m.FocusedAction()))
	}

	box := BoxStyle.Width(m.width - 2).Render(strings.Join(parts, "\n"))
	return lipgloss.Place(screenW, screenH, lipgloss.Center, lipgloss.Center, box)
}
