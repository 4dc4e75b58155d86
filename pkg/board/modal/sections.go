package modal

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// textSection renders wrapped static text.
type textSection struct {
	text string
}

// Text creates a static text section, wrapped to the dialog width.
func Text(s string) Section {
	return &textSection{text: s}
}

func (s *textSection) Render(contentWidth int, _ string) string {
	return BodyStyle.Width(contentWidth).Render(s.text)
}

// spacerSection renders a blank line.
type spacerSection struct{}

// Spacer creates a blank line section.
func Spacer() Section {
	return spacerSection{}
}

func (spacerSection) Render(int, string) string {
	return ""
}

// keyValueSection renders an aligned label/value row.
type keyValueSection struct {
	key, value string
}

// KeyValue creates a label/value row section.
func KeyValue(key, value string) Section {
	return &keyValueSection{key: key, value: value}
}

func (s *keyValueSection) Render(contentWidth int, _ string) string {
	label := KeyStyle.Render(s.key + ":")
	valueWidth := contentWidth - lipgloss.Width(label) - 1
	if valueWidth < 1 {
		valueWidth = 1
	}
	return label + " " + BodyStyle.Width(valueWidth).Render(s.value)
}

// ButtonDef declares one dialog button.
type ButtonDef struct {
	Label  string
	Action string
	Danger bool
}

// Btn declares a plain button.
func Btn(label, action string) ButtonDef {
	return ButtonDef{Label: label, Action: action}
}

// BtnDanger declares a destructive-styled button.
func BtnDanger(label, action string) ButtonDef {
	return ButtonDef{Label: label, Action: action, Danger: true}
}

// buttonSection renders a centered row of buttons with focus styling.
type buttonSection struct {
	buttons []ButtonDef
}

// Buttons creates a button row section.
func Buttons(btns ...ButtonDef) Section {
	return &buttonSection{buttons: btns}
}

func (s *buttonSection) Render(contentWidth int, focusedAction string) string {
	rendered := make([]string, 0, len(s.buttons))
	for _, b := range s.buttons {
		style := ButtonStyle
		switch {
		case b.Action == focusedAction && b.Danger:
			style = ButtonDangerFocusedStyle
		case b.Action == focusedAction:
			style = ButtonFocusedStyle
		case b.Danger:
			style = ButtonDangerStyle
		}
		rendered = append(rendered, style.Render(b.Label))
	}
	row := strings.Join(rendered, "  ")
	return lipgloss.PlaceHorizontal(contentWidth, lipgloss.Center, row)
}
