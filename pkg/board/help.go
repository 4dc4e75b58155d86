package board

import (
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/mkarpov/vitals/pkg/board/modal"
)

const helpText = `# vitals

Track personal health measurements against their norm ranges.

## Keys

- **tab / shift+tab** move between form controls
- **enter** submit the focused form, or activate a button
- **space** toggle a checkbox, step a selector
- **esc** close an open dialog
- **?** this help
- **q / ctrl+c** quit

## Filtering

The filter form applies itself: pick an indicator or a date and the
table follows. The note search waits until you stop typing.
`

// helpView renders the help dialog over a blank screen.
func (m *Model) helpView() string {
	if m.helpRendered == "" {
		out, err := glamour.Render(helpText, "dark")
		if err != nil {
			out = helpText
		}
		m.helpRendered = strings.TrimRight(out, "\n")
	}

	dlg := modal.New("Help", modal.WithWidth(68), modal.WithPrimaryAction("close"))
	dlg.AddSection(modal.Text(m.helpRendered))
	dlg.AddSection(modal.Spacer())
	dlg.AddSection(modal.Buttons(modal.Btn("Close", "close")))
	return dlg.Render(m.Width, m.Height)
}
