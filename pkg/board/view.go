package board

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mkarpov/vitals/internal/markup"
)

const labelWidth = 11

// View implements tea.Model. Rendering doubles as hit testing setup: every
// interactive element registers the screen region it was drawn into.
func (m *Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return "starting…"
	}
	m.Mouse.Clear()

	v := &viewBuilder{m: m}
	v.renderHeader()
	v.renderFlashes()
	v.renderFilterForm()
	v.renderEntryForm()
	v.renderTable()
	v.renderCharts()
	v.renderStatus()

	out := strings.Join(v.lines, "\n")

	if dlg := m.modals.Current(); dlg != nil {
		out = m.renderDialogOverlay(out, dlg)
	}
	if m.helpOpen {
		m.Mouse.Clear()
		return m.helpView()
	}
	if m.confirm.Active() {
		m.Mouse.Clear()
		return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center,
			sectionStyle.Render(m.confirm.View()))
	}
	if m.tooltip.Visible() {
		x, y := m.tooltip.Pos()
		out = spliceOverlay(out, tooltipStyle.Render(m.tooltip.Text()), x, y, m.Width)
	}
	return out
}

// viewBuilder accumulates frame lines; len(lines) is the y coordinate of the
// next line, so regions are registered just before their line is added.
type viewBuilder struct {
	m     *Model
	lines []string
}

func (v *viewBuilder) y() int { return len(v.lines) }

func (v *viewBuilder) add(block string) {
	if block == "" {
		v.lines = append(v.lines, "")
		return
	}
	v.lines = append(v.lines, strings.Split(block, "\n")...)
}

func (v *viewBuilder) renderHeader() {
	v.add(titleStyle.Render("vitals") + "  " + subtleStyle.Render("personal health measurements"))
	v.add("")
}

func (v *viewBuilder) renderFlashes() {
	box := v.m.Doc.Root.Find(hasClass(ClassFlashes))
	if box == nil || len(box.Children) == 0 {
		return
	}
	for _, item := range box.Children {
		if !item.HasClass(ClassFlash) {
			continue
		}
		style := flashStyle(flashCategory(item), item.HasClass(ClassFading))
		line := style.Render("• " + item.Text)
		closeBtn := item.Find(func(e *markup.Element) bool { return e.HasAttr(AttrDismiss) })
		if closeBtn != nil {
			x := lipgloss.Width(line) + 1
			v.m.Mouse.HitMap.AddRect(closeBtn.ID, x, v.y(), 3, 1, closeBtn)
			line += " " + subtleStyle.Render("[×]")
		}
		v.add(line)
	}
	v.add("")
}

func (v *viewBuilder) renderFilterForm() {
	form := v.m.Doc.ByID("filter")
	if form == nil {
		return
	}
	v.add(tableHeaderStyle.Render("Filter"))
	v.controlLine("Indicator", v.m.Doc.ByID("indicator"))
	v.controlLine("From", v.m.Doc.ByID("from"))
	v.controlLine("To", v.m.Doc.ByID("to"))
	v.controlLine("Flagged", v.m.Doc.ByID("flagged"))
	v.controlLine("Search", v.m.Doc.ByID("search"))
	v.add("")
}

func (v *viewBuilder) renderEntryForm() {
	form := v.m.Doc.ByID("entry")
	if form == nil {
		return
	}
	v.add(tableHeaderStyle.Render("Add measurement"))
	v.controlLine("Value", v.m.Doc.ByID("value"))

	if btn := v.m.Doc.ByID("entry-submit"); btn != nil {
		frag := buttonStyle.Render(btn.Text)
		x := 2 + labelWidth
		v.m.Mouse.HitMap.AddRect(btn.ID, x, v.y(), lipgloss.Width(frag), 1, btn)
		v.add(strings.Repeat(" ", x) + frag)
	}
	v.add("")
}

// controlLine renders one labeled form control and registers its hit region.
func (v *viewBuilder) controlLine(label string, el *markup.Element) {
	if el == nil {
		return
	}
	focused := v.m.focusedControl() == el
	labelStyle := subtleStyle
	if focused {
		labelStyle = focusedLabelStyle
	}
	prefix := "  " + labelStyle.Render(padRight(label, labelWidth))
	control := v.m.renderControl(el, focused)

	x := 2 + labelWidth
	v.m.Mouse.HitMap.AddRect(el.ID, x, v.y(), lipgloss.Width(control), 1, el)
	v.add(prefix + control)
}

// renderControl draws a form control's current state.
func (m *Model) renderControl(el *markup.Element, focused bool) string {
	switch {
	case el.Tag == "select":
		label := el.Value
		for _, opt := range el.Children {
			if opt.Tag == "option" && opt.Value == el.Value {
				label = opt.Text
				break
			}
		}
		s := "[" + label + " ▾]"
		if focused {
			return focusedLabelStyle.Render(s)
		}
		return s

	case el.Attr("type") == "checkbox":
		mark := " "
		if el.Value == "on" {
			mark = "x"
		}
		s := "[" + mark + "]"
		if focused {
			return focusedLabelStyle.Render(s)
		}
		return s

	default:
		inner := el.Value
		if ti := m.inputs[el]; ti != nil {
			inner = ti.View()
		}
		s := "[" + inner + "]"
		if el.HasClass(ClassInvalid) {
			return invalidInputStyle.Render(s)
		}
		return s
	}
}

func (v *viewBuilder) renderTable() {
	table := v.m.Doc.ByID("measurements")
	if table == nil {
		return
	}
	v.add(tableHeaderStyle.Render("Measurements"))
	if len(table.Children) == 0 {
		v.add(subtleStyle.Render("  nothing matches the filter"))
		v.add("")
		return
	}
	v.add(tableHeaderStyle.Render("  " +
		padRight("Date", 12) + padRight("Indicator", 20) +
		padRight("Value", 10) + padRight("Note", 22)))

	for _, row := range table.Children {
		if row.Tag != "tr" {
			continue
		}
		var tds []*markup.Element
		var buttons []*markup.Element
		for _, c := range row.Children {
			switch c.Tag {
			case "td":
				tds = append(tds, c)
			case "button":
				buttons = append(buttons, c)
			}
		}
		cell := func(i, w int) string {
			if i >= len(tds) {
				return padRight("", w)
			}
			return padRight(clipCell(tds[i].Text, w-1), w)
		}
		data := "  " + cell(0, 12) + cell(1, 20) + cell(2, 10) + cell(3, 22)
		if row.HasClass(ClassInvalid) {
			data = statusErrorStyle.Render(data)
		}

		// Row first, buttons on top of it: later regions win hit testing.
		v.m.Mouse.HitMap.AddRect(row.ID, 0, v.y(), v.m.Width, 1, row)

		line := data
		x := lipgloss.Width(data)
		for _, b := range buttons {
			frag := buttonStyle.Render(b.Text)
			x++
			v.m.Mouse.HitMap.AddRect(b.ID, x, v.y(), lipgloss.Width(frag), 1, b)
			line += " " + frag
			x += lipgloss.Width(frag)
		}
		v.add(line)
	}
	v.add("")
}

func (v *viewBuilder) renderCharts() {
	canvases := v.m.Doc.Root.FindAll(func(e *markup.Element) bool {
		return e.Tag == "canvas" && e.HasClass(ClassChart)
	})
	for _, canvas := range canvases {
		out := v.m.charts.Rendered(canvas, min(v.m.Width-4, 72), 12)
		if out == "" {
			continue
		}
		v.add(tableHeaderStyle.Render(canvas.Attr(AttrChartLabel)))
		v.add(out)
		v.add("")
	}
}

func (v *viewBuilder) renderStatus() {
	if v.m.StatusMessage != "" {
		style := statusStyle
		if v.m.StatusIsError {
			style = statusErrorStyle
		}
		v.add(style.Render(v.m.StatusMessage))
		return
	}
	v.add(subtleStyle.Render("tab move · enter submit · space toggle · ? help · q quit"))
}

// renderDialogOverlay draws an open detail dialog centered over the page. The
// page underneath becomes inert: the screen outside the dialog box hit-tests
// to the dialog (the overlay-close surface), the box itself resolves to its
// content, and the close button sits on top.
func (m *Model) renderDialogOverlay(base string, dlg *markup.Element) string {
	m.Mouse.Clear()
	m.Mouse.HitMap.AddRect(dlg.ID+"-overlay", 0, 0, m.Width, m.Height, dlg)

	var title string
	var body []string
	var content *markup.Element
	var closeBtn *markup.Element
	for _, c := range dlg.Children {
		switch {
		case c.Tag == "h2":
			title = c.Text
			if content == nil {
				content = c
			}
		case c.Tag == "p":
			body = append(body, c.Text)
			if content == nil {
				content = c
			}
		case c.Tag == "button" && c.HasAttr(AttrModalClose):
			closeBtn = c
		}
	}

	closeLabel := buttonStyle.Render("close")
	inner := append([]string{titleStyle.Render(title), ""}, body...)
	inner = append(inner, "", closeLabel)
	box := sectionStyle.Render(strings.Join(inner, "\n"))

	bw, bh := lipgloss.Width(box), lipgloss.Height(box)
	x0 := max((m.Width-bw)/2, 0)
	y0 := max((m.Height-bh)/2, 0)

	// Only clicks outside the box reach the overlay surface. A nil payload
	// resolves to the document root, which no trigger matches.
	var inBox any
	if content != nil {
		inBox = content
	}
	m.Mouse.HitMap.AddRect(dlg.ID+"-content", x0, y0, bw, bh, inBox)

	if closeBtn != nil {
		// Last content line, inside the border and padding.
		m.Mouse.HitMap.AddRect(closeBtn.ID, x0+2, y0+bh-2, lipgloss.Width(closeLabel), 1, closeBtn)
	}
	return spliceOverlay(base, box, x0, y0, m.Width)
}

func flashCategory(el *markup.Element) string {
	for _, c := range []string{"success", "warning", "danger", "info"} {
		if el.HasClass(c) {
			return c
		}
	}
	return "info"
}

func padRight(s string, w int) string {
	if lipgloss.Width(s) >= w {
		return s
	}
	return s + strings.Repeat(" ", w-lipgloss.Width(s))
}

func clipCell(s string, w int) string {
	r := []rune(s)
	if len(r) <= w {
		return s
	}
	if w < 1 {
		return ""
	}
	return string(r[:w-1]) + "…"
}
