package board

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/mkarpov/vitals/internal/config"
	"github.com/mkarpov/vitals/internal/markup"
	"github.com/mkarpov/vitals/internal/numfmt"
	"github.com/mkarpov/vitals/pkg/board/mouse"
	"github.com/mkarpov/vitals/pkg/chart"
)

// ClearStatusMsg clears the transient status line.
type ClearStatusMsg struct{}

// Model hosts the page document and its behavior controllers inside the
// bubbletea loop. Terminal input is translated into page events; controllers
// only ever see the page, never the terminal.
type Model struct {
	Width  int
	Height int

	Cfg       *config.Config
	Log       *zap.Logger
	Doc       *markup.Document
	Data      *Dataset
	Params    FilterParams
	Formatter *numfmt.Formatter
	Mouse     *mouse.Handler

	StatusMessage string
	StatusIsError bool

	flash   *FlashController
	confirm *ConfirmController
	filter  *FilterController
	numeric *NumericController
	tooltip *TooltipController
	modals  *ModalController
	charts  *ChartController
	clip    *ClipboardController

	helpOpen     bool
	helpRendered string

	// Focus ring over the page's form controls, in document order.
	focusables []*markup.Element
	focusIdx   int
	inputs     map[*markup.Element]*textinput.Model
	focusStart string

	seq         int
	nextFlashes []FlashItem
	pending     []tea.Cmd
}

// New builds the board. A nil engine leaves the chart bootstrap inert.
func New(cfg *config.Config, log *zap.Logger, engine chart.Engine) *Model {
	if log == nil {
		log = zap.NewNop()
	}

	m := &Model{
		Cfg:       cfg,
		Log:       log,
		Data:      seedDataset(),
		Params:    FilterParams{Indicator: "pulse"},
		Formatter: numfmt.NewFormatter(cfg.LanguageTag()),
		Mouse:     mouse.NewHandler(),
		inputs:    make(map[*markup.Element]*textinput.Model),
	}
	m.Doc = markup.NewDocument(markup.New("body"))
	m.seq = len(m.Data.Measurements)

	emit := func(cmd tea.Cmd) {
		if cmd != nil {
			m.pending = append(m.pending, cmd)
		}
	}

	// The guard attaches first so declined actions never reach the other
	// controllers.
	m.confirm = newConfirmController(m.Doc, m.performDefault)
	m.confirm.Attach()
	m.flash = newFlashController(m.Doc, cfg.AutoHide(), cfg.Fade())
	m.flash.Attach()
	m.filter = newFilterController(m.Doc, cfg.Debounce(), m.performSubmit, emit)
	m.filter.Attach()
	m.numeric = newNumericController(m.Doc)
	m.numeric.Attach()
	m.modals = newModalController(m.Doc)
	m.modals.Attach()
	m.clip = newClipboardController(m.Doc, cfg.Feedback(), emit, log)
	m.clip.Attach()
	m.tooltip = newTooltipController(m.Doc)
	m.tooltip.Attach()
	m.charts = newChartController(m.Doc, engine, m.Formatter, log)

	m.nextFlashes = []FlashItem{{Category: "info", Text: "Welcome back"}}
	m.reload()
	return m
}

// reload rebuilds the page, the navigation analog: controller state tied to
// the old tree is reset and the controllers re-scan the new one.
func (m *Model) reload() {
	var focusedID string
	if el := m.focusedControl(); el != nil {
		focusedID = el.ID
	}

	root := buildPage(m.Data, m.Params, m.nextFlashes, m.Formatter)
	m.nextFlashes = nil
	m.Doc.SetRoot(root)

	m.tooltip.Mount()
	m.modals.Reset()
	m.filter.Reset()
	m.charts.Bootstrap()
	m.rebuildFocusRing(focusedID)

	if cmd := m.flash.Schedule(); cmd != nil {
		m.pending = append(m.pending, cmd)
	}
}

// rebuildFocusRing collects the page's form controls and restores focus to
// the control with the given ID when it still exists.
func (m *Model) rebuildFocusRing(focusedID string) {
	m.focusables = m.Doc.Root.FindAll(func(e *markup.Element) bool {
		return e.Tag == "select" || e.Tag == "input"
	})
	m.inputs = make(map[*markup.Element]*textinput.Model)

	for _, el := range m.focusables {
		if el.Tag != "input" || !textEditable(el) {
			continue
		}
		ti := textinput.New()
		ti.SetValue(el.Value)
		ti.Prompt = ""
		ti.CharLimit = 64
		ti.Width = 14
		m.inputs[el] = &ti
	}

	m.focusIdx = 0
	for i, el := range m.focusables {
		if focusedID != "" && el.ID == focusedID {
			m.focusIdx = i
			break
		}
	}
	if el := m.focusedControl(); el != nil {
		m.focusStart = el.Value
		if ti := m.inputs[el]; ti != nil {
			ti.Focus()
		}
	}
}

// textEditable reports whether the input edits free text (as opposed to a
// checkbox or radio toggle).
func textEditable(e *markup.Element) bool {
	switch e.Attr("type") {
	case "checkbox", "radio":
		return false
	}
	return true
}

func (m *Model) focusedControl() *markup.Element {
	if m.focusIdx < 0 || m.focusIdx >= len(m.focusables) {
		return nil
	}
	return m.focusables[m.focusIdx]
}

// cycleFocus blurs the current control and focuses the next one. Blur fires
// change-on-commit semantics for edited controls.
func (m *Model) cycleFocus(delta int) {
	if len(m.focusables) == 0 {
		return
	}
	if el := m.focusedControl(); el != nil {
		m.blurControl(el)
	}
	// Blur handlers may have rebuilt the page (a committed date field
	// resubmits its form); the ring is fresh then and focus already set.
	if len(m.focusables) == 0 {
		return
	}
	m.focusIdx = (m.focusIdx + delta + len(m.focusables)) % len(m.focusables)
	if el := m.focusedControl(); el != nil {
		m.focusStart = el.Value
		if ti := m.inputs[el]; ti != nil {
			ti.Focus()
		}
	}
}

// blurControl commits a control: change first when the value moved, then
// blur.
func (m *Model) blurControl(el *markup.Element) {
	if ti := m.inputs[el]; ti != nil {
		ti.Blur()
	}
	changed := el.Value != m.focusStart
	if changed {
		m.dispatch(&markup.Event{Type: markup.Change, Target: el})
	}
	m.dispatch(&markup.Event{Type: markup.Blur, Target: el})
}

// dispatch routes an event through the document and collects any prompt the
// guard opened along the way.
func (m *Model) dispatch(ev *markup.Event) bool {
	allowed := m.Doc.Dispatch(ev)
	if cmd := m.confirm.StartCmd(); cmd != nil {
		m.pending = append(m.pending, cmd)
	}
	return allowed
}

// performDefault executes an event's default action. Also the guard's resume
// path for accepted confirmations.
func (m *Model) performDefault(ev *markup.Event) {
	switch ev.Type {
	case markup.Submit:
		m.performSubmit(ev.Target)
	case markup.Click:
		if del := ev.Target.Closest(hasAttr(attrDelete)); del != nil {
			m.deleteMeasurement(del.Attr(attrDelete))
			return
		}
		btn := ev.Target.Closest(func(e *markup.Element) bool {
			return e.Tag == "button" && e.Attr("type") == "submit"
		})
		if btn != nil {
			if form := btn.Closest(func(e *markup.Element) bool { return e.Tag == "form" }); form != nil {
				m.submitForm(form)
			}
		}
	}
}

// submitForm is the explicit submission path: the submit event runs through
// the document so the guard can intercept it.
func (m *Model) submitForm(form *markup.Element) {
	ev := &markup.Event{Type: markup.Submit, Target: form}
	if m.dispatch(ev) {
		m.performSubmit(form)
	}
}

// performSubmit is the navigation analog of a form submission. The filter
// controller calls it directly, mirroring the way scripted submission skips
// submit handlers.
func (m *Model) performSubmit(form *markup.Element) {
	switch form.ID {
	case "filter":
		m.Params = m.readFilterParams(form)
		m.reload()
	case "entry":
		m.addMeasurement(form)
	}
}

func (m *Model) readFilterParams(form *markup.Element) FilterParams {
	value := func(id string) string {
		if el := form.Find(func(e *markup.Element) bool { return e.ID == id }); el != nil {
			return el.Value
		}
		return ""
	}
	return FilterParams{
		Indicator: value("indicator"),
		From:      value("from"),
		To:        value("to"),
		Search:    value("search"),
		Flagged:   value("flagged") == "on",
	}
}

func (m *Model) addMeasurement(form *markup.Element) {
	input := form.Find(func(e *markup.Element) bool { return e.ID == "value" })
	if input == nil {
		return
	}
	ind := m.Data.IndicatorByID(m.Params.Indicator)
	if ind == nil {
		m.setStatus("Select an indicator before adding a measurement", true)
		return
	}
	v, ok := numfmt.Parse(input.Value)
	if !ok {
		m.setStatus("Enter a numeric value", true)
		return
	}

	m.seq++
	rec := Measurement{
		ID:        fmt.Sprintf("m%d", m.seq),
		Indicator: ind.ID,
		Date:      time.Now().Format("2006-01-02"),
		Value:     v,
	}
	m.Data.Add(rec)

	m.nextFlashes = append(m.nextFlashes, FlashItem{Category: "success", Text: "Measurement recorded"})
	if m.Data.outOfRange(rec) {
		m.nextFlashes = append(m.nextFlashes, FlashItem{Category: "warning", Text: "Value is outside the norm range"})
	}
	m.reload()
}

func (m *Model) deleteMeasurement(id string) {
	if !m.Data.Delete(id) {
		return
	}
	m.nextFlashes = append(m.nextFlashes, FlashItem{Category: "success", Text: "Measurement deleted"})
	m.reload()
}

// setStatus shows a transient status line message.
func (m *Model) setStatus(text string, isError bool) {
	m.StatusMessage = text
	m.StatusIsError = isError
	m.pending = append(m.pending, tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	}))
}

func (m *Model) drain() []tea.Cmd {
	cmds := m.pending
	m.pending = nil
	return cmds
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	cmds := m.drain()
	cmds = append(cmds, textinput.Blink)
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

	case ClearStatusMsg:
		m.StatusMessage = ""
		m.StatusIsError = false

	case flashSweepMsg, flashFadedMsg:
		if cmd := m.flash.Update(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}

	case debounceMsg:
		m.filter.Update(msg)

	case copyFeedbackDoneMsg:
		m.clip.Update(msg)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.confirm.Active() {
			cmds = append(cmds, m.confirm.Update(msg))
			break
		}
		if m.helpOpen {
			switch msg.String() {
			case "esc", "q", "enter", "?":
				m.helpOpen = false
			}
			break
		}
		cmds = append(cmds, m.handleKey(msg)...)

	case tea.MouseMsg:
		if m.confirm.Active() || m.helpOpen {
			break
		}
		m.handleMouse(msg)

	default:
		// huh's internal messages must reach an active prompt form.
		if m.confirm.Active() {
			cmds = append(cmds, m.confirm.Update(msg))
		}
	}

	cmds = append(cmds, m.drain()...)
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) []tea.Cmd {
	var cmds []tea.Cmd
	key := msg.String()

	switch key {
	case "esc":
		m.dispatch(&markup.Event{Type: markup.KeyDown, Target: m.keyTarget(), Key: "esc"})
		return cmds
	case "tab":
		m.cycleFocus(1)
		return cmds
	case "shift+tab":
		m.cycleFocus(-1)
		return cmds
	}

	el := m.focusedControl()
	editing := el != nil && m.inputs[el] != nil && m.inputs[el].Focused()

	if !editing {
		switch key {
		case "q":
			return []tea.Cmd{tea.Quit}
		case "?":
			m.helpOpen = true
			return cmds
		}
	}

	if el == nil {
		return cmds
	}

	switch {
	case el.Tag == "select":
		switch key {
		case "enter", " ", "down":
			m.cycleSelect(el, 1)
		case "up":
			m.cycleSelect(el, -1)
		}

	case el.Tag == "input" && el.Attr("type") == "checkbox":
		if key == "enter" || key == " " {
			m.toggleCheckbox(el)
		}

	default:
		if key == "enter" {
			if form := el.Closest(func(e *markup.Element) bool { return e.Tag == "form" }); form != nil {
				m.blurControl(el)
				m.submitForm(form)
			}
			return cmds
		}
		ti := m.inputs[el]
		if ti == nil {
			return cmds
		}
		before := ti.Value()
		updated, cmd := ti.Update(msg)
		*ti = updated
		cmds = append(cmds, cmd)
		if updated.Value() != before {
			el.Value = updated.Value()
			m.dispatch(&markup.Event{Type: markup.Input, Target: el})
		}
	}
	return cmds
}

// cycleSelect steps the select to its next option and fires change.
func (m *Model) cycleSelect(el *markup.Element, delta int) {
	var options []*markup.Element
	for _, c := range el.Children {
		if c.Tag == "option" {
			options = append(options, c)
		}
	}
	if len(options) == 0 {
		return
	}
	idx := 0
	for i, opt := range options {
		if opt.Value == el.Value {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(options)) % len(options)
	if options[idx].Value == el.Value {
		return
	}
	el.Value = options[idx].Value
	m.dispatch(&markup.Event{Type: markup.Change, Target: el})
}

func (m *Model) toggleCheckbox(el *markup.Element) {
	if el.Value == "on" {
		el.Value = ""
	} else {
		el.Value = "on"
	}
	m.dispatch(&markup.Event{Type: markup.Change, Target: el})
}

func (m *Model) keyTarget() *markup.Element {
	if el := m.focusedControl(); el != nil {
		return el
	}
	return m.Doc.Root
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	action := m.Mouse.HandleMouse(msg)

	target := m.Doc.Root
	if action.Region != nil {
		if el, ok := action.Region.Data.(*markup.Element); ok && el != nil {
			target = el
		}
	}

	switch action.Type {
	case mouse.ActionHover:
		m.dispatch(&markup.Event{Type: markup.MouseMove, Target: target, X: action.X, Y: action.Y})

	case mouse.ActionClick:
		if idx := m.focusIndexOf(target); idx >= 0 && idx != m.focusIdx {
			if el := m.focusedControl(); el != nil {
				m.blurControl(el)
			}
			m.focusIdx = idx
			if el := m.focusedControl(); el != nil {
				m.focusStart = el.Value
				if ti := m.inputs[el]; ti != nil {
					ti.Focus()
				}
			}
		}
		ev := &markup.Event{Type: markup.Click, Target: target, X: action.X, Y: action.Y}
		if m.dispatch(ev) {
			m.performDefault(ev)
		}

	case mouse.ActionScrollUp, mouse.ActionScrollDown:
		m.dispatch(&markup.Event{Type: markup.Scroll, Target: target, X: action.X, Y: action.Y})
	}
}

func (m *Model) focusIndexOf(target *markup.Element) int {
	control := target.Closest(func(e *markup.Element) bool {
		return e.Tag == "select" || e.Tag == "input"
	})
	if control == nil {
		return -1
	}
	for i, el := range m.focusables {
		if el == control {
			return i
		}
	}
	return -1
}
