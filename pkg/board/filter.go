package board

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mkarpov/vitals/internal/markup"
)

// debounceMsg fires when a debounced text field has been quiet long enough.
// A stale generation means the field changed again in the meantime.
type debounceMsg struct {
	control *markup.Element
	gen     int
}

// FilterController resubmits forms that opt into auto-submit. Discrete
// controls submit immediately on change; free-text fields submit only when
// opted in, debounced so rapid edits coalesce into a single submission timed
// from the last keystroke.
type FilterController struct {
	doc      *markup.Document
	debounce time.Duration
	submit   func(form *markup.Element)
	emit     func(tea.Cmd)

	// gens tracks the pending debounce generation per control. A new input
	// event bumps the generation, invalidating any timer already in flight,
	// so at most one resubmission is ever pending per control.
	gens map[*markup.Element]int
}

func newFilterController(doc *markup.Document, debounce time.Duration, submit func(*markup.Element), emit func(tea.Cmd)) *FilterController {
	return &FilterController{
		doc:      doc,
		debounce: debounce,
		submit:   submit,
		emit:     emit,
		gens:     make(map[*markup.Element]int),
	}
}

// Attach registers the delegated change and input handlers. Call once.
func (c *FilterController) Attach() {
	c.doc.On(markup.Change, func(ev *markup.Event) {
		form := autoSubmitForm(ev.Target)
		if form == nil {
			return
		}
		if immediateControl(ev.Target) {
			c.submit(form)
		}
	})

	c.doc.On(markup.Input, func(ev *markup.Event) {
		form := autoSubmitForm(ev.Target)
		if form == nil || !textControl(ev.Target) {
			return
		}
		if !form.HasAttr(AttrAutoSubmitText) && !ev.Target.HasAttr(AttrAutoSubmitText) {
			return
		}
		control := ev.Target
		c.gens[control]++
		gen := c.gens[control]
		c.emit(tea.Tick(c.debounce, func(time.Time) tea.Msg {
			return debounceMsg{control: control, gen: gen}
		}))
	})
}

// Update handles elapsed debounce timers.
func (c *FilterController) Update(msg tea.Msg) {
	dm, ok := msg.(debounceMsg)
	if !ok {
		return
	}
	if c.gens[dm.control] != dm.gen {
		return
	}
	delete(c.gens, dm.control)
	if form := autoSubmitForm(dm.control); form != nil {
		c.submit(form)
	}
}

// Reset drops pending debounce state, e.g. after a page rebuild.
func (c *FilterController) Reset() {
	c.gens = make(map[*markup.Element]int)
}

// autoSubmitForm returns the nearest enclosing auto-submit form, or nil.
func autoSubmitForm(e *markup.Element) *markup.Element {
	return e.Closest(func(el *markup.Element) bool {
		return el.Tag == "form" && el.HasAttr(AttrAutoSubmit)
	})
}

// immediateControl reports whether a change on the control resubmits without
// debouncing.
func immediateControl(e *markup.Element) bool {
	if e.Tag == "select" {
		return true
	}
	if e.Tag != "input" {
		return false
	}
	switch e.Attr("type") {
	case "checkbox", "radio", "date", "time", "datetime-local", "month", "week":
		return true
	}
	return false
}

// textControl reports whether the control is a free-text field subject to the
// opt-in debounced path.
func textControl(e *markup.Element) bool {
	if e.Tag != "input" {
		return false
	}
	switch e.Attr("type") {
	case "", "text", "search", "number":
		return true
	}
	return false
}
