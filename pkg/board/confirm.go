package board

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/mkarpov/vitals/internal/markup"
)

// defaultConfirmPrompt is used when the marker carries no text.
const defaultConfirmPrompt = "Are you sure?"

// ConfirmController intercepts activation of any element or form marked with
// a confirmation prompt. The guarded event is held until the user decides:
// declining drops it, accepting replays its default action through resume.
type ConfirmController struct {
	doc    *markup.Document
	resume func(*markup.Event)

	form     *huh.Form
	started  bool
	accepted bool
	pending  *markup.Event
}

func newConfirmController(doc *markup.Document, resume func(*markup.Event)) *ConfirmController {
	return &ConfirmController{doc: doc, resume: resume}
}

// Attach registers the delegated guard on clicks and form submissions.
// The guard runs before other controllers so a declined action never reaches
// them.
func (c *ConfirmController) Attach() {
	intercept := func(ev *markup.Event) {
		if c.pending != nil {
			// A prompt is already up; suppress further guarded activity.
			ev.PreventDefault()
			ev.StopPropagation()
			return
		}
		guarded := ev.Target.Closest(func(e *markup.Element) bool { return e.HasAttr(AttrConfirm) })
		if guarded == nil {
			return
		}
		prompt := guarded.Attr(AttrConfirm)
		if prompt == "" {
			prompt = defaultConfirmPrompt
		}
		ev.PreventDefault()
		ev.StopPropagation()
		c.begin(prompt, ev)
	}
	c.doc.On(markup.Click, intercept)
	c.doc.On(markup.Submit, intercept)
}

func (c *ConfirmController) begin(prompt string, ev *markup.Event) {
	c.pending = ev
	c.accepted = false
	c.started = false
	c.form = huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(prompt).
			Affirmative("Yes").
			Negative("No").
			Value(&c.accepted),
	))
}

// Active reports whether a prompt is awaiting a decision.
func (c *ConfirmController) Active() bool {
	return c.pending != nil
}

// StartCmd returns the prompt form's init command exactly once per prompt.
func (c *ConfirmController) StartCmd() tea.Cmd {
	if c.form == nil || c.started {
		return nil
	}
	c.started = true
	return c.form.Init()
}

// Update routes input to the prompt form. On completion the guarded event is
// either replayed or discarded.
func (c *ConfirmController) Update(msg tea.Msg) tea.Cmd {
	if c.pending == nil || c.form == nil {
		return nil
	}

	model, cmd := c.form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		c.form = f
	}

	if c.form.State == huh.StateCompleted {
		ev := c.pending
		accepted := c.accepted
		c.pending = nil
		c.form = nil
		if accepted && c.resume != nil {
			c.resume(ev)
		}
	}
	return cmd
}

// View renders the active prompt, or "".
func (c *ConfirmController) View() string {
	if c.form == nil {
		return ""
	}
	return c.form.View()
}

// Reset drops any pending prompt, e.g. when the page is rebuilt underneath
// it.
func (c *ConfirmController) Reset() {
	c.pending = nil
	c.form = nil
	c.started = false
	c.accepted = false
}
