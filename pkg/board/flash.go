package board

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mkarpov/vitals/internal/markup"
)

// flashSweepMsg fires when the auto-hide delay for the flash container
// elapses.
type flashSweepMsg struct {
	gen int
}

// flashFadedMsg fires when the fade transition of swept items completes.
type flashFadedMsg struct {
	gen int
}

// FlashController removes notification banner items: per-item dismiss
// controls immediately, and the whole container on a timer when it opts into
// auto-hide.
type FlashController struct {
	doc      *markup.Document
	autoHide time.Duration
	fade     time.Duration

	// gen invalidates timers scheduled against a previous page render.
	gen int
}

func newFlashController(doc *markup.Document, autoHide, fade time.Duration) *FlashController {
	return &FlashController{doc: doc, autoHide: autoHide, fade: fade}
}

// Attach registers the delegated dismiss handler. Call once.
func (c *FlashController) Attach() {
	c.doc.On(markup.Click, func(ev *markup.Event) {
		ctl := ev.Target.Closest(func(e *markup.Element) bool { return e.HasAttr(AttrDismiss) })
		if ctl == nil {
			return
		}
		item := ctl.Closest(func(e *markup.Element) bool { return e.HasClass(ClassFlash) })
		if item == nil {
			return
		}
		item.Remove()
		ev.PreventDefault()
	})
}

// Schedule arms the auto-hide timer for the current page. Returns nil when
// there is no container or it does not opt in.
func (c *FlashController) Schedule() tea.Cmd {
	c.gen++
	container := c.container()
	if container == nil || !container.HasAttr(AttrAutoHide) {
		return nil
	}
	gen := c.gen
	return tea.Tick(c.autoHide, func(time.Time) tea.Msg {
		return flashSweepMsg{gen: gen}
	})
}

// Update advances the sweep state machine. Stale-generation timers from a
// previous page are ignored.
func (c *FlashController) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case flashSweepMsg:
		if msg.gen != c.gen {
			return nil
		}
		container := c.container()
		if container == nil {
			return nil
		}
		items := c.items(container)
		if len(items) == 0 {
			return nil
		}
		for _, item := range items {
			item.AddClass(ClassFading)
		}
		gen := c.gen
		return tea.Tick(c.fade, func(time.Time) tea.Msg {
			return flashFadedMsg{gen: gen}
		})

	case flashFadedMsg:
		if msg.gen != c.gen {
			return nil
		}
		container := c.container()
		if container == nil {
			return nil
		}
		for _, item := range c.items(container) {
			if item.HasClass(ClassFading) {
				item.Remove()
			}
		}
	}
	return nil
}

func (c *FlashController) container() *markup.Element {
	return c.doc.Root.Find(func(e *markup.Element) bool { return e.HasClass(ClassFlashes) })
}

func (c *FlashController) items(container *markup.Element) []*markup.Element {
	items := container.FindAll(func(e *markup.Element) bool { return e.HasClass(ClassFlash) })
	return items
}
