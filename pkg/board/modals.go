package board

import (
	"strings"

	"github.com/mkarpov/vitals/internal/markup"
)

// ModalController manages dialog open/close state. Open and Close are
// exported operations so page code can drive dialogs directly; the markup
// triggers (open-target references, close intents, overlay clicks, Escape)
// are delegated handlers over the same two operations.
//
// Invariant: a dialog's open class and its aria-hidden attribute always
// change together.
type ModalController struct {
	doc  *markup.Document
	open *markup.Element
}

func newModalController(doc *markup.Document) *ModalController {
	return &ModalController{doc: doc}
}

// Attach registers the delegated trigger handlers. Call once.
func (c *ModalController) Attach() {
	c.doc.On(markup.Click, func(ev *markup.Event) {
		if opener := ev.Target.Closest(hasAttr(AttrModalOpen)); opener != nil {
			target := c.doc.ByID(strings.TrimPrefix(opener.Attr(AttrModalOpen), "#"))
			if target != nil {
				c.Open(target)
			}
			ev.PreventDefault()
			return
		}

		if closer := ev.Target.Closest(hasAttr(AttrModalClose)); closer != nil {
			dialog := closer.Closest(hasClass(ClassModal))
			if dialog != nil {
				c.Close(dialog)
			}
			return
		}

		// A click directly on the dialog overlay (not inside its content)
		// closes only when the dialog opts in.
		if ev.Target.HasClass(ClassModal) && ev.Target.HasClass(ClassOpen) && ev.Target.HasAttr(AttrOverlayClose) {
			c.Close(ev.Target)
		}
	})

	c.doc.On(markup.KeyDown, func(ev *markup.Event) {
		if ev.Key != "esc" {
			return
		}
		if cur := c.Current(); cur != nil {
			c.Close(cur)
			ev.PreventDefault()
		}
	})
}

// Open marks the dialog open: reveals it, clears its accessibility-hidden
// flag, and flags the document root.
func (c *ModalController) Open(dialog *markup.Element) {
	dialog.AddClass(ClassOpen)
	dialog.SetAttr(AttrAriaHidden, "false")
	c.doc.Root.AddClass(ClassModalOpen)
	c.open = dialog
}

// Close is the inverse of Open.
func (c *ModalController) Close(dialog *markup.Element) {
	dialog.RemoveClass(ClassOpen)
	dialog.SetAttr(AttrAriaHidden, "true")
	c.doc.Root.RemoveClass(ClassModalOpen)
	if c.open == dialog {
		c.open = nil
	}
}

// Current returns the dialog currently marked open, or nil.
func (c *ModalController) Current() *markup.Element {
	return c.open
}

// Reset forgets the open dialog, e.g. after a page rebuild.
func (c *ModalController) Reset() {
	c.open = nil
	c.doc.Root.RemoveClass(ClassModalOpen)
}

func hasAttr(name string) func(*markup.Element) bool {
	return func(e *markup.Element) bool { return e.HasAttr(name) }
}

func hasClass(name string) func(*markup.Element) bool {
	return func(e *markup.Element) bool { return e.HasClass(name) }
}
