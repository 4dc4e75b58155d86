package board

import (
	"github.com/mkarpov/vitals/internal/markup"
)

// tooltipOffset keeps the tooltip from sitting under the pointer.
const tooltipOffsetX = 2

// TooltipController owns the single floating tooltip. It tracks the element
// currently hovered with non-empty tip text and follows the pointer while
// showing; leaving the element or scrolling hides it. The tooltip element is
// created once and reused, and it never registers hit regions, so it cannot
// trap hover state on itself.
type TooltipController struct {
	doc *markup.Document

	el     *markup.Element
	active *markup.Element
	x, y   int
}

func newTooltipController(doc *markup.Document) *TooltipController {
	c := &TooltipController{
		doc: doc,
		el:  markup.New("tooltip").AddClass("tooltip"),
	}
	c.Mount()
	return c
}

// Mount attaches the reused tooltip element to the current page root. Call
// after every page rebuild; hovering state never survives navigation.
func (c *TooltipController) Mount() {
	c.hide()
	c.el.Remove()
	c.doc.Root.Append(c.el)
}

// Attach registers the delegated pointer handlers. Call once.
func (c *TooltipController) Attach() {
	c.doc.On(markup.MouseMove, func(ev *markup.Event) {
		target := ev.Target.Closest(func(e *markup.Element) bool { return e.HasAttr(AttrTip) })
		if target == nil || target.Attr(AttrTip) == "" {
			c.hide()
			return
		}
		if target != c.active {
			c.show(target)
		} else {
			// Tip text can change while showing (copy feedback does this).
			c.el.Text = target.Attr(AttrTip)
		}
		c.move(ev.X, ev.Y)
	})

	c.doc.On(markup.Scroll, func(*markup.Event) {
		c.hide()
	})
}

func (c *TooltipController) show(target *markup.Element) {
	c.active = target
	c.el.Text = target.Attr(AttrTip)
	c.el.AddClass("visible")
}

func (c *TooltipController) hide() {
	c.active = nil
	c.el.RemoveClass("visible")
}

func (c *TooltipController) move(x, y int) {
	c.x = x + tooltipOffsetX
	c.y = y + 1
}

// Visible reports whether the tooltip is showing.
func (c *TooltipController) Visible() bool {
	return c.active != nil
}

// Active returns the element the tooltip is tracking, or nil.
func (c *TooltipController) Active() *markup.Element {
	return c.active
}

// Text returns the current tooltip text.
func (c *TooltipController) Text() string {
	return c.el.Text
}

// Pos returns the tooltip's screen position.
func (c *TooltipController) Pos() (int, int) {
	return c.x, c.y
}
