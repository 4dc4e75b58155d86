package board

import (
	"testing"

	"github.com/mkarpov/vitals/internal/markup"
)

func tooltipDoc() (*markup.Document, *TooltipController, *markup.Element) {
	root := markup.New("body")
	row := markup.New("tr").WithID("row-m1").SetAttr(AttrTip, "Norm 50–90 bpm")
	cell := markup.New("td").WithID("rowval-m1")
	row.Append(cell)
	root.Append(row)

	doc := markup.NewDocument(root)
	c := newTooltipController(doc)
	c.Attach()
	return doc, c, cell
}

func hover(doc *markup.Document, el *markup.Element, x, y int) {
	doc.Dispatch(&markup.Event{Type: markup.MouseMove, Target: el, X: x, Y: y})
}

func TestTooltipShowsFromAncestorTip(t *testing.T) {
	doc, c, cell := tooltipDoc()

	// The hovered cell has no tip of its own; the row does.
	hover(doc, cell, 10, 4)

	if !c.Visible() {
		t.Fatal("tooltip should be visible")
	}
	if got := c.Text(); got != "Norm 50–90 bpm" {
		t.Errorf("Text: got %q", got)
	}
	x, y := c.Pos()
	if x != 12 || y != 5 {
		t.Errorf("Pos: got (%d, %d), want (12, 5)", x, y)
	}
}

func TestTooltipFollowsPointer(t *testing.T) {
	doc, c, cell := tooltipDoc()

	hover(doc, cell, 10, 4)
	hover(doc, cell, 15, 4)

	x, y := c.Pos()
	if x != 17 || y != 5 {
		t.Errorf("Pos after move: got (%d, %d), want (17, 5)", x, y)
	}
}

func TestTooltipHidesOffTarget(t *testing.T) {
	doc, c, cell := tooltipDoc()
	hover(doc, cell, 10, 4)

	hover(doc, doc.Root, 0, 0)
	if c.Visible() {
		t.Error("tooltip should hide when leaving the tipped element")
	}
}

func TestTooltipEmptyTipHides(t *testing.T) {
	doc, c, cell := tooltipDoc()
	hover(doc, cell, 10, 4)

	row := doc.ByID("row-m1")
	row.SetAttr(AttrTip, "")
	hover(doc, cell, 11, 4)

	if c.Visible() {
		t.Error("an empty tip should hide the tooltip")
	}
}

func TestTooltipRereadsTextWhileShowing(t *testing.T) {
	doc, c, cell := tooltipDoc()
	hover(doc, cell, 10, 4)

	// Copy feedback swaps tip text under the pointer.
	doc.ByID("row-m1").SetAttr(AttrTip, copiedFeedback)
	hover(doc, cell, 10, 4)

	if got := c.Text(); got != copiedFeedback {
		t.Errorf("Text: got %q, want %q", got, copiedFeedback)
	}
}

func TestTooltipScrollHides(t *testing.T) {
	doc, c, cell := tooltipDoc()
	hover(doc, cell, 10, 4)

	doc.Dispatch(&markup.Event{Type: markup.Scroll, Target: cell})
	if c.Visible() {
		t.Error("scrolling should hide the tooltip")
	}
}

func TestTooltipSingleElementReused(t *testing.T) {
	doc, c, cell := tooltipDoc()
	hover(doc, cell, 10, 4)
	before := c.el

	other := markup.New("button").WithID("copy-m1").SetAttr(AttrTip, "Copy value")
	doc.Root.Append(other)
	hover(doc, other, 20, 6)

	if c.el != before {
		t.Error("tooltip element must be reused across targets")
	}
	if got := c.Text(); got != "Copy value" {
		t.Errorf("Text: got %q", got)
	}

	count := len(doc.Root.FindAll(func(e *markup.Element) bool { return e.Tag == "tooltip" }))
	if count != 1 {
		t.Errorf("found %d tooltip elements, want 1", count)
	}
}

func TestTooltipMountAfterRebuild(t *testing.T) {
	doc, c, cell := tooltipDoc()
	hover(doc, cell, 10, 4)

	doc.SetRoot(markup.New("body"))
	c.Mount()

	if c.Visible() {
		t.Error("hover state must not survive a page rebuild")
	}
	if c.el.Parent != doc.Root {
		t.Error("tooltip element not attached to the new root")
	}
	count := len(doc.Root.FindAll(func(e *markup.Element) bool { return e.Tag == "tooltip" }))
	if count != 1 {
		t.Errorf("found %d tooltip elements after remount, want 1", count)
	}
}
