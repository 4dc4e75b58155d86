package board

import (
	"testing"

	"github.com/mkarpov/vitals/internal/markup"
)

func modalDoc() (*markup.Document, *ModalController) {
	root := markup.New("body")

	opener := markup.New("button").WithID("open-m1").SetAttr(AttrModalOpen, "#detail-m1")
	root.Append(opener)

	dlg := markup.New("dialog").WithID("detail-m1").
		AddClass(ClassModal).
		SetAttr(AttrOverlayClose, "").
		SetAttr(AttrAriaHidden, "true")
	dlg.Append(markup.New("button").WithID("detail-m1-close").SetAttr(AttrModalClose, ""))
	root.Append(dlg)

	doc := markup.NewDocument(root)
	c := newModalController(doc)
	c.Attach()
	return doc, c
}

// checkHidden verifies the open class and the accessibility flag stay paired.
func checkHidden(t *testing.T, dlg *markup.Element, open bool) {
	t.Helper()
	if dlg.HasClass(ClassOpen) != open {
		t.Errorf("open class: got %v, want %v", dlg.HasClass(ClassOpen), open)
	}
	wantAria := "true"
	if open {
		wantAria = "false"
	}
	if got := dlg.Attr(AttrAriaHidden); got != wantAria {
		t.Errorf("aria-hidden: got %q, want %q", got, wantAria)
	}
}

func TestModalOpenViaTrigger(t *testing.T) {
	doc, c := modalDoc()
	dlg := doc.ByID("detail-m1")

	allowed := doc.Dispatch(&markup.Event{Type: markup.Click, Target: doc.ByID("open-m1")})

	if allowed {
		t.Error("opener click should consume its default")
	}
	checkHidden(t, dlg, true)
	if !doc.Root.HasClass(ClassModalOpen) {
		t.Error("root not flagged while a dialog is open")
	}
	if c.Current() != dlg {
		t.Error("Current should return the opened dialog")
	}
}

func TestModalOpenMissingTarget(t *testing.T) {
	doc, c := modalDoc()
	doc.ByID("open-m1").SetAttr(AttrModalOpen, "#nope")

	doc.Dispatch(&markup.Event{Type: markup.Click, Target: doc.ByID("open-m1")})
	if c.Current() != nil {
		t.Error("a dangling reference must not open anything")
	}
}

func TestModalCloseViaButton(t *testing.T) {
	doc, c := modalDoc()
	dlg := doc.ByID("detail-m1")
	c.Open(dlg)

	doc.Dispatch(&markup.Event{Type: markup.Click, Target: doc.ByID("detail-m1-close")})

	checkHidden(t, dlg, false)
	if doc.Root.HasClass(ClassModalOpen) {
		t.Error("root flag not cleared on close")
	}
	if c.Current() != nil {
		t.Error("Current should be nil after close")
	}
}

func TestModalOverlayClose(t *testing.T) {
	doc, c := modalDoc()
	dlg := doc.ByID("detail-m1")
	c.Open(dlg)

	// A click landing on the dialog itself, not its content.
	doc.Dispatch(&markup.Event{Type: markup.Click, Target: dlg})
	checkHidden(t, dlg, false)
}

func TestModalOverlayCloseRequiresOptIn(t *testing.T) {
	doc, c := modalDoc()
	dlg := doc.ByID("detail-m1")
	dlg.RemoveAttr(AttrOverlayClose)
	c.Open(dlg)

	doc.Dispatch(&markup.Event{Type: markup.Click, Target: dlg})
	checkHidden(t, dlg, true)
}

func TestModalEscape(t *testing.T) {
	doc, c := modalDoc()
	dlg := doc.ByID("detail-m1")
	c.Open(dlg)

	allowed := doc.Dispatch(&markup.Event{Type: markup.KeyDown, Target: doc.Root, Key: "esc"})
	if allowed {
		t.Error("escape closing a dialog should consume its default")
	}
	checkHidden(t, dlg, false)

	// Escape with nothing open changes nothing and keeps its default.
	allowed = doc.Dispatch(&markup.Event{Type: markup.KeyDown, Target: doc.Root, Key: "esc"})
	if !allowed {
		t.Error("escape with no open dialog should keep its default")
	}
}

func TestModalOtherKeysIgnored(t *testing.T) {
	doc, c := modalDoc()
	dlg := doc.ByID("detail-m1")
	c.Open(dlg)

	doc.Dispatch(&markup.Event{Type: markup.KeyDown, Target: doc.Root, Key: "q"})
	checkHidden(t, dlg, true)
}

func TestModalReset(t *testing.T) {
	doc, c := modalDoc()
	c.Open(doc.ByID("detail-m1"))
	c.Reset()

	if c.Current() != nil {
		t.Error("Reset should forget the open dialog")
	}
	if doc.Root.HasClass(ClassModalOpen) {
		t.Error("Reset should clear the root flag")
	}
}
