package board

import (
	"testing"
	"time"

	"github.com/mkarpov/vitals/internal/markup"
)

func flashDoc(autoHide bool) (*markup.Document, *markup.Element) {
	root := markup.New("body")
	box := markup.New("div").AddClass(ClassFlashes)
	if autoHide {
		box.SetAttr(AttrAutoHide, "")
	}
	for _, id := range []string{"flash-0", "flash-1"} {
		item := markup.New("div").WithID(id).AddClass(ClassFlash).AddClass("info")
		item.Append(markup.New("button").WithID(id + "-close").SetAttr(AttrDismiss, ""))
		box.Append(item)
	}
	root.Append(box)
	return markup.NewDocument(root), box
}

func TestFlashDismiss(t *testing.T) {
	doc, box := flashDoc(false)
	c := newFlashController(doc, time.Second, time.Millisecond)
	c.Attach()

	closeBtn := doc.ByID("flash-0-close")
	allowed := doc.Dispatch(&markup.Event{Type: markup.Click, Target: closeBtn})

	if allowed {
		t.Error("dismiss click should consume its default")
	}
	if doc.ByID("flash-0") != nil {
		t.Error("dismissed item still in the tree")
	}
	if doc.ByID("flash-1") == nil {
		t.Error("dismiss removed a sibling item")
	}
	if len(box.Children) != 1 {
		t.Errorf("container holds %d items, want 1", len(box.Children))
	}
}

func TestFlashDismissIgnoresOtherClicks(t *testing.T) {
	doc, _ := flashDoc(false)
	c := newFlashController(doc, time.Second, time.Millisecond)
	c.Attach()

	item := doc.ByID("flash-0")
	doc.Dispatch(&markup.Event{Type: markup.Click, Target: item})

	if doc.ByID("flash-0") == nil {
		t.Error("clicking the item body should not dismiss it")
	}
}

func TestFlashSchedule(t *testing.T) {
	t.Run("opted-in container arms the timer", func(t *testing.T) {
		doc, _ := flashDoc(true)
		c := newFlashController(doc, time.Second, time.Millisecond)
		if c.Schedule() == nil {
			t.Error("Schedule returned nil for an auto-hide container")
		}
	})

	t.Run("container without opt-in", func(t *testing.T) {
		doc, _ := flashDoc(false)
		c := newFlashController(doc, time.Second, time.Millisecond)
		if c.Schedule() != nil {
			t.Error("Schedule should return nil without the auto-hide marker")
		}
	})

	t.Run("no container", func(t *testing.T) {
		doc := markup.NewDocument(markup.New("body"))
		c := newFlashController(doc, time.Second, time.Millisecond)
		if c.Schedule() != nil {
			t.Error("Schedule should return nil without a container")
		}
	})
}

func TestFlashSweep(t *testing.T) {
	doc, box := flashDoc(true)
	c := newFlashController(doc, time.Second, time.Millisecond)
	if c.Schedule() == nil {
		t.Fatal("Schedule returned nil")
	}

	cmd := c.Update(flashSweepMsg{gen: c.gen})
	if cmd == nil {
		t.Fatal("sweep should arm the fade timer")
	}
	for _, item := range box.Children {
		if !item.HasClass(ClassFading) {
			t.Errorf("%s not marked fading", item.ID)
		}
	}

	c.Update(flashFadedMsg{gen: c.gen})
	if len(box.Children) != 0 {
		t.Errorf("%d items left after fade, want 0", len(box.Children))
	}
}

func TestFlashSweepStaleGeneration(t *testing.T) {
	doc, box := flashDoc(true)
	c := newFlashController(doc, time.Second, time.Millisecond)
	c.Schedule()
	// A rebuild re-arms the timer; the old one must not fire.
	c.Schedule()

	if cmd := c.Update(flashSweepMsg{gen: c.gen - 1}); cmd != nil {
		t.Error("stale sweep should be ignored")
	}
	for _, item := range box.Children {
		if item.HasClass(ClassFading) {
			t.Errorf("stale sweep marked %s fading", item.ID)
		}
	}
}

func TestFlashSweepSkipsDismissed(t *testing.T) {
	doc, box := flashDoc(true)
	c := newFlashController(doc, time.Second, time.Millisecond)
	c.Attach()
	c.Schedule()

	// One item dismissed by hand before the sweep fires.
	doc.Dispatch(&markup.Event{Type: markup.Click, Target: doc.ByID("flash-0-close")})

	c.Update(flashSweepMsg{gen: c.gen})
	c.Update(flashFadedMsg{gen: c.gen})

	if len(box.Children) != 0 {
		t.Errorf("%d items left, want 0", len(box.Children))
	}
}
