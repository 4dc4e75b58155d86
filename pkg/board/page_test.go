package board

import (
	"strings"
	"testing"

	"golang.org/x/text/language"

	"github.com/mkarpov/vitals/internal/markup"
	"github.com/mkarpov/vitals/internal/numfmt"
)

func englishFormatter() *numfmt.Formatter {
	return numfmt.NewFormatter(language.English)
}

func TestBuildPageFlashes(t *testing.T) {
	ds := seedDataset()
	flashes := []FlashItem{
		{Category: "success", Text: "Measurement recorded"},
		{Category: "warning", Text: "Value is outside the norm range"},
	}
	page := buildPage(ds, FilterParams{}, flashes, englishFormatter())
	doc := markup.NewDocument(page)

	box := page.Find(hasClass(ClassFlashes))
	if box == nil {
		t.Fatal("no flash container")
	}
	if !box.HasAttr(AttrAutoHide) {
		t.Error("flash container should opt into auto-hide")
	}

	items := box.FindAll(hasClass(ClassFlash))
	if len(items) != 2 {
		t.Fatalf("got %d flash items, want 2", len(items))
	}
	if !items[0].HasClass("success") || !items[1].HasClass("warning") {
		t.Error("flash items missing their category class")
	}
	if doc.ByID("flash-0-close") == nil {
		t.Error("flash item missing its dismiss control")
	}
}

func TestBuildPageNoFlashes(t *testing.T) {
	page := buildPage(seedDataset(), FilterParams{}, nil, englishFormatter())
	if page.Find(hasClass(ClassFlashes)) != nil {
		t.Error("empty flash list still produced a container")
	}
}

func TestBuildPageFilterForm(t *testing.T) {
	params := FilterParams{Indicator: "pulse", From: "2026-08-19", Search: "run", Flagged: true}
	page := buildPage(seedDataset(), params, nil, englishFormatter())
	doc := markup.NewDocument(page)

	form := doc.ByID("filter")
	if form == nil {
		t.Fatal("no filter form")
	}
	if !form.HasAttr(AttrAutoSubmit) {
		t.Error("filter form should opt into auto-submit")
	}

	if got := doc.ByID("indicator").Value; got != "pulse" {
		t.Errorf("indicator: got %q", got)
	}
	if got := doc.ByID("from").Value; got != "2026-08-19" {
		t.Errorf("from: got %q", got)
	}
	if got := doc.ByID("flagged").Value; got != "on" {
		t.Errorf("flagged: got %q, want on", got)
	}

	search := doc.ByID("search")
	if search.Value != "run" {
		t.Errorf("search: got %q", search.Value)
	}
	if !search.HasAttr(AttrAutoSubmitText) {
		t.Error("search field should opt into debounced auto-submit individually")
	}

	// One option per indicator plus the all-indicators choice.
	sel := doc.ByID("indicator")
	options := sel.FindAll(func(e *markup.Element) bool { return e.Tag == "option" })
	if len(options) != 5 {
		t.Errorf("got %d options, want 5", len(options))
	}
	if options[0].Value != "" {
		t.Errorf("first option: got %q, want the all-indicators value", options[0].Value)
	}
}

func TestBuildPageEntryForm(t *testing.T) {
	page := buildPage(seedDataset(), FilterParams{Indicator: "pulse"}, nil, englishFormatter())
	doc := markup.NewDocument(page)

	value := doc.ByID("value")
	if value == nil {
		t.Fatal("no value input")
	}
	if !value.HasAttr(AttrNumeric) {
		t.Error("value input not marked numeric")
	}
	if got := value.Attr(AttrMin); got != "50" {
		t.Errorf("min: got %q, want 50", got)
	}
	if got := value.Attr(AttrMax); got != "90" {
		t.Errorf("max: got %q, want 90", got)
	}
	if got := value.Attr(AttrTip); got != "Norm 50–90 bpm" {
		t.Errorf("tip: got %q", got)
	}
}

func TestBuildPageEntryFormWithoutBounds(t *testing.T) {
	page := buildPage(seedDataset(), FilterParams{Indicator: "weight"}, nil, englishFormatter())
	doc := markup.NewDocument(page)

	value := doc.ByID("value")
	if value.HasAttr(AttrMin) || value.HasAttr(AttrMax) {
		t.Error("unbounded indicator should not declare bounds")
	}
	if got := value.Attr(AttrTip); got != "No norm bounds" {
		t.Errorf("tip: got %q", got)
	}
}

func TestBuildPageTable(t *testing.T) {
	page := buildPage(seedDataset(), FilterParams{Indicator: "pulse"}, nil, englishFormatter())
	doc := markup.NewDocument(page)

	table := doc.ByID("measurements")
	if table == nil {
		t.Fatal("no table")
	}
	if len(table.Children) != 4 {
		t.Fatalf("got %d rows, want the 4 pulse measurements", len(table.Children))
	}

	// m4 (96 bpm) violates the 50-90 norm.
	flagged := doc.ByID("row-m4")
	if !flagged.HasClass(ClassInvalid) {
		t.Error("out-of-range row not flagged")
	}
	if doc.ByID("row-m1").HasClass(ClassInvalid) {
		t.Error("in-range row flagged")
	}
	if got := flagged.Attr(AttrTip); got != "Norm 50–90 bpm" {
		t.Errorf("row tip: got %q", got)
	}

	val := doc.ByID("rowval-m1")
	if val.Value != "62" || val.Text != "62" {
		t.Errorf("value cell: got value %q text %q", val.Value, val.Text)
	}

	del := doc.ByID("del-m1")
	if got := del.Attr(AttrConfirm); got != "Delete this measurement?" {
		t.Errorf("delete guard prompt: got %q", got)
	}
	if got := del.Attr(attrDelete); got != "m1" {
		t.Errorf("delete action reference: got %q", got)
	}

	if got := doc.ByID("copy-m1").Attr(AttrCopyTarget); got != "#rowval-m1" {
		t.Errorf("copy target: got %q", got)
	}
	if got := doc.ByID("open-m1").Attr(AttrModalOpen); got != "#detail-m1" {
		t.Errorf("dialog reference: got %q", got)
	}
}

func TestBuildPageEscapesNotes(t *testing.T) {
	ds := seedDataset()
	ds.Measurements[0].Note = `<script>alert("x")</script>`

	page := buildPage(ds, FilterParams{Indicator: "pulse"}, nil, englishFormatter())
	doc := markup.NewDocument(page)

	note := doc.ByID("rownote-m1")
	if strings.Contains(note.Text, "<script>") {
		t.Error("note text not escaped")
	}
	if !strings.Contains(note.Text, "&lt;script&gt;") {
		t.Errorf("note text: got %q", note.Text)
	}
}

func TestBuildPageDetailDialogs(t *testing.T) {
	page := buildPage(seedDataset(), FilterParams{Indicator: "pulse"}, nil, englishFormatter())
	doc := markup.NewDocument(page)

	dlg := doc.ByID("detail-m1")
	if dlg == nil {
		t.Fatal("no detail dialog for a listed measurement")
	}
	if !dlg.HasClass(ClassModal) {
		t.Error("dialog missing the modal class")
	}
	if got := dlg.Attr(AttrAriaHidden); got != "true" {
		t.Errorf("aria-hidden: got %q, want true while closed", got)
	}
	if !dlg.HasAttr(AttrOverlayClose) {
		t.Error("dialog should opt into overlay close")
	}
	if dlg.Find(hasAttr(AttrModalClose)) == nil {
		t.Error("dialog missing its close control")
	}
}

func TestBuildPageChartCanvas(t *testing.T) {
	page := buildPage(seedDataset(), FilterParams{Indicator: "pulse"}, nil, englishFormatter())
	doc := markup.NewDocument(page)

	canvas := doc.ByID("chart-pulse")
	if canvas == nil {
		t.Fatal("no chart canvas for the selected indicator")
	}
	if !canvas.HasClass(ClassChart) {
		t.Error("canvas missing the chart class")
	}
	if got := canvas.Attr(AttrChartKind); got != "line" {
		t.Errorf("kind: got %q", got)
	}
	if got := canvas.Attr(AttrChartLabel); got != "Resting pulse, bpm" {
		t.Errorf("label: got %q", got)
	}
	if got := canvas.Attr(AttrChartXs); got != `["2026-08-18","2026-08-19","2026-08-20","2026-08-21"]` {
		t.Errorf("labels: got %s", got)
	}
	if got := canvas.Attr(AttrChartYs); got != "[62,65,70,96]" {
		t.Errorf("values: got %s", got)
	}
	if got := canvas.Attr(AttrChartMin); got != "50" {
		t.Errorf("min: got %q", got)
	}
	if got := canvas.Attr(AttrChartMax); got != "90" {
		t.Errorf("max: got %q", got)
	}
}

func TestBuildPageNoChartWithoutSelection(t *testing.T) {
	page := buildPage(seedDataset(), FilterParams{}, nil, englishFormatter())
	found := page.FindAll(func(e *markup.Element) bool { return e.Tag == "canvas" })
	if len(found) != 0 {
		t.Errorf("got %d canvases with no indicator selected, want 0", len(found))
	}
}

func TestDatasetFiltered(t *testing.T) {
	ds := seedDataset()

	t.Run("by indicator", func(t *testing.T) {
		got := ds.Filtered(FilterParams{Indicator: "temp"})
		if len(got) != 2 {
			t.Errorf("got %d, want 2", len(got))
		}
	})

	t.Run("by date range", func(t *testing.T) {
		got := ds.Filtered(FilterParams{Indicator: "pulse", From: "2026-08-19", To: "2026-08-20"})
		if len(got) != 2 {
			t.Errorf("got %d, want 2", len(got))
		}
	})

	t.Run("flagged only", func(t *testing.T) {
		got := ds.Filtered(FilterParams{Flagged: true})
		if len(got) != 2 { // m4 (96 bpm) and m8 (37.4 °C)
			t.Errorf("got %d, want 2", len(got))
		}
	})

	t.Run("fuzzy note search", func(t *testing.T) {
		got := ds.Filtered(FilterParams{Search: "coffee"})
		if len(got) != 1 || got[0].ID != "m2" {
			t.Errorf("got %v, want only m2", got)
		}
	})

	t.Run("unbounded indicator never flags", func(t *testing.T) {
		got := ds.Filtered(FilterParams{Indicator: "weight", Flagged: true})
		if len(got) != 0 {
			t.Errorf("got %d, want 0", len(got))
		}
	})
}
