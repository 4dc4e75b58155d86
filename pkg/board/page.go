package board

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/mkarpov/vitals/internal/markup"
	"github.com/mkarpov/vitals/internal/numfmt"
)

// attrDelete marks a control whose default click action deletes the
// referenced measurement. A page action, not a controller marker.
const attrDelete = "data-delete"

// FilterParams are the filter form's current values.
type FilterParams struct {
	Indicator string
	From      string
	To        string
	Search    string
	Flagged   bool // only measurements outside their norm bounds
}

// FlashItem is a one-shot notification rendered into the next page.
type FlashItem struct {
	Category string // success, warning, danger or info
	Text     string
}

// buildPage renders the dataset into the markup tree the controllers scan.
// Every rebuild is a full page load: controller references into the old tree
// are invalidated by the callers.
func buildPage(ds *Dataset, params FilterParams, flashes []FlashItem, formatter *numfmt.Formatter) *markup.Element {
	body := markup.New("body").WithID("body")

	if len(flashes) > 0 {
		box := markup.New("div").AddClass(ClassFlashes).SetAttr(AttrAutoHide, "")
		for i, f := range flashes {
			id := fmt.Sprintf("flash-%d", i)
			item := markup.New("div").
				WithID(id).
				AddClass(ClassFlash).
				AddClass(f.Category).
				WithText(markup.Escape(f.Text))
			item.Append(markup.New("button").
				WithID(id + "-close").
				SetAttr(AttrDismiss, "").
				WithText("×"))
			box.Append(item)
		}
		body.Append(box)
	}

	body.Append(buildFilterForm(ds, params))
	body.Append(buildEntryForm(ds, params, formatter))

	ind := ds.IndicatorByID(params.Indicator)
	filtered := ds.Filtered(params)

	body.Append(buildTable(ds, filtered, formatter))
	for _, m := range filtered {
		body.Append(buildDetailDialog(ds, m, formatter))
	}

	if ind != nil {
		if canvas := buildChartCanvas(ds, *ind, params); canvas != nil {
			body.Append(canvas)
		}
	}

	return body
}

func buildFilterForm(ds *Dataset, params FilterParams) *markup.Element {
	form := markup.New("form").WithID("filter").SetAttr(AttrAutoSubmit, "")

	sel := markup.New("select").WithID("indicator").WithValue(params.Indicator)
	sel.Append(markup.New("option").WithValue("").WithText("All indicators"))
	for _, ind := range ds.Indicators {
		sel.Append(markup.New("option").WithValue(ind.ID).WithText(ind.Name))
	}

	from := markup.New("input").WithID("from").
		SetAttr("type", "date").
		WithValue(params.From)
	to := markup.New("input").WithID("to").
		SetAttr("type", "date").
		WithValue(params.To)

	flagged := markup.New("input").WithID("flagged").
		SetAttr("type", "checkbox").
		SetAttr(AttrTip, "Show only out-of-range values")
	if params.Flagged {
		flagged.Value = "on"
	}

	// The search field opts into debounced auto-submit individually.
	search := markup.New("input").WithID("search").
		SetAttr("type", "search").
		SetAttr(AttrAutoSubmitText, "").
		SetAttr(AttrTip, "Fuzzy search in notes").
		WithValue(params.Search)

	return form.Append(sel, from, to, flagged, search)
}

// buildEntryForm renders the new-measurement form. The value input carries
// the selected indicator's norm bounds for blur-time validation.
func buildEntryForm(ds *Dataset, params FilterParams, formatter *numfmt.Formatter) *markup.Element {
	form := markup.New("form").WithID("entry")

	value := markup.New("input").WithID("value").
		SetAttr("type", "text").
		SetAttr(AttrNumeric, "")

	ind := ds.IndicatorByID(params.Indicator)
	if ind != nil {
		if ind.HasMin {
			value.SetAttr(AttrMin, strconv.FormatFloat(ind.Min, 'f', -1, 64))
		}
		if ind.HasMax {
			value.SetAttr(AttrMax, strconv.FormatFloat(ind.Max, 'f', -1, 64))
		}
		value.SetAttr(AttrTip, normHint(*ind, formatter))
	}

	submit := markup.New("button").WithID("entry-submit").
		SetAttr("type", "submit").
		WithText("Add")

	return form.Append(value, submit)
}

func buildTable(ds *Dataset, filtered []Measurement, formatter *numfmt.Formatter) *markup.Element {
	table := markup.New("table").WithID("measurements")
	for _, m := range filtered {
		ind := ds.IndicatorByID(m.Indicator)

		row := markup.New("tr").WithID("row-" + m.ID)
		if ind != nil {
			row.SetAttr(AttrTip, normHint(*ind, formatter))
		}
		if ds.outOfRange(m) {
			row.AddClass(ClassInvalid)
		}

		rendered := formatter.Compact(m.Value, 1)
		name := m.Indicator
		if ind != nil {
			name = ind.Name
		}

		row.Append(
			markup.New("td").WithID("rowdate-"+m.ID).WithText(m.Date),
			markup.New("td").WithID("rowname-"+m.ID).WithText(name),
			markup.New("td").WithID("rowval-"+m.ID).WithValue(rendered).WithText(rendered),
			markup.New("td").WithID("rownote-"+m.ID).WithText(markup.Escape(m.Note)),
			markup.New("button").WithID("open-"+m.ID).
				SetAttr(AttrModalOpen, "#detail-"+m.ID).
				WithText("view"),
			markup.New("button").WithID("copy-"+m.ID).
				SetAttr(AttrCopyTarget, "#rowval-"+m.ID).
				SetAttr(AttrTip, "Copy value").
				WithText("copy"),
			markup.New("button").WithID("del-"+m.ID).
				SetAttr(AttrConfirm, "Delete this measurement?").
				SetAttr(attrDelete, m.ID).
				WithText("del"),
		)
		table.Append(row)
	}
	return table
}

func buildDetailDialog(ds *Dataset, m Measurement, formatter *numfmt.Formatter) *markup.Element {
	dlg := markup.New("dialog").WithID("detail-" + m.ID).
		AddClass(ClassModal).
		SetAttr(AttrOverlayClose, "").
		SetAttr(AttrAriaHidden, "true")

	name := m.Indicator
	if ind := ds.IndicatorByID(m.Indicator); ind != nil {
		name = ind.Name
	}

	dlg.Append(
		markup.New("h2").WithID("detail-"+m.ID+"-title").WithText(name),
		markup.New("p").WithID("detail-"+m.ID+"-date").WithText(m.Date),
		markup.New("p").WithID("detail-"+m.ID+"-value").WithText(formatter.Compact(m.Value, 1)),
		markup.New("p").WithID("detail-"+m.ID+"-note").WithText(markup.Escape(m.Note)),
		markup.New("button").WithID("detail-"+m.ID+"-close").
			SetAttr(AttrModalClose, "").
			WithText("close"),
	)
	return dlg
}

// buildChartCanvas declares the selected indicator's history chart. Returns
// nil when there is nothing to plot.
func buildChartCanvas(ds *Dataset, ind Indicator, params FilterParams) *markup.Element {
	var dates []string
	var values []float64
	for _, m := range ds.Filtered(params) {
		if m.Indicator != ind.ID {
			continue
		}
		dates = append(dates, m.Date)
		values = append(values, m.Value)
	}
	if len(values) == 0 {
		return nil
	}

	labelsJSON, err := json.Marshal(dates)
	if err != nil {
		return nil
	}
	valuesJSON, err := json.Marshal(values)
	if err != nil {
		return nil
	}

	label := ind.Name
	if ind.Unit != "" {
		label += ", " + ind.Unit
	}

	canvas := markup.New("canvas").WithID("chart-" + ind.ID).
		AddClass(ClassChart).
		SetAttr(AttrChartKind, "line").
		SetAttr(AttrChartLabel, label).
		SetAttr(AttrChartXs, string(labelsJSON)).
		SetAttr(AttrChartYs, string(valuesJSON))

	if ind.HasMin {
		canvas.SetAttr(AttrChartMin, strconv.FormatFloat(ind.Min, 'f', -1, 64))
	}
	if ind.HasMax {
		canvas.SetAttr(AttrChartMax, strconv.FormatFloat(ind.Max, 'f', -1, 64))
	}

	return canvas
}

// normHint renders an indicator's norm range for tip text.
func normHint(ind Indicator, formatter *numfmt.Formatter) string {
	switch {
	case ind.HasMin && ind.HasMax:
		return fmt.Sprintf("Norm %s–%s %s", formatter.Compact(ind.Min, 1), formatter.Compact(ind.Max, 1), ind.Unit)
	case ind.HasMin:
		return fmt.Sprintf("Norm ≥ %s %s", formatter.Compact(ind.Min, 1), ind.Unit)
	case ind.HasMax:
		return fmt.Sprintf("Norm ≤ %s %s", formatter.Compact(ind.Max, 1), ind.Unit)
	default:
		return "No norm bounds"
	}
}
