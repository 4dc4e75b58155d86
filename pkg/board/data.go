package board

import (
	"github.com/sahilm/fuzzy"
)

// Indicator is a measured health metric with optional norm bounds.
type Indicator struct {
	ID     string
	Name   string
	Unit   string
	Min    float64
	Max    float64
	HasMin bool
	HasMax bool
}

// Measurement is one recorded value of an indicator.
type Measurement struct {
	ID        string
	Indicator string
	Date      string // YYYY-MM-DD
	Value     float64
	Note      string
}

// Dataset is the in-memory measurement store backing the demo page.
type Dataset struct {
	Indicators   []Indicator
	Measurements []Measurement
}

// seedDataset returns the built-in sample data.
func seedDataset() *Dataset {
	return &Dataset{
		Indicators: []Indicator{
			{ID: "pulse", Name: "Resting pulse", Unit: "bpm", Min: 50, Max: 90, HasMin: true, HasMax: true},
			{ID: "systolic", Name: "Systolic pressure", Unit: "mmHg", Min: 90, Max: 140, HasMin: true, HasMax: true},
			{ID: "temp", Name: "Body temperature", Unit: "°C", Min: 36, Max: 37.2, HasMin: true, HasMax: true},
			{ID: "weight", Name: "Weight", Unit: "kg"},
		},
		Measurements: []Measurement{
			{ID: "m1", Indicator: "pulse", Date: "2026-08-18", Value: 62, Note: "morning"},
			{ID: "m2", Indicator: "pulse", Date: "2026-08-19", Value: 65, Note: "after coffee"},
			{ID: "m3", Indicator: "pulse", Date: "2026-08-20", Value: 70, Note: "evening"},
			{ID: "m4", Indicator: "pulse", Date: "2026-08-21", Value: 96, Note: "after run"},
			{ID: "m5", Indicator: "systolic", Date: "2026-08-19", Value: 118, Note: "morning"},
			{ID: "m6", Indicator: "systolic", Date: "2026-08-21", Value: 131, Note: "stressful day"},
			{ID: "m7", Indicator: "temp", Date: "2026-08-20", Value: 36.6, Note: ""},
			{ID: "m8", Indicator: "temp", Date: "2026-08-22", Value: 37.4, Note: "slight fever"},
			{ID: "m9", Indicator: "weight", Date: "2026-08-17", Value: 78.4, Note: ""},
			{ID: "m10", Indicator: "weight", Date: "2026-08-24", Value: 77.9, Note: "post vacation"},
		},
	}
}

// IndicatorByID returns the indicator, or nil.
func (d *Dataset) IndicatorByID(id string) *Indicator {
	for i := range d.Indicators {
		if d.Indicators[i].ID == id {
			return &d.Indicators[i]
		}
	}
	return nil
}

// Filtered returns the measurements matching the filter params, in stored
// order. The search term fuzzy-matches measurement notes.
func (d *Dataset) Filtered(params FilterParams) []Measurement {
	var out []Measurement
	for _, m := range d.Measurements {
		if params.Indicator != "" && m.Indicator != params.Indicator {
			continue
		}
		if params.From != "" && m.Date < params.From {
			continue
		}
		if params.To != "" && m.Date > params.To {
			continue
		}
		if params.Flagged && !d.outOfRange(m) {
			continue
		}
		out = append(out, m)
	}

	if params.Search != "" {
		notes := make([]string, len(out))
		for i, m := range out {
			notes[i] = m.Note
		}
		matches := fuzzy.Find(params.Search, notes)
		matched := make([]Measurement, 0, len(matches))
		for _, match := range matches {
			matched = append(matched, out[match.Index])
		}
		out = matched
	}

	return out
}

// outOfRange reports whether a measurement violates its indicator's norm
// bounds.
func (d *Dataset) outOfRange(m Measurement) bool {
	ind := d.IndicatorByID(m.Indicator)
	if ind == nil {
		return false
	}
	if ind.HasMin && m.Value < ind.Min {
		return true
	}
	if ind.HasMax && m.Value > ind.Max {
		return true
	}
	return false
}

// Delete removes a measurement by ID and reports whether it existed.
func (d *Dataset) Delete(id string) bool {
	for i, m := range d.Measurements {
		if m.ID == id {
			d.Measurements = append(d.Measurements[:i], d.Measurements[i+1:]...)
			return true
		}
	}
	return false
}

// Add appends a measurement.
func (d *Dataset) Add(m Measurement) {
	d.Measurements = append(d.Measurements, m)
}
