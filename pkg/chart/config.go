// Package chart defines the declarative chart configuration the board builds
// from page markup and the engine boundary that turns a configuration into
// output. The engine is an external collaborator: when none is registered the
// chart bootstrap stays inert and the rest of the page is unaffected.
package chart

// Series is one plotted dataset.
type Series struct {
	Label string    `json:"label"`
	Data  []float64 `json:"data"`
	// BorderDash, when non-empty, draws the series dashed.
	BorderDash []int `json:"borderDash,omitempty"`
	// PointRadius of zero suppresses point markers.
	PointRadius int  `json:"pointRadius"`
	Fill        bool `json:"fill"`
}

// Config describes a complete chart. The shape mirrors the common JS chart
// config layout so an engine targeting one can consume it directly.
type Config struct {
	Kind   string   `json:"type"`
	Labels []string `json:"labels"`
	Series []Series `json:"datasets"`
	// Responsive charts re-render on viewport size changes.
	Responsive bool `json:"responsive"`
	// IndexTooltip enables a shared tooltip across all series at the hovered
	// category index.
	IndexTooltip bool `json:"indexTooltip"`
	// Format renders displayed values; nil engines fall back to plain
	// formatting.
	Format func(float64) string `json:"-"`
}

// Reference builds a flat bound series: the constant repeated across n
// categories, dashed and markerless so it reads as a guide, not data.
func Reference(label string, value float64, n int) Series {
	data := make([]float64, n)
	for i := range data {
		data[i] = value
	}
	return Series{
		Label:       label,
		Data:        data,
		BorderDash:  []int{6, 4},
		PointRadius: 0,
	}
}

// Engine renders a built configuration into terminal output.
type Engine interface {
	Render(cfg Config, width, height int) (string, error)
}
