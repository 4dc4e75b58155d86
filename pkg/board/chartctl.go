package board

import (
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/mkarpov/vitals/internal/markup"
	"github.com/mkarpov/vitals/internal/numfmt"
	"github.com/mkarpov/vitals/pkg/chart"
)

// ChartController translates chart canvases into engine configurations. With
// no engine registered the controller is inert and the rest of the page is
// unaffected. A failure on one canvas is logged and skipped; it never blocks
// the other canvases.
type ChartController struct {
	doc       *markup.Document
	engine    chart.Engine
	formatter *numfmt.Formatter
	log       *zap.Logger

	configs map[*markup.Element]chart.Config
}

func newChartController(doc *markup.Document, engine chart.Engine, formatter *numfmt.Formatter, log *zap.Logger) *ChartController {
	return &ChartController{
		doc:       doc,
		engine:    engine,
		formatter: formatter,
		log:       log,
		configs:   make(map[*markup.Element]chart.Config),
	}
}

// Bootstrap scans the current page for chart canvases and builds their
// configurations. Call after every page build.
func (c *ChartController) Bootstrap() {
	c.configs = make(map[*markup.Element]chart.Config)
	if c.engine == nil {
		return
	}

	canvases := c.doc.Root.FindAll(func(e *markup.Element) bool {
		return e.Tag == "canvas" && e.HasClass(ClassChart)
	})
	for _, canvas := range canvases {
		cfg, err := c.buildConfig(canvas)
		if err != nil {
			c.log.Warn("chart bootstrap failed",
				zap.String("canvas", canvas.ID),
				zap.Error(err))
			continue
		}
		c.configs[canvas] = cfg
	}
}

// buildConfig reads the canvas's declarative attributes into a chart config:
// the primary series plus a dashed flat reference series per declared bound.
func (c *ChartController) buildConfig(canvas *markup.Element) (chart.Config, error) {
	kind := canvas.Attr(AttrChartKind)
	if kind == "" {
		kind = "line"
	}

	var labels []string
	if err := json.Unmarshal([]byte(canvas.Attr(AttrChartXs)), &labels); err != nil {
		return chart.Config{}, fmt.Errorf("labels: %w", err)
	}
	var values []float64
	if err := json.Unmarshal([]byte(canvas.Attr(AttrChartYs)), &values); err != nil {
		return chart.Config{}, fmt.Errorf("values: %w", err)
	}

	cfg := chart.Config{
		Kind:         kind,
		Labels:       labels,
		Responsive:   true,
		IndexTooltip: true,
		Format: func(v float64) string {
			return c.formatter.Compact(v, 1)
		},
	}
	cfg.Series = append(cfg.Series, chart.Series{
		Label:       canvas.Attr(AttrChartLabel),
		Data:        values,
		PointRadius: 3,
	})

	// Malformed bounds degrade to absent, not to a failed canvas.
	if canvas.HasAttr(AttrChartMin) {
		if v, ok := numfmt.Parse(canvas.Attr(AttrChartMin)); ok {
			cfg.Series = append(cfg.Series, chart.Reference("Min", v, len(values)))
		}
	}
	if canvas.HasAttr(AttrChartMax) {
		if v, ok := numfmt.Parse(canvas.Attr(AttrChartMax)); ok {
			cfg.Series = append(cfg.Series, chart.Reference("Max", v, len(values)))
		}
	}

	return cfg, nil
}

// Config returns the built configuration for a canvas.
func (c *ChartController) Config(canvas *markup.Element) (chart.Config, bool) {
	cfg, ok := c.configs[canvas]
	return cfg, ok
}

// Rendered draws the canvas's chart at the given size, or returns "" when the
// canvas has no configuration or the engine fails on it.
func (c *ChartController) Rendered(canvas *markup.Element, width, height int) string {
	cfg, ok := c.configs[canvas]
	if !ok {
		return ""
	}
	out, err := c.engine.Render(cfg, width, height)
	if err != nil {
		c.log.Warn("chart render failed",
			zap.String("canvas", canvas.ID),
			zap.Error(err))
		return ""
	}
	return out
}
