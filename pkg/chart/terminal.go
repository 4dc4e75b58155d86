package chart

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Terminal is the built-in engine: it renders line and bar charts as colored
// character grids. Reference series draw as dashed horizontal guides.
type Terminal struct{}

var (
	termPrimaryStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("45"))
	termReferenceStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	termAxisStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	termTitleStyle     = lipgloss.NewStyle().Bold(true)
)

// Render draws cfg into a width x height cell area.
func (Terminal) Render(cfg Config, width, height int) (string, error) {
	if len(cfg.Series) == 0 {
		return "", errors.New("chart: no series")
	}
	primary := cfg.Series[0]
	n := len(primary.Data)
	if n == 0 {
		return "", errors.New("chart: empty primary series")
	}
	if len(cfg.Labels) != n {
		return "", fmt.Errorf("chart: %d labels for %d values", len(cfg.Labels), n)
	}

	format := cfg.Format
	if format == nil {
		format = func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	}

	vmin, vmax := valueRange(cfg.Series)

	axisWidth := maxLen(format(vmin), format(vmax)) + 1
	plotHeight := height - 3 // title, x-axis rule, category labels
	if plotHeight < 3 {
		plotHeight = 3
	}
	colWidth := (width - axisWidth) / n
	if colWidth < 3 {
		colWidth = 3
	}
	plotWidth := colWidth * n

	// Cell grid: '\x00' means empty, 'g' a dashed guide, 'b' a bar cell,
	// 'p' a point marker.
	grid := make([][]byte, plotHeight)
	for i := range grid {
		grid[i] = make([]byte, plotWidth)
	}

	scale := func(v float64) int {
		// Row 0 is the top of the plot.
		frac := (v - vmin) / (vmax - vmin)
		row := plotHeight - 1 - int(frac*float64(plotHeight-1)+0.5)
		if row < 0 {
			row = 0
		}
		if row >= plotHeight {
			row = plotHeight - 1
		}
		return row
	}

	// Guides first so data draws over them.
	for _, s := range cfg.Series[1:] {
		if len(s.BorderDash) == 0 || len(s.Data) == 0 {
			continue
		}
		row := scale(s.Data[0])
		for x := 0; x < plotWidth; x++ {
			if x%2 == 0 {
				grid[row][x] = 'g'
			}
		}
	}

	for i, v := range primary.Data {
		center := i*colWidth + colWidth/2
		row := scale(v)
		if cfg.Kind == "bar" {
			for y := row; y < plotHeight; y++ {
				grid[y][center] = 'b'
			}
		} else {
			grid[row][center] = 'p'
		}
	}

	var sb strings.Builder
	sb.WriteString(termTitleStyle.Render(primary.Label))
	sb.WriteString("\n")

	for y := 0; y < plotHeight; y++ {
		axis := strings.Repeat(" ", axisWidth-1)
		switch y {
		case 0:
			axis = padLeft(format(vmax), axisWidth-1)
		case plotHeight - 1:
			axis = padLeft(format(vmin), axisWidth-1)
		}
		sb.WriteString(termAxisStyle.Render(axis + "│"))
		for x := 0; x < plotWidth; x++ {
			switch grid[y][x] {
			case 'p':
				sb.WriteString(termPrimaryStyle.Render("●"))
			case 'b':
				sb.WriteString(termPrimaryStyle.Render("█"))
			case 'g':
				sb.WriteString(termReferenceStyle.Render("╌"))
			default:
				sb.WriteString(" ")
			}
		}
		sb.WriteString("\n")
	}

	sb.WriteString(termAxisStyle.Render(strings.Repeat(" ", axisWidth-1) + "└" + strings.Repeat("─", plotWidth)))
	sb.WriteString("\n")

	sb.WriteString(strings.Repeat(" ", axisWidth))
	for _, label := range cfg.Labels {
		sb.WriteString(padCenter(clip(label, colWidth), colWidth))
	}

	return sb.String(), nil
}

// valueRange spans every series so guides outside the data remain visible.
func valueRange(series []Series) (float64, float64) {
	first := true
	var vmin, vmax float64
	for _, s := range series {
		for _, v := range s.Data {
			if first {
				vmin, vmax = v, v
				first = false
				continue
			}
			if v < vmin {
				vmin = v
			}
			if v > vmax {
				vmax = v
			}
		}
	}
	if vmin == vmax {
		vmin--
		vmax++
	}
	return vmin, vmax
}

func maxLen(a, b string) int {
	if len(a) > len(b) {
		return len(a)
	}
	return len(b)
}

func padLeft(s string, w int) string {
	if len(s) >= w {
		return s
	}
	return strings.Repeat(" ", w-len(s)) + s
}

func padCenter(s string, w int) string {
	pad := w - len([]rune(s))
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

func clip(s string, w int) string {
	r := []rune(s)
	if len(r) <= w {
		return s
	}
	if w <= 1 {
		return string(r[:w])
	}
	return string(r[:w-1]) + "…"
}
