package board

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// spliceOverlay draws over on top of base at cell (x, y), clamping to the
// screen width. Base styling survives on either side of the overlay.
func spliceOverlay(base, over string, x, y, screenW int) string {
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}

	baseLines := strings.Split(base, "\n")
	overLines := strings.Split(over, "\n")

	ow := 0
	for _, l := range overLines {
		if w := ansi.StringWidth(l); w > ow {
			ow = w
		}
	}
	if ow == 0 {
		return base
	}
	if x+ow > screenW {
		x = screenW - ow
		if x < 0 {
			x = 0
		}
	}

	for i, ol := range overLines {
		row := y + i
		for row >= len(baseLines) {
			baseLines = append(baseLines, "")
		}
		line := baseLines[row]
		if w := ansi.StringWidth(line); w < x+ow {
			line += strings.Repeat(" ", x+ow-w)
		}
		left := ansi.Truncate(line, x, "")
		right := ansi.TruncateLeft(line, x+ow, "")
		pad := ow - ansi.StringWidth(ol)
		baseLines[row] = left + ol + strings.Repeat(" ", pad) + right
	}
	return strings.Join(baseLines, "\n")
}
