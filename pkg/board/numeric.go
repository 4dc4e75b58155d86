package board

import (
	"github.com/mkarpov/vitals/internal/markup"
	"github.com/mkarpov/vitals/internal/numfmt"
)

// NumericController normalizes and range-checks inputs marked numeric when
// they lose focus. Out-of-range values are flagged with the invalid class;
// unparsable values skip the bounds check entirely.
type NumericController struct {
	doc *markup.Document
}

func newNumericController(doc *markup.Document) *NumericController {
	return &NumericController{doc: doc}
}

// Attach registers the delegated blur handler. Call once.
func (c *NumericController) Attach() {
	c.doc.On(markup.Blur, func(ev *markup.Event) {
		el := ev.Target
		if !el.HasAttr(AttrNumeric) {
			return
		}

		el.Value = numfmt.Normalize(el.Value)

		v, ok := numfmt.Parse(el.Value)
		if !ok {
			return
		}

		outOfRange := false
		if min, ok := numfmt.Parse(el.Attr(AttrMin)); ok && el.HasAttr(AttrMin) && v < min {
			outOfRange = true
		}
		if max, ok := numfmt.Parse(el.Attr(AttrMax)); ok && el.HasAttr(AttrMax) && v > max {
			outOfRange = true
		}

		if outOfRange {
			el.AddClass(ClassInvalid)
		} else {
			el.RemoveClass(ClassInvalid)
		}
	})
}
