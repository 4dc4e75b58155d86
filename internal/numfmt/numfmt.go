// Package numfmt provides locale-aware number formatting and lenient numeric
// parsing shared by the input validators and the chart value labels. Parsing
// tolerates a comma as the decimal separator, the spelling used throughout
// the seeded measurement data.
package numfmt

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter renders numbers with locale grouping and decimal conventions.
type Formatter struct {
	p *message.Printer
}

// NewFormatter creates a formatter for the given locale tag.
func NewFormatter(tag language.Tag) *Formatter {
	return &Formatter{p: message.NewPrinter(tag)}
}

// Fixed renders v with exactly the given number of fraction digits.
func (f *Formatter) Fixed(v float64, digits int) string {
	return f.p.Sprint(number.Decimal(v,
		number.MinFractionDigits(digits),
		number.MaxFractionDigits(digits)))
}

// Compact renders v with up to maxDigits fraction digits, dropping trailing
// zeros.
func (f *Formatter) Compact(v float64, maxDigits int) string {
	return f.p.Sprint(number.Decimal(v, number.MaxFractionDigits(maxDigits)))
}

// Normalize canonicalizes a lenient numeric spelling: surrounding whitespace
// is trimmed and a comma decimal separator becomes a dot.
func Normalize(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
}

// Parse leniently parses s, accepting either comma or dot as the decimal
// separator. Malformed input yields (NaN, false) rather than an error so
// callers can degrade to skipped bounds checks.
func Parse(s string) (float64, bool) {
	v, err := strconv.ParseFloat(Normalize(s), 64)
	if err != nil {
		return math.NaN(), false
	}
	return v, true
}
