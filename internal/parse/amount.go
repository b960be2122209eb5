package parse

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Amount parses a monetary magnitude from heterogeneous export formats.
// Interior spaces are treated as thousands separators and removed. A comma
// with no dot is taken as the decimal separator ("1234,56"); when both appear
// the commas are thousands separators and are dropped ("1,234.56"). This is a
// heuristic, not a locale-aware parser: "1,234" alone resolves to 1.234.
// Returns decimal zero and false when the cleaned string is not numeric.
func Amount(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, false
	}
	s = strings.ReplaceAll(s, " ", "")

	hasComma := strings.Contains(s, ",")
	hasDot := strings.Contains(s, ".")
	switch {
	case hasComma && !hasDot:
		s = strings.ReplaceAll(s, ",", ".")
	case hasComma && hasDot:
		s = strings.ReplaceAll(s, ",", "")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}
