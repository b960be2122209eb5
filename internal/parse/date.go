// Package parse provides the tolerant value parsers used during
// normalization. Both parsers report failure through an ok flag rather than an
// error: unparseable values are an expected, high-frequency outcome in real
// cashier exports and are counted by the caller, not raised.
package parse

import (
	"strings"
	"time"
)

// dateLayouts is tried in order. Dot and slash formats are assumed to be
// day-first (02.01.2006, not 01/02/2006); exports from locales that write
// month-first are a known limitation with no runtime disambiguation.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"02.01.2006",
	"02.01.2006 15:04:05",
	"02.01.2006 15:04",
	"02/01/2006",
	"02/01/2006 15:04:05",
	"02/01/2006 15:04",
}

// Date parses a date or date-time string using the known cashier export
// formats, falling back to RFC 3339. Returns the zero time and false when no
// layout matches.
func Date(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	if t, err := time.Parse("2006-01-02T15:04:05", s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}
