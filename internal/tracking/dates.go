package tracking

import (
	"math"
	"strconv"
	"strings"
	"time"
)

const msPerDay = 24 * 60 * 60 * 1000

// DatePlaceholder is rendered wherever a date is absent or unparseable.
const DatePlaceholder = "—"

// IsSet reports whether a milestone date is meaningfully present.
func IsSet(t *time.Time) bool {
	return t != nil && !t.IsZero()
}

// IsSetString reports whether a text field (SLA tag, code) is present.
func IsSetString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// DaysBetween returns the signed whole-day distance from a to b, rounding
// half away from zero. Nil when either endpoint is missing.
func DaysBetween(a, b *time.Time) *int {
	if !IsSet(a) || !IsSet(b) {
		return nil
	}
	ms := float64(b.UnixMilli() - a.UnixMilli())
	d := int(math.Round(ms / msPerDay))
	return &d
}

// FormatDate renders a date for display, D/M/Y. Absent dates degrade to the
// placeholder, never an error.
func FormatDate(t *time.Time) string {
	if !IsSet(t) {
		return DatePlaceholder
	}
	return t.Format("02/01/2006")
}

// FromExcelSerial converts a spreadsheet serial day-count to a calendar
// date. Serial 25569 is the Unix epoch (1899-12-30 day-zero convention).
func FromExcelSerial(n float64) time.Time {
	ms := int64((n - 25569) * msPerDay)
	return time.UnixMilli(ms).UTC()
}

var textDateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2/1/2006",
	"2-1-2006",
}

// ParseDate interprets a stored date string: ISO-8601, D/M/Y, or a bare
// numeric Excel serial (the legacy table holds all three). Nil when the
// value is absent or unparseable.
func ParseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range textDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	if n, err := strconv.ParseFloat(s, 64); err == nil && n > 0 {
		t := FromExcelSerial(n)
		return &t
	}
	return nil
}
