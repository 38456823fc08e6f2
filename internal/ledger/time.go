package ledger

import (
	"strings"
	"time"
)

// dateLayouts are the formats the batch writers have produced over time. The
// feed has no single canonical format, so parsing tries each in order.
var dateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02",
	"01/02/2006 15:04",
	"01/02/2006",
	"1/2/2006",
}

// Time is a lenient timestamp. A value that fails every layout decodes to the
// zero time; records with a zero date are dropped from date-keyed series
// rather than failing the whole load.
type Time struct {
	time.Time
}

// ParseTime parses raw using the known feed layouts.
func ParseTime(raw string) Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return Time{t}
		}
	}
	return Time{}
}

// UnmarshalCSV implements gocsv.TypeUnmarshaller.
func (t *Time) UnmarshalCSV(s string) error {
	*t = ParseTime(s)
	return nil
}

// MarshalCSV writes the timestamp back in the batch writer's format.
func (t Time) MarshalCSV() (string, error) {
	if t.IsZero() {
		return "", nil
	}
	return t.Format("2006-01-02 15:04:05"), nil
}

// DateKey returns the calendar-day bucket key in MM/DD/YYYY form, matching
// the en-US keys the charts use. Empty for a zero time.
func (t Time) DateKey() string {
	if t.IsZero() {
		return ""
	}
	return t.Format("01/02/2006")
}
