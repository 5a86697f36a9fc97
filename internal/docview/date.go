package docview

import (
	"fmt"
	"strings"
	"time"
)

// dateLayouts lists the accepted date formats, most specific first.
// JCR serializes dates as ISO 8601 with milliseconds and an offset
// (2023-06-01T00:00:00.000+02:00); RFC 3339 parsing also covers "Z" and
// missing fractions.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02",
}

// ParseDate parses a JCR date value. Values without a zone are taken as UTC.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date value %q (expected ISO 8601, e.g. 2023-06-01T00:00:00.000+02:00)", s)
}

// FormatDate renders a date as an ISO 8601 instant in UTC.
func FormatDate(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
