// Package experience derives experience figures from employment history.
package experience

import (
	"strings"
	"time"
)

// dateLayouts are tried in order; the first that parses wins.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"2006-01",
	"2006/01",
	"01/2006",
	"Jan 2006",
	"January 2006",
	"2006",
}

var ongoingMarkers = map[string]bool{
	"present": true,
	"current": true,
	"now":     true,
}

// ParseDate parses an employment date. Month-only values mean the first day of
// that month and year-only values mean January 1st. Results are in UTC.
// Empty, unrecognised and ongoing markers ("present") report false.
func ParseDate(value string) (time.Time, bool) {
	s := strings.TrimSpace(value)
	if s == "" || IsOngoing(s) {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// IsOngoing reports whether an end date marks a position that has not ended.
func IsOngoing(value string) bool {
	return ongoingMarkers[strings.ToLower(strings.TrimSpace(value))]
}

// ParseDatePtr is ParseDate for optional fields; nil and unparseable values give nil.
func ParseDatePtr(value *string) *time.Time {
	if value == nil {
		return nil
	}
	t, ok := ParseDate(*value)
	if !ok {
		return nil
	}
	return &t
}
