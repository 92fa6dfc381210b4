package dataprocessing

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// weekKeyPattern matches an already-canonical week label: four digit ISO
// year followed by a zero-padded two digit ISO week, e.g. "202404".
var weekKeyPattern = regexp.MustCompile(`^\d{6}$`)

// dateLayouts is the ordered set of layouts tried when a header is not
// already a canonical week key. Day-first layouts come before month-first
// ones, so an ambiguous header like "03/04/2024" resolves to 3 April.
// Month-first layouts only catch values the day-first pass rejects, such
// as "01/22/2024". The ordering is a fixed product convention with no
// per-column override.
var dateLayouts = []string{
	"02/01/2006",
	"02-01-2006",
	"02.01.2006",
	"2006-01-02",
	"2006/01/02",
	"02 Jan 2006",
	"2 January 2006",
	"2006-01-02 15:04:05",
	"01/02/2006",
	"01-02-2006",
	"Jan 2, 2006",
}

// parseHeaderDate attempts to interpret a header label as a calendar date.
func parseHeaderDate(label string) (time.Time, bool) {
	s := strings.TrimSpace(label)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// WeekKey returns the canonical YYYYWW label for a date using the ISO-8601
// calendar. Near year boundaries the ISO year can differ from the
// Gregorian one.
func WeekKey(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%04d%02d", year, week)
}

// ClassifyHeaders inspects raw column labels and decides, per label,
// whether it denotes a week. The returned slices are parallel to labels:
// the new label per column and a flag marking week columns.
//
// A label of exactly six ASCII digits is treated as an already-canonical
// week key and is never date-parsed. Otherwise the label is parsed as a
// calendar date (day-first precedence) and, on success, replaced with its
// ISO week key. Labels that fail both checks pass through unchanged and
// unflagged; unparseable labels are not an error.
func ClassifyHeaders(labels []string) ([]string, []bool) {
	newLabels := make([]string, len(labels))
	isWeek := make([]bool, len(labels))
	for i, label := range labels {
		if trimmed := strings.TrimSpace(label); weekKeyPattern.MatchString(trimmed) {
			newLabels[i] = trimmed
			isWeek[i] = true
			continue
		}
		if d, ok := parseHeaderDate(label); ok {
			newLabels[i] = WeekKey(d)
			isWeek[i] = true
			continue
		}
		newLabels[i] = label
	}
	return newLabels, isWeek
}
