package parse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	isoDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	dmySepPattern  = regexp.MustCompile(`^(\d{1,2})[./-](\d{1,2})[./-](\d{4})$`)
	mdyPattern     = regexp.MustCompile(`^(\d{1,2})[./-](\d{1,2})[./-](\d{2}|\d{4})$`)
	ymdPattern     = regexp.MustCompile(`^(\d{4})[./-](\d{1,2})[./-](\d{1,2})$`)
)

// fallbackLayouts is the last-resort sweep for long-form dates.
var fallbackLayouts = []string{
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"2 January 2006",
	"Jan 2 2006",
	"2006/01/02",
	time.RFC3339,
}

// Date normalizes a trimmed date cell to YYYY-MM-DD. Ambiguous day/month
// ordering is resolved by whichever component exceeds 12, defaulting to
// day-first for separator dates and month-first for two-digit-year dates.
// Unparseable input is returned unchanged.
func Date(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return s
	}
	if isoDatePattern.MatchString(s) {
		return s
	}

	if m := dmySepPattern.FindStringSubmatch(s); m != nil {
		first, _ := strconv.Atoi(m[1])
		second, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		day, month := first, second
		if first <= 12 && second > 12 {
			day, month = second, first
		}
		if iso, ok := isoDate(year, month, day); ok {
			return iso
		}
	}

	if m := mdyPattern.FindStringSubmatch(s); m != nil {
		first, _ := strconv.Atoi(m[1])
		second, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		if len(m[3]) == 2 {
			if year > 50 {
				year += 1900
			} else {
				year += 2000
			}
		}
		month, day := first, second
		if first > 12 {
			month, day = second, first
		}
		if iso, ok := isoDate(year, month, day); ok {
			return iso
		}
	}

	if m := ymdPattern.FindStringSubmatch(s); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		if iso, ok := isoDate(year, month, day); ok {
			return iso
		}
	}

	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02")
		}
	}

	return s
}

// isoDate formats a plausible calendar date, zero-padded.
func isoDate(year, month, day int) (string, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return "", false
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day), true
}
