package id

import (
	"fmt"
	"strings"
)

// refPrefixLen caps the description-derived portion of a reference.
const refPrefixLen = 10

// FormatRecordRef returns a reference like "feed_20230131_LIDLSAGTDA_001"
// built from the record's date, description, and position within its file.
func FormatRecordRef(date, description string, seq int) string {
	return fmt.Sprintf("feed_%s_%s_%03d", compactDate(date), descPrefix(description), seq)
}

// compactDate keeps only digits, capped at 8 (YYYYMMDD). Dates the normalizer
// passed through unparsed still produce a stable token.
func compactDate(date string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, date)
	if len(digits) > 8 {
		digits = digits[:8]
	}
	if digits == "" {
		return "00000000"
	}
	return digits
}

// descPrefix keeps uppercased alphanumerics from the description.
func descPrefix(description string) string {
	prefix := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return r - ('a' - 'A')
		case r >= 'A' && r <= 'Z' || r >= '0' && r <= '9':
			return r
		}
		return -1
	}, description)
	if len(prefix) > refPrefixLen {
		prefix = prefix[:refPrefixLen]
	}
	if prefix == "" {
		return "UNKNOWN"
	}
	return prefix
}
