package enrich

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// CleanMerchant strips transactional noise from a description and
// canonicalizes known brand spellings. The transforms run in a fixed order:
// uppercase, prefix strip, code/date/location noise removal, whitespace
// collapse, title case, brand correction. If cleaning collapses the string
// to nothing, the original raw description is returned.
func (e *Engine) CleanMerchant(raw string) string {
	s := strings.ToUpper(raw)

	for _, re := range noisePrefixes {
		s = re.ReplaceAllString(s, "")
	}

	// Specific shapes go before the generic digit-run pass, which would
	// otherwise leave their non-digit remnants behind.
	s = hashTag.ReplaceAllString(s, "")
	s = shortDateFrag.ReplaceAllString(s, "")
	s = phoneShaped.ReplaceAllString(s, "")
	s = trailingZip.ReplaceAllString(s, "")
	s = trailingCC.ReplaceAllString(s, "")
	s = longDigitRun.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "*", " ")
	s = strings.Join(strings.Fields(s), " ")

	s = titleCase(s)

	for _, fix := range e.brands {
		if strings.Contains(strings.ToLower(s), fix.Fragment) {
			return fix.Name
		}
	}

	if s == "" {
		return raw
	}
	return s
}

// titleCase capitalizes the first rune of each whitespace-delimited token
// and lowercases the rest.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + strings.ToLower(w[size:])
	}
	return strings.Join(words, " ")
}
