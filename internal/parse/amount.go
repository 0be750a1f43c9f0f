package parse

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Amount parses one raw money cell into a signed decimal. It handles both
// decimal-comma ("1.234,56") and decimal-point ("1,234.56") conventions and
// the parenthesis-negative convention ("(42.00)"). Unparseable text yields
// zero rather than an error.
func Amount(raw string) decimal.Decimal {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero
	}

	parenNegative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		parenNegative = true
		s = s[1 : len(s)-1]
	}

	// The separator that appears last is the decimal separator. A comma with
	// no period at all also means decimal-comma.
	lastComma := strings.LastIndex(s, ",")
	lastPeriod := strings.LastIndex(s, ".")
	decimalComma := lastComma > lastPeriod || (lastComma >= 0 && lastPeriod < 0)

	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' || r == '.' || r == ',' || r == '-' {
			b.WriteRune(r)
		}
	}
	s = b.String()

	if decimalComma {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	} else {
		s = strings.ReplaceAll(s, ",", "")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	if parenNegative {
		d = d.Abs().Neg()
	}
	return d
}
