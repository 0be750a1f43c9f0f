package sniff

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitLines_MixedEndings(t *testing.T) {
	lines := SplitLines("a\r\nb\nc")
	assert.Equal(t, []string{"a", "b", "c"}, lines)
}

func TestSplitLines_DiscardsBlank(t *testing.T) {
	lines := SplitLines("a\n\n  \r\nb\n")
	assert.Equal(t, []string{"a", "b"}, lines)
}

func TestSplitLines_Empty(t *testing.T) {
	assert.Empty(t, SplitLines(""))
	assert.Empty(t, SplitLines("\n\r\n"))
}

func TestSplitFields_Simple(t *testing.T) {
	fields := SplitFields("a,b,c", ',')
	assert.Equal(t, []string{"a", "b", "c"}, fields)
}

func TestSplitFields_QuotedDelimiter(t *testing.T) {
	fields := SplitFields(`"ACME, INC",100`, ',')
	assert.Equal(t, []string{"ACME, INC", "100"}, fields)
}

func TestSplitFields_TrimsWhitespaceAndQuotes(t *testing.T) {
	fields := SplitFields(`  "hello"  ; world `, ';')
	assert.Equal(t, []string{"hello", "world"}, fields)
}

func TestSplitFields_TrailingEmptyField(t *testing.T) {
	fields := SplitFields("a;b;", ';')
	assert.Equal(t, []string{"a", "b", ""}, fields)
}

func TestSplitFields_Tab(t *testing.T) {
	fields := SplitFields("a\tb", '\t')
	assert.Equal(t, []string{"a", "b"}, fields)
}

// Doubled-quote escaping is intentionally unsupported; the inner quotes
// simply toggle state and stay in the field text.
func TestSplitFields_NoDoubledQuoteEscape(t *testing.T) {
	fields := SplitFields(`"say ""hi"", now",x`, ',')
	assert.Equal(t, []string{`say ""hi"", now`, "x"}, fields)
}
