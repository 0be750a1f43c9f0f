package id

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatRecordRef(t *testing.T) {
	ref := FormatRecordRef("2025-01-17", "LIDL SAGT DANKE", 1)
	assert.Equal(t, "feed_20250117_LIDLSAGTDA_001", ref)
}

func TestFormatRecordRef_LowercaseDescription(t *testing.T) {
	ref := FormatRecordRef("2025-01-17", "corner deli", 12)
	assert.Equal(t, "feed_20250117_CORNERDELI_012", ref)
}

func TestFormatRecordRef_UnparsedDate(t *testing.T) {
	// Dates the normalizer passed through still yield a stable token.
	ref := FormatRecordRef("pending", "ACME", 3)
	assert.Equal(t, "feed_00000000_ACME_003", ref)
}

func TestFormatRecordRef_EmptyDescription(t *testing.T) {
	ref := FormatRecordRef("2025-01-17", "***", 1)
	assert.Equal(t, "feed_20250117_UNKNOWN_001", ref)
}

func TestFormatRecordRef_LongDateDigitsCapped(t *testing.T) {
	ref := FormatRecordRef("2025-01-17 00:00:00", "ACME", 1)
	assert.Equal(t, "feed_20250117_ACME_001", ref)
}
