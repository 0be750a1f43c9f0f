package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDate_ISOUnchanged(t *testing.T) {
	assert.Equal(t, "2023-05-04", Date("2023-05-04"))
}

func TestDate_DayFirstForcedByLargeDay(t *testing.T) {
	assert.Equal(t, "2023-01-31", Date("31/01/2023"))
}

func TestDate_MonthFirstForcedByLargeSecond(t *testing.T) {
	assert.Equal(t, "2023-01-31", Date("01/31/2023"))
}

func TestDate_AmbiguousDefaultsDayFirst(t *testing.T) {
	// Both components <= 12: day-first wins for four-digit-year dates.
	assert.Equal(t, "2023-03-01", Date("01/03/2023"))
}

func TestDate_DotSeparator(t *testing.T) {
	assert.Equal(t, "2025-01-31", Date("31.01.2025"))
}

func TestDate_DashSeparator(t *testing.T) {
	assert.Equal(t, "2025-01-31", Date("31-01-2025"))
}

func TestDate_TwoDigitYearRecent(t *testing.T) {
	// Two-digit years default month-first; 25 -> 2025.
	assert.Equal(t, "2025-01-03", Date("01/03/25"))
}

func TestDate_TwoDigitYearLastCentury(t *testing.T) {
	assert.Equal(t, "1999-04-02", Date("04/02/99"))
}

func TestDate_TwoDigitYearDayFirstForced(t *testing.T) {
	assert.Equal(t, "2025-01-31", Date("31/01/25"))
}

func TestDate_YearFirst(t *testing.T) {
	assert.Equal(t, "2025-02-03", Date("2025/2/3"))
	assert.Equal(t, "2025-02-03", Date("2025.02.03"))
}

func TestDate_ZeroPadding(t *testing.T) {
	assert.Equal(t, "2023-01-05", Date("5.1.2023"))
}

func TestDate_LongForm(t *testing.T) {
	assert.Equal(t, "2023-01-31", Date("Jan 31, 2023"))
}

func TestDate_UnparseablePassthrough(t *testing.T) {
	assert.Equal(t, "pending", Date("pending"))
	assert.Equal(t, "", Date("   "))
}

func TestDate_Idempotent(t *testing.T) {
	out := Date("31/01/2023")
	assert.Equal(t, out, Date(out))
}
