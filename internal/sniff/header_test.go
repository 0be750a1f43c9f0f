package sniff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocateHeader_SimpleEnglish(t *testing.T) {
	lines := []string{
		"Date,Description,Amount",
		"01/13/2025,GITHUB PRO,-4.00",
	}
	idx, cols, ok := LocateHeader(lines, ',')
	require.True(t, ok)
	assert.Equal(t, 0, idx)
	assert.Equal(t, 0, cols.Date)
	assert.Equal(t, 1, cols.Memo)
	assert.Equal(t, 2, cols.Amount)
	assert.Equal(t, Absent, cols.Payee)
	assert.Equal(t, Absent, cols.Debit)
	assert.Equal(t, Absent, cols.Credit)
}

func TestLocateHeader_GermanWithPreamble(t *testing.T) {
	lines := []string{
		"Kontoauszug Januar 2025",
		"Konto: DE89 3704 0044",
		"Buchungstag;Verwendungszweck;Betrag",
		"31.01.2025;LIDL SAGT DANKE;-52,17",
	}
	idx, cols, ok := LocateHeader(lines, ';')
	require.True(t, ok)
	assert.Equal(t, 2, idx)
	assert.Equal(t, 0, cols.Date)
	assert.Equal(t, 1, cols.Memo)
	assert.Equal(t, 2, cols.Amount)
}

func TestLocateHeader_DebitCreditPair(t *testing.T) {
	lines := []string{
		"Transaction Date|Details|Money Out|Money In",
		"2025-02-03|TESCO|18.40|",
	}
	idx, cols, ok := LocateHeader(lines, '|')
	require.True(t, ok)
	assert.Equal(t, 0, idx)
	assert.Equal(t, 0, cols.Date)
	assert.Equal(t, 1, cols.Memo)
	assert.Equal(t, 2, cols.Debit)
	assert.Equal(t, 3, cols.Credit)
	assert.Equal(t, Absent, cols.Amount)
}

func TestLocateHeader_DebitAloneQualifies(t *testing.T) {
	lines := []string{"Datum;Soll", "31.01.2025;12,00"}
	_, cols, ok := LocateHeader(lines, ';')
	require.True(t, ok)
	assert.Equal(t, 1, cols.Debit)
}

func TestLocateHeader_DateWithoutMoneyDoesNotQualify(t *testing.T) {
	lines := []string{
		"Date,Description",
		"01/13/2025,hello",
	}
	_, _, ok := LocateHeader(lines, ',')
	assert.False(t, ok)
}

func TestLocateHeader_NoHeaderAnywhere(t *testing.T) {
	lines := []string{"just,some,cells", "1,2,3"}
	_, _, ok := LocateHeader(lines, ',')
	assert.False(t, ok)
}

func TestLocateHeader_ScansOnlyFirst25Rows(t *testing.T) {
	var lines []string
	for i := 0; i < 25; i++ {
		lines = append(lines, "noise,noise,noise")
	}
	lines = append(lines, "Date,Description,Amount")
	_, _, ok := LocateHeader(lines, ',')
	assert.False(t, ok)
}

func TestLocateHeader_HighestScoreWins(t *testing.T) {
	lines := []string{
		"Date,Amount",            // score 6
		"Date,Payee,Memo,Amount", // score 10
		"01/13/2025,ACME,invoice,-4.00",
	}
	idx, cols, ok := LocateHeader(lines, ',')
	require.True(t, ok)
	assert.Equal(t, 1, idx)
	assert.Equal(t, 1, cols.Payee)
	assert.Equal(t, 2, cols.Memo)
}

func TestLocateHeader_FirstAssignmentWinsWithinRow(t *testing.T) {
	lines := []string{"Date,Booking Date,Amount", "x,y,1"}
	_, cols, ok := LocateHeader(lines, ',')
	require.True(t, ok)
	assert.Equal(t, 0, cols.Date)
}

func TestMapRow_CaseInsensitive(t *testing.T) {
	cols, score := mapRow(strings.Split("DATE,DESCRIPTION,AMOUNT", ","))
	assert.Equal(t, 0, cols.Date)
	assert.Equal(t, 1, cols.Memo)
	assert.Equal(t, 2, cols.Amount)
	assert.Equal(t, 8, score)
}
