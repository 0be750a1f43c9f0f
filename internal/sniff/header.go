package sniff

import "strings"

// headerScanRows caps how many leading rows are considered as header candidates.
const headerScanRows = 25

// Absent marks a role with no resolved column.
const Absent = -1

// ColumnMap assigns source column indices to semantic roles. At most one
// column per role; Absent means the role did not resolve.
type ColumnMap struct {
	Date   int
	Payee  int
	Memo   int
	Amount int
	Debit  int
	Credit int
}

// NewColumnMap returns a ColumnMap with every role absent.
func NewColumnMap() ColumnMap {
	return ColumnMap{
		Date:   Absent,
		Payee:  Absent,
		Memo:   Absent,
		Amount: Absent,
		Debit:  Absent,
		Credit: Absent,
	}
}

// HasMoneySignal reports whether the map resolved an amount column or at
// least one side of a debit/credit pair.
func (m ColumnMap) HasMoneySignal() bool {
	return m.Amount != Absent || m.Debit != Absent || m.Credit != Absent
}

// Header keyword dictionaries. Cells are matched by lowercase substring, so
// "posting date" and "buchungstag" both resolve the date role.
var (
	dateKeywords = []string{
		"date", "datum", "buchungstag", "wertstellung", "valuta",
		"fecha", "data", "transaktionsdatum", "booked",
	}
	payeeKeywords = []string{
		"payee", "merchant", "counterparty", "empfänger", "empfaenger",
		"begünstigter", "beguenstigter", "auftraggeber", "beneficiario",
		"name",
	}
	memoKeywords = []string{
		"description", "memo", "verwendungszweck", "buchungstext",
		"beschreibung", "reference", "details", "narrative", "concepto",
		"descricao", "descrição", "purpose", "text",
	}
	amountKeywords = []string{
		"amount", "betrag", "importe", "montant", "valor", "umsatz",
		"value",
	}
	debitKeywords = []string{
		"debit", "soll", "withdrawal", "cargo", "débito", "debito",
		"money out", "paid out", "ausgang",
	}
	creditKeywords = []string{
		"credit", "haben", "deposit", "abono", "crédito", "credito",
		"money in", "paid in", "eingang",
	}
)

const (
	strongRoleScore = 3 // date, amount
	weakRoleScore   = 2 // payee, memo, debit, credit
)

// LocateHeader scans up to the first 25 rows for the best header candidate.
// A row qualifies only if it resolves a date role plus at least one money
// signal. Returns the header row index and its column map; ok is false when
// no row qualifies.
func LocateHeader(lines []string, delim rune) (headerIdx int, cols ColumnMap, ok bool) {
	limit := len(lines)
	if limit > headerScanRows {
		limit = headerScanRows
	}

	headerIdx = -1
	bestScore := 0
	cols = NewColumnMap()
	for i := 0; i < limit; i++ {
		rowCols, score := mapRow(SplitFields(lines[i], delim))
		if rowCols.Date == Absent || !rowCols.HasMoneySignal() {
			continue
		}
		if score > bestScore {
			headerIdx = i
			bestScore = score
			cols = rowCols
		}
	}
	return headerIdx, cols, headerIdx >= 0
}

// mapRow scores one tokenized row and assigns roles. The first cell to match
// a role keeps it; later matches in the same row are ignored.
func mapRow(cells []string) (ColumnMap, int) {
	cols := NewColumnMap()
	score := 0
	for idx, cell := range cells {
		cell = strings.ToLower(strings.TrimSpace(cell))
		if cell == "" {
			continue
		}
		switch {
		case cols.Date == Absent && matchesAny(cell, dateKeywords):
			cols.Date = idx
			score += strongRoleScore
		case cols.Amount == Absent && matchesAny(cell, amountKeywords):
			cols.Amount = idx
			score += strongRoleScore
		case cols.Payee == Absent && matchesAny(cell, payeeKeywords):
			cols.Payee = idx
			score += weakRoleScore
		case cols.Memo == Absent && matchesAny(cell, memoKeywords):
			cols.Memo = idx
			score += weakRoleScore
		case cols.Debit == Absent && matchesAny(cell, debitKeywords):
			cols.Debit = idx
			score += weakRoleScore
		case cols.Credit == Absent && matchesAny(cell, creditKeywords):
			cols.Credit = idx
			score += weakRoleScore
		}
	}
	return cols, score
}

func matchesAny(cell string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(cell, kw) {
			return true
		}
	}
	return false
}
