// Package parse turns a raw delimited statement export into RawRecords. It is
// pure and allocation-local: the same input always produces the same output,
// and concurrent callers need no coordination.
package parse

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/bankfeed-dev/bankfeed/internal/model"
	"github.com/bankfeed-dev/bankfeed/internal/sniff"
)

// unknownDescription is the placeholder for rows with no usable text field.
const unknownDescription = "Unknown Transaction"

// Result holds the outcome of parsing one statement export. HeaderRow is -1
// and Records empty when no header row could be located.
type Result struct {
	Delimiter rune
	HeaderRow int
	Columns   sniff.ColumnMap
	Records   []model.RawRecord
}

// Statement runs the full detection pipeline on one export: line split,
// delimiter detection, header location, then per-row normalization. It never
// fails; structurally unusable input yields an empty record list.
func Statement(text string) Result {
	lines := sniff.SplitLines(text)
	if len(lines) == 0 {
		return Result{Delimiter: ';', HeaderRow: -1, Columns: sniff.NewColumnMap()}
	}

	delim := sniff.DetectDelimiter(lines)
	headerIdx, cols, ok := sniff.LocateHeader(lines, delim)
	if !ok {
		return Result{Delimiter: delim, HeaderRow: -1, Columns: cols}
	}

	var records []model.RawRecord
	for _, line := range lines[headerIdx+1:] {
		fields := sniff.SplitFields(line, delim)
		if len(fields) < 2 {
			continue
		}
		if rec, ok := normalizeRow(fields, cols); ok {
			records = append(records, rec)
		}
	}
	return Result{Delimiter: delim, HeaderRow: headerIdx, Columns: cols, Records: records}
}

// normalizeRow builds one RawRecord from a tokenized data row. Rows with an
// empty date cell are dropped; everything else degrades to defaults.
func normalizeRow(fields []string, cols sniff.ColumnMap) (model.RawRecord, bool) {
	date := strings.TrimSpace(cellAt(fields, cols.Date))
	if date == "" {
		return model.RawRecord{}, false
	}

	return model.RawRecord{
		Date:        Date(date),
		Description: buildDescription(fields, cols),
		Amount:      rowAmount(fields, cols),
	}, true
}

// buildDescription assembles the row's text: payee+memo, either alone, the
// first substantial leftover field, then the placeholder.
func buildDescription(fields []string, cols sniff.ColumnMap) string {
	var desc string
	switch {
	case cols.Payee != sniff.Absent && cols.Memo != sniff.Absent && cols.Payee != cols.Memo:
		desc = strings.TrimSpace(cellAt(fields, cols.Payee) + " " + cellAt(fields, cols.Memo))
	case cols.Payee != sniff.Absent:
		desc = strings.TrimSpace(cellAt(fields, cols.Payee))
	case cols.Memo != sniff.Absent:
		desc = strings.TrimSpace(cellAt(fields, cols.Memo))
	}

	if len(desc) < 3 {
		for idx, field := range fields {
			if idx == cols.Date || idx == cols.Amount || idx == cols.Debit || idx == cols.Credit {
				continue
			}
			field = strings.TrimSpace(field)
			if len(field) > 5 && !isPureNumber(field) {
				desc = field
				break
			}
		}
	}

	if desc == "" {
		return unknownDescription
	}
	return desc
}

// rowAmount resolves the signed amount: a single amount column wins, a
// debit/credit pair is combined as credit minus debit magnitudes, and no
// money column at all defaults to zero.
func rowAmount(fields []string, cols sniff.ColumnMap) decimal.Decimal {
	if cols.Amount != sniff.Absent {
		return Amount(cellAt(fields, cols.Amount))
	}
	if cols.Debit != sniff.Absent && cols.Credit != sniff.Absent {
		// Both flows are often exported unsigned, so take magnitudes; a blank
		// cell parses to zero.
		debit := Amount(cellAt(fields, cols.Debit)).Abs()
		credit := Amount(cellAt(fields, cols.Credit)).Abs()
		return credit.Sub(debit)
	}
	return decimal.Zero
}

func cellAt(fields []string, idx int) string {
	if idx < 0 || idx >= len(fields) {
		return ""
	}
	return fields[idx]
}

var pureNumberPattern = regexp.MustCompile(`^-?[\d.,]+$`)

func isPureNumber(s string) bool {
	return pureNumberPattern.MatchString(s)
}
