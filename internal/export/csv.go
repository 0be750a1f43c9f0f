// Package export writes and reads the canonical enriched-record CSV. Output
// is fully under our control, so the standard csv codec applies here even
// though input parsing cannot use it.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/bankfeed-dev/bankfeed/internal/model"
)

// Header is the CSV header for the canonical transactions file.
const Header = "date,description,amount,merchant,category,type,reference"

const (
	numFields   = 7
	colDate     = 0
	colDesc     = 1
	colAmount   = 2
	colMerchant = 3
	colCategory = 4
	colType     = 5
	colRef      = 6
)

// MarshalRecord converts an EnrichedRecord and its reference to a CSV row.
func MarshalRecord(rec model.EnrichedRecord, ref string) []string {
	row := make([]string, numFields)
	row[colDate] = rec.Date
	row[colDesc] = rec.Description
	row[colAmount] = rec.Amount.StringFixed(2)
	row[colMerchant] = rec.Merchant
	row[colCategory] = rec.Category
	row[colType] = rec.Type
	row[colRef] = ref
	return row
}

// UnmarshalRecord converts a CSV row back to an EnrichedRecord and reference.
func UnmarshalRecord(record []string) (model.EnrichedRecord, string, error) {
	if len(record) != numFields {
		return model.EnrichedRecord{}, "", fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	amount, err := decimal.NewFromString(record[colAmount])
	if err != nil {
		return model.EnrichedRecord{}, "", fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}

	rec := model.EnrichedRecord{
		RawRecord: model.RawRecord{
			Date:        record[colDate],
			Description: record[colDesc],
			Amount:      amount,
		},
		Merchant: record[colMerchant],
		Category: record[colCategory],
		Type:     record[colType],
	}
	return rec, record[colRef], nil
}

// WriteAll writes the header and all records to w.
func WriteAll(w io.Writer, records []model.EnrichedRecord, refs []string) error {
	if len(refs) != len(records) {
		return fmt.Errorf("got %d refs for %d records", len(refs), len(records))
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, rec := range records {
		if err := cw.Write(MarshalRecord(rec, refs[i])); err != nil {
			return fmt.Errorf("writing record %d: %w", i+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// AppendAll writes records to w without a header, for appending to an
// existing canonical file.
func AppendAll(w io.Writer, records []model.EnrichedRecord, refs []string) error {
	if len(refs) != len(records) {
		return fmt.Errorf("got %d refs for %d records", len(refs), len(records))
	}

	cw := csv.NewWriter(w)
	for i, rec := range records {
		if err := cw.Write(MarshalRecord(rec, refs[i])); err != nil {
			return fmt.Errorf("writing record %d: %w", i+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadAll reads a canonical transactions CSV, header included.
func ReadAll(r io.Reader) ([]model.EnrichedRecord, []string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("reading transactions CSV: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil, nil
	}

	var records []model.EnrichedRecord
	var refs []string
	for i, row := range rows {
		if i == 0 && row[colDate] == "date" {
			continue
		}
		rec, ref, err := UnmarshalRecord(row)
		if err != nil {
			return nil, nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		records = append(records, rec)
		refs = append(refs, ref)
	}
	return records, refs, nil
}
