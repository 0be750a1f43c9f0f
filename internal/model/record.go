package model

import "github.com/shopspring/decimal"

// RawRecord represents a minimally parsed statement row.
type RawRecord struct {
	Date        string          // YYYY-MM-DD when parseable, the original trimmed cell otherwise
	Description string
	Amount      decimal.Decimal // negative = expense, positive = income
}

// Enrichment is the merchant/category pair derived from one description.
type Enrichment struct {
	Merchant string
	Category string
}

// Record types, derived solely from the amount sign.
const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

// EnrichedRecord is a RawRecord plus its derived merchant, category, and type.
type EnrichedRecord struct {
	RawRecord
	Merchant string
	Category string
	Type     string
}

// TypeOf returns TypeIncome for strictly positive amounts, TypeExpense otherwise.
func TypeOf(amount decimal.Decimal) string {
	if amount.IsPositive() {
		return TypeIncome
	}
	return TypeExpense
}
