// Package enrich derives a cleaned merchant name and a spending category for
// each transaction description, using fixed ordered keyword tables. The
// engine is deterministic: the same description always yields the same
// enrichment. Callers that merge in external categorization (an AI service,
// user overrides) do so on top of this output; the engine is unaware of them.
package enrich

import (
	"strings"

	"github.com/bankfeed-dev/bankfeed/internal/model"
)

// Engine holds the immutable rule, brand, and income tables. Construct once
// and share; it is safe for concurrent use.
type Engine struct {
	income []string
	rules  []Rule
	brands []BrandFix
}

// Options extends the built-in tables. Extra rules and brand fixes are
// evaluated before the defaults, so user-supplied entries win.
type Options struct {
	Rules  []Rule
	Brands []BrandFix
}

// NewEngine builds an engine from the built-in tables.
func NewEngine() *Engine {
	return NewEngineWith(Options{})
}

// NewEngineWith builds an engine with extra tables prepended to the built-ins.
func NewEngineWith(opts Options) *Engine {
	e := &Engine{income: incomePatterns}
	e.rules = append(e.rules, opts.Rules...)
	e.rules = append(e.rules, defaultRules()...)
	e.brands = append(e.brands, opts.Brands...)
	e.brands = append(e.brands, defaultBrandFixes()...)
	return e
}

// Categorize assigns one category to a raw description. Income patterns are
// checked first and win regardless of amount sign; then the ordered rule
// table is scanned for the first keyword substring match. No match yields
// "Other". Keywords are matched without word boundaries, so e.g. "target"
// can fire inside unrelated text; rule order is the only guard.
func (e *Engine) Categorize(description string) string {
	lower := strings.ToLower(description)
	for _, pat := range e.income {
		if strings.Contains(lower, pat) {
			return "Income"
		}
	}
	for _, rule := range e.rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, kw) {
				return rule.Category
			}
		}
	}
	return "Other"
}

// Apply enriches records in order and returns them together with the
// description-to-enrichment mapping for caller-side merging.
func (e *Engine) Apply(records []model.RawRecord) ([]model.EnrichedRecord, map[string]model.Enrichment) {
	enriched := make([]model.EnrichedRecord, 0, len(records))
	byDescription := make(map[string]model.Enrichment)
	for _, rec := range records {
		ment, ok := byDescription[rec.Description]
		if !ok {
			ment = model.Enrichment{
				Merchant: e.CleanMerchant(rec.Description),
				Category: e.Categorize(rec.Description),
			}
			byDescription[rec.Description] = ment
		}
		enriched = append(enriched, model.EnrichedRecord{
			RawRecord: rec,
			Merchant:  ment.Merchant,
			Category:  ment.Category,
			Type:      model.TypeOf(rec.Amount),
		})
	}
	return enriched, byDescription
}
