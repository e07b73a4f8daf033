// Package exchange holds the static currency conversion table. Rates are
// tabulated per direction and never derived from the inverse pair.
package exchange

import (
	"fmt"

	"github.com/shopspring/decimal"

	"bank-ledger-core/internal/core/domain"
	"bank-ledger-core/pkg/apperror"
)

// Pair is an ordered currency pair.
type Pair struct {
	From domain.Currency
	To   domain.Currency
}

// RateSpec is one configured directional rate, as it appears in the
// configuration file.
type RateSpec struct {
	From string
	To   string
	Rate string
}

// Table is a finite lookup of directional conversion rates, validated
// exhaustively at load time so a broken pair is caught at startup rather
// than mid-settlement.
type Table struct {
	rates       map[Pair]decimal.Decimal
	convertible map[domain.Currency]struct{}
}

// NewTable builds a table from directional rates. It fails on unrecognized
// currency tags, same-currency pairs, duplicate pairs, and non-positive
// rates.
func NewTable(rates map[Pair]decimal.Decimal) (*Table, error) {
	t := &Table{
		rates:       make(map[Pair]decimal.Decimal, len(rates)),
		convertible: make(map[domain.Currency]struct{}),
	}
	for pair, rate := range rates {
		if !pair.From.Valid() {
			return nil, fmt.Errorf("exchange: unrecognized currency %q", pair.From)
		}
		if !pair.To.Valid() {
			return nil, fmt.Errorf("exchange: unrecognized currency %q", pair.To)
		}
		if pair.From == pair.To {
			return nil, fmt.Errorf("exchange: identity pair %s/%s must not be configured", pair.From, pair.To)
		}
		if !rate.IsPositive() {
			return nil, fmt.Errorf("exchange: non-positive rate %s for %s/%s", rate, pair.From, pair.To)
		}
		t.rates[pair] = rate
		t.convertible[pair.From] = struct{}{}
		t.convertible[pair.To] = struct{}{}
	}
	return t, nil
}

// FromSpecs parses configured rates into a validated table.
func FromSpecs(specs []RateSpec) (*Table, error) {
	rates := make(map[Pair]decimal.Decimal, len(specs))
	for _, s := range specs {
		rate, err := decimal.NewFromString(s.Rate)
		if err != nil {
			return nil, fmt.Errorf("exchange: rate %q for %s/%s: %w", s.Rate, s.From, s.To, err)
		}
		pair := Pair{From: domain.Currency(s.From), To: domain.Currency(s.To)}
		if _, dup := rates[pair]; dup {
			return nil, fmt.Errorf("exchange: duplicate pair %s/%s", s.From, s.To)
		}
		rates[pair] = rate
	}
	return NewTable(rates)
}

// Default returns the built-in table: EUR/RON 4.98 and RON/EUR 0.2008.
func Default() *Table {
	t, err := NewTable(map[Pair]decimal.Decimal{
		{From: domain.CurrencyEUR, To: domain.CurrencyRON}: decimal.RequireFromString("4.98"),
		{From: domain.CurrencyRON, To: domain.CurrencyEUR}: decimal.RequireFromString("0.2008"),
	})
	if err != nil {
		panic(err) // built-in rates are static
	}
	return t
}

// Convert converts amount from one currency to another using the
// tabulated directional rate. Identity conversions pass through
// unchanged. An unknown pair is a configuration fault. The result is not
// rounded; rounding belongs to balance mutation, applied once per
// account.
func (t *Table) Convert(amount decimal.Decimal, from, to domain.Currency) (decimal.Decimal, error) {
	if from == to {
		return amount, nil
	}
	rate, ok := t.rates[Pair{From: from, To: to}]
	if !ok {
		return decimal.Decimal{}, apperror.ErrUnsupportedCurrencyPair(string(from), string(to))
	}
	return amount.Mul(rate), nil
}

// Rate returns the tabulated directional rate for a pair.
func (t *Table) Rate(from, to domain.Currency) (decimal.Decimal, bool) {
	rate, ok := t.rates[Pair{From: from, To: to}]
	return rate, ok
}

// Convertible reports whether the currency participates in settlement,
// i.e. appears on either side of a configured pair. USD is a recognized
// tag but, absent configured pairs, is not convertible.
func (t *Table) Convertible(c domain.Currency) bool {
	_, ok := t.convertible[c]
	return ok
}
