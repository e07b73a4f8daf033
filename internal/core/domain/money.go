package domain

import (
	"github.com/shopspring/decimal"
)

// Currency identifies a currency the ledger recognizes. USD is part of the
// domain but carries no conversion support: the transaction engine rejects
// it, which is a different fault than an unrecognized currency string.
type Currency string

const (
	CurrencyRON Currency = "RON"
	CurrencyEUR Currency = "EUR"
	CurrencyUSD Currency = "USD"
)

// Valid reports whether c is one of the recognized currency tags.
func (c Currency) Valid() bool {
	switch c {
	case CurrencyRON, CurrencyEUR, CurrencyUSD:
		return true
	}
	return false
}

// BalanceScale is the fractional precision persisted in account balances.
// Amounts are rounded to this scale after every balance mutation, half-up
// (decimal's round-half-away-from-zero), so binary float drift never
// reaches a stored balance.
const BalanceScale = 2

// Money is an amount in a specific currency.
type Money struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency Currency        `json:"currency"`
}

// NewMoney creates a Money value.
func NewMoney(amount decimal.Decimal, currency Currency) Money {
	return Money{Amount: amount, Currency: currency}
}

// IsPositive reports whether the amount is strictly greater than zero.
func (m Money) IsPositive() bool {
	return m.Amount.IsPositive()
}

// String renders the money as "12.34 RON" for logs and error details.
func (m Money) String() string {
	return m.Amount.String() + " " + string(m.Currency)
}
