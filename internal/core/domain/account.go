package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType tags the two account variants. The tag is fixed at
// construction and never changes.
type AccountType string

const (
	AccountTypeChecking AccountType = "CHECKING"
	AccountTypeSavings  AccountType = "SAVINGS"
)

// Account is the tagged union over the two variants: a common core
// (id, balance, append-only history) plus exactly one variant payload.
// Checking accounts own a Card, savings accounts own SavingsTerms.
type Account struct {
	ID           string        `json:"id"`
	Type         AccountType   `json:"type"`
	Balance      Money         `json:"balance"`
	Transactions []Transaction `json:"transactions"`

	Card  *Card         `json:"card,omitempty"`  // checking only; nil is a distinct error state
	Terms *SavingsTerms `json:"terms,omitempty"` // savings only
}

// NewCheckingAccount builds a checking account. A nil card is allowed at
// construction; operations requiring one fail with a missing-card error.
func NewCheckingAccount(id string, balance Money, card *Card) *Account {
	return &Account{
		ID:      id,
		Type:    AccountTypeChecking,
		Balance: balance,
		Card:    card,
	}
}

// NewSavingsAccount builds an interest-bearing account.
func NewSavingsAccount(id string, balance Money, terms SavingsTerms) *Account {
	return &Account{
		ID:      id,
		Type:    AccountTypeSavings,
		Balance: balance,
		Terms:   &terms,
	}
}

// IsSavings reports whether the account is interest-bearing.
func (a *Account) IsSavings() bool { return a.Type == AccountTypeSavings }

// IsChecking reports whether the account is a demand account.
func (a *Account) IsChecking() bool { return a.Type == AccountTypeChecking }

// Debit removes amount from the balance and rounds to the persisted scale.
// Callers must have established sufficiency first; Debit itself never
// rejects.
func (a *Account) Debit(amount decimal.Decimal) {
	a.Balance.Amount = a.Balance.Amount.Sub(amount).Round(BalanceScale)
}

// Credit adds amount to the balance and rounds to the persisted scale.
func (a *Account) Credit(amount decimal.Decimal) {
	a.Balance.Amount = a.Balance.Amount.Add(amount).Round(BalanceScale)
}

// Append adds a settled transaction to the account's history. The history
// only grows and entries are never rewritten.
func (a *Account) Append(txn Transaction) {
	a.Transactions = append(a.Transactions, txn)
}
