package domain

import (
	"time"

	"github.com/google/uuid"
)

// Transaction is an immutable ledger entry for settled money movement.
// The amount is post-conversion, denominated in the recipient's currency.
// A withdrawal is recorded as a self-referencing entry (From == To), which
// distinguishes it from a transfer without a separate record type.
type Transaction struct {
	ID        uuid.UUID `json:"id"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	Amount    Money     `json:"amount"`
	Timestamp time.Time `json:"timestamp"`
}

// NewTransaction creates a settled transfer record.
func NewTransaction(from, to string, amount Money, at time.Time) Transaction {
	return Transaction{
		ID:        uuid.New(),
		From:      from,
		To:        to,
		Amount:    amount,
		Timestamp: at,
	}
}

// NewWithdrawal creates a settled self-referencing withdrawal record.
func NewWithdrawal(accountID string, amount Money, at time.Time) Transaction {
	return NewTransaction(accountID, accountID, amount, at)
}

// IsWithdrawal reports whether the entry records a withdrawal.
func (t *Transaction) IsWithdrawal() bool {
	return t.From == t.To
}

// OriginatedFrom reports whether the entry is outgoing money movement for
// the given account (withdrawals count: From == To == accountID).
func (t *Transaction) OriginatedFrom(accountID string) bool {
	return t.From == accountID
}
