package ports

import (
	"time"

	"bank-ledger-core/internal/core/domain"
)

// TransactionService validates and settles transfers and withdrawals.
// Every operation runs to completion synchronously over in-memory state;
// any validation failure aborts with zero side effects.
type TransactionService interface {
	Transfer(fromID, toID string, requested domain.Money) (*domain.Transaction, error)
	Withdraw(accountID string, requested domain.Money) (*domain.Transaction, error)
	// CheckFunds and RetrieveTransactions are read-only and never mutate
	// account state.
	CheckFunds(accountID string) (domain.Money, error)
	RetrieveTransactions(accountID string) ([]domain.Transaction, error)
}

// SavingsService drives the simulated clock and applies periodic
// capitalization to interest-bearing accounts.
type SavingsService interface {
	// AdvanceTime moves the simulated clock forward one calendar month,
	// applying due capitalizations, and returns the new simulated date.
	AdvanceTime() (time.Time, error)
	// CurrentDate returns the simulated date without advancing it.
	CurrentDate() time.Time
}
