package ports

import (
	"bank-ledger-core/internal/core/domain"
)

// AccountStore is the ledger core's only collaborator: a keyed container
// of live accounts. Get returns the mutable account by reference; the
// core assumes exclusive access for the duration of one operation, so a
// returned reference must never be aliased across operations.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type AccountStore interface {
	// Get returns the live account, or false when the id is unknown.
	Get(id string) (*domain.Account, bool)
	// Exists reports whether an account with the id is present.
	Exists(id string) bool
	// Add inserts a new account. Duplicate ids are a seed-time error.
	Add(id string, account *domain.Account) error
	// GetAll returns every account in deterministic order. The interest
	// accrual engine uses it to enumerate savings accounts each tick.
	GetAll() []*domain.Account
}
