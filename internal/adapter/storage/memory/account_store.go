// Package memory provides the in-process AccountStore. The ledger core
// assumes serialized access; the mutex only guards against accidental
// concurrent use by an embedding program, it is not a concurrency model.
package memory

import (
	"fmt"
	"sort"
	"sync"

	"bank-ledger-core/internal/core/domain"
)

// AccountStore is a keyed container of live accounts.
type AccountStore struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account
}

// NewAccountStore creates an empty store.
func NewAccountStore() *AccountStore {
	return &AccountStore{accounts: make(map[string]*domain.Account)}
}

// Get returns the live, mutable-by-reference account.
func (s *AccountStore) Get(id string) (*domain.Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	acc, ok := s.accounts[id]
	return acc, ok
}

// Exists reports whether an account with the id is present.
func (s *AccountStore) Exists(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.accounts[id]
	return ok
}

// Add inserts a new account. Duplicate ids are rejected; seeding is the
// only caller expected to insert.
func (s *AccountStore) Add(id string, account *domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.accounts[id]; ok {
		return fmt.Errorf("memory: account %s already exists", id)
	}
	s.accounts[id] = account
	return nil
}

// GetAll returns every account ordered by id, so each accrual tick visits
// accounts in the same order.
func (s *AccountStore) GetAll() []*domain.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	all := make([]*domain.Account, 0, len(s.accounts))
	for _, acc := range s.accounts {
		all = append(all, acc)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all
}
