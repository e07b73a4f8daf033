package memory

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bank-ledger-core/internal/core/domain"
)

func newAccount(id string) *domain.Account {
	return domain.NewCheckingAccount(id,
		domain.NewMoney(decimal.NewFromInt(100), domain.CurrencyRON), nil)
}

func TestAccountStore_AddAndGet(t *testing.T) {
	store := NewAccountStore()
	acc := newAccount("A1")

	require.NoError(t, store.Add(acc.ID, acc))

	got, ok := store.Get("A1")
	require.True(t, ok)
	assert.Same(t, acc, got, "store must hand out the live account")

	_, ok = store.Get("missing")
	assert.False(t, ok)
}

func TestAccountStore_Exists(t *testing.T) {
	store := NewAccountStore()
	require.NoError(t, store.Add("A1", newAccount("A1")))

	assert.True(t, store.Exists("A1"))
	assert.False(t, store.Exists("A2"))
}

func TestAccountStore_Add_Duplicate(t *testing.T) {
	store := NewAccountStore()
	require.NoError(t, store.Add("A1", newAccount("A1")))

	err := store.Add("A1", newAccount("A1"))
	assert.Error(t, err)
}

func TestAccountStore_GetAll_Ordered(t *testing.T) {
	store := NewAccountStore()
	for _, id := range []string{"C", "A", "B"} {
		require.NoError(t, store.Add(id, newAccount(id)))
	}

	all := store.GetAll()
	require.Len(t, all, 3)
	assert.Equal(t, "A", all[0].ID)
	assert.Equal(t, "B", all[1].ID)
	assert.Equal(t, "C", all[2].ID)
}

func TestAccountStore_GetAll_Empty(t *testing.T) {
	store := NewAccountStore()
	assert.Empty(t, store.GetAll())
}
