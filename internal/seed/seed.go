// Package seed constructs the initial account set. Accounts are created
// once at startup and live for the process lifetime; the ledger core
// never creates accounts itself.
package seed

import (
	"time"

	"github.com/shopspring/decimal"

	"bank-ledger-core/internal/core/domain"
	"bank-ledger-core/internal/core/ports"
)

func ron(s string) domain.Money {
	return domain.NewMoney(decimal.RequireFromString(s), domain.CurrencyRON)
}

func eur(s string) domain.Money {
	return domain.NewMoney(decimal.RequireFromString(s), domain.CurrencyEUR)
}

func card(limit string, expiration time.Time, active bool) *domain.Card {
	return &domain.Card{
		Active:         active,
		ExpirationDate: expiration,
		DailyLimit:     decimal.RequireFromString(limit),
	}
}

// Accounts builds the seed set as of the given opening date: three
// savings accounts across the lifetime tiers and six checking accounts
// with cards, including one whose card has already expired.
func Accounts(openedAt time.Time) []*domain.Account {
	openedAt = openedAt.UTC()
	farExpiry := openedAt.AddDate(3, 0, 0)
	pastExpiry := openedAt.AddDate(0, -2, 0)

	return []*domain.Account{
		domain.NewSavingsAccount("ROBMSG100001", ron("1000"), domain.SavingsTerms{
			Tier:                domain.InterestTierThreeMonth,
			Frequency:           domain.CapitalizationMonthly,
			LastInterestApplied: openedAt,
		}),
		domain.NewSavingsAccount("ROBMSG100002", eur("2000"), domain.SavingsTerms{
			Tier:                domain.InterestTierSixMonth,
			Frequency:           domain.CapitalizationQuarterly,
			LastInterestApplied: openedAt,
		}),
		domain.NewSavingsAccount("ROBMSG100003", eur("1000"), domain.SavingsTerms{
			Tier:                domain.InterestTierOneMonth,
			Frequency:           domain.CapitalizationMonthly,
			LastInterestApplied: openedAt,
		}),
		domain.NewCheckingAccount("ROBMSG200001", ron("100"), card("500", farExpiry, true)),
		domain.NewCheckingAccount("ROBMSG200002", ron("300"), card("500", farExpiry, true)),
		domain.NewCheckingAccount("ROBMSG200003", eur("10"), card("300", farExpiry, true)),
		domain.NewCheckingAccount("ROBMSG200004", eur("10000"), card("500", farExpiry, true)),
		domain.NewCheckingAccount("ROBMSG200005", ron("12345"), card("400", pastExpiry, false)),
		domain.NewCheckingAccount("ROBMSG200006", eur("12345"), card("1000", farExpiry, true)),
	}
}

// Load inserts the seed accounts into the store.
func Load(store ports.AccountStore, openedAt time.Time) error {
	for _, acc := range Accounts(openedAt) {
		if err := store.Add(acc.ID, acc); err != nil {
			return err
		}
	}
	return nil
}
