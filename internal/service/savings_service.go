package service

import (
	"time"

	"github.com/rs/zerolog"

	"bank-ledger-core/internal/core/domain"
	"bank-ledger-core/internal/core/ports"
	"bank-ledger-core/pkg/apperror"
)

// SavingsServiceImpl implements ports.SavingsService. It owns an explicit
// simulated clock: each instance advances its own date, so independent
// instances (and tests) run independent timelines.
type SavingsServiceImpl struct {
	store ports.AccountStore
	clock time.Time
	log   zerolog.Logger
}

// NewSavingsService creates a SavingsServiceImpl starting at the given
// simulated date.
func NewSavingsService(store ports.AccountStore, start time.Time, log zerolog.Logger) *SavingsServiceImpl {
	return &SavingsServiceImpl{store: store, clock: start.UTC(), log: log}
}

// CurrentDate returns the simulated date without advancing it.
func (s *SavingsServiceImpl) CurrentDate() time.Time {
	return s.clock
}

// AdvanceTime moves the simulated clock forward one calendar month and
// applies capitalization to every savings account that is due. An
// unrecognized lifetime tier anywhere in the store aborts the tick before
// any balance changes; a clean tick cannot fail per account.
func (s *SavingsServiceImpl) AdvanceTime() (time.Time, error) {
	next := s.clock.AddDate(0, 1, 0)

	savings := make([]*domain.Account, 0)
	for _, acc := range s.store.GetAll() {
		if !acc.IsSavings() {
			continue
		}
		if !acc.Terms.Tier.Valid() {
			return time.Time{}, apperror.ErrInvalidLifetimeTier(acc.ID, string(acc.Terms.Tier))
		}
		savings = append(savings, acc)
	}

	for _, acc := range savings {
		s.capitalize(acc, next)
	}

	s.clock = next
	s.log.Info().Time("simulated_date", next).Msg("simulated clock advanced")
	return next, nil
}

// capitalize applies one capitalization to the account if it is due at
// the new simulated date and its lifetime is not exhausted. Exhaustion is
// a permanent steady state: the counter never resets and no later tick
// changes the balance again.
func (s *SavingsServiceImpl) capitalize(acc *domain.Account, next time.Time) {
	terms := acc.Terms
	if terms.Exhausted() {
		return
	}

	due := terms.LastInterestApplied.AddDate(0, terms.Frequency.Months(), 0)
	if due.Month() != next.Month() || due.Year() != next.Year() {
		return
	}

	rate := terms.Tier.Rate()
	interest := acc.Balance.Amount.Mul(rate)
	acc.Credit(interest)
	terms.LastInterestApplied = next
	terms.MonthsOfInterestReceived += terms.Frequency.Months()

	s.log.Info().
		Str("account", acc.ID).
		Str("rate", rate.String()).
		Str("interest", interest.String()).
		Str("balance", acc.Balance.String()).
		Int("months_received", terms.MonthsOfInterestReceived).
		Msg("interest capitalized")
}
