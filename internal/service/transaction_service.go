package service

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"bank-ledger-core/internal/core/domain"
	"bank-ledger-core/internal/core/ports"
	"bank-ledger-core/internal/exchange"
	"bank-ledger-core/pkg/apperror"
)

// TransactionServiceImpl implements ports.TransactionService. Validation
// is fail-fast in a fixed order; each step assumes the earlier ones
// passed. No account is touched until every check has succeeded, so a
// failed operation leaves both accounts exactly as they were.
type TransactionServiceImpl struct {
	store ports.AccountStore
	rates *exchange.Table
	log   zerolog.Logger

	// now is the engine clock. Settlement timestamps and calendar-day
	// matching for daily limits both come from here so tests can pin time.
	now func() time.Time
}

// NewTransactionService creates a TransactionServiceImpl using the wall
// clock.
func NewTransactionService(store ports.AccountStore, rates *exchange.Table, log zerolog.Logger) *TransactionServiceImpl {
	return &TransactionServiceImpl{
		store: store,
		rates: rates,
		log:   log,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// Transfer validates and settles a transfer between two accounts. The
// returned transaction carries the credited amount in the destination
// account's currency; the identical record is appended to both histories.
func (s *TransactionServiceImpl) Transfer(fromID, toID string, requested domain.Money) (*domain.Transaction, error) {
	from, ok := s.store.Get(fromID)
	if !ok {
		return nil, apperror.ErrAccountNotFound(fromID)
	}
	to, ok := s.store.Get(toID)
	if !ok {
		return nil, apperror.ErrAccountNotFound(toID)
	}

	if !requested.IsPositive() {
		return nil, apperror.ErrNonPositiveAmount(requested.Amount.String())
	}

	if from.IsSavings() && to.IsChecking() {
		return nil, apperror.ErrForbiddenAccountPair(string(from.Type), string(to.Type))
	}
	if from.IsSavings() && to.IsSavings() {
		return nil, apperror.ErrForbiddenAccountPair(string(from.Type), string(to.Type))
	}

	if fromID == toID {
		return nil, apperror.ErrSelfTransfer(fromID)
	}

	if !requested.Currency.Valid() || !s.rates.Convertible(requested.Currency) {
		return nil, apperror.ErrInvalidCurrency(string(requested.Currency))
	}

	// The card is required for daily-limit accounting even though only
	// checking accounts enforce the limit.
	if from.Card == nil {
		return nil, apperror.ErrMissingCard(fromID)
	}
	now := s.now()
	if err := s.checkCard(from, now); err != nil {
		return nil, err
	}

	// Debit and credit are converted independently from the original
	// request, never chained through each other, so rounding error does
	// not compound and the sufficiency check uses the same rate that
	// settles the debit.
	debit, err := s.rates.Convert(requested.Amount, requested.Currency, from.Balance.Currency)
	if err != nil {
		return nil, err
	}
	credit, err := s.rates.Convert(requested.Amount, requested.Currency, to.Balance.Currency)
	if err != nil {
		return nil, err
	}

	if from.Balance.Amount.LessThan(debit) {
		return nil, apperror.ErrInsufficientFunds(fromID, from.Balance.String(), requested.String())
	}

	if from.IsChecking() {
		if err := s.checkDailyLimit(from, debit, now); err != nil {
			return nil, err
		}
	}

	// Commit. From here on nothing can fail.
	from.Debit(debit)
	to.Credit(credit)
	txn := domain.NewTransaction(fromID, toID, domain.NewMoney(credit, to.Balance.Currency), now)
	from.Append(txn)
	to.Append(txn)

	s.log.Info().
		Str("tx_id", txn.ID.String()).
		Str("from", fromID).
		Str("to", toID).
		Str("debited", debit.String()+" "+string(from.Balance.Currency)).
		Str("credited", txn.Amount.String()).
		Msg("transfer settled")

	return &txn, nil
}

// Withdraw validates and settles a withdrawal. The record is
// self-referencing (From == To) and the amount is denominated in the
// account's own currency.
func (s *TransactionServiceImpl) Withdraw(accountID string, requested domain.Money) (*domain.Transaction, error) {
	acc, ok := s.store.Get(accountID)
	if !ok {
		return nil, apperror.ErrAccountNotFound(accountID)
	}

	if acc.Card == nil {
		return nil, apperror.ErrMissingCard(accountID)
	}

	if !requested.IsPositive() {
		return nil, apperror.ErrNonPositiveAmount(requested.Amount.String())
	}

	if !requested.Currency.Valid() || !s.rates.Convertible(requested.Currency) {
		return nil, apperror.ErrInvalidCurrency(string(requested.Currency))
	}

	debit, err := s.rates.Convert(requested.Amount, requested.Currency, acc.Balance.Currency)
	if err != nil {
		return nil, err
	}

	if acc.Balance.Amount.LessThan(debit) {
		return nil, apperror.ErrInsufficientFunds(accountID, acc.Balance.String(), requested.String())
	}

	now := s.now()
	if acc.IsChecking() {
		if err := s.checkCard(acc, now); err != nil {
			return nil, err
		}
		if err := s.checkDailyLimit(acc, debit, now); err != nil {
			return nil, err
		}
	}

	acc.Debit(debit)
	txn := domain.NewWithdrawal(accountID, domain.NewMoney(debit, acc.Balance.Currency), now)
	acc.Append(txn)

	s.log.Info().
		Str("tx_id", txn.ID.String()).
		Str("account", accountID).
		Str("amount", txn.Amount.String()).
		Msg("withdrawal settled")

	return &txn, nil
}

// CheckFunds returns the account's current balance. Read-only.
func (s *TransactionServiceImpl) CheckFunds(accountID string) (domain.Money, error) {
	if !s.store.Exists(accountID) {
		return domain.Money{}, apperror.ErrAccountNotFound(accountID)
	}
	acc, _ := s.store.Get(accountID)
	return acc.Balance, nil
}

// RetrieveTransactions returns a copy of the account's history. Read-only.
func (s *TransactionServiceImpl) RetrieveTransactions(accountID string) ([]domain.Transaction, error) {
	if !s.store.Exists(accountID) {
		return nil, apperror.ErrAccountNotFound(accountID)
	}
	acc, _ := s.store.Get(accountID)
	out := make([]domain.Transaction, len(acc.Transactions))
	copy(out, acc.Transactions)
	return out, nil
}

// checkCard rejects an inactive or expired card. A card expiring on the
// current calendar day still works; that only earns a warning.
func (s *TransactionServiceImpl) checkCard(acc *domain.Account, now time.Time) error {
	if !acc.Card.UsableAsOf(now) {
		return apperror.ErrCardExpiredOrInactive(acc.ID)
	}
	if acc.Card.ExpiresOn(now) {
		s.log.Warn().
			Str("account", acc.ID).
			Time("expiration", acc.Card.ExpirationDate).
			Msg("card expires today")
	}
	return nil
}

// checkDailyLimit enforces the pooled per-day cap: transfers and
// withdrawals originated from the account on the current calendar day,
// each converted into the account's currency, plus the pending debit,
// must not exceed the card's daily limit.
func (s *TransactionServiceImpl) checkDailyLimit(acc *domain.Account, debit decimal.Decimal, now time.Time) error {
	spent := decimal.Zero
	for i := range acc.Transactions {
		txn := &acc.Transactions[i]
		if !txn.OriginatedFrom(acc.ID) || !domain.SameCalendarDay(txn.Timestamp, now) {
			continue
		}
		amount, err := s.rates.Convert(txn.Amount.Amount, txn.Amount.Currency, acc.Balance.Currency)
		if err != nil {
			return err
		}
		spent = spent.Add(amount)
	}
	if spent.Add(debit).GreaterThan(acc.Card.DailyLimit) {
		return apperror.ErrDailyLimitExceeded(
			acc.ID,
			acc.Card.DailyLimit.String()+" "+string(acc.Balance.Currency),
			spent.Add(debit).String()+" "+string(acc.Balance.Currency),
		)
	}
	return nil
}
