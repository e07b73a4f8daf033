package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Card gates outgoing operations on a checking account: it carries the
// pooled daily limit for transfers and withdrawals, in the account's
// currency.
type Card struct {
	Active         bool            `json:"active"`
	ExpirationDate time.Time       `json:"expiration_date"`
	DailyLimit     decimal.Decimal `json:"daily_limit"`
}

// ExpiredAsOf reports whether the card's expiration date lies strictly
// before the calendar day of t. A card expiring on t's own day is still
// usable (callers emit a warning instead).
func (c *Card) ExpiredAsOf(t time.Time) bool {
	return dayOf(c.ExpirationDate).Before(dayOf(t))
}

// ExpiresOn reports whether the card expires on the same calendar day as t.
func (c *Card) ExpiresOn(t time.Time) bool {
	return dayOf(c.ExpirationDate).Equal(dayOf(t))
}

// UsableAsOf reports whether the card is active and not yet expired.
func (c *Card) UsableAsOf(t time.Time) bool {
	return c.Active && !c.ExpiredAsOf(t)
}

// dayOf truncates t to its UTC calendar day.
func dayOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameCalendarDay reports whether a and b fall on the same UTC day.
func SameCalendarDay(a, b time.Time) bool {
	return dayOf(a).Equal(dayOf(b))
}
