package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InterestTier is the lifetime class of a savings account. The tier fixes
// both the per-capitalization rate and the total number of months the
// account may receive interest before accrual permanently stops.
type InterestTier string

const (
	InterestTierOneMonth   InterestTier = "ONE_MONTH"
	InterestTierThreeMonth InterestTier = "THREE_MONTH"
	InterestTierSixMonth   InterestTier = "SIX_MONTH"
)

var (
	rateOneMonth   = decimal.RequireFromString("0.045")
	rateThreeMonth = decimal.RequireFromString("0.055")
	rateSixMonth   = decimal.RequireFromString("0.0565")
)

// Valid reports whether t is a recognized tier. An unrecognized tier on a
// live account is a fatal configuration fault, never silently defaulted.
func (t InterestTier) Valid() bool {
	switch t {
	case InterestTierOneMonth, InterestTierThreeMonth, InterestTierSixMonth:
		return true
	}
	return false
}

// CapMonths returns the lifetime cap in months of interest, or 0 for an
// unrecognized tier.
func (t InterestTier) CapMonths() int {
	switch t {
	case InterestTierOneMonth:
		return 1
	case InterestTierThreeMonth:
		return 3
	case InterestTierSixMonth:
		return 6
	}
	return 0
}

// Rate returns the interest rate applied at each capitalization.
func (t InterestTier) Rate() decimal.Decimal {
	switch t {
	case InterestTierOneMonth:
		return rateOneMonth
	case InterestTierThreeMonth:
		return rateThreeMonth
	case InterestTierSixMonth:
		return rateSixMonth
	}
	return decimal.Zero
}

// CapitalizationFrequency is how often accrued interest joins the
// principal.
type CapitalizationFrequency string

const (
	CapitalizationMonthly   CapitalizationFrequency = "MONTHLY"
	CapitalizationQuarterly CapitalizationFrequency = "QUARTERLY"
)

// Months returns the frequency's period length in calendar months, or 0
// for an unrecognized frequency.
func (f CapitalizationFrequency) Months() int {
	switch f {
	case CapitalizationMonthly:
		return 1
	case CapitalizationQuarterly:
		return 3
	}
	return 0
}

// SavingsTerms is the variant payload of an interest-bearing account.
type SavingsTerms struct {
	Tier                     InterestTier            `json:"tier"`
	Frequency                CapitalizationFrequency `json:"frequency"`
	LastInterestApplied      time.Time               `json:"last_interest_applied"`
	MonthsOfInterestReceived int                     `json:"months_of_interest_received"`
}

// Exhausted reports whether the account has reached its lifetime cap.
// This is a valid terminal state, not an error.
func (s *SavingsTerms) Exhausted() bool {
	return s.MonthsOfInterestReceived >= s.Tier.CapMonths()
}
