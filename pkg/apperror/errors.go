package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured, caller-visible fault. Every fault in the
// ledger is synchronous and non-retryable; Details carries the fields a
// caller needs to render an actionable message (account id, limits,
// attempted amounts).
type AppError struct {
	Code       string         `json:"error_code"`
	Message    string         `json:"message"`
	Details    map[string]any `json:"details,omitempty"`
	HTTPStatus int            `json:"-"`
	Err        error          `json:"-"` // wrapped internal error, not exposed
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// WithDetails attaches structured detail fields and returns the error.
func (e *AppError) WithDetails(details map[string]any) *AppError {
	e.Details = details
	return e
}

// ---- Preconditions (ACC) ----

func ErrAccountNotFound(accountID string) *AppError {
	return New("ACC_001", "Specified account does not exist", http.StatusNotFound).
		WithDetails(map[string]any{"account_id": accountID})
}

func ErrMissingCard(accountID string) *AppError {
	return New("ACC_002", "Account has no card attached", http.StatusUnprocessableEntity).
		WithDetails(map[string]any{"account_id": accountID})
}

// ---- Malformed requests (REQ) ----

func ErrNonPositiveAmount(amount string) *AppError {
	return New("REQ_001", "Amount must be greater than zero", http.StatusBadRequest).
		WithDetails(map[string]any{"amount": amount})
}

func ErrInvalidCurrency(currency string) *AppError {
	return New("REQ_002", "Currency is not supported for settlement", http.StatusBadRequest).
		WithDetails(map[string]any{"currency": currency})
}

func ErrSelfTransfer(accountID string) *AppError {
	return New("REQ_003", "Transfer to the originating account is not allowed", http.StatusBadRequest).
		WithDetails(map[string]any{"account_id": accountID})
}

// ---- Policy (POL) ----

func ErrForbiddenAccountPair(fromType, toType string) *AppError {
	return New("POL_001",
		fmt.Sprintf("Transfers between account types %s and %s are not allowed", fromType, toType),
		http.StatusUnprocessableEntity).
		WithDetails(map[string]any{"from_type": fromType, "to_type": toType})
}

// ---- Business state (BIZ) ----

func ErrInsufficientFunds(accountID, available, requested string) *AppError {
	return New("BIZ_001", "Not enough funds available", http.StatusPaymentRequired).
		WithDetails(map[string]any{
			"account_id": accountID,
			"available":  available,
			"requested":  requested,
		})
}

func ErrDailyLimitExceeded(accountID, limit, attempted string) *AppError {
	return New("BIZ_002", "Daily outgoing limit reached for this account", http.StatusUnprocessableEntity).
		WithDetails(map[string]any{
			"account_id": accountID,
			"limit":      limit,
			"attempted":  attempted,
		})
}

// ---- Capability (CAP) ----

func ErrCardExpiredOrInactive(accountID string) *AppError {
	return New("CAP_001", "Card is expired or inactive", http.StatusForbidden).
		WithDetails(map[string]any{"account_id": accountID})
}

// ---- Configuration (CFG) ----

func ErrUnsupportedCurrencyPair(from, to string) *AppError {
	return New("CFG_001",
		fmt.Sprintf("No conversion rate configured for %s/%s", from, to),
		http.StatusInternalServerError).
		WithDetails(map[string]any{"from": from, "to": to})
}

func ErrInvalidLifetimeTier(accountID, tier string) *AppError {
	return New("CFG_002",
		fmt.Sprintf("Savings account carries unrecognized lifetime tier %q", tier),
		http.StatusInternalServerError).
		WithDetails(map[string]any{"account_id": accountID, "tier": tier})
}

// ---- Generic ----

// Validation returns a request-binding validation error.
func Validation(message string) *AppError {
	return New("REQ_000", message, http.StatusBadRequest)
}

// InternalError wraps an unexpected internal error.
func InternalError(err error) *AppError {
	return &AppError{
		Code:       "SYS_001",
		Message:    "Internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}
