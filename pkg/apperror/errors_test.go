package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	err := New("BIZ_001", "Not enough funds available", http.StatusPaymentRequired)
	assert.Equal(t, "[BIZ_001] Not enough funds available", err.Error())

	wrapped := InternalError(fmt.Errorf("boom"))
	assert.Contains(t, wrapped.Error(), "SYS_001")
	assert.Contains(t, wrapped.Error(), "boom")
}

func TestAppError_Unwrap(t *testing.T) {
	inner := errors.New("inner")
	err := InternalError(inner)
	assert.ErrorIs(t, err, inner)
}

func TestConstructors_CodesAndStatuses(t *testing.T) {
	tests := []struct {
		name   string
		err    *AppError
		code   string
		status int
	}{
		{"account not found", ErrAccountNotFound("X"), "ACC_001", http.StatusNotFound},
		{"missing card", ErrMissingCard("X"), "ACC_002", http.StatusUnprocessableEntity},
		{"non-positive amount", ErrNonPositiveAmount("-5"), "REQ_001", http.StatusBadRequest},
		{"invalid currency", ErrInvalidCurrency("USD"), "REQ_002", http.StatusBadRequest},
		{"self transfer", ErrSelfTransfer("X"), "REQ_003", http.StatusBadRequest},
		{"forbidden pair", ErrForbiddenAccountPair("SAVINGS", "CHECKING"), "POL_001", http.StatusUnprocessableEntity},
		{"insufficient funds", ErrInsufficientFunds("X", "1 RON", "5 RON"), "BIZ_001", http.StatusPaymentRequired},
		{"daily limit", ErrDailyLimitExceeded("X", "500 RON", "600 RON"), "BIZ_002", http.StatusUnprocessableEntity},
		{"card expired", ErrCardExpiredOrInactive("X"), "CAP_001", http.StatusForbidden},
		{"unsupported pair", ErrUnsupportedCurrencyPair("USD", "RON"), "CFG_001", http.StatusInternalServerError},
		{"invalid tier", ErrInvalidLifetimeTier("X", "TWELVE"), "CFG_002", http.StatusInternalServerError},
		{"validation", Validation("bad body"), "REQ_000", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.status, tt.err.HTTPStatus)
		})
	}
}

func TestConstructors_Details(t *testing.T) {
	err := ErrInsufficientFunds("ROBMSG200001", "50 RON", "1000 RON")
	require.NotNil(t, err.Details)
	assert.Equal(t, "ROBMSG200001", err.Details["account_id"])
	assert.Equal(t, "50 RON", err.Details["available"])
	assert.Equal(t, "1000 RON", err.Details["requested"])

	err = ErrDailyLimitExceeded("A", "500 EUR", "550 EUR")
	assert.Equal(t, "500 EUR", err.Details["limit"])
	assert.Equal(t, "550 EUR", err.Details["attempted"])

	err = ErrForbiddenAccountPair("SAVINGS", "CHECKING")
	assert.Equal(t, "SAVINGS", err.Details["from_type"])
	assert.Equal(t, "CHECKING", err.Details["to_type"])
	assert.Contains(t, err.Message, "SAVINGS")
}
