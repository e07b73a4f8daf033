package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bank-ledger-core/internal/adapter/storage/memory"
	"bank-ledger-core/internal/exchange"
	"bank-ledger-core/internal/seed"
	"bank-ledger-core/internal/service"
)

var openedAt = time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

// setupRouter wires the full HTTP surface over a freshly seeded in-memory
// store, the same way main does.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := memory.NewAccountStore()
	require.NoError(t, seed.Load(store, openedAt))

	log := zerolog.Nop()
	return SetupRouter(RouterDeps{
		TxnSvc:     service.NewTransactionService(store, exchange.Default(), log),
		SavingsSvc: service.NewSavingsService(store, openedAt, log),
		Logger:     log,
	})
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var envelope struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope.Data
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) (code string, details map[string]any) {
	t.Helper()
	var envelope struct {
		ErrorCode string         `json:"error_code"`
		Details   map[string]any `json:"details"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope.ErrorCode, envelope.Details
}

func TestHealth(t *testing.T) {
	r := setupRouter(t)
	w := doJSON(t, r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTransferEndpoint_Success(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/transfers", gin.H{
		"from_id":  "ROBMSG200001",
		"to_id":    "ROBMSG200002",
		"amount":   "50",
		"currency": "RON",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	data := decodeData(t, w)
	assert.Equal(t, "ROBMSG200001", data["from"])
	assert.Equal(t, "ROBMSG200002", data["to"])
	assert.Equal(t, "50", data["amount"])
	assert.Equal(t, "RON", data["currency"])
	assert.Equal(t, false, data["withdrawal"])
	assert.NotEmpty(t, data["id"])

	// destination balance reflects the settlement
	w = doJSON(t, r, http.MethodGet, "/api/v1/accounts/ROBMSG200002/balance", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "350", decodeData(t, w)["amount"])
}

func TestTransferEndpoint_InsufficientFunds(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/transfers", gin.H{
		"from_id":  "ROBMSG200001",
		"to_id":    "ROBMSG200002",
		"amount":   "1000",
		"currency": "RON",
	})
	require.Equal(t, http.StatusPaymentRequired, w.Code, w.Body.String())

	code, details := decodeError(t, w)
	assert.Equal(t, "BIZ_001", code)
	assert.Equal(t, "ROBMSG200001", details["account_id"])
}

func TestTransferEndpoint_UnknownAccount(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/transfers", gin.H{
		"from_id":  "ROBMSG999999",
		"to_id":    "ROBMSG200002",
		"amount":   "50",
		"currency": "RON",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	code, _ := decodeError(t, w)
	assert.Equal(t, "ACC_001", code)
}

func TestTransferEndpoint_MalformedBody(t *testing.T) {
	r := setupRouter(t)

	// missing required fields
	w := doJSON(t, r, http.MethodPost, "/api/v1/transfers", gin.H{
		"from_id": "ROBMSG200001",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	code, _ := decodeError(t, w)
	assert.Equal(t, "REQ_000", code)
}

func TestWithdrawEndpoint_Success(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/withdrawals", gin.H{
		"account_id": "ROBMSG200003",
		"amount":     "5",
		"currency":   "EUR",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	data := decodeData(t, w)
	assert.Equal(t, true, data["withdrawal"])
	assert.Equal(t, data["from"], data["to"])
	assert.Equal(t, "5", data["amount"])
}

func TestWithdrawEndpoint_ExpiredCard(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/withdrawals", gin.H{
		"account_id": "ROBMSG200005",
		"amount":     "10",
		"currency":   "RON",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	code, _ := decodeError(t, w)
	assert.Equal(t, "CAP_001", code)
}

func TestBalanceEndpoint(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/v1/accounts/ROBMSG100001/balance", nil)
	require.Equal(t, http.StatusOK, w.Code)

	data := decodeData(t, w)
	assert.Equal(t, "ROBMSG100001", data["account_id"])
	assert.Equal(t, "1000", data["amount"])
	assert.Equal(t, "RON", data["currency"])
}

func TestBalanceEndpoint_NotFound(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/v1/accounts/ROBMSG999999/balance", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTransactionsEndpoint(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/withdrawals", gin.H{
		"account_id": "ROBMSG200003",
		"amount":     "5",
		"currency":   "EUR",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/v1/accounts/ROBMSG200003/transactions", nil)
	require.Equal(t, http.StatusOK, w.Code)

	data := decodeData(t, w)
	assert.Equal(t, "ROBMSG200003", data["account_id"])
	assert.EqualValues(t, 1, data["total"])
	items, ok := data["items"].([]any)
	require.True(t, ok)
	require.Len(t, items, 1)
}

func TestTimeEndpoints(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/v1/time", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, openedAt.Format(time.RFC3339), decodeData(t, w)["simulated_date"])

	w = doJSON(t, r, http.MethodPost, "/api/v1/time/advance", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, openedAt.AddDate(0, 1, 0).Format(time.RFC3339), decodeData(t, w)["simulated_date"])

	// the tick capitalized the monthly savings accounts
	w = doJSON(t, r, http.MethodGet, "/api/v1/accounts/ROBMSG100001/balance", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "1055", decodeData(t, w)["amount"])
}
