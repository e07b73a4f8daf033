package dto

import "github.com/shopspring/decimal"

// TransferRequest is the request body for a transfer.
type TransferRequest struct {
	FromID   string          `json:"from_id" binding:"required"`
	ToID     string          `json:"to_id" binding:"required"`
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency" binding:"required,len=3"`
}

// WithdrawRequest is the request body for a withdrawal.
type WithdrawRequest struct {
	AccountID string          `json:"account_id" binding:"required"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency" binding:"required,len=3"`
}

// TransactionResponse is the response body for a settled transaction.
type TransactionResponse struct {
	ID         string `json:"id"`
	From       string `json:"from"`
	To         string `json:"to"`
	Amount     string `json:"amount"`
	Currency   string `json:"currency"`
	Withdrawal bool   `json:"withdrawal"`
	Timestamp  string `json:"timestamp"`
}

// BalanceResponse is the response body for a balance query.
type BalanceResponse struct {
	AccountID string `json:"account_id"`
	Amount    string `json:"amount"`
	Currency  string `json:"currency"`
}

// TransactionListResponse wraps an account's transaction history.
type TransactionListResponse struct {
	AccountID string                `json:"account_id"`
	Items     []TransactionResponse `json:"items"`
	Total     int                   `json:"total"`
}

// AdvanceTimeResponse reports the simulated date after a tick.
type AdvanceTimeResponse struct {
	SimulatedDate string `json:"simulated_date"`
}
