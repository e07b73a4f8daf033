package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"bank-ledger-core/internal/adapter/http/dto"
	"bank-ledger-core/internal/core/domain"
	"bank-ledger-core/internal/core/ports"
	"bank-ledger-core/pkg/apperror"
	"bank-ledger-core/pkg/response"
)

// LedgerHandler handles transfer, withdrawal and account query endpoints.
type LedgerHandler struct {
	txnSvc ports.TransactionService
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(txnSvc ports.TransactionService) *LedgerHandler {
	return &LedgerHandler{txnSvc: txnSvc}
}

// Transfer handles POST /api/v1/transfers.
func (h *LedgerHandler) Transfer(c *gin.Context) {
	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	txn, err := h.txnSvc.Transfer(req.FromID, req.ToID,
		domain.NewMoney(req.Amount, domain.Currency(req.Currency)))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toTransactionResponse(txn))
}

// Withdraw handles POST /api/v1/withdrawals.
func (h *LedgerHandler) Withdraw(c *gin.Context) {
	var req dto.WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	txn, err := h.txnSvc.Withdraw(req.AccountID,
		domain.NewMoney(req.Amount, domain.Currency(req.Currency)))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toTransactionResponse(txn))
}

// GetBalance handles GET /api/v1/accounts/:id/balance.
func (h *LedgerHandler) GetBalance(c *gin.Context) {
	id := c.Param("id")

	balance, err := h.txnSvc.CheckFunds(id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.BalanceResponse{
		AccountID: id,
		Amount:    balance.Amount.String(),
		Currency:  string(balance.Currency),
	})
}

// ListTransactions handles GET /api/v1/accounts/:id/transactions.
func (h *LedgerHandler) ListTransactions(c *gin.Context) {
	id := c.Param("id")

	txns, err := h.txnSvc.RetrieveTransactions(id)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.TransactionResponse, 0, len(txns))
	for i := range txns {
		items = append(items, toTransactionResponse(&txns[i]))
	}
	response.OK(c, dto.TransactionListResponse{
		AccountID: id,
		Items:     items,
		Total:     len(items),
	})
}

// toTransactionResponse converts a domain.Transaction to its DTO.
func toTransactionResponse(txn *domain.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:         txn.ID.String(),
		From:       txn.From,
		To:         txn.To,
		Amount:     txn.Amount.Amount.String(),
		Currency:   string(txn.Amount.Currency),
		Withdrawal: txn.IsWithdrawal(),
		Timestamp:  txn.Timestamp.Format(time.RFC3339),
	}
}
