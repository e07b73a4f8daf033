package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"bank-ledger-core/internal/adapter/http/middleware"
	"bank-ledger-core/internal/core/ports"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	TxnSvc     ports.TransactionService
	SavingsSvc ports.SavingsService
	Logger     zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")

	ledgerHandler := NewLedgerHandler(deps.TxnSvc)
	v1.POST("/transfers", ledgerHandler.Transfer)
	v1.POST("/withdrawals", ledgerHandler.Withdraw)

	accounts := v1.Group("/accounts")
	{
		accounts.GET("/:id/balance", ledgerHandler.GetBalance)
		accounts.GET("/:id/transactions", ledgerHandler.ListTransactions)
	}

	savingsHandler := NewSavingsHandler(deps.SavingsSvc)
	clock := v1.Group("/time")
	{
		clock.GET("", savingsHandler.GetCurrentDate)
		clock.POST("/advance", savingsHandler.AdvanceTime)
	}

	return r
}
