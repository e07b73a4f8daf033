package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"bank-ledger-core/internal/adapter/http/dto"
	"bank-ledger-core/internal/core/ports"
	"bank-ledger-core/pkg/response"
)

// SavingsHandler exposes the simulated clock.
type SavingsHandler struct {
	savingsSvc ports.SavingsService
}

// NewSavingsHandler creates a new SavingsHandler.
func NewSavingsHandler(savingsSvc ports.SavingsService) *SavingsHandler {
	return &SavingsHandler{savingsSvc: savingsSvc}
}

// AdvanceTime handles POST /api/v1/time/advance: one simulated calendar
// month passes and due capitalizations are applied.
func (h *SavingsHandler) AdvanceTime(c *gin.Context) {
	date, err := h.savingsSvc.AdvanceTime()
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.AdvanceTimeResponse{
		SimulatedDate: date.Format(time.RFC3339),
	})
}

// GetCurrentDate handles GET /api/v1/time.
func (h *SavingsHandler) GetCurrentDate(c *gin.Context) {
	response.OK(c, dto.AdvanceTimeResponse{
		SimulatedDate: h.savingsSvc.CurrentDate().Format(time.RFC3339),
	})
}
