package handler

import (
	ledgerapp "github.com/fuelpos/backend/internal/application/ledger"
	"github.com/gin-gonic/gin"
)

// LedgerHandler handles unified ledger and balance endpoints
type LedgerHandler struct {
	BaseHandler
	ledgerService *ledgerapp.Service
}

// NewLedgerHandler creates a new LedgerHandler
func NewLedgerHandler(ledgerService *ledgerapp.Service) *LedgerHandler {
	return &LedgerHandler{ledgerService: ledgerService}
}

// Get builds the unified ledger, optionally filtered to one party
// and/or one calendar day.
func (h *LedgerHandler) Get(c *gin.Context) {
	var query ledgerapp.LedgerQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.ledgerService.GetLedger(c.Request.Context(), query)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Balances returns the computed balance of every party
func (h *LedgerHandler) Balances(c *gin.Context) {
	resp, err := h.ledgerService.ListBalances(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// DeleteEntry deletes the event behind a ledger entry by its composite
// entry id ("kind-uuid"). The ledger rebuilds without it on the next read.
func (h *LedgerHandler) DeleteEntry(c *gin.Context) {
	entryID := c.Param("id")
	if entryID == "" {
		h.BadRequest(c, "Entry ID is required")
		return
	}

	if err := h.ledgerService.DeleteEntry(c.Request.Context(), entryID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
