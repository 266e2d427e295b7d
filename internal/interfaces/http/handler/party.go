package handler

import (
	partyapp "github.com/fuelpos/backend/internal/application/party"
	"github.com/gin-gonic/gin"
)

// PartyHandler handles party account endpoints
type PartyHandler struct {
	BaseHandler
	partyService *partyapp.Service
}

// NewPartyHandler creates a new PartyHandler
func NewPartyHandler(partyService *partyapp.Service) *PartyHandler {
	return &PartyHandler{partyService: partyService}
}

// Create creates a new party
func (h *PartyHandler) Create(c *gin.Context) {
	var req partyapp.CreatePartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.partyService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// Get returns a party with its computed ledger balance
func (h *PartyHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid party ID")
		return
	}

	resp, err := h.partyService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// List returns parties matching the filter
func (h *PartyHandler) List(c *gin.Context) {
	var req partyapp.ListPartiesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.partyService.List(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, resp.Parties, resp.Total, req.Limit, req.Offset)
}

// Update applies partial updates to a party
func (h *PartyHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid party ID")
		return
	}

	var req partyapp.UpdatePartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.partyService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Delete removes a party
func (h *PartyHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid party ID")
		return
	}

	if err := h.partyService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
