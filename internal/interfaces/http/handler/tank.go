package handler

import (
	tankapp "github.com/fuelpos/backend/internal/application/tank"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TankHandler handles tank reading and variance endpoints
type TankHandler struct {
	BaseHandler
	tankService *tankapp.Service
}

// NewTankHandler creates a new TankHandler
func NewTankHandler(tankService *tankapp.Service) *TankHandler {
	return &TankHandler{tankService: tankService}
}

// Create records a meter reading with its derived usage and variance
func (h *TankHandler) Create(c *gin.Context) {
	var req tankapp.CreateReadingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.tankService.Record(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// List returns all readings, optionally restricted to one fuel product
func (h *TankHandler) List(c *gin.Context) {
	if productParam := c.Query("product_id"); productParam != "" {
		productID, err := uuid.Parse(productParam)
		if err != nil {
			h.BadRequest(c, "Invalid product ID")
			return
		}
		resp, err := h.tankService.ListByProduct(c.Request.Context(), productID)
		if err != nil {
			h.HandleError(c, err)
			return
		}
		h.Success(c, resp)
		return
	}

	resp, err := h.tankService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Delete removes a reading. Later readings keep the derived figures
// computed when they were recorded.
func (h *TankHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid reading ID")
		return
	}

	if err := h.tankService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
