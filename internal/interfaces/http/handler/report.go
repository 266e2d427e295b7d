package handler

import (
	"time"

	reportapp "github.com/fuelpos/backend/internal/application/report"
	"github.com/gin-gonic/gin"
)

// ReportHandler handles profit and summary report endpoints
type ReportHandler struct {
	BaseHandler
	reportService *reportapp.Service
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService *reportapp.Service) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// periodQuery binds an inclusive date window
type periodQuery struct {
	From time.Time `form:"from" binding:"required" time_format:"2006-01-02"`
	To   time.Time `form:"to" binding:"required" time_format:"2006-01-02"`
}

// DailySummary returns the revenue/cost/profit summary for one day
func (h *ReportHandler) DailySummary(c *gin.Context) {
	var query struct {
		Date time.Time `form:"date" binding:"required" time_format:"2006-01-02"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.reportService.DailySummary(c.Request.Context(), query.Date)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// PeriodProfit returns the profit summary over a date window
func (h *ReportHandler) PeriodProfit(c *gin.Context) {
	var query periodQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.reportService.PeriodProfit(c.Request.Context(), query.From, query.To)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// ProfitByProduct returns per-product profit over a date window
func (h *ReportHandler) ProfitByProduct(c *gin.Context) {
	var query periodQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.reportService.ProfitByProduct(c.Request.Context(), query.From, query.To)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// SaleProfit returns the historical-cost profit of one sale
func (h *ReportHandler) SaleProfit(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid sale ID")
		return
	}

	resp, err := h.reportService.SaleProfit(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}
