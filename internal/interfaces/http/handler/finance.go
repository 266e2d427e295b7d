package handler

import (
	financeapp "github.com/fuelpos/backend/internal/application/finance"
	"github.com/gin-gonic/gin"
)

// FinanceHandler handles payment, cash advance, capital and expense endpoints
type FinanceHandler struct {
	BaseHandler
	paymentService *financeapp.PaymentService
	capitalService *financeapp.CapitalService
	expenseService *financeapp.ExpenseService
}

// NewFinanceHandler creates a new FinanceHandler
func NewFinanceHandler(
	paymentService *financeapp.PaymentService,
	capitalService *financeapp.CapitalService,
	expenseService *financeapp.ExpenseService,
) *FinanceHandler {
	return &FinanceHandler{
		paymentService: paymentService,
		capitalService: capitalService,
		expenseService: expenseService,
	}
}

// CreateCustomerPayment records money received from a customer or employee
func (h *FinanceHandler) CreateCustomerPayment(c *gin.Context) {
	var req financeapp.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.paymentService.RecordCustomerPayment(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// ListCustomerPayments returns customer payments within the optional period
func (h *FinanceHandler) ListCustomerPayments(c *gin.Context) {
	var period financeapp.PeriodRequest
	if err := c.ShouldBindQuery(&period); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.paymentService.ListCustomerPayments(c.Request.Context(), period)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// CreateSupplierPayment records money paid out to a supplier
func (h *FinanceHandler) CreateSupplierPayment(c *gin.Context) {
	var req financeapp.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.paymentService.RecordSupplierPayment(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// ListSupplierPayments returns supplier payments within the optional period
func (h *FinanceHandler) ListSupplierPayments(c *gin.Context) {
	var period financeapp.PeriodRequest
	if err := c.ShouldBindQuery(&period); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.paymentService.ListSupplierPayments(c.Request.Context(), period)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// CreateCashAdvance records cash handed out against an account
func (h *FinanceHandler) CreateCashAdvance(c *gin.Context) {
	var req financeapp.CreateCashAdvanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.paymentService.RecordCashAdvance(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// ListCashAdvances returns cash advances within the optional period
func (h *FinanceHandler) ListCashAdvances(c *gin.Context) {
	var period financeapp.PeriodRequest
	if err := c.ShouldBindQuery(&period); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.paymentService.ListCashAdvances(c.Request.Context(), period)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// CreateCapitalEntry records a partner investment or withdrawal
func (h *FinanceHandler) CreateCapitalEntry(c *gin.Context) {
	var req financeapp.CreateCapitalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.capitalService.Record(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// ListCapitalEntries returns capital entries within the optional period
func (h *FinanceHandler) ListCapitalEntries(c *gin.Context) {
	var period financeapp.PeriodRequest
	if err := c.ShouldBindQuery(&period); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.capitalService.List(c.Request.Context(), period)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// CreateExpense records an operating expense or salary posting
func (h *FinanceHandler) CreateExpense(c *gin.Context) {
	var req financeapp.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.expenseService.Record(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// ListExpenses returns expenses within the optional period
func (h *FinanceHandler) ListExpenses(c *gin.Context) {
	var period financeapp.PeriodRequest
	if err := c.ShouldBindQuery(&period); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.expenseService.List(c.Request.Context(), period)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// DeleteExpense removes an expense
func (h *FinanceHandler) DeleteExpense(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid expense ID")
		return
	}

	if err := h.expenseService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
