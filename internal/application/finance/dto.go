package finance

import (
	"time"

	"github.com/fuelpos/backend/internal/domain/finance"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreatePaymentRequest represents a request to record a settlement
// payment, either received from a customer/employee or paid to a
// supplier depending on the endpoint.
type CreatePaymentRequest struct {
	PartyID    uuid.UUID       `json:"party_id" binding:"required"`
	OccurredAt time.Time       `json:"occurred_at"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
	Method     string          `json:"method" binding:"required"`
	Remark     string          `json:"remark"`
}

// PaymentResponse represents a payment in API responses
type PaymentResponse struct {
	ID         uuid.UUID       `json:"id"`
	PartyID    uuid.UUID       `json:"party_id"`
	OccurredAt time.Time       `json:"occurred_at"`
	Amount     decimal.Decimal `json:"amount"`
	Method     string          `json:"method"`
	Remark     string          `json:"remark,omitempty"`
}

// CreateCashAdvanceRequest represents a request to record cash handed
// out against a customer or employee account
type CreateCashAdvanceRequest struct {
	PartyID    uuid.UUID       `json:"party_id" binding:"required"`
	OccurredAt time.Time       `json:"occurred_at"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
	Notes      string          `json:"notes"`
}

// CashAdvanceResponse represents a cash advance in API responses
type CashAdvanceResponse struct {
	ID         uuid.UUID       `json:"id"`
	PartyID    uuid.UUID       `json:"party_id"`
	OccurredAt time.Time       `json:"occurred_at"`
	Amount     decimal.Decimal `json:"amount"`
	Notes      string          `json:"notes,omitempty"`
}

// CreateCapitalEntryRequest represents a partner investment or withdrawal
type CreateCapitalEntryRequest struct {
	PartnerID  uuid.UUID       `json:"partner_id" binding:"required"`
	OccurredAt time.Time       `json:"occurred_at"`
	Type       string          `json:"type" binding:"required,oneof=INVESTMENT WITHDRAWAL"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
	Remark     string          `json:"remark"`
}

// CapitalEntryResponse represents a capital entry in API responses
type CapitalEntryResponse struct {
	ID         uuid.UUID       `json:"id"`
	PartnerID  uuid.UUID       `json:"partner_id"`
	OccurredAt time.Time       `json:"occurred_at"`
	Type       string          `json:"type"`
	Amount     decimal.Decimal `json:"amount"`
	Remark     string          `json:"remark,omitempty"`
}

// CreateExpenseRequest represents an operating expense. A SALARIES
// expense must name the employee it pays.
type CreateExpenseRequest struct {
	Category    string          `json:"category" binding:"required"`
	EmployeeID  *uuid.UUID      `json:"employee_id"`
	OccurredAt  time.Time       `json:"occurred_at"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description"`
}

// ExpenseResponse represents an expense in API responses
type ExpenseResponse struct {
	ID          uuid.UUID       `json:"id"`
	Category    string          `json:"category"`
	EmployeeID  *uuid.UUID      `json:"employee_id,omitempty"`
	OccurredAt  time.Time       `json:"occurred_at"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
}

// PeriodRequest bounds list queries to a time window
type PeriodRequest struct {
	From time.Time `form:"from" time_format:"2006-01-02"`
	To   time.Time `form:"to" time_format:"2006-01-02"`
}

func (r PeriodRequest) toFilter() finance.PeriodFilter {
	filter := finance.PeriodFilter{From: r.From}
	if !r.To.IsZero() {
		filter.To = r.To.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	return filter
}

func toCustomerPaymentResponse(p *finance.CustomerPayment) PaymentResponse {
	return PaymentResponse{
		ID:         p.ID,
		PartyID:    p.CustomerID,
		OccurredAt: p.OccurredAt,
		Amount:     p.Amount.Amount(),
		Method:     p.Method.String(),
		Remark:     p.Remark,
	}
}

func toSupplierPaymentResponse(p *finance.SupplierPayment) PaymentResponse {
	return PaymentResponse{
		ID:         p.ID,
		PartyID:    p.SupplierID,
		OccurredAt: p.OccurredAt,
		Amount:     p.Amount.Amount(),
		Method:     p.Method.String(),
		Remark:     p.Remark,
	}
}

func toCashAdvanceResponse(a *finance.CashAdvance) CashAdvanceResponse {
	return CashAdvanceResponse{
		ID:         a.ID,
		PartyID:    a.PartyID,
		OccurredAt: a.OccurredAt,
		Amount:     a.Amount.Amount(),
		Notes:      a.Notes,
	}
}

func toCapitalEntryResponse(e *finance.CapitalEntry) CapitalEntryResponse {
	return CapitalEntryResponse{
		ID:         e.ID,
		PartnerID:  e.PartnerID,
		OccurredAt: e.OccurredAt,
		Type:       e.Type.String(),
		Amount:     e.Amount.Amount(),
		Remark:     e.Remark,
	}
}

func toExpenseResponse(e *finance.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          e.ID,
		Category:    e.Category.String(),
		EmployeeID:  e.EmployeeID,
		OccurredAt:  e.OccurredAt,
		Amount:      e.Amount.Amount(),
		Description: e.Description,
	}
}
