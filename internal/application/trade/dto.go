package trade

import (
	"time"

	"github.com/fuelpos/backend/internal/domain/trade"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleItemRequest is one line of a sale being recorded
type SaleItemRequest struct {
	ProductID    uuid.UUID       `json:"product_id" binding:"required"`
	Quantity     decimal.Decimal `json:"quantity" binding:"required"`
	PricePerUnit decimal.Decimal `json:"price_per_unit" binding:"required"`
	Discount     decimal.Decimal `json:"discount"`
}

// CreateSaleRequest represents a request to record a sale. A nil
// customer id records a walk-in cash sale.
type CreateSaleRequest struct {
	CustomerID    *uuid.UUID        `json:"customer_id"`
	OccurredAt    time.Time         `json:"occurred_at"`
	Items         []SaleItemRequest `json:"items" binding:"required,min=1,dive"`
	PaymentMethod string            `json:"payment_method" binding:"required,payment_method"`
	Remark        string            `json:"remark"`
}

// SaleItemResponse is one sale line in API responses
type SaleItemResponse struct {
	ProductID    uuid.UUID       `json:"product_id"`
	Quantity     decimal.Decimal `json:"quantity"`
	PricePerUnit decimal.Decimal `json:"price_per_unit"`
	Discount     decimal.Decimal `json:"discount"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
}

// SaleResponse represents a sale in API responses
type SaleResponse struct {
	ID            uuid.UUID          `json:"id"`
	CustomerID    *uuid.UUID         `json:"customer_id,omitempty"`
	OccurredAt    time.Time          `json:"occurred_at"`
	Items         []SaleItemResponse `json:"items"`
	TotalAmount   decimal.Decimal    `json:"total_amount"`
	PaymentMethod string             `json:"payment_method"`
	Remark        string             `json:"remark,omitempty"`
}

// PurchaseItemRequest is one line of a purchase being recorded
type PurchaseItemRequest struct {
	ProductID   uuid.UUID       `json:"product_id" binding:"required"`
	Quantity    decimal.Decimal `json:"quantity" binding:"required"`
	CostPerUnit decimal.Decimal `json:"cost_per_unit" binding:"required"`
}

// CreatePurchaseRequest represents a request to record a supplier purchase
type CreatePurchaseRequest struct {
	SupplierID uuid.UUID             `json:"supplier_id" binding:"required"`
	OccurredAt time.Time             `json:"occurred_at"`
	Items      []PurchaseItemRequest `json:"items" binding:"required,min=1,dive"`
	Remark     string                `json:"remark"`
}

// PurchaseItemResponse is one purchase line in API responses
type PurchaseItemResponse struct {
	ProductID   uuid.UUID       `json:"product_id"`
	Quantity    decimal.Decimal `json:"quantity"`
	CostPerUnit decimal.Decimal `json:"cost_per_unit"`
	TotalCost   decimal.Decimal `json:"total_cost"`
}

// PurchaseResponse represents a purchase in API responses
type PurchaseResponse struct {
	ID         uuid.UUID              `json:"id"`
	SupplierID uuid.UUID              `json:"supplier_id"`
	OccurredAt time.Time              `json:"occurred_at"`
	Items      []PurchaseItemResponse `json:"items"`
	TotalCost  decimal.Decimal        `json:"total_cost"`
	Remark     string                 `json:"remark,omitempty"`
}

// CreatePurchaseReturnRequest represents a request to record fuel
// returned to a supplier
type CreatePurchaseReturnRequest struct {
	SupplierID  uuid.UUID       `json:"supplier_id" binding:"required"`
	ProductID   uuid.UUID       `json:"product_id" binding:"required"`
	OccurredAt  time.Time       `json:"occurred_at"`
	Volume      decimal.Decimal `json:"volume" binding:"required"`
	TotalRefund decimal.Decimal `json:"total_refund" binding:"required"`
	Reason      string          `json:"reason"`
}

// PurchaseReturnResponse represents a purchase return in API responses
type PurchaseReturnResponse struct {
	ID          uuid.UUID       `json:"id"`
	SupplierID  uuid.UUID       `json:"supplier_id"`
	ProductID   uuid.UUID       `json:"product_id"`
	OccurredAt  time.Time       `json:"occurred_at"`
	Volume      decimal.Decimal `json:"volume"`
	TotalRefund decimal.Decimal `json:"total_refund"`
	Reason      string          `json:"reason,omitempty"`
}

// PeriodRequest bounds list queries to a time window
type PeriodRequest struct {
	From time.Time `form:"from" time_format:"2006-01-02"`
	To   time.Time `form:"to" time_format:"2006-01-02"`
}

func (r PeriodRequest) toFilter() trade.PeriodFilter {
	filter := trade.PeriodFilter{From: r.From}
	if !r.To.IsZero() {
		// The To bound is a date; extend it to the end of that day
		filter.To = r.To.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	return filter
}

func toSaleResponse(s *trade.Sale) SaleResponse {
	resp := SaleResponse{
		ID:            s.ID,
		CustomerID:    s.CustomerID,
		OccurredAt:    s.OccurredAt,
		Items:         make([]SaleItemResponse, 0, len(s.Items)),
		TotalAmount:   s.TotalAmount.Amount(),
		PaymentMethod: s.PaymentMethod.String(),
		Remark:        s.Remark,
	}
	for _, item := range s.Items {
		resp.Items = append(resp.Items, SaleItemResponse{
			ProductID:    item.ProductID,
			Quantity:     item.Quantity,
			PricePerUnit: item.PricePerUnit,
			Discount:     item.Discount,
			TotalAmount:  item.TotalAmount,
		})
	}
	return resp
}

func toPurchaseResponse(p *trade.Purchase) PurchaseResponse {
	resp := PurchaseResponse{
		ID:         p.ID,
		SupplierID: p.SupplierID,
		OccurredAt: p.OccurredAt,
		Items:      make([]PurchaseItemResponse, 0, len(p.Items)),
		TotalCost:  p.TotalCost.Amount(),
		Remark:     p.Remark,
	}
	for _, item := range p.Items {
		resp.Items = append(resp.Items, PurchaseItemResponse{
			ProductID:   item.ProductID,
			Quantity:    item.Quantity,
			CostPerUnit: item.CostPerUnit,
			TotalCost:   item.TotalCost,
		})
	}
	return resp
}

func toPurchaseReturnResponse(r *trade.PurchaseReturn) PurchaseReturnResponse {
	return PurchaseReturnResponse{
		ID:          r.ID,
		SupplierID:  r.SupplierID,
		ProductID:   r.ProductID,
		OccurredAt:  r.OccurredAt,
		Volume:      r.Volume.Value(),
		TotalRefund: r.TotalRefund.Amount(),
		Reason:      r.Reason,
	}
}
