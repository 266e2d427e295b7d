package costing

import (
	"github.com/fuelpos/backend/internal/domain/trade"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// CatalogCosts maps product ids to their current catalog purchase
// price, the fallback when no purchase history exists.
type CatalogCosts map[uuid.UUID]decimal.Decimal

// SaleProfit is the profit breakdown of one sale
type SaleProfit struct {
	SaleID    uuid.UUID       `json:"sale_id"`
	Revenue   decimal.Decimal `json:"revenue"`
	Cost      decimal.Decimal `json:"cost"`
	Profit    decimal.Decimal `json:"profit"`
	Estimated bool            `json:"estimated"` // Any line priced from catalog fallback
}

// ComputeSaleProfit prices every line of a sale at historical cost and
// sums the margins. Estimated is sticky: one estimated line marks the
// whole sale.
func ComputeSaleProfit(sale *trade.Sale, idx *CostIndex, catalog CatalogCosts) SaleProfit {
	result := SaleProfit{
		SaleID:  sale.ID,
		Revenue: decimal.Zero,
		Cost:    decimal.Zero,
	}
	for _, item := range sale.Items {
		cog := idx.CostOfGoods(item, sale.OccurredAt, catalog[item.ProductID])
		result.Revenue = result.Revenue.Add(item.TotalAmount)
		result.Cost = result.Cost.Add(cog.Cost)
		if cog.Estimated {
			result.Estimated = true
		}
	}
	result.Profit = result.Revenue.Sub(result.Cost)
	return result
}

// ProfitByProduct is the per-product profit aggregate over a period
type ProfitByProduct struct {
	ProductID uuid.UUID       `json:"product_id"`
	Revenue   decimal.Decimal `json:"revenue"`
	Cost      decimal.Decimal `json:"cost"`
	Profit    decimal.Decimal `json:"profit"`
	Margin    decimal.Decimal `json:"margin"` // Percent of revenue
	Estimated bool            `json:"estimated"`
}

// ComputeProfitByProduct aggregates line-level profit per product
// across the given sales.
func ComputeProfitByProduct(sales []*trade.Sale, idx *CostIndex, catalog CatalogCosts) []ProfitByProduct {
	byProduct := make(map[uuid.UUID]*ProfitByProduct)
	order := make([]uuid.UUID, 0)

	for _, sale := range sales {
		for _, item := range sale.Items {
			agg, ok := byProduct[item.ProductID]
			if !ok {
				agg = &ProfitByProduct{
					ProductID: item.ProductID,
					Revenue:   decimal.Zero,
					Cost:      decimal.Zero,
				}
				byProduct[item.ProductID] = agg
				order = append(order, item.ProductID)
			}
			cog := idx.CostOfGoods(item, sale.OccurredAt, catalog[item.ProductID])
			agg.Revenue = agg.Revenue.Add(item.TotalAmount)
			agg.Cost = agg.Cost.Add(cog.Cost)
			if cog.Estimated {
				agg.Estimated = true
			}
		}
	}

	results := make([]ProfitByProduct, 0, len(order))
	for _, id := range order {
		agg := byProduct[id]
		agg.Profit = agg.Revenue.Sub(agg.Cost)
		agg.Margin = Margin(agg.Profit, agg.Revenue)
		results = append(results, *agg)
	}
	return results
}

// Margin returns profit as a percentage of revenue, and 0 (not NaN or
// infinity) when revenue is zero.
func Margin(profit, revenue decimal.Decimal) decimal.Decimal {
	if revenue.IsZero() {
		return decimal.Zero
	}
	return profit.Div(revenue).Mul(hundred)
}
