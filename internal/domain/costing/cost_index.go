package costing

import (
	"sort"
	"time"

	"github.com/fuelpos/backend/internal/domain/trade"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// costPoint is one known unit cost for a product at a point in time
type costPoint struct {
	at       time.Time
	unitCost decimal.Decimal
}

// CostIndex answers "what did this product cost at time T" from the
// purchase history. It is built once per snapshot and queried with
// binary search, replacing a rescan of all purchases per sale line.
type CostIndex struct {
	points map[uuid.UUID][]costPoint
}

// NewCostIndex flattens all purchase line items into per-product cost
// timelines sorted by purchase time.
func NewCostIndex(purchases []*trade.Purchase) *CostIndex {
	points := make(map[uuid.UUID][]costPoint)
	for _, p := range purchases {
		for _, item := range p.Items {
			points[item.ProductID] = append(points[item.ProductID], costPoint{
				at:       p.OccurredAt,
				unitCost: item.CostPerUnit,
			})
		}
	}
	for id := range points {
		pts := points[id]
		sort.SliceStable(pts, func(i, j int) bool { return pts[i].at.Before(pts[j].at) })
	}
	return &CostIndex{points: points}
}

// UnitCostAt returns the unit cost from the most recent purchase of the
// product at or before ts. ok is false when no purchase precedes ts.
func (idx *CostIndex) UnitCostAt(productID uuid.UUID, ts time.Time) (decimal.Decimal, bool) {
	pts := idx.points[productID]
	// First point strictly after ts; the eligible point is the one before it.
	i := sort.Search(len(pts), func(i int) bool { return pts[i].at.After(ts) })
	if i == 0 {
		return decimal.Zero, false
	}
	return pts[i-1].unitCost, true
}

// CostOfGoods is the cost assigned to a sale line item. Estimated is
// true when no purchase preceded the sale and the current catalog price
// was used instead; correctness-sensitive reports should surface it.
type CostOfGoods struct {
	UnitCost  decimal.Decimal `json:"unit_cost"`
	Cost      decimal.Decimal `json:"cost"`
	Estimated bool            `json:"estimated"`
}

// CostOfGoods prices a sale line item at the last known purchase cost
// on or before the sale time, falling back to the catalog purchase
// price when the product has no earlier purchase.
func (idx *CostIndex) CostOfGoods(item trade.SaleItem, saleAt time.Time, catalogUnitCost decimal.Decimal) CostOfGoods {
	unitCost, ok := idx.UnitCostAt(item.ProductID, saleAt)
	if !ok {
		return CostOfGoods{
			UnitCost:  catalogUnitCost,
			Cost:      item.Quantity.Mul(catalogUnitCost),
			Estimated: true,
		}
	}
	return CostOfGoods{
		UnitCost: unitCost,
		Cost:     item.Quantity.Mul(unitCost),
	}
}
