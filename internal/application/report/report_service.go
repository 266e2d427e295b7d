package report

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fuelpos/backend/internal/domain/catalog"
	"github.com/fuelpos/backend/internal/domain/costing"
	"github.com/fuelpos/backend/internal/domain/finance"
	"github.com/fuelpos/backend/internal/domain/report"
	"github.com/fuelpos/backend/internal/domain/trade"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Cache stores serialized report payloads with a TTL. Reports are
// derived data, so a stale or missing cache entry only costs a rebuild.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
	Delete(ctx context.Context, key string)
}

// reportCacheTTL bounds how stale a cached report can be
const reportCacheTTL = 5 * time.Minute

// Service computes profit and summary reports from the sale and
// purchase history. Costs are historical: each sale line is priced at
// the most recent purchase on or before the sale, falling back to the
// catalog purchase price (flagged as estimated).
type Service struct {
	saleRepo     trade.SaleRepository
	purchaseRepo trade.PurchaseRepository
	expenseRepo  finance.ExpenseRepository
	productRepo  catalog.Repository
	cache        Cache
	logger       *zap.Logger
}

// NewService creates a new report service
func NewService(
	saleRepo trade.SaleRepository,
	purchaseRepo trade.PurchaseRepository,
	expenseRepo finance.ExpenseRepository,
	productRepo catalog.Repository,
	cache Cache,
	logger *zap.Logger,
) *Service {
	return &Service{
		saleRepo:     saleRepo,
		purchaseRepo: purchaseRepo,
		expenseRepo:  expenseRepo,
		productRepo:  productRepo,
		cache:        cache,
		logger:       logger,
	}
}

// costContext loads the full purchase history and catalog fallbacks.
// The index must cover all purchases, not just the report period: a
// sale in February is costed by a January purchase.
func (s *Service) costContext(ctx context.Context) (*costing.CostIndex, costing.CatalogCosts, error) {
	purchases, err := s.purchaseRepo.FindAll(ctx, trade.PeriodFilter{})
	if err != nil {
		return nil, nil, err
	}
	products, err := s.productRepo.FindAll(ctx, catalog.Filter{})
	if err != nil {
		return nil, nil, err
	}
	catalogCosts := make(costing.CatalogCosts, len(products))
	for _, p := range products {
		catalogCosts[p.ID] = p.PurchasePrice
	}
	return costing.NewCostIndex(purchases), catalogCosts, nil
}

// DailySummary computes one day's trading figures
func (s *Service) DailySummary(ctx context.Context, date time.Time) (*report.DailySummary, error) {
	key := fmt.Sprintf("report:daily:%s", date.Format("2006-01-02"))
	if data, ok := s.cache.Get(ctx, key); ok {
		var cached report.DailySummary
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
		s.cache.Delete(ctx, key)
	}

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1).Add(-time.Nanosecond)

	sales, err := s.saleRepo.FindAll(ctx, trade.PeriodFilter{From: dayStart, To: dayEnd})
	if err != nil {
		return nil, err
	}
	expenses, err := s.expenseRepo.FindAll(ctx, finance.PeriodFilter{From: dayStart, To: dayEnd})
	if err != nil {
		return nil, err
	}
	idx, catalogCosts, err := s.costContext(ctx)
	if err != nil {
		return nil, err
	}

	summary := &report.DailySummary{
		Date:      dayStart,
		Revenue:   decimal.Zero,
		COGS:      decimal.Zero,
		Expenses:  decimal.Zero,
		SaleCount: len(sales),
	}
	for _, sale := range sales {
		profit := costing.ComputeSaleProfit(sale, idx, catalogCosts)
		summary.Revenue = summary.Revenue.Add(profit.Revenue)
		summary.COGS = summary.COGS.Add(profit.Cost)
		if profit.Estimated {
			summary.Estimated = true
		}
	}
	for _, e := range expenses {
		summary.Expenses = summary.Expenses.Add(e.Amount.Amount())
	}
	summary.GrossProfit = summary.Revenue.Sub(summary.COGS)
	summary.GrossMargin = costing.Margin(summary.GrossProfit, summary.Revenue)
	summary.NetProfit = summary.GrossProfit.Sub(summary.Expenses)

	if data, err := json.Marshal(summary); err == nil {
		s.cache.Set(ctx, key, data, reportCacheTTL)
	}
	return summary, nil
}

// PeriodProfit computes gross profit over an arbitrary period
func (s *Service) PeriodProfit(ctx context.Context, from, to time.Time) (*report.PeriodProfit, error) {
	sales, err := s.saleRepo.FindAll(ctx, trade.PeriodFilter{From: from, To: to})
	if err != nil {
		return nil, err
	}
	idx, catalogCosts, err := s.costContext(ctx)
	if err != nil {
		return nil, err
	}

	result := &report.PeriodProfit{
		From:    from,
		To:      to,
		Revenue: decimal.Zero,
		COGS:    decimal.Zero,
	}
	for _, sale := range sales {
		profit := costing.ComputeSaleProfit(sale, idx, catalogCosts)
		result.Revenue = result.Revenue.Add(profit.Revenue)
		result.COGS = result.COGS.Add(profit.Cost)
		if profit.Estimated {
			result.Estimated = true
		}
	}
	result.GrossProfit = result.Revenue.Sub(result.COGS)
	result.GrossMargin = costing.Margin(result.GrossProfit, result.Revenue)
	return result, nil
}

// ProfitByProduct aggregates per-product profit over the period
func (s *Service) ProfitByProduct(ctx context.Context, from, to time.Time) ([]costing.ProfitByProduct, error) {
	sales, err := s.saleRepo.FindAll(ctx, trade.PeriodFilter{From: from, To: to})
	if err != nil {
		return nil, err
	}
	idx, catalogCosts, err := s.costContext(ctx)
	if err != nil {
		return nil, err
	}
	return costing.ComputeProfitByProduct(sales, idx, catalogCosts), nil
}

// SaleProfit prices one sale at historical cost
func (s *Service) SaleProfit(ctx context.Context, saleID uuid.UUID) (*costing.SaleProfit, error) {
	sale, err := s.saleRepo.FindByID(ctx, saleID)
	if err != nil {
		return nil, err
	}
	idx, catalogCosts, err := s.costContext(ctx)
	if err != nil {
		return nil, err
	}
	profit := costing.ComputeSaleProfit(sale, idx, catalogCosts)
	return &profit, nil
}
