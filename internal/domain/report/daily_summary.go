package report

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailySummary is a read model for one day's trading figures
type DailySummary struct {
	Date        time.Time       `json:"date"`
	Revenue     decimal.Decimal `json:"revenue"`      // All sales, walk-in included
	COGS        decimal.Decimal `json:"cogs"`         // Historical cost of goods sold
	GrossProfit decimal.Decimal `json:"gross_profit"` // Revenue - COGS
	GrossMargin decimal.Decimal `json:"gross_margin"` // Percent of revenue
	Expenses    decimal.Decimal `json:"expenses"`     // Operating expenses incl. salaries
	NetProfit   decimal.Decimal `json:"net_profit"`   // GrossProfit - Expenses
	SaleCount   int             `json:"sale_count"`
	Estimated   bool            `json:"estimated"` // COGS includes catalog-price fallbacks
}

// PeriodProfit is a read model for profit over an arbitrary period
type PeriodProfit struct {
	From        time.Time       `json:"from"`
	To          time.Time       `json:"to"`
	Revenue     decimal.Decimal `json:"revenue"`
	COGS        decimal.Decimal `json:"cogs"`
	GrossProfit decimal.Decimal `json:"gross_profit"`
	GrossMargin decimal.Decimal `json:"gross_margin"`
	Estimated   bool            `json:"estimated"`
}
