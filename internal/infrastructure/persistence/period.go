package persistence

import (
	"time"

	"gorm.io/gorm"
)

// applyPeriod bounds a query on occurred_at. Zero bounds are open.
func applyPeriod(query *gorm.DB, from, to time.Time) *gorm.DB {
	if !from.IsZero() {
		query = query.Where("occurred_at >= ?", from)
	}
	if !to.IsZero() {
		query = query.Where("occurred_at <= ?", to)
	}
	return query
}
