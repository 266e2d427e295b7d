package cache

import (
	"github.com/fuelpos/backend/internal/application/report"
	"github.com/fuelpos/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// NewReportCache creates a Redis-backed report cache, falling back to
// an in-memory cache when Redis is unreachable. The fallback keeps a
// single-box station install working without a Redis deployment.
func NewReportCache(cfg config.RedisConfig, logger *zap.Logger) report.Cache {
	redisCache, err := NewRedisReportCache(cfg, logger)
	if err != nil {
		logger.Warn("Redis unavailable, using in-memory report cache", zap.Error(err))
		return NewInMemoryReportCache()
	}
	logger.Info("Report cache backed by Redis", zap.String("addr", cfg.Addr()))
	return redisCache
}
