package middlewares

import (
	"healthinfo-service/internal/app/config"
	"healthinfo-service/internal/app/services/shared/metrics"
	"healthinfo-service/internal/app/services/shared/redis"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log             *zap.Logger
	RedisRepository redis.RedisRepository
	InternalConfig  *config.InternalConfig
	Metrics         *metrics.Metrics
}

func NewMiddlewares(
	logger *zap.Logger,
	redisRepository redis.RedisRepository,
	internalConfig *config.InternalConfig,
	appMetrics *metrics.Metrics,
) *Middlewares {
	return &Middlewares{
		Log:             logger,
		RedisRepository: redisRepository,
		InternalConfig:  internalConfig,
		Metrics:         appMetrics,
	}
}
