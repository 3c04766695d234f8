package service

import (
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/esha-aiml-pgagi/Twilio-Calling-Task/internal/config"
	"github.com/esha-aiml-pgagi/Twilio-Calling-Task/internal/metrics"
	"github.com/esha-aiml-pgagi/Twilio-Calling-Task/internal/repository"
)

type Service struct {
	Calls    CallService
	Callback CallbackService
	Import   ImportService
	Health   HealthService
}

// NewService wires the services. redisClient may be nil, which disables callback
// deduplication regardless of callback.dedupe_ttl.
func NewService(
	cfg *config.Config,
	repo repository.Repository,
	redisClient *redis.Client,
	m *metrics.Metrics,
	logger *zap.Logger,
) *Service {
	var (
		breaker *CircuitBreaker
		dedupe  Deduplicator
	)
	if redisClient != nil && cfg.Callback.DedupeTTL > 0 {
		breaker = NewCircuitBreaker("callback-dedupe", &cfg.Callback.CircuitBreaker, logger)
		dedupe = NewRedisDeduplicator(redisClient, time.Duration(cfg.Callback.DedupeTTL)*time.Second, breaker)
	}

	return &Service{
		Calls:    NewCallService(repo, m, logger),
		Callback: NewCallbackService(repo, dedupe, m, logger),
		Import:   NewImportService(&cfg.Import, repo, m, logger),
		Health:   NewHealthService(repo, redisClient, breaker),
	}
}
