package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/esha-aiml-pgagi/Twilio-Calling-Task/internal/api"
	"github.com/esha-aiml-pgagi/Twilio-Calling-Task/internal/repository"
)

type healthService struct {
	repo        repository.Repository
	redisClient *redis.Client
	breaker     *CircuitBreaker
}

// NewHealthService reports on the database, Redis and the deduplication breaker.
// redisClient and breaker are nil when callback deduplication is disabled.
func NewHealthService(
	repo repository.Repository,
	redisClient *redis.Client,
	breaker *CircuitBreaker,
) HealthService {
	return &healthService{
		repo:        repo,
		redisClient: redisClient,
		breaker:     breaker,
	}
}

func (s *healthService) GetHealth(ctx context.Context) *HealthStatus {
	status := &HealthStatus{
		Status:         api.Healthy,
		DatabaseStatus: s.checkDatabaseHealth(ctx),
		RedisStatus:    s.checkRedisHealth(ctx),
	}

	if s.breaker != nil {
		status.CircuitBreakerState = s.breaker.GetState()
		requests, failures := s.breaker.GetCounts()
		if requests > 0 {
			failureRate := float64(failures) / float64(requests) * 100
			status.CircuitBreakerStatus = fmt.Sprintf("Requests: %d, Failures: %d (%.1f%%)", requests, failures, failureRate)
		} else {
			status.CircuitBreakerStatus = "No requests yet"
		}
	}

	// Callbacks still get stored without Redis, only without deduplication.
	switch {
	case status.DatabaseStatus != api.HealthResponseDatabaseStatusConnected:
		status.Status = api.Unhealthy
	case status.RedisStatus == api.HealthResponseRedisStatusDisconnected,
		status.CircuitBreakerState == api.Open:
		status.Status = api.Degraded
	}

	return status
}

func (s *healthService) checkDatabaseHealth(ctx context.Context) api.HealthResponseDatabaseStatus {
	if err := s.repo.Ping(ctx); err != nil {
		return api.HealthResponseDatabaseStatusDisconnected
	}
	return api.HealthResponseDatabaseStatusConnected
}

func (s *healthService) checkRedisHealth(ctx context.Context) api.HealthResponseRedisStatus {
	if s.redisClient == nil {
		return api.HealthResponseRedisStatusDisabled
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := s.redisClient.Ping(ctx).Err(); err != nil {
		return api.HealthResponseRedisStatusDisconnected
	}

	return api.HealthResponseRedisStatusConnected
}
