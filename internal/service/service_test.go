package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/esha-aiml-pgagi/Twilio-Calling-Task/internal/api"
	"github.com/esha-aiml-pgagi/Twilio-Calling-Task/internal/config"
	"github.com/esha-aiml-pgagi/Twilio-Calling-Task/internal/models"
	"github.com/esha-aiml-pgagi/Twilio-Calling-Task/internal/service"
)

func TestNewService(t *testing.T) {
	cfg := &config.Config{
		Callback: config.CallbackConfig{DedupeTTL: 60, CircuitBreaker: breakerConfig},
		Import:   *importConfig,
	}

	t.Run("without redis", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Ping(gomock.Any()).Return(nil)

		svc := service.NewService(cfg, f.repo, nil, f.metrics, zap.NewNop())
		require.NotNil(t, svc.Calls)
		require.NotNil(t, svc.Callback)
		require.NotNil(t, svc.Import)

		health := svc.Health.GetHealth(context.Background())
		assert.Equal(t, api.Healthy, health.Status)
		assert.Equal(t, api.HealthResponseRedisStatusDisabled, health.RedisStatus)
		assert.Empty(t, health.CircuitBreakerState)
	})

	t.Run("with redis", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Ping(gomock.Any()).Return(nil)

		svc := service.NewService(cfg, f.repo, unreachableRedis(t), f.metrics, zap.NewNop())

		health := svc.Health.GetHealth(context.Background())
		assert.Equal(t, api.Degraded, health.Status)
		assert.Equal(t, api.Closed, health.CircuitBreakerState)
	})
}

func TestNewService_ShippedConfigStoresEveryDelivery(t *testing.T) {
	cfg, err := config.LoadConfig("../../config.yaml")
	require.NoError(t, err)
	require.Zero(t, cfg.Callback.DedupeTTL)

	f := newFixture(t)
	f.repo.EXPECT().Ping(gomock.Any()).Return(nil)
	f.records.EXPECT().AppendCallback(gomock.Any(), gomock.Any()).
		Return(&models.CallRecord{ID: 1}, nil).
		Times(3)

	svc := service.NewService(cfg, f.repo, unreachableRedis(t), f.metrics, zap.NewNop())

	// A redelivered callback is still a callback.
	ev := event("+15551234", "CA1", "completed")
	for i := 0; i < 3; i++ {
		result, err := svc.Callback.RecordCallback(context.Background(), ev)
		require.NoError(t, err)
		assert.Equal(t, service.CallbackAppended, result.Outcome)
	}

	assert.Empty(t, svc.Health.GetHealth(context.Background()).CircuitBreakerState)
}
