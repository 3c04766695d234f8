package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/esha-aiml-pgagi/Twilio-Calling-Task/internal/api"
	"github.com/esha-aiml-pgagi/Twilio-Calling-Task/internal/handler"
	"github.com/esha-aiml-pgagi/Twilio-Calling-Task/internal/metrics"
	"github.com/esha-aiml-pgagi/Twilio-Calling-Task/internal/service"
	"github.com/esha-aiml-pgagi/Twilio-Calling-Task/internal/service/mocks"
)

func TestSetupRouter(t *testing.T) {
	ctrl := gomock.NewController(t)
	health := mocks.NewMockHealthService(ctrl)
	health.EXPECT().GetHealth(gomock.Any()).Return(&service.HealthStatus{
		Status:         api.Healthy,
		DatabaseStatus: api.HealthResponseDatabaseStatusConnected,
		RedisStatus:    api.HealthResponseRedisStatusDisabled,
	})

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	m.ObserveCallback(metrics.OutcomeAppended)

	h := handler.NewHandler(&service.Service{Health: health}, 1<<20, zap.NewNop())
	router := setupRouter(h, reg)

	t.Run("api routes", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("metrics", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "callbacks_total")
	})

	t.Run("unknown route", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
