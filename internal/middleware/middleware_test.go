package middleware_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/time/rate"

	"github.com/esha-aiml-pgagi/Twilio-Calling-Task/internal/api"
	"github.com/esha-aiml-pgagi/Twilio-Calling-Task/internal/middleware"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestRequestID(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "generated when absent"},
		{name: "propagated when valid", incoming: "abc-123", keep: true},
		{name: "replaced when too long", incoming: strings.Repeat("a", 200)},
		{name: "replaced when not printable", incoming: "bad id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen string
			handler := middleware.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = middleware.GetRequestID(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/calls", nil)
			if tt.incoming != "" {
				req.Header.Set(middleware.RequestIDHeader, tt.incoming)
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			require.NotEmpty(t, seen)
			assert.Equal(t, seen, w.Header().Get(middleware.RequestIDHeader))
			if tt.keep {
				assert.Equal(t, tt.incoming, seen)
			} else {
				assert.NotEqual(t, tt.incoming, seen)
			}
		})
	}
}

func TestGetRequestID_Missing(t *testing.T) {
	assert.Empty(t, middleware.GetRequestID(context.Background()))
}

func TestRateLimiter(t *testing.T) {
	rl := middleware.NewRateLimiter(rate.Limit(1), 1, "/recordings/callback")
	defer rl.Stop()
	handler := rl.Middleware()(okHandler)

	serve := func(path, remote string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.RemoteAddr = remote
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusOK, serve("/calls", "127.0.0.1:1234").Code)

	// Same client on another port shares the limit.
	w := serve("/calls", "127.0.0.1:5678")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	var resp api.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, middleware.ErrorCodeRateLimitExceeded, resp.Error)

	assert.Equal(t, http.StatusOK, serve("/calls", "10.0.0.2:1234").Code)

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, serve("/recordings/callback", "127.0.0.1:1234").Code)
	}

	time.Sleep(time.Second)
	assert.Equal(t, http.StatusOK, serve("/calls", "127.0.0.1:1234").Code)
}

func TestCORS(t *testing.T) {
	handler := middleware.CORS(middleware.DefaultCORSConfig())(okHandler)

	req := httptest.NewRequest(http.MethodOptions, "/calls", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPut)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, http.MethodPut, w.Header().Get("Access-Control-Allow-Methods"))

	req = httptest.NewRequest(http.MethodGet, "/calls", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.True(t, strings.EqualFold(middleware.RequestIDHeader, w.Header().Get("Access-Control-Expose-Headers")))
}

func TestCORS_RestrictedOrigin(t *testing.T) {
	cfg := middleware.DefaultCORSConfig()
	cfg.AllowedOrigins = []string{"https://dialer.example"}
	handler := middleware.CORS(cfg)(okHandler)

	req := httptest.NewRequest(http.MethodGet, "/calls", nil)
	req.Header.Set("Origin", "https://evil.example")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRecovery(t *testing.T) {
	handler := middleware.Recovery(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("test panic")
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/calls", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var resp api.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, middleware.ErrorCodeInternal, resp.Error)
}

func TestTimeout(t *testing.T) {
	handler := middleware.Timeout(20 * time.Millisecond)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/calls", nil))

	assert.Equal(t, http.StatusGatewayTimeout, w.Code)
}

func TestTimeout_Disabled(t *testing.T) {
	var hasDeadline bool
	handler := middleware.Timeout(0)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasDeadline = r.Context().Deadline()
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/calls", nil))
	assert.False(t, hasDeadline)
}

func TestChain_LogsRequestID(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	chain, rl := middleware.Chain(&middleware.Config{
		Logger:         zap.New(core),
		RateLimit:      rate.Limit(100),
		RateLimitBurst: 100,
		RequestTimeout: time.Second,
	})
	defer rl.Stop()

	req := httptest.NewRequest(http.MethodGet, "/calls", nil)
	req.Header.Set(middleware.RequestIDHeader, "req-42")
	w := httptest.NewRecorder()
	chain(okHandler).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	entries := logs.FilterMessage("HTTP Request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "req-42", fields["request_id"])
	assert.Equal(t, int64(http.StatusOK), fields["status"])
}

func TestLogger_Fields(t *testing.T) {
	tests := []struct {
		name          string
		path          string
		token         string
		status        int
		expectedLevel zapcore.Level
		webhook       bool
	}{
		{name: "api request", path: "/calls", status: http.StatusOK, expectedLevel: zapcore.InfoLevel},
		{name: "client error", path: "/calls/9", status: http.StatusNotFound, expectedLevel: zapcore.WarnLevel},
		{name: "server error", path: "/calls", status: http.StatusInternalServerError, expectedLevel: zapcore.ErrorLevel},
		{
			name:          "provider delivery",
			path:          "/recordings/callback",
			token:         "tok-1",
			status:        http.StatusOK,
			expectedLevel: zapcore.InfoLevel,
			webhook:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zap.DebugLevel)
			handler := middleware.Logger(zap.New(core), "/recordings/callback")(
				http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(tt.status)
					_, _ = w.Write([]byte("body"))
				}))

			req := httptest.NewRequest(http.MethodPost, tt.path, nil)
			if tt.token != "" {
				req.Header.Set(middleware.IdempotencyTokenHeader, tt.token)
			}
			handler.ServeHTTP(httptest.NewRecorder(), req)

			entries := logs.All()
			require.Len(t, entries, 1)
			assert.Equal(t, tt.expectedLevel, entries[0].Level)

			fields := entries[0].ContextMap()
			assert.Equal(t, int64(tt.status), fields["status"])
			assert.Equal(t, int64(4), fields["bytes"])
			if tt.webhook {
				assert.Equal(t, true, fields["webhook"])
				assert.Equal(t, tt.token, fields["idempotency_token"])
			} else {
				assert.NotContains(t, fields, "webhook")
			}
		})
	}
}
