package service

import (
	"github.com/esha-aiml-pgagi/Twilio-Calling-Task/internal/api"
	"github.com/esha-aiml-pgagi/Twilio-Calling-Task/internal/models"
)

// CallbackOutcome says what a callback did to storage.
type CallbackOutcome string

const (
	CallbackAppended  CallbackOutcome = "appended"
	CallbackCreated   CallbackOutcome = "created"
	CallbackDuplicate CallbackOutcome = "duplicate"
	CallbackIgnored   CallbackOutcome = "ignored"
)

type CallbackResult struct {
	Outcome CallbackOutcome
	// Record is nil for ignored and duplicate deliveries.
	Record *models.CallRecord
}

type ImportResult struct {
	Inserted int
	Skipped  int
}

type HealthStatus struct {
	Status               api.HealthResponseStatus              `json:"status"`
	DatabaseStatus       api.HealthResponseDatabaseStatus      `json:"database_status"`
	RedisStatus          api.HealthResponseRedisStatus         `json:"redis_status"`
	CircuitBreakerStatus string                                `json:"circuit_breaker_status,omitempty"`
	CircuitBreakerState  api.HealthResponseCircuitBreakerState `json:"circuit_breaker_state,omitempty"`
}
