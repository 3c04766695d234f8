// Package api holds the HTTP contract described by api/openapi.yaml: request and
// response types, the ServerInterface handlers implement, and chi routing.
package api

import "time"

// Defines values for CallbackResponseStatus.
const (
	CallbackResponseStatusCreated   CallbackResponseStatus = "created"
	CallbackResponseStatusDuplicate CallbackResponseStatus = "duplicate"
	CallbackResponseStatusIgnored   CallbackResponseStatus = "ignored"
	CallbackResponseStatusRecorded  CallbackResponseStatus = "recorded"
)

// Defines values for HealthResponseCircuitBreakerState.
const (
	Closed   HealthResponseCircuitBreakerState = "closed"
	HalfOpen HealthResponseCircuitBreakerState = "half-open"
	Open     HealthResponseCircuitBreakerState = "open"
)

// Defines values for HealthResponseDatabaseStatus.
const (
	HealthResponseDatabaseStatusConnected    HealthResponseDatabaseStatus = "connected"
	HealthResponseDatabaseStatusDisconnected HealthResponseDatabaseStatus = "disconnected"
)

// Defines values for HealthResponseRedisStatus.
const (
	HealthResponseRedisStatusConnected    HealthResponseRedisStatus = "connected"
	HealthResponseRedisStatusDisabled     HealthResponseRedisStatus = "disabled"
	HealthResponseRedisStatusDisconnected HealthResponseRedisStatus = "disconnected"
)

// Defines values for HealthResponseStatus.
const (
	Degraded  HealthResponseStatus = "degraded"
	Healthy   HealthResponseStatus = "healthy"
	Unhealthy HealthResponseStatus = "unhealthy"
)

// CallRecord defines model for CallRecord.
type CallRecord struct {
	Id                 int64     `json:"id"`
	ReceiverFirstName  string    `json:"receiver_first_name"`
	ReceiverLastName   string    `json:"receiver_last_name"`
	Number             string    `json:"number"`
	Company            string    `json:"company"`
	Description        string    `json:"description"`
	PersonalNotes      string    `json:"personal_notes"`
	CallSids           []string  `json:"call_sids"`
	RecordingSids      []string  `json:"recording_sids"`
	RecordingUrls      []string  `json:"recording_urls"`
	RecordingDurations []string  `json:"recording_durations"`
	Statuses           []string  `json:"statuses"`
	Source             *string   `json:"source,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// CreateCallRecordRequest defines model for CreateCallRecordRequest.
type CreateCallRecordRequest struct {
	ReceiverFirstName string `json:"receiver_first_name"`
	ReceiverLastName  string `json:"receiver_last_name"`
	Number            string `json:"number"`
	Company           string `json:"company"`
	Description       string `json:"description"`
	PersonalNotes     string `json:"personal_notes"`
}

// UpdateCallRecordRequest defines model for UpdateCallRecordRequest.
type UpdateCallRecordRequest struct {
	ReceiverFirstName *string `json:"receiver_first_name,omitempty"`
	ReceiverLastName  *string `json:"receiver_last_name,omitempty"`
	Number            *string `json:"number,omitempty"`
	Company           *string `json:"company,omitempty"`
	Description       *string `json:"description,omitempty"`
	PersonalNotes     *string `json:"personal_notes,omitempty"`
	Status            *string `json:"status,omitempty"`
}

// SearchResponse defines model for SearchResponse.
type SearchResponse struct {
	Count   int          `json:"count"`
	Results []CallRecord `json:"results"`
}

// CallbackResponse defines model for CallbackResponse.
type CallbackResponse struct {
	Status   CallbackResponseStatus `json:"status"`
	Message  string                 `json:"message"`
	RecordId *int64                 `json:"record_id,omitempty"`
}

// CallbackResponseStatus defines model for CallbackResponse.Status.
type CallbackResponseStatus string

// ImportResponse defines model for ImportResponse.
type ImportResponse struct {
	Inserted int `json:"inserted"`
	Skipped  int `json:"skipped"`
}

// DeleteResponse defines model for DeleteResponse.
type DeleteResponse struct {
	Deleted int64 `json:"deleted"`
}

// ErrorResponse defines model for ErrorResponse.
type ErrorResponse struct {
	Error     string     `json:"error"`
	Message   string     `json:"message"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

// HealthResponse defines model for HealthResponse.
type HealthResponse struct {
	Status               HealthResponseStatus               `json:"status"`
	DatabaseStatus       *HealthResponseDatabaseStatus      `json:"database_status,omitempty"`
	RedisStatus          *HealthResponseRedisStatus         `json:"redis_status,omitempty"`
	CircuitBreakerState  *HealthResponseCircuitBreakerState `json:"circuit_breaker_state,omitempty"`
	CircuitBreakerStatus *string                            `json:"circuit_breaker_status,omitempty"`
	Timestamp            time.Time                          `json:"timestamp"`
}

// HealthResponseCircuitBreakerState defines model for HealthResponse.CircuitBreakerState.
type HealthResponseCircuitBreakerState string

// HealthResponseDatabaseStatus defines model for HealthResponse.DatabaseStatus.
type HealthResponseDatabaseStatus string

// HealthResponseRedisStatus defines model for HealthResponse.RedisStatus.
type HealthResponseRedisStatus string

// HealthResponseStatus defines model for HealthResponse.Status.
type HealthResponseStatus string

// SearchCallRecordsParams defines parameters for SearchCallRecords.
type SearchCallRecordsParams struct {
	// Name matches first name, last name or company, case-insensitively.
	Name *string `form:"name,omitempty" json:"name,omitempty"`

	// Status must appear in the record's status history.
	Status *string `form:"status,omitempty" json:"status,omitempty"`
}
