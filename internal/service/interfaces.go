package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_service.go -package=mocks

import (
	"context"
	"io"

	"github.com/esha-aiml-pgagi/Twilio-Calling-Task/internal/models"
)

type CallService interface {
	Create(ctx context.Context, rec models.NewCallRecord) (*models.CallRecord, error)
	List(ctx context.Context) ([]*models.CallRecord, error)
	Get(ctx context.Context, id int64) (*models.CallRecord, error)
	Search(ctx context.Context, filter models.SearchFilter) ([]*models.CallRecord, error)
	Update(ctx context.Context, id int64, upd models.CallRecordUpdate) (*models.CallRecord, error)
	Delete(ctx context.Context, id int64) error
}

type CallbackService interface {
	RecordCallback(ctx context.Context, ev models.CallbackEvent) (*CallbackResult, error)
}

type ImportService interface {
	Import(ctx context.Context, filename string, r io.Reader) (*ImportResult, error)
	DeleteImported(ctx context.Context) (int64, error)
}

type HealthService interface {
	GetHealth(ctx context.Context) *HealthStatus
}

// Deduplicator remembers callback deliveries so provider retries are not stored twice.
type Deduplicator interface {
	// MarkDelivered records key and reports whether this is its first delivery.
	MarkDelivered(ctx context.Context, key string) (bool, error)
	// Forget drops key so a later redelivery is processed again.
	Forget(ctx context.Context, key string) error
}
