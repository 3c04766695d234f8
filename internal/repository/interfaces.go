package repository

import (
	"context"

	"github.com/esha-aiml-pgagi/Twilio-Calling-Task/internal/models"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_repository.go -package=mocks

// Repository interface defines all repository operations.
type Repository interface {
	// Ping checks database connectivity
	Ping(ctx context.Context) error

	// CallRecord returns call record repository
	CallRecord() CallRecordRepository
}

// CallRecordRepository interface defines call record operations.
type CallRecordRepository interface {
	// Create inserts rec and returns the stored row. ErrDuplicateNumber when the number exists.
	Create(ctx context.Context, rec *models.CallRecord) (*models.CallRecord, error)
	// CreateIfAbsent inserts rec unless its number exists; created is false when skipped.
	CreateIfAbsent(ctx context.Context, rec *models.CallRecord) (created bool, err error)
	List(ctx context.Context) ([]*models.CallRecord, error)
	GetByID(ctx context.Context, id int64) (*models.CallRecord, error)
	ExistsByNumber(ctx context.Context, number string) (bool, error)
	Search(ctx context.Context, filter models.SearchFilter) ([]*models.CallRecord, error)
	// Update writes the non-nil slots of upd and appends upd.Status to the status history.
	Update(ctx context.Context, id int64, upd models.CallRecordUpdate) (*models.CallRecord, error)
	// AppendCallback appends ev to the history of the record owning ev.Number,
	// dropping every sentinel status. ErrNotFound when no record owns the number.
	AppendCallback(ctx context.Context, ev models.CallbackEvent) (*models.CallRecord, error)
	Delete(ctx context.Context, id int64) error
	DeleteBySource(ctx context.Context, source string) (int64, error)
}
