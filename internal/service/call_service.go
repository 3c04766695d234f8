package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/esha-aiml-pgagi/Twilio-Calling-Task/internal/metrics"
	"github.com/esha-aiml-pgagi/Twilio-Calling-Task/internal/models"
	"github.com/esha-aiml-pgagi/Twilio-Calling-Task/internal/repository"
)

type callService struct {
	repo    repository.Repository
	metrics *metrics.Metrics
	logger  *zap.Logger
}

func NewCallService(repo repository.Repository, m *metrics.Metrics, logger *zap.Logger) CallService {
	return &callService{
		repo:    repo,
		metrics: m,
		logger:  logger,
	}
}

// Create stores a new call target with an empty history.
func (s *callService) Create(ctx context.Context, n models.NewCallRecord) (*models.CallRecord, error) {
	exists, err := s.repo.CallRecord().ExistsByNumber(ctx, n.Number)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: number %s already exists", ErrConflict, n.Number)
	}

	// The unique constraint still decides when two creates race past the check above.
	rec, err := s.repo.CallRecord().Create(ctx, n.Record())
	if errors.Is(err, repository.ErrDuplicateNumber) {
		return nil, fmt.Errorf("%w: number %s already exists", ErrConflict, n.Number)
	}
	if err != nil {
		return nil, err
	}

	s.metrics.ObserveRecordCreated(metrics.OriginAPI)
	s.logger.Debug("Call record created",
		zap.Int64("id", rec.ID),
		zap.String("number", rec.Number))

	return rec, nil
}

func (s *callService) List(ctx context.Context) ([]*models.CallRecord, error) {
	return s.repo.CallRecord().List(ctx)
}

func (s *callService) Get(ctx context.Context, id int64) (*models.CallRecord, error) {
	rec, err := s.repo.CallRecord().GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, id)
	}
	return rec, nil
}

func (s *callService) Search(ctx context.Context, filter models.SearchFilter) ([]*models.CallRecord, error) {
	return s.repo.CallRecord().Search(ctx, filter)
}

// Update applies the provided slots. An empty update changes nothing and returns
// the record as stored.
func (s *callService) Update(ctx context.Context, id int64, upd models.CallRecordUpdate) (*models.CallRecord, error) {
	if upd.IsEmpty() {
		return s.Get(ctx, id)
	}

	rec, err := s.repo.CallRecord().Update(ctx, id, upd)
	if err != nil {
		return nil, notFound(err, id)
	}
	return rec, nil
}

func (s *callService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.CallRecord().Delete(ctx, id); err != nil {
		return notFound(err, id)
	}
	return nil
}

// notFound translates the repository's missing-row error and passes others through.
func notFound(err error, id int64) error {
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%w: call record %d", ErrNotFound, id)
	}
	return err
}
