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

type callbackService struct {
	repo    repository.Repository
	dedupe  Deduplicator
	metrics *metrics.Metrics
	logger  *zap.Logger
}

// NewCallbackService builds the callback receiver. dedupe may be nil, in which case
// every delivery is stored.
func NewCallbackService(repo repository.Repository, dedupe Deduplicator, m *metrics.Metrics, logger *zap.Logger) CallbackService {
	return &callbackService{
		repo:    repo,
		dedupe:  dedupe,
		metrics: m,
		logger:  logger,
	}
}

// RecordCallback appends ev to the history of its number, creating the record when
// the number is unknown. Only storage failures are returned as errors.
func (s *callbackService) RecordCallback(ctx context.Context, ev models.CallbackEvent) (*CallbackResult, error) {
	if ev.Number == "" {
		s.metrics.ObserveCallback(metrics.OutcomeIgnored)
		s.logger.Info("Callback without destination number ignored",
			zap.String("call_sid", ev.CallSid))
		return &CallbackResult{Outcome: CallbackIgnored}, nil
	}

	key := ev.DedupeKey()
	if key != "" && s.dedupe != nil {
		first, err := s.dedupe.MarkDelivered(ctx, key)
		switch {
		case err != nil:
			s.logger.Warn("Callback deduplication unavailable, processing delivery",
				zap.String("key", key),
				zap.Error(err))
			key = ""
		case !first:
			s.metrics.ObserveCallback(metrics.OutcomeDuplicate)
			s.logger.Info("Duplicate callback delivery skipped",
				zap.String("number", ev.Number),
				zap.String("key", key))
			return &CallbackResult{Outcome: CallbackDuplicate}, nil
		}
	}

	result, err := s.store(ctx, ev)
	if err != nil {
		if key != "" {
			if ferr := s.dedupe.Forget(ctx, key); ferr != nil {
				s.logger.Warn("Failed to release callback deduplication key",
					zap.String("key", key),
					zap.Error(ferr))
			}
		}
		return nil, err
	}

	if result.Outcome == CallbackCreated {
		s.metrics.ObserveCallback(metrics.OutcomeCreated)
		s.metrics.ObserveRecordCreated(metrics.OriginCallback)
		s.logger.Info("Call record auto-created from callback",
			zap.Int64("id", result.Record.ID),
			zap.String("number", ev.Number),
			zap.String("call_sid", ev.CallSid))
	} else {
		s.metrics.ObserveCallback(metrics.OutcomeAppended)
	}

	return result, nil
}

// store appends to an existing record or creates one. When a concurrent delivery
// creates the record first, the unique constraint rejects our insert and the
// append is retried against the winner's row.
func (s *callbackService) store(ctx context.Context, ev models.CallbackEvent) (*CallbackResult, error) {
	records := s.repo.CallRecord()

	rec, err := records.AppendCallback(ctx, ev)
	if err == nil {
		return &CallbackResult{Outcome: CallbackAppended, Record: rec}, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	rec, err = records.Create(ctx, ev.AutoCreatedRecord())
	if err == nil {
		return &CallbackResult{Outcome: CallbackCreated, Record: rec}, nil
	}
	if !errors.Is(err, repository.ErrDuplicateNumber) {
		return nil, err
	}

	s.logger.Debug("Lost auto-create race, appending instead",
		zap.String("number", ev.Number))

	rec, err = records.AppendCallback(ctx, ev)
	if err != nil {
		return nil, fmt.Errorf("failed to append after create race: %w", err)
	}
	return &CallbackResult{Outcome: CallbackAppended, Record: rec}, nil
}
