package service

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/esha-aiml-pgagi/Twilio-Calling-Task/internal/config"
	"github.com/esha-aiml-pgagi/Twilio-Calling-Task/internal/metrics"
	"github.com/esha-aiml-pgagi/Twilio-Calling-Task/internal/repository"
	"github.com/esha-aiml-pgagi/Twilio-Calling-Task/internal/spreadsheet"
)

type importService struct {
	repo      repository.Repository
	sourceTag string
	metrics   *metrics.Metrics
	logger    *zap.Logger
}

func NewImportService(cfg *config.ImportConfig, repo repository.Repository, m *metrics.Metrics, logger *zap.Logger) ImportService {
	return &importService{
		repo:      repo,
		sourceTag: cfg.SourceTag,
		metrics:   m,
		logger:    logger,
	}
}

// Import inserts every row of the workbook whose number is not stored yet. The
// sheet is validated in full before the first insert. Rows inserted before a
// storage failure stay inserted.
func (s *importService) Import(ctx context.Context, filename string, r io.Reader) (*ImportResult, error) {
	if err := spreadsheet.CheckFilename(filename); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadRequest, err)
	}

	rows, err := spreadsheet.ReadRows(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadRequest, err)
	}

	result := &ImportResult{}
	defer func() {
		s.metrics.ObserveImportRows(result.Inserted, result.Skipped)
	}()

	for _, row := range rows {
		created, err := s.repo.CallRecord().CreateIfAbsent(ctx, row.NewCallRecord(s.sourceTag).Record())
		if err != nil {
			s.logger.Error("Spreadsheet import aborted",
				zap.String("filename", filename),
				zap.Int("line", row.Line),
				zap.Int("inserted", result.Inserted),
				zap.Error(err))
			return nil, fmt.Errorf("failed to import line %d: %w", row.Line, err)
		}

		if created {
			result.Inserted++
			s.metrics.ObserveRecordCreated(metrics.OriginImport)
		} else {
			result.Skipped++
		}
	}

	s.logger.Info("Spreadsheet imported",
		zap.String("filename", filename),
		zap.Int("inserted", result.Inserted),
		zap.Int("skipped", result.Skipped))

	return result, nil
}

// DeleteImported removes every record carrying the import source tag.
func (s *importService) DeleteImported(ctx context.Context) (int64, error) {
	deleted, err := s.repo.CallRecord().DeleteBySource(ctx, s.sourceTag)
	if err != nil {
		return 0, err
	}

	s.logger.Info("Imported call records deleted",
		zap.String("source", s.sourceTag),
		zap.Int64("deleted", deleted))

	return deleted, nil
}
