package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/esha-aiml-pgagi/Twilio-Calling-Task/internal/models"
)

const callRecordColumns = `id, receiver_first_name, receiver_last_name, number, company, description,
	personal_notes, call_sids, recording_sids, recording_urls, recording_durations, statuses,
	source, created_at, updated_at`

const insertCallRecord = `
	INSERT INTO call_records (
		receiver_first_name, receiver_last_name, number, company, description, personal_notes,
		call_sids, recording_sids, recording_urls, recording_durations, statuses,
		source, created_at, updated_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $13)`

type callRecordRepository struct {
	db *sqlx.DB
}

func NewCallRecordRepository(db *sqlx.DB) CallRecordRepository {
	return &callRecordRepository{
		db: db,
	}
}

func insertArgs(rec *models.CallRecord, now time.Time) []interface{} {
	return []interface{}{
		rec.ReceiverFirstName,
		rec.ReceiverLastName,
		rec.Number,
		rec.Company,
		rec.Description,
		rec.PersonalNotes,
		nonNil(rec.CallSids),
		nonNil(rec.RecordingSids),
		nonNil(rec.RecordingUrls),
		nonNil(rec.RecordingDurations),
		nonNil(rec.Statuses),
		rec.Source,
		now,
	}
}

// nonNil keeps NOT NULL array columns from receiving NULL.
func nonNil(a pq.StringArray) pq.StringArray {
	if a == nil {
		return pq.StringArray{}
	}
	return a
}

// Create inserts a new call record.
func (r *callRecordRepository) Create(ctx context.Context, rec *models.CallRecord) (*models.CallRecord, error) {
	query := insertCallRecord + `
	RETURNING ` + callRecordColumns

	var created models.CallRecord
	err := r.db.QueryRowxContext(ctx, query, insertArgs(rec, time.Now().UTC())...).StructScan(&created)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateNumber
		}
		return nil, fmt.Errorf("failed to create call record: %w", err)
	}

	return &created, nil
}

// CreateIfAbsent inserts a call record unless one with the same number exists.
func (r *callRecordRepository) CreateIfAbsent(ctx context.Context, rec *models.CallRecord) (bool, error) {
	query := insertCallRecord + `
	ON CONFLICT (number) DO NOTHING
	RETURNING id`

	var id int64
	err := r.db.QueryRowxContext(ctx, query, insertArgs(rec, time.Now().UTC())...).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to insert call record: %w", err)
	}

	return true, nil
}

// List returns every call record, newest first.
func (r *callRecordRepository) List(ctx context.Context) ([]*models.CallRecord, error) {
	query := `SELECT ` + callRecordColumns + `
		FROM call_records
		ORDER BY created_at DESC, id DESC`

	records := []*models.CallRecord{}
	if err := r.db.SelectContext(ctx, &records, query); err != nil {
		return nil, fmt.Errorf("failed to list call records: %w", err)
	}

	return records, nil
}

// GetByID returns one call record.
func (r *callRecordRepository) GetByID(ctx context.Context, id int64) (*models.CallRecord, error) {
	query := `SELECT ` + callRecordColumns + `
		FROM call_records
		WHERE id = $1`

	var rec models.CallRecord
	err := r.db.GetContext(ctx, &rec, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get call record: %w", err)
	}

	return &rec, nil
}

// ExistsByNumber reports whether a record owns number.
func (r *callRecordRepository) ExistsByNumber(ctx context.Context, number string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM call_records WHERE number = $1)`

	if err := r.db.GetContext(ctx, &exists, query, number); err != nil {
		return false, fmt.Errorf("failed to check number: %w", err)
	}

	return exists, nil
}

// Search filters by name substring (first name, last name or company) and by a
// status present anywhere in the history. Both filters combine with AND.
func (r *callRecordRepository) Search(ctx context.Context, filter models.SearchFilter) ([]*models.CallRecord, error) {
	query := `SELECT ` + callRecordColumns + `
		FROM call_records
		WHERE ($1::text = ''
		       OR receiver_first_name ILIKE $2
		       OR receiver_last_name ILIKE $2
		       OR company ILIKE $2)
		  AND ($3::text = '' OR $3::text = ANY (statuses))
		ORDER BY created_at DESC, id DESC`

	records := []*models.CallRecord{}
	err := r.db.SelectContext(ctx, &records, query, filter.Name, containsPattern(filter.Name), filter.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to search call records: %w", err)
	}

	return records, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern turns s into an ILIKE pattern matching s literally anywhere.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

// Update overwrites the provided metadata slots and appends the provided status.
func (r *callRecordRepository) Update(ctx context.Context, id int64, upd models.CallRecordUpdate) (*models.CallRecord, error) {
	query := `
		UPDATE call_records
		SET receiver_first_name = COALESCE($2::text, receiver_first_name),
		    receiver_last_name  = COALESCE($3::text, receiver_last_name),
		    company             = COALESCE($4::text, company),
		    description         = COALESCE($5::text, description),
		    personal_notes      = COALESCE($6::text, personal_notes),
		    statuses            = CASE WHEN $7::text IS NULL THEN statuses
		                               ELSE array_append(statuses, $7::text) END,
		    updated_at          = $8
		WHERE id = $1
		RETURNING ` + callRecordColumns

	var rec models.CallRecord
	err := r.db.QueryRowxContext(ctx, query,
		id,
		upd.ReceiverFirstName,
		upd.ReceiverLastName,
		upd.Company,
		upd.Description,
		upd.PersonalNotes,
		upd.Status,
		time.Now().UTC(),
	).StructScan(&rec)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update call record: %w", err)
	}

	return &rec, nil
}

// AppendCallback grows all history arrays by one in a single statement so they stay
// index-aligned, removing every sentinel status first.
func (r *callRecordRepository) AppendCallback(ctx context.Context, ev models.CallbackEvent) (*models.CallRecord, error) {
	query := `
		UPDATE call_records
		SET call_sids           = array_append(call_sids, $2::text),
		    recording_sids      = array_append(recording_sids, $3::text),
		    recording_urls      = array_append(recording_urls, $4::text),
		    recording_durations = array_append(recording_durations, $5::text),
		    statuses            = array_append(array_remove(statuses, $7::text), $6::text),
		    updated_at          = $8
		WHERE number = $1
		RETURNING ` + callRecordColumns

	var rec models.CallRecord
	err := r.db.QueryRowxContext(ctx, query,
		ev.Number,
		ev.CallSid,
		ev.RecordingSid,
		ev.RecordingURL,
		ev.RecordingDuration,
		ev.Status,
		models.StatusNotCalled,
		time.Now().UTC(),
	).StructScan(&rec)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to append callback: %w", err)
	}

	return &rec, nil
}

// Delete removes one call record.
func (r *callRecordRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM call_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete call record: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

// DeleteBySource removes every record tagged with source.
func (r *callRecordRepository) DeleteBySource(ctx context.Context, source string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM call_records WHERE source = $1`, source)
	if err != nil {
		return 0, fmt.Errorf("failed to delete call records by source: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return affected, nil
}
