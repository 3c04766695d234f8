package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/esha-aiml-pgagi/Twilio-Calling-Task/internal/infrastructure/migrate"
	"github.com/esha-aiml-pgagi/Twilio-Calling-Task/internal/models"
)

func setupTestDB(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	ctx := context.Background()

	pgContainer, err := tcpostgres.Run(ctx, "postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	runner := migrate.NewRunner(&migrate.Config{
		DatabaseURL:    dsn,
		MigrationsPath: "../../migrations",
	})
	require.NoError(t, runner.Run())

	db, err := sqlx.Connect("postgres", dsn)
	require.NoError(t, err)

	cleanup := func() {
		_ = db.Close()
		_ = pgContainer.Terminate(ctx)
	}

	return db, cleanup
}

func cleanupTestData(t *testing.T, db *sqlx.DB) {
	t.Helper()
	_, err := db.Exec("TRUNCATE TABLE call_records RESTART IDENTITY CASCADE")
	require.NoError(t, err)
}

func newRecord(number, first, last, company string) *models.CallRecord {
	return models.NewCallRecord{
		ReceiverFirstName: first,
		ReceiverLastName:  last,
		Number:            number,
		Company:           company,
		Description:       "test lead",
	}.Record()
}

func callback(number, callSid, status string) models.CallbackEvent {
	return models.CallbackEvent{
		Number:            number,
		CallSid:           callSid,
		RecordingSid:      "RE" + callSid,
		RecordingURL:      "https://api.twilio.com/recordings/RE" + callSid,
		RecordingDuration: "42",
		Status:            status,
	}
}

func ptr(s string) *string {
	return &s
}
