package service_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/mock/gomock"

	"github.com/esha-aiml-pgagi/Twilio-Calling-Task/internal/metrics"
	"github.com/esha-aiml-pgagi/Twilio-Calling-Task/internal/repository/mocks"
)

type fixture struct {
	repo    *mocks.MockRepository
	records *mocks.MockCallRecordRepository
	metrics *metrics.Metrics
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockRepository(ctrl)
	records := mocks.NewMockCallRecordRepository(ctrl)
	repo.EXPECT().CallRecord().Return(records).AnyTimes()

	return &fixture{
		repo:    repo,
		records: records,
		metrics: metrics.New(prometheus.NewRegistry()),
	}
}

func ptr(s string) *string {
	return &s
}
