package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/esha-aiml-pgagi/Twilio-Calling-Task/internal/api"
)

// recordingServer remembers which operation was routed and with what arguments.
type recordingServer struct {
	called string
	id     int64
	params api.SearchCallRecordsParams
}

func (s *recordingServer) ListCallRecords(w http.ResponseWriter, r *http.Request) {
	s.called = "ListCallRecords"
}

func (s *recordingServer) CreateCallRecord(w http.ResponseWriter, r *http.Request) {
	s.called = "CreateCallRecord"
}

func (s *recordingServer) DeleteExcelImports(w http.ResponseWriter, r *http.Request) {
	s.called = "DeleteExcelImports"
}

func (s *recordingServer) SearchCallRecords(w http.ResponseWriter, r *http.Request, params api.SearchCallRecordsParams) {
	s.called = "SearchCallRecords"
	s.params = params
}

func (s *recordingServer) UploadExcel(w http.ResponseWriter, r *http.Request) {
	s.called = "UploadExcel"
}

func (s *recordingServer) DeleteCallRecord(w http.ResponseWriter, r *http.Request, id int64) {
	s.called = "DeleteCallRecord"
	s.id = id
}

func (s *recordingServer) GetCallRecord(w http.ResponseWriter, r *http.Request, id int64) {
	s.called = "GetCallRecord"
	s.id = id
}

func (s *recordingServer) UpdateCallRecord(w http.ResponseWriter, r *http.Request, id int64) {
	s.called = "UpdateCallRecord"
	s.id = id
}

func (s *recordingServer) HealthCheck(w http.ResponseWriter, r *http.Request) {
	s.called = "HealthCheck"
}

func (s *recordingServer) RecordingCallback(w http.ResponseWriter, r *http.Request) {
	s.called = "RecordingCallback"
}

func TestHandler_Routing(t *testing.T) {
	tests := []struct {
		method   string
		path     string
		expected string
		id       int64
	}{
		{http.MethodGet, "/calls", "ListCallRecords", 0},
		{http.MethodPost, "/calls", "CreateCallRecord", 0},
		{http.MethodGet, "/calls/search", "SearchCallRecords", 0},
		{http.MethodPost, "/calls/upload_excel", "UploadExcel", 0},
		{http.MethodDelete, "/calls/delete_excel", "DeleteExcelImports", 0},
		{http.MethodGet, "/calls/42", "GetCallRecord", 42},
		{http.MethodPut, "/calls/7", "UpdateCallRecord", 7},
		{http.MethodDelete, "/calls/9", "DeleteCallRecord", 9},
		{http.MethodGet, "/health", "HealthCheck", 0},
		{http.MethodPost, "/recordings/callback", "RecordingCallback", 0},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			srv := &recordingServer{}
			w := httptest.NewRecorder()

			api.Handler(srv).ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.expected, srv.called)
			assert.Equal(t, tt.id, srv.id)
		})
	}
}

func TestHandler_SearchParams(t *testing.T) {
	srv := &recordingServer{}
	w := httptest.NewRecorder()

	api.Handler(srv).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/calls/search?name=acme&status=completed", nil))

	require.Equal(t, "SearchCallRecords", srv.called)
	require.NotNil(t, srv.params.Name)
	require.NotNil(t, srv.params.Status)
	assert.Equal(t, "acme", *srv.params.Name)
	assert.Equal(t, "completed", *srv.params.Status)
}

func TestHandler_SearchParamsAbsent(t *testing.T) {
	srv := &recordingServer{}
	w := httptest.NewRecorder()

	api.Handler(srv).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/calls/search", nil))

	assert.Nil(t, srv.params.Name)
	assert.Nil(t, srv.params.Status)
}

func TestHandler_MalformedID(t *testing.T) {
	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		t.Run(method, func(t *testing.T) {
			srv := &recordingServer{}
			w := httptest.NewRecorder()

			api.Handler(srv).ServeHTTP(w, httptest.NewRequest(method, "/calls/abc", nil))

			assert.Empty(t, srv.called)
			assert.Equal(t, http.StatusBadRequest, w.Code)

			var resp api.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, api.ErrorCodeInvalidParameter, resp.Error)
			assert.Contains(t, resp.Message, "id")
			assert.NotNil(t, resp.Timestamp)
		})
	}
}

func TestHandlerWithOptions_CustomErrorHandler(t *testing.T) {
	srv := &recordingServer{}
	var captured error
	h := api.HandlerWithOptions(srv, api.ChiServerOptions{
		ErrorHandlerFunc: func(w http.ResponseWriter, r *http.Request, err error) {
			captured = err
			w.WriteHeader(http.StatusTeapot)
		},
	})

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/calls/1.5", nil))

	assert.Equal(t, http.StatusTeapot, w.Code)
	var paramErr *api.InvalidParamFormatError
	require.ErrorAs(t, captured, &paramErr)
	assert.Equal(t, "id", paramErr.ParamName)
}
