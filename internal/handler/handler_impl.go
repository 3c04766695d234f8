// Package handler provides HTTP request handlers for the application.
package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/esha-aiml-pgagi/Twilio-Calling-Task/internal/api"
	"github.com/esha-aiml-pgagi/Twilio-Calling-Task/internal/middleware"
	"github.com/esha-aiml-pgagi/Twilio-Calling-Task/internal/models"
	"github.com/esha-aiml-pgagi/Twilio-Calling-Task/internal/service"
)

const (
	errorCodeBadRequest      = "BAD_REQUEST"
	errorCodeConflict        = "CONFLICT"
	errorCodeNotFound        = "NOT_FOUND"
	errorCodePayloadTooLarge = "PAYLOAD_TOO_LARGE"
)

const (
	errorMessageInvalidBody     = "Invalid request body"
	errorMessageNumberRequired  = "number is required"
	errorMessageNumberImmutable = "number cannot be changed"
	errorMessageFileRequired    = "file is required"
	errorMessageFileTooLarge    = "file exceeds the upload limit"
	errorMessageInvalidForm     = "Invalid form body"
)

const (
	callbackMessageRecorded  = "Recording data saved successfully"
	callbackMessageCreated   = "Recording data saved to a new call record"
	callbackMessageDuplicate = "Duplicate delivery ignored"
	callbackMessageIgnored   = "No destination number, callback ignored"
)

// Callback form fields sent by the telephony provider.
const (
	callbackParamNumber   = "number"
	callbackFieldTo       = "To"
	callbackFieldCalled   = "Called"
	callbackFieldCallSid  = "CallSid"
	callbackFieldRecSid   = "RecordingSid"
	callbackFieldRecURL   = "RecordingUrl"
	callbackFieldDuration = "RecordingDuration"
	callbackFieldStatus   = "RecordingStatus"
)

const uploadFormField = "file"

type Handler struct {
	service        *service.Service
	maxUploadBytes int64
	logger         *zap.Logger
}

// NewHandler creates a new handler instance that implements api.ServerInterface.
// Spreadsheet uploads larger than maxUploadBytes are rejected.
func NewHandler(service *service.Service, maxUploadBytes int64, logger *zap.Logger) api.ServerInterface {
	return &Handler{
		service:        service,
		maxUploadBytes: maxUploadBytes,
		logger:         logger,
	}
}

// ListCallRecords implements api.ServerInterface.
func (h *Handler) ListCallRecords(w http.ResponseWriter, r *http.Request) {
	records, err := h.service.Calls.List(r.Context())
	if err != nil {
		h.handleError(w, r, err, "Failed to list call records")
		return
	}

	render.JSON(w, r, toAPIRecords(records))
}

// CreateCallRecord implements api.ServerInterface.
func (h *Handler) CreateCallRecord(w http.ResponseWriter, r *http.Request) {
	var req api.CreateCallRecordRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		h.sendError(w, r, http.StatusBadRequest, errorCodeBadRequest, errorMessageInvalidBody)
		return
	}

	number := strings.TrimSpace(req.Number)
	if number == "" {
		h.sendError(w, r, http.StatusBadRequest, errorCodeBadRequest, errorMessageNumberRequired)
		return
	}

	rec, err := h.service.Calls.Create(r.Context(), models.NewCallRecord{
		ReceiverFirstName: req.ReceiverFirstName,
		ReceiverLastName:  req.ReceiverLastName,
		Number:            number,
		Company:           req.Company,
		Description:       req.Description,
		PersonalNotes:     req.PersonalNotes,
	})
	if err != nil {
		h.handleError(w, r, err, "Failed to create call record")
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, toAPIRecord(rec))
}

// SearchCallRecords implements api.ServerInterface.
func (h *Handler) SearchCallRecords(w http.ResponseWriter, r *http.Request, params api.SearchCallRecordsParams) {
	records, err := h.service.Calls.Search(r.Context(), toSearchFilter(params))
	if err != nil {
		h.handleError(w, r, err, "Failed to search call records")
		return
	}

	render.JSON(w, r, api.SearchResponse{
		Count:   len(records),
		Results: toAPIRecords(records),
	})
}

// GetCallRecord implements api.ServerInterface.
func (h *Handler) GetCallRecord(w http.ResponseWriter, r *http.Request, id int64) {
	rec, err := h.service.Calls.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err, "Failed to get call record")
		return
	}

	render.JSON(w, r, toAPIRecord(rec))
}

// UpdateCallRecord implements api.ServerInterface.
func (h *Handler) UpdateCallRecord(w http.ResponseWriter, r *http.Request, id int64) {
	var req api.UpdateCallRecordRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		h.sendError(w, r, http.StatusBadRequest, errorCodeBadRequest, errorMessageInvalidBody)
		return
	}

	// Callbacks are matched by number, so changing it would orphan them.
	if req.Number != nil {
		h.sendError(w, r, http.StatusBadRequest, errorCodeBadRequest, errorMessageNumberImmutable)
		return
	}

	rec, err := h.service.Calls.Update(r.Context(), id, toUpdate(req))
	if err != nil {
		h.handleError(w, r, err, "Failed to update call record")
		return
	}

	render.JSON(w, r, toAPIRecord(rec))
}

// DeleteCallRecord implements api.ServerInterface.
func (h *Handler) DeleteCallRecord(w http.ResponseWriter, r *http.Request, id int64) {
	if err := h.service.Calls.Delete(r.Context(), id); err != nil {
		h.handleError(w, r, err, "Failed to delete call record")
		return
	}

	render.JSON(w, r, api.DeleteResponse{Deleted: 1})
}

// UploadExcel implements api.ServerInterface.
func (h *Handler) UploadExcel(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)

	file, header, err := r.FormFile(uploadFormField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.sendError(w, r, http.StatusRequestEntityTooLarge, errorCodePayloadTooLarge, errorMessageFileTooLarge)
			return
		}
		h.sendError(w, r, http.StatusBadRequest, errorCodeBadRequest, errorMessageFileRequired)
		return
	}
	defer func() {
		_ = file.Close()
	}()

	result, err := h.service.Import.Import(r.Context(), header.Filename, file)
	if err != nil {
		h.handleError(w, r, err, "Failed to import spreadsheet")
		return
	}

	render.JSON(w, r, api.ImportResponse{
		Inserted: result.Inserted,
		Skipped:  result.Skipped,
	})
}

// DeleteExcelImports implements api.ServerInterface.
func (h *Handler) DeleteExcelImports(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.service.Import.DeleteImported(r.Context())
	if err != nil {
		h.handleError(w, r, err, "Failed to delete imported call records")
		return
	}

	render.JSON(w, r, api.DeleteResponse{Deleted: deleted})
}

// RecordingCallback implements api.ServerInterface.
func (h *Handler) RecordingCallback(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.sendError(w, r, http.StatusBadRequest, errorCodeBadRequest, errorMessageInvalidForm)
		return
	}

	ev := models.CallbackEvent{
		Number:            callbackNumber(r),
		CallSid:           r.PostForm.Get(callbackFieldCallSid),
		RecordingSid:      r.PostForm.Get(callbackFieldRecSid),
		RecordingURL:      r.PostForm.Get(callbackFieldRecURL),
		RecordingDuration: r.PostForm.Get(callbackFieldDuration),
		Status:            r.PostForm.Get(callbackFieldStatus),
	}

	result, err := h.service.Callback.RecordCallback(r.Context(), ev)
	if err != nil {
		h.handleError(w, r, err, "Failed to record callback")
		return
	}

	response := api.CallbackResponse{}
	switch result.Outcome {
	case service.CallbackCreated:
		response.Status = api.CallbackResponseStatusCreated
		response.Message = callbackMessageCreated
	case service.CallbackDuplicate:
		response.Status = api.CallbackResponseStatusDuplicate
		response.Message = callbackMessageDuplicate
	case service.CallbackIgnored:
		response.Status = api.CallbackResponseStatusIgnored
		response.Message = callbackMessageIgnored
	default:
		response.Status = api.CallbackResponseStatusRecorded
		response.Message = callbackMessageRecorded
	}
	if result.Record != nil {
		id := result.Record.ID
		response.RecordId = &id
	}

	render.JSON(w, r, response)
}

// callbackNumber resolves the destination: explicit query parameter, then To, then Called.
func callbackNumber(r *http.Request) string {
	candidates := []string{
		r.URL.Query().Get(callbackParamNumber),
		r.PostForm.Get(callbackFieldTo),
		r.PostForm.Get(callbackFieldCalled),
	}
	for _, c := range candidates {
		if n := strings.TrimSpace(c); n != "" {
			return n
		}
	}
	return ""
}

// HealthCheck implements api.ServerInterface.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	health := h.service.Health.GetHealth(r.Context())

	response := api.HealthResponse{
		Status:    health.Status,
		Timestamp: time.Now(),
	}

	if health.DatabaseStatus != "" {
		status := health.DatabaseStatus
		response.DatabaseStatus = &status
	}

	if health.RedisStatus != "" {
		status := health.RedisStatus
		response.RedisStatus = &status
	}

	if health.CircuitBreakerStatus != "" {
		response.CircuitBreakerStatus = &health.CircuitBreakerStatus
	}

	if health.CircuitBreakerState != "" {
		state := health.CircuitBreakerState
		response.CircuitBreakerState = &state
	}

	// Degraded still answers 200 so the service stays in rotation.
	if health.Status == api.Unhealthy {
		render.Status(r, http.StatusServiceUnavailable)
	}

	render.JSON(w, r, response)
}

// handleError maps service errors to responses. Unrecognised errors are storage
// failures and carry the underlying message.
func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error, message string) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		h.sendError(w, r, http.StatusNotFound, errorCodeNotFound, err.Error())
	case errors.Is(err, service.ErrConflict):
		h.sendError(w, r, http.StatusConflict, errorCodeConflict, err.Error())
	case errors.Is(err, service.ErrBadRequest):
		h.sendError(w, r, http.StatusBadRequest, errorCodeBadRequest, err.Error())
	default:
		h.logger.Error(message,
			zap.String("request_id", middleware.GetRequestID(r.Context())),
			zap.String("path", r.URL.Path),
			zap.Error(err))
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, fmt.Sprintf("%s: %v", message, err))
	}
}

func (h *Handler) sendError(w http.ResponseWriter, r *http.Request, statusCode int, errorCode, message string) {
	render.Status(r, statusCode)
	render.JSON(w, r, api.ErrorResponse{
		Error:   errorCode,
		Message: message,
		Timestamp: func() *time.Time {
			t := time.Now()
			return &t
		}(),
	})
}
