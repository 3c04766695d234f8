package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/oapi-codegen/runtime"
)

// ErrorCodeInvalidParameter is returned when a path or query parameter fails to bind.
const ErrorCodeInvalidParameter = "INVALID_PARAMETER"

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// List all call records
	// (GET /calls)
	ListCallRecords(w http.ResponseWriter, r *http.Request)
	// Create a call record
	// (POST /calls)
	CreateCallRecord(w http.ResponseWriter, r *http.Request)
	// Remove every record created by spreadsheet import
	// (DELETE /calls/delete_excel)
	DeleteExcelImports(w http.ResponseWriter, r *http.Request)
	// Search call records
	// (GET /calls/search)
	SearchCallRecords(w http.ResponseWriter, r *http.Request, params SearchCallRecordsParams)
	// Import call records from a spreadsheet
	// (POST /calls/upload_excel)
	UploadExcel(w http.ResponseWriter, r *http.Request)
	// Delete a call record
	// (DELETE /calls/{id})
	DeleteCallRecord(w http.ResponseWriter, r *http.Request, id int64)
	// Get a call record
	// (GET /calls/{id})
	GetCallRecord(w http.ResponseWriter, r *http.Request, id int64)
	// Update a call record
	// (PUT /calls/{id})
	UpdateCallRecord(w http.ResponseWriter, r *http.Request, id int64)
	// Health check
	// (GET /health)
	HealthCheck(w http.ResponseWriter, r *http.Request)
	// Receive a recording status callback
	// (POST /recordings/callback)
	RecordingCallback(w http.ResponseWriter, r *http.Request)
}

// ServerInterfaceWrapper converts contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler            ServerInterface
	HandlerMiddlewares []MiddlewareFunc
	ErrorHandlerFunc   func(w http.ResponseWriter, r *http.Request, err error)
}

type MiddlewareFunc func(http.Handler) http.Handler

func (siw *ServerInterfaceWrapper) serve(w http.ResponseWriter, r *http.Request, fn http.HandlerFunc) {
	handler := http.Handler(fn)
	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}
	handler.ServeHTTP(w, r)
}

func (siw *ServerInterfaceWrapper) bindID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	var id int64
	err := runtime.BindStyledParameterWithLocation("simple", false, "id", runtime.ParamLocationPath, chi.URLParam(r, "id"), &id)
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "id", Err: err})
		return 0, false
	}
	return id, true
}

// ListCallRecords operation middleware
func (siw *ServerInterfaceWrapper) ListCallRecords(w http.ResponseWriter, r *http.Request) {
	siw.serve(w, r, siw.Handler.ListCallRecords)
}

// CreateCallRecord operation middleware
func (siw *ServerInterfaceWrapper) CreateCallRecord(w http.ResponseWriter, r *http.Request) {
	siw.serve(w, r, siw.Handler.CreateCallRecord)
}

// DeleteExcelImports operation middleware
func (siw *ServerInterfaceWrapper) DeleteExcelImports(w http.ResponseWriter, r *http.Request) {
	siw.serve(w, r, siw.Handler.DeleteExcelImports)
}

// SearchCallRecords operation middleware
func (siw *ServerInterfaceWrapper) SearchCallRecords(w http.ResponseWriter, r *http.Request) {
	var params SearchCallRecordsParams

	if err := runtime.BindQueryParameter("form", true, false, "name", r.URL.Query(), &params.Name); err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "name", Err: err})
		return
	}

	if err := runtime.BindQueryParameter("form", true, false, "status", r.URL.Query(), &params.Status); err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "status", Err: err})
		return
	}

	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.SearchCallRecords(w, r, params)
	})
}

// UploadExcel operation middleware
func (siw *ServerInterfaceWrapper) UploadExcel(w http.ResponseWriter, r *http.Request) {
	siw.serve(w, r, siw.Handler.UploadExcel)
}

// DeleteCallRecord operation middleware
func (siw *ServerInterfaceWrapper) DeleteCallRecord(w http.ResponseWriter, r *http.Request) {
	id, ok := siw.bindID(w, r)
	if !ok {
		return
	}
	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.DeleteCallRecord(w, r, id)
	})
}

// GetCallRecord operation middleware
func (siw *ServerInterfaceWrapper) GetCallRecord(w http.ResponseWriter, r *http.Request) {
	id, ok := siw.bindID(w, r)
	if !ok {
		return
	}
	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.GetCallRecord(w, r, id)
	})
}

// UpdateCallRecord operation middleware
func (siw *ServerInterfaceWrapper) UpdateCallRecord(w http.ResponseWriter, r *http.Request) {
	id, ok := siw.bindID(w, r)
	if !ok {
		return
	}
	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.UpdateCallRecord(w, r, id)
	})
}

// HealthCheck operation middleware
func (siw *ServerInterfaceWrapper) HealthCheck(w http.ResponseWriter, r *http.Request) {
	siw.serve(w, r, siw.Handler.HealthCheck)
}

// RecordingCallback operation middleware
func (siw *ServerInterfaceWrapper) RecordingCallback(w http.ResponseWriter, r *http.Request) {
	siw.serve(w, r, siw.Handler.RecordingCallback)
}

type InvalidParamFormatError struct {
	ParamName string
	Err       error
}

func (e *InvalidParamFormatError) Error() string {
	return fmt.Sprintf("Invalid format for parameter %s: %s", e.ParamName, e.Err.Error())
}

func (e *InvalidParamFormatError) Unwrap() error {
	return e.Err
}

// DefaultErrorHandler renders parameter binding failures as a 400 ErrorResponse.
func DefaultErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	now := time.Now()
	render.Status(r, http.StatusBadRequest)
	render.JSON(w, r, ErrorResponse{
		Error:     ErrorCodeInvalidParameter,
		Message:   err.Error(),
		Timestamp: &now,
	})
}

// Handler creates http.Handler with routing matching OpenAPI spec.
func Handler(si ServerInterface) http.Handler {
	return HandlerWithOptions(si, ChiServerOptions{})
}

type ChiServerOptions struct {
	BaseURL          string
	BaseRouter       chi.Router
	Middlewares      []MiddlewareFunc
	ErrorHandlerFunc func(w http.ResponseWriter, r *http.Request, err error)
}

// HandlerFromMux creates http.Handler with routing matching OpenAPI spec based on the provided mux.
func HandlerFromMux(si ServerInterface, r chi.Router) http.Handler {
	return HandlerWithOptions(si, ChiServerOptions{
		BaseRouter: r,
	})
}

// HandlerWithOptions creates http.Handler with additional options
func HandlerWithOptions(si ServerInterface, options ChiServerOptions) http.Handler {
	r := options.BaseRouter

	if r == nil {
		r = chi.NewRouter()
	}
	if options.ErrorHandlerFunc == nil {
		options.ErrorHandlerFunc = DefaultErrorHandler
	}
	wrapper := ServerInterfaceWrapper{
		Handler:            si,
		HandlerMiddlewares: options.Middlewares,
		ErrorHandlerFunc:   options.ErrorHandlerFunc,
	}

	r.Group(func(r chi.Router) {
		r.Get(options.BaseURL+"/calls", wrapper.ListCallRecords)
	})
	r.Group(func(r chi.Router) {
		r.Post(options.BaseURL+"/calls", wrapper.CreateCallRecord)
	})
	r.Group(func(r chi.Router) {
		r.Delete(options.BaseURL+"/calls/delete_excel", wrapper.DeleteExcelImports)
	})
	r.Group(func(r chi.Router) {
		r.Get(options.BaseURL+"/calls/search", wrapper.SearchCallRecords)
	})
	r.Group(func(r chi.Router) {
		r.Post(options.BaseURL+"/calls/upload_excel", wrapper.UploadExcel)
	})
	r.Group(func(r chi.Router) {
		r.Delete(options.BaseURL+"/calls/{id}", wrapper.DeleteCallRecord)
	})
	r.Group(func(r chi.Router) {
		r.Get(options.BaseURL+"/calls/{id}", wrapper.GetCallRecord)
	})
	r.Group(func(r chi.Router) {
		r.Put(options.BaseURL+"/calls/{id}", wrapper.UpdateCallRecord)
	})
	r.Group(func(r chi.Router) {
		r.Get(options.BaseURL+"/health", wrapper.HealthCheck)
	})
	r.Group(func(r chi.Router) {
		r.Post(options.BaseURL+"/recordings/callback", wrapper.RecordingCallback)
	})

	return r
}
