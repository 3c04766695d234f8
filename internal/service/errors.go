package service

import "errors"

// Errors returned by the services. Handlers map them to HTTP status codes; any
// other error is a storage failure.
var (
	ErrConflict   = errors.New("conflict")
	ErrNotFound   = errors.New("not found")
	ErrBadRequest = errors.New("bad request")
)
