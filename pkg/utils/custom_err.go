package utils

import "errors"

// Error kinds returned by services. Handlers map them to a status code and
// a fixed message in HandleServiceError; wrap them with %w to add detail.
var (
	ErrBadRequest       = errors.New("bad request")
	ErrNotFound         = errors.New("resource not found")
	ErrUnprocessable    = errors.New("unprocessable request")
	ErrMethodNotAllowed = errors.New("method not allowed")
	ErrDatabaseError    = errors.New("database error")
)
