package api

import "errors"

// Sentinel kinds for API errors.
var (
	ErrEmptyBody   = errors.New("request body is empty")
	ErrBadRequest  = errors.New("bad request")
	ErrBodyTooLong = errors.New("request body too large")
)
