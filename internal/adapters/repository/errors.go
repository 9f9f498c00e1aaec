package repository

import "errors"

// Sentinel kinds for store errors.
var (
	ErrInsert      = errors.New("insert submission failed")
	ErrCount       = errors.New("count submissions failed")
	ErrUnavailable = errors.New("submission store unavailable")
)
