package service

import "errors"

// Sentinel errors returned by Submit. ErrValidation and ErrStorage classify
// every failure; the others narrow down validation failures.
var (
	ErrValidation    = errors.New("invalid submission")
	ErrMissingFields = errors.New("missing required fields")
	ErrScoreMismatch = errors.New("calculated percentage does not match names")
	ErrStorage       = errors.New("saving submission failed")
)
