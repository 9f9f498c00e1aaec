package mongodb

import "errors"

// Sentinel kinds for storage connection errors.
var (
	ErrMissingURI = errors.New("MONGODB_URI environment variable not defined")
	ErrConnect    = errors.New("mongodb connect failed")
)
