package client

import (
	"errors"
	"fmt"
)

// Sentinel errors for form validation and persistence.
var (
	ErrIncompleteForm = errors.New("please fill in all fields correctly")
	ErrConnection     = errors.New("connection error")
)

// SaveError is returned when the API answers a save with a non-2xx status.
type SaveError struct {
	Status  int
	Message string
	Detail  string
}

func (e *SaveError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%d %s: %s", e.Status, e.Message, e.Detail)
	}
	return fmt.Sprintf("%d %s", e.Status, e.Message)
}

// Reason returns the server-side error detail, or a generic connection
// error when the server gave none.
func Reason(err error) string {
	var se *SaveError
	if errors.As(err, &se) && se.Detail != "" {
		return se.Detail
	}
	if errors.As(err, &se) && se.Message != "" {
		return se.Message
	}
	return ErrConnection.Error()
}
