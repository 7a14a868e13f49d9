package services

import "fmt"

// NotFoundError reports a missing room, booking, or rental. Handlers map it
// to HTTP 404.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func notFoundf(format string, args ...interface{}) error {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}

// ConflictError reports an operation rejected by the current room state:
// duplicate room number, or a room not free when a booking or rental needs
// it. Handlers map it to HTTP 400.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

func conflictf(format string, args ...interface{}) error {
	return &ConflictError{Message: fmt.Sprintf(format, args...)}
}
