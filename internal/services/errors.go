package services

import "fmt"

// NotFoundError reports a missing entity. It is also used when access is
// refused, so that callers cannot tell a foreign entity from an absent one.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// BadRequestError reports an operation that is not allowed in the current state.
type BadRequestError struct {
	Message string
}

func (e *BadRequestError) Error() string { return e.Message }

// ConflictError reports a unique constraint violation.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

func notFound(format string, args ...any) error {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}

func badRequest(format string, args ...any) error {
	return &BadRequestError{Message: fmt.Sprintf(format, args...)}
}

func conflict(format string, args ...any) error {
	return &ConflictError{Message: fmt.Sprintf(format, args...)}
}
