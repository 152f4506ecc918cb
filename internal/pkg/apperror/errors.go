package apperror

import "fmt"

// NotFoundError indicates a referenced record does not exist.
// Surfaced to the caller as 404, never retried.
type NotFoundError struct {
	Resource string
	Id       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.Id)
}

func NewNotFound(resource, id string) error {
	return &NotFoundError{Resource: resource, Id: id}
}

// DataAccessError wraps a failed read/write against the data store.
type DataAccessError struct {
	Op  string
	Err error
}

func (e *DataAccessError) Error() string {
	return fmt.Sprintf("data access failed (%s): %v", e.Op, e.Err)
}

func (e *DataAccessError) Unwrap() error {
	return e.Err
}

func NewDataAccess(op string, err error) error {
	return &DataAccessError{Op: op, Err: err}
}

// ValidationError indicates malformed input, rejected before any data access.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidation(message string) error {
	return &ValidationError{Message: message}
}
