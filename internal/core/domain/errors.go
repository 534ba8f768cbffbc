package domain

import (
	"errors"
	"fmt"
)

// ValidationError is returned when caller-supplied data violates a business
// rule: missing field, length exceeded, negative amount, invalid status,
// date ordering, duplicate unique key. The message is user-facing.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validationf builds a ValidationError with a formatted message.
func Validationf(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError is returned when a referenced id does not resolve to an
// existing record.
type NotFoundError struct {
	Resource string
	ID       uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s con id %d no encontrado", e.Resource, e.ID)
}

// NotFound builds a NotFoundError for the given resource and id.
func NotFound(resource string, id uint) error {
	return &NotFoundError{Resource: resource, ID: id}
}

// ConsistencyError indicates a record written moments ago could not be read
// back. It signals a storage-layer contract violation, not a caller mistake,
// and should abort the request.
type ConsistencyError struct {
	Resource string
	ID       uint
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("%s con id %d no se pudo releer despues de guardar", e.Resource, e.ID)
}

// Consistency builds a ConsistencyError for the given resource and id.
func Consistency(resource string, id uint) error {
	return &ConsistencyError{Resource: resource, ID: id}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsConsistency reports whether err is a ConsistencyError.
func IsConsistency(err error) bool {
	var ce *ConsistencyError
	return errors.As(err, &ce)
}
