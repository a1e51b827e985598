package service

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidReference   = errors.New("invalid reference identifier")
	ErrMeetingNotFound    = errors.New("meeting not found")
	ErrMeetingsNotRemoved = errors.New("failed to remove meetings")
)

// ValidationError names the request field holding a malformed identifier.
type ValidationError struct {
	Field string
	Value string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s value %q", e.Field, e.Value)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidReference
}

// PersistenceError wraps a store failure with the operation that hit it.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
