package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/Purvi1411/expense-tracker/internal/filter"
)

// ValidationError lists every rejected input field with a short reason.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for key := range e.Fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, key := range keys {
		parts[i] = key + ": " + e.Fields[key]
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) add(field, reason string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	e.Fields[field] = reason
}

// orNil returns e when it holds at least one field.
func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// NotFoundError covers both missing records and records owned by someone else.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string {
	return e.Reason
}

// AuthError is a rejected login.
type AuthError struct {
	Reason string
}

func (e *AuthError) Error() string {
	return e.Reason
}

// InternalError wraps storage or other unexpected failures.
type InternalError struct {
	Op  string
	Err error
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *InternalError) Unwrap() error {
	return e.Err
}

func internal(op string, err error) error {
	return &InternalError{Op: op, Err: err}
}

// filterError converts a filter failure into a ValidationError and anything else into an InternalError.
func filterError(op string, err error) error {
	var invalid *filter.InvalidFilterError
	if errors.As(err, &invalid) {
		v := &ValidationError{}
		v.add(invalid.Field, fmt.Sprintf("invalid value %q", invalid.Value))
		return v
	}
	return internal(op, err)
}
