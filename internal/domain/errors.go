package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound signals a missing resource.
	ErrNotFound = errors.New("not found")
	// ErrRecordNotFound signals a missing record.
	ErrRecordNotFound = errors.New("record not found")
	// ErrAlreadyExists signals a duplicate record.
	ErrAlreadyExists = errors.New("already exists")
	// ErrUnknownEntity signals an entity type outside the registry.
	ErrUnknownEntity = errors.New("unknown entity type")
	// ErrUnknownField signals a field name the entity does not expose.
	ErrUnknownField = errors.New("unknown field")
	// ErrInvalidStatus signals a status value outside the entity's enumeration.
	ErrInvalidStatus = errors.New("invalid status")
	// ErrInvalidRecord signals a record that fails domain validation.
	ErrInvalidRecord = errors.New("invalid record")
)

// InvalidStatusError wraps ErrInvalidStatus with the rejected value and the
// entity's allowed enumeration.
type InvalidStatusError struct {
	Entity  string
	Value   string
	Allowed []string
}

func (e *InvalidStatusError) Error() string {
	return fmt.Sprintf(
		"%s: %q is not a valid %s status (allowed: %s)",
		ErrInvalidStatus.Error(), e.Value, e.Entity, strings.Join(e.Allowed, ", "),
	)
}

func (e *InvalidStatusError) Unwrap() error { return ErrInvalidStatus }

// NewInvalidStatus creates an invalid status error.
func NewInvalidStatus(entity, value string, allowed []string) error {
	return &InvalidStatusError{Entity: entity, Value: value, Allowed: allowed}
}
