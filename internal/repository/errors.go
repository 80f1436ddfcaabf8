package repository

import (
	"fmt"
)

// NotFoundError represents an error when a resource is not found
type NotFoundError struct {
	Resource string
	Key      string
	Value    string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with %s %s not found", e.Resource, e.Key, e.Value)
}

// IntegrityError reports a write rejected by a relational constraint: an unresolved
// reference, a foreign key or a duplicate key.
type IntegrityError struct {
	Resource string
	Err      error
}

// Error returns the message of the underlying failure unchanged.
func (e *IntegrityError) Error() string {
	return e.Err.Error()
}

func (e *IntegrityError) Unwrap() error {
	return e.Err
}

// DataAccessError reports any other failure of the store.
type DataAccessError struct {
	Resource string
	Err      error
}

// Error returns the message of the underlying failure unchanged.
func (e *DataAccessError) Error() string {
	return e.Err.Error()
}

func (e *DataAccessError) Unwrap() error {
	return e.Err
}
