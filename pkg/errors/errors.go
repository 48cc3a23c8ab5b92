package errors

import (
	"fmt"
)

// ErrConfiguration is returned when required credentials or settings are absent.
// It is fatal for the request and never retried automatically.
type ErrConfiguration struct {
	Message string
}

func (e *ErrConfiguration) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "missing configuration"
}

// ErrValidation is returned when a required request field is missing or malformed
type ErrValidation struct {
	Message string
	Fields  map[string]string
}

func (e *ErrValidation) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "validation failed"
}

// ErrUpstream is returned when the logistics provider responds with a non-2xx
// status or a body that cannot be decoded
type ErrUpstream struct {
	Operation  string
	StatusCode int
	Body       string
}

func (e *ErrUpstream) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: upstream returned %d: %s", e.Operation, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("%s: upstream request failed: %s", e.Operation, e.Body)
}

// ErrNotFound is returned when a resource is not found
type ErrNotFound struct {
	Resource string
	ID       string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ErrConflict is returned when an action collides with one already in flight,
// for example a second submission while the first has not completed
type ErrConflict struct {
	Message string
}

func (e *ErrConflict) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "conflict"
}

// ErrStockInsufficient is returned when a cart orders more units than the
// warehouse holds for at least one item
type ErrStockInsufficient struct {
	Items []string
}

func (e *ErrStockInsufficient) Error() string {
	return "some items are out of stock"
}
