package model

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	ErrUnknownTier   = errors.New("unknown tier")
	ErrUnknownKind   = errors.New("unknown edge kind")
	ErrDuplicateNode = errors.New("duplicate node id")
	ErrNodeNotFound  = errors.New("node not found")
	ErrNotLocal      = errors.New("node was not locally authored")
)

// GraphError provides structured error information for graph operations.
type GraphError struct {
	Op     string // Operation that failed (e.g., "AddLocalNode")
	Entity string // Entity type ("node" or "edge")
	ID     string // Entity id (if applicable)
	Cause  error  // Underlying error
}

// Error implements the error interface.
func (e *GraphError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s %s %q: %v", e.Op, e.Entity, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Entity, e.Cause)
}

// Unwrap returns the underlying cause for error chain support.
func (e *GraphError) Unwrap() error {
	return e.Cause
}

func nodeErr(op, id string, cause error) error {
	return &GraphError{Op: op, Entity: "node", ID: id, Cause: cause}
}
