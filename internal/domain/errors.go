package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors matched with errors.Is.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrCycle      = errors.New("cycle in article tree")
	ErrConflict   = errors.New("conflict")
)

// ValidationKind names the field rule that failed.
type ValidationKind string

const (
	EmptyTitle   ValidationKind = "empty_title"
	EmptyContent ValidationKind = "empty_content"
	InvalidInput ValidationKind = "invalid_input"
)

// ValidationError reports rejected article input.
type ValidationError struct {
	Kind  ValidationKind
	Field string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed: %s (%s)", e.Kind, e.Field)
	}
	return fmt.Sprintf("validation failed: %s", e.Kind)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NotFoundError reports a missing resource or version. Version is 0 when the
// lookup was for the latest version.
type NotFoundError struct {
	ResourceKey int64
	Version     int
}

func (e *NotFoundError) Error() string {
	if e.Version > 0 {
		return fmt.Sprintf("article %d version %d not found", e.ResourceKey, e.Version)
	}
	return fmt.Sprintf("article %d not found", e.ResourceKey)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// CycleError reports a move that would make a resource its own ancestor.
type CycleError struct {
	ResourceKey       int64
	ParentResourceKey int64
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("article %d cannot be placed under %d: cycle in article tree", e.ResourceKey, e.ParentResourceKey)
}

func (e *CycleError) Is(target error) bool {
	return target == ErrCycle
}

// ConflictError reports an explicitly requested resource key that is already taken.
type ConflictError struct {
	ResourceKey int64
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("article %d already exists", e.ResourceKey)
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}
