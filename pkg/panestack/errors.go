package panestack

import (
	"errors"
	"fmt"
)

// Sentinel errors for navigation conditions. Navigation operations report
// them through Container.LastError; they never fail loudly.
var (
	// ErrRefused indicates a screen's creation or removal gate said no.
	ErrRefused = errors.New("screen refused the operation")

	// ErrEmptyStack indicates an operation that needs a top screen found none.
	ErrEmptyStack = errors.New("navigation stack is empty")

	// ErrNotInStack indicates the screen is not part of the stack.
	ErrNotInStack = errors.New("screen is not in the navigation stack")

	// ErrUnsupported indicates the host lacks the collaborator an operation needs.
	ErrUnsupported = errors.New("operation not supported by the host")
)

// HostError represents a failure of a host collaborator or resource
// (configuration, locale bundle, SDL texture, input device). It is never
// produced by the navigation logic itself.
type HostError struct {
	Op  string // Operation that failed (e.g., "load_config", "open_device")
	Err error  // Underlying error
}

func (e *HostError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("panestack: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("panestack: %s", e.Op)
}

func (e *HostError) Unwrap() error {
	return e.Err
}

// NewHostError creates a new host error.
func NewHostError(op string, err error) *HostError {
	return &HostError{Op: op, Err: err}
}

// IsHostError checks if an error is a host error.
func IsHostError(err error) bool {
	var hostErr *HostError
	return errors.As(err, &hostErr)
}

// IsRefused checks if an error is a gate refusal.
func IsRefused(err error) bool {
	return errors.Is(err, ErrRefused)
}
