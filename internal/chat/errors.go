package chat

import (
	"errors"
	"fmt"
)

// Domain-specific errors for the chat package.
var (
	ErrEmptyMessage = errors.New("message is empty")
)

// OrchestrationError is returned when a request could not be satisfied by
// any provider in the resolved chain. It never wraps a partial envelope.
type OrchestrationError struct {
	Stage string // "conversational", "image" or "search"
	Err   error
}

func (e *OrchestrationError) Error() string {
	return fmt.Sprintf("orchestration failed at %s stage: %v", e.Stage, e.Err)
}

func (e *OrchestrationError) Unwrap() error {
	return e.Err
}
