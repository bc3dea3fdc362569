package provider

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrAllProvidersFailed indicates every provider in a chain was skipped or failed
	ErrAllProvidersFailed = errors.New("all providers failed")

	// ErrNoProvidersConfigured indicates a chain has no enabled providers
	ErrNoProvidersConfigured = errors.New("no providers configured")
)

// ErrorKind buckets provider failures for health records
type ErrorKind string

const (
	ErrorKindNone     ErrorKind = ""
	ErrorKindTimeout  ErrorKind = "timeout"
	ErrorKindRejected ErrorKind = "rejected"
	ErrorKindAuth     ErrorKind = "auth"
)

// AttemptError tags a provider failure with its error kind. Adapters wrap
// the errors they can classify; anything untagged counts as rejected.
type AttemptError struct {
	Kind ErrorKind
	Err  error
}

func (e *AttemptError) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *AttemptError) Unwrap() error {
	return e.Err
}

// ExhaustedError reports a fully exhausted fallback chain
type ExhaustedError struct {
	Kind          Kind
	Attempted     []string // providers that were actually invoked
	Skipped       []string // providers skipped on cooldown
	LastErrorKind ErrorKind
	LastErr       error
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("%s chain exhausted (attempted: %s, skipped: %s): %v",
		e.Kind, strings.Join(e.Attempted, ","), strings.Join(e.Skipped, ","), e.LastErr)
}

func (e *ExhaustedError) Unwrap() error {
	return e.LastErr
}

// Is lets callers match the exhaustion with errors.Is(err, ErrAllProvidersFailed)
func (e *ExhaustedError) Is(target error) bool {
	return target == ErrAllProvidersFailed
}
