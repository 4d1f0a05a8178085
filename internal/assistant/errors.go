package assistant

import (
	"errors"
	"fmt"
)

// Domain-specific errors for the assistant package.
var (
	// ErrEmptyQuery is the only error HandleQuery returns to callers.
	ErrEmptyQuery = errors.New("query is empty")

	ErrMissingDays    = errors.New("leave days not specified")
	ErrDaysOutOfRange = errors.New("leave days out of allowed range")
	ErrLeaveRejected  = errors.New("leave application rejected")
	ErrEmptyAnswer    = errors.New("empty answer from LLM")
)

// BackendError marks a failure in a dependency (vector store, directory,
// embeddings) as opposed to bad user input.
type BackendError struct {
	Op  string
	Err error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

// ProviderError marks a failure of the LLM provider chain.
type ProviderError struct {
	Err error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("llm provider: %v", e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
