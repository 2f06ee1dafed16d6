package llm

import "errors"

var (
	// ErrUnavailable indicates the assistant endpoint is unreachable.
	ErrUnavailable = errors.New("assistant endpoint unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("assistant request timed out")

	// ErrEmptyResponse indicates the endpoint answered without any
	// completion choices.
	ErrEmptyResponse = errors.New("assistant returned no completion")

	// ErrRetryExhausted indicates all retry attempts have been exhausted.
	ErrRetryExhausted = errors.New("assistant retry attempts exhausted")
)
