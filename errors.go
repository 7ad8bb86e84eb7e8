package asciiwiki

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure modes.
var (
	// ErrMissingAPIKey indicates a provider was constructed without a
	// credential. Detected before any network call is made.
	ErrMissingAPIKey = errors.New("missing API key")

	// ErrValidation indicates a request or a generated response failed validation.
	ErrValidation = errors.New("validation error")

	// ErrStreamNotReady indicates Text() was called before Next().
	ErrStreamNotReady = errors.New("stream not ready: call Next() first")

	// ErrStreamClosed indicates an operation on a closed stream.
	ErrStreamClosed = errors.New("stream closed")
)

// RetryExhaustedError is the terminal error returned by [Client.GenerateArt]
// after every permitted attempt has failed. It carries the attempt count and
// wraps the last attempt's error.
type RetryExhaustedError struct {
	Attempts int
	Err      error
}

func (e *RetryExhaustedError) Error() string {
	return fmt.Sprintf("generation failed after %d attempts: %v", e.Attempts, e.Err)
}

func (e *RetryExhaustedError) Unwrap() error {
	return e.Err
}
