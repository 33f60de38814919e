package rlstats

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidAPIKey is returned by New when the key cannot be encoded
	// as an HTTP header value.
	ErrInvalidAPIKey = errors.New("rlstats: api key is not a valid header value")

	// ErrRateLimited is returned when the service answers with HTTP 429.
	// The client never backs off or retries; throttling policy belongs to
	// the caller.
	ErrRateLimited = errors.New("rlstats: rate limited")
)

// TransportError wraps a network-level failure: connection refused, TLS
// handshake, deadline exceeded. The response body, if any, was never read.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("rlstats: request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// APIError is an application-level failure reported by the service through
// its {code, message} envelope. Code and Message are passed through
// verbatim, not remapped.
type APIError struct {
	Code    int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("rlstats: api error %d: %s", e.Code, e.Message)
}

// DecodeError means the response body matched neither the expected result
// shape nor the error envelope. Body holds the raw payload; Err is the
// envelope parse failure, which is the useful one for diagnosis since the
// body is already known not to be a result.
type DecodeError struct {
	Body []byte
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("rlstats: malformed response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
