package engivault

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrConfiguration indicates invalid or missing client
	// construction parameters.
	ErrConfiguration = errors.New("invalid configuration")
	// ErrValidation is the sentinel unwrapped by [FieldErrors]. It
	// fires locally, before any network call.
	ErrValidation = errors.New("input validation failed")
	// ErrNetwork indicates a transport-level failure where no HTTP
	// response was received (DNS, connection refused, timeout).
	ErrNetwork = errors.New("network request failed")
	// ErrAuthentication is returned for HTTP 401.
	ErrAuthentication = errors.New("authentication failed")
	// ErrRateLimit is returned for HTTP 429.
	ErrRateLimit = errors.New("rate limit exceeded")
	// ErrAPI covers every other HTTP error, malformed response, or a
	// server-reported success=false envelope.
	ErrAPI = errors.New("api error")
	// ErrNotInitialized is returned by [Default] and the package-level
	// shortcuts before [Init] has been called. Configuration-class.
	ErrNotInitialized = errors.New("engivault client not initialized")
)

// APIError is returned when the server answered but the exchange
// failed. Err is one of [ErrAuthentication], [ErrRateLimit], or
// [ErrAPI].
type APIError struct {
	StatusCode int    // zero when the failure was not tied to an HTTP status
	Message    string // human-readable cause
	Body       string // raw response payload, kept for diagnostics
	Err        error
}

func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%v: %s (status %d)", e.Err, e.Message, e.StatusCode)
	}
	return fmt.Sprintf("%v: %s", e.Err, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// FieldError represents a single constraint violation on one input
// field. Field carries the SDK-facing snake_case name.
type FieldError struct {
	Field string `json:"field"`
	Err   string `json:"error"`
}

// FieldErrors is the error returned when local input validation
// fails. It unwraps to [ErrValidation].
type FieldErrors []FieldError

func (fe FieldErrors) Error() string {
	parts := make([]string, len(fe))
	for i, f := range fe {
		parts[i] = f.Field + ": " + f.Err
	}
	return "input validation failed: " + strings.Join(parts, "; ")
}

func (fe FieldErrors) Unwrap() error {
	return ErrValidation
}

// Fields returns the offending field names, in declaration order.
func (fe FieldErrors) Fields() []string {
	names := make([]string, len(fe))
	for i, f := range fe {
		names[i] = f.Field
	}
	return names
}
