// Package api is the gateway to the storefront backend.  It is the only
// package in this module that performs network I/O.  Every outbound
// request goes through Client.do, which injects the bearer token,
// stamps a request ID and folds transport and HTTP failures into one
// error taxonomy the stores can branch on.
package api

import (
	"errors"
	"fmt"
)

// Sentinel error kinds.  Callers distinguish failure classes with
// errors.Is against these values; the wrapping *Error carries the
// status code and any backend-provided message.
var (
	// ErrNetwork means no HTTP response was received at all.
	ErrNetwork = errors.New("network failure")
	// ErrServer means the backend answered with a 5xx status.
	ErrServer = errors.New("server error")
	// ErrClient means the backend rejected the request with a 4xx
	// status, or the response body failed basic shape checks.
	ErrClient = errors.New("client error")
	// ErrUnauthenticated means an authenticated-only call got a 401.
	// The gateway has already cleared the stored session when this is
	// returned; reacting (e.g. navigating to a login screen) is the
	// caller's job.
	ErrUnauthenticated = errors.New("unauthenticated")
)

// Error is the normalized failure shape returned by every gateway
// method.
//
// Fields:
//  Kind    – one of the sentinel errors above.
//  Status  – HTTP status code, 0 when no response was received.
//  Message – human-readable message, backend-provided when available.
type Error struct {
	Kind    error
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("%v (status %d): %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("%v: %s", e.Kind, e.Message)
}

// Unwrap exposes the kind so errors.Is(err, api.ErrServer) works.
func (e *Error) Unwrap() error { return e.Kind }

// Message extracts a user-facing message from a gateway error.  It
// falls back to the given default when the backend supplied nothing
// useful, so the UI always has something to render.
func Message(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
