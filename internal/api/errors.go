package api

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failed API call. Transport failures, non-2xx
// responses, and malformed response bodies are distinct kinds so callers can
// branch without string matching.
type ErrorKind int

const (
	KindTransport ErrorKind = iota
	KindServer
	KindDecode
)

// Error is the structured failure surfaced by every Client call.
type Error struct {
	Kind   ErrorKind
	Op     string // e.g. "login", "fetch workouts"
	Status int    // HTTP status, set for KindServer
	Detail string // server-provided detail message, if any
	Err    error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindServer:
		if e.Detail != "" {
			return fmt.Sprintf("%s: server returned %d: %s", e.Op, e.Status, e.Detail)
		}
		return fmt.Sprintf("%s: server returned %d", e.Op, e.Status)
	case KindDecode:
		return fmt.Sprintf("%s: decode response: %v", e.Op, e.Err)
	default:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Detail extracts the server-provided detail from an error, falling back to
// the given message when the error carries none.
func Detail(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return fallback
}

// IsServerError reports whether err is a non-2xx response from the backend.
func IsServerError(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == KindServer
}
