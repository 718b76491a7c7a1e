// Package serrors provides semantic error kinds for the file scanning
// pipeline. A Kind is a comparable sentinel describing what went wrong
// (not found, rate limited, analysis pending, ...) and errors carrying a
// kind are matched with errors.Is regardless of the wrapped cause.
package serrors

import (
	"errors"
	"fmt"
)

// Kind is a marker interface implemented by all semantic error kinds created
// with NewKind. It allows distinguishing semantic kinds from ordinary errors.
type Kind interface {
	error
	isKind()
}

// kind is an unexported implementation of Kind used as a sentinel value for a
// semantic error category.
type kind struct{ s string }

func (k kind) Error() string { return k.s }
func (k kind) isKind()       {}

// NewKind creates a new semantic error kind (a sentinel) with the provided
// name. Kinds are comparable and can be used with errors.Is/As through the
// serrors.Error wrapper.
func NewKind(name string) Kind { return kind{s: name} }

// Kinds used across the scanning pipeline. NotFound, Conflict, RateLimited
// and AnalysisPending map directly to responses of the remote scanning
// service and drive the submit/poll control flow.
var (
	// ErrNotFound indicates the requested entity was not found. For the remote
	// scanner it is the expected answer for an unseen fingerprint and drives
	// the upload path.
	ErrNotFound = NewKind("NOT_FOUND")
	// ErrConflict indicates the file already exists server-side even though a
	// prior lookup missed it.
	ErrConflict = NewKind("CONFLICT")
	// ErrRateLimited indicates the remote quota is exhausted. It must never be
	// silently swallowed since it affects retry timing upstream.
	ErrRateLimited = NewKind("RATE_LIMITED")
	// ErrAnalysisPending indicates a submitted analysis has no result yet.
	ErrAnalysisPending = NewKind("ANALYSIS_PENDING")
	// ErrBadRequest indicates the server rejected the request as invalid,
	// e.g. a duplicate analysis already in flight.
	ErrBadRequest = NewKind("BAD_REQUEST")
	// ErrUnauthorized indicates missing or invalid authentication.
	ErrUnauthorized = NewKind("UNAUTHORIZED")
	// ErrTimeout indicates a bounded retry budget was exhausted.
	ErrTimeout = NewKind("TIMEOUT")
	// ErrUnavailable indicates a transient network or 5xx failure.
	ErrUnavailable = NewKind("UNAVAILABLE")
	// ErrInternal indicates an internal error, e.g. a malformed remote response.
	ErrInternal = NewKind("INTERNAL")
)

// Error represents a semantic error carrying a kind (sentinel), an optional
// wrapped error and an optional arbitrary message. It fully supports
// errors.Is/errors.As and unwrapping: matching succeeds against either the
// kind sentinel or the wrapped cause.
type Error struct {
	kind Kind
	err  error
	msg  string
}

// With constructs a new semantic error with the given kind and an arbitrary
// human-readable message. Use Wrap if you also want to wrap a concrete cause.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap constructs a new semantic error with the given kind, wraps the provided
// cause (err) and allows adding an arbitrary message.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// KindOnly creates a semantic error carrying only the kind without extra
// message or concrete cause.
func KindOnly(k Kind) *Error { return &Error{kind: k} }

// Error implements the error interface. The string is "<msg>: <cause>" when
// both are set, falling back to whichever is present, then the kind name.
func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	default:
		if e.kind != nil {
			return e.kind.Error()
		}

		return "unknown error"
	}
}

// Unwrap returns the wrapped error, enabling errors.Unwrap/Is/As to traverse
// the underlying cause chain.
func (e *Error) Unwrap() error { return e.err }

// Is enables matching against either the semantic kind sentinel or the wrapped
// error in the chain.
func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}
	if e.kind != nil && errors.Is(e.kind, target) {
		return true
	}
	if e.err != nil && errors.Is(e.err, target) {
		return true
	}

	return false
}

// As enables type assertions against either the semantic kind sentinel or the
// wrapped error in the chain.
func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}
	if e.kind != nil && errors.As(e.kind, target) {
		return true
	}
	if e.err != nil && errors.As(e.err, target) {
		return true
	}

	return false
}

// Kind returns the semantic kind sentinel associated with this error, or nil.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the arbitrary message attached to this error.
func (e *Error) Message() string { return e.msg }
