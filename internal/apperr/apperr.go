package apperr

import (
	"errors"
	"net/http"
)

// Kind names the cause of a failure so callers can branch on it.
type Kind string

const (
	KindExtraction         Kind = "extraction_failed"
	KindGeneration         Kind = "generation_failed"
	KindBackendUnavailable Kind = "backend_unavailable"
	KindInvalidInput       Kind = "invalid_input"
	KindWrite              Kind = "write_failed"
)

// Error carries a Kind alongside the operation that failed.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Op == "" {
		return e.Err.Error()
	}
	return e.Op + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// New wraps err with a kind. A nil err yields nil.
func New(kind Kind, op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Op: op, Err: err}
}

// KindOf returns the outermost Kind found in err's chain.
// Errors without one are reported as generation failures.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindGeneration
}

// HTTPStatus maps a kind to the status used by the JSON APIs.
func HTTPStatus(kind Kind) int {
	switch kind {
	case KindInvalidInput:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
