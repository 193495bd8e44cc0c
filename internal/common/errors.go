package common

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"planescheduler/flightline/internal/models/dtos"
)

// Sentinel errors for the domain failure taxonomy. Services wrap these with
// context; the API boundary maps them to HTTP codes via HTTPStatus.
var (
	ErrUnauthenticated = errors.New("not authenticated")
	ErrForbidden       = errors.New("not authorized")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrInvalidState    = errors.New("invalid state")
)

// ValidationError accumulates all field errors before reporting, so a caller
// sees every invalid field in one round trip.
type ValidationError struct {
	Fields []dtos.FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

func (e *ValidationError) Add(field, message string) {
	e.Fields = append(e.Fields, dtos.FieldError{Field: field, Message: message})
}

// OrNil returns the error only if any field failed, so callers can
// `return v.OrNil()` after accumulating checks.
func (e *ValidationError) OrNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// HTTPStatus maps a domain error to its response status code.
// Unknown errors are treated as internal failures.
func HTTPStatus(err error) int {
	var vErr *ValidationError
	switch {
	case errors.As(err, &vErr):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidState):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
