package service

import (
	"errors"
	"fmt"

	"punchline/internal/joke/model"
)

// Taxonomy returned by the service. The HTTP handler is the only layer that
// translates these into status codes.
var (
	ErrNotFound        = errors.New("joke not found")
	ErrForbidden       = errors.New("not the joke's owner")
	ErrUnauthenticated = errors.New("login required")
	ErrBadRequest      = errors.New("bad request")
)

// ValidationError is the one recoverable member of the taxonomy. It carries
// per-field messages plus the submitted values for re-display.
type ValidationError struct {
	FieldErrors model.FieldErrors
	Fields      model.JokeFields
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for fields %+v", e.Fields)
}
