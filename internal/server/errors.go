package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates no page exists at the requested path
type ErrNotFound struct {
	Path string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("page not found: %s", e.Path)
}

// ErrMethodNotAllowed indicates the page exists but not for this method
type ErrMethodNotAllowed struct {
	Method string
	Path   string
}

func (e *ErrMethodNotAllowed) Error() string {
	return fmt.Sprintf("method %s not allowed on %s", e.Method, e.Path)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		notFound   *ErrNotFound
		notAllowed *ErrMethodNotAllowed
	)
	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &notAllowed):
		return http.StatusMethodNotAllowed
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		// Chart, template and dataset failures are all server-side.
		return http.StatusInternalServerError
	}
}
