package server

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrNotFound(t *testing.T) {
	err := &ErrNotFound{Path: "/salaries"}
	assert.Equal(t, "page not found: /salaries", err.Error())
	assert.Equal(t, http.StatusNotFound, HTTPStatus(err))
}

func TestErrMethodNotAllowed(t *testing.T) {
	err := &ErrMethodNotAllowed{Method: http.MethodPost, Path: "/skills"}
	assert.Equal(t, "method POST not allowed on /skills", err.Error())
	assert.Equal(t, http.StatusMethodNotAllowed, HTTPStatus(err))
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "ErrNotFound",
			err:      &ErrNotFound{Path: "/x"},
			expected: http.StatusNotFound,
		},
		{
			name:     "Wrapped ErrNotFound",
			err:      fmt.Errorf("lookup: %w", &ErrNotFound{Path: "/x"}),
			expected: http.StatusNotFound,
		},
		{
			name:     "ErrMethodNotAllowed",
			err:      &ErrMethodNotAllowed{Method: http.MethodDelete, Path: "/"},
			expected: http.StatusMethodNotAllowed,
		},
		{
			name:     "Deadline exceeded",
			err:      fmt.Errorf("render chart: %w", context.DeadlineExceeded),
			expected: http.StatusServiceUnavailable,
		},
		{
			name:     "Unknown error",
			err:      assert.AnError,
			expected: http.StatusInternalServerError,
		},
		{
			name:     "Nil error",
			err:      nil,
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatus(tt.err))
		})
	}
}
