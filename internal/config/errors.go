// Package config provides configuration loading and validation for the dashboard.
package config

import (
	"fmt"
	"strings"
)

// ValidationError represents one or more invalid configuration values
type ValidationError struct {
	Fields  []string
	Message string
	Cause   error
}

func (e *ValidationError) Error() string {
	msg := e.Message
	if len(e.Fields) > 0 {
		msg = fmt.Sprintf("%s (%s)", msg, strings.Join(e.Fields, ", "))
	}
	if e.Cause != nil {
		return fmt.Sprintf("config error: %s: %v", msg, e.Cause)
	}
	return fmt.Sprintf("config error: %s", msg)
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}
