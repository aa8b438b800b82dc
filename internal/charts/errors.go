// Package charts builds the dashboard charts and encodes them as inline PNG images.
package charts

import "fmt"

// RenderError represents a failure to build or draw a chart
type RenderError struct {
	Chart   string
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render error: %s: %s: %v", e.Chart, e.Message, e.Cause)
	}
	return fmt.Sprintf("render error: %s: %s", e.Chart, e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}
