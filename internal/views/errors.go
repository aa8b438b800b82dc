// Package views renders the dashboard pages from HTML templates.
package views

import "fmt"

// TemplateError represents an error parsing or executing a page template
type TemplateError struct {
	Page    string
	Message string
	Cause   error
}

func (e *TemplateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("template error: %s: %s: %v", e.Page, e.Message, e.Cause)
	}
	return fmt.Sprintf("template error: %s: %s", e.Page, e.Message)
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}
