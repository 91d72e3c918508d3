package schema

import (
	"fmt"
	"strings"
)

// ValidationError is one schema violation
type ValidationError struct {
	Field   string // JSON pointer, e.g. "/style"
	Keyword string // Failing keyword, e.g. "enum"
	Message string
}

// Error returns a formatted error message
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error at %s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error returns all validation errors formatted with clear separation
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "validation errors"
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "found %d validation errors:\n", len(e))
	for i, err := range e {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, err.Error())
	}
	return b.String()
}
