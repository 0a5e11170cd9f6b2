package domain

import (
	"cmp"
	"slices"
	"strings"
)

// Violation is a single failed field constraint.
type Violation struct {
	// Path identifies the field, using dots for nested values
	// (e.g. "location.latitude").
	Path string

	// Message is the human-readable constraint description.
	Message string
}

// ValidationError reports every violated constraint of one value.
type ValidationError struct {
	// Subject is the textual form of the invalid value.
	Subject string

	// Violations is ordered by Path.
	Violations []Violation
}

// NewValidationError builds a ValidationError, sorting violations by path.
// Returns nil if there are no violations.
func NewValidationError(subject string, violations []Violation) *ValidationError {
	if len(violations) == 0 {
		return nil
	}
	sorted := slices.Clone(violations)
	SortViolations(sorted)
	return &ValidationError{Subject: subject, Violations: sorted}
}

// Error joins the violation messages.
func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		msgs[i] = v.Message
	}
	return strings.Join(msgs, "; ")
}

// Is lets callers match any validation failure against ErrInvalidInput.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// SortViolations orders violations by path, keeping the input order for equal paths.
func SortViolations(violations []Violation) {
	slices.SortStableFunc(violations, func(a, b Violation) int {
		return cmp.Compare(a.Path, b.Path)
	})
}

// prefixed returns violations with prefix prepended to each path.
func prefixed(prefix string, violations []Violation) []Violation {
	out := make([]Violation, len(violations))
	for i, v := range violations {
		out[i] = Violation{Path: prefix + "." + v.Path, Message: v.Message}
	}
	return out
}
