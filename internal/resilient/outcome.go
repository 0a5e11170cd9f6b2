package resilient

import (
	"errors"

	"github.com/custodia-labs/nearby/internal/core/domain"
)

// Kind classifies an Outcome.
type Kind int

// Outcome kinds.
const (
	Success Kind = iota
	ValidationFailure
	OtherFailure
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Success:
		return "success"
	case ValidationFailure:
		return "validation failure"
	case OtherFailure:
		return "other failure"
	default:
		return "unknown"
	}
}

// Outcome is the result of one guarded call.
type Outcome[R any] struct {
	Value R
	Err   error
}

// Kind reports whether the call succeeded and, if not, how it failed.
// Any error carrying a *domain.ValidationError is a validation failure.
func (o Outcome[R]) Kind() Kind {
	if o.Err == nil {
		return Success
	}
	var verr *domain.ValidationError
	if errors.As(o.Err, &verr) {
		return ValidationFailure
	}
	return OtherFailure
}

// OK reports whether the call succeeded.
func (o Outcome[R]) OK() bool {
	return o.Err == nil
}
