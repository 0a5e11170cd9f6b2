package resilient

import (
	"errors"
	"fmt"

	"github.com/custodia-labs/nearby/internal/core/domain"
	"github.com/custodia-labs/nearby/internal/logger"
)

const (
	verbProcessing = "processing"
	verbTesting    = "testing"
)

// SafeCall wraps fn so that it never fails or panics: every call yields an
// Outcome, and failures are reported.
func SafeCall[T, R any](fn func(T) (R, error)) func(T) Outcome[R] {
	return func(item T) Outcome[R] {
		out := guard(fn, item)
		if !out.OK() {
			report(item, out.Err, verbProcessing)
			logger.Warn("skipping item")
		}
		return out
	}
}

// Map applies fn to every item and returns the successful results in input order.
func Map[T, R any](items []T, fn func(T) (R, error)) []R {
	call := SafeCall(fn)
	results := make([]R, 0, len(items))
	for _, item := range items {
		if out := call(item); out.OK() {
			results = append(results, out.Value)
		}
	}
	return results
}

// SafePredicate wraps pred so that a failing or panicking test answers fallback.
func SafePredicate[T any](pred func(T) (bool, error), fallback bool) func(T) bool {
	return func(item T) bool {
		out := guard(pred, item)
		if out.OK() {
			return out.Value
		}
		report(item, out.Err, verbTesting)
		if fallback {
			logger.Warn("keeping item")
		} else {
			logger.Warn("skipping item")
		}
		return fallback
	}
}

// Filter returns the items pred accepts, in input order.
// Items whose test fails are kept only if fallback is true.
func Filter[T any](items []T, pred func(T) (bool, error), fallback bool) []T {
	test := SafePredicate(pred, fallback)
	kept := make([]T, 0, len(items))
	for _, item := range items {
		if test(item) {
			kept = append(kept, item)
		}
	}
	return kept
}

// guard runs fn, turning a panic into an error.
func guard[T, R any](fn func(T) (R, error), item T) (out Outcome[R]) {
	defer func() {
		if r := recover(); r != nil {
			out = Outcome[R]{Err: fmt.Errorf("panic: %v", r)}
		}
	}()
	value, err := fn(item)
	if err != nil {
		return Outcome[R]{Err: err}
	}
	return Outcome[R]{Value: value}
}

func report[T any](item T, err error, verb string) {
	if !logger.IsVerbose() {
		return
	}
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		logger.Warn("invalid item '%v'", item)
		for _, v := range verr.Violations {
			logger.Warn("%s", v.Message)
		}
		return
	}
	logger.Warn("an error was encountered while %s item '%v'", verb, item)
	logger.Warn("%v", err)
}
