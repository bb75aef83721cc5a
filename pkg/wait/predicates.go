// SPDX-FileCopyrightText: SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package wait

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-logr/logr"
)

// TimeoutError is returned by Require and RequireCondition if the awaited condition was not met in time.
type TimeoutError struct {
	// Description is the description of the wait.
	Description string
	// Timeout is the timeout of the policy that was used.
	Timeout time.Duration
	// Attempts is the number of predicate invocations.
	Attempts int
}

// Error implements error.
func (e *TimeoutError) Error() string {
	return fmt.Sprintf("timed out after %s (%d attempts) waiting for %s", e.Timeout, e.Attempts, e.Description)
}

// IsTimeout returns true if err is or wraps a *TimeoutError.
func IsTimeout(err error) bool {
	var timeoutErr *TimeoutError
	return errors.As(err, &timeoutErr)
}

// ResourceFailedError is returned by predicates if a resource reached a state from which the awaited state
// can not be reached anymore, e.g. a server in status ERROR.
type ResourceFailedError struct {
	// Kind is the kind of the resource, e.g. "server".
	Kind string
	// ID is the id of the resource.
	ID string
	// Status is the failure status the resource reached.
	Status string
	// Reason is an optional message explaining the failure.
	Reason string
}

// Error implements error.
func (e *ResourceFailedError) Error() string {
	msg := fmt.Sprintf("%s %s is in status %s", e.Kind, e.ID, e.Status)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

// IsResourceFailed returns true if err is or wraps a *ResourceFailedError.
func IsResourceFailed(err error) bool {
	var failedErr *ResourceFailedError
	return errors.As(err, &failedErr)
}

// Truthy turns a function returning a value into a Predicate that is done as soon as the value is not the zero value.
func Truthy[T comparable](fn func() (T, error)) Predicate[T] {
	return func() (T, bool, error) {
		var zero T
		value, err := fn()
		if err != nil {
			return zero, false, err
		}
		return value, value != zero, nil
	}
}

// IgnoreErrors wraps a Predicate so that errors for which retryable returns true are treated as "not done yet".
// If retryable is nil, every error is ignored.
func IgnoreErrors[T any](log logr.Logger, predicate Predicate[T], retryable func(error) bool) Predicate[T] {
	return func() (T, bool, error) {
		value, done, err := predicate()
		if err != nil {
			if retryable == nil || retryable(err) {
				log.V(1).Info("Ignoring error while waiting", "error", err.Error())
				var zero T
				return zero, false, nil
			}
			return value, false, err
		}
		return value, done, nil
	}
}

// IgnoreConditionErrors is IgnoreErrors for a Condition.
func IgnoreConditionErrors(log logr.Logger, condition Condition, retryable func(error) bool) Condition {
	predicate := IgnoreErrors(log, func() (struct{}, bool, error) {
		ok, err := condition()
		return struct{}{}, ok, err
	}, retryable)
	return func() (bool, error) {
		_, ok, err := predicate()
		return ok, err
	}
}
