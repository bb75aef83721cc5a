// SPDX-FileCopyrightText: SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

// Package wait polls caller supplied predicates until they report a result or a deadline elapses.
// It is used to coordinate with eventually consistent remote systems such as the OpenStack APIs
// or the Ceph management API.
package wait

import (
	"context"
	"fmt"
	"time"

	"github.com/go-logr/logr"
	"k8s.io/utils/clock"
)

// DefaultPollInterval is the interval between two unsuccessful predicate invocations if the policy does not set one.
const DefaultPollInterval = 5 * time.Second

// Policy is the timing policy of a single wait. It is not modified by Poll.
type Policy struct {
	// Timeout is the maximum duration, measured from the start of the wait, during which the predicate is polled.
	// A timeout of zero means the predicate is invoked exactly once after the initial delay.
	Timeout time.Duration
	// InitialDelay is slept before the first predicate invocation.
	InitialDelay time.Duration
	// PollInterval is slept between two unsuccessful predicate invocations. Defaults to DefaultPollInterval.
	PollInterval time.Duration
}

// Validate checks that the policy can be used for polling.
func (p Policy) Validate() error {
	if p.InitialDelay < 0 {
		return fmt.Errorf("initial delay must not be negative, got %s", p.InitialDelay)
	}
	if p.PollInterval < 0 {
		return fmt.Errorf("poll interval must be positive, got %s", p.PollInterval)
	}
	return nil
}

func (p Policy) complete() (Policy, error) {
	if err := p.Validate(); err != nil {
		return p, err
	}
	if p.PollInterval == 0 {
		p.PollInterval = DefaultPollInterval
	}
	// a negative timeout behaves like a zero timeout: the predicate is still invoked once.
	if p.Timeout < 0 {
		p.Timeout = 0
	}
	return p, nil
}

// Predicate is evaluated on every poll. It returns
//   - (_, false, nil) while the awaited condition is not met yet,
//   - (value, true, nil) once it is met, value becomes the result of the wait,
//   - (_, _, err) if the condition can never be met; the wait stops and returns err.
type Predicate[T any] func() (T, bool, error)

// Condition is a predicate without a result value.
type Condition func() (bool, error)

// Outcome describes how a wait ended.
type Outcome string

const (
	// OutcomeSucceeded is reported when the predicate returned a result.
	OutcomeSucceeded Outcome = "succeeded"
	// OutcomeTimedOut is reported when the deadline elapsed before the predicate returned a result.
	OutcomeTimedOut Outcome = "timed_out"
	// OutcomeFailed is reported when the predicate returned an error.
	OutcomeFailed Outcome = "failed"
	// OutcomeCanceled is reported when the context was canceled while sleeping.
	OutcomeCanceled Outcome = "canceled"
)

// Observer is notified once per wait after it ended.
type Observer interface {
	ObserveWait(description string, outcome Outcome, attempts int, elapsed time.Duration)
}

// ObserverFunc is a function that implements Observer.
type ObserverFunc func(description string, outcome Outcome, attempts int, elapsed time.Duration)

// ObserveWait implements Observer.
func (f ObserverFunc) ObserveWait(description string, outcome Outcome, attempts int, elapsed time.Duration) {
	f(description, outcome, attempts, elapsed)
}

type options struct {
	clock     clock.Clock
	observers []Observer
}

// Option modifies how Poll measures time and reports its outcome.
type Option func(*options)

// WithClock makes Poll use the given clock for sleeping and for deadline computation.
// Clocks other than clock.RealClock are slept on with Sleep, so canceling ctx is only noticed between sleeps.
func WithClock(c clock.Clock) Option {
	return func(o *options) {
		o.clock = c
	}
}

// WithObserver registers an Observer for the wait.
func WithObserver(observer Observer) Option {
	return func(o *options) {
		if observer != nil {
			o.observers = append(o.observers, observer)
		}
	}
}

func newOptions(opts []Option) *options {
	o := &options{clock: clock.RealClock{}}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *options) observe(description string, outcome Outcome, attempts int, elapsed time.Duration) {
	for _, observer := range o.observers {
		observer.ObserveWait(description, outcome, attempts, elapsed)
	}
}

// Poll invokes predicate until it returns a result, returns an error or the policy's timeout elapses.
// It returns (value, true, nil) on success and (zero, false, nil) on timeout. Errors returned by the predicate
// are passed through unchanged and stop polling immediately. The predicate is invoked at least once unless ctx
// is already done when Poll is called, in which case it returns ctx.Err() without invoking the predicate.
//
// The deadline is checked after every unsuccessful invocation, so a wait lasts at most
// InitialDelay + Timeout + PollInterval. Canceling ctx interrupts sleeping and returns ctx.Err().
func Poll[T any](ctx context.Context, log logr.Logger, policy Policy, description string, predicate Predicate[T], opts ...Option) (T, bool, error) {
	value, done, _, err := poll(ctx, log, policy, description, predicate, opts...)
	return value, done, err
}

func poll[T any](ctx context.Context, log logr.Logger, policy Policy, description string, predicate Predicate[T], opts ...Option) (T, bool, int, error) {
	var zero T

	policy, err := policy.complete()
	if err != nil {
		return zero, false, 0, err
	}

	o := newOptions(opts)
	start := o.clock.Now()
	deadline := start.Add(policy.Timeout)

	if err := sleep(ctx, o.clock, policy.InitialDelay); err != nil {
		o.observe(description, OutcomeCanceled, 0, o.clock.Since(start))
		return zero, false, 0, err
	}

	for attempt := 1; ; attempt++ {
		log.V(1).Info("Waiting", "description", description, "attempt", attempt, "elapsed", o.clock.Since(start).Round(time.Millisecond))

		value, done, err := predicate()
		if err != nil {
			o.observe(description, OutcomeFailed, attempt, o.clock.Since(start))
			return zero, false, attempt, err
		}
		if done {
			log.Info("Wait succeeded", "description", description, "attempts", attempt, "elapsed", o.clock.Since(start).Round(time.Millisecond))
			o.observe(description, OutcomeSucceeded, attempt, o.clock.Since(start))
			return value, true, attempt, nil
		}

		if o.clock.Now().Before(deadline) {
			if err := sleep(ctx, o.clock, policy.PollInterval); err != nil {
				o.observe(description, OutcomeCanceled, attempt, o.clock.Since(start))
				return zero, false, attempt, err
			}
		}

		if !o.clock.Now().Before(deadline) {
			log.Info("Wait timed out", "description", description, "attempts", attempt, "timeout", policy.Timeout)
			o.observe(description, OutcomeTimedOut, attempt, o.clock.Since(start))
			return zero, false, attempt, nil
		}
	}
}

// Until polls a Condition. It returns true if the condition was met and false on timeout.
func Until(ctx context.Context, log logr.Logger, policy Policy, description string, condition Condition, opts ...Option) (bool, error) {
	_, done, err := Poll(ctx, log, policy, description, func() (struct{}, bool, error) {
		ok, err := condition()
		return struct{}{}, ok, err
	}, opts...)
	return done, err
}

// Require is like Poll but reports a timeout as *TimeoutError.
func Require[T any](ctx context.Context, log logr.Logger, policy Policy, description string, predicate Predicate[T], opts ...Option) (T, error) {
	value, done, attempts, err := poll(ctx, log, policy, description, predicate, opts...)
	if err != nil {
		return value, err
	}
	if !done {
		return value, &TimeoutError{Description: description, Timeout: policy.Timeout, Attempts: attempts}
	}
	return value, nil
}

// RequireCondition is like Until but reports a timeout as *TimeoutError.
func RequireCondition(ctx context.Context, log logr.Logger, policy Policy, description string, condition Condition, opts ...Option) error {
	_, err := Require(ctx, log, policy, description, func() (struct{}, bool, error) {
		ok, err := condition()
		return struct{}{}, ok, err
	}, opts...)
	return err
}

func sleep(ctx context.Context, c clock.Clock, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	// only the real clock can be raced against ctx, other clocks advance on Sleep
	if !isRealClock(c) || ctx.Done() == nil {
		if err := ctx.Err(); err != nil {
			return err
		}
		c.Sleep(d)
		return ctx.Err()
	}

	timer := c.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C():
		return nil
	}
}

func isRealClock(c clock.Clock) bool {
	switch c.(type) {
	case clock.RealClock, *clock.RealClock:
		return true
	}
	return false
}
