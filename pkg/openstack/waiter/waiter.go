// SPDX-FileCopyrightText: SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

// Package waiter waits for OpenStack resources to reach a state.
package waiter

import (
	"net/http"

	"github.com/go-logr/logr"
	"github.com/gophercloud/gophercloud/v2"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/cjjingchen/avocado-cloudtest-sub000/pkg/apis/config"
	"github.com/cjjingchen/avocado-cloudtest-sub000/pkg/wait"
)

// Waiter waits for OpenStack resources using the timeouts of a test configuration.
type Waiter struct {
	log       logr.Logger
	cfg       *config.TestConfiguration
	opts      []wait.Option
	policyFor func(timeout *metav1.Duration) wait.Policy
}

// New creates a new Waiter. The options are passed to every wait, e.g. to record metrics.
func New(log logr.Logger, cfg *config.TestConfiguration, opts ...wait.Option) *Waiter {
	return &Waiter{
		log:  log.WithName("openstack-waiter"),
		cfg:  cfg,
		opts: opts,
	}
}

// WithPolicy returns a copy of the Waiter that computes the policy of every wait with fn instead of the
// configured timeouts, e.g. to apply command line overrides.
func (w *Waiter) WithPolicy(fn func(timeout *metav1.Duration) wait.Policy) *Waiter {
	c := *w
	c.policyFor = fn
	return &c
}

func (w *Waiter) policy(timeout *metav1.Duration) wait.Policy {
	if w.policyFor != nil {
		return w.policyFor(timeout)
	}
	return w.cfg.Policy(timeout)
}

// isTransient reports whether an API error is a temporary server side failure that should not end a wait.
func isTransient(err error) bool {
	for _, code := range []int{http.StatusInternalServerError, http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout} {
		if gophercloud.ResponseCodeIs(err, code) {
			return true
		}
	}
	return false
}
