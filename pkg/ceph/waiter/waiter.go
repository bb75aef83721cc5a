// SPDX-FileCopyrightText: SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

// Package waiter waits for resources of the Ceph management API to reach a state.
package waiter

import (
	"context"
	"fmt"
	"slices"

	"github.com/go-logr/logr"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/cjjingchen/avocado-cloudtest-sub000/pkg/apis/config"
	"github.com/cjjingchen/avocado-cloudtest-sub000/pkg/ceph"
	cephclient "github.com/cjjingchen/avocado-cloudtest-sub000/pkg/ceph/client"
	"github.com/cjjingchen/avocado-cloudtest-sub000/pkg/wait"
)

// Waiter waits for Ceph resources using the timeouts of a test configuration.
type Waiter struct {
	log       logr.Logger
	cfg       *config.TestConfiguration
	client    cephclient.Interface
	opts      []wait.Option
	policyFor func(timeout *metav1.Duration) wait.Policy
}

// New creates a new Waiter for the resources of the given client.
func New(log logr.Logger, cfg *config.TestConfiguration, client cephclient.Interface, opts ...wait.Option) *Waiter {
	return &Waiter{
		log:    log.WithName("ceph-waiter"),
		cfg:    cfg,
		client: client,
		opts:   opts,
	}
}

// WithPolicy returns a copy of the Waiter that computes the policy of every wait with fn instead of the
// configured timeouts.
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

// statusWait describes a wait for a resource with a status field.
type statusWait[T any] struct {
	kind    string
	id      string
	want    string
	timeout *metav1.Duration
	// pending ignores not found errors, e.g. while a resource is being created.
	pending  bool
	get      func() (*T, error)
	statusOf func(*T) string
}

func waitForStatus[T any](ctx context.Context, w *Waiter, sw statusWait[T], extra ...wait.Option) (*T, error) {
	log := w.log.WithValues("kind", sw.kind, "id", sw.id)

	retryable := cephclient.IsServerError
	if sw.pending {
		retryable = func(err error) bool {
			return cephclient.IsServerError(err) || cephclient.IsNotFound(err)
		}
	}

	return wait.Require(ctx, log, w.policy(sw.timeout), fmt.Sprintf("%s %s to reach status %s", sw.kind, sw.id, sw.want),
		wait.IgnoreErrors(log, func() (*T, bool, error) {
			resource, err := sw.get()
			if err != nil {
				return nil, false, err
			}
			current := sw.statusOf(resource)
			if current == sw.want {
				return resource, true, nil
			}
			if current == ceph.StatusError {
				return nil, false, &wait.ResourceFailedError{Kind: sw.kind, ID: sw.id, Status: current}
			}
			log.V(1).Info("Resource not in expected status yet", "status", current, "expected", sw.want)
			return nil, false, nil
		}, retryable), slices.Concat(w.opts, extra)...)
}

func (w *Waiter) waitForDeletion(ctx context.Context, kind, id string, get func() (string, error)) error {
	log := w.log.WithValues("kind", kind, "id", id)

	return wait.RequireCondition(ctx, log, w.policy(w.cfg.Timeouts.CephResource), fmt.Sprintf("%s %s to be deleted", kind, id),
		wait.IgnoreConditionErrors(log, func() (bool, error) {
			status, err := get()
			if err != nil {
				if cephclient.IsNotFound(err) {
					return true, nil
				}
				return false, err
			}
			if status == ceph.StatusError {
				return false, &wait.ResourceFailedError{Kind: kind, ID: id, Status: status}
			}
			return false, nil
		}, cephclient.IsServerError), w.opts...)
}
