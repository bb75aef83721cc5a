// SPDX-FileCopyrightText: SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package waiter

import (
	"context"
	"fmt"
	"strings"

	"github.com/gophercloud/gophercloud/v2/openstack/compute/v2/servers"
	"golang.org/x/sync/errgroup"

	"github.com/cjjingchen/avocado-cloudtest-sub000/pkg/openstack"
	openstackclient "github.com/cjjingchen/avocado-cloudtest-sub000/pkg/openstack/client"
	"github.com/cjjingchen/avocado-cloudtest-sub000/pkg/wait"
)

func serverFailed(server *servers.Server) error {
	return &wait.ResourceFailedError{Kind: "server", ID: server.ID, Status: server.Status, Reason: server.Fault.Message}
}

// WaitForServerStatus waits until the server reaches the given status. A server in status ERROR fails the wait
// unless ERROR is awaited.
func (w *Waiter) WaitForServerStatus(ctx context.Context, compute openstackclient.Compute, id, status string) (*servers.Server, error) {
	log := w.log.WithValues("server", id)

	return wait.Require(ctx, log, w.policy(w.cfg.Timeouts.ServerActive), fmt.Sprintf("server %s to reach status %s", id, status),
		wait.IgnoreErrors(log, func() (*servers.Server, bool, error) {
			server, err := compute.GetServer(ctx, id)
			if err != nil {
				return nil, false, err
			}
			if strings.EqualFold(server.Status, status) {
				return server, true, nil
			}
			if strings.EqualFold(server.Status, openstack.ServerStatusError) {
				return nil, false, serverFailed(server)
			}
			log.V(1).Info("Server not in expected status yet", "status", server.Status, "expected", status)
			return nil, false, nil
		}, isTransient), w.opts...)
}

// WaitForServersStatus waits concurrently until all given servers reached the given status.
func (w *Waiter) WaitForServersStatus(ctx context.Context, compute openstackclient.Compute, status string, ids ...string) ([]*servers.Server, error) {
	result := make([]*servers.Server, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			server, err := w.WaitForServerStatus(ctx, compute, id, status)
			if err != nil {
				return err
			}
			result[i] = server
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}

// WaitForServerDeleted waits until the server is gone.
func (w *Waiter) WaitForServerDeleted(ctx context.Context, compute openstackclient.Compute, id string) error {
	log := w.log.WithValues("server", id)

	return wait.RequireCondition(ctx, log, w.policy(w.cfg.Timeouts.ServerDeleted), fmt.Sprintf("server %s to be deleted", id),
		wait.IgnoreConditionErrors(log, func() (bool, error) {
			server, err := compute.GetServer(ctx, id)
			if err != nil {
				if openstackclient.IsNotFoundError(err) {
					return true, nil
				}
				return false, err
			}
			switch strings.ToUpper(server.Status) {
			case openstack.ServerStatusDeleted:
				return true, nil
			case openstack.ServerStatusError:
				return false, serverFailed(server)
			}
			return false, nil
		}, isTransient), w.opts...)
}

// WaitForServerHostChange waits until a migrated server runs on a host other than oldHost and is no longer migrating.
// It returns the new host.
func (w *Waiter) WaitForServerHostChange(ctx context.Context, compute openstackclient.Compute, id, oldHost string) (string, error) {
	log := w.log.WithValues("server", id, "oldHost", oldHost)

	return wait.Require(ctx, log, w.policy(w.cfg.Timeouts.Migration), fmt.Sprintf("server %s to leave host %s", id, oldHost),
		wait.IgnoreErrors(log, func() (string, bool, error) {
			server, err := compute.GetServer(ctx, id)
			if err != nil {
				return "", false, err
			}
			switch strings.ToUpper(server.Status) {
			case openstack.ServerStatusError:
				return "", false, serverFailed(server)
			case openstack.ServerStatusMigrating, openstack.ServerStatusResize:
				return "", false, nil
			}

			host, err := compute.GetServerHost(ctx, id)
			if err != nil {
				return "", false, err
			}
			if host == oldHost {
				return "", false, nil
			}
			return host, true, nil
		}, isTransient), w.opts...)
}
