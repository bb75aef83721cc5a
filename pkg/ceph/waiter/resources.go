// SPDX-FileCopyrightText: SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package waiter

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/cjjingchen/avocado-cloudtest-sub000/pkg/ceph"
	"github.com/cjjingchen/avocado-cloudtest-sub000/pkg/wait"
)

// WaitForClusterStatus waits until the cluster reaches the given status, e.g. deployed after DeployCluster.
func (w *Waiter) WaitForClusterStatus(ctx context.Context, clusterID, status string) (*ceph.Cluster, error) {
	return waitForStatus(ctx, w, statusWait[ceph.Cluster]{
		kind:     "cluster",
		id:       clusterID,
		want:     status,
		timeout:  w.cfg.Timeouts.ClusterDeploy,
		get:      func() (*ceph.Cluster, error) { return w.client.GetCluster(ctx, clusterID) },
		statusOf: func(c *ceph.Cluster) string { return c.Status },
	})
}

// WaitForPoolCreated waits until the pool exists and is available.
func (w *Waiter) WaitForPoolCreated(ctx context.Context, clusterID, id string) (*ceph.Pool, error) {
	return waitForStatus(ctx, w, statusWait[ceph.Pool]{
		kind:     "pool",
		id:       id,
		want:     ceph.StatusAvailable,
		timeout:  w.cfg.Timeouts.CephResource,
		pending:  true,
		get:      func() (*ceph.Pool, error) { return w.client.GetPool(ctx, clusterID, id) },
		statusOf: func(p *ceph.Pool) string { return p.Status },
	})
}

// WaitForPoolDeleted waits until the pool is gone.
func (w *Waiter) WaitForPoolDeleted(ctx context.Context, clusterID, id string) error {
	return w.waitForDeletion(ctx, "pool", id, func() (string, error) {
		pool, err := w.client.GetPool(ctx, clusterID, id)
		if err != nil {
			return "", err
		}
		return pool.Status, nil
	})
}

// WaitForServerStatus waits until the storage server reaches the given status.
func (w *Waiter) WaitForServerStatus(ctx context.Context, clusterID, id, status string) (*ceph.Server, error) {
	return waitForStatus(ctx, w, statusWait[ceph.Server]{
		kind:     "server",
		id:       id,
		want:     status,
		timeout:  w.cfg.Timeouts.CephResource,
		get:      func() (*ceph.Server, error) { return w.client.GetServer(ctx, clusterID, id) },
		statusOf: func(s *ceph.Server) string { return s.Status },
	})
}

// WaitForOSDState waits until the OSD is up or down.
func (w *Waiter) WaitForOSDState(ctx context.Context, clusterID, id, state string) (*ceph.OSD, error) {
	return w.waitForOSDState(ctx, clusterID, id, state)
}

func (w *Waiter) waitForOSDState(ctx context.Context, clusterID, id, state string, opts ...wait.Option) (*ceph.OSD, error) {
	return waitForStatus(ctx, w, statusWait[ceph.OSD]{
		kind:     "osd",
		id:       id,
		want:     state,
		timeout:  w.cfg.Timeouts.OSDState,
		get:      func() (*ceph.OSD, error) { return w.client.GetOSD(ctx, clusterID, id) },
		statusOf: func(o *ceph.OSD) string { return o.State },
	}, opts...)
}

// WaitForOSDsState waits concurrently until all given OSDs reached the given state.
func (w *Waiter) WaitForOSDsState(ctx context.Context, clusterID, state string, ids ...string) ([]*ceph.OSD, error) {
	result := make([]*ceph.OSD, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			osd, err := w.WaitForOSDState(ctx, clusterID, id, state)
			if err != nil {
				return err
			}
			result[i] = osd
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}

// WaitForRBDCreated waits until the RBD exists and is available.
func (w *Waiter) WaitForRBDCreated(ctx context.Context, clusterID, id string) (*ceph.RBD, error) {
	return waitForStatus(ctx, w, statusWait[ceph.RBD]{
		kind:     "rbd",
		id:       id,
		want:     ceph.StatusAvailable,
		timeout:  w.cfg.Timeouts.CephResource,
		pending:  true,
		get:      func() (*ceph.RBD, error) { return w.client.GetRBD(ctx, clusterID, id) },
		statusOf: func(r *ceph.RBD) string { return r.Status },
	})
}

// WaitForRBDDeleted waits until the RBD is gone.
func (w *Waiter) WaitForRBDDeleted(ctx context.Context, clusterID, id string) error {
	return w.waitForDeletion(ctx, "rbd", id, func() (string, error) {
		rbd, err := w.client.GetRBD(ctx, clusterID, id)
		if err != nil {
			return "", err
		}
		return rbd.Status, nil
	})
}

// WaitForSnapshotStatus waits until the RBD snapshot reaches the given status.
func (w *Waiter) WaitForSnapshotStatus(ctx context.Context, clusterID, id, status string) (*ceph.Snapshot, error) {
	return waitForStatus(ctx, w, statusWait[ceph.Snapshot]{
		kind:     "snapshot",
		id:       id,
		want:     status,
		timeout:  w.cfg.Timeouts.CephResource,
		pending:  true,
		get:      func() (*ceph.Snapshot, error) { return w.client.GetSnapshot(ctx, clusterID, id) },
		statusOf: func(s *ceph.Snapshot) string { return s.Status },
	})
}

// WaitForRemoteBackupStatus waits until the remote backup reaches the given status, e.g. available after a
// backup or restore.
func (w *Waiter) WaitForRemoteBackupStatus(ctx context.Context, clusterID, id, status string) (*ceph.RemoteBackup, error) {
	return waitForStatus(ctx, w, statusWait[ceph.RemoteBackup]{
		kind:     "remote backup",
		id:       id,
		want:     status,
		timeout:  w.cfg.Timeouts.RemoteBackup,
		pending:  true,
		get:      func() (*ceph.RemoteBackup, error) { return w.client.GetRemoteBackup(ctx, clusterID, id) },
		statusOf: func(b *ceph.RemoteBackup) string { return b.Status },
	})
}
