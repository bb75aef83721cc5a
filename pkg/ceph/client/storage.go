// SPDX-FileCopyrightText: SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"net/http"

	"github.com/cjjingchen/avocado-cloudtest-sub000/pkg/ceph"
)

const (
	poolsPath     = "pools"
	rbdsPath      = "rbds"
	snapshotsPath = "snapshots"
)

// ListPools lists the pools of a cluster.
func (c *Client) ListPools(ctx context.Context, clusterID string) ([]ceph.Pool, error) {
	return list[ceph.Pool](ctx, c, ceph.ResourcePool, clustersPath, clusterID, poolsPath)
}

// GetPool returns a pool.
func (c *Client) GetPool(ctx context.Context, clusterID, id string) (*ceph.Pool, error) {
	return get[ceph.Pool](ctx, c, ceph.ResourcePool, clustersPath, clusterID, poolsPath, id)
}

// CreatePool creates a pool.
func (c *Client) CreatePool(ctx context.Context, clusterID string, pool *ceph.Pool) (*ceph.Pool, error) {
	return send(ctx, c, http.MethodPost, ceph.ResourcePool, pool, clustersPath, clusterID, poolsPath)
}

// UpdatePool updates the pool with the id pool.ID.
func (c *Client) UpdatePool(ctx context.Context, clusterID string, pool *ceph.Pool) (*ceph.Pool, error) {
	return send(ctx, c, http.MethodPut, ceph.ResourcePool, pool, clustersPath, clusterID, poolsPath, pool.ID)
}

// DeletePool deletes a pool.
func (c *Client) DeletePool(ctx context.Context, clusterID, id string) error {
	return c.delete(ctx, clustersPath, clusterID, poolsPath, id)
}

// ListRBDs lists the RBDs of a cluster.
func (c *Client) ListRBDs(ctx context.Context, clusterID string) ([]ceph.RBD, error) {
	return list[ceph.RBD](ctx, c, ceph.ResourceRBD, clustersPath, clusterID, rbdsPath)
}

// GetRBD returns an RBD.
func (c *Client) GetRBD(ctx context.Context, clusterID, id string) (*ceph.RBD, error) {
	return get[ceph.RBD](ctx, c, ceph.ResourceRBD, clustersPath, clusterID, rbdsPath, id)
}

// CreateRBD creates an RBD in the pool rbd.PoolID.
func (c *Client) CreateRBD(ctx context.Context, clusterID string, rbd *ceph.RBD) (*ceph.RBD, error) {
	return send(ctx, c, http.MethodPost, ceph.ResourceRBD, rbd, clustersPath, clusterID, rbdsPath)
}

// ResizeRBD changes the size of an RBD. size is in bytes.
func (c *Client) ResizeRBD(ctx context.Context, clusterID, id string, size int64) (*ceph.RBD, error) {
	return send(ctx, c, http.MethodPut, ceph.ResourceRBD, &ceph.RBD{ID: id, Size: size}, clustersPath, clusterID, rbdsPath, id)
}

// DeleteRBD deletes an RBD.
func (c *Client) DeleteRBD(ctx context.Context, clusterID, id string) error {
	return c.delete(ctx, clustersPath, clusterID, rbdsPath, id)
}

// ListSnapshots lists the RBD snapshots of a cluster.
func (c *Client) ListSnapshots(ctx context.Context, clusterID string) ([]ceph.Snapshot, error) {
	return list[ceph.Snapshot](ctx, c, ceph.ResourceSnapshot, clustersPath, clusterID, snapshotsPath)
}

// GetSnapshot returns an RBD snapshot.
func (c *Client) GetSnapshot(ctx context.Context, clusterID, id string) (*ceph.Snapshot, error) {
	return get[ceph.Snapshot](ctx, c, ceph.ResourceSnapshot, clustersPath, clusterID, snapshotsPath, id)
}

// CreateSnapshot creates a snapshot of the RBD snapshot.RBDID.
func (c *Client) CreateSnapshot(ctx context.Context, clusterID string, snapshot *ceph.Snapshot) (*ceph.Snapshot, error) {
	return send(ctx, c, http.MethodPost, ceph.ResourceSnapshot, snapshot, clustersPath, clusterID, snapshotsPath)
}

// DeleteSnapshot deletes an RBD snapshot.
func (c *Client) DeleteSnapshot(ctx context.Context, clusterID, id string) error {
	return c.delete(ctx, clustersPath, clusterID, snapshotsPath, id)
}

// RollbackSnapshot rolls the RBD of a snapshot back to the snapshot.
func (c *Client) RollbackSnapshot(ctx context.Context, clusterID, id string) error {
	return c.action(ctx, clustersPath, clusterID, snapshotsPath, id, "rollback")
}
