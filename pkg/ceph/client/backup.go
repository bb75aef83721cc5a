// SPDX-FileCopyrightText: SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"net/http"

	"github.com/cjjingchen/avocado-cloudtest-sub000/pkg/ceph"
)

const remoteBackupsPath = "remote_backups"

// ListRemoteBackups lists the remote backups of a cluster.
func (c *Client) ListRemoteBackups(ctx context.Context, clusterID string) ([]ceph.RemoteBackup, error) {
	return list[ceph.RemoteBackup](ctx, c, ceph.ResourceRemoteBackup, clustersPath, clusterID, remoteBackupsPath)
}

// GetRemoteBackup returns a remote backup.
func (c *Client) GetRemoteBackup(ctx context.Context, clusterID, id string) (*ceph.RemoteBackup, error) {
	return get[ceph.RemoteBackup](ctx, c, ceph.ResourceRemoteBackup, clustersPath, clusterID, remoteBackupsPath, id)
}

// CreateRemoteBackup starts a backup of the snapshot backup.SnapshotID to the cluster backup.RemoteClusterID.
func (c *Client) CreateRemoteBackup(ctx context.Context, clusterID string, backup *ceph.RemoteBackup) (*ceph.RemoteBackup, error) {
	return send(ctx, c, http.MethodPost, ceph.ResourceRemoteBackup, backup, clustersPath, clusterID, remoteBackupsPath)
}

// RestoreRemoteBackup starts restoring a remote backup. The backup is in status restoring until it is done.
func (c *Client) RestoreRemoteBackup(ctx context.Context, clusterID, id string) error {
	return c.action(ctx, clustersPath, clusterID, remoteBackupsPath, id, "restore")
}
