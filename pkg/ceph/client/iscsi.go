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
	iscsiTargetsPath = "iscsi_targets"
	iscsiLunsPath    = "luns"
)

// ListISCSITargets lists the iSCSI targets of a cluster.
func (c *Client) ListISCSITargets(ctx context.Context, clusterID string) ([]ceph.ISCSITarget, error) {
	return list[ceph.ISCSITarget](ctx, c, ceph.ResourceISCSITarget, clustersPath, clusterID, iscsiTargetsPath)
}

// CreateISCSITarget creates an iSCSI target.
func (c *Client) CreateISCSITarget(ctx context.Context, clusterID string, target *ceph.ISCSITarget) (*ceph.ISCSITarget, error) {
	return send(ctx, c, http.MethodPost, ceph.ResourceISCSITarget, target, clustersPath, clusterID, iscsiTargetsPath)
}

// DeleteISCSITarget deletes an iSCSI target.
func (c *Client) DeleteISCSITarget(ctx context.Context, clusterID, id string) error {
	return c.delete(ctx, clustersPath, clusterID, iscsiTargetsPath, id)
}

// ListISCSILuns lists the LUNs of an iSCSI target.
func (c *Client) ListISCSILuns(ctx context.Context, clusterID, targetID string) ([]ceph.ISCSILun, error) {
	return list[ceph.ISCSILun](ctx, c, ceph.ResourceISCSILun, clustersPath, clusterID, iscsiTargetsPath, targetID, iscsiLunsPath)
}

// CreateISCSILun exports the RBD lun.RBDID through an iSCSI target.
func (c *Client) CreateISCSILun(ctx context.Context, clusterID, targetID string, lun *ceph.ISCSILun) (*ceph.ISCSILun, error) {
	return send(ctx, c, http.MethodPost, ceph.ResourceISCSILun, lun, clustersPath, clusterID, iscsiTargetsPath, targetID, iscsiLunsPath)
}

// DeleteISCSILun removes a LUN from an iSCSI target.
func (c *Client) DeleteISCSILun(ctx context.Context, clusterID, targetID, id string) error {
	return c.delete(ctx, clustersPath, clusterID, iscsiTargetsPath, targetID, iscsiLunsPath, id)
}
