// SPDX-FileCopyrightText: SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"

	"github.com/gophercloud/gophercloud/v2/openstack/blockstorage/v3/snapshots"
	"github.com/gophercloud/gophercloud/v2/openstack/blockstorage/v3/volumes"
)

// CreateVolume creates a volume.
func (c *BlockStorageClient) CreateVolume(ctx context.Context, opts volumes.CreateOpts) (*volumes.Volume, error) {
	return volumes.Create(ctx, c.client, opts, nil).Extract()
}

// GetVolume returns the volume with the given id.
func (c *BlockStorageClient) GetVolume(ctx context.Context, id string) (*volumes.Volume, error) {
	return volumes.Get(ctx, c.client, id).Extract()
}

// DeleteVolume deletes the volume with the given id.
func (c *BlockStorageClient) DeleteVolume(ctx context.Context, id string) error {
	return volumes.Delete(ctx, c.client, id, volumes.DeleteOpts{}).ExtractErr()
}

// ListVolumes lists all volumes filtered by opts.
func (c *BlockStorageClient) ListVolumes(ctx context.Context, opts volumes.ListOpts) ([]volumes.Volume, error) {
	pages, err := volumes.List(c.client, opts).AllPages(ctx)
	if err != nil {
		return nil, err
	}
	return volumes.ExtractVolumes(pages)
}

// CreateSnapshot creates a volume snapshot.
func (c *BlockStorageClient) CreateSnapshot(ctx context.Context, opts snapshots.CreateOpts) (*snapshots.Snapshot, error) {
	return snapshots.Create(ctx, c.client, opts).Extract()
}

// GetSnapshot returns the volume snapshot with the given id.
func (c *BlockStorageClient) GetSnapshot(ctx context.Context, id string) (*snapshots.Snapshot, error) {
	return snapshots.Get(ctx, c.client, id).Extract()
}

// DeleteSnapshot deletes the volume snapshot with the given id.
func (c *BlockStorageClient) DeleteSnapshot(ctx context.Context, id string) error {
	return snapshots.Delete(ctx, c.client, id).ExtractErr()
}
