// SPDX-FileCopyrightText: SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package waiter

import (
	"context"
	"fmt"
	"strings"

	"github.com/gophercloud/gophercloud/v2/openstack/blockstorage/v3/snapshots"
	"github.com/gophercloud/gophercloud/v2/openstack/blockstorage/v3/volumes"

	openstackclient "github.com/cjjingchen/avocado-cloudtest-sub000/pkg/openstack/client"
	"github.com/cjjingchen/avocado-cloudtest-sub000/pkg/wait"
)

// isErrorStatus reports whether a cinder status is one of the error statuses, e.g. error or error_deleting.
func isErrorStatus(status, expected string) bool {
	return strings.HasPrefix(status, "error") && status != expected
}

// WaitForVolumeStatus waits until the volume reaches the given status. Error statuses fail the wait.
func (w *Waiter) WaitForVolumeStatus(ctx context.Context, blockStorage openstackclient.BlockStorage, id, status string) (*volumes.Volume, error) {
	log := w.log.WithValues("volume", id)

	return wait.Require(ctx, log, w.policy(w.cfg.Timeouts.Volume), fmt.Sprintf("volume %s to reach status %s", id, status),
		wait.IgnoreErrors(log, func() (*volumes.Volume, bool, error) {
			volume, err := blockStorage.GetVolume(ctx, id)
			if err != nil {
				return nil, false, err
			}
			if volume.Status == status {
				return volume, true, nil
			}
			if isErrorStatus(volume.Status, status) {
				return nil, false, &wait.ResourceFailedError{Kind: "volume", ID: id, Status: volume.Status}
			}
			return nil, false, nil
		}, isTransient), w.opts...)
}

// WaitForVolumeDeleted waits until the volume is gone.
func (w *Waiter) WaitForVolumeDeleted(ctx context.Context, blockStorage openstackclient.BlockStorage, id string) error {
	log := w.log.WithValues("volume", id)

	return wait.RequireCondition(ctx, log, w.policy(w.cfg.Timeouts.Volume), fmt.Sprintf("volume %s to be deleted", id),
		wait.IgnoreConditionErrors(log, func() (bool, error) {
			volume, err := blockStorage.GetVolume(ctx, id)
			if err != nil {
				if openstackclient.IsNotFoundError(err) {
					return true, nil
				}
				return false, err
			}
			if isErrorStatus(volume.Status, "") {
				return false, &wait.ResourceFailedError{Kind: "volume", ID: id, Status: volume.Status}
			}
			return false, nil
		}, isTransient), w.opts...)
}

// WaitForSnapshotStatus waits until the volume snapshot reaches the given status. Error statuses fail the wait.
func (w *Waiter) WaitForSnapshotStatus(ctx context.Context, blockStorage openstackclient.BlockStorage, id, status string) (*snapshots.Snapshot, error) {
	log := w.log.WithValues("snapshot", id)

	return wait.Require(ctx, log, w.policy(w.cfg.Timeouts.Volume), fmt.Sprintf("volume snapshot %s to reach status %s", id, status),
		wait.IgnoreErrors(log, func() (*snapshots.Snapshot, bool, error) {
			snapshot, err := blockStorage.GetSnapshot(ctx, id)
			if err != nil {
				return nil, false, err
			}
			if snapshot.Status == status {
				return snapshot, true, nil
			}
			if isErrorStatus(snapshot.Status, status) {
				return nil, false, &wait.ResourceFailedError{Kind: "volume snapshot", ID: id, Status: snapshot.Status}
			}
			return nil, false, nil
		}, isTransient), w.opts...)
}

// WaitForSnapshotDeleted waits until the volume snapshot is gone.
func (w *Waiter) WaitForSnapshotDeleted(ctx context.Context, blockStorage openstackclient.BlockStorage, id string) error {
	log := w.log.WithValues("snapshot", id)

	return wait.RequireCondition(ctx, log, w.policy(w.cfg.Timeouts.Volume), fmt.Sprintf("volume snapshot %s to be deleted", id),
		wait.IgnoreConditionErrors(log, func() (bool, error) {
			snapshot, err := blockStorage.GetSnapshot(ctx, id)
			if err != nil {
				if openstackclient.IsNotFoundError(err) {
					return true, nil
				}
				return false, err
			}
			if isErrorStatus(snapshot.Status, "") {
				return false, &wait.ResourceFailedError{Kind: "volume snapshot", ID: id, Status: snapshot.Status}
			}
			return false, nil
		}, isTransient), w.opts...)
}
