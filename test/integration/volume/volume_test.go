// SPDX-FileCopyrightText: SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package volume_test

import (
	"context"

	"github.com/gophercloud/gophercloud/v2/openstack/blockstorage/v3/snapshots"
	"github.com/gophercloud/gophercloud/v2/openstack/blockstorage/v3/volumes"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"k8s.io/utils/ptr"

	"github.com/cjjingchen/avocado-cloudtest-sub000/pkg/apis/config"
	"github.com/cjjingchen/avocado-cloudtest-sub000/pkg/openstack"
	openstackclient "github.com/cjjingchen/avocado-cloudtest-sub000/pkg/openstack/client"
	"github.com/cjjingchen/avocado-cloudtest-sub000/pkg/utils"
	"github.com/cjjingchen/avocado-cloudtest-sub000/test/integration/framework"
)

var _ = Describe("Volume lifecycle", Ordered, func() {
	var (
		os         *framework.OpenStack
		serverID   string
		volumeID   string
		snapshotID string
	)

	BeforeAll(func(ctx context.Context) {
		os = f.NewOpenStack(ctx)
		serverID = os.CreateServer(ctx).ID
	})

	It("should create a volume", func(ctx context.Context) {
		volume, err := os.BlockStorage.CreateVolume(ctx, volumes.CreateOpts{
			Name:             utils.ResourceName("volume"),
			Size:             ptr.Deref(f.Config.OpenStack.VolumeSize, config.DefaultVolumeSize),
			AvailabilityZone: f.Config.OpenStack.AvailabilityZone,
		})
		Expect(err).NotTo(HaveOccurred())
		volumeID = volume.ID
		f.Cleanup("volume "+volume.Name, func(ctx context.Context) error {
			if err := openstackclient.IgnoreNotFoundError(os.BlockStorage.DeleteVolume(ctx, volumeID)); err != nil {
				return err
			}
			return os.Waiter.WaitForVolumeDeleted(ctx, os.BlockStorage, volumeID)
		})

		_, err = os.Waiter.WaitForVolumeStatus(ctx, os.BlockStorage, volumeID, openstack.VolumeStatusAvailable)
		Expect(err).NotTo(HaveOccurred())
	})

	It("should attach the volume", func(ctx context.Context) {
		_, err := os.Compute.AttachVolume(ctx, serverID, volumeID)
		Expect(err).NotTo(HaveOccurred())

		volume, err := os.Waiter.WaitForVolumeStatus(ctx, os.BlockStorage, volumeID, openstack.VolumeStatusInUse)
		Expect(err).NotTo(HaveOccurred())
		Expect(volume.Attachments).To(ContainElement(HaveField("ServerID", serverID)))
	})

	It("should detach the volume", func(ctx context.Context) {
		Expect(os.Compute.DetachVolume(ctx, serverID, volumeID)).To(Succeed())

		_, err := os.Waiter.WaitForVolumeStatus(ctx, os.BlockStorage, volumeID, openstack.VolumeStatusAvailable)
		Expect(err).NotTo(HaveOccurred())
	})

	It("should snapshot the volume", func(ctx context.Context) {
		snapshot, err := os.BlockStorage.CreateSnapshot(ctx, snapshots.CreateOpts{
			Name:     utils.ResourceName("snapshot"),
			VolumeID: volumeID,
		})
		Expect(err).NotTo(HaveOccurred())
		snapshotID = snapshot.ID
		f.Cleanup("snapshot "+snapshot.Name, func(ctx context.Context) error {
			if err := openstackclient.IgnoreNotFoundError(os.BlockStorage.DeleteSnapshot(ctx, snapshotID)); err != nil {
				return err
			}
			return os.Waiter.WaitForSnapshotDeleted(ctx, os.BlockStorage, snapshotID)
		})

		snapshot, err = os.Waiter.WaitForSnapshotStatus(ctx, os.BlockStorage, snapshotID, openstack.VolumeStatusAvailable)
		Expect(err).NotTo(HaveOccurred())
		Expect(snapshot.VolumeID).To(Equal(volumeID))
	})

	It("should delete the snapshot and the volume", func(ctx context.Context) {
		Expect(os.BlockStorage.DeleteSnapshot(ctx, snapshotID)).To(Succeed())
		Expect(os.Waiter.WaitForSnapshotDeleted(ctx, os.BlockStorage, snapshotID)).To(Succeed())

		Expect(os.BlockStorage.DeleteVolume(ctx, volumeID)).To(Succeed())
		Expect(os.Waiter.WaitForVolumeDeleted(ctx, os.BlockStorage, volumeID)).To(Succeed())
	})
})
