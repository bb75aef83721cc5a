// SPDX-FileCopyrightText: SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package ceph_test

import (
	"context"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/cjjingchen/avocado-cloudtest-sub000/pkg/ceph"
	cephclient "github.com/cjjingchen/avocado-cloudtest-sub000/pkg/ceph/client"
	"github.com/cjjingchen/avocado-cloudtest-sub000/pkg/metrics"
	"github.com/cjjingchen/avocado-cloudtest-sub000/pkg/utils"
	"github.com/cjjingchen/avocado-cloudtest-sub000/test/integration/framework"
)

const gib = int64(1) << 30

var _ = Describe("Ceph management API", func() {
	var c *framework.Ceph

	BeforeEach(func() {
		c = f.NewCeph()
	})

	It("should run a deployed cluster with a supported version", func(ctx context.Context) {
		cluster, err := c.Client.GetCluster(ctx, c.ClusterID)
		Expect(err).NotTo(HaveOccurred())

		Expect(cluster.Status).To(Equal(ceph.ClusterStatusDeployed))
		Expect(ceph.CheckVersion(cluster.CephVersion, f.Config.Ceph.MinVersion)).To(Succeed())
	})

	Describe("block storage", Ordered, func() {
		var (
			poolID     string
			rbdID      string
			snapshotID string
		)

		It("should create a pool", func(ctx context.Context) {
			pool, err := c.Client.CreatePool(ctx, c.ClusterID, &ceph.Pool{
				Name:     utils.ResourceName("pool"),
				PoolType: "replicated",
				Size:     3,
				PGNum:    32,
			})
			Expect(err).NotTo(HaveOccurred())
			poolID = pool.ID
			f.Cleanup("pool "+pool.Name, func(ctx context.Context) error {
				if err := cephclient.IgnoreNotFound(c.Client.DeletePool(ctx, c.ClusterID, poolID)); err != nil {
					return err
				}
				return c.Waiter.WaitForPoolDeleted(ctx, c.ClusterID, poolID)
			})

			pool, err = c.Waiter.WaitForPoolCreated(ctx, c.ClusterID, poolID)
			Expect(err).NotTo(HaveOccurred())
			Expect(pool.Status).To(Equal(ceph.StatusAvailable))
		})

		It("should create and resize an RBD", func(ctx context.Context) {
			rbd, err := c.Client.CreateRBD(ctx, c.ClusterID, &ceph.RBD{
				Name:   utils.ResourceName("rbd"),
				PoolID: poolID,
				Size:   gib,
			})
			Expect(err).NotTo(HaveOccurred())
			rbdID = rbd.ID
			f.Cleanup("rbd "+rbd.Name, func(ctx context.Context) error {
				if err := cephclient.IgnoreNotFound(c.Client.DeleteRBD(ctx, c.ClusterID, rbdID)); err != nil {
					return err
				}
				return c.Waiter.WaitForRBDDeleted(ctx, c.ClusterID, rbdID)
			})

			_, err = c.Waiter.WaitForRBDCreated(ctx, c.ClusterID, rbdID)
			Expect(err).NotTo(HaveOccurred())

			_, err = c.Client.ResizeRBD(ctx, c.ClusterID, rbdID, 2*gib)
			Expect(err).NotTo(HaveOccurred())
			rbd, err = c.Waiter.WaitForRBDCreated(ctx, c.ClusterID, rbdID)
			Expect(err).NotTo(HaveOccurred())
			Expect(rbd.Size).To(Equal(2 * gib))
		})

		It("should snapshot and roll back the RBD", func(ctx context.Context) {
			snapshot, err := c.Client.CreateSnapshot(ctx, c.ClusterID, &ceph.Snapshot{
				Name:  utils.ResourceName("snapshot"),
				RBDID: rbdID,
			})
			Expect(err).NotTo(HaveOccurred())
			snapshotID = snapshot.ID
			f.Cleanup("snapshot "+snapshot.Name, func(ctx context.Context) error {
				return cephclient.IgnoreNotFound(c.Client.DeleteSnapshot(ctx, c.ClusterID, snapshotID))
			})

			_, err = c.Waiter.WaitForSnapshotStatus(ctx, c.ClusterID, snapshotID, ceph.StatusAvailable)
			Expect(err).NotTo(HaveOccurred())

			Expect(c.Client.RollbackSnapshot(ctx, c.ClusterID, snapshotID)).To(Succeed())
			_, err = c.Waiter.WaitForSnapshotStatus(ctx, c.ClusterID, snapshotID, ceph.StatusAvailable)
			Expect(err).NotTo(HaveOccurred())
		})

		It("should export the RBD over iSCSI", func(ctx context.Context) {
			name := utils.ResourceName("target")
			target, err := c.Client.CreateISCSITarget(ctx, c.ClusterID, &ceph.ISCSITarget{
				Name: name,
				IQN:  "iqn.2003-01.org.cloudtest:" + name,
			})
			Expect(err).NotTo(HaveOccurred())
			f.Cleanup("iscsi target "+name, func(ctx context.Context) error {
				return cephclient.IgnoreNotFound(c.Client.DeleteISCSITarget(ctx, c.ClusterID, target.ID))
			})

			lun, err := c.Client.CreateISCSILun(ctx, c.ClusterID, target.ID, &ceph.ISCSILun{RBDID: rbdID})
			Expect(err).NotTo(HaveOccurred())

			luns, err := c.Client.ListISCSILuns(ctx, c.ClusterID, target.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(luns).To(ContainElement(HaveField("RBDID", rbdID)))

			Expect(c.Client.DeleteISCSILun(ctx, c.ClusterID, target.ID, lun.ID)).To(Succeed())
			Expect(c.Client.DeleteISCSITarget(ctx, c.ClusterID, target.ID)).To(Succeed())
		})

		It("should back up the snapshot to a remote cluster and restore it", func(ctx context.Context) {
			clusters, err := c.Client.ListClusters(ctx)
			Expect(err).NotTo(HaveOccurred())
			remoteClusterID := ""
			for _, cluster := range clusters {
				if cluster.ID != c.ClusterID && cluster.Status == ceph.ClusterStatusDeployed {
					remoteClusterID = cluster.ID
					break
				}
			}
			if remoteClusterID == "" {
				Skip("no second deployed cluster for remote backups")
			}

			backup, err := c.Client.CreateRemoteBackup(ctx, c.ClusterID, &ceph.RemoteBackup{
				Name:            utils.ResourceName("backup"),
				SnapshotID:      snapshotID,
				RemoteClusterID: remoteClusterID,
			})
			Expect(err).NotTo(HaveOccurred())
			_, err = c.Waiter.WaitForRemoteBackupStatus(ctx, c.ClusterID, backup.ID, ceph.StatusAvailable)
			Expect(err).NotTo(HaveOccurred())

			Expect(c.Client.RestoreRemoteBackup(ctx, c.ClusterID, backup.ID)).To(Succeed())
			_, err = c.Waiter.WaitForRemoteBackupStatus(ctx, c.ClusterID, backup.ID, ceph.StatusAvailable)
			Expect(err).NotTo(HaveOccurred())
		})

		It("should delete the RBD and the pool", func(ctx context.Context) {
			Expect(c.Client.DeleteSnapshot(ctx, c.ClusterID, snapshotID)).To(Succeed())

			Expect(c.Client.DeleteRBD(ctx, c.ClusterID, rbdID)).To(Succeed())
			Expect(c.Waiter.WaitForRBDDeleted(ctx, c.ClusterID, rbdID)).To(Succeed())

			Expect(c.Client.DeletePool(ctx, c.ClusterID, poolID)).To(Succeed())
			Expect(c.Waiter.WaitForPoolDeleted(ctx, c.ClusterID, poolID)).To(Succeed())
		})
	})

	Describe("OSD failover", func() {
		It("should detect a stopped OSD and recover within the failover bound", func(ctx context.Context) {
			f.RequireSSH()

			osds, err := c.Client.ListOSDs(ctx, c.ClusterID)
			Expect(err).NotTo(HaveOccurred())
			var osd *ceph.OSD
			for i := range osds {
				if osds[i].State == ceph.OSDStateUp {
					osd = &osds[i]
					break
				}
			}
			Expect(osd).NotTo(BeNil(), "cluster has no OSD that is up")

			server, err := c.Client.GetServer(ctx, c.ClusterID, osd.ServerID)
			Expect(err).NotTo(HaveOccurred())
			node := f.ConfiguredNode(server.Name)
			unit := "ceph-osd@" + strings.TrimPrefix(osd.Name, "osd.")
			f.Cleanup(unit+" on "+server.Name, func(ctx context.Context) error {
				return node.StartService(ctx, unit)
			})

			result, err := c.Waiter.MeasureOSDFailover(ctx, c.ClusterID, osd.ID,
				func(ctx context.Context) error { return node.StopService(ctx, unit) },
				func(ctx context.Context) error { return node.StartService(ctx, unit) },
			)
			Expect(err).NotTo(HaveOccurred())
			f.Recorder.ObserveFailover(metrics.PhaseDown, result.Down)
			f.Recorder.ObserveFailover(metrics.PhaseUp, result.Up)

			Expect(result.Down + result.Up).To(BeNumerically("<=", f.Config.Timeouts.Failover.Duration))
		})
	})
})
