// SPDX-FileCopyrightText: SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package migration_test

import (
	"context"

	"github.com/gophercloud/gophercloud/v2/openstack/compute/v2/servers"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/cjjingchen/avocado-cloudtest-sub000/pkg/openstack"
	"github.com/cjjingchen/avocado-cloudtest-sub000/pkg/remote"
	"github.com/cjjingchen/avocado-cloudtest-sub000/test/integration/framework"
)

const (
	testFile   = "/tmp/cloudtest-migration"
	testFileMB = 64
)

var _ = Describe("Live migration", Ordered, func() {
	var (
		os       *framework.OpenStack
		node     *remote.SSHNode
		serverID string
		host     string
		checksum string
	)

	BeforeAll(func(ctx context.Context) {
		f.RequireSSH()
		os = f.NewOpenStack(ctx)
		server := os.CreateServer(ctx)
		serverID = server.ID

		address := os.AttachFloatingIP(ctx, serverID)
		node = f.Node(server.Name, address)
		By("waiting until " + node.Address() + " accepts SSH connections")
		Expect(node.WaitForReachable(ctx, f.Config.Policy(f.Config.Timeouts.ServerActive))).To(Succeed())

		var err error
		host, err = os.Compute.GetServerHost(ctx, serverID)
		Expect(err).NotTo(HaveOccurred())
		Expect(host).NotTo(BeEmpty())
	})

	It("should write a file", func(ctx context.Context) {
		Expect(node.WriteRandomFile(ctx, testFile, testFileMB)).To(Succeed())

		var err error
		checksum, err = node.Checksum(ctx, testFile)
		Expect(err).NotTo(HaveOccurred())
		Expect(checksum).To(HaveLen(32))
	})

	It("should move the server to another host", func(ctx context.Context) {
		Expect(os.Compute.LiveMigrateServer(ctx, serverID, servers.LiveMigrateOpts{})).To(Succeed())

		newHost, err := os.Waiter.WaitForServerHostChange(ctx, os.Compute, serverID, host)
		Expect(err).NotTo(HaveOccurred())
		Expect(newHost).NotTo(Equal(host))

		_, err = os.Waiter.WaitForServerStatus(ctx, os.Compute, serverID, openstack.ServerStatusActive)
		Expect(err).NotTo(HaveOccurred())
	})

	It("should keep the file unchanged", func(ctx context.Context) {
		Expect(node.Checksum(ctx, testFile)).To(Equal(checksum))
	})
})
