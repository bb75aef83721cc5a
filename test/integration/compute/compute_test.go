// SPDX-FileCopyrightText: SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package compute_test

import (
	"context"

	"github.com/gophercloud/gophercloud/v2/openstack/identity/v3/projects"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/cjjingchen/avocado-cloudtest-sub000/pkg/openstack"
	openstackclient "github.com/cjjingchen/avocado-cloudtest-sub000/pkg/openstack/client"
	"github.com/cjjingchen/avocado-cloudtest-sub000/test/integration/framework"
)

var _ = Describe("Server lifecycle", Ordered, func() {
	var (
		os       *framework.OpenStack
		serverID string
	)

	BeforeAll(func(ctx context.Context) {
		os = f.NewOpenStack(ctx)
		serverID = os.CreateServer(ctx).ID
	})

	It("should reboot the server", func(ctx context.Context) {
		Expect(os.Compute.RebootServer(ctx, serverID, false)).To(Succeed())

		server, err := os.Waiter.WaitForServerStatus(ctx, os.Compute, serverID, openstack.ServerStatusActive)
		Expect(err).NotTo(HaveOccurred())
		Expect(server.Status).To(Equal(openstack.ServerStatusActive))
	})

	It("should stop the server", func(ctx context.Context) {
		Expect(os.Compute.StopServer(ctx, serverID)).To(Succeed())

		_, err := os.Waiter.WaitForServerStatus(ctx, os.Compute, serverID, openstack.ServerStatusShutoff)
		Expect(err).NotTo(HaveOccurred())
	})

	It("should start the server", func(ctx context.Context) {
		Expect(os.Compute.StartServer(ctx, serverID)).To(Succeed())

		_, err := os.Waiter.WaitForServerStatus(ctx, os.Compute, serverID, openstack.ServerStatusActive)
		Expect(err).NotTo(HaveOccurred())
	})

	It("should delete the server", func(ctx context.Context) {
		Expect(os.Compute.DeleteServer(ctx, serverID)).To(Succeed())

		Expect(os.Waiter.WaitForServerDeleted(ctx, os.Compute, serverID)).To(Succeed())
	})

	It("should not find the deleted server", func(ctx context.Context) {
		_, err := os.Compute.GetServer(ctx, serverID)
		Expect(openstackclient.IsNotFoundError(err)).To(BeTrue())
		Expect(f.Recorder.Observed()).To(BeNumerically(">=", 5))
	})
})

var _ = Describe("Project", func() {
	It("should see the configured tenant", func(ctx context.Context) {
		openStack := f.NewOpenStack(ctx)
		tenant := openStack.Credentials.TenantName
		if tenant == "" {
			Skip("credentials have no tenant name")
		}

		list, err := openStack.Identity.ListProjects(ctx, projects.ListOpts{Name: tenant})
		Expect(err).NotTo(HaveOccurred())
		Expect(list).NotTo(BeEmpty())

		project, err := openStack.Identity.GetProject(ctx, list[0].ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(project.Name).To(Equal(tenant))
		Expect(project.Enabled).To(BeTrue())
	})
})
