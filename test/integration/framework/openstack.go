// SPDX-FileCopyrightText: SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package framework

import (
	"context"

	"github.com/gophercloud/gophercloud/v2/openstack/compute/v2/keypairs"
	"github.com/gophercloud/gophercloud/v2/openstack/compute/v2/servers"
	"github.com/gophercloud/gophercloud/v2/openstack/networking/v2/extensions/layer3/floatingips"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/cjjingchen/avocado-cloudtest-sub000/pkg/openstack"
	openstackclient "github.com/cjjingchen/avocado-cloudtest-sub000/pkg/openstack/client"
	openstackwaiter "github.com/cjjingchen/avocado-cloudtest-sub000/pkg/openstack/waiter"
	"github.com/cjjingchen/avocado-cloudtest-sub000/pkg/utils"
	"github.com/cjjingchen/avocado-cloudtest-sub000/pkg/wait"
)

// OpenStack bundles the clients used by the OpenStack suites.
type OpenStack struct {
	*Framework

	Credentials  *openstack.Credentials
	Compute      openstackclient.Compute
	Networking   openstackclient.Networking
	BlockStorage openstackclient.BlockStorage
	Images       openstackclient.Images
	Identity     openstackclient.Identity
	Waiter       *openstackwaiter.Waiter
}

// NewOpenStack authenticates against the configured cloud and creates the service clients.
func (f *Framework) NewOpenStack(ctx context.Context) *OpenStack {
	credentials, err := openstack.CredentialsFromConfig(f.RequireOpenStack())
	Expect(err).NotTo(HaveOccurred())
	factory, err := openstackclient.NewOpenstackClientFromCredentials(ctx, credentials)
	Expect(err).NotTo(HaveOccurred())

	o := &OpenStack{Framework: f, Credentials: credentials, Waiter: openstackwaiter.New(f.Log, f.Config, f.WaitOptions()...)}
	o.Compute, err = factory.Compute()
	Expect(err).NotTo(HaveOccurred())
	o.Networking, err = factory.Networking()
	Expect(err).NotTo(HaveOccurred())
	o.BlockStorage, err = factory.BlockStorage()
	Expect(err).NotTo(HaveOccurred())
	o.Images, err = factory.Images()
	Expect(err).NotTo(HaveOccurred())
	o.Identity, err = factory.Identity()
	Expect(err).NotTo(HaveOccurred())
	return o
}

// CreateServer boots a test server from the configured image and flavor, waits until it is active and
// registers its deletion.
func (o *OpenStack) CreateServer(ctx context.Context) *servers.Server {
	cfg := o.Config.OpenStack
	name := utils.ResourceName("server")

	flavorID, err := o.Compute.FindFlavorID(ctx, cfg.FlavorRef)
	Expect(err).NotTo(HaveOccurred())
	imageID, err := o.Images.FindImageID(ctx, cfg.ImageRef)
	Expect(err).NotTo(HaveOccurred())

	var createOpts servers.CreateOptsBuilder = servers.CreateOpts{
		Name:             name,
		FlavorRef:        flavorID,
		ImageRef:         imageID,
		Networks:         []servers.Network{{UUID: cfg.NetworkID}},
		AvailabilityZone: cfg.AvailabilityZone,
	}
	if cfg.KeyName != "" {
		createOpts = keypairs.CreateOptsExt{CreateOptsBuilder: createOpts, KeyName: cfg.KeyName}
	}

	By("creating server " + name)
	server, err := o.Compute.CreateServer(ctx, createOpts)
	Expect(err).NotTo(HaveOccurred())
	o.Cleanup("server "+name, func(ctx context.Context) error {
		if err := openstackclient.IgnoreNotFoundError(o.Compute.DeleteServer(ctx, server.ID)); err != nil {
			return err
		}
		return o.Waiter.WaitForServerDeleted(ctx, o.Compute, server.ID)
	})

	server, err = o.Waiter.WaitForServerStatus(ctx, o.Compute, server.ID, openstack.ServerStatusActive)
	Expect(err).NotTo(HaveOccurred())
	return server
}

// AttachFloatingIP allocates a floating IP from the configured pool, associates it with the server and
// registers its deletion. It returns the floating IP address.
func (o *OpenStack) AttachFloatingIP(ctx context.Context, serverID string) string {
	cfg := o.Config.OpenStack
	if cfg.FloatingPoolName == "" {
		Skip("test configuration has no floating pool")
	}

	network, err := o.Networking.GetExternalNetworkByName(ctx, cfg.FloatingPoolName)
	Expect(err).NotTo(HaveOccurred())
	ports, err := o.Networking.GetInstancePorts(ctx, serverID)
	Expect(err).NotTo(HaveOccurred())
	Expect(ports).NotTo(BeEmpty())

	// an exhausted pool or a port that is not bound yet is retried
	policy := o.Config.Policy(nil)
	retryable := openstackclient.Retryable(o.Log)

	By("allocating a floating IP from " + cfg.FloatingPoolName)
	fip, err := wait.Require(ctx, o.Log, policy, "floating IP allocation from "+cfg.FloatingPoolName, wait.IgnoreErrors(o.Log, func() (*floatingips.FloatingIP, bool, error) {
		fip, err := o.Networking.CreateFloatingIP(ctx, floatingips.CreateOpts{FloatingNetworkID: network.ID})
		return fip, err == nil, err
	}, retryable), o.WaitOptions()...)
	Expect(err).NotTo(HaveOccurred())
	o.Cleanup("floating IP "+fip.FloatingIP, func(ctx context.Context) error {
		return openstackclient.IgnoreNotFoundError(o.Networking.DeleteFloatingIP(ctx, fip.ID))
	})

	_, err = wait.Require(ctx, o.Log, policy, "floating IP association with "+serverID, wait.IgnoreErrors(o.Log, func() (*floatingips.FloatingIP, bool, error) {
		associated, err := o.Networking.AssociateFloatingIP(ctx, fip.ID, ports[0].ID)
		return associated, err == nil, err
	}, retryable), o.WaitOptions()...)
	Expect(err).NotTo(HaveOccurred())
	return fip.FloatingIP
}
