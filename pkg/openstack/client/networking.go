// SPDX-FileCopyrightText: SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"fmt"

	"github.com/gophercloud/gophercloud/v2/openstack/networking/v2/extensions/external"
	"github.com/gophercloud/gophercloud/v2/openstack/networking/v2/extensions/layer3/floatingips"
	"github.com/gophercloud/gophercloud/v2/openstack/networking/v2/networks"
	"github.com/gophercloud/gophercloud/v2/openstack/networking/v2/ports"
	"github.com/gophercloud/gophercloud/v2/openstack/networking/v2/subnets"
	"k8s.io/utils/ptr"
)

type networkWithExternalExt struct {
	networks.Network
	external.NetworkExternalExt
}

func (c *NetworkingClient) listExternalNetworks(ctx context.Context, name string) ([]networkWithExternalExt, error) {
	allPages, err := networks.List(c.client, external.ListOptsExt{
		ListOptsBuilder: networks.ListOpts{Name: name},
		External:        ptr.To(true),
	}).AllPages(ctx)
	if err != nil {
		return nil, err
	}

	var externalNetworks []networkWithExternalExt
	if err := networks.ExtractNetworksInto(allPages, &externalNetworks); err != nil {
		return nil, err
	}
	return externalNetworks, nil
}

// GetExternalNetworkNames returns a list of all external network names.
func (c *NetworkingClient) GetExternalNetworkNames(ctx context.Context) ([]string, error) {
	externalNetworks, err := c.listExternalNetworks(ctx, "")
	if err != nil {
		return nil, err
	}

	var externalNetworkNames []string
	for _, externalNetwork := range externalNetworks {
		externalNetworkNames = append(externalNetworkNames, externalNetwork.Name)
	}
	return externalNetworkNames, nil
}

// GetExternalNetworkByName returns the external network with the given name.
func (c *NetworkingClient) GetExternalNetworkByName(ctx context.Context, name string) (*networks.Network, error) {
	externalNetworks, err := c.listExternalNetworks(ctx, name)
	if err != nil {
		return nil, err
	}

	switch len(externalNetworks) {
	case 0:
		return nil, fmt.Errorf("external network %q not found", name)
	case 1:
		return &externalNetworks[0].Network, nil
	default:
		return nil, fmt.Errorf("found %d external networks with name %q", len(externalNetworks), name)
	}
}

// CreateNetwork creates a network.
func (c *NetworkingClient) CreateNetwork(ctx context.Context, opts networks.CreateOpts) (*networks.Network, error) {
	return networks.Create(ctx, c.client, opts).Extract()
}

// GetNetworkByID returns the network with the given id.
func (c *NetworkingClient) GetNetworkByID(ctx context.Context, id string) (*networks.Network, error) {
	return networks.Get(ctx, c.client, id).Extract()
}

// DeleteNetwork deletes the network. It returns nil if the network could not be found.
func (c *NetworkingClient) DeleteNetwork(ctx context.Context, networkID string) error {
	return IgnoreNotFoundError(networks.Delete(ctx, c.client, networkID).ExtractErr())
}

// CreateSubnet creates a subnet.
func (c *NetworkingClient) CreateSubnet(ctx context.Context, createOpts subnets.CreateOpts) (*subnets.Subnet, error) {
	return subnets.Create(ctx, c.client, createOpts).Extract()
}

// DeleteSubnet deletes the subnet. It returns nil if the subnet could not be found.
func (c *NetworkingClient) DeleteSubnet(ctx context.Context, subnetID string) error {
	return IgnoreNotFoundError(subnets.Delete(ctx, c.client, subnetID).ExtractErr())
}

// CreateFloatingIP creates a floating IP.
func (c *NetworkingClient) CreateFloatingIP(ctx context.Context, createOpts floatingips.CreateOpts) (*floatingips.FloatingIP, error) {
	return floatingips.Create(ctx, c.client, createOpts).Extract()
}

// GetFloatingIP returns the floating IP with the given id.
func (c *NetworkingClient) GetFloatingIP(ctx context.Context, id string) (*floatingips.FloatingIP, error) {
	return floatingips.Get(ctx, c.client, id).Extract()
}

// DeleteFloatingIP deletes the floating IP. It returns nil if the floating IP could not be found.
func (c *NetworkingClient) DeleteFloatingIP(ctx context.Context, id string) error {
	return IgnoreNotFoundError(floatingips.Delete(ctx, c.client, id).ExtractErr())
}

// AssociateFloatingIP associates the floating IP with the given port.
func (c *NetworkingClient) AssociateFloatingIP(ctx context.Context, fipID, portID string) (*floatingips.FloatingIP, error) {
	return floatingips.Update(ctx, c.client, fipID, floatingips.UpdateOpts{PortID: &portID}).Extract()
}

// GetInstancePorts returns the ports of the given server.
func (c *NetworkingClient) GetInstancePorts(ctx context.Context, instanceID string) ([]ports.Port, error) {
	allPages, err := ports.List(c.client, ports.ListOpts{DeviceID: instanceID}).AllPages(ctx)
	if err != nil {
		return nil, err
	}
	return ports.ExtractPorts(allPages)
}
