// SPDX-FileCopyrightText: SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"fmt"

	"github.com/gophercloud/gophercloud/v2/openstack/compute/v2/flavors"
	"github.com/gophercloud/gophercloud/v2/openstack/compute/v2/keypairs"
	"github.com/gophercloud/gophercloud/v2/openstack/compute/v2/servers"
	"github.com/gophercloud/gophercloud/v2/openstack/compute/v2/volumeattach"
	"k8s.io/utils/ptr"

	"github.com/cjjingchen/avocado-cloudtest-sub000/pkg/utils"
)

// CreateServer creates a server. Use keypairs.CreateOptsExt to inject a key pair.
func (c *ComputeClient) CreateServer(ctx context.Context, createOpts servers.CreateOptsBuilder) (*servers.Server, error) {
	return servers.Create(ctx, c.client, createOpts, nil).Extract()
}

// GetServer retrieves the server with the given id.
func (c *ComputeClient) GetServer(ctx context.Context, id string) (*servers.Server, error) {
	return servers.Get(ctx, c.client, id).Extract()
}

// DeleteServer deletes the server with the given id.
func (c *ComputeClient) DeleteServer(ctx context.Context, id string) error {
	return servers.Delete(ctx, c.client, id).ExtractErr()
}

// ListServers lists all servers filtered by listOpts.
func (c *ComputeClient) ListServers(ctx context.Context, listOpts servers.ListOpts) ([]servers.Server, error) {
	allPages, err := servers.List(c.client, listOpts).AllPages(ctx)
	if err != nil {
		return nil, err
	}
	return servers.ExtractServers(allPages)
}

// FindServersByName retrieves the Compute Server by Name
func (c *ComputeClient) FindServersByName(ctx context.Context, name string) ([]servers.Server, error) {
	return c.ListServers(ctx, servers.ListOpts{Name: name})
}

// GetServerHost returns the compute host the server is running on. Requires admin privileges.
func (c *ComputeClient) GetServerHost(ctx context.Context, id string) (string, error) {
	var server struct {
		Host               string `json:"OS-EXT-SRV-ATTR:host"`
		HypervisorHostname string `json:"OS-EXT-SRV-ATTR:hypervisor_hostname"`
	}
	if err := servers.Get(ctx, c.client, id).ExtractIntoStructPtr(&server, "server"); err != nil {
		return "", err
	}
	if server.Host != "" {
		return server.Host, nil
	}
	if server.HypervisorHostname != "" {
		return server.HypervisorHostname, nil
	}
	return "", fmt.Errorf("host of server %s is not visible, admin privileges are required", id)
}

// RebootServer reboots the server, either soft or hard.
func (c *ComputeClient) RebootServer(ctx context.Context, id string, hard bool) error {
	opts := servers.RebootOpts{Type: servers.SoftReboot}
	if hard {
		opts.Type = servers.HardReboot
	}
	return servers.Reboot(ctx, c.client, id, opts).ExtractErr()
}

// StartServer starts a stopped server.
func (c *ComputeClient) StartServer(ctx context.Context, id string) error {
	return servers.Start(ctx, c.client, id).ExtractErr()
}

// StopServer stops a running server.
func (c *ComputeClient) StopServer(ctx context.Context, id string) error {
	return servers.Stop(ctx, c.client, id).ExtractErr()
}

// MigrateServer cold migrates the server to another host. The migration has to be confirmed with ConfirmResize.
func (c *ComputeClient) MigrateServer(ctx context.Context, id string) error {
	return servers.Migrate(ctx, c.client, id).ExtractErr()
}

// LiveMigrateServer live migrates the server. Without host the scheduler picks the target host.
func (c *ComputeClient) LiveMigrateServer(ctx context.Context, id string, opts servers.LiveMigrateOpts) error {
	if opts.BlockMigration == nil {
		opts.BlockMigration = ptr.To(false)
	}
	return servers.LiveMigrate(ctx, c.client, id, opts).ExtractErr()
}

// ConfirmResize confirms a pending resize or cold migration.
func (c *ComputeClient) ConfirmResize(ctx context.Context, id string) error {
	return servers.ConfirmResize(ctx, c.client, id).ExtractErr()
}

// FindFlavorID finds the flavor ID by ID or name. The name may be a simple wildcard pattern like "m1.*".
func (c *ComputeClient) FindFlavorID(ctx context.Context, name string) (string, error) {
	// unfortunately, there is no way to filter by name
	allPages, err := flavors.ListDetail(c.client, nil).AllPages(ctx)
	if err != nil {
		return "", fmt.Errorf("unable to list flavors: %w", err)
	}

	allFlavors, err := flavors.ExtractFlavors(allPages)
	if err != nil {
		return "", fmt.Errorf("unable to extract flavors: %w", err)
	}

	ids := make(map[string]string, len(allFlavors))
	names := make([]string, 0, len(allFlavors))
	for _, flavor := range allFlavors {
		if flavor.ID == name {
			return flavor.ID, nil
		}
		if _, ok := ids[flavor.Name]; !ok {
			ids[flavor.Name] = flavor.ID
			names = append(names, flavor.Name)
		}
	}

	if best, ok := utils.BestMatch(name, names); ok {
		return ids[best], nil
	}
	return "", fmt.Errorf("flavor with name %q not found", name)
}

// CreateKeyPair creates an SSH key pair
func (c *ComputeClient) CreateKeyPair(ctx context.Context, name, publicKey string) (*keypairs.KeyPair, error) {
	opts := keypairs.CreateOpts{
		Name:      name,
		PublicKey: publicKey,
	}
	return keypairs.Create(ctx, c.client, opts).Extract()
}

// GetKeyPair gets an SSH key pair by name. It returns nil if the key pair is not found.
func (c *ComputeClient) GetKeyPair(ctx context.Context, name string) (*keypairs.KeyPair, error) {
	keypair, err := keypairs.Get(ctx, c.client, name, nil).Extract()
	return keypair, IgnoreNotFoundError(err)
}

// DeleteKeyPair deletes an SSH key pair by name
func (c *ComputeClient) DeleteKeyPair(ctx context.Context, name string) error {
	return IgnoreNotFoundError(keypairs.Delete(ctx, c.client, name, nil).ExtractErr())
}

// AttachVolume attaches the volume to the server.
func (c *ComputeClient) AttachVolume(ctx context.Context, serverID, volumeID string) (*volumeattach.VolumeAttachment, error) {
	return volumeattach.Create(ctx, c.client, serverID, volumeattach.CreateOpts{VolumeID: volumeID}).Extract()
}

// DetachVolume detaches the volume from the server.
func (c *ComputeClient) DetachVolume(ctx context.Context, serverID, volumeID string) error {
	return volumeattach.Delete(ctx, c.client, serverID, volumeID).ExtractErr()
}
