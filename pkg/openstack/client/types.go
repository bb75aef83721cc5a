// SPDX-FileCopyrightText: SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

//go:generate mockgen -destination=mocks/client_mocks.go -package=mocks . Factory,Compute,Networking,BlockStorage,Images,Identity,Alarming
package client

import (
	"context"

	"github.com/gophercloud/gophercloud/v2"
	"github.com/gophercloud/gophercloud/v2/openstack/blockstorage/v3/snapshots"
	"github.com/gophercloud/gophercloud/v2/openstack/blockstorage/v3/volumes"
	"github.com/gophercloud/gophercloud/v2/openstack/compute/v2/keypairs"
	"github.com/gophercloud/gophercloud/v2/openstack/compute/v2/servers"
	"github.com/gophercloud/gophercloud/v2/openstack/compute/v2/volumeattach"
	"github.com/gophercloud/gophercloud/v2/openstack/identity/v3/projects"
	"github.com/gophercloud/gophercloud/v2/openstack/image/v2/images"
	"github.com/gophercloud/gophercloud/v2/openstack/networking/v2/extensions/layer3/floatingips"
	"github.com/gophercloud/gophercloud/v2/openstack/networking/v2/networks"
	"github.com/gophercloud/gophercloud/v2/openstack/networking/v2/ports"
	"github.com/gophercloud/gophercloud/v2/openstack/networking/v2/subnets"
)

// OpenstackClientFactory implements a factory that can construct clients for Openstack services.
type OpenstackClientFactory struct {
	providerClient *gophercloud.ProviderClient
	defaultOptions []Option
}

// ComputeClient is a client for the Nova service.
type ComputeClient struct {
	client *gophercloud.ServiceClient
}

// NetworkingClient is a client for the Neutron service.
type NetworkingClient struct {
	client *gophercloud.ServiceClient
}

// BlockStorageClient is a client for the Cinder service.
type BlockStorageClient struct {
	client *gophercloud.ServiceClient
}

// ImageClient is a client for the Glance service.
type ImageClient struct {
	client *gophercloud.ServiceClient
}

// IdentityClient is a client for the Keystone service.
type IdentityClient struct {
	client *gophercloud.ServiceClient
}

// AlarmingClient is a client for the Aodh service.
type AlarmingClient struct {
	client *gophercloud.ServiceClient
}

// Option can be passed to Factory implementations to modify the produced clients.
type Option func(opts gophercloud.EndpointOpts) gophercloud.EndpointOpts

// Factory is an interface for constructing OpenStack service clients.
type Factory interface {
	Compute(options ...Option) (Compute, error)
	Networking(options ...Option) (Networking, error)
	BlockStorage(options ...Option) (BlockStorage, error)
	Images(options ...Option) (Images, error)
	Identity(options ...Option) (Identity, error)
	Alarming(options ...Option) (Alarming, error)
}

// Compute describes the operations of a client interacting with OpenStack's Compute service.
type Compute interface {
	// Server
	CreateServer(ctx context.Context, createOpts servers.CreateOptsBuilder) (*servers.Server, error)
	GetServer(ctx context.Context, id string) (*servers.Server, error)
	DeleteServer(ctx context.Context, id string) error
	ListServers(ctx context.Context, listOpts servers.ListOpts) ([]servers.Server, error)
	FindServersByName(ctx context.Context, name string) ([]servers.Server, error)
	GetServerHost(ctx context.Context, id string) (string, error)
	// Server actions
	RebootServer(ctx context.Context, id string, hard bool) error
	StartServer(ctx context.Context, id string) error
	StopServer(ctx context.Context, id string) error
	MigrateServer(ctx context.Context, id string) error
	LiveMigrateServer(ctx context.Context, id string, opts servers.LiveMigrateOpts) error
	ConfirmResize(ctx context.Context, id string) error

	// Flavor
	FindFlavorID(ctx context.Context, name string) (string, error)

	// KeyPairs
	CreateKeyPair(ctx context.Context, name, publicKey string) (*keypairs.KeyPair, error)
	GetKeyPair(ctx context.Context, name string) (*keypairs.KeyPair, error)
	DeleteKeyPair(ctx context.Context, name string) error

	// Volume attachments
	AttachVolume(ctx context.Context, serverID, volumeID string) (*volumeattach.VolumeAttachment, error)
	DetachVolume(ctx context.Context, serverID, volumeID string) error
}

// Networking describes the operations of a client interacting with OpenStack's Networking service.
type Networking interface {
	// External Network
	GetExternalNetworkNames(ctx context.Context) ([]string, error)
	GetExternalNetworkByName(ctx context.Context, name string) (*networks.Network, error)
	// Network
	CreateNetwork(ctx context.Context, opts networks.CreateOpts) (*networks.Network, error)
	GetNetworkByID(ctx context.Context, id string) (*networks.Network, error)
	DeleteNetwork(ctx context.Context, networkID string) error
	// Subnets
	CreateSubnet(ctx context.Context, createOpts subnets.CreateOpts) (*subnets.Subnet, error)
	DeleteSubnet(ctx context.Context, subnetID string) error
	// FloatingIP
	CreateFloatingIP(ctx context.Context, createOpts floatingips.CreateOpts) (*floatingips.FloatingIP, error)
	GetFloatingIP(ctx context.Context, id string) (*floatingips.FloatingIP, error)
	DeleteFloatingIP(ctx context.Context, id string) error
	AssociateFloatingIP(ctx context.Context, fipID, portID string) (*floatingips.FloatingIP, error)
	// Ports
	GetInstancePorts(ctx context.Context, instanceID string) ([]ports.Port, error)
}

// BlockStorage describes the operations of a client interacting with OpenStack's Block Storage service.
type BlockStorage interface {
	// Volume
	CreateVolume(ctx context.Context, opts volumes.CreateOpts) (*volumes.Volume, error)
	GetVolume(ctx context.Context, id string) (*volumes.Volume, error)
	DeleteVolume(ctx context.Context, id string) error
	ListVolumes(ctx context.Context, opts volumes.ListOpts) ([]volumes.Volume, error)
	// Snapshot
	CreateSnapshot(ctx context.Context, opts snapshots.CreateOpts) (*snapshots.Snapshot, error)
	GetSnapshot(ctx context.Context, id string) (*snapshots.Snapshot, error)
	DeleteSnapshot(ctx context.Context, id string) error
}

// Images describes the operations of a client interacting with images
type Images interface {
	ListImages(ctx context.Context, opts images.ListOpts) ([]images.Image, error)
	GetImage(ctx context.Context, id string) (*images.Image, error)
	DeleteImage(ctx context.Context, id string) error
	FindImageID(ctx context.Context, nameOrID string) (string, error)
}

// Identity describes the operations of a client interacting with OpenStack's Identity service.
type Identity interface {
	ListProjects(ctx context.Context, opts projects.ListOpts) ([]projects.Project, error)
	GetProject(ctx context.Context, id string) (*projects.Project, error)
	LookupClientUserID(ctx context.Context) (string, error)
}

// Alarming describes the operations of a client interacting with OpenStack's Alarming service.
type Alarming interface {
	ListAlarms(ctx context.Context) ([]Alarm, error)
	GetAlarm(ctx context.Context, id string) (*Alarm, error)
	CreateAlarm(ctx context.Context, alarm Alarm) (*Alarm, error)
	DeleteAlarm(ctx context.Context, id string) error
	GetAlarmState(ctx context.Context, id string) (string, error)
	SetAlarmState(ctx context.Context, id, state string) error
}
