// SPDX-FileCopyrightText: SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"net/http"

	"github.com/cjjingchen/avocado-cloudtest-sub000/pkg/ceph"
)

const (
	clustersPath = "clusters"
	serversPath  = "servers"
	osdsPath     = "osds"
)

// ListClusters lists all clusters.
func (c *Client) ListClusters(ctx context.Context) ([]ceph.Cluster, error) {
	return list[ceph.Cluster](ctx, c, ceph.ResourceCluster, clustersPath)
}

// GetCluster returns the cluster with the given id.
func (c *Client) GetCluster(ctx context.Context, id string) (*ceph.Cluster, error) {
	return get[ceph.Cluster](ctx, c, ceph.ResourceCluster, clustersPath, id)
}

// CreateCluster creates a cluster. It is deployed by DeployCluster.
func (c *Client) CreateCluster(ctx context.Context, cluster *ceph.Cluster) (*ceph.Cluster, error) {
	return send(ctx, c, http.MethodPost, ceph.ResourceCluster, cluster, clustersPath)
}

// DeleteCluster deletes the cluster with the given id.
func (c *Client) DeleteCluster(ctx context.Context, id string) error {
	return c.delete(ctx, clustersPath, id)
}

// DeployCluster starts the deployment of a cluster. The cluster is in status deploying until it is done.
func (c *Client) DeployCluster(ctx context.Context, id string) error {
	return c.action(ctx, clustersPath, id, "deploy")
}

// ListServers lists the storage servers of a cluster.
func (c *Client) ListServers(ctx context.Context, clusterID string) ([]ceph.Server, error) {
	return list[ceph.Server](ctx, c, ceph.ResourceServer, clustersPath, clusterID, serversPath)
}

// GetServer returns a storage server.
func (c *Client) GetServer(ctx context.Context, clusterID, id string) (*ceph.Server, error) {
	return get[ceph.Server](ctx, c, ceph.ResourceServer, clustersPath, clusterID, serversPath, id)
}

// CreateServer adds a storage server to a cluster.
func (c *Client) CreateServer(ctx context.Context, clusterID string, server *ceph.Server) (*ceph.Server, error) {
	return send(ctx, c, http.MethodPost, ceph.ResourceServer, server, clustersPath, clusterID, serversPath)
}

// DeleteServer removes a storage server from a cluster.
func (c *Client) DeleteServer(ctx context.Context, clusterID, id string) error {
	return c.delete(ctx, clustersPath, clusterID, serversPath, id)
}

// StartServer starts all services of a storage server.
func (c *Client) StartServer(ctx context.Context, clusterID, id string) error {
	return c.action(ctx, clustersPath, clusterID, serversPath, id, "start")
}

// StopServer stops all services of a storage server.
func (c *Client) StopServer(ctx context.Context, clusterID, id string) error {
	return c.action(ctx, clustersPath, clusterID, serversPath, id, "stop")
}

// ListOSDs lists the OSDs of a cluster.
func (c *Client) ListOSDs(ctx context.Context, clusterID string) ([]ceph.OSD, error) {
	return list[ceph.OSD](ctx, c, ceph.ResourceOSD, clustersPath, clusterID, osdsPath)
}

// GetOSD returns an OSD.
func (c *Client) GetOSD(ctx context.Context, clusterID, id string) (*ceph.OSD, error) {
	return get[ceph.OSD](ctx, c, ceph.ResourceOSD, clustersPath, clusterID, osdsPath, id)
}

// StartOSD starts an OSD.
func (c *Client) StartOSD(ctx context.Context, clusterID, id string) error {
	return c.action(ctx, clustersPath, clusterID, osdsPath, id, "start")
}

// StopOSD stops an OSD.
func (c *Client) StopOSD(ctx context.Context, clusterID, id string) error {
	return c.action(ctx, clustersPath, clusterID, osdsPath, id, "stop")
}
