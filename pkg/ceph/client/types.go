// SPDX-FileCopyrightText: SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"

	"github.com/cjjingchen/avocado-cloudtest-sub000/pkg/ceph"
)

//go:generate mockgen -destination=mocks/client_mocks.go -package=mocks . Interface,ResponseValidator

// Interface is the Ceph management API.
type Interface interface {
	ListClusters(ctx context.Context) ([]ceph.Cluster, error)
	GetCluster(ctx context.Context, id string) (*ceph.Cluster, error)
	CreateCluster(ctx context.Context, cluster *ceph.Cluster) (*ceph.Cluster, error)
	DeleteCluster(ctx context.Context, id string) error
	DeployCluster(ctx context.Context, id string) error

	ListPools(ctx context.Context, clusterID string) ([]ceph.Pool, error)
	GetPool(ctx context.Context, clusterID, id string) (*ceph.Pool, error)
	CreatePool(ctx context.Context, clusterID string, pool *ceph.Pool) (*ceph.Pool, error)
	UpdatePool(ctx context.Context, clusterID string, pool *ceph.Pool) (*ceph.Pool, error)
	DeletePool(ctx context.Context, clusterID, id string) error

	ListServers(ctx context.Context, clusterID string) ([]ceph.Server, error)
	GetServer(ctx context.Context, clusterID, id string) (*ceph.Server, error)
	CreateServer(ctx context.Context, clusterID string, server *ceph.Server) (*ceph.Server, error)
	DeleteServer(ctx context.Context, clusterID, id string) error
	StartServer(ctx context.Context, clusterID, id string) error
	StopServer(ctx context.Context, clusterID, id string) error

	ListOSDs(ctx context.Context, clusterID string) ([]ceph.OSD, error)
	GetOSD(ctx context.Context, clusterID, id string) (*ceph.OSD, error)
	StartOSD(ctx context.Context, clusterID, id string) error
	StopOSD(ctx context.Context, clusterID, id string) error

	ListRBDs(ctx context.Context, clusterID string) ([]ceph.RBD, error)
	GetRBD(ctx context.Context, clusterID, id string) (*ceph.RBD, error)
	CreateRBD(ctx context.Context, clusterID string, rbd *ceph.RBD) (*ceph.RBD, error)
	ResizeRBD(ctx context.Context, clusterID, id string, size int64) (*ceph.RBD, error)
	DeleteRBD(ctx context.Context, clusterID, id string) error

	ListSnapshots(ctx context.Context, clusterID string) ([]ceph.Snapshot, error)
	GetSnapshot(ctx context.Context, clusterID, id string) (*ceph.Snapshot, error)
	CreateSnapshot(ctx context.Context, clusterID string, snapshot *ceph.Snapshot) (*ceph.Snapshot, error)
	DeleteSnapshot(ctx context.Context, clusterID, id string) error
	RollbackSnapshot(ctx context.Context, clusterID, id string) error

	ListISCSITargets(ctx context.Context, clusterID string) ([]ceph.ISCSITarget, error)
	CreateISCSITarget(ctx context.Context, clusterID string, target *ceph.ISCSITarget) (*ceph.ISCSITarget, error)
	DeleteISCSITarget(ctx context.Context, clusterID, id string) error
	ListISCSILuns(ctx context.Context, clusterID, targetID string) ([]ceph.ISCSILun, error)
	CreateISCSILun(ctx context.Context, clusterID, targetID string, lun *ceph.ISCSILun) (*ceph.ISCSILun, error)
	DeleteISCSILun(ctx context.Context, clusterID, targetID, id string) error

	ListRemoteBackups(ctx context.Context, clusterID string) ([]ceph.RemoteBackup, error)
	GetRemoteBackup(ctx context.Context, clusterID, id string) (*ceph.RemoteBackup, error)
	CreateRemoteBackup(ctx context.Context, clusterID string, backup *ceph.RemoteBackup) (*ceph.RemoteBackup, error)
	RestoreRemoteBackup(ctx context.Context, clusterID, id string) error
}

// ResponseValidator validates a response body against the schema with the given name.
type ResponseValidator interface {
	Validate(name string, body []byte) error
}
