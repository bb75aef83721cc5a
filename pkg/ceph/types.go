// SPDX-FileCopyrightText: SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

// Package ceph contains the resource models of the Ceph management REST API.
package ceph

const (
	// ClusterStatusDeploying is the status of a cluster while it is deployed.
	ClusterStatusDeploying = "deploying"
	// ClusterStatusDeployed is the status of a successfully deployed cluster.
	ClusterStatusDeployed = "deployed"

	// StatusCreating is the status of a pool, RBD, snapshot or backup that is being created.
	StatusCreating = "creating"
	// StatusAvailable is the status of a usable pool, RBD, snapshot or backup.
	StatusAvailable = "available"
	// StatusDeleting is the status of a resource that is being deleted.
	StatusDeleting = "deleting"
	// StatusRestoring is the status of a remote backup that is being restored.
	StatusRestoring = "restoring"
	// StatusError is the failure status of every resource.
	StatusError = "error"

	// ServerStatusActive is the status of a storage server that is part of the cluster.
	ServerStatusActive = "active"
	// ServerStatusInactive is the status of a stopped storage server.
	ServerStatusInactive = "inactive"

	// OSDStateUp is the state of a running OSD.
	OSDStateUp = "up"
	// OSDStateDown is the state of a stopped OSD.
	OSDStateDown = "down"
)

// Resource names the JSON envelope keys of a resource kind, e.g. {"pool": {...}} and {"pools": [...]}.
type Resource struct {
	// Name is the key of a single resource and the name of its schema.
	Name string
	// ListName is the key of a resource list.
	ListName string
}

// ListSchema returns the schema name of a list response.
func (r Resource) ListSchema() string {
	return r.Name + "_list"
}

var (
	ResourceCluster      = Resource{Name: "cluster", ListName: "clusters"}
	ResourcePool         = Resource{Name: "pool", ListName: "pools"}
	ResourceServer       = Resource{Name: "server", ListName: "servers"}
	ResourceOSD          = Resource{Name: "osd", ListName: "osds"}
	ResourceRBD          = Resource{Name: "rbd", ListName: "rbds"}
	ResourceSnapshot     = Resource{Name: "snapshot", ListName: "snapshots"}
	ResourceISCSITarget  = Resource{Name: "iscsi_target", ListName: "iscsi_targets"}
	ResourceISCSILun     = Resource{Name: "iscsi_lun", ListName: "iscsi_luns"}
	ResourceRemoteBackup = Resource{Name: "remote_backup", ListName: "remote_backups"}

	// Resources contains all resource kinds of the API.
	Resources = []Resource{
		ResourceCluster,
		ResourcePool,
		ResourceServer,
		ResourceOSD,
		ResourceRBD,
		ResourceSnapshot,
		ResourceISCSITarget,
		ResourceISCSILun,
		ResourceRemoteBackup,
	}
)

// Cluster is a Ceph cluster managed by the API.
type Cluster struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Status      string `json:"status,omitempty"`
	CephVersion string `json:"ceph_version,omitempty"`
	// ServerIDs are the storage servers the cluster is deployed on.
	ServerIDs []string `json:"server_ids,omitempty"`
}

// Pool is a RADOS pool.
type Pool struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name"`
	Status   string `json:"status,omitempty"`
	PoolType string `json:"pool_type,omitempty"`
	// Size is the replica count of replicated pools.
	Size int `json:"size,omitempty"`
	// PGNum is the number of placement groups.
	PGNum int `json:"pg_num,omitempty"`
}

// Server is a storage server of a cluster.
type Server struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name"`
	Status    string `json:"status,omitempty"`
	PublicIP  string `json:"public_ip,omitempty"`
	ClusterIP string `json:"cluster_ip,omitempty"`
}

// OSD is an object storage daemon running on a server.
type OSD struct {
	ID       string `json:"id"`
	Name     string `json:"name,omitempty"`
	ServerID string `json:"server_id,omitempty"`
	State    string `json:"state"`
	// In is false if the OSD was marked out of the cluster.
	In          bool   `json:"in"`
	DeviceClass string `json:"device_class,omitempty"`
}

// RBD is a RADOS block device image.
type RBD struct {
	ID     string `json:"id,omitempty"`
	Name   string `json:"name"`
	PoolID string `json:"pool_id"`
	Status string `json:"status,omitempty"`
	// Size is the size in bytes.
	Size int64 `json:"size"`
}

// Snapshot is a snapshot of an RBD.
type Snapshot struct {
	ID     string `json:"id,omitempty"`
	Name   string `json:"name"`
	RBDID  string `json:"rbd_id"`
	Status string `json:"status,omitempty"`
}

// ISCSITarget exports RBDs over iSCSI.
type ISCSITarget struct {
	ID     string `json:"id,omitempty"`
	Name   string `json:"name"`
	IQN    string `json:"iqn,omitempty"`
	Status string `json:"status,omitempty"`
}

// ISCSILun maps an RBD to a LUN of an iSCSI target.
type ISCSILun struct {
	ID       string `json:"id,omitempty"`
	TargetID string `json:"target_id,omitempty"`
	RBDID    string `json:"rbd_id"`
	LunID    int    `json:"lun_id"`
}

// RemoteBackup is a backup of an RBD snapshot to a remote cluster.
type RemoteBackup struct {
	ID         string `json:"id,omitempty"`
	Name       string `json:"name"`
	SnapshotID string `json:"snapshot_id"`
	// RemoteClusterID is the cluster the backup is stored on.
	RemoteClusterID string `json:"remote_cluster_id"`
	Status          string `json:"status,omitempty"`
}
