// SPDX-FileCopyrightText: SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package config

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

const (
	// APIVersion is the API version of the test configuration file.
	APIVersion = "cloudtest.config/v1alpha1"
	// Kind is the kind of the test configuration file.
	Kind = "TestConfiguration"
)

// TestConfiguration is the configuration of a test run. It is loaded once and passed to every component
// that needs it. Components must not modify it.
type TestConfiguration struct {
	metav1.TypeMeta `json:",inline"`

	// OpenStack contains the access information for the OpenStack cloud under test.
	// +optional
	OpenStack *OpenStack `json:"openstack,omitempty"`
	// Ceph contains the access information for the Ceph management API under test.
	// +optional
	Ceph *Ceph `json:"ceph,omitempty"`
	// SSH contains the settings used to run commands on remote hosts.
	// +optional
	SSH *SSH `json:"ssh,omitempty"`
	// Wait contains the default polling settings.
	Wait Wait `json:"wait"`
	// Timeouts contains the timeouts for the individual resource state transitions.
	Timeouts Timeouts `json:"timeouts"`
	// Metrics configures where wait metrics are pushed to.
	// +optional
	Metrics *Metrics `json:"metrics,omitempty"`
}

// OpenStack contains the access information for an OpenStack cloud and the resources tests can use.
type OpenStack struct {
	// AuthURL is the keystone endpoint.
	AuthURL string `json:"authURL,omitempty"`
	// DomainName is the domain of the user and the project.
	DomainName string `json:"domainName,omitempty"`
	// TenantName is the name of the project.
	TenantName string `json:"tenantName,omitempty"`
	// Username is used together with Password.
	Username string `json:"username,omitempty"`
	// Password is used together with Username.
	Password string `json:"password,omitempty"`
	// ApplicationCredentialID is the ID of an application credential.
	ApplicationCredentialID string `json:"applicationCredentialID,omitempty"`
	// ApplicationCredentialName is the name of an application credential.
	ApplicationCredentialName string `json:"applicationCredentialName,omitempty"`
	// ApplicationCredentialSecret is the secret of an application credential.
	ApplicationCredentialSecret string `json:"applicationCredentialSecret,omitempty"`
	// Region is the region all clients target.
	Region string `json:"region,omitempty"`
	// CACert is a PEM encoded CA bundle used to verify the API endpoints.
	// +optional
	CACert string `json:"caCert,omitempty"`
	// Insecure disables the verification of the API endpoint certificates.
	// +optional
	Insecure bool `json:"insecure,omitempty"`

	// ImageRef is the name or ID of the image test servers boot from.
	ImageRef string `json:"imageRef,omitempty"`
	// FlavorRef is the name of the flavor of test servers.
	FlavorRef string `json:"flavorRef,omitempty"`
	// NetworkID is the network test servers are attached to.
	NetworkID string `json:"networkID,omitempty"`
	// FloatingPoolName is the external network floating IPs are allocated from.
	// +optional
	FloatingPoolName string `json:"floatingPoolName,omitempty"`
	// AvailabilityZone is the availability zone of test servers and volumes.
	// +optional
	AvailabilityZone string `json:"availabilityZone,omitempty"`
	// KeyName is the name of the key pair injected into test servers.
	// +optional
	KeyName string `json:"keyName,omitempty"`
	// VolumeSize is the size in GiB of test volumes.
	// +optional
	VolumeSize *int `json:"volumeSize,omitempty"`
}

// Ceph contains the access information for the Ceph management REST API.
type Ceph struct {
	// Endpoint is the base URL of the management API, e.g. https://ceph-mgmt:9999/v1.
	Endpoint string `json:"endpoint"`
	// Username is used for basic authentication.
	Username string `json:"username,omitempty"`
	// Password is used for basic authentication.
	Password string `json:"password,omitempty"`
	// Insecure disables the verification of the endpoint certificate.
	// +optional
	Insecure bool `json:"insecure,omitempty"`
	// ClusterID is the cluster the tests operate on.
	ClusterID string `json:"clusterID,omitempty"`
	// RequestTimeout is the timeout of a single HTTP request.
	// +optional
	RequestTimeout *metav1.Duration `json:"requestTimeout,omitempty"`
	// MaxRetries is the number of times a failed request (connection error or 5xx) is retried.
	// +optional
	MaxRetries *int `json:"maxRetries,omitempty"`
	// ValidateResponses enables JSON schema validation of every response.
	// +optional
	ValidateResponses *bool `json:"validateResponses,omitempty"`
	// MinVersion is a semantic version constraint the Ceph version of the cluster must satisfy, e.g. ">= 14.2".
	// +optional
	MinVersion string `json:"minVersion,omitempty"`
}

// SSH contains the settings used to run commands on remote hosts.
type SSH struct {
	// User is the login user.
	User string `json:"user"`
	// PrivateKeyFile is the path of the private key used for authentication.
	PrivateKeyFile string `json:"privateKeyFile"`
	// Port is the SSH port of all hosts. Defaults to 22.
	// +optional
	Port *int `json:"port,omitempty"`
	// KnownHostsFile enables host key verification against the given known_hosts file.
	// +optional
	KnownHostsFile string `json:"knownHostsFile,omitempty"`
	// ConnectTimeout is the timeout for establishing a connection.
	// +optional
	ConnectTimeout *metav1.Duration `json:"connectTimeout,omitempty"`
	// MaxRetries is the number of connection attempts.
	// +optional
	MaxRetries *int `json:"maxRetries,omitempty"`
	// RetryDelay is the delay between two connection attempts.
	// +optional
	RetryDelay *metav1.Duration `json:"retryDelay,omitempty"`
	// Hosts are the named hosts tests can run commands on, e.g. the Ceph storage nodes.
	// +optional
	Hosts []Host `json:"hosts,omitempty"`
}

// Host is a named remote host.
type Host struct {
	// Name is the name tests refer to the host with. For Ceph nodes it is the server name known to the management API.
	Name string `json:"name"`
	// Address is the IP address or DNS name of the host.
	Address string `json:"address"`
}

// Wait contains the default polling settings.
type Wait struct {
	// PollInterval is the interval between two polls. Defaults to 5s.
	// +optional
	PollInterval *metav1.Duration `json:"pollInterval,omitempty"`
	// InitialDelay is the delay before the first poll. Defaults to 0.
	// +optional
	InitialDelay *metav1.Duration `json:"initialDelay,omitempty"`
	// DefaultTimeout is used for waits without a dedicated timeout. Defaults to 5m.
	// +optional
	DefaultTimeout *metav1.Duration `json:"defaultTimeout,omitempty"`
}

// Timeouts contains the timeouts for individual resource state transitions.
type Timeouts struct {
	// ServerActive is the timeout for a server to reach a requested status. Defaults to 10m.
	ServerActive *metav1.Duration `json:"serverActive,omitempty"`
	// ServerDeleted is the timeout for a server to disappear. Defaults to 5m.
	ServerDeleted *metav1.Duration `json:"serverDeleted,omitempty"`
	// Migration is the timeout for a (live) migration. Defaults to 15m.
	Migration *metav1.Duration `json:"migration,omitempty"`
	// Volume is the timeout for volume and volume snapshot transitions. Defaults to 5m.
	Volume *metav1.Duration `json:"volume,omitempty"`
	// Image is the timeout for image transitions. Defaults to 10m.
	Image *metav1.Duration `json:"image,omitempty"`
	// Alarm is the timeout for an alarm to reach a state. Defaults to 10m.
	Alarm *metav1.Duration `json:"alarm,omitempty"`
	// ClusterDeploy is the timeout for a Ceph cluster deployment. Defaults to 30m.
	ClusterDeploy *metav1.Duration `json:"clusterDeploy,omitempty"`
	// CephResource is the timeout for pools, servers, RBDs and snapshots. Defaults to 5m.
	CephResource *metav1.Duration `json:"cephResource,omitempty"`
	// OSDState is the timeout for an OSD to change its state. Defaults to 10m.
	OSDState *metav1.Duration `json:"osdState,omitempty"`
	// RemoteBackup is the timeout for a remote backup or restore. Defaults to 30m.
	RemoteBackup *metav1.Duration `json:"remoteBackup,omitempty"`
	// Failover is the upper bound tests assert for an OSD failover. Defaults to 5m.
	Failover *metav1.Duration `json:"failover,omitempty"`
}

// Metrics configures where wait metrics are pushed to.
type Metrics struct {
	// PushgatewayURL is the URL of a Prometheus Pushgateway.
	PushgatewayURL string `json:"pushgatewayURL,omitempty"`
	// Job is the job label of pushed metrics. Defaults to "cloudtest".
	// +optional
	Job string `json:"job,omitempty"`
}
