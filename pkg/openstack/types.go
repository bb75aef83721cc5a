// SPDX-FileCopyrightText: SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package openstack

const (
	// Name is the name used for resources created by test runs.
	Name = "cloudtest"

	// AuthURL is a constant for the configuration key that holds the OpenStack auth url.
	AuthURL = "authURL"
	// DomainName is a constant for the configuration key that holds the OpenStack domain name.
	DomainName = "domainName"
	// TenantName is a constant for the configuration key that holds the OpenStack tenant name.
	TenantName = "tenantName"
	// UserName is a constant for the configuration key that holds the OpenStack username.
	UserName = "username"
	// Password is a constant for the configuration key that holds the OpenStack password.
	Password = "password"
	// ApplicationCredentialID is a constant for the configuration key that holds the OpenStack application credential id.
	ApplicationCredentialID = "applicationCredentialID"
	// ApplicationCredentialName is a constant for the configuration key that holds the OpenStack application credential name.
	ApplicationCredentialName = "applicationCredentialName"
	// ApplicationCredentialSecret is a constant for the configuration key that holds the OpenStack application credential secret.
	ApplicationCredentialSecret = "applicationCredentialSecret"
	// Region is a constant for the configuration key that holds the Openstack region.
	Region = "region"

	// EnvAuthURL is the environment variable used if the auth url is not configured.
	EnvAuthURL = "OS_AUTH_URL"
	// EnvDomainName is the environment variable used if the domain name is not configured.
	EnvDomainName = "OS_DOMAIN_NAME"
	// EnvUserDomainName is an alternative to EnvDomainName.
	EnvUserDomainName = "OS_USER_DOMAIN_NAME"
	// EnvTenantName is the environment variable used if the tenant name is not configured.
	EnvTenantName = "OS_PROJECT_NAME"
	// EnvUserName is the environment variable used if the username is not configured.
	EnvUserName = "OS_USERNAME"
	// EnvPassword is the environment variable used if the password is not configured.
	EnvPassword = "OS_PASSWORD"
	// EnvApplicationCredentialID is the environment variable used if the application credential id is not configured.
	EnvApplicationCredentialID = "OS_APPLICATION_CREDENTIAL_ID"
	// EnvApplicationCredentialName is the environment variable used if the application credential name is not configured.
	EnvApplicationCredentialName = "OS_APPLICATION_CREDENTIAL_NAME"
	// EnvApplicationCredentialSecret is the environment variable used if the application credential secret is not configured.
	EnvApplicationCredentialSecret = "OS_APPLICATION_CREDENTIAL_SECRET"
	// EnvRegionName is the environment variable used if the region is not configured.
	EnvRegionName = "OS_REGION_NAME"
	// EnvCACert is the environment variable pointing to a CA bundle file.
	EnvCACert = "OS_CACERT"
)

// Server statuses as reported by nova.
const (
	ServerStatusActive       = "ACTIVE"
	ServerStatusBuild        = "BUILD"
	ServerStatusShutoff      = "SHUTOFF"
	ServerStatusReboot       = "REBOOT"
	ServerStatusHardReboot   = "HARD_REBOOT"
	ServerStatusMigrating    = "MIGRATING"
	ServerStatusResize       = "RESIZE"
	ServerStatusVerifyResize = "VERIFY_RESIZE"
	ServerStatusPaused       = "PAUSED"
	ServerStatusSuspended    = "SUSPENDED"
	ServerStatusDeleted      = "DELETED"
	ServerStatusError        = "ERROR"
)

// Volume and volume snapshot statuses as reported by cinder.
const (
	VolumeStatusAvailable     = "available"
	VolumeStatusCreating      = "creating"
	VolumeStatusInUse         = "in-use"
	VolumeStatusAttaching     = "attaching"
	VolumeStatusDetaching     = "detaching"
	VolumeStatusDeleting      = "deleting"
	VolumeStatusError         = "error"
	VolumeStatusErrorDeleting = "error_deleting"
	VolumeStatusErrorRestore  = "error_restoring"
	VolumeStatusErrorExtend   = "error_extending"
)

// Image statuses as reported by glance.
const (
	ImageStatusQueued  = "queued"
	ImageStatusSaving  = "saving"
	ImageStatusActive  = "active"
	ImageStatusKilled  = "killed"
	ImageStatusDeleted = "deleted"
)

// Alarm states as reported by aodh.
const (
	AlarmStateOK               = "ok"
	AlarmStateAlarm            = "alarm"
	AlarmStateInsufficientData = "insufficient data"
)
