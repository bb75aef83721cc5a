// SPDX-FileCopyrightText: SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package validation

import (
	"fmt"
	"net/url"
	"strings"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/util/sets"
	"k8s.io/apimachinery/pkg/util/validation/field"

	"github.com/cjjingchen/avocado-cloudtest-sub000/pkg/apis/config"
)

const tenantNameMaxLen = 64

// ValidateTestConfiguration validates a defaulted TestConfiguration object.
func ValidateTestConfiguration(cfg *config.TestConfiguration) field.ErrorList {
	allErrs := field.ErrorList{}

	if cfg.OpenStack != nil {
		allErrs = append(allErrs, ValidateOpenStack(cfg.OpenStack, field.NewPath("openstack"))...)
	}
	if cfg.Ceph != nil {
		allErrs = append(allErrs, ValidateCeph(cfg.Ceph, field.NewPath("ceph"))...)
	}
	if cfg.SSH != nil {
		allErrs = append(allErrs, ValidateSSH(cfg.SSH, field.NewPath("ssh"))...)
	}
	if cfg.Metrics != nil {
		allErrs = append(allErrs, validateURL(cfg.Metrics.PushgatewayURL, true, field.NewPath("metrics", "pushgatewayURL"))...)
	}

	waitPath := field.NewPath("wait")
	allErrs = append(allErrs, validateDuration(cfg.Wait.PollInterval, false, waitPath.Child("pollInterval"))...)
	allErrs = append(allErrs, validateDuration(cfg.Wait.InitialDelay, true, waitPath.Child("initialDelay"))...)
	allErrs = append(allErrs, validateDuration(cfg.Wait.DefaultTimeout, true, waitPath.Child("defaultTimeout"))...)

	timeoutsPath := field.NewPath("timeouts")
	for name, d := range map[string]*metav1.Duration{
		"serverActive":  cfg.Timeouts.ServerActive,
		"serverDeleted": cfg.Timeouts.ServerDeleted,
		"migration":     cfg.Timeouts.Migration,
		"volume":        cfg.Timeouts.Volume,
		"image":         cfg.Timeouts.Image,
		"alarm":         cfg.Timeouts.Alarm,
		"clusterDeploy": cfg.Timeouts.ClusterDeploy,
		"cephResource":  cfg.Timeouts.CephResource,
		"osdState":      cfg.Timeouts.OSDState,
		"remoteBackup":  cfg.Timeouts.RemoteBackup,
		"failover":      cfg.Timeouts.Failover,
	} {
		allErrs = append(allErrs, validateDuration(d, true, timeoutsPath.Child(name))...)
	}

	return allErrs
}

// ValidateOpenStack validates the OpenStack section. Credentials may be left empty if they are taken from the environment.
func ValidateOpenStack(os *config.OpenStack, fldPath *field.Path) field.ErrorList {
	allErrs := field.ErrorList{}

	// domainName, tenantName, and userName must not contain leading or trailing whitespace
	for key, value := range map[string]string{
		"domainName":                  os.DomainName,
		"tenantName":                  os.TenantName,
		"username":                    os.Username,
		"applicationCredentialID":     os.ApplicationCredentialID,
		"applicationCredentialName":   os.ApplicationCredentialName,
		"applicationCredentialSecret": os.ApplicationCredentialSecret,
	} {
		if strings.TrimSpace(value) != value {
			allErrs = append(allErrs, field.Invalid(fldPath.Child(key), value, "must not contain leading or trailing whitespace"))
		}
	}

	if len(os.TenantName) > tenantNameMaxLen {
		allErrs = append(allErrs, field.TooLong(fldPath.Child("tenantName"), os.TenantName, tenantNameMaxLen))
	}
	if strings.Trim(os.Password, "\n\r") != os.Password {
		allErrs = append(allErrs, field.Invalid(fldPath.Child("password"), "", "must not contain leading or trailing new lines"))
	}
	if os.AuthURL != "" {
		allErrs = append(allErrs, validateURL(os.AuthURL, true, fldPath.Child("authURL"))...)
	}
	if os.Insecure && os.CACert != "" {
		allErrs = append(allErrs, field.Forbidden(fldPath.Child("insecure"), "must not be set together with caCert"))
	}
	if os.VolumeSize != nil && *os.VolumeSize <= 0 {
		allErrs = append(allErrs, field.Invalid(fldPath.Child("volumeSize"), *os.VolumeSize, "must be positive"))
	}

	return allErrs
}

// ValidateCeph validates the Ceph section.
func ValidateCeph(ceph *config.Ceph, fldPath *field.Path) field.ErrorList {
	allErrs := field.ErrorList{}

	if ceph.Endpoint == "" {
		allErrs = append(allErrs, field.Required(fldPath.Child("endpoint"), "must provide the management API endpoint"))
	} else {
		allErrs = append(allErrs, validateURL(ceph.Endpoint, true, fldPath.Child("endpoint"))...)
	}
	if ceph.Password != "" && ceph.Username == "" {
		allErrs = append(allErrs, field.Required(fldPath.Child("username"), "must provide a username together with a password"))
	}
	if ceph.MaxRetries != nil && *ceph.MaxRetries < 0 {
		allErrs = append(allErrs, field.Invalid(fldPath.Child("maxRetries"), *ceph.MaxRetries, "must not be negative"))
	}
	allErrs = append(allErrs, validateDuration(ceph.RequestTimeout, false, fldPath.Child("requestTimeout"))...)

	return allErrs
}

// ValidateSSH validates the SSH section.
func ValidateSSH(ssh *config.SSH, fldPath *field.Path) field.ErrorList {
	allErrs := field.ErrorList{}

	if ssh.User == "" {
		allErrs = append(allErrs, field.Required(fldPath.Child("user"), "must provide a login user"))
	}
	if ssh.PrivateKeyFile == "" {
		allErrs = append(allErrs, field.Required(fldPath.Child("privateKeyFile"), "must provide a private key file"))
	}
	if ssh.Port != nil && (*ssh.Port <= 0 || *ssh.Port > 65535) {
		allErrs = append(allErrs, field.Invalid(fldPath.Child("port"), *ssh.Port, "must be a valid port"))
	}
	if ssh.MaxRetries != nil && *ssh.MaxRetries <= 0 {
		allErrs = append(allErrs, field.Invalid(fldPath.Child("maxRetries"), *ssh.MaxRetries, "must be positive"))
	}
	allErrs = append(allErrs, validateDuration(ssh.ConnectTimeout, false, fldPath.Child("connectTimeout"))...)
	allErrs = append(allErrs, validateDuration(ssh.RetryDelay, true, fldPath.Child("retryDelay"))...)

	names := sets.New[string]()
	for i, host := range ssh.Hosts {
		idxPath := fldPath.Child("hosts").Index(i)
		if host.Name == "" {
			allErrs = append(allErrs, field.Required(idxPath.Child("name"), "must provide a name"))
		} else if names.Has(host.Name) {
			allErrs = append(allErrs, field.Duplicate(idxPath.Child("name"), host.Name))
		}
		names.Insert(host.Name)
		if host.Address == "" {
			allErrs = append(allErrs, field.Required(idxPath.Child("address"), "must provide an address"))
		}
	}

	return allErrs
}

func validateDuration(d *metav1.Duration, allowZero bool, fldPath *field.Path) field.ErrorList {
	allErrs := field.ErrorList{}
	if d == nil {
		return allErrs
	}
	if d.Duration < 0 || (!allowZero && d.Duration == 0) {
		allErrs = append(allErrs, field.Invalid(fldPath, d.Duration.String(), "must be positive"))
	}
	return allErrs
}

func validateURL(raw string, requireHTTP bool, fldPath *field.Path) field.ErrorList {
	allErrs := field.ErrorList{}
	if raw == "" {
		return append(allErrs, field.Required(fldPath, "must provide a URL"))
	}
	u, err := url.Parse(raw)
	if err != nil {
		return append(allErrs, field.Invalid(fldPath, raw, fmt.Sprintf("must be a valid URL: %v", err)))
	}
	if requireHTTP && u.Scheme != "http" && u.Scheme != "https" {
		allErrs = append(allErrs, field.Invalid(fldPath, raw, "must be an http or https URL"))
	}
	if u.Host == "" {
		allErrs = append(allErrs, field.Invalid(fldPath, raw, "must contain a host"))
	}
	return allErrs
}
