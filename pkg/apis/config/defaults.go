// SPDX-FileCopyrightText: SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"time"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/utils/ptr"

	"github.com/cjjingchen/avocado-cloudtest-sub000/pkg/wait"
)

const (
	// DefaultVolumeSize is the size in GiB of test volumes.
	DefaultVolumeSize = 1
	// DefaultSSHPort is the default port of remote hosts.
	DefaultSSHPort = 22
	// DefaultMetricsJob is the default job label of pushed metrics.
	DefaultMetricsJob = "cloudtest"
)

func duration(d time.Duration) *metav1.Duration {
	return &metav1.Duration{Duration: d}
}

// SetDefaults_TestConfiguration sets the defaults of all sections.
func SetDefaults_TestConfiguration(obj *TestConfiguration) {
	if obj.APIVersion == "" {
		obj.APIVersion = APIVersion
	}
	if obj.Kind == "" {
		obj.Kind = Kind
	}
	if obj.OpenStack != nil {
		SetDefaults_OpenStack(obj.OpenStack)
	}
	if obj.Ceph != nil {
		SetDefaults_Ceph(obj.Ceph)
	}
	if obj.SSH != nil {
		SetDefaults_SSH(obj.SSH)
	}
	if obj.Metrics != nil {
		SetDefaults_Metrics(obj.Metrics)
	}
	SetDefaults_Wait(&obj.Wait)
	SetDefaults_Timeouts(&obj.Timeouts)
}

// SetDefaults_OpenStack sets the default volume size.
func SetDefaults_OpenStack(obj *OpenStack) {
	if obj.VolumeSize == nil {
		obj.VolumeSize = ptr.To(DefaultVolumeSize)
	}
}

// SetDefaults_Ceph sets the request timeout to 30s, the retries to 3 and enables response validation.
func SetDefaults_Ceph(obj *Ceph) {
	if obj.RequestTimeout == nil {
		obj.RequestTimeout = duration(30 * time.Second)
	}
	if obj.MaxRetries == nil {
		obj.MaxRetries = ptr.To(3)
	}
	if obj.ValidateResponses == nil {
		obj.ValidateResponses = ptr.To(true)
	}
}

// SetDefaults_SSH sets the port to 22 and the connect timeout to 10s with 3 attempts.
func SetDefaults_SSH(obj *SSH) {
	if obj.Port == nil {
		obj.Port = ptr.To(DefaultSSHPort)
	}
	if obj.ConnectTimeout == nil {
		obj.ConnectTimeout = duration(10 * time.Second)
	}
	if obj.MaxRetries == nil {
		obj.MaxRetries = ptr.To(3)
	}
	if obj.RetryDelay == nil {
		obj.RetryDelay = duration(5 * time.Second)
	}
}

// SetDefaults_Wait sets the poll interval to 5s and the default timeout to 5m.
func SetDefaults_Wait(obj *Wait) {
	if obj.PollInterval == nil {
		obj.PollInterval = duration(wait.DefaultPollInterval)
	}
	if obj.InitialDelay == nil {
		obj.InitialDelay = duration(0)
	}
	if obj.DefaultTimeout == nil {
		obj.DefaultTimeout = duration(5 * time.Minute)
	}
}

// SetDefaults_Timeouts sets the per resource timeouts.
func SetDefaults_Timeouts(obj *Timeouts) {
	defaults := []struct {
		field **metav1.Duration
		value time.Duration
	}{
		{&obj.ServerActive, 10 * time.Minute},
		{&obj.ServerDeleted, 5 * time.Minute},
		{&obj.Migration, 15 * time.Minute},
		{&obj.Volume, 5 * time.Minute},
		{&obj.Image, 10 * time.Minute},
		{&obj.Alarm, 10 * time.Minute},
		{&obj.ClusterDeploy, 30 * time.Minute},
		{&obj.CephResource, 5 * time.Minute},
		{&obj.OSDState, 10 * time.Minute},
		{&obj.RemoteBackup, 30 * time.Minute},
		{&obj.Failover, 5 * time.Minute},
	}
	for _, d := range defaults {
		if *d.field == nil {
			*d.field = duration(d.value)
		}
	}
}

// SetDefaults_Metrics sets the job label.
func SetDefaults_Metrics(obj *Metrics) {
	if obj.Job == "" {
		obj.Job = DefaultMetricsJob
	}
}

// Policy returns the wait policy for the given timeout using the configured poll interval and initial delay.
// A nil timeout falls back to the configured default timeout.
func (c *TestConfiguration) Policy(timeout *metav1.Duration) wait.Policy {
	policy := wait.Policy{PollInterval: wait.DefaultPollInterval}
	if c.Wait.PollInterval != nil {
		policy.PollInterval = c.Wait.PollInterval.Duration
	}
	if c.Wait.InitialDelay != nil {
		policy.InitialDelay = c.Wait.InitialDelay.Duration
	}
	switch {
	case timeout != nil:
		policy.Timeout = timeout.Duration
	case c.Wait.DefaultTimeout != nil:
		policy.Timeout = c.Wait.DefaultTimeout.Duration
	}
	return policy
}

// Host returns the host with the given name.
func (s *SSH) Host(name string) (Host, bool) {
	for _, h := range s.Hosts {
		if h.Name == name {
			return h, true
		}
	}
	return Host{}, false
}
