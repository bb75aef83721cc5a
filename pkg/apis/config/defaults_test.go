// SPDX-FileCopyrightText: SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package config_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/utils/ptr"

	. "github.com/cjjingchen/avocado-cloudtest-sub000/pkg/apis/config"
	"github.com/cjjingchen/avocado-cloudtest-sub000/pkg/wait"
)

var _ = Describe("Defaults", func() {
	Describe("#SetDefaults_TestConfiguration", func() {
		var obj *TestConfiguration

		BeforeEach(func() {
			obj = &TestConfiguration{}
		})

		It("should default the wait settings and timeouts", func() {
			SetDefaults_TestConfiguration(obj)

			Expect(obj.Kind).To(Equal(Kind))
			Expect(obj.Wait.PollInterval).To(Equal(&metav1.Duration{Duration: 5 * time.Second}))
			Expect(obj.Wait.InitialDelay).To(Equal(&metav1.Duration{}))
			Expect(obj.Wait.DefaultTimeout).To(Equal(&metav1.Duration{Duration: 5 * time.Minute}))
			Expect(obj.Timeouts.ServerActive.Duration).To(Equal(10 * time.Minute))
			Expect(obj.Timeouts.Volume.Duration).To(Equal(5 * time.Minute))
			Expect(obj.Timeouts.Image.Duration).To(Equal(10 * time.Minute))
			Expect(obj.Timeouts.Migration.Duration).To(Equal(15 * time.Minute))
			Expect(obj.Timeouts.ClusterDeploy.Duration).To(Equal(30 * time.Minute))
			Expect(obj.OpenStack).To(BeNil())
			Expect(obj.Ceph).To(BeNil())
		})

		It("should not overwrite already set values", func() {
			obj.Wait.PollInterval = &metav1.Duration{Duration: time.Second}
			obj.Timeouts.Volume = &metav1.Duration{Duration: time.Hour}
			obj.SSH = &SSH{Port: ptr.To(2222)}

			SetDefaults_TestConfiguration(obj)

			Expect(obj.Wait.PollInterval.Duration).To(Equal(time.Second))
			Expect(obj.Timeouts.Volume.Duration).To(Equal(time.Hour))
			Expect(obj.SSH.Port).To(Equal(ptr.To(2222)))
			Expect(obj.SSH.ConnectTimeout.Duration).To(Equal(10 * time.Second))
		})

		It("should default the optional sections if present", func() {
			obj.OpenStack = &OpenStack{}
			obj.Ceph = &Ceph{}
			obj.Metrics = &Metrics{}

			SetDefaults_TestConfiguration(obj)

			Expect(obj.OpenStack.VolumeSize).To(Equal(ptr.To(DefaultVolumeSize)))
			Expect(obj.Ceph.MaxRetries).To(Equal(ptr.To(3)))
			Expect(obj.Ceph.ValidateResponses).To(Equal(ptr.To(true)))
			Expect(obj.Metrics.Job).To(Equal("cloudtest"))
		})
	})

	Describe("#Policy", func() {
		It("should combine the wait settings with the given timeout", func() {
			obj := &TestConfiguration{}
			SetDefaults_TestConfiguration(obj)
			obj.Wait.InitialDelay = &metav1.Duration{Duration: 2 * time.Second}

			Expect(obj.Policy(obj.Timeouts.Image)).To(Equal(wait.Policy{
				Timeout:      10 * time.Minute,
				InitialDelay: 2 * time.Second,
				PollInterval: 5 * time.Second,
			}))
		})

		It("should fall back to the default timeout", func() {
			obj := &TestConfiguration{Wait: Wait{DefaultTimeout: &metav1.Duration{Duration: time.Minute}}}

			Expect(obj.Policy(nil)).To(Equal(wait.Policy{Timeout: time.Minute, PollInterval: wait.DefaultPollInterval}))
		})
	})

	Describe("#Host", func() {
		It("should find hosts by name", func() {
			ssh := &SSH{Hosts: []Host{{Name: "node-1", Address: "10.0.0.1"}}}

			host, ok := ssh.Host("node-1")
			Expect(ok).To(BeTrue())
			Expect(host.Address).To(Equal("10.0.0.1"))

			_, ok = ssh.Host("node-2")
			Expect(ok).To(BeFalse())
		})
	})
})
