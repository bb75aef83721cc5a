// SPDX-FileCopyrightText: SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package validation_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	. "github.com/onsi/gomega/gstruct"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/util/validation/field"
	"k8s.io/utils/ptr"

	"github.com/cjjingchen/avocado-cloudtest-sub000/pkg/apis/config"
	. "github.com/cjjingchen/avocado-cloudtest-sub000/pkg/apis/config/validation"
)

var _ = Describe("Validation", func() {
	var cfg *config.TestConfiguration

	BeforeEach(func() {
		cfg = &config.TestConfiguration{
			OpenStack: &config.OpenStack{
				AuthURL:    "https://keystone.example.com/v3",
				DomainName: "default",
				TenantName: "test",
				Username:   "admin",
				Password:   "secret",
			},
			Ceph: &config.Ceph{
				Endpoint: "https://ceph-mgmt.example.com:9999/v1",
				Username: "admin",
				Password: "admin",
			},
			SSH: &config.SSH{
				User:           "root",
				PrivateKeyFile: "/root/.ssh/id_rsa",
				Hosts:          []config.Host{{Name: "ceph-1", Address: "10.0.0.11"}},
			},
		}
		config.SetDefaults_TestConfiguration(cfg)
	})

	It("should accept a valid configuration", func() {
		Expect(ValidateTestConfiguration(cfg)).To(BeEmpty())
	})

	It("should accept a configuration without optional sections", func() {
		cfg = &config.TestConfiguration{}
		config.SetDefaults_TestConfiguration(cfg)

		Expect(ValidateTestConfiguration(cfg)).To(BeEmpty())
	})

	It("should forbid whitespace around the tenant name", func() {
		cfg.OpenStack.TenantName = " test"

		Expect(ValidateTestConfiguration(cfg)).To(ConsistOf(PointTo(MatchFields(IgnoreExtras, Fields{
			"Type":  Equal(field.ErrorTypeInvalid),
			"Field": Equal("openstack.tenantName"),
		}))))
	})

	It("should forbid non-http auth URLs", func() {
		cfg.OpenStack.AuthURL = "ftp://keystone"

		Expect(ValidateTestConfiguration(cfg)).To(ConsistOf(PointTo(MatchFields(IgnoreExtras, Fields{
			"Type":  Equal(field.ErrorTypeInvalid),
			"Field": Equal("openstack.authURL"),
		}))))
	})

	It("should require the ceph endpoint", func() {
		cfg.Ceph.Endpoint = ""

		Expect(ValidateTestConfiguration(cfg)).To(ConsistOf(PointTo(MatchFields(IgnoreExtras, Fields{
			"Type":  Equal(field.ErrorTypeRequired),
			"Field": Equal("ceph.endpoint"),
		}))))
	})

	It("should forbid duplicate and incomplete hosts", func() {
		cfg.SSH.Hosts = append(cfg.SSH.Hosts, config.Host{Name: "ceph-1"})

		Expect(ValidateTestConfiguration(cfg)).To(ConsistOf(
			PointTo(MatchFields(IgnoreExtras, Fields{
				"Type":  Equal(field.ErrorTypeDuplicate),
				"Field": Equal("ssh.hosts[1].name"),
			})),
			PointTo(MatchFields(IgnoreExtras, Fields{
				"Type":  Equal(field.ErrorTypeRequired),
				"Field": Equal("ssh.hosts[1].address"),
			})),
		))
	})

	It("should forbid invalid ports", func() {
		cfg.SSH.Port = ptr.To(70000)

		Expect(ValidateTestConfiguration(cfg)).To(ConsistOf(PointTo(MatchFields(IgnoreExtras, Fields{
			"Field": Equal("ssh.port"),
		}))))
	})

	It("should forbid a zero poll interval and negative timeouts", func() {
		cfg.Wait.PollInterval = &metav1.Duration{}
		cfg.Timeouts.Volume = &metav1.Duration{Duration: -time.Second}

		Expect(ValidateTestConfiguration(cfg)).To(ConsistOf(
			PointTo(MatchFields(IgnoreExtras, Fields{"Field": Equal("wait.pollInterval")})),
			PointTo(MatchFields(IgnoreExtras, Fields{"Field": Equal("timeouts.volume")})),
		))
	})

	It("should allow zero timeouts", func() {
		cfg.Timeouts.Image = &metav1.Duration{}

		Expect(ValidateTestConfiguration(cfg)).To(BeEmpty())
	})
})
