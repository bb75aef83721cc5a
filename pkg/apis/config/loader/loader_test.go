// SPDX-FileCopyrightText: SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package loader_test

import (
	"os"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/cjjingchen/avocado-cloudtest-sub000/pkg/apis/config"
	. "github.com/cjjingchen/avocado-cloudtest-sub000/pkg/apis/config/loader"
)

const testConfig = `apiVersion: cloudtest.config/v1alpha1
kind: TestConfiguration
openstack:
  authURL: https://keystone.example.com/v3
  domainName: default
  tenantName: test
  username: admin
  password: secret
  region: RegionOne
  imageRef: cirros
  flavorRef: m1.tiny
  networkID: net-1
ceph:
  endpoint: https://ceph-mgmt.example.com:9999/v1
  username: admin
  password: admin
  clusterID: "1"
ssh:
  user: root
  privateKeyFile: /root/.ssh/id_rsa
  hosts:
  - name: ceph-1
    address: 10.0.0.11
wait:
  pollInterval: 2s
timeouts:
  volume: 3m
`

var _ = Describe("Loader", func() {
	Describe("#Load", func() {
		It("should decode and default the configuration", func() {
			cfg, err := Load([]byte(testConfig))
			Expect(err).NotTo(HaveOccurred())

			Expect(cfg.OpenStack.AuthURL).To(Equal("https://keystone.example.com/v3"))
			Expect(*cfg.OpenStack.VolumeSize).To(Equal(config.DefaultVolumeSize))
			Expect(cfg.Ceph.ClusterID).To(Equal("1"))
			Expect(*cfg.SSH.Port).To(Equal(22))
			Expect(cfg.SSH.Hosts).To(ConsistOf(config.Host{Name: "ceph-1", Address: "10.0.0.11"}))
			Expect(cfg.Wait.PollInterval.Duration).To(Equal(2 * time.Second))
			Expect(cfg.Timeouts.Volume.Duration).To(Equal(3 * time.Minute))
			Expect(cfg.Timeouts.Image.Duration).To(Equal(10 * time.Minute))
		})

		It("should return a defaulted configuration for empty input", func() {
			cfg, err := Load(nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Kind).To(Equal(config.Kind))
			Expect(cfg.Wait.PollInterval.Duration).To(Equal(5 * time.Second))
		})

		It("should reject unknown fields", func() {
			_, err := Load([]byte("wait:\n  pollIntervall: 2s\n"))
			Expect(err).To(MatchError(ContainSubstring("pollIntervall")))
		})

		It("should reject other kinds", func() {
			_, err := Load([]byte("apiVersion: cloudtest.config/v1alpha1\nkind: Config\n"))
			Expect(err).To(MatchError(ContainSubstring(`unsupported kind "Config"`)))
		})
	})

	Describe("#LoadFromFile", func() {
		It("should load the configuration from a file", func() {
			path := filepath.Join(GinkgoT().TempDir(), "config.yaml")
			Expect(os.WriteFile(path, []byte(testConfig), 0600)).To(Succeed())

			cfg, err := LoadFromFile(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.OpenStack.Region).To(Equal("RegionOne"))
		})

		It("should fail for missing files", func() {
			_, err := LoadFromFile(filepath.Join(GinkgoT().TempDir(), "missing.yaml"))
			Expect(err).To(HaveOccurred())
		})
	})
})
