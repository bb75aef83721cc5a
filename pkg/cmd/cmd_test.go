// SPDX-FileCopyrightText: SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package cmd_test

import (
	"os"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/pflag"

	"github.com/cjjingchen/avocado-cloudtest-sub000/pkg/apis/config"
	. "github.com/cjjingchen/avocado-cloudtest-sub000/pkg/cmd"
)

var _ = Describe("Options", func() {
	var dir string

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
	})

	writeConfig := func(content string) string {
		path := filepath.Join(dir, "config.yaml")
		Expect(os.WriteFile(path, []byte(content), 0600)).To(Succeed())
		return path
	}

	Describe("ConfigOptions", func() {
		It("should load the config file given by flag", func() {
			path := writeConfig("ceph:\n  endpoint: https://ceph:9999/v1\n")
			opts := &ConfigOptions{}
			fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
			opts.AddFlags(fs)
			Expect(fs.Parse([]string{"--config-file", path})).To(Succeed())

			Expect(opts.Complete()).To(Succeed())
			cfg := opts.Completed()
			Expect(cfg.Config.Ceph.Endpoint).To(Equal("https://ceph:9999/v1"))

			ceph, err := cfg.Ceph()
			Expect(err).NotTo(HaveOccurred())
			Expect(ceph.Endpoint).To(Equal("https://ceph:9999/v1"))
			_, err = cfg.OpenStack()
			Expect(err).To(MatchError(ContainSubstring("no openstack section")))
		})

		It("should fall back to the environment", func() {
			path := writeConfig("wait:\n  pollInterval: 1s\n")
			GinkgoT().Setenv(ConfigFileEnv, path)

			opts := &ConfigOptions{}
			Expect(opts.Complete()).To(Succeed())
			Expect(opts.Completed().Config.Wait.PollInterval.Duration).To(Equal(time.Second))
		})

		It("should fail without a path", func() {
			GinkgoT().Setenv(ConfigFileEnv, "")

			Expect((&ConfigOptions{}).Complete()).To(MatchError(ContainSubstring("config file path not set")))
		})

		It("should fail for an invalid configuration", func() {
			path := writeConfig("ceph:\n  endpoint: \"\"\n")

			Expect((&ConfigOptions{ConfigFilePath: path}).Complete()).To(MatchError(ContainSubstring("ceph.endpoint")))
		})
	})

	Describe("OptionAggregator", func() {
		It("should complete all options and join their errors", func() {
			agg := NewOptionAggregator(&WaitOptions{Timeout: -1}, &MetricsOptions{PushgatewayURL: "::"})

			err := agg.Complete()
			Expect(err).To(MatchError(ContainSubstring("timeout must not be negative")))
			Expect(err).To(MatchError(ContainSubstring("invalid pushgateway URL")))
		})
	})

	Describe("WaitOptions", func() {
		It("should override the configured policy", func() {
			cfg := &config.TestConfiguration{}
			config.SetDefaults_TestConfiguration(cfg)

			policy := (&WaitOptions{Timeout: time.Minute}).Policy(cfg, cfg.Timeouts.Image)
			Expect(policy.Timeout).To(Equal(time.Minute))
			Expect(policy.PollInterval).To(Equal(5 * time.Second))

			policy = (&WaitOptions{}).Policy(cfg, cfg.Timeouts.Image)
			Expect(policy.Timeout).To(Equal(10 * time.Minute))
		})

		It("should honor an explicit zero timeout", func() {
			cfg := &config.TestConfiguration{}
			config.SetDefaults_TestConfiguration(cfg)

			opts := &WaitOptions{}
			fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
			opts.AddFlags(fs)
			Expect(fs.Parse([]string{"--timeout", "0"})).To(Succeed())
			Expect(opts.Complete()).To(Succeed())

			policy := opts.Policy(cfg, cfg.Timeouts.Image)
			Expect(policy.Timeout).To(BeZero())
			Expect(policy.PollInterval).To(Equal(5 * time.Second))
		})

		It("should keep the configured timeout if the flag is not given", func() {
			cfg := &config.TestConfiguration{}
			config.SetDefaults_TestConfiguration(cfg)

			opts := &WaitOptions{}
			fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
			opts.AddFlags(fs)
			Expect(fs.Parse(nil)).To(Succeed())
			Expect(opts.Complete()).To(Succeed())

			Expect(opts.Policy(cfg, cfg.Timeouts.Image).Timeout).To(Equal(10 * time.Minute))
		})

		It("should reject an explicit zero poll interval", func() {
			opts := &WaitOptions{}
			fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
			opts.AddFlags(fs)
			Expect(fs.Parse([]string{"--poll-interval", "0s"})).To(Succeed())

			Expect(opts.Complete()).To(MatchError("poll interval must be positive"))
		})
	})

	Describe("MetricsOptions", func() {
		It("should take the pushgateway from the configuration", func() {
			opts := &MetricsOptions{Job: config.DefaultMetricsJob}
			opts.ApplyConfig(&config.TestConfiguration{Metrics: &config.Metrics{PushgatewayURL: "http://pushgateway:9091", Job: "nightly"}})

			Expect(opts.PushgatewayURL).To(Equal("http://pushgateway:9091"))
			Expect(opts.Job).To(Equal("nightly"))
		})

		It("should take the job from the configuration if the pushgateway is given by flag", func() {
			opts := &MetricsOptions{PushgatewayURL: "http://flag:9091", Job: config.DefaultMetricsJob}
			opts.ApplyConfig(&config.TestConfiguration{Metrics: &config.Metrics{PushgatewayURL: "http://pushgateway:9091", Job: "nightly"}})

			Expect(opts.PushgatewayURL).To(Equal("http://flag:9091"))
			Expect(opts.Job).To(Equal("nightly"))
		})

		It("should keep a job given by flag", func() {
			opts := &MetricsOptions{Job: "release"}
			opts.ApplyConfig(&config.TestConfiguration{Metrics: &config.Metrics{Job: "nightly"}})

			Expect(opts.Job).To(Equal("release"))
		})
	})
})
