// SPDX-FileCopyrightText: SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

// Package framework contains the shared setup of the integration suites.
package framework

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/go-logr/logr"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	logf "sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"

	"github.com/cjjingchen/avocado-cloudtest-sub000/pkg/apis/config"
	configloader "github.com/cjjingchen/avocado-cloudtest-sub000/pkg/apis/config/loader"
	configvalidation "github.com/cjjingchen/avocado-cloudtest-sub000/pkg/apis/config/validation"
	"github.com/cjjingchen/avocado-cloudtest-sub000/pkg/cmd"
	"github.com/cjjingchen/avocado-cloudtest-sub000/pkg/metrics"
	"github.com/cjjingchen/avocado-cloudtest-sub000/pkg/utils"
	"github.com/cjjingchen/avocado-cloudtest-sub000/pkg/wait"
)

const (
	cleanupRetries = 5
	cleanupDelay   = 10 * time.Second
)

var configFile = flag.String("config", "", "path to the test configuration, defaults to $"+cmd.ConfigFileEnv)

// Framework is the state shared by the specs of an integration suite.
type Framework struct {
	Log      logr.Logger
	Config   *config.TestConfiguration
	Recorder *metrics.Recorder
}

// New loads the test configuration and skips the suite if none is given. It must be called from BeforeSuite.
func New(name string) *Framework {
	logf.SetLogger(zap.New(zap.UseDevMode(true), zap.WriteTo(GinkgoWriter)))

	path := *configFile
	if path == "" {
		path = os.Getenv(cmd.ConfigFileEnv)
	}
	if path == "" {
		Skip(fmt.Sprintf("no test configuration given, use --config or $%s", cmd.ConfigFileEnv))
	}

	cfg, err := configloader.LoadFromFile(path)
	Expect(err).NotTo(HaveOccurred())
	Expect(configvalidation.ValidateTestConfiguration(cfg)).To(BeEmpty())

	return &Framework{
		Log:      logf.Log.WithName(name),
		Config:   cfg,
		Recorder: metrics.NewRecorder(),
	}
}

// WaitOptions returns the options every wait of the suite runs with.
func (f *Framework) WaitOptions() []wait.Option {
	return []wait.Option{f.Recorder.Option()}
}

// RequireOpenStack skips the calling spec or container if the OpenStack section is missing.
func (f *Framework) RequireOpenStack() *config.OpenStack {
	if f.Config.OpenStack == nil {
		Skip("test configuration has no openstack section")
	}
	return f.Config.OpenStack
}

// RequireCeph skips the calling spec or container if the Ceph section is missing.
func (f *Framework) RequireCeph() *config.Ceph {
	if f.Config.Ceph == nil || f.Config.Ceph.ClusterID == "" {
		Skip("test configuration has no ceph section with a cluster ID")
	}
	return f.Config.Ceph
}

// RequireSSH skips the calling spec or container if the SSH section is missing.
func (f *Framework) RequireSSH() *config.SSH {
	if f.Config.SSH == nil {
		Skip("test configuration has no ssh section")
	}
	return f.Config.SSH
}

// Cleanup registers fn to run when the current spec or container ends. fn is retried because resources are
// often still busy when the spec finishes.
func (f *Framework) Cleanup(description string, fn func(ctx context.Context) error) {
	DeferCleanup(func(ctx SpecContext) {
		By("cleaning up " + description)
		err := utils.Retry(ctx, cleanupRetries, cleanupDelay, f.Log.WithValues("cleanup", description), func() error {
			return fn(ctx)
		})
		Expect(err).NotTo(HaveOccurred(), "cleanup of %s failed", description)
	}, NodeTimeout(5*time.Minute))
}

// PushMetrics pushes the recorded metrics if a Pushgateway is configured. It must be called from AfterSuite.
func (f *Framework) PushMetrics(ctx context.Context) {
	if f == nil || f.Config.Metrics == nil || f.Config.Metrics.PushgatewayURL == "" {
		return
	}
	Expect(f.Recorder.Push(ctx, f.Config.Metrics.PushgatewayURL, f.Config.Metrics.Job)).To(Succeed())
}
