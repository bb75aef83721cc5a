// SPDX-FileCopyrightText: SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"context"
	"errors"
	goflag "flag"
	"fmt"

	"github.com/spf13/cobra"
	"k8s.io/component-base/version/verflag"
	logf "sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"

	"github.com/cjjingchen/avocado-cloudtest-sub000/pkg/cmd"
	"github.com/cjjingchen/avocado-cloudtest-sub000/pkg/metrics"
	"github.com/cjjingchen/avocado-cloudtest-sub000/pkg/wait"
)

// Name is the name of the command.
const Name = "cloudtest"

var log = logf.Log.WithName(Name)

// rootOptions are the options shared by all subcommands.
type rootOptions struct {
	config  *cmd.ConfigOptions
	metrics *cmd.MetricsOptions
	zap     *zap.Options
}

// complete loads the test configuration together with the given options of a subcommand.
func (o *rootOptions) complete(options ...cmd.Option) (*cmd.Config, error) {
	aggOption := cmd.NewOptionAggregator(o.config, o.metrics)
	aggOption.Register(options...)
	if err := aggOption.Complete(); err != nil {
		return nil, fmt.Errorf("error completing options: %w", err)
	}

	cfg := o.config.Completed()
	o.metrics.ApplyConfig(cfg.Config)
	return cfg, nil
}

// runWait runs fn with options recording every wait and pushes the recorded metrics afterwards if a
// Pushgateway is configured. Metrics are pushed even if fn fails.
func (o *rootOptions) runWait(ctx context.Context, fn func(opts ...wait.Option) error) error {
	recorder := metrics.NewRecorder()
	err := fn(recorder.Option())

	if o.metrics.PushgatewayURL != "" {
		log.V(1).Info("Pushing wait metrics", "url", o.metrics.PushgatewayURL, "job", o.metrics.Job, "waits", recorder.Observed())
		if pushErr := recorder.Push(context.WithoutCancel(ctx), o.metrics.PushgatewayURL, o.metrics.Job); pushErr != nil {
			err = errors.Join(err, fmt.Errorf("could not push metrics: %w", pushErr))
		}
	}
	return err
}

// NewCloudtestCommand creates a new command for waiting on and checking the resources of a test environment.
func NewCloudtestCommand(ctx context.Context) *cobra.Command {
	o := &rootOptions{
		config:  &cmd.ConfigOptions{},
		metrics: &cmd.MetricsOptions{},
		zap:     &zap.Options{},
	}

	root := &cobra.Command{
		Use:           Name,
		Short:         "Waits for and checks resources of OpenStack and Ceph test environments.",
		SilenceUsage:  true,
		SilenceErrors: true,

		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			verflag.PrintAndExitIfRequested()
			logf.SetLogger(zap.New(zap.UseFlagOptions(o.zap)))
		},
		RunE: func(c *cobra.Command, _ []string) error {
			return c.Help()
		},
	}

	flags := root.PersistentFlags()
	verflag.AddFlags(flags)
	o.config.AddFlags(flags)
	o.metrics.AddFlags(flags)

	zapFlags := goflag.NewFlagSet("zap", goflag.ContinueOnError)
	o.zap.BindFlags(zapFlags)
	flags.AddGoFlagSet(zapFlags)

	root.AddCommand(
		newValidateConfigCommand(o),
		newOpenStackCommand(ctx, o),
		newCephCommand(ctx, o),
		newSSHCommand(ctx, o),
	)
	return root
}
