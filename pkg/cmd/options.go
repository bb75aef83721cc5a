// SPDX-FileCopyrightText: SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/spf13/pflag"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/cjjingchen/avocado-cloudtest-sub000/pkg/apis/config"
	"github.com/cjjingchen/avocado-cloudtest-sub000/pkg/wait"
)

// Flagger adds flags to a given FlagSet.
type Flagger interface {
	AddFlags(fs *pflag.FlagSet)
}

// Completer completes some work.
type Completer interface {
	Complete() error
}

// Option is a Flagger and Completer.
type Option interface {
	Flagger
	Completer
}

// OptionAggregator is a builder that aggregates multiple options.
type OptionAggregator []Option

// NewOptionAggregator instantiates a new OptionAggregator and registers all given options.
func NewOptionAggregator(options ...Option) OptionAggregator {
	var builder OptionAggregator
	builder.Register(options...)
	return builder
}

// Register registers the given options in this OptionAggregator.
func (b *OptionAggregator) Register(options ...Option) {
	*b = append(*b, options...)
}

// AddFlags implements Flagger.AddFlags.
func (b *OptionAggregator) AddFlags(fs *pflag.FlagSet) {
	for _, option := range *b {
		option.AddFlags(fs)
	}
}

// Complete implements Completer.Complete. It completes every option and returns all errors.
func (b *OptionAggregator) Complete() error {
	var errs []error
	for _, option := range *b {
		errs = append(errs, option.Complete())
	}
	return errors.Join(errs...)
}

// MetricsOptions are command line options for pushing wait metrics.
type MetricsOptions struct {
	// PushgatewayURL is the URL of a Prometheus Pushgateway. Metrics are not pushed if empty.
	PushgatewayURL string
	// Job is the job label of pushed metrics.
	Job string
}

// AddFlags implements Flagger.AddFlags.
func (m *MetricsOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&m.PushgatewayURL, "pushgateway-url", m.PushgatewayURL, "URL of a Prometheus Pushgateway wait metrics are pushed to")
	fs.StringVar(&m.Job, "metrics-job", config.DefaultMetricsJob, "job label of pushed metrics")
}

// Complete implements Completer.Complete.
func (m *MetricsOptions) Complete() error {
	if m.PushgatewayURL == "" {
		return nil
	}
	if _, err := url.ParseRequestURI(m.PushgatewayURL); err != nil {
		return fmt.Errorf("invalid pushgateway URL %q: %w", m.PushgatewayURL, err)
	}
	return nil
}

// ApplyConfig fills unset options from the configuration file.
func (m *MetricsOptions) ApplyConfig(cfg *config.TestConfiguration) {
	if cfg.Metrics == nil {
		return
	}
	if m.PushgatewayURL == "" {
		m.PushgatewayURL = cfg.Metrics.PushgatewayURL
	}
	if cfg.Metrics.Job != "" && (m.Job == "" || m.Job == config.DefaultMetricsJob) {
		m.Job = cfg.Metrics.Job
	}
}

// WaitOptions are command line options overriding the timing policy of a single wait.
type WaitOptions struct {
	// Timeout overrides the configured timeout of the wait if positive or if the --timeout flag was given.
	Timeout time.Duration
	// PollInterval overrides the configured poll interval if positive.
	PollInterval time.Duration

	flags *pflag.FlagSet
}

const (
	timeoutFlag      = "timeout"
	pollIntervalFlag = "poll-interval"
)

// AddFlags implements Flagger.AddFlags.
func (w *WaitOptions) AddFlags(fs *pflag.FlagSet) {
	fs.DurationVar(&w.Timeout, timeoutFlag, 0, "timeout of the wait, defaults to the configured timeout; 0 polls exactly once")
	fs.DurationVar(&w.PollInterval, pollIntervalFlag, 0, "interval between two polls, defaults to the configured poll interval")
	w.flags = fs
}

func (w *WaitOptions) changed(name string) bool {
	return w.flags != nil && w.flags.Changed(name)
}

// Complete implements Completer.Complete.
func (w *WaitOptions) Complete() error {
	if w.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative")
	}
	if w.PollInterval < 0 {
		return fmt.Errorf("poll interval must not be negative")
	}
	if w.PollInterval == 0 && w.changed(pollIntervalFlag) {
		return fmt.Errorf("poll interval must be positive")
	}
	return nil
}

// Policy returns the configured policy for the given timeout with the overrides of these options applied.
func (w *WaitOptions) Policy(cfg *config.TestConfiguration, timeout *metav1.Duration) wait.Policy {
	policy := cfg.Policy(timeout)
	if w.Timeout > 0 || w.changed(timeoutFlag) {
		policy.Timeout = w.Timeout
	}
	if w.PollInterval > 0 {
		policy.PollInterval = w.PollInterval
	}
	return policy
}
