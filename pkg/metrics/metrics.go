// SPDX-FileCopyrightText: SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

// Package metrics records the outcome and duration of waits as Prometheus metrics.
package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
	"go.uber.org/atomic"

	"github.com/cjjingchen/avocado-cloudtest-sub000/pkg/wait"
)

const namespace = "cloudtest"

const (
	// PhaseDown is the failover phase from stopping an OSD until it is reported down.
	PhaseDown = "down"
	// PhaseUp is the failover phase from starting an OSD until it is reported up.
	PhaseUp = "up"
)

// Recorder records wait metrics in its own registry. It implements wait.Observer.
type Recorder struct {
	registry *prometheus.Registry

	waits     *prometheus.CounterVec
	attempts  *prometheus.CounterVec
	durations *prometheus.HistogramVec
	failover  *prometheus.GaugeVec

	observed *atomic.Int64
}

var _ wait.Observer = &Recorder{}

// NewRecorder creates a Recorder with a fresh registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		waits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "wait_total",
			Help:      "Number of finished waits by outcome.",
		}, []string{"outcome"}),
		attempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "wait_attempts_total",
			Help:      "Number of predicate invocations by wait outcome.",
		}, []string{"outcome"}),
		durations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "wait_duration_seconds",
			Help:      "Duration of waits.",
			Buckets:   []float64{1, 5, 15, 30, 60, 120, 300, 600, 1200, 1800},
		}, []string{"description", "outcome"}),
		failover: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "failover_seconds",
			Help:      "Duration of the phases of the last OSD failover.",
		}, []string{"phase"}),
		observed: atomic.NewInt64(0),
	}
	r.registry.MustRegister(r.waits, r.attempts, r.durations, r.failover)
	return r
}

// ObserveWait implements wait.Observer.
func (r *Recorder) ObserveWait(description string, outcome wait.Outcome, attempts int, elapsed time.Duration) {
	r.waits.WithLabelValues(string(outcome)).Inc()
	r.attempts.WithLabelValues(string(outcome)).Add(float64(attempts))
	r.durations.WithLabelValues(description, string(outcome)).Observe(elapsed.Seconds())
	r.observed.Inc()
}

// ObserveFailover records the duration of a failover phase.
func (r *Recorder) ObserveFailover(phase string, d time.Duration) {
	r.failover.WithLabelValues(phase).Set(d.Seconds())
}

// Observed returns the number of waits observed so far.
func (r *Recorder) Observed() int64 {
	return r.observed.Load()
}

// Registry returns the registry all metrics are registered in.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Option returns a wait.Option that reports waits to the recorder.
func (r *Recorder) Option() wait.Option {
	return wait.WithObserver(r)
}

// Push pushes all metrics to the Pushgateway at url, replacing the metrics of the job.
func (r *Recorder) Push(ctx context.Context, url, job string) error {
	if err := push.New(url, job).Gatherer(r.registry).PushContext(ctx); err != nil {
		return fmt.Errorf("could not push metrics to %s: %w", url, err)
	}
	return nil
}
