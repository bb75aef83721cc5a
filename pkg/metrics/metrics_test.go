// SPDX-FileCopyrightText: SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package metrics_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/go-logr/logr"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus/testutil"
	testingclock "k8s.io/utils/clock/testing"

	. "github.com/cjjingchen/avocado-cloudtest-sub000/pkg/metrics"
	"github.com/cjjingchen/avocado-cloudtest-sub000/pkg/wait"
)

var _ = Describe("Recorder", func() {
	var (
		ctx      = context.Background()
		recorder *Recorder
	)

	BeforeEach(func() {
		recorder = NewRecorder()
	})

	It("should record the outcome of waits", func() {
		fakeClock := testingclock.NewFakeClock(time.Now())
		policy := wait.Policy{Timeout: 30 * time.Second, PollInterval: 10 * time.Second}
		calls := 0

		_, err := wait.Require(ctx, logr.Discard(), policy, "server to be active", func() (string, bool, error) {
			calls++
			return "ACTIVE", calls == 2, nil
		}, wait.WithClock(fakeClock), recorder.Option())
		Expect(err).NotTo(HaveOccurred())

		_, err = wait.Until(ctx, logr.Discard(), policy, "volume to be available", func() (bool, error) {
			return false, nil
		}, wait.WithClock(fakeClock), recorder.Option())
		Expect(err).NotTo(HaveOccurred())

		Expect(recorder.Observed()).To(Equal(int64(2)))
		Expect(testutil.GatherAndCompare(recorder.Registry(), strings.NewReader(`
# HELP cloudtest_wait_total Number of finished waits by outcome.
# TYPE cloudtest_wait_total counter
cloudtest_wait_total{outcome="succeeded"} 1
cloudtest_wait_total{outcome="timed_out"} 1
# HELP cloudtest_wait_attempts_total Number of predicate invocations by wait outcome.
# TYPE cloudtest_wait_attempts_total counter
cloudtest_wait_attempts_total{outcome="succeeded"} 2
cloudtest_wait_attempts_total{outcome="timed_out"} 3
`), "cloudtest_wait_total", "cloudtest_wait_attempts_total")).To(Succeed())
		Expect(testutil.CollectAndCount(recorder.Registry(), "cloudtest_wait_duration_seconds")).To(Equal(2))
	})

	It("should record failover phases", func() {
		recorder.ObserveFailover(PhaseDown, 42*time.Second)
		recorder.ObserveFailover(PhaseUp, 13*time.Second)
		recorder.ObserveFailover(PhaseUp, 7*time.Second)

		Expect(testutil.GatherAndCompare(recorder.Registry(), strings.NewReader(`
# HELP cloudtest_failover_seconds Duration of the phases of the last OSD failover.
# TYPE cloudtest_failover_seconds gauge
cloudtest_failover_seconds{phase="down"} 42
cloudtest_failover_seconds{phase="up"} 7
`), "cloudtest_failover_seconds")).To(Succeed())
	})

	It("should push to a Pushgateway", func() {
		var (
			method, path string
			body         string
		)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			method, path = r.Method, r.URL.Path
			data, _ := io.ReadAll(r.Body)
			body = string(data)
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		recorder.ObserveFailover(PhaseDown, time.Second)

		Expect(recorder.Push(ctx, server.URL, "cloudtest")).To(Succeed())
		Expect(method).To(Equal(http.MethodPut))
		Expect(path).To(Equal("/metrics/job/cloudtest"))
		Expect(body).NotTo(BeEmpty())
	})

	It("should fail if the Pushgateway rejects the metrics", func() {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
		}))
		defer server.Close()

		Expect(recorder.Push(ctx, server.URL, "cloudtest")).To(MatchError(ContainSubstring("could not push metrics")))
	})
})
