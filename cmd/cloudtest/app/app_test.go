// SPDX-FileCopyrightText: SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app_test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/atomic"

	. "github.com/cjjingchen/avocado-cloudtest-sub000/cmd/cloudtest/app"
	"github.com/cjjingchen/avocado-cloudtest-sub000/pkg/wait"
)

var _ = Describe("Cloudtest command", func() {
	var (
		ctx    = context.Background()
		mux    *http.ServeMux
		server *httptest.Server
		dir    string
		out    *bytes.Buffer
	)

	BeforeEach(func() {
		mux = http.NewServeMux()
		server = httptest.NewServer(mux)
		dir = GinkgoT().TempDir()
		out = &bytes.Buffer{}
	})

	AfterEach(func() {
		server.Close()
	})

	writeConfig := func(content string) string {
		path := filepath.Join(dir, "config.yaml")
		Expect(os.WriteFile(path, []byte(content), 0600)).To(Succeed())
		return path
	}

	cephConfig := func(extra string) string {
		return writeConfig(fmt.Sprintf(`apiVersion: cloudtest.config/v1alpha1
kind: TestConfiguration
ceph:
  endpoint: %s/v1
  username: admin
  password: secret
  clusterID: c1
  maxRetries: 0
%s`, server.URL, extra))
	}

	execute := func(args ...string) error {
		cmd := NewCloudtestCommand(ctx)
		cmd.SetArgs(args)
		cmd.SetOut(out)
		cmd.SetErr(io.Discard)
		return cmd.Execute()
	}

	cluster := func(status, version string) http.HandlerFunc {
		return func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = fmt.Fprintf(w, `{"cluster": {"id": "c1", "name": "test", "status": %q, "ceph_version": %q}}`, status, version)
		}
	}

	Describe("validate-config", func() {
		It("should accept a valid configuration and redact secrets", func() {
			path := cephConfig("")

			Expect(execute("validate-config", "--config-file", path, "--print")).To(Succeed())
			Expect(out.String()).To(ContainSubstring("endpoint: " + server.URL + "/v1"))
			Expect(out.String()).To(ContainSubstring("password: <redacted>"))
			Expect(out.String()).NotTo(ContainSubstring("secret"))
		})

		It("should reject an invalid configuration", func() {
			path := writeConfig(`ceph:
  password: secret
`)

			err := execute("validate-config", "--config-file", path)
			Expect(err).To(MatchError(ContainSubstring("ceph.endpoint")))
			Expect(err).To(MatchError(ContainSubstring("ceph.username")))
		})

		It("should fail without configuration file", func() {
			GinkgoT().Setenv("CLOUDTEST_CONFIG", "")

			Expect(execute("validate-config")).To(MatchError(ContainSubstring("config file path not set")))
		})

		It("should take the configuration file from the environment", func() {
			GinkgoT().Setenv("CLOUDTEST_CONFIG", cephConfig(""))

			Expect(execute("validate-config")).To(Succeed())
		})
	})

	Describe("ceph wait-cluster", func() {
		It("should wait until the cluster is deployed", func() {
			calls := atomic.NewInt32(0)
			mux.HandleFunc("GET /v1/clusters/c1", func(w http.ResponseWriter, r *http.Request) {
				if calls.Inc() < 3 {
					cluster("deploying", "")(w, r)
					return
				}
				cluster("deployed", "")(w, r)
			})

			Expect(execute("ceph", "wait-cluster", "--config-file", cephConfig(""), "--poll-interval", "10ms")).To(Succeed())
			Expect(calls.Load()).To(BeEquivalentTo(3))
			Expect(out.String()).To(Equal("cluster c1 is deployed\n"))
		})

		It("should time out with the timeout of the flags", func() {
			mux.HandleFunc("GET /v1/clusters/c2", cluster("deploying", ""))

			err := execute("ceph", "wait-cluster", "--config-file", cephConfig(""), "--cluster-id", "c2",
				"--timeout", "50ms", "--poll-interval", "10ms")
			Expect(wait.IsTimeout(err)).To(BeTrue())
		})

		It("should push the wait metrics", func() {
			pushed := atomic.NewString("")
			pushgateway := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				body, _ := io.ReadAll(r.Body)
				pushed.Store(r.Method + " " + r.URL.Path + " " + string(body))
				w.WriteHeader(http.StatusOK)
			}))
			defer pushgateway.Close()
			mux.HandleFunc("GET /v1/clusters/c1", cluster("deployed", ""))

			Expect(execute("ceph", "wait-cluster", "--config-file", cephConfig(""), "--pushgateway-url", pushgateway.URL)).To(Succeed())
			Expect(pushed.Load()).To(HavePrefix("PUT /metrics/job/cloudtest "))
		})

		It("should fail without cluster ID", func() {
			path := writeConfig(fmt.Sprintf(`ceph:
  endpoint: %s/v1
`, server.URL))

			Expect(execute("ceph", "wait-cluster", "--config-file", path)).To(MatchError(ContainSubstring("cluster ID not set")))
		})
	})

	Describe("ceph version-check", func() {
		BeforeEach(func() {
			mux.HandleFunc("GET /v1/clusters/c1", cluster("deployed", "ceph version 14.2.22 (ca74598065096e6fcbd8433c8779a2be0c889351) nautilus (stable)"))
		})

		It("should accept a satisfied constraint of the configuration", func() {
			Expect(execute("ceph", "version-check", "--config-file", cephConfig(`  minVersion: ">= 14.2"`))).To(Succeed())
			Expect(out.String()).To(ContainSubstring("cluster c1 runs ceph"))
		})

		It("should reject an unsatisfied constraint of the flags", func() {
			err := execute("ceph", "version-check", "--config-file", cephConfig(""), "--constraint", ">= 15")
			Expect(err).To(MatchError(`ceph version 14.2.22 does not satisfy ">= 15"`))
		})
	})

	Describe("ssh", func() {
		It("should fail for unknown hosts", func() {
			path := writeConfig(`ssh:
  user: cloudtest
  privateKeyFile: /dev/null
`)

			Expect(execute("ssh", "checksum", "node-1", "/tmp/file", "--config-file", path)).To(MatchError(`host "node-1" is not configured`))
		})
	})
})
