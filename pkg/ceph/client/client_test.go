// SPDX-FileCopyrightText: SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package client_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/go-logr/logr"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/atomic"
	"go.uber.org/mock/gomock"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/utils/ptr"

	"github.com/cjjingchen/avocado-cloudtest-sub000/pkg/apis/config"
	"github.com/cjjingchen/avocado-cloudtest-sub000/pkg/ceph"
	. "github.com/cjjingchen/avocado-cloudtest-sub000/pkg/ceph/client"
	"github.com/cjjingchen/avocado-cloudtest-sub000/pkg/ceph/client/mocks"
	"github.com/cjjingchen/avocado-cloudtest-sub000/pkg/ceph/schema"
)

var _ = Describe("Client", func() {
	var (
		ctx    = context.Background()
		mux    *http.ServeMux
		server *httptest.Server
		cfg    *config.Ceph
		calls  *atomic.Int32
	)

	BeforeEach(func() {
		mux = http.NewServeMux()
		server = httptest.NewServer(mux)
		calls = atomic.NewInt32(0)

		cfg = &config.Ceph{
			Endpoint:          server.URL + "/v1",
			Username:          "admin",
			Password:          "secret",
			RequestTimeout:    &metav1.Duration{Duration: 5 * time.Second},
			MaxRetries:        ptr.To(2),
			ValidateResponses: ptr.To(true),
		}
	})

	AfterEach(func() {
		server.Close()
	})

	newClient := func(opts ...ClientOption) *Client {
		c, err := NewClient(logr.Discard(), cfg, append([]ClientOption{WithRetryWait(time.Millisecond, 5*time.Millisecond)}, opts...)...)
		Expect(err).NotTo(HaveOccurred())
		return c
	}

	respond := func(status int, body string) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			calls.Inc()
			user, password, ok := r.BasicAuth()
			Expect(ok).To(BeTrue())
			Expect(user).To(Equal("admin"))
			Expect(password).To(Equal("secret"))
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(status)
			_, _ = io.WriteString(w, body)
		}
	}

	It("should get a pool", func() {
		mux.HandleFunc("GET /v1/clusters/c1/pools/p1", respond(http.StatusOK,
			`{"pool": {"id": "p1", "name": "rbd", "status": "available", "pool_type": "replicated", "size": 3, "pg_num": 64}}`))

		pool, err := newClient().GetPool(ctx, "c1", "p1")

		Expect(err).NotTo(HaveOccurred())
		Expect(pool).To(Equal(&ceph.Pool{ID: "p1", Name: "rbd", Status: ceph.StatusAvailable, PoolType: "replicated", Size: 3, PGNum: 64}))
	})

	It("should list OSDs", func() {
		mux.HandleFunc("GET /v1/clusters/c1/osds", respond(http.StatusOK,
			`{"osds": [{"id": "0", "state": "up", "in": true}, {"id": "1", "state": "down", "in": true}]}`))

		osds, err := newClient().ListOSDs(ctx, "c1")

		Expect(err).NotTo(HaveOccurred())
		Expect(osds).To(HaveLen(2))
		Expect(osds[1].State).To(Equal(ceph.OSDStateDown))
	})

	It("should send the resource in an envelope on create", func() {
		mux.HandleFunc("POST /v1/clusters/c1/rbds", func(w http.ResponseWriter, r *http.Request) {
			Expect(r.Header.Get("Content-Type")).To(Equal("application/json"))
			var body map[string]ceph.RBD
			Expect(json.NewDecoder(r.Body).Decode(&body)).To(Succeed())
			Expect(body).To(HaveKeyWithValue("rbd", ceph.RBD{Name: "disk", PoolID: "p1", Size: 1 << 30}))

			respond(http.StatusCreated, `{"rbd": {"id": "r1", "name": "disk", "pool_id": "p1", "size": 1073741824, "status": "creating"}}`)(w, r)
		})

		rbd, err := newClient().CreateRBD(ctx, "c1", &ceph.RBD{Name: "disk", PoolID: "p1", Size: 1 << 30})

		Expect(err).NotTo(HaveOccurred())
		Expect(rbd.ID).To(Equal("r1"))
		Expect(rbd.Status).To(Equal(ceph.StatusCreating))
	})

	It("should resize an RBD", func() {
		mux.HandleFunc("PUT /v1/clusters/c1/rbds/r1", func(w http.ResponseWriter, r *http.Request) {
			var body map[string]ceph.RBD
			Expect(json.NewDecoder(r.Body).Decode(&body)).To(Succeed())
			Expect(body["rbd"].Size).To(Equal(int64(2 << 30)))

			respond(http.StatusOK, `{"rbd": {"id": "r1", "name": "disk", "pool_id": "p1", "size": 2147483648, "status": "available"}}`)(w, r)
		})

		rbd, err := newClient().ResizeRBD(ctx, "c1", "r1", 2<<30)

		Expect(err).NotTo(HaveOccurred())
		Expect(rbd.Size).To(Equal(int64(2 << 30)))
	})

	DescribeTable("should trigger actions",
		func(pattern string, action func(Interface) error) {
			mux.HandleFunc(pattern, respond(http.StatusAccepted, ""))

			Expect(action(newClient())).To(Succeed())
			Expect(calls.Load()).To(Equal(int32(1)))
		},
		Entry("deploy cluster", "POST /v1/clusters/c1/deploy", func(c Interface) error { return c.DeployCluster(ctx, "c1") }),
		Entry("stop OSD", "POST /v1/clusters/c1/osds/3/stop", func(c Interface) error { return c.StopOSD(ctx, "c1", "3") }),
		Entry("start OSD", "POST /v1/clusters/c1/osds/3/start", func(c Interface) error { return c.StartOSD(ctx, "c1", "3") }),
		Entry("stop server", "POST /v1/clusters/c1/servers/s1/stop", func(c Interface) error { return c.StopServer(ctx, "c1", "s1") }),
		Entry("rollback snapshot", "POST /v1/clusters/c1/snapshots/snap/rollback", func(c Interface) error { return c.RollbackSnapshot(ctx, "c1", "snap") }),
		Entry("restore backup", "POST /v1/clusters/c1/remote_backups/b1/restore", func(c Interface) error { return c.RestoreRemoteBackup(ctx, "c1", "b1") }),
		Entry("delete RBD", "DELETE /v1/clusters/c1/rbds/r1", func(c Interface) error { return c.DeleteRBD(ctx, "c1", "r1") }),
		Entry("delete LUN", "DELETE /v1/clusters/c1/iscsi_targets/t1/luns/l1", func(c Interface) error { return c.DeleteISCSILun(ctx, "c1", "t1", "l1") }),
	)

	It("should return an APIError for missing resources without retrying", func() {
		mux.HandleFunc("GET /v1/clusters/c1/snapshots/gone", respond(http.StatusNotFound, `{"message": "snapshot not found"}`))

		_, err := newClient().GetSnapshot(ctx, "c1", "gone")

		Expect(IsNotFound(err)).To(BeTrue())
		Expect(IgnoreNotFound(err)).To(Succeed())
		Expect(err).To(MatchError(ContainSubstring("failed with status 404: {\"message\": \"snapshot not found\"}")))
		Expect(calls.Load()).To(Equal(int32(1)))
	})

	It("should retry server errors", func() {
		mux.HandleFunc("GET /v1/clusters/c1", func(w http.ResponseWriter, r *http.Request) {
			if calls.Load() == 0 {
				respond(http.StatusServiceUnavailable, "")(w, r)
				return
			}
			respond(http.StatusOK, `{"cluster": {"id": "c1", "name": "ceph", "status": "deployed", "ceph_version": "14.2.22"}}`)(w, r)
		})

		cluster, err := newClient().GetCluster(ctx, "c1")

		Expect(err).NotTo(HaveOccurred())
		Expect(cluster.CephVersion).To(Equal("14.2.22"))
		Expect(calls.Load()).To(Equal(int32(2)))
	})

	It("should return the last server error once the retries are exhausted", func() {
		mux.HandleFunc("GET /v1/clusters", respond(http.StatusBadGateway, "bad gateway"))

		_, err := newClient().ListClusters(ctx)

		Expect(IsServerError(err)).To(BeTrue())
		Expect(IsNotFound(err)).To(BeFalse())
		Expect(calls.Load()).To(Equal(int32(3)))
	})

	It("should reject responses violating the schema", func() {
		mux.HandleFunc("GET /v1/clusters/c1/osds/3", respond(http.StatusOK, `{"osd": {"id": "3", "state": "unknown", "in": true}}`))

		_, err := newClient().GetOSD(ctx, "c1", "3")

		Expect(schema.IsValidationError(err)).To(BeTrue())
	})

	It("should not validate if validation is disabled", func() {
		cfg.ValidateResponses = ptr.To(false)
		mux.HandleFunc("GET /v1/clusters/c1/osds/3", respond(http.StatusOK, `{"osd": {"id": "3", "state": "unknown", "in": true}}`))

		osd, err := newClient().GetOSD(ctx, "c1", "3")

		Expect(err).NotTo(HaveOccurred())
		Expect(osd.State).To(Equal("unknown"))
	})

	It("should use the given validator with the list schema", func() {
		ctrl := gomock.NewController(GinkgoT())
		validator := mocks.NewMockResponseValidator(ctrl)
		body := `{"iscsi_targets": []}`
		validator.EXPECT().Validate("iscsi_target_list", []byte(body)).Return(nil)
		mux.HandleFunc("GET /v1/clusters/c1/iscsi_targets", respond(http.StatusOK, body))

		targets, err := newClient(WithSchemaValidation(validator)).ListISCSITargets(ctx, "c1")

		Expect(err).NotTo(HaveOccurred())
		Expect(targets).To(BeEmpty())
	})

	It("should fail if the envelope is missing", func() {
		cfg.ValidateResponses = nil
		mux.HandleFunc("GET /v1/clusters/c1/remote_backups/b1", respond(http.StatusOK, `{"backup": {"id": "b1"}}`))

		_, err := newClient().GetRemoteBackup(ctx, "c1", "b1")

		Expect(err).To(MatchError(`response does not contain "remote_backup"`))
	})
})
