// SPDX-FileCopyrightText: SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package framework

import (
	. "github.com/onsi/gomega"

	cephclient "github.com/cjjingchen/avocado-cloudtest-sub000/pkg/ceph/client"
	cephwaiter "github.com/cjjingchen/avocado-cloudtest-sub000/pkg/ceph/waiter"
)

// Ceph bundles the client of the Ceph suites.
type Ceph struct {
	*Framework

	Client    cephclient.Interface
	Waiter    *cephwaiter.Waiter
	ClusterID string
}

// NewCeph creates a client for the configured management API.
func (f *Framework) NewCeph() *Ceph {
	cfg := f.RequireCeph()

	client, err := cephclient.NewClient(f.Log, cfg)
	Expect(err).NotTo(HaveOccurred())
	return &Ceph{
		Framework: f,
		Client:    client,
		Waiter:    cephwaiter.New(f.Log, f.Config, client, f.WaitOptions()...),
		ClusterID: cfg.ClusterID,
	}
}
