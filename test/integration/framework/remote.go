// SPDX-FileCopyrightText: SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package framework

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"k8s.io/utils/ptr"

	"github.com/cjjingchen/avocado-cloudtest-sub000/pkg/apis/config"
	"github.com/cjjingchen/avocado-cloudtest-sub000/pkg/remote"
)

// ConfiguredNode returns a node for a host of the SSH configuration, e.g. a Ceph storage node.
func (f *Framework) ConfiguredNode(name string) *remote.SSHNode {
	sshConfig := f.RequireSSH()
	if _, ok := sshConfig.Host(name); !ok {
		Skip("host " + name + " is not configured")
	}

	node, err := remote.NewSSHNodeFromConfig(f.Log, sshConfig, name, f.WaitOptions()...)
	Expect(err).NotTo(HaveOccurred())
	return node
}

// Node returns a node for an address that is not part of the configuration, e.g. a test server, using the
// user and key of the SSH configuration. Host keys of such nodes are not verified.
func (f *Framework) Node(name, address string) *remote.SSHNode {
	sshConfig := f.RequireSSH()

	opts := remote.Options{
		MaxRetries:  ptr.Deref(sshConfig.MaxRetries, remote.DefaultMaxRetries),
		WaitOptions: f.WaitOptions(),
	}
	if sshConfig.ConnectTimeout != nil {
		opts.ConnectTimeout = sshConfig.ConnectTimeout.Duration
	}
	if sshConfig.RetryDelay != nil {
		opts.RetryDelay = sshConfig.RetryDelay.Duration
	}

	node, err := remote.NewSSHNode(f.Log, name, sshConfig.User, address, ptr.Deref(sshConfig.Port, config.DefaultSSHPort), sshConfig.PrivateKeyFile, opts)
	Expect(err).NotTo(HaveOccurred())
	return node
}
