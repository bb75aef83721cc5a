// SPDX-FileCopyrightText: SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/cjjingchen/avocado-cloudtest-sub000/pkg/ceph"
	cephclient "github.com/cjjingchen/avocado-cloudtest-sub000/pkg/ceph/client"
	cephwaiter "github.com/cjjingchen/avocado-cloudtest-sub000/pkg/ceph/waiter"
	"github.com/cjjingchen/avocado-cloudtest-sub000/pkg/cmd"
	"github.com/cjjingchen/avocado-cloudtest-sub000/pkg/wait"
)

// cephOptions are the options shared by the ceph subcommands.
type cephOptions struct {
	root      *rootOptions
	clusterID string
}

// cephEnv is a completed environment for a ceph subcommand.
type cephEnv struct {
	cfg       *cmd.Config
	client    *cephclient.Client
	clusterID string
}

func (o *cephOptions) complete(options ...cmd.Option) (*cephEnv, error) {
	cfg, err := o.root.complete(options...)
	if err != nil {
		return nil, err
	}
	cephConfig, err := cfg.Ceph()
	if err != nil {
		return nil, err
	}

	clusterID := o.clusterID
	if clusterID == "" {
		clusterID = cephConfig.ClusterID
	}
	if clusterID == "" {
		return nil, fmt.Errorf("cluster ID not set, use --cluster-id or ceph.clusterID")
	}

	client, err := cephclient.NewClient(log, cephConfig)
	if err != nil {
		return nil, err
	}
	return &cephEnv{cfg: cfg, client: client, clusterID: clusterID}, nil
}

// cephWait holds the flags of a ceph wait subcommand.
type cephWait struct {
	*cephOptions
	wait   *cmd.WaitOptions
	status string
}

func (w *cephWait) addFlags(c *cobra.Command, flag, status string) {
	w.wait.AddFlags(c.Flags())
	c.Flags().StringVar(&w.status, flag, status, flag+" to wait for")
}

// run calls fn with a waiter using the policy overrides of the flags.
func (w *cephWait) run(ctx context.Context, fn func(env *cephEnv, waiter *cephwaiter.Waiter) error) error {
	env, err := w.complete(w.wait)
	if err != nil {
		return err
	}

	return w.root.runWait(ctx, func(opts ...wait.Option) error {
		waiter := cephwaiter.New(log, env.cfg.Config, env.client, opts...).WithPolicy(func(timeout *metav1.Duration) wait.Policy {
			return w.wait.Policy(env.cfg.Config, timeout)
		})
		return fn(env, waiter)
	})
}

func newCephCommand(ctx context.Context, root *rootOptions) *cobra.Command {
	o := &cephOptions{root: root}

	c := &cobra.Command{
		Use:   "ceph",
		Short: "Waits for and checks resources of the Ceph management API.",
	}
	c.PersistentFlags().StringVar(&o.clusterID, "cluster-id", "", "ID of the cluster, defaults to the configured cluster")

	c.AddCommand(
		newWaitClusterCommand(ctx, o),
		newWaitOSDCommand(ctx, o),
		newWaitSnapshotCommand(ctx, o),
		newWaitBackupCommand(ctx, o),
		newVersionCheckCommand(ctx, o),
	)
	return c
}

func newWaitClusterCommand(ctx context.Context, o *cephOptions) *cobra.Command {
	w := &cephWait{cephOptions: o, wait: &cmd.WaitOptions{}}

	c := &cobra.Command{
		Use:   "wait-cluster",
		Short: "Waits until the cluster reaches a status.",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return w.run(ctx, func(env *cephEnv, waiter *cephwaiter.Waiter) error {
				cluster, err := waiter.WaitForClusterStatus(ctx, env.clusterID, w.status)
				if err != nil {
					return err
				}
				fmt.Fprintf(c.OutOrStdout(), "cluster %s is %s\n", cluster.ID, cluster.Status)
				return nil
			})
		},
	}

	w.addFlags(c, "status", ceph.ClusterStatusDeployed)
	return c
}

func newWaitOSDCommand(ctx context.Context, o *cephOptions) *cobra.Command {
	w := &cephWait{cephOptions: o, wait: &cmd.WaitOptions{}}

	c := &cobra.Command{
		Use:   "wait-osd ID...",
		Short: "Waits until all given OSDs reach a state.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, ids []string) error {
			return w.run(ctx, func(env *cephEnv, waiter *cephwaiter.Waiter) error {
				osds, err := waiter.WaitForOSDsState(ctx, env.clusterID, w.status, ids...)
				if err != nil {
					return err
				}
				for _, osd := range osds {
					fmt.Fprintf(c.OutOrStdout(), "osd %s is %s\n", osd.ID, osd.State)
				}
				return nil
			})
		},
	}

	w.addFlags(c, "state", ceph.OSDStateUp)
	return c
}

func newWaitSnapshotCommand(ctx context.Context, o *cephOptions) *cobra.Command {
	w := &cephWait{cephOptions: o, wait: &cmd.WaitOptions{}}

	c := &cobra.Command{
		Use:   "wait-snapshot ID",
		Short: "Waits until a snapshot reaches a status.",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return w.run(ctx, func(env *cephEnv, waiter *cephwaiter.Waiter) error {
				snapshot, err := waiter.WaitForSnapshotStatus(ctx, env.clusterID, args[0], w.status)
				if err != nil {
					return err
				}
				fmt.Fprintf(c.OutOrStdout(), "snapshot %s is %s\n", snapshot.ID, snapshot.Status)
				return nil
			})
		},
	}

	w.addFlags(c, "status", ceph.StatusAvailable)
	return c
}

func newWaitBackupCommand(ctx context.Context, o *cephOptions) *cobra.Command {
	w := &cephWait{cephOptions: o, wait: &cmd.WaitOptions{}}

	c := &cobra.Command{
		Use:   "wait-backup ID",
		Short: "Waits until a remote backup reaches a status.",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return w.run(ctx, func(env *cephEnv, waiter *cephwaiter.Waiter) error {
				backup, err := waiter.WaitForRemoteBackupStatus(ctx, env.clusterID, args[0], w.status)
				if err != nil {
					return err
				}
				fmt.Fprintf(c.OutOrStdout(), "remote backup %s is %s\n", backup.ID, backup.Status)
				return nil
			})
		},
	}

	w.addFlags(c, "status", ceph.StatusAvailable)
	return c
}

func newVersionCheckCommand(ctx context.Context, o *cephOptions) *cobra.Command {
	var constraint string

	c := &cobra.Command{
		Use:   "version-check",
		Short: "Checks that the Ceph version of the cluster satisfies a constraint.",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			env, err := o.complete()
			if err != nil {
				return err
			}
			want := constraint
			if want == "" {
				want = env.cfg.Config.Ceph.MinVersion
			}

			cluster, err := env.client.GetCluster(ctx, env.clusterID)
			if err != nil {
				return err
			}
			if err := ceph.CheckVersion(cluster.CephVersion, want); err != nil {
				return err
			}
			fmt.Fprintf(c.OutOrStdout(), "cluster %s runs ceph %s\n", cluster.ID, cluster.CephVersion)
			return nil
		},
	}

	c.Flags().StringVar(&constraint, "constraint", "", "semantic version constraint, defaults to ceph.minVersion")
	return c
}
