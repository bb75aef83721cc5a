// SPDX-FileCopyrightText: SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/cjjingchen/avocado-cloudtest-sub000/pkg/cmd"
	"github.com/cjjingchen/avocado-cloudtest-sub000/pkg/openstack"
	openstackclient "github.com/cjjingchen/avocado-cloudtest-sub000/pkg/openstack/client"
	openstackwaiter "github.com/cjjingchen/avocado-cloudtest-sub000/pkg/openstack/waiter"
	"github.com/cjjingchen/avocado-cloudtest-sub000/pkg/wait"
)

// openstackWait holds the flags of an OpenStack wait subcommand.
type openstackWait struct {
	root    *rootOptions
	wait    *cmd.WaitOptions
	status  string
	deleted bool
}

func (w *openstackWait) addFlags(c *cobra.Command, status string, deletable bool) {
	w.wait.AddFlags(c.Flags())
	c.Flags().StringVar(&w.status, "status", status, "status to wait for")
	if deletable {
		c.Flags().BoolVar(&w.deleted, "deleted", false, "wait for the deletion instead of a status")
	}
}

// run authenticates against the configured cloud and calls fn with a waiter using the policy overrides of the flags.
func (w *openstackWait) run(ctx context.Context, fn func(factory openstackclient.Factory, waiter *openstackwaiter.Waiter) error) error {
	cfg, err := w.root.complete(w.wait)
	if err != nil {
		return err
	}
	osConfig, err := cfg.OpenStack()
	if err != nil {
		return err
	}
	credentials, err := openstack.CredentialsFromConfig(osConfig)
	if err != nil {
		return err
	}
	factory, err := openstackclient.NewOpenstackClientFromCredentials(ctx, credentials)
	if err != nil {
		return err
	}

	return w.root.runWait(ctx, func(opts ...wait.Option) error {
		waiter := openstackwaiter.New(log, cfg.Config, opts...).WithPolicy(func(timeout *metav1.Duration) wait.Policy {
			return w.wait.Policy(cfg.Config, timeout)
		})
		return fn(factory, waiter)
	})
}

func newOpenStackCommand(ctx context.Context, o *rootOptions) *cobra.Command {
	c := &cobra.Command{
		Use:   "openstack",
		Short: "Waits for OpenStack resources.",
	}
	c.AddCommand(
		newWaitServerCommand(ctx, o),
		newWaitVolumeCommand(ctx, o),
		newWaitImageCommand(ctx, o),
	)
	return c
}

func newWaitServerCommand(ctx context.Context, o *rootOptions) *cobra.Command {
	w := &openstackWait{root: o, wait: &cmd.WaitOptions{}}

	c := &cobra.Command{
		Use:   "wait-server ID...",
		Short: "Waits until all given servers reach a status or are deleted.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, ids []string) error {
			return w.run(ctx, func(factory openstackclient.Factory, waiter *openstackwaiter.Waiter) error {
				compute, err := factory.Compute()
				if err != nil {
					return err
				}

				if w.deleted {
					for _, id := range ids {
						if err := waiter.WaitForServerDeleted(ctx, compute, id); err != nil {
							return err
						}
						fmt.Fprintf(c.OutOrStdout(), "server %s deleted\n", id)
					}
					return nil
				}

				servers, err := waiter.WaitForServersStatus(ctx, compute, w.status, ids...)
				if err != nil {
					return err
				}
				for _, server := range servers {
					fmt.Fprintf(c.OutOrStdout(), "server %s is %s\n", server.ID, server.Status)
				}
				return nil
			})
		},
	}

	w.addFlags(c, "ACTIVE", true)
	return c
}

func newWaitVolumeCommand(ctx context.Context, o *rootOptions) *cobra.Command {
	w := &openstackWait{root: o, wait: &cmd.WaitOptions{}}

	c := &cobra.Command{
		Use:   "wait-volume ID",
		Short: "Waits until a volume reaches a status or is deleted.",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return w.run(ctx, func(factory openstackclient.Factory, waiter *openstackwaiter.Waiter) error {
				blockStorage, err := factory.BlockStorage()
				if err != nil {
					return err
				}

				if w.deleted {
					if err := waiter.WaitForVolumeDeleted(ctx, blockStorage, args[0]); err != nil {
						return err
					}
					fmt.Fprintf(c.OutOrStdout(), "volume %s deleted\n", args[0])
					return nil
				}

				volume, err := waiter.WaitForVolumeStatus(ctx, blockStorage, args[0], w.status)
				if err != nil {
					return err
				}
				fmt.Fprintf(c.OutOrStdout(), "volume %s is %s\n", volume.ID, volume.Status)
				return nil
			})
		},
	}

	w.addFlags(c, openstack.VolumeStatusAvailable, true)
	return c
}

func newWaitImageCommand(ctx context.Context, o *rootOptions) *cobra.Command {
	w := &openstackWait{root: o, wait: &cmd.WaitOptions{}}

	c := &cobra.Command{
		Use:   "wait-image ID",
		Short: "Waits until an image reaches a status.",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return w.run(ctx, func(factory openstackclient.Factory, waiter *openstackwaiter.Waiter) error {
				imageClient, err := factory.Images()
				if err != nil {
					return err
				}

				image, err := waiter.WaitForImageStatus(ctx, imageClient, args[0], w.status)
				if err != nil {
					return err
				}
				fmt.Fprintf(c.OutOrStdout(), "image %s is %s\n", image.ID, image.Status)
				return nil
			})
		},
	}

	w.addFlags(c, openstack.ImageStatusActive, false)
	return c
}
