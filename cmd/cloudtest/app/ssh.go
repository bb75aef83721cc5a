// SPDX-FileCopyrightText: SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cjjingchen/avocado-cloudtest-sub000/pkg/remote"
)

func newSSHCommand(ctx context.Context, o *rootOptions) *cobra.Command {
	c := &cobra.Command{
		Use:   "ssh",
		Short: "Runs commands on the configured hosts.",
	}
	c.AddCommand(
		newSSHExecCommand(ctx, o),
		newSSHChecksumCommand(ctx, o),
	)
	return c
}

func (o *rootOptions) sshNode(host string) (*remote.SSHNode, error) {
	cfg, err := o.complete()
	if err != nil {
		return nil, err
	}
	sshConfig, err := cfg.SSH()
	if err != nil {
		return nil, err
	}
	return remote.NewSSHNodeFromConfig(log, sshConfig, host)
}

func newSSHExecCommand(ctx context.Context, o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "exec HOST -- COMMAND...",
		Short: "Runs a command on a host and prints its output.",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			node, err := o.sshNode(args[0])
			if err != nil {
				return err
			}

			out, err := node.RunCommand(ctx, strings.Join(args[1:], " "))
			if out != nil {
				fmt.Fprint(c.OutOrStdout(), out.StdOut)
				fmt.Fprint(c.ErrOrStderr(), out.StdErr)
			}
			return err
		},
	}
}

func newSSHChecksumCommand(ctx context.Context, o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "checksum HOST PATH",
		Short: "Prints the md5 checksum of a file on a host.",
		Args:  cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			node, err := o.sshNode(args[0])
			if err != nil {
				return err
			}

			sum, err := node.Checksum(ctx, args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(c.OutOrStdout(), "%s  %s\n", sum, args[1])
			return nil
		},
	}
}
