// SPDX-FileCopyrightText: SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"fmt"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/cjjingchen/avocado-cloudtest-sub000/pkg/apis/config"
)

const redacted = "<redacted>"

func newValidateConfigCommand(o *rootOptions) *cobra.Command {
	var printConfig bool

	c := &cobra.Command{
		Use:   "validate-config",
		Short: "Loads and validates the test configuration.",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			cfg, err := o.complete()
			if err != nil {
				return err
			}
			log.Info("Test configuration is valid")

			if !printConfig {
				return nil
			}
			out, err := yaml.Marshal(redact(cfg.Config))
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(c.OutOrStdout(), string(out))
			return err
		},
	}

	c.Flags().BoolVar(&printConfig, "print", false, "print the defaulted configuration with secrets redacted")
	return c
}

// redact returns a copy of the configuration without passwords and secrets.
func redact(cfg *config.TestConfiguration) *config.TestConfiguration {
	out := *cfg
	if cfg.OpenStack != nil {
		openStack := *cfg.OpenStack
		openStack.Password = redactValue(openStack.Password)
		openStack.ApplicationCredentialSecret = redactValue(openStack.ApplicationCredentialSecret)
		out.OpenStack = &openStack
	}
	if cfg.Ceph != nil {
		ceph := *cfg.Ceph
		ceph.Password = redactValue(ceph.Password)
		out.Ceph = &ceph
	}
	return &out
}

func redactValue(value string) string {
	if value == "" {
		return ""
	}
	return redacted
}
