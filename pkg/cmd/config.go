// SPDX-FileCopyrightText: SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/cjjingchen/avocado-cloudtest-sub000/pkg/apis/config"
	configloader "github.com/cjjingchen/avocado-cloudtest-sub000/pkg/apis/config/loader"
	configvalidation "github.com/cjjingchen/avocado-cloudtest-sub000/pkg/apis/config/validation"
)

// ConfigFileEnv is the environment variable used when the config file flag is not set.
const ConfigFileEnv = "CLOUDTEST_CONFIG"

// ConfigOptions are command line options that can be set for config.TestConfiguration.
type ConfigOptions struct {
	// ConfigFilePath is the path to the test configuration file.
	ConfigFilePath string

	config *Config
}

// Config is a completed test configuration.
type Config struct {
	// Config is the test configuration.
	Config *config.TestConfiguration
}

func (c *ConfigOptions) buildConfig() (*config.TestConfiguration, error) {
	path := c.ConfigFilePath
	if len(path) == 0 {
		path = os.Getenv(ConfigFileEnv)
	}
	if len(path) == 0 {
		return nil, fmt.Errorf("config file path not set, use --config-file or %s", ConfigFileEnv)
	}

	cfg, err := configloader.LoadFromFile(path)
	if err != nil {
		return nil, err
	}
	if errs := configvalidation.ValidateTestConfiguration(cfg); len(errs) > 0 {
		return nil, fmt.Errorf("invalid test configuration %s: %w", path, errs.ToAggregate())
	}
	return cfg, nil
}

// Complete implements Completer.Complete.
func (c *ConfigOptions) Complete() error {
	config, err := c.buildConfig()
	if err != nil {
		return err
	}

	c.config = &Config{config}
	return nil
}

// Completed returns the completed Config. Only call this if `Complete` was successful.
func (c *ConfigOptions) Completed() *Config {
	return c.config
}

// AddFlags implements Flagger.AddFlags.
func (c *ConfigOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.ConfigFilePath, "config-file", "", "path to the test configuration file (defaults to $"+ConfigFileEnv+")")
}

// OpenStack returns the OpenStack section or an error if it is missing.
func (c *Config) OpenStack() (*config.OpenStack, error) {
	if c.Config.OpenStack == nil {
		return nil, fmt.Errorf("test configuration has no openstack section")
	}
	return c.Config.OpenStack, nil
}

// Ceph returns the Ceph section or an error if it is missing.
func (c *Config) Ceph() (*config.Ceph, error) {
	if c.Config.Ceph == nil {
		return nil, fmt.Errorf("test configuration has no ceph section")
	}
	return c.Config.Ceph, nil
}

// SSH returns the SSH section or an error if it is missing.
func (c *Config) SSH() (*config.SSH, error) {
	if c.Config.SSH == nil {
		return nil, fmt.Errorf("test configuration has no ssh section")
	}
	return c.Config.SSH, nil
}
