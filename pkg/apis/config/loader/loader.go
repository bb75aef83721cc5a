// SPDX-FileCopyrightText: SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package loader

import (
	"fmt"
	"os"

	"sigs.k8s.io/yaml"

	"github.com/cjjingchen/avocado-cloudtest-sub000/pkg/apis/config"
)

// LoadFromFile takes a filename and de-serializes the contents into a TestConfiguration object.
func LoadFromFile(filename string) (*config.TestConfiguration, error) {
	bytes, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	return Load(bytes)
}

// Load takes a byte slice and de-serializes the contents into a defaulted TestConfiguration object.
// Encapsulates de-serialization without assuming the source is a file.
func Load(data []byte) (*config.TestConfiguration, error) {
	cfg := &config.TestConfiguration{}

	if len(data) > 0 {
		if err := yaml.UnmarshalStrict(data, cfg); err != nil {
			return nil, fmt.Errorf("could not decode test configuration: %w", err)
		}
	}

	if cfg.APIVersion != "" && cfg.APIVersion != config.APIVersion {
		return nil, fmt.Errorf("unsupported apiVersion %q, expected %q", cfg.APIVersion, config.APIVersion)
	}
	if cfg.Kind != "" && cfg.Kind != config.Kind {
		return nil, fmt.Errorf("unsupported kind %q, expected %q", cfg.Kind, config.Kind)
	}

	config.SetDefaults_TestConfiguration(cfg)
	return cfg, nil
}
