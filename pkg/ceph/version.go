// SPDX-FileCopyrightText: SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package ceph

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// ParseVersion parses a Ceph version. Besides plain versions it accepts the output of `ceph version`,
// e.g. "ceph version 14.2.22 (ca74598065096e6fcbd8433c8779a2be0c889351) nautilus (stable)".
func ParseVersion(version string) (*semver.Version, error) {
	fields := strings.Fields(version)
	if len(fields) >= 3 && fields[0] == "ceph" && fields[1] == "version" {
		version = fields[2]
	}

	v, err := semver.NewVersion(version)
	if err != nil {
		return nil, fmt.Errorf("invalid ceph version %q: %w", version, err)
	}
	return v, nil
}

// CheckVersion returns an error if version does not satisfy the given semver constraint, e.g. ">= 14.2".
// An empty constraint is always satisfied.
func CheckVersion(version, constraint string) error {
	if constraint == "" {
		return nil
	}

	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return fmt.Errorf("invalid version constraint %q: %w", constraint, err)
	}
	v, err := ParseVersion(version)
	if err != nil {
		return err
	}
	if !c.Check(v) {
		return fmt.Errorf("ceph version %s does not satisfy %q", v, constraint)
	}
	return nil
}
