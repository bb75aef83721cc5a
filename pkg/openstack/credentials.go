// SPDX-FileCopyrightText: SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package openstack

import (
	"fmt"
	"os"

	"github.com/cjjingchen/avocado-cloudtest-sub000/pkg/apis/config"
)

// Credentials contains the necessary OpenStack credential information.
type Credentials struct {
	DomainName string
	TenantName string

	// either authenticate with username/password credentials
	Username string
	Password string

	// or application credentials
	ApplicationCredentialID     string
	ApplicationCredentialName   string
	ApplicationCredentialSecret string

	AuthURL string
	Region  string
	CACert  string

	Insecure bool
}

// CredentialsFromConfig computes the credentials from the given configuration. Values that are not configured
// are taken from the usual OS_* environment variables.
func CredentialsFromConfig(cfg *config.OpenStack) (*Credentials, error) {
	if cfg == nil {
		cfg = &config.OpenStack{}
	}

	caCert := cfg.CACert
	if caCert == "" {
		if path := os.Getenv(EnvCACert); path != "" {
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("could not read CA bundle from $%s: %w", EnvCACert, err)
			}
			caCert = string(data)
		}
	}

	credentials := &Credentials{
		DomainName:                  valueOrEnv(cfg.DomainName, EnvDomainName, EnvUserDomainName),
		TenantName:                  valueOrEnv(cfg.TenantName, EnvTenantName),
		Username:                    valueOrEnv(cfg.Username, EnvUserName),
		Password:                    valueOrEnv(cfg.Password, EnvPassword),
		ApplicationCredentialID:     valueOrEnv(cfg.ApplicationCredentialID, EnvApplicationCredentialID),
		ApplicationCredentialName:   valueOrEnv(cfg.ApplicationCredentialName, EnvApplicationCredentialName),
		ApplicationCredentialSecret: valueOrEnv(cfg.ApplicationCredentialSecret, EnvApplicationCredentialSecret),
		AuthURL:                     valueOrEnv(cfg.AuthURL, EnvAuthURL),
		Region:                      valueOrEnv(cfg.Region, EnvRegionName),
		CACert:                      caCert,
		Insecure:                    cfg.Insecure,
	}

	if credentials.AuthURL == "" {
		return nil, fmt.Errorf("missing %q (or $%s)", AuthURL, EnvAuthURL)
	}
	if credentials.DomainName == "" {
		return nil, fmt.Errorf("missing %q (or $%s)", DomainName, EnvDomainName)
	}
	if credentials.TenantName == "" && credentials.ApplicationCredentialSecret == "" {
		return nil, fmt.Errorf("missing %q (or $%s)", TenantName, EnvTenantName)
	}
	if err := ValidateSecrets(credentials.Username, credentials.Password, credentials.ApplicationCredentialID,
		credentials.ApplicationCredentialName, credentials.ApplicationCredentialSecret); err != nil {
		return nil, err
	}

	return credentials, nil
}

// ValidateSecrets checks if either basic auth or application credentials are completely provided
func ValidateSecrets(userName, password, appID, appName, appSecret string) error {
	if password != "" {
		if appSecret != "" {
			return fmt.Errorf("cannot specify both '%s' and '%s'", Password, ApplicationCredentialSecret)
		}
		if userName == "" {
			return fmt.Errorf("'%s' is required if '%s' is given", UserName, Password)
		}
	} else {
		if appSecret == "" {
			return fmt.Errorf("must either specify '%s' or '%s'", Password, ApplicationCredentialSecret)
		}
		if appID == "" && (userName == "" || appName == "") {
			return fmt.Errorf("'%s' and '%s' are required if application credentials are used without '%s'",
				ApplicationCredentialName, UserName, ApplicationCredentialID)
		}
	}

	return nil
}

// valueOrEnv returns value or, if empty, the first non-empty environment variable of keys.
func valueOrEnv(value string, keys ...string) string {
	if value != "" {
		return value
	}
	for _, key := range keys {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return ""
}
