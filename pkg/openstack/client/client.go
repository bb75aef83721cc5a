// SPDX-FileCopyrightText: SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"net/http"

	"github.com/gophercloud/gophercloud/v2"
	"github.com/gophercloud/gophercloud/v2/openstack"

	os "github.com/cjjingchen/avocado-cloudtest-sub000/pkg/openstack"
)

// NewOpenstackClientFromCredentials returns a Factory implementation that can be used to create clients for OpenStack services.
func NewOpenstackClientFromCredentials(ctx context.Context, credentials *os.Credentials) (Factory, error) {
	authOpts := gophercloud.AuthOptions{
		IdentityEndpoint:            credentials.AuthURL,
		Username:                    credentials.Username,
		Password:                    credentials.Password,
		DomainName:                  credentials.DomainName,
		TenantName:                  credentials.TenantName,
		ApplicationCredentialID:     credentials.ApplicationCredentialID,
		ApplicationCredentialName:   credentials.ApplicationCredentialName,
		ApplicationCredentialSecret: credentials.ApplicationCredentialSecret,
		// AllowReauth should be set to true if you grant permission for Gophercloud to
		// cache your credentials in memory, and to allow Gophercloud to attempt to
		// re-authenticate automatically if/when your token expires.
		AllowReauth: true,
	}
	if credentials.ApplicationCredentialSecret != "" {
		// application credentials are already scoped to a project
		authOpts.TenantName = ""
		if credentials.ApplicationCredentialID != "" {
			authOpts.DomainName = ""
		}
	}

	provider, err := openstack.NewClient(credentials.AuthURL)
	if err != nil {
		return nil, err
	}
	provider.UserAgent.Prepend(os.Name)

	tlsConfig, err := tlsConfigFor(credentials)
	if err != nil {
		return nil, err
	}
	if tlsConfig != nil {
		provider.HTTPClient = http.Client{
			Transport: &http.Transport{
				Proxy:           http.ProxyFromEnvironment,
				TLSClientConfig: tlsConfig,
			},
		}
	}

	if err := openstack.Authenticate(ctx, provider, authOpts); err != nil {
		return nil, fmt.Errorf("could not authenticate against %s: %w", credentials.AuthURL, err)
	}

	factory := NewOpenstackClientFactory(provider)
	if credentials.Region != "" {
		factory.defaultOptions = append(factory.defaultOptions, WithRegion(credentials.Region))
	}
	return factory, nil
}

// NewOpenstackClientFactory returns a Factory for an already authenticated provider client.
func NewOpenstackClientFactory(provider *gophercloud.ProviderClient) *OpenstackClientFactory {
	return &OpenstackClientFactory{
		providerClient: provider,
	}
}

func tlsConfigFor(credentials *os.Credentials) (*tls.Config, error) {
	if credentials.CACert == "" && !credentials.Insecure {
		return nil, nil
	}

	// #nosec G402 -- insecure is an explicit opt-in of the test configuration
	tlsConfig := &tls.Config{InsecureSkipVerify: credentials.Insecure}
	if credentials.CACert != "" {
		pool, err := x509.SystemCertPool()
		if err != nil {
			pool = x509.NewCertPool()
		}
		if !pool.AppendCertsFromPEM([]byte(credentials.CACert)) {
			return nil, fmt.Errorf("could not parse CA certificate")
		}
		tlsConfig.RootCAs = pool
	}
	return tlsConfig, nil
}

// WithRegion returns an Option that can modify the region a client targets.
func WithRegion(region string) Option {
	return func(opts gophercloud.EndpointOpts) gophercloud.EndpointOpts {
		opts.Region = region
		return opts
	}
}

// WithAvailability returns an Option that selects the public, internal or admin endpoint of a service.
func WithAvailability(availability gophercloud.Availability) Option {
	return func(opts gophercloud.EndpointOpts) gophercloud.EndpointOpts {
		opts.Availability = availability
		return opts
	}
}

func (oc *OpenstackClientFactory) endpointOpts(options []Option) gophercloud.EndpointOpts {
	eo := gophercloud.EndpointOpts{}
	for _, opt := range oc.defaultOptions {
		eo = opt(eo)
	}
	for _, opt := range options {
		eo = opt(eo)
	}
	return eo
}

// Compute returns a Compute client. The client uses Nova v2 API for issuing calls.
func (oc *OpenstackClientFactory) Compute(options ...Option) (Compute, error) {
	client, err := openstack.NewComputeV2(oc.providerClient, oc.endpointOpts(options))
	if err != nil {
		return nil, err
	}

	return &ComputeClient{
		client: client,
	}, nil
}

// Networking returns a Networking client. The client uses Neutron v2 API for issuing calls.
func (oc *OpenstackClientFactory) Networking(options ...Option) (Networking, error) {
	client, err := openstack.NewNetworkV2(oc.providerClient, oc.endpointOpts(options))
	if err != nil {
		return nil, err
	}

	return &NetworkingClient{
		client: client,
	}, nil
}

// BlockStorage returns a BlockStorage client. The client uses Cinder v3 API for issuing calls.
func (oc *OpenstackClientFactory) BlockStorage(options ...Option) (BlockStorage, error) {
	client, err := openstack.NewBlockStorageV3(oc.providerClient, oc.endpointOpts(options))
	if err != nil {
		return nil, err
	}

	return &BlockStorageClient{
		client: client,
	}, nil
}

// Images returns an Images client. The client uses Glance v2 API for issuing calls.
func (oc *OpenstackClientFactory) Images(options ...Option) (Images, error) {
	client, err := openstack.NewImageV2(oc.providerClient, oc.endpointOpts(options))
	if err != nil {
		return nil, err
	}

	return &ImageClient{
		client: client,
	}, nil
}

// Identity returns an Identity client. The client uses Identity v3 API for issuing calls.
func (oc *OpenstackClientFactory) Identity(options ...Option) (Identity, error) {
	client, err := openstack.NewIdentityV3(oc.providerClient, oc.endpointOpts(options))
	if err != nil {
		return nil, err
	}

	return &IdentityClient{
		client: client,
	}, nil
}

// Alarming returns an Alarming client. The client uses Aodh v2 API for issuing calls.
func (oc *OpenstackClientFactory) Alarming(options ...Option) (Alarming, error) {
	eo := oc.endpointOpts(options)
	eo.ApplyDefaults(alarmingServiceType)

	url, err := oc.providerClient.EndpointLocator(eo)
	if err != nil {
		return nil, err
	}
	url = gophercloud.NormalizeURL(url)

	return &AlarmingClient{
		client: &gophercloud.ServiceClient{
			ProviderClient: oc.providerClient,
			Endpoint:       url,
			ResourceBase:   url + "v2/",
			Type:           alarmingServiceType,
		},
	}, nil
}
