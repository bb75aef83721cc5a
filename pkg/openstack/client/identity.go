// SPDX-FileCopyrightText: SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"

	"github.com/gophercloud/gophercloud/v2/openstack/identity/v3/projects"
	"github.com/gophercloud/gophercloud/v2/openstack/identity/v3/tokens"
)

// ListProjects lists all projects visible to the client user.
func (c *IdentityClient) ListProjects(ctx context.Context, opts projects.ListOpts) ([]projects.Project, error) {
	pages, err := projects.List(c.client, opts).AllPages(ctx)
	if err != nil {
		return nil, err
	}
	return projects.ExtractProjects(pages)
}

// GetProject returns the project with the given id.
func (c *IdentityClient) GetProject(ctx context.Context, id string) (*projects.Project, error) {
	return projects.Get(ctx, c.client, id).Extract()
}

// LookupClientUserID will try to lookup the id of the user that configure the identity client.
func (c *IdentityClient) LookupClientUserID(ctx context.Context) (string, error) {
	result := tokens.Get(ctx, c.client, c.client.Token())
	if result.Err != nil {
		return "", result.Err
	}

	user, err := result.ExtractUser()
	if err != nil {
		return "", err
	}

	return user.ID, nil
}
