// SPDX-FileCopyrightText: SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"fmt"

	"github.com/gophercloud/gophercloud/v2/openstack/image/v2/images"
)

// ListImages lists all images filtered by listOpts
func (c *ImageClient) ListImages(ctx context.Context, opts images.ListOpts) ([]images.Image, error) {
	pages, err := images.List(c.client, opts).AllPages(ctx)
	if err != nil {
		return nil, err
	}

	return images.ExtractImages(pages)
}

// GetImage returns the image with the given id.
func (c *ImageClient) GetImage(ctx context.Context, id string) (*images.Image, error) {
	return images.Get(ctx, c.client, id).Extract()
}

// DeleteImage deletes the image with the given id.
func (c *ImageClient) DeleteImage(ctx context.Context, id string) error {
	return images.Delete(ctx, c.client, id).ExtractErr()
}

// FindImageID returns the id of the image with the given name. If no image has this name, nameOrID is treated as id.
func (c *ImageClient) FindImageID(ctx context.Context, nameOrID string) (string, error) {
	found, err := c.ListImages(ctx, images.ListOpts{Name: nameOrID})
	if err != nil {
		return "", err
	}

	switch len(found) {
	case 0:
		image, err := c.GetImage(ctx, nameOrID)
		if err != nil {
			return "", fmt.Errorf("image %q not found: %w", nameOrID, err)
		}
		return image.ID, nil
	case 1:
		return found[0].ID, nil
	default:
		return "", fmt.Errorf("found %d images with name %q", len(found), nameOrID)
	}
}
