// SPDX-FileCopyrightText: SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package waiter

import (
	"context"
	"fmt"

	"github.com/gophercloud/gophercloud/v2/openstack/image/v2/images"

	"github.com/cjjingchen/avocado-cloudtest-sub000/pkg/openstack"
	openstackclient "github.com/cjjingchen/avocado-cloudtest-sub000/pkg/openstack/client"
	"github.com/cjjingchen/avocado-cloudtest-sub000/pkg/wait"
)

// WaitForImageStatus waits until the image reaches the given status. A killed image fails the wait.
func (w *Waiter) WaitForImageStatus(ctx context.Context, imageClient openstackclient.Images, id, status string) (*images.Image, error) {
	log := w.log.WithValues("image", id)

	return wait.Require(ctx, log, w.policy(w.cfg.Timeouts.Image), fmt.Sprintf("image %s to reach status %s", id, status),
		wait.IgnoreErrors(log, func() (*images.Image, bool, error) {
			image, err := imageClient.GetImage(ctx, id)
			if err != nil {
				return nil, false, err
			}
			current := string(image.Status)
			if current == status {
				return image, true, nil
			}
			if current == openstack.ImageStatusKilled {
				return nil, false, &wait.ResourceFailedError{Kind: "image", ID: id, Status: current}
			}
			return nil, false, nil
		}, isTransient), w.opts...)
}

// WaitForAlarmState waits until the alarm reaches the given state.
func (w *Waiter) WaitForAlarmState(ctx context.Context, alarming openstackclient.Alarming, id, state string) error {
	log := w.log.WithValues("alarm", id)

	return wait.RequireCondition(ctx, log, w.policy(w.cfg.Timeouts.Alarm), fmt.Sprintf("alarm %s to reach state %s", id, state),
		wait.IgnoreConditionErrors(log, func() (bool, error) {
			current, err := alarming.GetAlarmState(ctx, id)
			if err != nil {
				return false, err
			}
			return current == state, nil
		}, isTransient), w.opts...)
}
