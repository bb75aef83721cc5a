// SPDX-FileCopyrightText: SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package waiter

import (
	"context"
	"fmt"
	"time"

	"github.com/cjjingchen/avocado-cloudtest-sub000/pkg/ceph"
	"github.com/cjjingchen/avocado-cloudtest-sub000/pkg/wait"
)

// FailoverResult contains the durations measured by MeasureOSDFailover.
type FailoverResult struct {
	// Down is the time from stopping the OSD until the API reported it down.
	Down time.Duration
	// Up is the time from starting the OSD until the API reported it up again.
	Up time.Duration
}

// MeasureOSDFailover stops an OSD with stop, waits until it is reported down, starts it with start and waits
// until it is reported up again. stop and start are usually remote commands on the storage node.
func (w *Waiter) MeasureOSDFailover(ctx context.Context, clusterID, osdID string, stop, start func(context.Context) error) (*FailoverResult, error) {
	log := w.log.WithValues("osd", osdID)
	result := &FailoverResult{}

	log.Info("Stopping OSD")
	if err := stop(ctx); err != nil {
		return nil, fmt.Errorf("could not stop osd %s: %w", osdID, err)
	}
	if _, err := w.waitForOSDState(ctx, clusterID, osdID, ceph.OSDStateDown, measure(&result.Down)); err != nil {
		return nil, err
	}
	log.Info("OSD is down", "elapsed", result.Down)

	log.Info("Starting OSD")
	if err := start(ctx); err != nil {
		return result, fmt.Errorf("could not start osd %s: %w", osdID, err)
	}
	if _, err := w.waitForOSDState(ctx, clusterID, osdID, ceph.OSDStateUp, measure(&result.Up)); err != nil {
		return result, err
	}
	log.Info("OSD is up again", "elapsed", result.Up)

	return result, nil
}

func measure(elapsed *time.Duration) wait.Option {
	return wait.WithObserver(wait.ObserverFunc(func(_ string, _ wait.Outcome, _ int, d time.Duration) {
		*elapsed = d
	}))
}
