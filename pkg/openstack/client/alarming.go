// SPDX-FileCopyrightText: SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"net/http"

	"github.com/gophercloud/gophercloud/v2"
)

const alarmingServiceType = "alarming"

// Alarm is an Aodh alarm. Rules are kept as raw JSON objects since their shape depends on the alarm type.
type Alarm struct {
	AlarmID      string         `json:"alarm_id,omitempty"`
	Name         string         `json:"name"`
	Type         string         `json:"type"`
	Description  string         `json:"description,omitempty"`
	State        string         `json:"state,omitempty"`
	StateReason  string         `json:"state_reason,omitempty"`
	Severity     string         `json:"severity,omitempty"`
	Enabled      *bool          `json:"enabled,omitempty"`
	RepeatAction *bool          `json:"repeat_actions,omitempty"`
	AlarmActions []string       `json:"alarm_actions,omitempty"`
	OKActions    []string       `json:"ok_actions,omitempty"`
	ProjectID    string         `json:"project_id,omitempty"`
	EventRule    map[string]any `json:"event_rule,omitempty"`
	// ThresholdRule is used by alarms of type gnocchi_resources_threshold.
	ThresholdRule map[string]any `json:"gnocchi_resources_threshold_rule,omitempty"`
	// AggregationRule is used by alarms of type gnocchi_aggregation_by_resources_threshold.
	AggregationRule map[string]any `json:"gnocchi_aggregation_by_resources_threshold_rule,omitempty"`
}

// ListAlarms lists all alarms.
func (c *AlarmingClient) ListAlarms(ctx context.Context) ([]Alarm, error) {
	var alarms []Alarm
	_, err := c.client.Get(ctx, c.client.ServiceURL("alarms"), &alarms, &gophercloud.RequestOpts{
		OkCodes: []int{http.StatusOK},
	})
	return alarms, err
}

// GetAlarm returns the alarm with the given id.
func (c *AlarmingClient) GetAlarm(ctx context.Context, id string) (*Alarm, error) {
	alarm := &Alarm{}
	if _, err := c.client.Get(ctx, c.client.ServiceURL("alarms", id), alarm, &gophercloud.RequestOpts{
		OkCodes: []int{http.StatusOK},
	}); err != nil {
		return nil, err
	}
	return alarm, nil
}

// CreateAlarm creates an alarm.
func (c *AlarmingClient) CreateAlarm(ctx context.Context, alarm Alarm) (*Alarm, error) {
	created := &Alarm{}
	if _, err := c.client.Post(ctx, c.client.ServiceURL("alarms"), alarm, created, &gophercloud.RequestOpts{
		OkCodes: []int{http.StatusCreated},
	}); err != nil {
		return nil, err
	}
	return created, nil
}

// DeleteAlarm deletes the alarm with the given id.
func (c *AlarmingClient) DeleteAlarm(ctx context.Context, id string) error {
	_, err := c.client.Delete(ctx, c.client.ServiceURL("alarms", id), &gophercloud.RequestOpts{
		OkCodes: []int{http.StatusNoContent},
	})
	return err
}

// GetAlarmState returns the current state of the alarm.
func (c *AlarmingClient) GetAlarmState(ctx context.Context, id string) (string, error) {
	var state string
	_, err := c.client.Get(ctx, c.client.ServiceURL("alarms", id, "state"), &state, &gophercloud.RequestOpts{
		OkCodes: []int{http.StatusOK},
	})
	return state, err
}

// SetAlarmState forces the alarm into the given state.
func (c *AlarmingClient) SetAlarmState(ctx context.Context, id, state string) error {
	_, err := c.client.Put(ctx, c.client.ServiceURL("alarms", id, "state"), state, nil, &gophercloud.RequestOpts{
		OkCodes: []int{http.StatusOK},
	})
	return err
}
