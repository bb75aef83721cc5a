// SPDX-FileCopyrightText: SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-logr/logr"
	"github.com/gophercloud/gophercloud/v2"
)

// IsNotFoundError checks if an error returned by OpenStack is caused by HTTP 404 status code.
func IsNotFoundError(err error) bool {
	return err != nil && gophercloud.ResponseCodeIs(err, http.StatusNotFound)
}

// IgnoreNotFoundError ignore not found error
func IgnoreNotFoundError(err error) error {
	if IsNotFoundError(err) {
		return nil
	}
	return err
}

// following https://github.com/terraform-provider-openstack/terraform-provider-openstack/blob/cec35ae29769b4de7d84980b1335a2b723ffb15f/openstack/networking_v2_shared.go

type neutronErrorWrap struct {
	NeutronError neutronError
}

type neutronError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Detail  string `json:"detail"`
}

// IsRetryable reports whether a request failing with err may succeed when it is repeated: missing resources that are
// still being created, exhausted address pools and temporary server side failures.
func IsRetryable(log logr.Logger, err error) bool {
	var unexpectedErr gophercloud.ErrUnexpectedResponseCode
	if !errors.As(err, &unexpectedErr) {
		return false
	}

	switch unexpectedErr.Actual {
	case http.StatusConflict:
		neutronError, e := decodeNeutronError(unexpectedErr.Body)
		if e != nil {
			// retry, when error type cannot be detected
			log.V(1).Info("Failed to decode a neutron error", "error", e)
			return true
		}
		// don't retry on quota or other errors
		return neutronError.Type == "IpAddressGenerationFailure"
	case http.StatusBadRequest:
		neutronError, e := decodeNeutronError(unexpectedErr.Body)
		if e != nil {
			log.V(1).Info("Failed to decode a neutron error", "error", e)
			return true
		}
		return neutronError.Type == "ExternalIpAddressExhausted"
	case http.StatusNotFound, http.StatusServiceUnavailable, http.StatusBadGateway, http.StatusGatewayTimeout:
		return true
	}
	return false
}

// Retryable returns IsRetryable bound to the given logger, e.g. for wait.IgnoreErrors.
func Retryable(log logr.Logger) func(error) bool {
	return func(err error) bool {
		return IsRetryable(log, err)
	}
}

func decodeNeutronError(body []byte) (*neutronError, error) {
	e := &neutronErrorWrap{}
	if err := json.Unmarshal(body, e); err != nil {
		return nil, err
	}

	return &e.NeutronError, nil
}
