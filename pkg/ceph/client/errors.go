// SPDX-FileCopyrightText: SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is returned for responses with a status code other than 2xx.
type APIError struct {
	StatusCode int
	Method     string
	URL        string
	Body       string
}

// Error implements error.
func (e *APIError) Error() string {
	msg := fmt.Sprintf("%s %s failed with status %d", e.Method, e.URL, e.StatusCode)
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

func statusCodeIs(err error, check func(int) bool) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && check(apiErr.StatusCode)
}

// IsNotFound returns true if err is an *APIError with status 404.
func IsNotFound(err error) bool {
	return statusCodeIs(err, func(code int) bool { return code == http.StatusNotFound })
}

// IgnoreNotFound returns nil if err is a not found error, err otherwise.
func IgnoreNotFound(err error) error {
	if err == nil || IsNotFound(err) {
		return nil
	}
	return err
}

// IsServerError returns true if err is an *APIError with a 5xx status.
func IsServerError(err error) bool {
	return statusCodeIs(err, func(code int) bool { return code >= http.StatusInternalServerError })
}
