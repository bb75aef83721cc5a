// SPDX-FileCopyrightText: SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

// Package client implements a client for the Ceph management REST API.
package client

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/go-logr/logr"
	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-retryablehttp"
	"k8s.io/utils/ptr"

	"github.com/cjjingchen/avocado-cloudtest-sub000/pkg/apis/config"
	"github.com/cjjingchen/avocado-cloudtest-sub000/pkg/ceph"
	"github.com/cjjingchen/avocado-cloudtest-sub000/pkg/ceph/schema"
)

// Client is the Ceph management API client. Failed requests (connection errors and 5xx responses) are retried.
type Client struct {
	log       logr.Logger
	endpoint  *url.URL
	username  string
	password  string
	http      *retryablehttp.Client
	validator ResponseValidator
}

var _ Interface = &Client{}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithSchemaValidation validates every response body with the given validator. A nil validator disables
// validation.
func WithSchemaValidation(validator ResponseValidator) ClientOption {
	return func(c *Client) {
		c.validator = validator
	}
}

// WithRetryWait sets the minimum and maximum wait between two retries.
func WithRetryWait(minWait, maxWait time.Duration) ClientOption {
	return func(c *Client) {
		c.http.RetryWaitMin = minWait
		c.http.RetryWaitMax = maxWait
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.http.HTTPClient = httpClient
	}
}

// NewClient creates a client for the API described by cfg. If cfg.ValidateResponses is set, responses are
// validated against the built-in schemas.
func NewClient(log logr.Logger, cfg *config.Ceph, opts ...ClientOption) (*Client, error) {
	endpoint, err := url.Parse(cfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid ceph endpoint: %w", err)
	}

	transport := cleanhttp.DefaultPooledTransport()
	if cfg.Insecure {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} // #nosec G402 -- explicitly configured
	}
	httpClient := &http.Client{Transport: transport}
	if cfg.RequestTimeout != nil {
		httpClient.Timeout = cfg.RequestTimeout.Duration
	}

	log = log.WithName("ceph-client")
	retryClient := retryablehttp.NewClient()
	retryClient.HTTPClient = httpClient
	retryClient.RetryMax = ptr.Deref(cfg.MaxRetries, 3)
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	retryClient.Logger = leveledLogger{log: log}

	c := &Client{
		log:      log,
		endpoint: endpoint,
		username: cfg.Username,
		password: cfg.Password,
		http:     retryClient,
	}
	if ptr.Deref(cfg.ValidateResponses, false) {
		validator, err := schema.NewValidator()
		if err != nil {
			return nil, err
		}
		c.validator = validator
	}

	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// do sends a request to the endpoint joined with path. The response body is validated against schemaName
// (if not empty) and decoded into out (if not nil).
func (c *Client) do(ctx context.Context, method, schemaName string, in, out any, path ...string) error {
	var body []byte
	if in != nil {
		var err error
		if body, err = json.Marshal(in); err != nil {
			return fmt.Errorf("could not encode request: %w", err)
		}
	}

	u := c.endpoint.JoinPath(path...).String()
	req, err := retryablehttp.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.username != "" {
		req.SetBasicAuth(c.username, c.password)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s failed: %w", method, u, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("could not read response of %s %s: %w", method, u, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Method: method, URL: u, Body: string(bytes.TrimSpace(data))}
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if c.validator != nil && schemaName != "" {
		if err := c.validator.Validate(schemaName, data); err != nil {
			return fmt.Errorf("invalid response of %s %s: %w", method, u, err)
		}
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("could not decode response of %s %s: %w", method, u, err)
	}
	return nil
}

func get[T any](ctx context.Context, c *Client, r ceph.Resource, path ...string) (*T, error) {
	envelope := map[string]*T{}
	if err := c.do(ctx, http.MethodGet, r.Name, nil, &envelope, path...); err != nil {
		return nil, err
	}
	return unwrap(envelope, r.Name)
}

func list[T any](ctx context.Context, c *Client, r ceph.Resource, path ...string) ([]T, error) {
	envelope := map[string][]T{}
	if err := c.do(ctx, http.MethodGet, r.ListSchema(), nil, &envelope, path...); err != nil {
		return nil, err
	}
	return envelope[r.ListName], nil
}

// send posts or puts a resource and returns the resource from the response.
func send[T any](ctx context.Context, c *Client, method string, r ceph.Resource, in *T, path ...string) (*T, error) {
	envelope := map[string]*T{}
	if err := c.do(ctx, method, r.Name, map[string]*T{r.Name: in}, &envelope, path...); err != nil {
		return nil, err
	}
	return unwrap(envelope, r.Name)
}

func unwrap[T any](envelope map[string]*T, key string) (*T, error) {
	value, ok := envelope[key]
	if !ok || value == nil {
		return nil, fmt.Errorf("response does not contain %q", key)
	}
	return value, nil
}

func (c *Client) delete(ctx context.Context, path ...string) error {
	return c.do(ctx, http.MethodDelete, "", nil, nil, path...)
}

// action triggers an asynchronous operation on a resource, e.g. POST .../osds/3/stop.
func (c *Client) action(ctx context.Context, path ...string) error {
	return c.do(ctx, http.MethodPost, "", nil, nil, path...)
}

// leveledLogger lets retryablehttp log through logr.
type leveledLogger struct {
	log logr.Logger
}

func (l leveledLogger) Error(msg string, keysAndValues ...any) {
	l.log.Error(nil, msg, keysAndValues...)
}

func (l leveledLogger) Info(msg string, keysAndValues ...any) {
	l.log.Info(msg, keysAndValues...)
}

func (l leveledLogger) Debug(msg string, keysAndValues ...any) {
	l.log.V(1).Info(msg, keysAndValues...)
}

func (l leveledLogger) Warn(msg string, keysAndValues ...any) {
	l.log.Info(msg, keysAndValues...)
}
