// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package cloudsigma

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/go-querystring/query"
	"github.com/juju/clock"
	"github.com/juju/retry"

	"github.com/hashicorp/ansible-inventory-cloudsigma/internal/logging"
)

const (
	defaultPageSize      = 100
	defaultRetryAttempts = 4
	defaultRetryDelay    = 500 * time.Millisecond
	maxRetryDelay        = 5 * time.Second

	// maxErrorBody caps how much of an error response body is kept for
	// the error message.
	maxErrorBody = 256
)

// APIError is returned for any non-2xx response from the CloudSigma API.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("cloudsigma API error: status %d", e.StatusCode)
	}
	return fmt.Sprintf("cloudsigma API error: status %d: %s", e.StatusCode, e.Body)
}

// Client is a minimal CloudSigma API 2.0 client covering the calls the
// inventory source needs: listing servers in detail representation and
// listing tags.
type Client struct {
	endpoint   string
	httpClient *http.Client
	pageSize   int
	attempts   int
	retryDelay time.Duration
	clock      clock.Clock
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithPageSize sets the limit used for list pagination.
func WithPageSize(n int) ClientOption {
	return func(c *Client) {
		if n > 0 {
			c.pageSize = n
		}
	}
}

// WithRetry sets the retry attempts and initial delay for transient
// failures.
func WithRetry(attempts int, delay time.Duration) ClientOption {
	return func(c *Client) {
		if attempts > 0 {
			c.attempts = attempts
		}
		if delay > 0 {
			c.retryDelay = delay
		}
	}
}

// WithClock overrides the clock driving retry backoff.
func WithClock(clk clock.Clock) ClientOption {
	return func(c *Client) {
		c.clock = clk
	}
}

// New creates a Client for the given API endpoint. The http.Client is
// expected to carry authentication (see credential.Config.GetClient).
func New(endpoint string, httpClient *http.Client, opts ...ClientOption) (*Client, error) {
	if endpoint == "" {
		return nil, errors.New("endpoint is required")
	}
	if httpClient == nil {
		return nil, errors.New("http client is required")
	}
	c := &Client{
		endpoint:   strings.TrimSuffix(endpoint, "/"),
		httpClient: httpClient,
		pageSize:   defaultPageSize,
		attempts:   defaultRetryAttempts,
		retryDelay: defaultRetryDelay,
		clock:      clock.WallClock,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// listParams is the pagination query for list endpoints.
type listParams struct {
	Limit  int `url:"limit"`
	Offset int `url:"offset"`
}

// ListServersDetail returns all servers in detail representation,
// following pagination until the reported total count is reached.
func (c *Client) ListServersDetail(ctx context.Context) ([]Server, error) {
	var out []Server
	for offset := 0; ; {
		var page serverList
		if err := c.getJSON(ctx, "servers/detail/", listParams{Limit: c.pageSize, Offset: offset}, &page); err != nil {
			return nil, fmt.Errorf("error listing servers: %w", err)
		}
		out = append(out, page.Objects...)
		offset += len(page.Objects)
		if len(page.Objects) == 0 || offset >= page.Meta.TotalCount {
			return out, nil
		}
	}
}

// ListTags returns all tags defined on the account.
func (c *Client) ListTags(ctx context.Context) ([]Tag, error) {
	var out []Tag
	for offset := 0; ; {
		var page tagList
		if err := c.getJSON(ctx, "tags/", listParams{Limit: c.pageSize, Offset: offset}, &page); err != nil {
			return nil, fmt.Errorf("error listing tags: %w", err)
		}
		out = append(out, page.Objects...)
		offset += len(page.Objects)
		if len(page.Objects) == 0 || offset >= page.Meta.TotalCount {
			return out, nil
		}
	}
}

// getJSON performs a GET with retry on transport errors and 5xx responses.
// 4xx responses are never retried.
func (c *Client) getJSON(ctx context.Context, path string, params any, out any) error {
	q, err := query.Values(params)
	if err != nil {
		return fmt.Errorf("error encoding query parameters: %w", err)
	}
	url := c.endpoint + "/" + path + "?" + q.Encode()

	var body []byte
	err = retry.Call(retry.CallArgs{
		Func: func() error {
			b, err := c.get(ctx, url)
			if err != nil {
				return err
			}
			body = b
			return nil
		},
		IsFatalError: func(err error) bool {
			var apiErr *APIError
			if errors.As(err, &apiErr) {
				return apiErr.StatusCode < 500
			}
			return ctx.Err() != nil
		},
		NotifyFunc: func(lastError error, attempt int) {
			logging.FromContext(ctx).Debug(ctx, "retrying cloudsigma request",
				"path", path, "attempt", attempt, "err", lastError.Error())
		},
		Attempts:    c.attempts,
		Delay:       c.retryDelay,
		MaxDelay:    maxRetryDelay,
		BackoffFunc: retry.DoubleDelay,
		Clock:       c.clock,
		Stop:        ctx.Done(),
	})
	if retry.IsAttemptsExceeded(err) || retry.IsRetryStopped(err) {
		err = retry.LastError(err)
	}
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("error decoding response from %s: %w", path, err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("error building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		excerpt := strings.TrimSpace(string(body))
		if len(excerpt) > maxErrorBody {
			excerpt = excerpt[:maxErrorBody]
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Body: excerpt}
	}
	return body, nil
}
