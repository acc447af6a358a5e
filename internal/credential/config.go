// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package credential

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

const defaultRequestTimeout = 30 * time.Second

// Config is the configuration for the CloudSigma credential.
type Config struct {
	Username string
	Password string
	Endpoint string
	Client   *http.Client
}

// basicAuthTransport injects HTTP basic auth into every outgoing request.
// CloudSigma's API 2.0 authenticates every call with the account username
// and password.
type basicAuthTransport struct {
	username string
	password string
	base     http.RoundTripper
}

func (t *basicAuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// RoundTrippers must not mutate the original request.
	clone := req.Clone(req.Context())
	clone.SetBasicAuth(t.username, t.password)
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(clone)
}

// GetClient returns the client for the configuration. The client is a
// *http.Client which authenticates with the configured CloudSigma account.
//
// If the client is not set, it will generate the client.
func (c *Config) GetClient(ctx context.Context) (*http.Client, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}
	if c.Client == nil {
		c.Client = &http.Client{
			Transport: &basicAuthTransport{
				username: c.Username,
				password: c.Password,
			},
			Timeout: defaultRequestTimeout,
		}
	}
	return c.Client, nil
}

func (c *Config) validate() error {
	if c.Username == "" {
		return fmt.Errorf("username is required")
	}
	if c.Password == "" {
		return fmt.Errorf("password is required")
	}
	if c.Endpoint == "" {
		return fmt.Errorf("endpoint is required")
	}
	return nil
}
