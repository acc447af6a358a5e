// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package credential

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Verify performs a CloudSigma profile call to prove the configured
// credentials work before any inventory listing happens. A 401 or 403 is
// reported as a credential problem; any other non-2xx status is reported
// as-is.
func (c *Config) Verify(ctx context.Context) error {
	client, err := c.GetClient(ctx)
	if err != nil {
		return fmt.Errorf("error getting client: %w", err)
	}

	url := strings.TrimSuffix(c.Endpoint, "/") + "/profile/"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("error building profile request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("error calling profile endpoint: %w", err)
	}
	defer resp.Body.Close()
	// Drain so the connection can be reused for the listing calls.
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("credential verification failed: %s rejected username %q", c.Endpoint, c.Username)
	default:
		return fmt.Errorf("credential verification failed: unexpected status %d from %s", resp.StatusCode, url)
	}
}
