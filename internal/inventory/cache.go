// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package inventory

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/ansible-inventory-cloudsigma/internal/logging"
)

const defaultCacheTTLSeconds = 3600

// DefaultCacheFile is the cache file name used when cache_path is not set,
// created next to the source file.
const DefaultCacheFile = ".cloudsigma-inventory.cache.json"

// Cache stores a rendered inventory document in a plain JSON file, the
// same shape Ansible's jsonfile cache plugin keeps, so operators can
// inspect or delete it with ordinary tools.
type Cache struct {
	Path string
	TTL  time.Duration
}

// Get returns the cached inventory if the file exists, parses, and is
// younger than the TTL. A missing, stale, or corrupt file is a miss,
// never an error: the caller falls through to the API.
func (c *Cache) Get(ctx context.Context, now time.Time) (*Inventory, bool) {
	logger := logging.FromContext(ctx)

	fi, err := os.Stat(c.Path)
	if err != nil {
		return nil, false
	}
	if now.Sub(fi.ModTime()) > c.TTL {
		logger.Debug(ctx, "inventory cache stale", "path", c.Path, "age", now.Sub(fi.ModTime()).String())
		return nil, false
	}

	data, err := os.ReadFile(c.Path)
	if err != nil {
		logger.Warn(ctx, "error reading inventory cache", "path", c.Path, "err", err.Error())
		return nil, false
	}

	var inv Inventory
	if err := json.Unmarshal(data, &inv); err != nil {
		logger.Warn(ctx, "discarding corrupt inventory cache", "path", c.Path, "err", err.Error())
		return nil, false
	}

	logger.Debug(ctx, "inventory cache hit", "path", c.Path)
	return &inv, true
}

// Put writes the inventory to the cache file. The file carries 0600
// because hostvars may include metadata the account considers private.
func (c *Cache) Put(ctx context.Context, inv *Inventory) error {
	data, err := json.Marshal(inv)
	if err != nil {
		return fmt.Errorf("error encoding inventory cache: %w", err)
	}
	if err := os.WriteFile(c.Path, data, 0o600); err != nil {
		return fmt.Errorf("error writing inventory cache %s: %w", c.Path, err)
	}
	logging.FromContext(ctx).Debug(ctx, "inventory cache written", "path", c.Path)
	return nil
}
