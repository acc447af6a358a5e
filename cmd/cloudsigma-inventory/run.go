// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/hashicorp/ansible-inventory-cloudsigma/internal/cloudsigma"
	"github.com/hashicorp/ansible-inventory-cloudsigma/internal/credential"
	"github.com/hashicorp/ansible-inventory-cloudsigma/internal/inventory"
	"github.com/hashicorp/ansible-inventory-cloudsigma/internal/logging"
	"github.com/hashicorp/ansible-inventory-cloudsigma/internal/source"
)

// endpointForRegion is a function variable so tests can point a run at a
// local API server.
var endpointForRegion = cloudsigma.EndpointForRegion

func run(ctx context.Context, out io.Writer, flags *rootFlags) error {
	logger := logging.FromContext(ctx)

	path := flags.config
	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path == "" {
		return fmt.Errorf("no source file: set --config or the %s environment variable", EnvConfig)
	}

	attrsRaw, err := source.Load(path)
	if err != nil {
		return err
	}

	credAttrs, err := credential.GetCredentialAttributes(attrsRaw)
	if err != nil {
		return err
	}
	srcAttrs, err := inventory.GetSourceAttributes(attrsRaw)
	if err != nil {
		return err
	}
	endpoint, err := endpointForRegion(credAttrs.Region)
	if err != nil {
		return err
	}
	logger.Debug(ctx, "source file loaded", "path", path, "region", credAttrs.Region, "endpoint", endpoint)

	var cache *inventory.Cache
	if srcAttrs.Cache {
		cachePath := srcAttrs.CachePath
		if cachePath == "" {
			cachePath = filepath.Join(filepath.Dir(path), inventory.DefaultCacheFile)
		}
		cache = &inventory.Cache{
			Path: cachePath,
			TTL:  time.Duration(srcAttrs.CacheTTL) * time.Second,
		}
	}

	var inv *inventory.Inventory
	if cache != nil && !flags.refreshCache {
		if cached, ok := cache.Get(ctx, time.Now()); ok {
			inv = cached
		}
	}

	if inv == nil {
		inv, err = fetchInventory(ctx, endpoint, credAttrs, srcAttrs)
		if err != nil {
			return err
		}
		if cache != nil {
			if err := cache.Put(ctx, inv); err != nil {
				// A broken cache must not fail the inventory run.
				logger.Warn(ctx, "inventory cache not written", "err", err.Error())
			}
		}
	}

	if flags.host != "" {
		return writeJSON(out, inv.HostVars(flags.host))
	}
	return writeJSON(out, inv)
}

func fetchInventory(ctx context.Context, endpoint string, credAttrs *credential.CredentialAttributes, srcAttrs *inventory.SourceAttributes) (*inventory.Inventory, error) {
	logger := logging.FromContext(ctx)

	cfg := &credential.Config{
		Username: credAttrs.Username,
		Password: credAttrs.Password,
		Endpoint: endpoint,
	}
	state, err := credential.NewPersistedState(credential.WithCredentialsConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("error creating credential state: %w", err)
	}
	if err := state.Verify(ctx); err != nil {
		return nil, err
	}
	logger.Debug(ctx, "credentials verified", "verifiedAt", state.LastVerifiedTime.Format(time.RFC3339))

	httpClient, err := cfg.GetClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting client: %w", err)
	}
	client, err := cloudsigma.New(endpoint, httpClient)
	if err != nil {
		return nil, fmt.Errorf("error creating cloudsigma client: %w", err)
	}

	tags, err := client.ListTags(ctx)
	if err != nil {
		return nil, err
	}
	servers, err := client.ListServersDetail(ctx)
	if err != nil {
		return nil, err
	}
	logger.Debug(ctx, "api listing complete", "servers", len(servers), "tags", len(tags))

	return inventory.Build(ctx, servers, tags, srcAttrs)
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
