// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package inventory

import (
	"context"
	"fmt"
	"strings"

	"github.com/hashicorp/ansible-inventory-cloudsigma/internal/cloudsigma"
	"github.com/hashicorp/ansible-inventory-cloudsigma/internal/logging"
)

// Hostvar keys set on every rendered host.
const (
	VarPublicIPAddress = "public_ip_address"
	VarTags            = "tags"
	VarServerName      = "server_name"
	VarMeta            = "meta"
)

// Build assembles an inventory document from the listed servers and tags
// according to the source attributes.
func Build(ctx context.Context, servers []cloudsigma.Server, tags []cloudsigma.Tag, attrs *SourceAttributes) (*Inventory, error) {
	if attrs == nil {
		return nil, fmt.Errorf("source attributes are required")
	}
	logger := logging.FromContext(ctx)

	tagsByUUID := make(map[string]cloudsigma.Tag, len(tags))
	for _, tag := range tags {
		tagsByUUID[tag.UUID] = tag
	}

	inv := New()

	// Prefix groups exist even when no host ends up in them, so plays
	// targeting a role group see an empty group rather than a missing one.
	if attrs.GroupTagPrefix != "" {
		for _, tag := range tags {
			if group, ok := strings.CutPrefix(tag.Name, attrs.GroupTagPrefix); ok && group != "" {
				inv.AddGroup(group)
			}
		}
	}

	seen := make(map[string]struct{}, len(servers))
	for _, server := range servers {
		if server.Name == "" {
			logger.Warn(ctx, "skipping server with empty name", "uuid", server.UUID)
			continue
		}
		if attrs.IncludeRunningOnly && server.Status != cloudsigma.StatusRunning {
			logger.Debug(ctx, "skipping non-running server", "server", server.Name, "status", server.Status)
			continue
		}

		tagNames := serverTagNames(ctx, &server, tagsByUUID)

		if len(attrs.IncludeTags) > 0 && !anyInSlice(tagNames, attrs.IncludeTags) {
			logger.Debug(ctx, "skipping server not matching include_tags", "server", server.Name)
			continue
		}
		if len(attrs.ExcludeTags) > 0 && anyInSlice(tagNames, attrs.ExcludeTags) {
			logger.Debug(ctx, "skipping server matching exclude_tags", "server", server.Name)
			continue
		}

		// Duplicate names can occur across a listing; the first server
		// wins for hostvars, later ones only accumulate group
		// memberships.
		_, duplicate := seen[server.Name]
		seen[server.Name] = struct{}{}

		groupAssigned := false
		if attrs.GroupTagPrefix != "" {
			for _, tagName := range tagNames {
				if group, ok := strings.CutPrefix(tagName, attrs.GroupTagPrefix); ok && group != "" {
					inv.AddHost(server.Name, group)
					groupAssigned = true
				}
			}
		}
		// A duplicate without prefix tags must not drag an already
		// registered host into ungrouped.
		if !groupAssigned && !duplicate {
			inv.AddHost(server.Name, "")
		}

		if duplicate {
			continue
		}

		inv.SetVariable(server.Name, VarPublicIPAddress, server.PublicIPv4())
		inv.SetVariable(server.Name, VarTags, tagNames)
		inv.SetVariable(server.Name, VarServerName, server.Name)
		if len(server.Meta) > 0 {
			inv.SetVariable(server.Name, VarMeta, server.Meta)
		}
	}

	logger.Debug(ctx, "inventory built",
		"servers", len(servers), "hosts", len(inv.Hostvars), "groups", len(inv.Groups))
	return inv, nil
}

// serverTagNames resolves a server's tag references to names. References
// to tags that vanished between the two list calls are skipped.
func serverTagNames(ctx context.Context, server *cloudsigma.Server, tagsByUUID map[string]cloudsigma.Tag) []string {
	names := make([]string, 0, len(server.Tags))
	for _, ref := range server.Tags {
		tag, ok := tagsByUUID[ref.UUID]
		if !ok {
			logging.FromContext(ctx).Warn(ctx, "server references unknown tag",
				"server", server.Name, "tag_uuid", ref.UUID)
			continue
		}
		names = append(names, tag.Name)
	}
	return names
}

func anyInSlice(haystack, needles []string) bool {
	for _, n := range needles {
		if stringInSlice(haystack, n) {
			return true
		}
	}
	return false
}
