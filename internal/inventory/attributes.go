// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package inventory

import (
	"fmt"

	"github.com/mitchellh/mapstructure"

	"github.com/hashicorp/ansible-inventory-cloudsigma/internal/credential"
	"github.com/hashicorp/ansible-inventory-cloudsigma/internal/errors"
	"github.com/hashicorp/ansible-inventory-cloudsigma/internal/values"
)

const (
	// ConstPluginToken is the source file key naming the inventory source.
	ConstPluginToken = "plugin"

	// ConstGroupTagPrefix defines the attribute selecting which tags become groups.
	ConstGroupTagPrefix = "group_tag_prefix"

	// ConstIncludeRunningOnly defines the attribute limiting hosts to running servers.
	ConstIncludeRunningOnly = "include_running_only"

	// ConstIncludeTags defines the attribute listing tags a host must carry.
	ConstIncludeTags = "include_tags"

	// ConstExcludeTags defines the attribute listing tags that drop a host.
	ConstExcludeTags = "exclude_tags"

	// ConstCache defines the attribute enabling the inventory file cache.
	ConstCache = "cache"

	// ConstCacheTTL defines the attribute setting cache freshness in seconds.
	ConstCacheTTL = "cache_ttl"

	// ConstCachePath defines the attribute overriding the cache file location.
	ConstCachePath = "cache_path"
)

var allowedSourceFields = map[string]struct{}{
	ConstPluginToken:        {},
	ConstGroupTagPrefix:     {},
	ConstIncludeRunningOnly: {},
	ConstIncludeTags:        {},
	ConstExcludeTags:        {},
	ConstCache:              {},
	ConstCacheTTL:           {},
	ConstCachePath:          {},
}

// SourceAttributes defines the inventory-shaping attributes of the source
// file. Credential attributes are handled separately by the credential
// package.
type SourceAttributes struct {
	GroupTagPrefix     string   `mapstructure:"group_tag_prefix"`
	IncludeRunningOnly bool     `mapstructure:"include_running_only"`
	IncludeTags        []string `mapstructure:"include_tags"`
	ExcludeTags        []string `mapstructure:"exclude_tags"`
	Cache              bool     `mapstructure:"cache"`
	CacheTTL           int      `mapstructure:"cache_ttl"`
	CachePath          string   `mapstructure:"cache_path"`
}

// GetSourceAttributes decodes and validates the source attributes from the
// raw source file map. Unknown fields are rejected; fields owned by the
// credential package are ignored here.
func GetSourceAttributes(in map[string]any) (*SourceAttributes, error) {
	badFields := make(map[string]string)
	unknownFields := values.MapFields(in)

	for f := range unknownFields {
		if _, ok := allowedSourceFields[f]; ok {
			continue
		}
		switch f {
		// Fields validated by GetCredentialAttributes.
		case credential.ConstRegion, credential.ConstUsername, credential.ConstPassword:
			continue
		default:
			badFields[fmt.Sprintf("attributes.%s", f)] = "unrecognized field"
		}
	}
	if len(badFields) > 0 {
		return nil, errors.InvalidArgumentError("Error in the attributes provided", badFields)
	}

	// Mapstructure complains if it expects a slice as output and sees a
	// scalar value, so normalize scalar tag filters to single-element
	// lists before decoding.
	inCopy := make(map[string]any, len(in))
	for k, v := range in {
		inCopy[k] = v
	}
	for _, k := range []string{ConstIncludeTags, ConstExcludeTags} {
		list, err := values.GetStringListValue(inCopy, k)
		if err != nil {
			return nil, errors.InvalidArgumentError("Error in the attributes provided", map[string]string{
				fmt.Sprintf("attributes.%s", k): err.Error(),
			})
		}
		if list != nil {
			inCopy[k] = list
		}
	}

	// Defaults hold for any key absent from the source file.
	attrs := &SourceAttributes{
		IncludeRunningOnly: true,
		CacheTTL:           defaultCacheTTLSeconds,
	}
	if err := mapstructure.Decode(inCopy, attrs); err != nil {
		return nil, fmt.Errorf("error decoding source attributes: %w", err)
	}

	if attrs.CacheTTL <= 0 {
		badFields[fmt.Sprintf("attributes.%s", ConstCacheTTL)] = "must be a positive number of seconds"
	}
	if len(badFields) > 0 {
		return nil, errors.InvalidArgumentError("Error in the attributes provided", badFields)
	}

	return attrs, nil
}
