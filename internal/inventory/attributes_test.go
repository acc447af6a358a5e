// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package inventory

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetSourceAttributes(t *testing.T) {
	cases := []struct {
		name                string
		in                  map[string]any
		expected            *SourceAttributes
		expectedErrContains string
	}{
		{
			name: "defaults",
			in:   map[string]any{},
			expected: &SourceAttributes{
				IncludeRunningOnly: true,
				CacheTTL:           3600,
			},
		},
		{
			name: "credential fields ignored",
			in: map[string]any{
				"plugin":              "cloudsigma_inventory",
				"cloudsigma_region":   "zrh",
				"cloudsigma_username": "user",
				"cloudsigma_password": "secret",
			},
			expected: &SourceAttributes{
				IncludeRunningOnly: true,
				CacheTTL:           3600,
			},
		},
		{
			name: "unrecognized field",
			in: map[string]any{
				"group_tag_prefiks": "role_",
			},
			expectedErrContains: "attributes.group_tag_prefiks: unrecognized field",
		},
		{
			name: "full set",
			in: map[string]any{
				ConstGroupTagPrefix:     "role_",
				ConstIncludeRunningOnly: false,
				ConstIncludeTags:        []any{"prod", "staging"},
				ConstExcludeTags:        []any{"ignore"},
				ConstCache:              true,
				ConstCacheTTL:           60,
				ConstCachePath:          "/tmp/inv.json",
			},
			expected: &SourceAttributes{
				GroupTagPrefix:     "role_",
				IncludeRunningOnly: false,
				IncludeTags:        []string{"prod", "staging"},
				ExcludeTags:        []string{"ignore"},
				Cache:              true,
				CacheTTL:           60,
				CachePath:          "/tmp/inv.json",
			},
		},
		{
			name: "scalar tag filters normalized",
			in: map[string]any{
				ConstIncludeTags: "prod",
				ConstExcludeTags: "ignore",
			},
			expected: &SourceAttributes{
				IncludeRunningOnly: true,
				IncludeTags:        []string{"prod"},
				ExcludeTags:        []string{"ignore"},
				CacheTTL:           3600,
			},
		},
		{
			name: "bad include_tags element",
			in: map[string]any{
				ConstIncludeTags: []any{"prod", 3},
			},
			expectedErrContains: "attributes.include_tags",
		},
		{
			name: "non-positive cache_ttl",
			in: map[string]any{
				ConstCacheTTL: -5,
			},
			expectedErrContains: "attributes.cache_ttl: must be a positive number of seconds",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require := require.New(t)

			actual, err := GetSourceAttributes(tc.in)
			if tc.expectedErrContains != "" {
				require.Error(err)
				require.Contains(err.Error(), tc.expectedErrContains)
				return
			}
			require.NoError(err)
			require.Equal(tc.expected, actual)
		})
	}
}
