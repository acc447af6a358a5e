// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package values

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetStringValue(t *testing.T) {
	cases := []struct {
		name                string
		in                  map[string]any
		key                 string
		required            bool
		expected            string
		expectedErrContains string
	}{
		{
			name:     "optional missing",
			in:       map[string]any{},
			key:      "foo",
			expected: "",
		},
		{
			name:                "required missing",
			in:                  map[string]any{},
			key:                 "foo",
			required:            true,
			expectedErrContains: "missing required value \"foo\"",
		},
		{
			name:                "required empty",
			in:                  map[string]any{"foo": ""},
			key:                 "foo",
			required:            true,
			expectedErrContains: "value \"foo\" cannot be empty",
		},
		{
			name:                "wrong type",
			in:                  map[string]any{"foo": 42},
			key:                 "foo",
			expectedErrContains: "unexpected type for value \"foo\": want string, got int",
		},
		{
			name:     "present",
			in:       map[string]any{"foo": "bar"},
			key:      "foo",
			required: true,
			expected: "bar",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require := require.New(t)

			actual, err := GetStringValue(tc.in, tc.key, tc.required)
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

func TestGetStringListValue(t *testing.T) {
	cases := []struct {
		name                string
		in                  map[string]any
		key                 string
		expected            []string
		expectedErrContains string
	}{
		{
			name:     "missing",
			in:       map[string]any{},
			key:      "tags",
			expected: nil,
		},
		{
			name:     "null value from yaml",
			in:       map[string]any{"tags": nil},
			key:      "tags",
			expected: nil,
		},
		{
			name:     "scalar normalized",
			in:       map[string]any{"tags": "web"},
			key:      "tags",
			expected: []string{"web"},
		},
		{
			name:     "string slice",
			in:       map[string]any{"tags": []string{"web", "db"}},
			key:      "tags",
			expected: []string{"web", "db"},
		},
		{
			name:     "any slice from yaml",
			in:       map[string]any{"tags": []any{"web", "db"}},
			key:      "tags",
			expected: []string{"web", "db"},
		},
		{
			name:                "non-string element",
			in:                  map[string]any{"tags": []any{"web", 1}},
			key:                 "tags",
			expectedErrContains: "unexpected type for element of \"tags\"",
		},
		{
			name:                "wrong type",
			in:                  map[string]any{"tags": 7},
			key:                 "tags",
			expectedErrContains: "unexpected type for value \"tags\"",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require := require.New(t)

			actual, err := GetStringListValue(tc.in, tc.key)
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

func TestMapFields(t *testing.T) {
	require := require.New(t)

	fields := MapFields(map[string]any{"a": 1, "b": "two"})
	require.Equal(map[string]struct{}{"a": {}, "b": {}}, fields)
}
