// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package values

import (
	"fmt"
)

// MapFields returns the set of keys present in the attribute map.
func MapFields(in map[string]any) map[string]struct{} {
	fields := make(map[string]struct{}, len(in))
	for k := range in {
		fields[k] = struct{}{}
	}
	return fields
}

// GetStringValue fetches a string value from the attribute map. If required
// is true, a missing or empty value is an error.
func GetStringValue(in map[string]any, k string, required bool) (string, error) {
	v, ok := in[k]
	if !ok {
		if required {
			return "", fmt.Errorf("missing required value %q", k)
		}
		return "", nil
	}

	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("unexpected type for value %q: want string, got %T", k, v)
	}
	if s == "" && required {
		return "", fmt.Errorf("value %q cannot be empty", k)
	}

	return s, nil
}

// GetStringListValue fetches a list of strings from the attribute map. A
// scalar string is accepted and normalized to a single-element list.
func GetStringListValue(in map[string]any, k string) ([]string, error) {
	v, ok := in[k]
	if !ok {
		return nil, nil
	}

	switch list := v.(type) {
	case nil:
		// A key present with a null value reads the same as an absent key.
		return nil, nil
	case string:
		return []string{list}, nil
	case []string:
		return list, nil
	case []any:
		out := make([]string, 0, len(list))
		for _, e := range list {
			s, ok := e.(string)
			if !ok {
				return nil, fmt.Errorf("unexpected type for element of %q: want string, got %T", k, e)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unexpected type for value %q: want list of strings, got %T", k, v)
	}
}
