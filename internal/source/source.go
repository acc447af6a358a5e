// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

// Package source loads the YAML source file describing a CloudSigma
// inventory. A source file must end in cloudsigma.yml or cloudsigma.yaml
// and carry the plugin token naming this inventory source, mirroring how
// Ansible inventory plugins claim their configuration files.
package source

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// PluginToken is the required value of the source file's plugin key.
const PluginToken = "cloudsigma_inventory"

// pluginKey is the source file key carrying the token.
const pluginKey = "plugin"

var validSuffixes = []string{"cloudsigma.yml", "cloudsigma.yaml"}

// VerifyPath reports whether the path looks like a source file for this
// inventory.
func VerifyPath(path string) bool {
	for _, suffix := range validSuffixes {
		if strings.HasSuffix(path, suffix) {
			return true
		}
	}
	return false
}

// Load reads a source file and returns its raw attribute map. It performs
// no attribute validation beyond the plugin token; attribute decoding is
// handled by the credential and inventory packages.
func Load(path string) (map[string]any, error) {
	if !VerifyPath(path) {
		return nil, fmt.Errorf("source file %s must end in %s", path, strings.Join(validSuffixes, " or "))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	var attrs map[string]any
	if err := yaml.Unmarshal(data, &attrs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal YAML: %w", err)
	}
	if attrs == nil {
		return nil, fmt.Errorf("source file %s is empty", path)
	}

	token, ok := attrs[pluginKey].(string)
	if !ok || token != PluginToken {
		return nil, fmt.Errorf("source file %s is not for this inventory: plugin must be %q", path, PluginToken)
	}

	return attrs, nil
}
