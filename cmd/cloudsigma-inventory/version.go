// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package main

// version is overridden at build time via -ldflags "-X main.version=...".
var version = "dev"
