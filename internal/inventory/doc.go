// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package inventory

// Package inventory builds Ansible dynamic inventory documents from
// CloudSigma servers and tags.
//
// A group is a named collection of hosts. Groups are derived from
// CloudSigma tags that start with the configured group_tag_prefix; the
// prefix is stripped from the resulting group name. A host labelled with
// multiple prefix tags joins multiple groups. Hosts with no prefix tag
// land in the "ungrouped" group. Every group is a child of "all".
//
// Host filtering happens before grouping:
//
//   - when include_running_only is set (the default), only servers whose
//     status is "running" contribute hosts;
//   - when include_tags is set, a server must carry at least one of the
//     listed tags;
//   - when exclude_tags is set, a server carrying any listed tag is
//     dropped.
//
// include_tags and exclude_tags accept a scalar string for CLI UX reasons
// and normalize it to a single-element list.
//
// The rendered JSON is the external inventory document Ansible consumes:
// one key per group plus "_meta" carrying hostvars, so Ansible never calls
// back per host.
