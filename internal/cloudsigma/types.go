// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package cloudsigma

// ResourceRef is a reference to another API object by UUID.
type ResourceRef struct {
	UUID string `json:"uuid"`
}

// Tag is a CloudSigma tag object.
type Tag struct {
	UUID string `json:"uuid"`
	Name string `json:"name"`
}

// NICRuntime holds the runtime network state of a NIC. The ip_v4
// reference's UUID is the dotted-quad address itself.
type NICRuntime struct {
	IPv4 *ResourceRef `json:"ip_v4"`
	IPv6 *ResourceRef `json:"ip_v6"`
}

// NIC is a network interface attached to a server.
type NIC struct {
	Runtime *NICRuntime `json:"runtime"`
}

// Server is a CloudSigma server in detail representation.
type Server struct {
	UUID   string         `json:"uuid"`
	Name   string         `json:"name"`
	Status string         `json:"status"`
	Tags   []ResourceRef  `json:"tags"`
	NICs   []NIC          `json:"nics"`
	Meta   map[string]any `json:"meta"`
}

// StatusRunning is the server status reported for powered-on servers.
const StatusRunning = "running"

// PublicIPv4 returns the runtime IPv4 address of the first NIC, or the
// empty string when the server has no configured address.
func (s *Server) PublicIPv4() string {
	for _, nic := range s.NICs {
		if nic.Runtime == nil || nic.Runtime.IPv4 == nil {
			continue
		}
		return nic.Runtime.IPv4.UUID
	}
	return ""
}

// listMeta is the pagination envelope common to all list responses.
type listMeta struct {
	Limit      int `json:"limit"`
	Offset     int `json:"offset"`
	TotalCount int `json:"total_count"`
}

type serverList struct {
	Meta    listMeta `json:"meta"`
	Objects []Server `json:"objects"`
}

type tagList struct {
	Meta    listMeta `json:"meta"`
	Objects []Tag    `json:"objects"`
}
