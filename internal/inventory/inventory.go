// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package inventory

import (
	"encoding/json"
	"sort"
)

const (
	// GroupAll is the implicit root group every inventory carries.
	GroupAll = "all"

	// GroupUngrouped collects hosts that joined no derived group.
	GroupUngrouped = "ungrouped"
)

// Group is a named collection of hosts in the rendered inventory.
type Group struct {
	Hosts    []string       `json:"hosts"`
	Children []string       `json:"children"`
	Vars     map[string]any `json:"vars"`
}

// Inventory is an Ansible dynamic inventory document. Hostvars live under
// the _meta key so that Ansible does not invoke the program once per host.
type Inventory struct {
	Groups   map[string]*Group
	Hostvars map[string]map[string]any
}

// New returns an empty inventory with the implicit all and ungrouped
// groups in place.
func New() *Inventory {
	inv := &Inventory{
		Groups:   make(map[string]*Group),
		Hostvars: make(map[string]map[string]any),
	}
	inv.Groups[GroupAll] = &Group{Children: []string{GroupUngrouped}}
	inv.Groups[GroupUngrouped] = &Group{}
	return inv
}

// AddGroup creates the group if absent and registers it as a child of all.
// It returns the group either way.
func (inv *Inventory) AddGroup(name string) *Group {
	if g, ok := inv.Groups[name]; ok {
		return g
	}
	g := &Group{}
	inv.Groups[name] = g
	all := inv.Groups[GroupAll]
	all.Children = appendDistinct(all.Children, name)
	return g
}

// AddHost adds a host to the named group, creating the group if needed. An
// empty group name places the host in ungrouped.
func (inv *Inventory) AddHost(name, group string) {
	if group == "" {
		group = GroupUngrouped
	}
	g := inv.AddGroup(group)
	g.Hosts = appendDistinct(g.Hosts, name)
	if _, ok := inv.Hostvars[name]; !ok {
		inv.Hostvars[name] = make(map[string]any)
	}
}

// SetVariable sets a host variable, registering the host if needed.
func (inv *Inventory) SetVariable(host, key string, value any) {
	vars, ok := inv.Hostvars[host]
	if !ok {
		vars = make(map[string]any)
		inv.Hostvars[host] = vars
	}
	vars[key] = value
}

// HostVars returns the variables for a single host. Unknown hosts yield an
// empty map, matching what Ansible expects from --host.
func (inv *Inventory) HostVars(name string) map[string]any {
	if vars, ok := inv.Hostvars[name]; ok {
		return vars
	}
	return map[string]any{}
}

// Hosts returns all registered host names, sorted.
func (inv *Inventory) Hosts() []string {
	names := make([]string, 0, len(inv.Hostvars))
	for n := range inv.Hostvars {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// meta is the _meta section of the rendered document.
type meta struct {
	Hostvars map[string]map[string]any `json:"hostvars"`
}

// MarshalJSON renders the document with one key per group plus _meta.
// Hosts and children are sorted so consecutive runs produce identical
// bytes, which keeps file caches and diffs quiet.
func (inv *Inventory) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(inv.Groups)+1)
	m["_meta"] = meta{Hostvars: inv.Hostvars}
	for name, group := range inv.Groups {
		out := Group{
			Hosts:    sortedCopy(group.Hosts),
			Children: sortedCopy(group.Children),
			Vars:     group.Vars,
		}
		if out.Hosts == nil {
			out.Hosts = []string{}
		}
		if out.Children == nil {
			out.Children = []string{}
		}
		if out.Vars == nil {
			out.Vars = map[string]any{}
		}
		m[name] = out
	}
	return json.Marshal(m)
}

// UnmarshalJSON restores a document produced by MarshalJSON. Used when
// reading the file cache back.
func (inv *Inventory) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	inv.Groups = make(map[string]*Group)
	inv.Hostvars = make(map[string]map[string]any)

	for key, val := range raw {
		if key == "_meta" {
			var m meta
			if err := json.Unmarshal(val, &m); err != nil {
				return err
			}
			if m.Hostvars != nil {
				inv.Hostvars = m.Hostvars
			}
			continue
		}
		var g Group
		if err := json.Unmarshal(val, &g); err != nil {
			return err
		}
		inv.Groups[key] = &g
	}
	return nil
}

func sortedCopy(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	sort.Strings(out)
	return out
}

// appendDistinct will append the elements to the slice if an element is
// not empty and does not exist in the slice.
func appendDistinct(slice []string, elems ...string) []string {
	for _, e := range elems {
		if e == "" || stringInSlice(slice, e) {
			continue
		}
		slice = append(slice, e)
	}
	return slice
}

func stringInSlice(s []string, x string) bool {
	for _, y := range s {
		if x == y {
			return true
		}
	}
	return false
}
