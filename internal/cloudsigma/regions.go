// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package cloudsigma

import (
	"fmt"
	"sort"
	"strings"
)

// Region describes a CloudSigma region and its API 2.0 endpoint.
type Region struct {
	Location string
	Endpoint string
}

// regions maps region codes to their API endpoints. Some regions are
// operated by CloudSigma partners and live on partner domains.
var regions = map[string]Region{
	"crk":  {Location: "Clark, Philippines", Endpoint: "https://crk.cloudsigma.com/api/2.0/"},
	"dub":  {Location: "Dublin, Ireland", Endpoint: "https://ec.servecentric.com/api/2.0/"},
	"fra":  {Location: "Frankfurt, Germany", Endpoint: "https://fra.cloudsigma.com/api/2.0/"},
	"gva":  {Location: "Geneva, Switzerland", Endpoint: "https://gva.cloudsigma.com/api/2.0/"},
	"hnl":  {Location: "Honolulu, United States", Endpoint: "https://hnl.cloudsigma.com/api/2.0/"},
	"lla":  {Location: "Boden, Sweden", Endpoint: "https://cloud.hydro66.com/api/2.0/"},
	"mel":  {Location: "Melbourne, Australia", Endpoint: "https://mel.cloudsigma.com/api/2.0/"},
	"mnl":  {Location: "Manila, Philippines", Endpoint: "https://mnl.cloudsigma.com/api/2.0/"},
	"mnl2": {Location: "Manila-2, Philippines", Endpoint: "https://mnl2.cloudsigma.com/api/2.0/"},
	"per":  {Location: "Perth, Australia", Endpoint: "https://per.cloudsigma.com/api/2.0/"},
	"ruh":  {Location: "Riyadh, Saudi Arabia", Endpoint: "https://ruh.cloudsigma.com/api/2.0/"},
	"sjc":  {Location: "San Jose, United States", Endpoint: "https://sjc.cloudsigma.com/api/2.0/"},
	"tyo":  {Location: "Tokyo, Japan", Endpoint: "https://tyo.cloudsigma.com/api/2.0/"},
	"wdc":  {Location: "Washington DC, United States", Endpoint: "https://wdc.cloudsigma.com/api/2.0/"},
	"zrh":  {Location: "Zurich, Switzerland", Endpoint: "https://zrh.cloudsigma.com/api/2.0/"},
}

// RegionCodes returns the known region codes in sorted order.
func RegionCodes() []string {
	codes := make([]string, 0, len(regions))
	for c := range regions {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	return codes
}

// EndpointForRegion returns the API endpoint for a region code. The lookup
// is case-insensitive.
func EndpointForRegion(code string) (string, error) {
	r, ok := regions[strings.ToLower(code)]
	if !ok {
		return "", fmt.Errorf("invalid region %q, must be one of: %s", code, strings.Join(RegionCodes(), ", "))
	}
	return r.Endpoint, nil
}
