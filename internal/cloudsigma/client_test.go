// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package cloudsigma

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// basicAuth is a test transport injecting credentials, standing in for
// the credential package's client without importing it.
type basicAuth struct {
	username, password string
}

func (t *basicAuth) RoundTrip(req *http.Request) (*http.Response, error) {
	req.SetBasicAuth(t.username, t.password)
	return http.DefaultTransport.RoundTrip(req)
}

func testServers(n int) []Server {
	servers := make([]Server, 0, n)
	for i := 0; i < n; i++ {
		servers = append(servers, Server{
			UUID:   string(rune('a'+i)) + "-uuid",
			Name:   "server-" + string(rune('a'+i)),
			Status: StatusRunning,
		})
	}
	return servers
}

func TestNew(t *testing.T) {
	require := require.New(t)

	_, err := New("", http.DefaultClient)
	require.ErrorContains(err, "endpoint is required")

	_, err = New("https://zrh.cloudsigma.com/api/2.0/", nil)
	require.ErrorContains(err, "http client is required")

	c, err := New("https://zrh.cloudsigma.com/api/2.0/", http.DefaultClient)
	require.NoError(err)
	require.Equal("https://zrh.cloudsigma.com/api/2.0", c.endpoint)
}

func TestListServersDetailPagination(t *testing.T) {
	require := require.New(t)

	api := &TestAPI{
		Servers:  testServers(7),
		PageSize: 3,
	}
	ts := NewTestAPIServer(api)
	defer ts.Close()

	client, err := New(ts.URL+"/api/2.0/", ts.Client())
	require.NoError(err)

	servers, err := client.ListServersDetail(context.Background())
	require.NoError(err)
	require.Len(servers, 7)
	require.Equal("server-a", servers[0].Name)
	require.Equal("server-g", servers[6].Name)
	// 7 objects at 3 per page.
	require.EqualValues(3, api.Requests)
}

func TestListTags(t *testing.T) {
	require := require.New(t)

	api := &TestAPI{
		Tags: []Tag{
			{UUID: "uuid-1", Name: "role_web"},
			{UUID: "uuid-2", Name: "role_db"},
		},
	}
	ts := NewTestAPIServer(api)
	defer ts.Close()

	client, err := New(ts.URL+"/api/2.0/", ts.Client())
	require.NoError(err)

	tags, err := client.ListTags(context.Background())
	require.NoError(err)
	require.Len(tags, 2)
	require.Equal("role_web", tags[0].Name)
}

func TestListRetriesServerErrors(t *testing.T) {
	require := require.New(t)

	api := &TestAPI{
		Tags:              []Tag{{UUID: "uuid-1", Name: "role_web"}},
		FailuresRemaining: 2,
	}
	ts := NewTestAPIServer(api)
	defer ts.Close()

	client, err := New(ts.URL+"/api/2.0/", ts.Client(), WithRetry(4, time.Millisecond))
	require.NoError(err)

	tags, err := client.ListTags(context.Background())
	require.NoError(err)
	require.Len(tags, 1)
	require.EqualValues(3, api.Requests)
}

func TestListRetriesExhausted(t *testing.T) {
	require := require.New(t)

	api := &TestAPI{
		FailuresRemaining: 100,
	}
	ts := NewTestAPIServer(api)
	defer ts.Close()

	client, err := New(ts.URL+"/api/2.0/", ts.Client(), WithRetry(3, time.Millisecond))
	require.NoError(err)

	_, err = client.ListTags(context.Background())
	require.Error(err)

	var apiErr *APIError
	require.ErrorAs(err, &apiErr)
	require.Equal(http.StatusServiceUnavailable, apiErr.StatusCode)
	require.EqualValues(3, api.Requests)
}

func TestListDoesNotRetryClientErrors(t *testing.T) {
	require := require.New(t)

	api := &TestAPI{
		Username: "user",
		Password: "secret",
	}
	ts := NewTestAPIServer(api)
	defer ts.Close()

	// No credentials on the client, so every request is a 401.
	client, err := New(ts.URL+"/api/2.0/", ts.Client(), WithRetry(4, time.Millisecond))
	require.NoError(err)

	_, err = client.ListServersDetail(context.Background())
	require.Error(err)

	var apiErr *APIError
	require.ErrorAs(err, &apiErr)
	require.Equal(http.StatusUnauthorized, apiErr.StatusCode)
	require.EqualValues(1, api.Requests)
}

func TestListSendsBasicAuth(t *testing.T) {
	require := require.New(t)

	api := &TestAPI{
		Username: "user@example.com",
		Password: "secret",
		Servers:  testServers(1),
	}
	ts := NewTestAPIServer(api)
	defer ts.Close()

	httpClient := &http.Client{Transport: &basicAuth{username: "user@example.com", password: "secret"}}
	client, err := New(ts.URL+"/api/2.0/", httpClient)
	require.NoError(err)

	servers, err := client.ListServersDetail(context.Background())
	require.NoError(err)
	require.Len(servers, 1)
}

func TestServerPublicIPv4(t *testing.T) {
	cases := []struct {
		name     string
		server   Server
		expected string
	}{
		{
			name:     "no nics",
			server:   Server{},
			expected: "",
		},
		{
			name:     "nic without runtime",
			server:   Server{NICs: []NIC{{}}},
			expected: "",
		},
		{
			name: "runtime without ipv4",
			server: Server{NICs: []NIC{
				{Runtime: &NICRuntime{}},
			}},
			expected: "",
		},
		{
			name: "first nic wins",
			server: Server{NICs: []NIC{
				{Runtime: &NICRuntime{IPv4: &ResourceRef{UUID: "185.12.6.183"}}},
				{Runtime: &NICRuntime{IPv4: &ResourceRef{UUID: "10.0.0.5"}}},
			}},
			expected: "185.12.6.183",
		},
		{
			name: "skips unconfigured nic",
			server: Server{NICs: []NIC{
				{Runtime: nil},
				{Runtime: &NICRuntime{IPv4: &ResourceRef{UUID: "185.12.6.184"}}},
			}},
			expected: "185.12.6.184",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, tc.server.PublicIPv4())
		})
	}
}
