// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package credential

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewPersistedState(t *testing.T) {
	require := require.New(t)

	cfg := &Config{Username: "user", Password: "secret"}
	ts := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	state, err := NewPersistedState(
		WithCredentialsConfig(cfg),
		WithLastVerifiedTime(ts),
	)
	require.NoError(err)
	require.Same(cfg, state.CredentialsConfig)
	require.Equal(ts, state.LastVerifiedTime)
}

func TestPersistedStateVerify(t *testing.T) {
	require := require.New(t)

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	state, err := NewPersistedState(WithCredentialsConfig(&Config{
		Username: "user",
		Password: "secret",
		Endpoint: ts.URL,
	}))
	require.NoError(err)
	require.True(state.LastVerifiedTime.IsZero())

	require.NoError(state.Verify(context.Background()))
	require.False(state.LastVerifiedTime.IsZero())
}

func TestPersistedStateVerifyBadCredentials(t *testing.T) {
	require := require.New(t)

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer ts.Close()

	state, err := NewPersistedState(WithCredentialsConfig(&Config{
		Username: "user",
		Password: "wrong",
		Endpoint: ts.URL,
	}))
	require.NoError(err)

	err = state.Verify(context.Background())
	require.Error(err)
	require.Contains(err.Error(), "credential verification failed")
	require.True(state.LastVerifiedTime.IsZero())
}
