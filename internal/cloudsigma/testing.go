// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package cloudsigma

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
)

// TestAPI is an in-memory stand-in for the CloudSigma API 2.0 used across
// package tests. It serves the profile, servers/detail and tags endpoints
// with real pagination so client behavior is exercised end to end.
type TestAPI struct {
	Username string
	Password string
	Servers  []Server
	Tags     []Tag

	// PageSize caps the page size the fake API will return regardless of
	// the requested limit, to force pagination in tests. Zero means honor
	// the requested limit.
	PageSize int

	// FailuresRemaining, while positive, makes every request return a 503
	// and decrements. Used to exercise retry.
	FailuresRemaining int32

	// Requests counts every request served.
	Requests int32
}

// NewTestAPIServer starts an httptest server for the fake API. Callers own
// the returned server and must Close it.
func NewTestAPIServer(api *TestAPI) *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/2.0/profile/", func(w http.ResponseWriter, r *http.Request) {
		if !api.authorize(w, r) {
			return
		}
		writeJSON(w, map[string]any{"email": "test@example.com"})
	})
	mux.HandleFunc("/api/2.0/servers/detail/", func(w http.ResponseWriter, r *http.Request) {
		if !api.authorize(w, r) {
			return
		}
		limit, offset := listWindow(r)
		limit = api.clampLimit(limit)
		objects := pageOf(api.Servers, limit, offset)
		writeJSON(w, map[string]any{
			"meta":    listMeta{Limit: limit, Offset: offset, TotalCount: len(api.Servers)},
			"objects": objects,
		})
	})
	mux.HandleFunc("/api/2.0/tags/", func(w http.ResponseWriter, r *http.Request) {
		if !api.authorize(w, r) {
			return
		}
		limit, offset := listWindow(r)
		limit = api.clampLimit(limit)
		objects := pageOf(api.Tags, limit, offset)
		writeJSON(w, map[string]any{
			"meta":    listMeta{Limit: limit, Offset: offset, TotalCount: len(api.Tags)},
			"objects": objects,
		})
	})
	return httptest.NewServer(mux)
}

func (a *TestAPI) authorize(w http.ResponseWriter, r *http.Request) bool {
	atomic.AddInt32(&a.Requests, 1)
	if atomic.LoadInt32(&a.FailuresRemaining) > 0 {
		atomic.AddInt32(&a.FailuresRemaining, -1)
		http.Error(w, `{"error": "temporarily unavailable"}`, http.StatusServiceUnavailable)
		return false
	}
	if a.Username == "" {
		return true
	}
	user, pass, ok := r.BasicAuth()
	if !ok || user != a.Username || pass != a.Password {
		http.Error(w, `{"error": "authorization required"}`, http.StatusUnauthorized)
		return false
	}
	return true
}

func (a *TestAPI) clampLimit(limit int) int {
	if a.PageSize > 0 && (limit <= 0 || limit > a.PageSize) {
		return a.PageSize
	}
	if limit <= 0 {
		return 20
	}
	return limit
}

func listWindow(r *http.Request) (limit, offset int) {
	limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ = strconv.Atoi(r.URL.Query().Get("offset"))
	return limit, offset
}

func pageOf[T any](all []T, limit, offset int) []T {
	if offset >= len(all) {
		return []T{}
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end]
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
