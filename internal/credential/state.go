// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package credential

import (
	"context"
	"time"
)

// PersistedState is the run state for the CloudSigma credential.
type PersistedState struct {
	// CredentialsConfig is the credential configuration for the CloudSigma account.
	CredentialsConfig *Config
	// LastVerifiedTime is the last time the credentials were verified
	// against the API. Zero until Verify succeeds.
	LastVerifiedTime time.Time
}

// NewPersistedState - create a new PersistedState
func NewPersistedState(opt ...Option) (*PersistedState, error) {
	s := new(PersistedState)
	opts, err := getOpts(opt...)
	if err != nil {
		return nil, err
	}
	s.CredentialsConfig = opts.WithCredentialsConfig
	s.LastVerifiedTime = opts.WithLastVerifiedTime
	return s, nil
}

// Verify proves the stored credentials against the API and records the
// verification time on success.
func (s *PersistedState) Verify(ctx context.Context) error {
	if err := s.CredentialsConfig.Verify(ctx); err != nil {
		return err
	}
	s.LastVerifiedTime = time.Now()
	return nil
}
