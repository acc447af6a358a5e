// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package credential

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/ansible-inventory-cloudsigma/internal/errors"
	"github.com/hashicorp/ansible-inventory-cloudsigma/internal/values"
)

// CredentialAttributes contain attributes used for authenticating to
// CloudSigma and selecting the regional API endpoint.
type CredentialAttributes struct {
	// Region is the CloudSigma region code, lowercased.
	Region string

	// Username is the CloudSigma account username.
	Username string

	// Password is the CloudSigma account password.
	Password string
}

// GetCredentialAttributes resolves the credential attributes from the raw
// source file attributes. The username and password fall back to the
// CLOUDSIGMA_USERNAME and CLOUDSIGMA_PASSWORD environment variables when
// the source file does not set them; a value in the source file always
// wins over the environment.
func GetCredentialAttributes(in map[string]any) (*CredentialAttributes, error) {
	badFields := make(map[string]string)

	region, err := values.GetStringValue(in, ConstRegion, true)
	if err != nil {
		badFields[fmt.Sprintf("attributes.%s", ConstRegion)] = err.Error()
	}

	username, err := values.GetStringValue(in, ConstUsername, false)
	if err != nil {
		badFields[fmt.Sprintf("attributes.%s", ConstUsername)] = err.Error()
	} else {
		if username == "" {
			username = os.Getenv(EnvUsername)
		}
		if username == "" {
			badFields[fmt.Sprintf("attributes.%s", ConstUsername)] = fmt.Sprintf("must be set, or %s must be set in the environment", EnvUsername)
		}
	}

	password, err := values.GetStringValue(in, ConstPassword, false)
	if err != nil {
		badFields[fmt.Sprintf("attributes.%s", ConstPassword)] = err.Error()
	} else {
		if password == "" {
			password = os.Getenv(EnvPassword)
		}
		if password == "" {
			badFields[fmt.Sprintf("attributes.%s", ConstPassword)] = fmt.Sprintf("must be set, or %s must be set in the environment", EnvPassword)
		}
	}

	if len(badFields) > 0 {
		return nil, errors.InvalidArgumentError("Error in the attributes provided", badFields)
	}

	return &CredentialAttributes{
		Region:   strings.ToLower(region),
		Username: username,
		Password: password,
	}, nil
}
