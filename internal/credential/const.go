// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package credential

const (
	// ConstRegion defines the attribute name for a CloudSigma region code
	ConstRegion = "cloudsigma_region"

	// ConstUsername defines the attribute name for a CloudSigma account username
	ConstUsername = "cloudsigma_username"

	// ConstPassword defines the attribute name for a CloudSigma account password
	ConstPassword = "cloudsigma_password"

	// EnvUsername is the environment variable consulted when the username
	// attribute is absent from the source file.
	EnvUsername = "CLOUDSIGMA_USERNAME"

	// EnvPassword is the environment variable consulted when the password
	// attribute is absent from the source file.
	EnvPassword = "CLOUDSIGMA_PASSWORD"
)
