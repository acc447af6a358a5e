// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"context"
	"errors"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/hashicorp/ansible-inventory-cloudsigma/internal/logging"
)

// EnvConfig names the environment variable carrying the source file path
// when --config is not given. Ansible invokes external inventory programs
// without arguments beyond --list/--host, so the path usually arrives via
// the environment.
const EnvConfig = "CLOUDSIGMA_INVENTORY_CONFIG"

type rootFlags struct {
	list         bool
	host         string
	config       string
	refreshCache bool
	logFormat    string
	logLevel     string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	cmd := &cobra.Command{
		Use:     "cloudsigma-inventory",
		Short:   "Ansible dynamic inventory for CloudSigma",
		Long:    "cloudsigma-inventory lists CloudSigma servers as an Ansible dynamic inventory.",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFlags(flags); err != nil {
				return err
			}
			return run(cmd.Context(), cmd.OutOrStdout(), flags)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().BoolVar(&flags.list, "list", false, "Print the full inventory as JSON")
	cmd.Flags().StringVar(&flags.host, "host", "", "Print the variables of a single host as JSON")
	cmd.Flags().StringVar(&flags.config, "config", "", "Path to the *.cloudsigma.{yml,yaml} source file (env "+EnvConfig+")")
	cmd.Flags().BoolVar(&flags.refreshCache, "refresh-cache", false, "Ignore a fresh cache and query the API")
	cmd.Flags().StringVar(&flags.logFormat, "log-format", "text", "Log format (text|json)")
	cmd.Flags().StringVar(&flags.logLevel, "log-level", "warn", "Log level (debug|info|warn|error)")

	cmd.PersistentPreRunE = func(c *cobra.Command, _ []string) error {
		level, err := logging.ParseLevel(flags.logLevel)
		if err != nil {
			return err
		}
		l, err := logging.New(flags.logFormat, level)
		if err != nil {
			return err
		}
		l = l.With("runId", uuid.NewString())
		c.SetContext(logging.WithLogger(c.Context(), l))
		return nil
	}

	return cmd
}

func validateFlags(flags *rootFlags) error {
	if flags.list && flags.host != "" {
		return errors.New("--list and --host are mutually exclusive")
	}
	if !flags.list && flags.host == "" {
		return errors.New("one of --list or --host is required")
	}
	return nil
}

func main() {
	root := newRootCmd()
	root.SetContext(context.Background())
	executed, err := root.ExecuteC()
	if err != nil {
		ctx := root.Context()
		if executed != nil {
			ctx = executed.Context()
		}
		logging.FromContext(ctx).Errorf(ctx, "Failed: %s", err)
		os.Exit(1)
	}
}
