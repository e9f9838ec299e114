// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Shapeshyft

// Package commands contains all CLI command definitions.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/johnqh/shapeshyft-app-sub000/internal/session"
)

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "shapeshyft",
		Short:         "Edit JSON Schema documents visually or as raw text",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String(session.ConfigFlag, "", "Path to a shapeshyft.yaml config file")
	rootCmd.PersistentFlags().String(session.LogLevelFlag, "", "Log level (debug, info, warn, error)")

	registerSchemaCmd(rootCmd)
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func registerSchemaCmd(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Create, inspect and edit object schemas",
	}

	cmd.AddCommand(
		newSchemaInitCmd(),
		newSchemaEditCmd(),
		newSchemaShowCmd(),
		newSchemaAddCmd(),
		newSchemaRemoveCmd(),
		newSchemaRenameCmd(),
		newSchemaRequireCmd(),
		newSchemaSetTypeCmd(),
		newSchemaDescribeCmd(),
		newSchemaFmtCmd(),
		newSchemaCheckCmd(),
		newSchemaWatchCmd(),
		newSchemaDocCmd(),
	)

	parent.AddCommand(cmd)
}
