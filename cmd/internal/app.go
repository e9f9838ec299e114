// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Shapeshyft

// Package internal contains the main application logic for the CLI.
package internal

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/johnqh/shapeshyft-app-sub000/internal/commands"
	"github.com/johnqh/shapeshyft-app-sub000/internal/session"
)

// EnvLogLevel sets the log level when --log-level is not given.
const EnvLogLevel = "SHAPESHYFT_LOG_LEVEL"

// Run is the main application logic, extracted for testability.
// It accepts OS dependencies as parameters (context, env lookup).
func Run(ctx context.Context, getenv func(string) string) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := commands.NewRootCmd()
	if level := getenv(EnvLogLevel); level != "" {
		if err := rootCmd.PersistentFlags().Set(session.LogLevelFlag, level); err != nil {
			return err
		}
	}
	return rootCmd.ExecuteContext(ctx)
}
