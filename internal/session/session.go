// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Shapeshyft

// Package session provides configuration and document loading for CLI
// commands.
package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/johnqh/shapeshyft-app-sub000/internal/config"
	"github.com/johnqh/shapeshyft-app-sub000/internal/logging"
)

var (
	// ErrInvalidConfig indicates the config file exists but is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrNotLoaded indicates a command ran without its session.
	ErrNotLoaded = errors.New("session not loaded")

	// ErrNoDocument indicates a command needs a schema file argument.
	ErrNoDocument = errors.New("no schema file given")
)

// Flag names read by PreRunLoad.
const (
	ConfigFlag   = "config"
	LogLevelFlag = "log-level"
)

// contextKey is used to store Context in context.Context.
type contextKey struct{}

// Context holds the resolved configuration, the logger and, for commands
// that work on a file, the loaded schema document.
type Context struct {
	Config *config.Config
	Logger *logrus.Logger

	// Document is nil for commands that do not read a schema file.
	Document *Document
}

// Options select what Load reads.
type Options struct {
	// ConfigPath is an explicit config file. When empty, shapeshyft.yaml in
	// dir is used if present, otherwise the defaults.
	ConfigPath string

	// LogLevel overrides the configured log level when set.
	LogLevel string

	// DocumentPath is the schema file to load, if any.
	DocumentPath string
}

// Load resolves the configuration and document relative to dir and returns
// a new context.Context carrying the session Context.
func Load(ctx context.Context, dir string, opts Options) (context.Context, error) {
	cfg, err := LoadConfig(dir, opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	level := cfg.LogLevel
	if opts.LogLevel != "" {
		level = opts.LogLevel
	}
	logger := logging.New(level)

	sc := &Context{Config: cfg, Logger: logger}
	if opts.DocumentPath != "" {
		path := opts.DocumentPath
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		doc, err := LoadDocument(path)
		if err != nil {
			return nil, err
		}
		logger.WithFields(logrus.Fields{
			"file":   doc.Path,
			"format": doc.Format,
		}).Debug("document loaded")
		sc.Document = doc
	}

	return context.WithValue(ctx, contextKey{}, sc), nil
}

// LoadConfig reads the config at path, or config.FileName in dir when path
// is empty. A missing default file yields config.Default.
func LoadConfig(dir, path string) (*config.Config, error) {
	if path == "" {
		path = filepath.Join(dir, config.FileName)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return config.Default(), nil
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return cfg, nil
}

// From extracts the session Context from a context.Context.
// Returns nil if no Context is stored.
func From(ctx context.Context) *Context {
	if sc, ok := ctx.Value(contextKey{}).(*Context); ok {
		return sc
	}
	return nil
}

// FromCommand extracts the session Context from a cobra.Command's context.
func FromCommand(cmd *cobra.Command) *Context {
	return From(cmd.Context())
}

// RequireFromCommand extracts the session Context from a cobra.Command's
// context, returning an error if not found.
func RequireFromCommand(cmd *cobra.Command) (*Context, error) {
	sc := FromCommand(cmd)
	if sc == nil {
		return nil, ErrNotLoaded
	}
	return sc, nil
}

// RequireDocument is RequireFromCommand for commands that need a loaded
// schema file.
func RequireDocument(cmd *cobra.Command) (*Context, error) {
	sc, err := RequireFromCommand(cmd)
	if err != nil {
		return nil, err
	}
	if sc.Document == nil {
		return nil, ErrNoDocument
	}
	return sc, nil
}

// PreRunLoad is a PreRunE function that loads the session, including the
// schema file named by the first argument, and stores it in the command's
// context.
func PreRunLoad(cmd *cobra.Command, args []string) error {
	opts := optionsFromFlags(cmd)
	if len(args) > 0 {
		opts.DocumentPath = args[0]
	}
	return load(cmd, opts)
}

// PreRunLoadConfig is PreRunLoad for commands that create their file rather
// than read it.
func PreRunLoadConfig(cmd *cobra.Command, _ []string) error {
	return load(cmd, optionsFromFlags(cmd))
}

func load(cmd *cobra.Command, opts Options) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, err = Load(ctx, cwd, opts)
	if err != nil {
		return err
	}
	cmd.SetContext(ctx)
	return nil
}

func optionsFromFlags(cmd *cobra.Command) Options {
	var opts Options
	if f := cmd.Flags().Lookup(ConfigFlag); f != nil {
		opts.ConfigPath = f.Value.String()
	}
	if f := cmd.Flags().Lookup(LogLevelFlag); f != nil {
		opts.LogLevel = f.Value.String()
	}
	return opts
}
