// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Shapeshyft

package commands

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/johnqh/shapeshyft-app-sub000/internal/session"
)

func newSchemaWatchCmd() *cobra.Command {
	opts := &schemaShowOptions{}

	cmd := &cobra.Command{
		Use:   "watch FILE",
		Short: "Print the schema tree whenever the file changes",
		Long: `Print the tree of FILE, then print it again every time the file is written.
Stop with ctrl+c.`,
		Example: `  shapeshyft schema watch user.json`,
		Args:    cobra.ExactArgs(1),
		PreRunE: session.PreRunLoad,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := session.RequireDocument(cmd)
			if err != nil {
				return err
			}
			return runSchemaWatch(cmd.Context(), cmd.OutOrStdout(), ctx, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.depth, "depth", "d", -1, "Levels to expand (default from config)")

	return cmd
}

func runSchemaWatch(ctx context.Context, w io.Writer, sc *session.Context, opts *schemaShowOptions) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close() //nolint:errcheck

	// Watch the directory: editors often replace the file rather than write it.
	path := filepath.Clean(sc.Document.Path)
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}

	render := func() { renderWatched(w, sc, path, opts) }
	render()
	return watchLoop(ctx, watcher.Events, watcher.Errors, path, sc.Logger, render)
}

// renderWatched reloads path and prints its tree. Failures are logged so the
// watch keeps running.
func renderWatched(w io.Writer, sc *session.Context, path string, opts *schemaShowOptions) {
	doc, err := session.LoadDocument(path)
	if err != nil {
		sc.Logger.WithError(err).Warn("reload failed")
		return
	}
	sc.Document = doc
	if _, err := fmt.Fprintf(w, "\n%s\n", path); err != nil {
		sc.Logger.WithError(err).Warn("render failed")
		return
	}
	if err := runSchemaShow(w, sc, opts); err != nil {
		sc.Logger.WithError(err).Warn("render failed")
	}
}

// watchLoop calls onChange for every write or create of path until ctx is
// done or the event channel closes.
func watchLoop(ctx context.Context, events <-chan fsnotify.Event, errs <-chan error, path string, logger *logrus.Logger, onChange func()) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			logger.WithField("op", event.Op.String()).Debug("schema file changed")
			onChange()
		case err, ok := <-errs:
			if !ok {
				return nil
			}
			logger.WithError(err).Warn("watcher error")
		}
	}
}
