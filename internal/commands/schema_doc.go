// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Shapeshyft

package commands

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/johnqh/shapeshyft-app-sub000/internal/markdown"
	"github.com/johnqh/shapeshyft-app-sub000/internal/prompts"
	"github.com/johnqh/shapeshyft-app-sub000/internal/session"
)

type schemaDocOptions struct {
	output string
	title  string
}

func newSchemaDocCmd() *cobra.Command {
	opts := &schemaDocOptions{}

	cmd := &cobra.Command{
		Use:   "doc FILE",
		Short: "Generate a markdown reference for a schema",
		Long: `Render FILE as markdown: one table per object listing each field with its
type, whether it is required, and its description.`,
		Example: `  # Print to stdout
  shapeshyft schema doc user.json

  # Write to a file with a custom title
  shapeshyft schema doc user.json -o docs/user.md --title "User account"`,
		Args:    cobra.ExactArgs(1),
		PreRunE: session.PreRunLoad,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := session.RequireDocument(cmd)
			if err != nil {
				return err
			}
			return runSchemaDoc(cmd, ctx, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write to this file instead of stdout")
	cmd.Flags().StringVar(&opts.title, "title", "", "Page title (default: file name)")

	return cmd
}

func runSchemaDoc(cmd *cobra.Command, ctx *session.Context, opts *schemaDocOptions) error {
	ctrl, err := visualController(ctx)
	if err != nil {
		return err
	}
	root, err := ctrl.Root()
	if err != nil {
		return err
	}

	title := opts.title
	if title == "" {
		base := filepath.Base(ctx.Document.Path)
		title = strings.TrimSuffix(base, filepath.Ext(base))
	}

	var buf bytes.Buffer
	if err := markdown.Render(&buf, title, root); err != nil {
		return err
	}

	if opts.output == "" {
		_, err := cmd.OutOrStdout().Write(buf.Bytes())
		return err
	}
	if err := os.WriteFile(opts.output, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", opts.output, err)
	}
	prompts.PrintResult(cmd.OutOrStdout(), []prompts.ResultField{
		{Label: "Output", Value: opts.output},
	}, "Documentation generated")
	return nil
}
