// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Shapeshyft

package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/johnqh/shapeshyft-app-sub000/internal/editor"
	"github.com/johnqh/shapeshyft-app-sub000/internal/prompts"
	"github.com/johnqh/shapeshyft-app-sub000/internal/session"
)

type schemaShowOptions struct {
	depth int
	raw   bool
}

func newSchemaShowCmd() *cobra.Command {
	opts := &schemaShowOptions{}

	cmd := &cobra.Command{
		Use:   "show FILE",
		Short: "Print the schema as a tree",
		Long: `Print the properties of FILE as a tree with types, required markers and
descriptions. Documents that are not object schemas are reported as raw-only.`,
		Example: `  shapeshyft schema show user.json
  shapeshyft schema show user.json --depth 5
  shapeshyft schema show user.json --raw`,
		Args:    cobra.ExactArgs(1),
		PreRunE: session.PreRunLoad,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := session.RequireDocument(cmd)
			if err != nil {
				return err
			}
			return runSchemaShow(cmd.OutOrStdout(), ctx, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.depth, "depth", "d", -1, "Levels to expand (default from config)")
	cmd.Flags().BoolVar(&opts.raw, "raw", false, "Print the document text")

	return cmd
}

func runSchemaShow(w io.Writer, ctx *session.Context, opts *schemaShowOptions) error {
	if opts.raw {
		_, err := fmt.Fprintln(w, ctx.Document.Text)
		return err
	}

	depth := opts.depth
	if depth < 0 {
		depth = ctx.Config.Editor.ExpandDepth
	}
	renderDocument(w, ctx.Document.Text, depth)
	return nil
}

// renderDocument prints the tree of text, or why it has none.
func renderDocument(w io.Writer, text string, depth int) {
	ctrl := editor.New(text)
	root, err := ctrl.Root()
	if err != nil {
		prompts.PrintWarning(w, fmt.Sprintf("raw text only: %v", ctrl.ParseError()))
		return
	}
	rows := editor.Rows(root, editor.NewExpansion(depth))
	if len(rows) == 1 {
		_, _ = fmt.Fprintln(w, "No properties defined.")
		return
	}
	prompts.RenderTree(w, rows)
}
