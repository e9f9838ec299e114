// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Shapeshyft

package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/johnqh/shapeshyft-app-sub000/internal/editor"
	"github.com/johnqh/shapeshyft-app-sub000/internal/prompts"
	"github.com/johnqh/shapeshyft-app-sub000/internal/schema"
	"github.com/johnqh/shapeshyft-app-sub000/internal/session"
)

// errNotFormatted is returned by "schema fmt --check" for files that would
// change.
var errNotFormatted = errors.New("schema is not in canonical form")

type schemaFmtOptions struct {
	check bool
}

func newSchemaFmtCmd() *cobra.Command {
	opts := &schemaFmtOptions{}

	cmd := &cobra.Command{
		Use:   "fmt FILE",
		Short: "Rewrite a schema in canonical form",
		Long: `Rewrite FILE the way the visual editor writes it: two-space indentation and
keywords in a fixed order. Files that are not object schemas are left
untouched and reported as an error.`,
		Example: `  shapeshyft schema fmt user.json
  shapeshyft schema fmt user.json --check`,
		Args:    cobra.ExactArgs(1),
		PreRunE: session.PreRunLoad,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := session.RequireDocument(cmd)
			if err != nil {
				return err
			}
			return runSchemaFmt(cmd, ctx, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.check, "check", false, "Only report whether the file would change")

	return cmd
}

func runSchemaFmt(cmd *cobra.Command, ctx *session.Context, opts *schemaFmtOptions) error {
	doc := ctx.Document
	tree, err := schema.Parse(doc.Text)
	if err != nil {
		return fmt.Errorf("%w: %v", editor.ErrVisualUnavailable, err)
	}

	canonical := schema.Serialize(tree)
	if canonical == doc.Text {
		prompts.PrintResult(cmd.OutOrStdout(), []prompts.ResultField{
			{Label: "File", Value: doc.Path},
		}, "Already formatted")
		return nil
	}
	if opts.check {
		return fmt.Errorf("%w: %s", errNotFormatted, doc.Path)
	}

	if err := doc.Save(canonical); err != nil {
		return err
	}
	ctx.Logger.WithField("file", doc.Path).Debug("schema formatted")
	prompts.PrintResult(cmd.OutOrStdout(), []prompts.ResultField{
		{Label: "File", Value: doc.Path},
	}, "Formatted")
	return nil
}
