// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Shapeshyft

package commands

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/johnqh/shapeshyft-app-sub000/internal/editor"
	"github.com/johnqh/shapeshyft-app-sub000/internal/prompts"
	"github.com/johnqh/shapeshyft-app-sub000/internal/schema"
	"github.com/johnqh/shapeshyft-app-sub000/internal/session"
)

func newSchemaCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE",
		Short: "Validate a schema",
		Long: `Check that FILE is an object schema the visual editor can open and that it
resolves as a JSON Schema (valid keywords, patterns and references).`,
		Example: `  shapeshyft schema check user.json`,
		Args:    cobra.ExactArgs(1),
		PreRunE: session.PreRunLoad,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := session.RequireDocument(cmd)
			if err != nil {
				return err
			}
			return runSchemaCheck(cmd, ctx)
		},
	}
}

func runSchemaCheck(cmd *cobra.Command, ctx *session.Context) error {
	doc := ctx.Document
	if err := schema.Check(doc.Text); err != nil {
		prompts.PrintWarning(cmd.OutOrStdout(), doc.Path)
		return err
	}

	ctrl := editor.New(doc.Text)
	tree, err := ctrl.Tree()
	if err != nil {
		return err
	}
	root, err := ctrl.Root()
	if err != nil {
		return err
	}

	count := 0
	for _, r := range editor.Rows(root, editor.NewExpansion(maxDepth)) {
		if r.Kind == editor.RowField {
			count++
		}
	}

	prompts.PrintResult(cmd.OutOrStdout(), []prompts.ResultField{
		{Label: "File", Value: doc.Path},
		{Label: "Properties", Value: strconv.Itoa(tree.Properties().Len())},
		{Label: "Fields (nested)", Value: strconv.Itoa(count)},
		{Label: "Visual editing", Value: "available"},
	}, "Schema is valid")
	return nil
}

// maxDepth expands every level of a tree.
const maxDepth = int(^uint(0) >> 1)
