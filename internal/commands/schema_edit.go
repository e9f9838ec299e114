// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Shapeshyft

package commands

import (
	"github.com/spf13/cobra"

	"github.com/johnqh/shapeshyft-app-sub000/internal/editor"
	"github.com/johnqh/shapeshyft-app-sub000/internal/prompts"
	"github.com/johnqh/shapeshyft-app-sub000/internal/session"
)

func newSchemaEditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit FILE",
		Short: "Edit a schema interactively",
		Long: `Open FILE in the interactive editor. Object schemas open in the visual
tree editor; anything else opens as raw text. Switch between the two at any
time; switching never rewrites the text. Changes are written on save.`,
		Example: `  shapeshyft schema edit user.json`,
		Args:    cobra.ExactArgs(1),
		PreRunE: session.PreRunLoad,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := session.RequireDocument(cmd)
			if err != nil {
				return err
			}
			return runSchemaEdit(cmd, ctx)
		},
	}
}

func runSchemaEdit(cmd *cobra.Command, ctx *session.Context) error {
	ctrl := editor.New(ctx.Document.Text)
	ctx.Logger.WithField("mode", ctrl.Mode()).Debug("editor opened")

	saved, err := prompts.RunEditor(ctrl, prompts.EditorOptions{
		ExpandDepth: ctx.Config.Editor.ExpandDepth,
		Save:        ctx.Document.Save,
		Logger:      ctx.Logger,
	})
	if prompts.IsAborted(err) {
		prompts.PrintWarning(cmd.OutOrStdout(), "Aborted")
		return nil
	}
	if err != nil {
		return err
	}

	msg := "No changes saved"
	if saved {
		msg = "Schema saved"
	}
	prompts.PrintResult(cmd.OutOrStdout(), []prompts.ResultField{
		{Label: "File", Value: ctx.Document.Path},
	}, msg)
	return nil
}
