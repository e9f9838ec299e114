// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Shapeshyft

package commands

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/johnqh/shapeshyft-app-sub000/internal/editor"
	"github.com/johnqh/shapeshyft-app-sub000/internal/prompts"
	"github.com/johnqh/shapeshyft-app-sub000/internal/schema"
	"github.com/johnqh/shapeshyft-app-sub000/internal/session"
)

// visualController opens the loaded document for visual edits. Documents
// that do not parse are refused and left untouched.
func visualController(ctx *session.Context) (*editor.Controller, error) {
	ctrl := editor.New(ctx.Document.Text)
	if !ctrl.VisualAvailable() {
		return nil, fmt.Errorf("%w: %v", editor.ErrVisualUnavailable, ctrl.ParseError())
	}
	return ctrl, nil
}

// applyEdits runs edits against the loaded document and saves the result.
func applyEdits(cmd *cobra.Command, ctx *session.Context, summary string, edits ...editor.Edit) error {
	ctrl, err := visualController(ctx)
	if err != nil {
		return err
	}
	before := ctrl.Text()
	for _, e := range edits {
		if err := ctrl.Apply(e); err != nil {
			return err
		}
		ctx.Logger.WithField("edit", fmt.Sprintf("%T", e)).Debug("edit applied")
	}

	if ctrl.Text() == before {
		prompts.PrintResult(cmd.OutOrStdout(), []prompts.ResultField{
			{Label: "File", Value: ctx.Document.Path},
		}, "No changes")
		return nil
	}
	if err := ctx.Document.Save(ctrl.Text()); err != nil {
		return err
	}
	ctx.Logger.WithFields(logrus.Fields{"file": ctx.Document.Path}).Info("schema updated")

	prompts.PrintResult(cmd.OutOrStdout(), []prompts.ResultField{
		{Label: "File", Value: ctx.Document.Path},
	}, summary)
	return nil
}

func parseTypeArg(s string) (schema.DisplayType, error) {
	dt, ok := schema.ParseDisplayType(s)
	if !ok {
		return "", fmt.Errorf("%w: %q", editor.ErrUnknownType, s)
	}
	return dt, nil
}

func typeNames() string {
	var names string
	for i, dt := range schema.DisplayTypes() {
		if i > 0 {
			names += ", "
		}
		names += string(dt)
	}
	return names
}
