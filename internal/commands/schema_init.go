// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Shapeshyft

package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/johnqh/shapeshyft-app-sub000/internal/prompts"
	"github.com/johnqh/shapeshyft-app-sub000/internal/schema"
	"github.com/johnqh/shapeshyft-app-sub000/internal/session"
)

type schemaInitOptions struct {
	yaml  bool
	force bool
}

func newSchemaInitCmd() *cobra.Command {
	opts := &schemaInitOptions{}

	cmd := &cobra.Command{
		Use:   "init FILE",
		Short: "Create an empty object schema",
		Long: `Create FILE containing an object schema with no properties.
The format follows the file extension (.json, .yaml, .yml); other names use
--yaml or the editor.format config setting.`,
		Example: `  shapeshyft schema init user.json
  shapeshyft schema init user --yaml`,
		Args:    cobra.ExactArgs(1),
		PreRunE: session.PreRunLoadConfig,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			return runSchemaInit(cmd, ctx, args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.yaml, "yaml", false, "Write YAML when the file name has no known extension")
	cmd.Flags().BoolVarP(&opts.force, "force", "f", false, "Overwrite an existing file")

	return cmd
}

func runSchemaInit(cmd *cobra.Command, ctx *session.Context, path string, opts *schemaInitOptions) error {
	if _, err := os.Stat(path); err == nil && !opts.force {
		return fmt.Errorf("%s already exists; use --force to overwrite", path)
	}

	fallback := session.Format(ctx.Config.Editor.Format)
	if opts.yaml {
		fallback = session.FormatYAML
	}
	if fallback == "" {
		fallback = session.FormatJSON
	}

	doc := session.NewDocument(path, fallback)
	if err := doc.Save(schema.DefaultText); err != nil {
		return err
	}
	ctx.Logger.WithField("file", path).Debug("schema created")

	prompts.PrintResult(cmd.OutOrStdout(), []prompts.ResultField{
		{Label: "File", Value: path},
		{Label: "Format", Value: string(doc.Format)},
	}, "Schema created")
	return nil
}
