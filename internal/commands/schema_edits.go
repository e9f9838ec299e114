// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Shapeshyft

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/johnqh/shapeshyft-app-sub000/internal/editor"
	"github.com/johnqh/shapeshyft-app-sub000/internal/schema"
	"github.com/johnqh/shapeshyft-app-sub000/internal/session"
)

type schemaAddOptions struct {
	at   string // object path to add under
	name string // optional name to rename the new property to
}

func newSchemaAddCmd() *cobra.Command {
	opts := &schemaAddOptions{}

	cmd := &cobra.Command{
		Use:   "add FILE",
		Short: "Add a property to an object",
		Long: `Add a string property named newProperty (or newProperty1, newProperty2, ...)
to the root object, or to the object or array of objects at --at.`,
		Example: `  # Add a property to the root
  shapeshyft schema add user.json

  # Add a property to the item objects of an array and name it
  shapeshyft schema add user.json --at addresses --name street`,
		Args:    cobra.ExactArgs(1),
		PreRunE: session.PreRunLoad,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := session.RequireDocument(cmd)
			if err != nil {
				return err
			}
			return runSchemaAdd(cmd, ctx, opts)
		},
	}

	cmd.Flags().StringVar(&opts.at, "at", "", "Path of the object to add to (e.g. address or items[])")
	cmd.Flags().StringVarP(&opts.name, "name", "n", "", "Name for the new property")

	return cmd
}

func runSchemaAdd(cmd *cobra.Command, ctx *session.Context, opts *schemaAddOptions) error {
	at, err := schema.ParsePath(opts.at)
	if err != nil {
		return err
	}
	if opts.name != "" && !schema.ValidIdentifier(opts.name) {
		return fmt.Errorf("invalid property name %q: use letters, digits and underscores", opts.name)
	}

	ctrl, err := visualController(ctx)
	if err != nil {
		return err
	}
	root, err := ctrl.Root()
	if err != nil {
		return err
	}
	target, ok := editor.Find(root, at)
	if !ok {
		return fmt.Errorf("%w: %q", editor.ErrPathNotFound, opts.at)
	}

	// Work out the name the add will generate.
	var (
		added string
		props schema.Properties
	)
	switch {
	case target.Node.Type() == schema.TypeObject:
		_, added = schema.AddProperty(target.Node)
		props = target.Node.Properties()
	case target.Node.HasObjectItems():
		_, added = schema.ItemsAddProperty(target.Node)
		items, _ := target.Node.Items()
		props = items.Properties()
	default:
		return fmt.Errorf("%w: %q", editor.ErrNotContainer, opts.at)
	}
	if opts.name != "" && props.Has(opts.name) {
		return fmt.Errorf("%q already exists", opts.name)
	}

	edits := []editor.Edit{editor.AddProperty{Object: at}}
	newPath := at
	if target.Node.Type() == schema.TypeArray {
		newPath = newPath.Child(schema.ItemsStep)
	}
	newPath = newPath.Child(schema.Prop(added))
	name := added
	if opts.name != "" && opts.name != added {
		edits = append(edits, editor.RenameProperty{Path: newPath, NewName: opts.name})
		name = opts.name
	}
	return applyEdits(cmd, ctx, fmt.Sprintf("Added property %q", name), edits...)
}

func newSchemaRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove FILE PATH",
		Short: "Remove a property",
		Long:  `Remove the property at PATH. It is also dropped from its parent's required list.`,
		Example: `  shapeshyft schema remove user.json address.zip
  shapeshyft schema remove user.json tags[].label`,
		Args:    cobra.ExactArgs(2),
		PreRunE: session.PreRunLoad,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := session.RequireDocument(cmd)
			if err != nil {
				return err
			}
			p, err := schema.ParsePath(args[1])
			if err != nil {
				return err
			}
			return applyEdits(cmd, ctx, fmt.Sprintf("Removed %q", args[1]), editor.RemoveProperty{Path: p})
		},
	}
}

func newSchemaRenameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename FILE PATH NEW_NAME",
		Short: "Rename a property",
		Long: `Rename the property at PATH, keeping its schema and required flag.
The property moves to the end of its object. Names may only contain
letters, digits and underscores.`,
		Example: `  shapeshyft schema rename user.json address.zip postcode`,
		Args:    cobra.ExactArgs(3),
		PreRunE: session.PreRunLoad,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := session.RequireDocument(cmd)
			if err != nil {
				return err
			}
			p, err := schema.ParsePath(args[1])
			if err != nil {
				return err
			}
			if args[2] == "" || !schema.ValidIdentifier(args[2]) {
				return fmt.Errorf("invalid property name %q: use letters, digits and underscores", args[2])
			}
			return applyEdits(cmd, ctx, fmt.Sprintf("Renamed %q to %q", args[1], args[2]),
				editor.RenameProperty{Path: p, NewName: args[2]})
		},
	}
}

func newSchemaRequireCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "require FILE PATH",
		Short:   "Toggle whether a property is required",
		Example: `  shapeshyft schema require user.json email`,
		Args:    cobra.ExactArgs(2),
		PreRunE: session.PreRunLoad,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := session.RequireDocument(cmd)
			if err != nil {
				return err
			}
			p, err := schema.ParsePath(args[1])
			if err != nil {
				return err
			}
			return applyEdits(cmd, ctx, fmt.Sprintf("Toggled required on %q", args[1]), editor.ToggleRequired{Path: p})
		},
	}
}

type schemaSetTypeOptions struct {
	items string
}

func newSchemaSetTypeCmd() *cobra.Command {
	opts := &schemaSetTypeOptions{}

	cmd := &cobra.Command{
		Use:   "set-type FILE PATH TYPE",
		Short: "Change the type of a property",
		Long: `Change the type of the property at PATH. The property is reset to a fresh
schema of the new type; only its description is kept.

Types: ` + typeNames() + `.`,
		Example: `  # Turn a property into an array of objects
  shapeshyft schema set-type user.json addresses array --items object

  # Media types are stored as binary strings
  shapeshyft schema set-type user.json avatar image`,
		Args:    cobra.ExactArgs(3),
		PreRunE: session.PreRunLoad,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := session.RequireDocument(cmd)
			if err != nil {
				return err
			}
			return runSchemaSetType(cmd, ctx, args[1], args[2], opts)
		},
	}

	cmd.Flags().StringVar(&opts.items, "items", "", "Item type when TYPE is array")

	return cmd
}

func runSchemaSetType(cmd *cobra.Command, ctx *session.Context, path, typ string, opts *schemaSetTypeOptions) error {
	p, err := schema.ParsePath(path)
	if err != nil {
		return err
	}
	dt, err := parseTypeArg(typ)
	if err != nil {
		return err
	}

	edits := []editor.Edit{editor.ChangeType{Path: p, Type: dt}}
	if opts.items != "" {
		if dt != schema.DisplayArray {
			return fmt.Errorf("--items requires type %q", schema.DisplayArray)
		}
		items, err := parseTypeArg(opts.items)
		if err != nil {
			return err
		}
		edits = append(edits, editor.ChangeItemsType{Path: p, Type: items})
	}
	return applyEdits(cmd, ctx, fmt.Sprintf("Set %q to %s", path, dt), edits...)
}

func newSchemaDescribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe FILE PATH [TEXT]",
		Short: "Set or clear a description",
		Long: `Set the description of the node at PATH. Without TEXT, or with an empty
TEXT, the description is removed. An empty PATH ("") addresses the root.`,
		Example: `  shapeshyft schema describe user.json email "Primary contact address"
  shapeshyft schema describe user.json email`,
		Args:    cobra.RangeArgs(2, 3),
		PreRunE: session.PreRunLoad,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := session.RequireDocument(cmd)
			if err != nil {
				return err
			}
			p, err := schema.ParsePath(args[1])
			if err != nil {
				return err
			}
			text := ""
			if len(args) == 3 {
				text = args[2]
			}
			return applyEdits(cmd, ctx, fmt.Sprintf("Updated description of %q", args[1]),
				editor.SetDescription{Path: p, Description: text})
		},
	}
}
