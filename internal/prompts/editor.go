// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Shapeshyft

package prompts

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/sirupsen/logrus"

	"github.com/johnqh/shapeshyft-app-sub000/internal/editor"
	"github.com/johnqh/shapeshyft-app-sub000/internal/logging"
	"github.com/johnqh/shapeshyft-app-sub000/internal/schema"
)

// Menu entries that are not tree rows.
const (
	actionSwitchMode = -1 - iota
	actionSave
	actionQuit
	actionEditText
)

// Field actions.
const (
	fieldToggle      = "toggle"
	fieldRename      = "rename"
	fieldType        = "type"
	fieldItemsType   = "items"
	fieldDescription = "description"
	fieldRequired    = "required"
	fieldRemove      = "remove"
	fieldBack        = "back"
)

// EditorOptions configure RunEditor.
type EditorOptions struct {
	// ExpandDepth is the initial expansion depth of the tree.
	ExpandDepth int

	// Save writes the current text. It is called for every save action.
	Save func(text string) error

	Logger *logrus.Logger
}

// RunEditor runs the interactive editor until the user quits. It reports
// whether the text was saved at least once.
func RunEditor(ctrl *editor.Controller, opts EditorOptions) (bool, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	exp := editor.NewExpansion(opts.ExpandDepth)
	saved := false

	for {
		var (
			action int
			err    error
		)
		if ctrl.Mode() == editor.ModeVisual {
			action, err = runVisual(ctrl, exp, logger)
		} else {
			action, err = runRaw(ctrl, logger)
		}
		if err != nil {
			return saved, err
		}

		switch action {
		case actionQuit:
			return saved, nil
		case actionSave:
			if err := opts.Save(ctrl.Text()); err != nil {
				return saved, err
			}
			saved = true
			logger.Debug("document saved")
		case actionSwitchMode:
			next := editor.ModeRaw
			if ctrl.Mode() == editor.ModeRaw {
				next = editor.ModeVisual
			}
			if err := ctrl.SetMode(next); err != nil {
				return saved, err
			}
			logger.WithField("mode", next).Debug("mode switched")
		}
	}
}

func runVisual(ctrl *editor.Controller, exp *editor.Expansion, logger *logrus.Logger) (int, error) {
	root, err := ctrl.Root()
	if err != nil {
		return 0, err
	}
	rows := editor.Rows(root, exp)

	options := make([]huh.Option[int], 0, len(rows)+3)
	for i, r := range rows {
		options = append(options, huh.NewOption(RowLabel(r), i))
	}
	options = append(options,
		huh.NewOption("[raw text]", actionSwitchMode),
		huh.NewOption("[save]", actionSave),
		huh.NewOption("[quit]", actionQuit),
	)

	choice := actionQuit
	if err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Schema").
				Options(options...).
				Value(&choice).
				Height(20),
		),
	).WithTheme(Theme()).Run(); err != nil {
		return 0, err
	}
	if choice < 0 {
		return choice, nil
	}

	row := rows[choice]
	var edit editor.Edit
	switch row.Kind {
	case editor.RowAdd:
		edit = editor.AddProperty{Object: row.Field.Path}
	case editor.RowItems:
		dt, err := selectType("Item type", row.Field.DisplayType())
		if err != nil {
			return 0, err
		}
		parent, _, _ := row.Field.Path.Parent()
		edit = editor.ChangeItemsType{Path: parent, Type: dt}
	default:
		edit, err = fieldEdit(root, row.Field, exp)
		if err != nil {
			return 0, err
		}
	}
	if edit == nil {
		return 0, nil
	}

	if err := ctrl.Apply(edit); err != nil {
		return 0, err
	}
	logger.WithFields(logrus.Fields{
		"edit": fmt.Sprintf("%T", edit),
		"path": row.Field.Path.String(),
	}).Debug("edit applied")
	return 0, nil
}

func fieldEdit(root, f editor.Field, exp *editor.Expansion) (editor.Edit, error) {
	var options []huh.Option[string]
	if editor.Expandable(f) {
		options = append(options, huh.NewOption("Expand / collapse", fieldToggle))
	}
	options = append(options,
		huh.NewOption("Rename", fieldRename),
		huh.NewOption("Change type", fieldType),
	)
	if f.Node.Type() == schema.TypeArray {
		options = append(options, huh.NewOption("Change item type", fieldItemsType))
	}
	if !f.Node.IsOpaque() {
		options = append(options, huh.NewOption("Edit description", fieldDescription))
	}
	required := "Mark required"
	if f.Required {
		required = "Mark optional"
	}
	options = append(options,
		huh.NewOption(required, fieldRequired),
		huh.NewOption("Remove", fieldRemove),
		huh.NewOption("Back", fieldBack),
	)

	action := fieldBack
	if err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(f.Path.String()).
				Options(options...).
				Value(&action),
		),
	).WithTheme(Theme()).Run(); err != nil {
		return nil, err
	}

	switch action {
	case fieldToggle:
		exp.Toggle(f)
		return nil, nil
	case fieldRename:
		name := f.Name
		if err := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Property name").
					Prompt(": ").
					Inline(true).
					Value(&name).
					Validate(renameValidator(root, f)),
			),
		).WithTheme(Theme()).Run(); err != nil {
			return nil, err
		}
		return editor.RenameProperty{Path: f.Path, NewName: name}, nil
	case fieldType:
		dt, err := selectType("Type", f.DisplayType())
		if err != nil {
			return nil, err
		}
		return editor.ChangeType{Path: f.Path, Type: dt}, nil
	case fieldItemsType:
		items, _ := f.Items()
		dt, err := selectType("Item type", items.DisplayType())
		if err != nil {
			return nil, err
		}
		return editor.ChangeItemsType{Path: f.Path, Type: dt}, nil
	case fieldDescription:
		desc := f.Node.Description()
		if err := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Description").
					Prompt(": ").
					Inline(true).
					Placeholder("empty to remove").
					Value(&desc),
			),
		).WithTheme(Theme()).Run(); err != nil {
			return nil, err
		}
		return editor.SetDescription{Path: f.Path, Description: desc}, nil
	case fieldRequired:
		return editor.ToggleRequired{Path: f.Path}, nil
	case fieldRemove:
		confirm := false
		if err := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Remove %q?", f.Name)).
					Affirmative("Yes").
					Negative("No").
					Value(&confirm),
			),
		).WithTheme(Theme()).Run(); err != nil {
			return nil, err
		}
		if !confirm {
			return nil, nil
		}
		return editor.RemoveProperty{Path: f.Path}, nil
	default:
		return nil, nil
	}
}

// renameValidator accepts the current name, which leaves the field
// unchanged, and rejects names taken by siblings.
func renameValidator(root, f editor.Field) func(string) error {
	check := identifierValidator(siblingNames(root, f))
	return func(s string) error {
		if s == f.Name {
			return nil
		}
		return check(s)
	}
}

func siblingNames(root, f editor.Field) []string {
	parentPath, _, ok := f.Path.Parent()
	if !ok {
		return nil
	}
	parent, ok := editor.Find(root, parentPath)
	if !ok {
		return nil
	}
	return parent.Node.Properties().Names()
}

func selectType(title string, current schema.DisplayType) (schema.DisplayType, error) {
	options := make([]huh.Option[schema.DisplayType], 0, len(schema.DisplayTypes()))
	for _, dt := range schema.DisplayTypes() {
		options = append(options, huh.NewOption(string(dt), dt))
	}

	choice := current
	if err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[schema.DisplayType]().
				Title(title).
				Options(options...).
				Value(&choice),
		),
	).WithTheme(Theme()).Run(); err != nil {
		return "", err
	}
	return choice, nil
}

func runRaw(ctrl *editor.Controller, logger *logrus.Logger) (int, error) {
	text := ctrl.Text()
	if err := huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Schema (JSON)").
				Value(&text).
				Lines(20).
				CharLimit(0),
		),
	).WithTheme(Theme()).Run(); err != nil {
		return 0, err
	}
	if text != ctrl.Text() {
		ctrl.SetText(text)
		logger.WithField("visual", ctrl.VisualAvailable()).Debug("raw text updated")
	}

	options := []huh.Option[int]{huh.NewOption("Keep editing", actionEditText)}
	title := "Raw text"
	if ctrl.VisualAvailable() {
		options = append(options, huh.NewOption("Switch to visual", actionSwitchMode))
	} else {
		title = fmt.Sprintf("Visual editing unavailable: %v", ctrl.ParseError())
	}
	options = append(options,
		huh.NewOption("Save", actionSave),
		huh.NewOption("Quit", actionQuit),
	)

	choice := actionEditText
	if err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title(title).
				Options(options...).
				Value(&choice),
		),
	).WithTheme(Theme()).Run(); err != nil {
		return 0, err
	}
	return choice, nil
}

// IsAborted reports whether err is the user leaving a form with ctrl+c.
func IsAborted(err error) bool {
	return errors.Is(err, huh.ErrUserAborted)
}
