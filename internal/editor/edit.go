// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Shapeshyft

package editor

import (
	"errors"
	"fmt"

	"github.com/johnqh/shapeshyft-app-sub000/internal/schema"
)

var (
	// ErrPathNotFound indicates an edit addressed a node that does not exist.
	ErrPathNotFound = errors.New("no such node")

	// ErrNotProperty indicates an edit that needs a named property was given
	// the root or an array item schema.
	ErrNotProperty = errors.New("not a property")

	// ErrNotContainer indicates an add on a node that cannot hold properties.
	ErrNotContainer = errors.New("not an object or an array of objects")

	// ErrNotArray indicates an items edit on a node that is not an array.
	ErrNotArray = errors.New("not an array")

	// ErrUnknownType indicates a display type outside the selector options.
	ErrUnknownType = errors.New("unknown type")
)

// Edit is one visual editing event addressed by path from the root.
type Edit interface {
	apply(root Field) error
}

// AddProperty adds a property to the object (or array of objects) at Object.
type AddProperty struct {
	Object schema.Path
}

// UpdateNode replaces the node at Path.
type UpdateNode struct {
	Path schema.Path
	Node schema.Node
}

// ChangeType switches the node at Path to a freshly reset node of Type.
type ChangeType struct {
	Path schema.Path
	Type schema.DisplayType
}

// ChangeItemsType switches the item schema of the array at Path.
type ChangeItemsType struct {
	Path schema.Path
	Type schema.DisplayType
}

// SetDescription sets or, when empty, removes the description at Path.
type SetDescription struct {
	Path        schema.Path
	Description string
}

// RemoveProperty deletes the property at Path.
type RemoveProperty struct {
	Path schema.Path
}

// RenameProperty renames the property at Path. Invalid names are ignored.
type RenameProperty struct {
	Path    schema.Path
	NewName string
}

// ToggleRequired flips the required flag of the property at Path.
type ToggleRequired struct {
	Path schema.Path
}

func find(root Field, path schema.Path) (Field, error) {
	f, ok := Find(root, path)
	if !ok {
		return Field{}, fmt.Errorf("%w: %q", ErrPathNotFound, path.String())
	}
	return f, nil
}

func findProperty(root Field, path schema.Path) (Field, error) {
	f, err := find(root, path)
	if err != nil {
		return Field{}, err
	}
	if !f.IsProperty() {
		return Field{}, fmt.Errorf("%w: %q", ErrNotProperty, path.String())
	}
	return f, nil
}

func checkType(dt schema.DisplayType) error {
	if _, ok := schema.ParseDisplayType(string(dt)); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownType, dt)
	}
	return nil
}

func (e AddProperty) apply(root Field) error {
	f, err := find(root, e.Object)
	if err != nil {
		return err
	}
	if f.AddProperty() == "" {
		return fmt.Errorf("%w: %q", ErrNotContainer, e.Object.String())
	}
	return nil
}

func (e UpdateNode) apply(root Field) error {
	f, err := find(root, e.Path)
	if err != nil {
		return err
	}
	if f.IsRoot() && e.Node.Type() != schema.TypeObject {
		return fmt.Errorf("%w: the document root must stay an object", ErrNotProperty)
	}
	f.Update(e.Node)
	return nil
}

func (e ChangeType) apply(root Field) error {
	if err := checkType(e.Type); err != nil {
		return err
	}
	f, err := find(root, e.Path)
	if err != nil {
		return err
	}
	if f.IsRoot() {
		return fmt.Errorf("%w: the document root must stay an object", ErrNotProperty)
	}
	f.ChangeType(e.Type)
	return nil
}

func (e ChangeItemsType) apply(root Field) error {
	if err := checkType(e.Type); err != nil {
		return err
	}
	f, err := find(root, e.Path)
	if err != nil {
		return err
	}
	if f.Node.Type() != schema.TypeArray {
		return fmt.Errorf("%w: %q", ErrNotArray, e.Path.String())
	}
	f.ChangeItemsType(e.Type)
	return nil
}

func (e SetDescription) apply(root Field) error {
	f, err := find(root, e.Path)
	if err != nil {
		return err
	}
	f.SetDescription(e.Description)
	return nil
}

func (e RemoveProperty) apply(root Field) error {
	f, err := findProperty(root, e.Path)
	if err != nil {
		return err
	}
	f.Remove()
	return nil
}

func (e RenameProperty) apply(root Field) error {
	f, err := findProperty(root, e.Path)
	if err != nil {
		return err
	}
	f.Rename(e.NewName)
	return nil
}

func (e ToggleRequired) apply(root Field) error {
	f, err := findProperty(root, e.Path)
	if err != nil {
		return err
	}
	f.ToggleRequired()
	return nil
}
