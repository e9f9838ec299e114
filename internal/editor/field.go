// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Shapeshyft

package editor

import (
	"github.com/johnqh/shapeshyft-app-sub000/internal/schema"
)

// Handlers are the callbacks a parent gives to one of its fields. Every
// callback receives or produces whole nodes; the parent folds the change into
// its own node and reports upwards through its own OnUpdate.
type Handlers struct {
	OnUpdate         func(schema.Node)
	OnRemove         func()
	OnRename         func(newName string)
	OnToggleRequired func()
}

// Field edits one node of the tree: a named property, the document root, or
// the item schema of an array. A Field is a snapshot; after any edit the tree
// must be walked again from the controller's root.
type Field struct {
	Path     schema.Path
	Name     string
	Node     schema.Node
	Required bool
	Depth    int

	handlers Handlers
}

// NewField returns a field for node wired to h.
func NewField(path schema.Path, name string, node schema.Node, required bool, depth int, h Handlers) Field {
	return Field{Path: path, Name: name, Node: node, Required: required, Depth: depth, handlers: h}
}

// IsRoot reports whether the field is the document root.
func (f Field) IsRoot() bool { return len(f.Path) == 0 }

// IsItems reports whether the field is an array item schema.
func (f Field) IsItems() bool {
	_, last, ok := f.Path.Parent()
	return ok && last.Items
}

// IsProperty reports whether the field is a named object property, which
// can be renamed, removed and marked required.
func (f Field) IsProperty() bool { return !f.IsRoot() && !f.IsItems() }

// DisplayType returns the type shown in the type selector.
func (f Field) DisplayType() schema.DisplayType { return schema.DisplayTypeOf(f.Node) }

// Update replaces the field's node.
func (f Field) Update(n schema.Node) {
	if f.handlers.OnUpdate != nil {
		f.handlers.OnUpdate(n)
	}
}

// Remove deletes the property from its parent object.
func (f Field) Remove() {
	if f.handlers.OnRemove != nil {
		f.handlers.OnRemove()
	}
}

// Rename commits a new property name. Names that are empty, unchanged or not
// identifiers are declined and false is returned; the old name stays.
func (f Field) Rename(newName string) bool {
	if f.handlers.OnRename == nil || newName == "" || newName == f.Name || !schema.ValidIdentifier(newName) {
		return false
	}
	f.handlers.OnRename(newName)
	return true
}

// ToggleRequired flips the property's required membership.
func (f Field) ToggleRequired() {
	if f.handlers.OnToggleRequired != nil {
		f.handlers.OnToggleRequired()
	}
}

// ChangeType switches the node to dt. The new node is freshly reset and only
// keeps the description; nested data of the old type is dropped.
func (f Field) ChangeType(dt schema.DisplayType) {
	if dt == f.DisplayType() {
		return
	}
	if _, ok := schema.ParseDisplayType(string(dt)); !ok {
		return
	}
	f.Update(schema.ResetForDisplayType(dt, f.Node))
}

// ChangeItemsType switches the item schema of an array field to dt.
func (f Field) ChangeItemsType(dt schema.DisplayType) {
	if items, ok := f.Items(); ok {
		items.ChangeType(dt)
	}
}

// SetDescription sets the description; an empty text removes it.
func (f Field) SetDescription(text string) {
	if f.Node.IsOpaque() {
		return
	}
	if text == "" {
		f.Update(f.Node.WithoutDescription())
		return
	}
	f.Update(f.Node.WithDescription(text))
}

// AddProperty adds a property to an object field, or to the object items of
// an array field, and returns its name.
func (f Field) AddProperty() string {
	var (
		n    schema.Node
		name string
	)
	switch {
	case f.Node.Type() == schema.TypeObject:
		n, name = schema.AddProperty(f.Node)
	case f.Node.HasObjectItems():
		n, name = schema.ItemsAddProperty(f.Node)
	default:
		return ""
	}
	f.Update(n)
	return name
}

// Properties returns one field per property of an object field, in order.
func (f Field) Properties() []Field {
	if f.Node.Type() != schema.TypeObject {
		return nil
	}
	props := f.Node.Properties()
	fields := make([]Field, 0, props.Len())
	for name, child := range props.All() {
		fields = append(fields, NewField(f.Path.Child(schema.Prop(name)), name, child, f.Node.IsRequired(name), f.childDepth(), Handlers{
			OnUpdate:         func(n schema.Node) { f.Update(schema.UpdateProperty(f.Node, name, n)) },
			OnRemove:         func() { f.Update(schema.RemoveProperty(f.Node, name)) },
			OnRename:         func(newName string) { f.Update(schema.RenameProperty(f.Node, name, newName)) },
			OnToggleRequired: func() { f.Update(schema.ToggleRequired(f.Node, name)) },
		}))
	}
	return fields
}

// ItemProperties returns the property fields of an array field whose items
// are an object. Edits go through the array's item schema.
func (f Field) ItemProperties() []Field {
	if !f.Node.HasObjectItems() {
		return nil
	}
	items, _ := f.Node.Items()
	itemsPath := f.Path.Child(schema.ItemsStep)
	props := items.Properties()
	fields := make([]Field, 0, props.Len())
	for name, child := range props.All() {
		fields = append(fields, NewField(itemsPath.Child(schema.Prop(name)), name, child, items.IsRequired(name), f.childDepth(), Handlers{
			OnUpdate:         func(n schema.Node) { f.Update(schema.ItemsUpdateProperty(f.Node, name, n)) },
			OnRemove:         func() { f.Update(schema.ItemsRemoveProperty(f.Node, name)) },
			OnRename:         func(newName string) { f.Update(schema.ItemsRenameProperty(f.Node, name, newName)) },
			OnToggleRequired: func() { f.Update(schema.ItemsToggleRequired(f.Node, name)) },
		}))
	}
	return fields
}

// Items returns the field for the item schema of an array field. It only
// supports Update and the operations built on it.
func (f Field) Items() (Field, bool) {
	items, ok := f.Node.Items()
	if !ok {
		return Field{}, false
	}
	return NewField(f.Path.Child(schema.ItemsStep), "", items, false, f.Depth, Handlers{
		OnUpdate: func(n schema.Node) { f.Update(f.Node.WithItems(n)) },
	}), true
}

// Children returns the nested property fields: an object's properties, or
// the properties of an array's object items.
func (f Field) Children() []Field {
	if f.Node.Type() == schema.TypeArray {
		return f.ItemProperties()
	}
	return f.Properties()
}

func (f Field) childDepth() int {
	if f.IsRoot() {
		return 0
	}
	return f.Depth + 1
}
