// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Shapeshyft

package editor

import (
	"github.com/johnqh/shapeshyft-app-sub000/internal/schema"
)

// DefaultExpandDepth is the number of levels shown expanded in a freshly
// rendered tree.
const DefaultExpandDepth = 2

// RowKind identifies what a Row renders.
type RowKind int

const (
	// RowField is a property with its name, type selector, required toggle
	// and description.
	RowField RowKind = iota
	// RowItems is the secondary type selector of an array.
	RowItems
	// RowAdd is the "add property" affordance of an object, or of an array
	// whose items are an object.
	RowAdd
)

// Row is one line of the flattened visual tree.
type Row struct {
	Kind     RowKind
	Field    Field
	Depth    int
	Expanded bool
}

// Expansion holds the expand/collapse state of a tree view. It only affects
// presentation.
type Expansion struct {
	depth     int
	overrides map[string]bool
}

// NewExpansion expands fields shallower than depth by default. A negative
// depth uses DefaultExpandDepth.
func NewExpansion(depth int) *Expansion {
	if depth < 0 {
		depth = DefaultExpandDepth
	}
	return &Expansion{depth: depth, overrides: make(map[string]bool)}
}

// Expanded reports whether the children of f are shown.
func (e *Expansion) Expanded(f Field) bool {
	if e == nil {
		return f.Depth < DefaultExpandDepth
	}
	if v, ok := e.overrides[f.Path.String()]; ok {
		return v
	}
	return f.Depth < e.depth
}

// Toggle flips the expansion of f.
func (e *Expansion) Toggle(f Field) {
	e.overrides[f.Path.String()] = !e.Expanded(f)
}

// Expandable reports whether f has nested content to show.
func Expandable(f Field) bool {
	t := f.Node.Type()
	return t == schema.TypeObject || t == schema.TypeArray
}

// Rows flattens the tree under root depth-first: each property, then for an
// expanded object its properties and an add row, and for an expanded array
// its items selector followed, when the items are an object, by the item
// properties and an add row. The root's own add row comes last.
func Rows(root Field, exp *Expansion) []Row {
	var rows []Row
	for _, f := range root.Properties() {
		rows = appendField(rows, f, exp)
	}
	return append(rows, Row{Kind: RowAdd, Field: root, Depth: 0})
}

func appendField(rows []Row, f Field, exp *Expansion) []Row {
	expanded := Expandable(f) && exp.Expanded(f)
	rows = append(rows, Row{Kind: RowField, Field: f, Depth: f.Depth, Expanded: expanded})
	if !expanded {
		return rows
	}
	switch f.Node.Type() {
	case schema.TypeObject:
		for _, child := range f.Properties() {
			rows = appendField(rows, child, exp)
		}
		rows = append(rows, Row{Kind: RowAdd, Field: f, Depth: f.Depth + 1})
	case schema.TypeArray:
		items, _ := f.Items()
		rows = append(rows, Row{Kind: RowItems, Field: items, Depth: f.Depth + 1})
		if f.Node.HasObjectItems() {
			for _, child := range f.ItemProperties() {
				rows = appendField(rows, child, exp)
			}
			rows = append(rows, Row{Kind: RowAdd, Field: f, Depth: f.Depth + 1})
		}
	}
	return rows
}

// Find resolves path to a field under root. Properties of an array's object
// items are reached through the array, as ItemProperties does.
func Find(root Field, path schema.Path) (Field, bool) {
	if _, ok := schema.At(root.Node, path); !ok {
		return Field{}, false
	}
	cur := root
	for i := 0; i < len(path); i++ {
		s := path[i]
		var candidates []Field
		switch {
		case s.Items && i+1 < len(path) && !path[i+1].Items:
			candidates = cur.ItemProperties()
			i++
			s = path[i]
		case s.Items:
			items, ok := cur.Items()
			if !ok {
				return Field{}, false
			}
			cur = items
			continue
		default:
			candidates = cur.Properties()
		}
		found := false
		for _, c := range candidates {
			if c.Name == s.Property {
				cur, found = c, true
				break
			}
		}
		if !found {
			return Field{}, false
		}
	}
	return cur, true
}
