// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Shapeshyft

package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnqh/shapeshyft-app-sub000/internal/schema"
)

type recorder struct {
	updates []schema.Node
	removed int
	renames []string
	toggled int
}

func (r *recorder) handlers() Handlers {
	return Handlers{
		OnUpdate:         func(n schema.Node) { r.updates = append(r.updates, n) },
		OnRemove:         func() { r.removed++ },
		OnRename:         func(name string) { r.renames = append(r.renames, name) },
		OnToggleRequired: func() { r.toggled++ },
	}
}

func (r *recorder) last(t *testing.T) schema.Node {
	t.Helper()
	require.NotEmpty(t, r.updates)
	return r.updates[len(r.updates)-1]
}

func TestField_Kinds(t *testing.T) {
	root := NewField(nil, "", schema.Object(), false, 0, Handlers{})
	prop := NewField(schema.Path{schema.Prop("a")}, "a", schema.String(), false, 0, Handlers{})
	items := NewField(schema.Path{schema.Prop("a"), schema.ItemsStep}, "", schema.String(), false, 0, Handlers{})

	assert.True(t, root.IsRoot())
	assert.False(t, root.IsProperty())
	assert.True(t, prop.IsProperty())
	assert.False(t, prop.IsItems())
	assert.True(t, items.IsItems())
	assert.False(t, items.IsProperty())
}

func TestField_Rename(t *testing.T) {
	tests := []struct {
		name    string
		newName string
		want    bool
	}{
		{"valid", "b_2", true},
		{"empty", "", false},
		{"unchanged", "a", false},
		{"invalid", "a b", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r recorder
			f := NewField(schema.Path{schema.Prop("a")}, "a", schema.String(), false, 0, r.handlers())
			assert.Equal(t, tt.want, f.Rename(tt.newName))
			if tt.want {
				assert.Equal(t, []string{tt.newName}, r.renames)
			} else {
				assert.Empty(t, r.renames)
			}
		})
	}
}

func TestField_ChangeType(t *testing.T) {
	var r recorder
	f := NewField(schema.Path{schema.Prop("a")}, "a", schema.String().WithDescription("d"), false, 0, r.handlers())

	f.ChangeType(schema.DisplayString)
	assert.Empty(t, r.updates, "same type is a no-op")

	f.ChangeType("unknown")
	assert.Empty(t, r.updates)

	f.ChangeType(schema.DisplayVideo)
	n := r.last(t)
	assert.Equal(t, schema.DisplayVideo, schema.DisplayTypeOf(n))
	assert.Equal(t, "d", n.Description())
}

func TestField_ChangeItemsType(t *testing.T) {
	var r recorder
	f := NewField(schema.Path{schema.Prop("l")}, "l", schema.Array(schema.String()), false, 0, r.handlers())

	f.ChangeItemsType(schema.DisplayObject)
	items, ok := r.last(t).Items()
	require.True(t, ok)
	assert.Equal(t, schema.TypeObject, items.Type())
}

func TestField_SetDescription(t *testing.T) {
	var r recorder
	f := NewField(schema.Path{schema.Prop("a")}, "a", schema.String(), false, 0, r.handlers())

	f.SetDescription("hello")
	assert.Equal(t, "hello", r.last(t).Description())

	f = NewField(f.Path, f.Name, r.last(t), false, 0, r.handlers())
	f.SetDescription("")
	assert.False(t, r.last(t).HasDescription())
}

func TestField_AddProperty(t *testing.T) {
	var r recorder
	obj := NewField(nil, "", schema.Object(), false, 0, r.handlers())
	assert.Equal(t, "newProperty", obj.AddProperty())
	assert.True(t, r.last(t).Properties().Has("newProperty"))

	arr := NewField(schema.Path{schema.Prop("l")}, "l", schema.Array(schema.Object()), false, 0, r.handlers())
	assert.Equal(t, "newProperty", arr.AddProperty())
	items, _ := r.last(t).Items()
	assert.True(t, items.Properties().Has("newProperty"))

	n := len(r.updates)
	str := NewField(schema.Path{schema.Prop("s")}, "s", schema.String(), false, 0, r.handlers())
	assert.Empty(t, str.AddProperty())
	assert.Len(t, r.updates, n)
}

func TestField_PropertiesBubbleUp(t *testing.T) {
	doc, err := schema.Parse(`{"type":"object","properties":{"a":{"type":"string"},"b":{"type":"number"}},"required":["b"]}`)
	require.NoError(t, err)

	var r recorder
	root := NewField(nil, "", doc, false, 0, r.handlers())
	props := root.Properties()
	require.Len(t, props, 2)

	assert.Equal(t, "a", props[0].Name)
	assert.False(t, props[0].Required)
	assert.True(t, props[1].Required)
	assert.Equal(t, 0, props[0].Depth)

	props[0].ToggleRequired()
	assert.Equal(t, []string{"b", "a"}, r.last(t).Required())

	props[1].Remove()
	assert.Equal(t, []string{"a"}, r.last(t).Properties().Names())
	assert.Empty(t, r.last(t).Required())

	props[0].Rename("z")
	assert.Equal(t, []string{"b", "z"}, r.last(t).Properties().Names())

	props[1].Update(schema.Boolean())
	b, _ := r.last(t).Properties().Get("b")
	assert.Equal(t, schema.TypeBoolean, b.Type())
}

func TestField_ItemPropertiesBubbleUp(t *testing.T) {
	doc, err := schema.Parse(`{"type":"object","properties":{"l":{"type":"array","items":{"type":"object","properties":{"x":{"type":"string"}},"required":[]}}},"required":[]}`)
	require.NoError(t, err)

	var r recorder
	root := NewField(nil, "", doc, false, 0, r.handlers())
	list := root.Properties()[0]
	children := list.Children()
	require.Len(t, children, 1)
	assert.Equal(t, "l[].x", children[0].Path.String())
	assert.Equal(t, 1, children[0].Depth)

	children[0].ToggleRequired()
	l, _ := r.last(t).Properties().Get("l")
	items, _ := l.Items()
	assert.Equal(t, []string{"x"}, items.Required())
}
