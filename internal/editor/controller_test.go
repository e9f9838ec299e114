// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Shapeshyft

package editor

import (
	"bytes"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnqh/shapeshyft-app-sub000/internal/schema"
)

func compact(t *testing.T, text string) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, json.Compact(&buf, []byte(text)))
	return buf.String()
}

func mustPath(t *testing.T, s string) schema.Path {
	t.Helper()
	p, err := schema.ParsePath(s)
	require.NoError(t, err)
	return p
}

func TestNew_Mode(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Mode
	}{
		{"valid document", `{"type":"object","properties":{},"required":[]}`, ModeVisual},
		{"empty text", "", ModeVisual},
		{"truncated", `{"type":"object",`, ModeRaw},
		{"array root", `{"type":"array","items":{"type":"string"}}`, ModeRaw},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.text)
			assert.Equal(t, tt.want, c.Mode())
			assert.Equal(t, tt.text, c.Text())
		})
	}
}

func TestController_Scenarios(t *testing.T) {
	c := New(`{"type":"object","properties":{},"required":[]}`)

	require.NoError(t, c.Apply(AddProperty{}))
	assert.Equal(t,
		`{"type":"object","properties":{"newProperty":{"type":"string"}},"required":[]}`,
		compact(t, c.Text()))

	p := mustPath(t, "newProperty")
	require.NoError(t, c.Apply(ChangeType{Path: p, Type: schema.DisplayArray}))
	require.NoError(t, c.Apply(ChangeItemsType{Path: p, Type: schema.DisplayObject}))
	assert.Equal(t,
		`{"type":"object","properties":{"newProperty":{"type":"array","items":{"type":"object","properties":{},"required":[]}}},"required":[]}`,
		compact(t, c.Text()))

	require.NoError(t, c.Apply(ToggleRequired{Path: p}))
	assert.Contains(t, compact(t, c.Text()), `"required":["newProperty"]`)

	require.NoError(t, c.Apply(RenameProperty{Path: p, NewName: "data"}))
	out := compact(t, c.Text())
	assert.Contains(t, out, `"required":["data"]`)
	assert.Contains(t, out, `"properties":{"data":{"type":"array"`)
	assert.NotContains(t, out, "newProperty")
}

func TestController_InvalidText(t *testing.T) {
	text := `{"type":"object",`
	c := New(text)

	assert.False(t, c.VisualAvailable())
	assert.ErrorIs(t, c.ParseError(), schema.ErrParse)
	assert.ErrorIs(t, c.SetMode(ModeVisual), ErrVisualUnavailable)
	assert.ErrorIs(t, c.Apply(AddProperty{}), ErrNotVisual)
	assert.Equal(t, ModeRaw, c.Mode())
	assert.Equal(t, text, c.Text())
}

func TestController_SetText(t *testing.T) {
	c := New(schema.DefaultText)
	var changes []string
	c.OnChange(func(text string) { changes = append(changes, text) })

	c.SetText(`{"type":"object"`)
	assert.Equal(t, ModeRaw, c.Mode())
	assert.Equal(t, `{"type":"object"`, c.Text())

	c.SetText(`{"type":"object","properties":{"a":{"type":"boolean"}}}`)
	assert.Equal(t, ModeRaw, c.Mode(), "fixing the text does not switch editors")
	require.NoError(t, c.SetMode(ModeVisual))

	tree, err := c.Tree()
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, tree.Properties().Names())
	assert.Len(t, changes, 2)
}

func TestController_ModeSwitchKeepsText(t *testing.T) {
	text := `{ "type": "object", "properties": { "a": { "type": "string" } } }`
	c := New(text)

	require.NoError(t, c.SetMode(ModeRaw))
	require.NoError(t, c.SetMode(ModeVisual))
	assert.Equal(t, text, c.Text())
}

func TestController_EmptyTextFirstEdit(t *testing.T) {
	c := New("")
	require.NoError(t, c.Apply(AddProperty{}))
	assert.Equal(t,
		`{"type":"object","properties":{"newProperty":{"type":"string"}},"required":[]}`,
		compact(t, c.Text()))
}

func TestController_OnChange(t *testing.T) {
	c := New(schema.DefaultText)
	var got []string
	c.OnChange(func(text string) { got = append(got, text) })

	require.NoError(t, c.Apply(AddProperty{}))
	require.NoError(t, c.Apply(AddProperty{}))

	require.Len(t, got, 2)
	assert.Equal(t, c.Text(), got[1])
	assert.Contains(t, got[1], `"newProperty1"`)
}

func TestController_MediaIdempotent(t *testing.T) {
	c := New(schema.DefaultText)
	require.NoError(t, c.Apply(AddProperty{}))
	p := mustPath(t, "newProperty")

	require.NoError(t, c.Apply(ChangeType{Path: p, Type: schema.DisplayImage}))
	first := c.Text()
	require.NoError(t, c.Apply(ChangeType{Path: p, Type: schema.DisplayImage}))
	assert.Equal(t, first, c.Text())

	root, err := c.Root()
	require.NoError(t, err)
	f, ok := Find(root, p)
	require.True(t, ok)
	assert.Equal(t, schema.DisplayImage, f.DisplayType())
	assert.Contains(t, compact(t, c.Text()),
		`"newProperty":{"type":"string","format":"binary","contentMediaType":"image/*"}`)
}

func TestController_TypeSwitchDropsNestedData(t *testing.T) {
	c := New(`{"type":"object","properties":{"o":{"type":"object","description":"keep","properties":{"x":{"type":"string"}},"required":["x"]}},"required":[]}`)

	require.NoError(t, c.Apply(ChangeType{Path: mustPath(t, "o"), Type: schema.DisplayString}))
	assert.Equal(t,
		`{"type":"object","properties":{"o":{"type":"string","description":"keep"}},"required":[]}`,
		compact(t, c.Text()))
}

func TestController_RemoveCascadesRequired(t *testing.T) {
	c := New(`{"type":"object","properties":{"a":{"type":"string"},"b":{"type":"string"}},"required":["a","b"]}`)

	require.NoError(t, c.Apply(RemoveProperty{Path: mustPath(t, "a")}))
	assert.Equal(t,
		`{"type":"object","properties":{"b":{"type":"string"}},"required":["b"]}`,
		compact(t, c.Text()))
}

func TestController_NestedItemEdits(t *testing.T) {
	c := New(`{"type":"object","properties":{"list":{"type":"array","items":{"type":"object","properties":{},"required":[]}}},"required":[]}`)

	require.NoError(t, c.Apply(AddProperty{Object: mustPath(t, "list")}))
	require.NoError(t, c.Apply(ToggleRequired{Path: mustPath(t, "list[].newProperty")}))
	require.NoError(t, c.Apply(RenameProperty{Path: mustPath(t, "list[].newProperty"), NewName: "id"}))
	require.NoError(t, c.Apply(SetDescription{Path: mustPath(t, "list[].id"), Description: "Identifier"}))

	assert.Equal(t,
		`{"type":"object","properties":{"list":{"type":"array","items":{"type":"object","properties":{"id":{"type":"string","description":"Identifier"}},"required":["id"]}}},"required":[]}`,
		compact(t, c.Text()))
}

func TestController_ApplyErrors(t *testing.T) {
	doc := `{"type":"object","properties":{"s":{"type":"string"},"l":{"type":"array","items":{"type":"string"}}},"required":[]}`

	tests := []struct {
		name    string
		edit    Edit
		wantErr error
	}{
		{"missing path", RemoveProperty{Path: schema.Path{schema.Prop("nope")}}, ErrPathNotFound},
		{"remove root", RemoveProperty{}, ErrNotProperty},
		{"rename items", RenameProperty{Path: schema.Path{schema.Prop("l"), schema.ItemsStep}, NewName: "x"}, ErrNotProperty},
		{"add to string", AddProperty{Object: schema.Path{schema.Prop("s")}}, ErrNotContainer},
		{"add to array of strings", AddProperty{Object: schema.Path{schema.Prop("l")}}, ErrNotContainer},
		{"items type on string", ChangeItemsType{Path: schema.Path{schema.Prop("s")}, Type: schema.DisplayNumber}, ErrNotArray},
		{"unknown type", ChangeType{Path: schema.Path{schema.Prop("s")}, Type: "date"}, ErrUnknownType},
		{"retype root", ChangeType{Type: schema.DisplayString}, ErrNotProperty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(doc)
			err := c.Apply(tt.edit)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, doc, c.Text())
		})
	}
}

func TestController_InvalidRenameIgnored(t *testing.T) {
	doc := `{"type":"object","properties":{"a":{"type":"string"},"b":{"type":"string"}},"required":["a"]}`

	for _, name := range []string{"", "a", "b", "has space", "dash-ed"} {
		t.Run(name, func(t *testing.T) {
			c := New(doc)
			require.NoError(t, c.Apply(RenameProperty{Path: schema.Path{schema.Prop("a")}, NewName: name}))
			assert.Equal(t, doc, c.Text())
		})
	}
}

func TestMode_String(t *testing.T) {
	assert.Equal(t, "raw", ModeRaw.String())
	assert.Equal(t, "visual", ModeVisual.String())
	assert.Equal(t, "unknown", Mode(7).String())
}
