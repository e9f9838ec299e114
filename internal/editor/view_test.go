// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Shapeshyft

package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnqh/shapeshyft-app-sub000/internal/schema"
)

const nestedDoc = `{
  "type": "object",
  "properties": {
    "a": {
      "type": "object",
      "properties": {
        "b": {
          "type": "object",
          "properties": {"c": {"type": "string"}},
          "required": []
        }
      },
      "required": []
    },
    "list": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {"x": {"type": "integer"}},
        "required": ["x"]
      }
    }
  },
  "required": []
}`

type rowSummary struct {
	Kind  RowKind
	Path  string
	Depth int
}

func summarize(rows []Row) []rowSummary {
	out := make([]rowSummary, 0, len(rows))
	for _, r := range rows {
		out = append(out, rowSummary{Kind: r.Kind, Path: r.Field.Path.String(), Depth: r.Depth})
	}
	return out
}

func rootOf(t *testing.T, text string) Field {
	t.Helper()
	c := New(text)
	root, err := c.Root()
	require.NoError(t, err)
	return root
}

func TestRows_DefaultExpansion(t *testing.T) {
	root := rootOf(t, nestedDoc)

	got := summarize(Rows(root, NewExpansion(-1)))
	assert.Equal(t, []rowSummary{
		{RowField, "a", 0},
		{RowField, "a.b", 1},
		{RowField, "a.b.c", 2},
		{RowAdd, "a.b", 2},
		{RowAdd, "a", 1},
		{RowField, "list", 0},
		{RowItems, "list[]", 1},
		{RowField, "list[].x", 1},
		{RowAdd, "list", 1},
		{RowAdd, "", 0},
	}, got)
}

func TestRows_ShallowExpansion(t *testing.T) {
	root := rootOf(t, nestedDoc)

	got := summarize(Rows(root, NewExpansion(1)))
	assert.Equal(t, []rowSummary{
		{RowField, "a", 0},
		{RowField, "a.b", 1},
		{RowAdd, "a", 1},
		{RowField, "list", 0},
		{RowItems, "list[]", 1},
		{RowField, "list[].x", 1},
		{RowAdd, "list", 1},
		{RowAdd, "", 0},
	}, got)
}

func TestExpansion_Toggle(t *testing.T) {
	root := rootOf(t, nestedDoc)
	exp := NewExpansion(-1)

	a, ok := Find(root, schema.Path{schema.Prop("a")})
	require.True(t, ok)
	require.True(t, exp.Expanded(a))

	exp.Toggle(a)
	assert.False(t, exp.Expanded(a))

	rows := summarize(Rows(root, exp))
	assert.Equal(t, rowSummary{RowField, "a", 0}, rows[0])
	assert.Equal(t, rowSummary{RowField, "list", 0}, rows[1])

	exp.Toggle(a)
	assert.True(t, exp.Expanded(a))
}

func TestExpansion_Nil(t *testing.T) {
	var exp *Expansion
	assert.True(t, exp.Expanded(Field{Depth: 1}))
	assert.False(t, exp.Expanded(Field{Depth: 2}))
}

func TestRows_ReportsExpanded(t *testing.T) {
	root := rootOf(t, nestedDoc)

	for _, r := range Rows(root, NewExpansion(-1)) {
		if r.Kind != RowField {
			continue
		}
		assert.Equal(t, Expandable(r.Field), r.Expanded, r.Field.Path.String())
	}
}

func TestFind(t *testing.T) {
	root := rootOf(t, nestedDoc)

	tests := []struct {
		path     string
		wantOK   bool
		wantType schema.Type
		required bool
	}{
		{"", true, schema.TypeObject, false},
		{"a.b.c", true, schema.TypeString, false},
		{"list", true, schema.TypeArray, false},
		{"list[]", true, schema.TypeObject, false},
		{"list[].x", true, schema.TypeInteger, true},
		{"a[]", false, "", false},
		{"missing", false, "", false},
		{"list[].y", false, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			f, ok := Find(root, mustPath(t, tt.path))
			require.Equal(t, tt.wantOK, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.wantType, f.Node.Type())
			assert.Equal(t, tt.required, f.Required)
			assert.Equal(t, tt.path, f.Path.String())
		})
	}
}
