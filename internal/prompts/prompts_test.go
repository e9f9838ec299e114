// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Shapeshyft

package prompts

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnqh/shapeshyft-app-sub000/internal/editor"
)

const sampleDoc = `{"type":"object","properties":{"user":{"type":"object","description":"The account owner","properties":{"avatar":{"type":"string","format":"binary","contentMediaType":"image/png"}},"required":["avatar"]},"tags":{"type":"array","items":{"type":"string"}}},"required":["user"]}`

func sampleRows(t *testing.T) []editor.Row {
	t.Helper()
	root, err := editor.New(sampleDoc).Root()
	require.NoError(t, err)
	return editor.Rows(root, editor.NewExpansion(-1))
}

func TestRowLabel(t *testing.T) {
	rows := sampleRows(t)

	labels := make([]string, 0, len(rows))
	for _, r := range rows {
		labels = append(labels, RowLabel(r))
	}
	assert.Equal(t, []string{
		"▾ user: object * - The account owner",
		"    avatar: image *",
		"  + add property",
		"▾ tags: array",
		"  items: string",
		"+ add property",
	}, labels)
}

func TestRowLabel_TruncatesDescription(t *testing.T) {
	root, err := editor.New(`{"type":"object","properties":{"a":{"type":"string","description":"` +
		"0123456789012345678901234567890123456789-tail" + `"}}}`).Root()
	require.NoError(t, err)

	label := RowLabel(editor.Rows(root, nil)[0])
	assert.Equal(t, "  a: string - 0123456789012345678901234567890123456...", label)
}

func TestRenderTree(t *testing.T) {
	var buf bytes.Buffer
	RenderTree(&buf, sampleRows(t))

	out := buf.String()
	assert.Contains(t, out, "user")
	assert.Contains(t, out, "avatar")
	assert.Contains(t, out, "image")
	assert.Contains(t, out, "items:")
	assert.NotContains(t, out, "add property")
}

func TestPrintResult(t *testing.T) {
	var buf bytes.Buffer
	PrintResult(&buf, []ResultField{{Label: "File", Value: "user.json"}}, "Saved")

	out := buf.String()
	assert.Contains(t, out, "File:")
	assert.Contains(t, out, "user.json")
	assert.Contains(t, out, "Saved")
}

func TestIdentifierValidator(t *testing.T) {
	validate := identifierValidator([]string{"taken"})

	tests := []struct {
		input   string
		wantErr string
	}{
		{"name_1", ""},
		{"1st", ""},
		{"", "required"},
		{"has space", "letters, numbers, underscores"},
		{"taken", "already exists"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := validate(tt.input)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestRenameValidator(t *testing.T) {
	root, err := editor.New(sampleDoc).Root()
	require.NoError(t, err)
	user := root.Properties()[0]

	validate := renameValidator(root, user)
	assert.NoError(t, validate("user"), "keeping the name is allowed")
	assert.Error(t, validate("tags"))
	assert.NoError(t, validate("owner"))

	avatar := user.Properties()[0]
	validate = renameValidator(root, avatar)
	assert.NoError(t, validate("tags"), "siblings are scoped to the parent object")
}

func TestRequiredValidator(t *testing.T) {
	validate := requiredValidator("location")
	assert.EqualError(t, validate(""), "location is required")
	assert.NoError(t, validate("x"))
}
