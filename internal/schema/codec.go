// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Shapeshyft

package schema

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrParse indicates the text is not valid JSON.
	ErrParse = errors.New("invalid JSON")

	// ErrNotObjectSchema indicates valid JSON that is not an object schema
	// with an object "properties" field.
	ErrNotObjectSchema = errors.New("not an object schema")
)

// DefaultText is the canonical text of an empty document.
const DefaultText = "{\n  \"type\": \"object\",\n  \"properties\": {},\n  \"required\": []\n}"

// NewDocument returns an empty document: an object without properties.
func NewDocument() Node { return Object() }

// Parse reads canonical text into a document tree. Empty or blank text is
// the empty document. The root must be {"type": "object"} with an object
// "properties" field.
func Parse(text string) (Node, error) {
	if strings.TrimSpace(text) == "" {
		return NewDocument(), nil
	}
	v, err := decodeValue([]byte(text))
	if err != nil {
		return Node{}, fmt.Errorf("%w: %v", ErrParse, err)
	}
	obj, ok := v.(*object)
	if !ok {
		return Node{}, fmt.Errorf("%w: root is not a JSON object", ErrNotObjectSchema)
	}
	if t, _ := obj.get(kwType); t != string(TypeObject) {
		return Node{}, fmt.Errorf("%w: root type must be %q", ErrNotObjectSchema, TypeObject)
	}
	if props, _ := obj.get(kwProperties); !isObject(props) {
		return Node{}, fmt.Errorf("%w: root properties must be an object", ErrNotObjectSchema)
	}
	root := fromValue(v)
	if root.Type() != TypeObject {
		return Node{}, fmt.Errorf("%w: root keywords are malformed", ErrNotObjectSchema)
	}
	return root, nil
}

// Serialize renders n as JSON with two-space indentation and no trailing
// newline, matching JSON.stringify(n, null, 2).
func Serialize(n Node) string {
	// toValue only produces encodable values.
	s, _ := encodeValue(toValue(n))
	return s
}

// Format re-indents any JSON text to the canonical layout while keeping key
// order. It fails with ErrParse when text is not valid JSON.
func Format(text string) (string, error) {
	v, err := decodeValue([]byte(text))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrParse, err)
	}
	return encodeValue(v)
}
