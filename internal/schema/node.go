// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Shapeshyft

// Package schema models the JSON-Schema-like documents edited by shapeshyft:
// a closed set of node types, an order-preserving codec, the media-type
// projection and pure tree mutations.
package schema

import (
	"iter"
	"slices"
)

// Type is the JSON Schema "type" keyword of a node.
type Type string

// Supported node types.
const (
	TypeString  Type = "string"
	TypeNumber  Type = "number"
	TypeInteger Type = "integer"
	TypeBoolean Type = "boolean"
	TypeObject  Type = "object"
	TypeArray   Type = "array"
)

// Types lists the primitive types in selector order.
func Types() []Type {
	return []Type{TypeString, TypeNumber, TypeInteger, TypeBoolean, TypeObject, TypeArray}
}

func (t Type) valid() bool {
	return slices.Contains(Types(), t)
}

// Node is one immutable schema fragment. Exactly one type-specific payload is
// present and it always matches Type; the zero Node is an opaque null value.
//
// Nodes are values: every mutator returns a new Node and never writes to the
// receiver, so subtrees may be shared freely between trees.
type Node struct {
	typ     Type
	desc    string
	hasDesc bool
	payload payload
	extras  []member
}

type payload interface{ isPayload() }

type objectPayload struct {
	props    Properties
	required []string
}

type arrayPayload struct {
	items Node
}

type stringPayload struct {
	format    string
	mediaType string
}

// opaquePayload holds a value the model cannot represent, kept verbatim.
type opaquePayload struct {
	raw value
}

func (objectPayload) isPayload() {}
func (arrayPayload) isPayload()  {}
func (stringPayload) isPayload() {}
func (opaquePayload) isPayload() {}

// String returns a {type: string} node.
func String() Node { return Node{typ: TypeString, payload: stringPayload{}} }

// StringWithFormat returns a string node with format and contentMediaType set.
// Empty values are omitted.
func StringWithFormat(format, contentMediaType string) Node {
	return Node{typ: TypeString, payload: stringPayload{format: format, mediaType: contentMediaType}}
}

// Number returns a {type: number} node.
func Number() Node { return Node{typ: TypeNumber} }

// Integer returns a {type: integer} node.
func Integer() Node { return Node{typ: TypeInteger} }

// Boolean returns a {type: boolean} node.
func Boolean() Node { return Node{typ: TypeBoolean} }

// Object returns an object node with no properties.
func Object() Node { return Node{typ: TypeObject, payload: objectPayload{}} }

// Array returns an array node with the given item schema.
func Array(items Node) Node { return Node{typ: TypeArray, payload: arrayPayload{items: items}} }

// OfType returns a freshly reset node of type t. Arrays get {type: string} items.
func OfType(t Type) Node {
	switch t {
	case TypeString:
		return String()
	case TypeNumber:
		return Number()
	case TypeInteger:
		return Integer()
	case TypeBoolean:
		return Boolean()
	case TypeObject:
		return Object()
	case TypeArray:
		return Array(String())
	}
	return Node{payload: opaquePayload{}}
}

// Type returns the node type, or "" for an opaque node.
func (n Node) Type() Type { return n.typ }

// IsOpaque reports whether the node holds JSON the model does not understand.
// Opaque nodes are serialized verbatim and can only be replaced.
func (n Node) IsOpaque() bool { return n.typ == "" }

// Description returns the description, or "" when absent.
func (n Node) Description() string { return n.desc }

// HasDescription reports whether the description keyword is present.
func (n Node) HasDescription() bool { return n.hasDesc }

// WithDescription returns a copy of n with the description set.
func (n Node) WithDescription(desc string) Node {
	if n.IsOpaque() {
		return n
	}
	n.desc, n.hasDesc = desc, true
	return n
}

// WithoutDescription returns a copy of n without a description.
func (n Node) WithoutDescription() Node {
	n.desc, n.hasDesc = "", false
	return n
}

// Format returns the string format keyword.
func (n Node) Format() string {
	p, _ := n.payload.(stringPayload)
	return p.format
}

// ContentMediaType returns the string contentMediaType keyword.
func (n Node) ContentMediaType() string {
	p, _ := n.payload.(stringPayload)
	return p.mediaType
}

// Properties returns the properties of an object node.
func (n Node) Properties() Properties {
	p, _ := n.payload.(objectPayload)
	return p.props
}

// Required returns a copy of the required names of an object node.
func (n Node) Required() []string {
	p, _ := n.payload.(objectPayload)
	return slices.Clone(p.required)
}

// IsRequired reports whether name is in the required set.
func (n Node) IsRequired(name string) bool {
	p, _ := n.payload.(objectPayload)
	return slices.Contains(p.required, name)
}

// Items returns the item schema of an array node.
func (n Node) Items() (Node, bool) {
	p, ok := n.payload.(arrayPayload)
	return p.items, ok
}

// WithItems returns a copy of an array node with a new item schema. Other
// nodes are returned unchanged.
func (n Node) WithItems(items Node) Node {
	if n.typ != TypeArray {
		return n
	}
	n.payload = arrayPayload{items: items}
	return n
}

// HasObjectItems reports whether n is an array whose items are an object.
func (n Node) HasObjectItems() bool {
	items, ok := n.Items()
	return ok && items.typ == TypeObject
}

func (n Node) withObject(props Properties, required []string) Node {
	n.payload = objectPayload{props: props, required: required}
	return n
}

// Equal reports whether a and b serialize to the same document.
func Equal(a, b Node) bool {
	return valuesEqual(toValue(a), toValue(b))
}

// Properties is an insertion-ordered, immutable map of property schemas.
type Properties struct {
	names  []string
	values map[string]Node
}

// Len returns the number of properties.
func (p Properties) Len() int { return len(p.names) }

// Names returns the property names in order.
func (p Properties) Names() []string { return slices.Clone(p.names) }

// Get returns the property schema for name.
func (p Properties) Get(name string) (Node, bool) {
	n, ok := p.values[name]
	return n, ok
}

// Has reports whether name is a property.
func (p Properties) Has(name string) bool {
	_, ok := p.values[name]
	return ok
}

// All iterates the properties in order.
func (p Properties) All() iter.Seq2[string, Node] {
	return func(yield func(string, Node) bool) {
		for _, name := range p.names {
			if !yield(name, p.values[name]) {
				return
			}
		}
	}
}

// with returns a copy with name set to n, appended when new.
func (p Properties) with(name string, n Node) Properties {
	out := Properties{names: slices.Clone(p.names), values: make(map[string]Node, len(p.names)+1)}
	for k, v := range p.values {
		out.values[k] = v
	}
	if _, ok := out.values[name]; !ok {
		out.names = append(out.names, name)
	}
	out.values[name] = n
	return out
}

// without returns a copy with name removed.
func (p Properties) without(name string) Properties {
	out := Properties{values: make(map[string]Node, len(p.names))}
	for _, k := range p.names {
		if k == name {
			continue
		}
		out.names = append(out.names, k)
		out.values[k] = p.values[k]
	}
	return out
}
