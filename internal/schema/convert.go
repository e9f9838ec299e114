// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Shapeshyft

package schema

// Keywords interpreted by the model. Anything else on a typed node is kept
// as an extra.
const (
	kwType             = "type"
	kwDescription      = "description"
	kwFormat           = "format"
	kwContentMediaType = "contentMediaType"
	kwProperties       = "properties"
	kwRequired         = "required"
	kwItems            = "items"
)

// fromValue builds a node from a decoded value. Values that do not fit the
// closed model become opaque nodes so no data is lost.
func fromValue(v value) Node {
	obj, ok := v.(*object)
	if !ok {
		return opaque(v)
	}
	rawType, _ := obj.get(kwType)
	typeName, ok := rawType.(string)
	if !ok || !Type(typeName).valid() {
		return opaque(v)
	}
	n := Node{typ: Type(typeName)}
	var (
		props    Properties
		required []string
		items    Node
		hasItems bool
		str      stringPayload
	)
	for _, m := range obj.members {
		switch {
		case m.key == kwType:
		case m.key == kwDescription:
			desc, ok := m.val.(string)
			if !ok {
				return opaque(v)
			}
			n.desc, n.hasDesc = desc, true
		case n.typ == TypeObject && m.key == kwProperties:
			pobj, ok := m.val.(*object)
			if !ok {
				return opaque(v)
			}
			for _, pm := range pobj.members {
				props = props.with(pm.key, fromValue(pm.val))
			}
		case n.typ == TypeObject && m.key == kwRequired:
			names, ok := stringSet(m.val)
			if !ok {
				return opaque(v)
			}
			required = names
		case n.typ == TypeArray && m.key == kwItems:
			if _, ok := m.val.(*object); !ok {
				return opaque(v)
			}
			items, hasItems = fromValue(m.val), true
		case n.typ == TypeString && m.key == kwFormat:
			s, ok := m.val.(string)
			if !ok {
				return opaque(v)
			}
			str.format = s
		case n.typ == TypeString && m.key == kwContentMediaType:
			s, ok := m.val.(string)
			if !ok {
				return opaque(v)
			}
			str.mediaType = s
		default:
			n.extras = append(n.extras, member{key: m.key, val: cloneValue(m.val)})
		}
	}
	switch n.typ {
	case TypeObject:
		n.payload = objectPayload{props: props, required: required}
	case TypeArray:
		if !hasItems {
			return opaque(v)
		}
		n.payload = arrayPayload{items: items}
	case TypeString:
		n.payload = str
	}
	return n
}

func opaque(v value) Node {
	return Node{payload: opaquePayload{raw: cloneValue(v)}}
}

// stringSet reads a JSON array of strings, dropping duplicates.
func stringSet(v value) ([]string, bool) {
	arr, ok := v.([]value)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(arr))
	seen := make(map[string]struct{}, len(arr))
	for _, item := range arr {
		s, ok := item.(string)
		if !ok {
			return nil, false
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out, true
}

// toValue renders a node in canonical keyword order.
func toValue(n Node) value {
	if p, ok := n.payload.(opaquePayload); ok || n.IsOpaque() {
		return cloneValue(p.raw)
	}
	obj := &object{}
	obj.set(kwType, string(n.typ))
	if n.hasDesc {
		obj.set(kwDescription, n.desc)
	}
	switch p := n.payload.(type) {
	case stringPayload:
		if p.format != "" {
			obj.set(kwFormat, p.format)
		}
		if p.mediaType != "" {
			obj.set(kwContentMediaType, p.mediaType)
		}
	case objectPayload:
		props := &object{}
		for name, child := range p.props.All() {
			props.members = append(props.members, member{key: name, val: toValue(child)})
		}
		obj.set(kwProperties, props)
		required := make([]value, len(p.required))
		for i, name := range p.required {
			required[i] = name
		}
		obj.set(kwRequired, required)
	case arrayPayload:
		obj.set(kwItems, toValue(p.items))
	}
	for _, m := range n.extras {
		obj.members = append(obj.members, member{key: m.key, val: cloneValue(m.val)})
	}
	return obj
}
