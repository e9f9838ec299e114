// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Shapeshyft

package schema

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// FromYAML converts a YAML document to canonical JSON text, keeping mapping
// key order. An empty document yields "".
func FromYAML(data []byte) (string, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return "", fmt.Errorf("%w: %v", ErrParse, err)
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return "", nil
	}
	r := yamlReader{expanding: map[*yaml.Node]bool{}}
	v, err := r.read(doc.Content[0])
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrParse, err)
	}
	return encodeValue(v)
}

// ToYAML renders JSON text as YAML with two-space indentation, keeping key
// order.
func ToYAML(text string) ([]byte, error) {
	v, err := decodeValue([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(toYAMLNode(v)); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// maxYAMLNodes bounds the nodes read from one document, aliases included.
const maxYAMLNodes = 100_000

var (
	errYAMLRecursiveAlias = errors.New("recursive alias")
	errYAMLTooLarge       = fmt.Errorf("document expands to more than %d nodes", maxYAMLNodes)
)

type yamlReader struct {
	expanding map[*yaml.Node]bool
	nodes     int
}

func (r *yamlReader) read(n *yaml.Node) (value, error) {
	r.nodes++
	if r.nodes > maxYAMLNodes {
		return nil, errYAMLTooLarge
	}
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return r.read(n.Content[0])
	case yaml.AliasNode:
		if n.Alias == nil || r.expanding[n.Alias] {
			return nil, fmt.Errorf("line %d: %w *%s", n.Line, errYAMLRecursiveAlias, n.Value)
		}
		r.expanding[n.Alias] = true
		defer delete(r.expanding, n.Alias)
		return r.read(n.Alias)
	case yaml.MappingNode:
		obj := &object{}
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, v := n.Content[i], n.Content[i+1]
			if k.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: mapping keys must be scalars", k.Line)
			}
			val, err := r.read(v)
			if err != nil {
				return nil, err
			}
			obj.set(k.Value, val)
		}
		return obj, nil
	case yaml.SequenceNode:
		arr := make([]value, 0, len(n.Content))
		for _, c := range n.Content {
			val, err := r.read(c)
			if err != nil {
				return nil, err
			}
			arr = append(arr, val)
		}
		return arr, nil
	case yaml.ScalarNode:
		return fromYAMLScalar(n)
	}
	return nil, fmt.Errorf("line %d: unsupported YAML node", n.Line)
}

func fromYAMLScalar(n *yaml.Node) (value, error) {
	switch n.ShortTag() {
	case "!!null":
		return nil, nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, err
		}
		return b, nil
	case "!!int", "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, err
		}
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return nil, fmt.Errorf("line %d: %s is not a JSON number", n.Line, n.Value)
		}
		if json.Valid([]byte(n.Value)) {
			return json.Number(n.Value), nil
		}
		return json.Number(strconv.FormatFloat(f, 'g', -1, 64)), nil
	default:
		return n.Value, nil
	}
}

func toYAMLNode(v value) *yaml.Node {
	switch t := v.(type) {
	case *object:
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, m := range t.members {
			n.Content = append(n.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: m.key},
				toYAMLNode(m.val))
		}
		return n
	case []value:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range t {
			n.Content = append(n.Content, toYAMLNode(item))
		}
		return n
	case string:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: t}
	case json.Number:
		tag := "!!float"
		if _, err := strconv.ParseInt(t.String(), 10, 64); err == nil {
			tag = "!!int"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: t.String()}
	case bool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(t)}
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
}
