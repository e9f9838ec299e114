// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Shapeshyft

package schema

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrInvalidPath indicates a malformed textual path.
var ErrInvalidPath = errors.New("invalid path")

// Step is one hop from a node to a child: a named property of an object, or
// the item schema of an array.
type Step struct {
	Property string
	Items    bool
}

// Prop returns a property step.
func Prop(name string) Step { return Step{Property: name} }

// ItemsStep is the step into an array's item schema.
var ItemsStep = Step{Items: true}

// Path addresses a node from the document root. The empty path is the root.
type Path []Step

// Child returns a new path extended by s.
func (p Path) Child(s Step) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, s)
}

// Parent splits off the last step.
func (p Path) Parent() (Path, Step, bool) {
	if len(p) == 0 {
		return nil, Step{}, false
	}
	return slices.Clone(p[:len(p)-1]), p[len(p)-1], true
}

// String renders the path as dotted property names, with "[]" for items,
// e.g. "user.tags[].name".
func (p Path) String() string {
	var b strings.Builder
	for i, s := range p {
		if s.Items {
			b.WriteString("[]")
			continue
		}
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(s.Property)
	}
	return b.String()
}

// ParsePath parses the textual form produced by Path.String.
func ParsePath(s string) (Path, error) {
	if s == "" {
		return Path{}, nil
	}
	var p Path
	for _, seg := range strings.Split(s, ".") {
		name := strings.TrimRight(seg, "[]")
		suffix := seg[len(name):]
		if name == "" || strings.ContainsAny(name, "[]") || len(suffix)%2 != 0 ||
			strings.ReplaceAll(suffix, "[]", "") != "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPath, s)
		}
		p = append(p, Prop(name))
		for i := 0; i < len(suffix)/2; i++ {
			p = append(p, ItemsStep)
		}
	}
	return p, nil
}

// At returns the node addressed by p.
func At(root Node, p Path) (Node, bool) {
	cur := root
	for _, s := range p {
		var ok bool
		if s.Items {
			cur, ok = cur.Items()
		} else {
			cur, ok = cur.Properties().Get(s.Property)
		}
		if !ok {
			return Node{}, false
		}
	}
	return cur, true
}
