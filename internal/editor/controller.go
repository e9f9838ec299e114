// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Shapeshyft

package editor

import (
	"errors"

	"github.com/johnqh/shapeshyft-app-sub000/internal/schema"
)

// Mode selects which editor is active.
type Mode int

const (
	// ModeRaw edits the document as free text.
	ModeRaw Mode = iota
	// ModeVisual edits the document through the field tree.
	ModeVisual
)

func (m Mode) String() string {
	switch m {
	case ModeRaw:
		return "raw"
	case ModeVisual:
		return "visual"
	default:
		return "unknown"
	}
}

var (
	// ErrVisualUnavailable indicates the text does not parse as an object
	// schema, so the visual editor cannot be entered.
	ErrVisualUnavailable = errors.New("visual editing unavailable: document is not a valid object schema")

	// ErrNotVisual indicates a visual edit was attempted in raw mode.
	ErrNotVisual = errors.New("not in visual mode")
)

// Controller owns the document text. The text is the single source of truth;
// the tree is derived from it on demand and every visual edit writes back a
// freshly serialized text.
type Controller struct {
	text     string
	mode     Mode
	onChange func(string)

	cached   bool
	cacheFor string
	tree     schema.Node
	parseErr error
}

// New returns a controller for text. It starts in visual mode when the text
// parses and in raw mode otherwise.
func New(text string) *Controller {
	c := &Controller{text: text, mode: ModeRaw}
	if c.VisualAvailable() {
		c.mode = ModeVisual
	}
	return c
}

// OnChange registers fn to be called with the new text after every change.
func (c *Controller) OnChange(fn func(text string)) {
	c.onChange = fn
}

// Text returns the current document text.
func (c *Controller) Text() string { return c.text }

// Mode returns the active mode.
func (c *Controller) Mode() Mode { return c.mode }

// VisualAvailable reports whether the current text parses as an object
// schema.
func (c *Controller) VisualAvailable() bool {
	_, err := c.Tree()
	return err == nil
}

// ParseError returns why the current text cannot be edited visually, or nil.
func (c *Controller) ParseError() error {
	_, err := c.Tree()
	return err
}

// Tree parses the current text. The result is memoized per text.
func (c *Controller) Tree() (schema.Node, error) {
	if !c.cached || c.cacheFor != c.text {
		c.tree, c.parseErr = schema.Parse(c.text)
		c.cacheFor, c.cached = c.text, true
	}
	return c.tree, c.parseErr
}

// SetText replaces the text verbatim, as the raw editor does. The controller
// falls back to raw mode when the new text does not parse.
func (c *Controller) SetText(text string) {
	c.commit(text)
	if c.mode == ModeVisual && !c.VisualAvailable() {
		c.mode = ModeRaw
	}
}

// SetMode switches editors. Switching never rewrites the text.
func (c *Controller) SetMode(m Mode) error {
	if m == ModeVisual && !c.VisualAvailable() {
		return ErrVisualUnavailable
	}
	c.mode = m
	return nil
}

// Root returns the root field of the current tree. Edits made through it, or
// through any field reached from it, are committed to the text. An edit that
// leaves the tree unchanged does not touch the text.
func (c *Controller) Root() (Field, error) {
	if c.mode != ModeVisual {
		return Field{}, ErrNotVisual
	}
	tree, err := c.Tree()
	if err != nil {
		return Field{}, err
	}
	return NewField(nil, "", tree, false, 0, Handlers{
		OnUpdate: func(n schema.Node) {
			if schema.Equal(n, tree) {
				return
			}
			c.commit(schema.Serialize(n))
		},
	}), nil
}

// Apply runs one visual edit against the current tree.
func (c *Controller) Apply(e Edit) error {
	root, err := c.Root()
	if err != nil {
		return err
	}
	return e.apply(root)
}

func (c *Controller) commit(text string) {
	c.text = text
	if c.onChange != nil {
		c.onChange(text)
	}
}
