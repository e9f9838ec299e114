// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Shapeshyft

// Package markdown renders object schemas as markdown reference pages.
package markdown

import (
	"embed"
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/johnqh/shapeshyft-app-sub000/internal/editor"
	"github.com/johnqh/shapeshyft-app-sub000/internal/schema"
)

//go:embed markdown.md.tmpl
var tmplFS embed.FS

var tmpl = template.Must(template.New("markdown.md.tmpl").ParseFS(tmplFS, "markdown.md.tmpl"))

type page struct {
	Title       string
	Description string
	Sections    []section
}

// section is one object of the schema: the root, a nested object property,
// or the object items of an array.
type section struct {
	Path        string
	Description string
	Fields      []field
}

type field struct {
	Name        string
	Type        string
	Required    bool
	Description string
}

// Render writes the markdown page for the tree under root. Each object gets
// its own table, in the order objects are first reached.
func Render(w io.Writer, title string, root editor.Field) error {
	p := page{Title: title, Description: escape(root.Node.Description())}

	queue := []editor.Field{root}
	for len(queue) > 0 {
		obj := queue[0]
		queue = queue[1:]

		s := section{Path: obj.Path.String()}
		if !obj.IsRoot() {
			s.Description = escape(obj.Node.Description())
		}
		for _, f := range obj.Children() {
			s.Fields = append(s.Fields, field{
				Name:        f.Name,
				Type:        typeOf(f.Node),
				Required:    f.Required,
				Description: escape(f.Node.Description()),
			})
			if f.Node.Type() == schema.TypeObject || f.Node.HasObjectItems() {
				queue = append(queue, f)
			}
		}
		if obj.Node.Type() == schema.TypeArray {
			s.Path += "[]"
		}
		p.Sections = append(p.Sections, s)
	}

	if err := tmpl.ExecuteTemplate(w, "markdown.md.tmpl", p); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}
	return nil
}

// typeOf is the type column: the display type, with the string format or
// media type and array item types spelled out.
func typeOf(n schema.Node) string {
	if n.IsOpaque() {
		return "unrecognized"
	}
	dt := schema.DisplayTypeOf(n)
	switch {
	case dt.IsMedia():
		return fmt.Sprintf("%s (`%s`)", dt, n.ContentMediaType())
	case dt == schema.DisplayString && n.Format() != "":
		return fmt.Sprintf("string (%s)", n.Format())
	case dt == schema.DisplayArray:
		items, _ := n.Items()
		return "array of " + typeOf(items)
	}
	return string(dt)
}

var escaper = strings.NewReplacer("|", `\|`, "\r\n", " ", "\n", " ")

func escape(s string) string {
	return escaper.Replace(s)
}
