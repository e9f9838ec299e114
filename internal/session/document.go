// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Shapeshyft

package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/johnqh/shapeshyft-app-sub000/internal/config"
	"github.com/johnqh/shapeshyft-app-sub000/internal/schema"
)

var (
	// ErrDocumentNotFound indicates the schema file does not exist.
	ErrDocumentNotFound = errors.New("schema file not found")

	// ErrReadDocument indicates the schema file could not be read or
	// converted to JSON.
	ErrReadDocument = errors.New("failed to read schema file")

	// ErrWriteDocument indicates the schema file could not be written.
	ErrWriteDocument = errors.New("failed to write schema file")
)

// Format is the on-disk format of a schema file.
type Format string

// Supported formats.
const (
	FormatJSON Format = config.FormatJSON
	FormatYAML Format = config.FormatYAML
)

// FormatFromPath picks the format from the file extension. Unknown
// extensions report false.
func FormatFromPath(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, true
	case ".yaml", ".yml":
		return FormatYAML, true
	default:
		return "", false
	}
}

// Document is a schema file. Text is always JSON: YAML files are converted
// on load and converted back on Save.
type Document struct {
	Path   string
	Format Format
	Text   string
}

// LoadDocument reads the schema file at path. Files without a recognised
// extension are read as JSON.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by the user
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrDocumentNotFound, path)
		}
		return nil, fmt.Errorf("%w: %v", ErrReadDocument, err)
	}

	format, ok := FormatFromPath(path)
	if !ok {
		format = FormatJSON
	}

	doc := &Document{Path: path, Format: format}
	if format == FormatYAML {
		text, err := schema.FromYAML(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrReadDocument, err)
		}
		doc.Text = text
		return doc, nil
	}

	doc.Text = strings.TrimSuffix(string(data), "\n")
	return doc, nil
}

// NewDocument returns an unsaved document for path. When the extension
// does not name a format, fallback is used.
func NewDocument(path string, fallback Format) *Document {
	format, ok := FormatFromPath(path)
	if !ok {
		format = fallback
	}
	return &Document{Path: path, Format: format}
}

// Save stores text as the document content and writes it in the document's
// format. JSON text is written verbatim, followed by a newline.
func (d *Document) Save(text string) error {
	var data []byte
	switch d.Format {
	case FormatYAML:
		out, err := schema.ToYAML(text)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrWriteDocument, err)
		}
		data = out
	default:
		data = []byte(text)
		if text != "" && !strings.HasSuffix(text, "\n") {
			data = append(data, '\n')
		}
	}

	if err := os.WriteFile(d.Path, data, 0o600); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteDocument, err)
	}
	d.Text = text
	return nil
}
