// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Shapeshyft

package schema

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/google/jsonschema-go/jsonschema"
)

// ErrInvalidSchema indicates text that parses but is not a usable JSON Schema.
var ErrInvalidSchema = errors.New("invalid JSON Schema")

// Check is the submit-time validation a caller runs before sending the text
// in a request. It requires a parseable document and a JSON Schema that
// resolves without errors.
func Check(text string) error {
	if _, err := Parse(text); err != nil {
		return err
	}
	if strings.TrimSpace(text) == "" {
		text = DefaultText
	}
	var s jsonschema.Schema
	if err := json.Unmarshal([]byte(text), &s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSchema, err)
	}
	if _, err := s.Resolve(nil); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSchema, err)
	}
	return nil
}
