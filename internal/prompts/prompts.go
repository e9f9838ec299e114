// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Shapeshyft

// Package prompts provides interactive terminal prompts and styled output
// for CLI commands.
package prompts

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/johnqh/shapeshyft-app-sub000/internal/schema"
)

var (
	successColor = lipgloss.Color("#27ca3f")
	mutedColor   = lipgloss.Color("#bababa")
	accentColor  = lipgloss.Color("#f9ca24")
	errorColor   = lipgloss.Color("#ff5f56")
)

// Theme returns the shared huh theme used across all CLI forms.
func Theme() *huh.Theme {
	theme := huh.ThemeBase16()
	theme.FieldSeparator = lipgloss.NewStyle().SetString("\n").MarginBottom(1)
	theme.Form.Base = theme.Form.Base.MarginTop(1)
	theme.Group.Base = theme.Group.Base.MarginTop(1)
	theme.Focused.Title = theme.Focused.Title.Foreground(accentColor)
	theme.Blurred.Title = theme.Blurred.Title.Foreground(mutedColor)
	return theme
}

// ResultField is a label-value pair for PrintResult.
type ResultField struct {
	Label string
	Value string
}

// PrintResult prints a styled summary with green checkmarks and gray labels.
func PrintResult(w io.Writer, fields []ResultField, successMsg string) {
	success := lipgloss.NewStyle().Foreground(successColor)
	label := lipgloss.NewStyle().Foreground(mutedColor)
	check := success.Render("✓")

	_, _ = fmt.Fprintln(w)
	for _, f := range fields {
		_, _ = fmt.Fprintf(w, "%s %s %s\n", check, label.Render(f.Label+":"), f.Value)
	}

	if successMsg != "" {
		_, _ = fmt.Fprintln(w, success.Render("\n"+successMsg))
	}
}

// PrintWarning prints msg marked as a problem.
func PrintWarning(w io.Writer, msg string) {
	style := lipgloss.NewStyle().Foreground(errorColor)
	_, _ = fmt.Fprintf(w, "%s %s\n", style.Render("✗"), msg)
}

func identifierValidator(existing []string) func(string) error {
	return func(s string) error {
		if s == "" {
			return errors.New("name is required")
		}
		if !schema.ValidIdentifier(s) {
			return errors.New("must contain only letters, numbers, underscores")
		}
		if slices.Contains(existing, s) {
			return fmt.Errorf("%q already exists", s)
		}
		return nil
	}
}

func requiredValidator(field string) func(string) error {
	return func(s string) error {
		if s == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}
