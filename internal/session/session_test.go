// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Shapeshyft

package session

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnqh/shapeshyft-app-sub000/internal/config"
	"github.com/johnqh/shapeshyft-app-sub000/internal/schema"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	dir := t.TempDir()

	ctx, err := Load(context.Background(), dir, Options{})
	require.NoError(t, err)

	sc := From(ctx)
	require.NotNil(t, sc)
	assert.Equal(t, config.Default(), sc.Config)
	assert.Equal(t, logrus.InfoLevel, sc.Logger.GetLevel())
	assert.Nil(t, sc.Document)
}

func TestLoad_ConfigFileInDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, config.FileName, "version: 1\nlog_level: debug\neditor:\n  expand_depth: 5\n")

	ctx, err := Load(context.Background(), dir, Options{})
	require.NoError(t, err)

	sc := From(ctx)
	assert.Equal(t, 5, sc.Config.Editor.ExpandDepth)
	assert.Equal(t, logrus.DebugLevel, sc.Logger.GetLevel())
}

func TestLoad_LogLevelOverride(t *testing.T) {
	dir := t.TempDir()

	ctx, err := Load(context.Background(), dir, Options{LogLevel: "error"})
	require.NoError(t, err)
	assert.Equal(t, logrus.ErrorLevel, From(ctx).Logger.GetLevel())
}

func TestLoad_InvalidConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "custom.yaml", "version: 2\n")

	_, err := Load(context.Background(), dir, Options{ConfigPath: path})
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = Load(context.Background(), dir, Options{ConfigPath: filepath.Join(dir, "missing.yaml")})
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad_Document(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "user.json", schema.DefaultText+"\n")

	ctx, err := Load(context.Background(), dir, Options{DocumentPath: "user.json"})
	require.NoError(t, err)

	doc := From(ctx).Document
	require.NotNil(t, doc)
	assert.Equal(t, filepath.Join(dir, "user.json"), doc.Path)
	assert.Equal(t, FormatJSON, doc.Format)
	assert.Equal(t, schema.DefaultText, doc.Text)
}

func TestLoad_DocumentNotFound(t *testing.T) {
	_, err := Load(context.Background(), t.TempDir(), Options{DocumentPath: "nope.json"})
	assert.ErrorIs(t, err, ErrDocumentNotFound)
}

func TestFrom_Empty(t *testing.T) {
	assert.Nil(t, From(context.Background()))
}

func TestRequireFromCommand(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())

	_, err := RequireFromCommand(cmd)
	assert.ErrorIs(t, err, ErrNotLoaded)

	ctx, err := Load(context.Background(), t.TempDir(), Options{})
	require.NoError(t, err)
	cmd.SetContext(ctx)

	sc, err := RequireFromCommand(cmd)
	require.NoError(t, err)
	assert.NotNil(t, sc.Config)

	_, err = RequireDocument(cmd)
	assert.ErrorIs(t, err, ErrNoDocument)
}

func TestPreRunLoad_Flags(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "alt.yaml", "version: 1\neditor:\n  expand_depth: 1\n")
	docPath := writeFile(t, dir, "doc.json", schema.DefaultText)

	cmd := &cobra.Command{}
	cmd.Flags().String(ConfigFlag, "", "")
	cmd.Flags().String(LogLevelFlag, "", "")
	require.NoError(t, cmd.Flags().Set(ConfigFlag, cfgPath))
	require.NoError(t, cmd.Flags().Set(LogLevelFlag, "warn"))

	require.NoError(t, PreRunLoad(cmd, []string{docPath}))

	sc, err := RequireDocument(cmd)
	require.NoError(t, err)
	assert.Equal(t, 1, sc.Config.Editor.ExpandDepth)
	assert.Equal(t, logrus.WarnLevel, sc.Logger.GetLevel())
	assert.Equal(t, docPath, sc.Document.Path)
}
