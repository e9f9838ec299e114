// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Shapeshyft

// Package logging builds the CLI logger.
package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// DefaultLevel is used when no level, or an unknown one, is configured.
const DefaultLevel = logrus.InfoLevel

// New returns a text logger writing to stderr at level. Unknown levels fall
// back to DefaultLevel.
func New(level string) *logrus.Logger {
	return NewWithOutput(level, os.Stderr)
}

// NewWithOutput is New with an explicit destination.
func NewWithOutput(level string, out io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = DefaultLevel
	}
	logger.SetLevel(lvl)

	return logger
}

// Discard returns a logger that drops everything.
func Discard() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
