// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Shapeshyft

// Package editor implements the dual-mode schema editor: a Controller that
// keeps the document text, and a tree of Fields through which visual edits
// are made. Each Field holds a snapshot of its node and reports changes to
// its parent, which rebuilds its own node and reports further up until the
// root serializes the new document.
package editor
