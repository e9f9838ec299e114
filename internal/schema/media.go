// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Shapeshyft

package schema

import "strings"

// DisplayType is the type shown to users: a node Type or one of the media
// pseudo-types, which are encoded as binary strings.
type DisplayType string

// Display types. The first six mirror Type.
const (
	DisplayString  DisplayType = "string"
	DisplayNumber  DisplayType = "number"
	DisplayInteger DisplayType = "integer"
	DisplayBoolean DisplayType = "boolean"
	DisplayObject  DisplayType = "object"
	DisplayArray   DisplayType = "array"
	DisplayImage   DisplayType = "image"
	DisplayAudio   DisplayType = "audio"
	DisplayVideo   DisplayType = "video"
)

// BinaryFormat is the string format used by media nodes.
const BinaryFormat = "binary"

// DisplayTypes lists the type selector options in order.
func DisplayTypes() []DisplayType {
	return []DisplayType{
		DisplayString, DisplayNumber, DisplayInteger, DisplayBoolean,
		DisplayObject, DisplayArray, DisplayImage, DisplayAudio, DisplayVideo,
	}
}

// ParseDisplayType returns the display type named s.
func ParseDisplayType(s string) (DisplayType, bool) {
	for _, dt := range DisplayTypes() {
		if string(dt) == s {
			return dt, true
		}
	}
	return "", false
}

// IsMedia reports whether dt is image, audio or video.
func (dt DisplayType) IsMedia() bool {
	return dt == DisplayImage || dt == DisplayAudio || dt == DisplayVideo
}

// DisplayTypeOf projects a node to its display type. A string node with
// format "binary" and a contentMediaType of "image/...", "audio/..." or
// "video/..." is shown as that media kind. Opaque nodes return "".
func DisplayTypeOf(n Node) DisplayType {
	if n.Type() == TypeString && n.Format() == BinaryFormat {
		for _, kind := range []DisplayType{DisplayImage, DisplayAudio, DisplayVideo} {
			if strings.HasPrefix(n.ContentMediaType(), string(kind)+"/") {
				return kind
			}
		}
	}
	return DisplayType(n.Type())
}

// MediaNode returns the string encoding of a media kind:
// {type: string, format: binary, contentMediaType: "<kind>/*"}.
// A non-empty description is attached.
func MediaNode(kind DisplayType, description string) Node {
	n := StringWithFormat(BinaryFormat, string(kind)+"/*")
	if description != "" {
		n = n.WithDescription(description)
	}
	return n
}

// ResetForDisplayType returns a fresh node for dt that keeps only the
// description of the node it replaces. Objects start without properties and
// arrays with {type: string} items.
func ResetForDisplayType(dt DisplayType, prev Node) Node {
	var n Node
	if dt.IsMedia() {
		n = StringWithFormat(BinaryFormat, string(dt)+"/*")
	} else {
		n = OfType(Type(dt))
	}
	if prev.HasDescription() {
		n = n.WithDescription(prev.Description())
	}
	return n
}
