// Package flavor holds the normalized clipboard item model. A single paste
// usually carries several representations of the same content, one per
// MIME type, and each becomes one [Item].
package flavor

import (
	"strings"
)

// Well-known clipboard MIME types.
const (
	TypePlain   = "text/plain"
	TypeHTML    = "text/html"
	TypeRTF     = "text/rtf"
	TypeURIList = "text/uri-list"
	TypeVCard   = "text/vcard"
	TypePNG     = "image/png"
	TypeJPEG    = "image/jpeg"
)

// Item is one flavor of the clipboard contents.
type Item struct {
	// Type is the MIME-style identifier reported by the host. Never empty.
	Type string `json:"type"`
	// Data is the textual representation. May be empty for binary-only
	// flavors.
	Data string `json:"data,omitempty"`
	// File is the binary payload, when the host could materialize one.
	File []byte `json:"file,omitempty"`
}

// MediaType returns the type identifier without parameters, lowercased, so
// "text/PLAIN; charset=utf-8" matches "text/plain".
func (i Item) MediaType() string {
	t := i.Type
	if idx := strings.IndexByte(t, ';'); idx >= 0 {
		t = t[:idx]
	}
	return strings.ToLower(strings.TrimSpace(t))
}

// Subtype returns the portion of the media type after the slash, such as
// "png" for "image/png".
func (i Item) Subtype() string {
	mt := i.MediaType()
	if idx := strings.IndexByte(mt, '/'); idx >= 0 {
		return mt[idx+1:]
	}
	return mt
}

// IsImage reports whether the item carries an image media type.
func (i Item) IsImage() bool {
	return strings.HasPrefix(i.MediaType(), "image/")
}

// HasFile reports whether a binary payload is available.
func (i Item) HasFile() bool {
	return i.File != nil
}
