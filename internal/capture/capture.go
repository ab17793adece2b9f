// Package capture reads the operating system clipboard and normalizes
// every representation it holds into flavor items. Clipboards are
// multi-flavor: a single copy action typically stores the same content
// under several MIME types at once, and inspecting all of them is the
// whole point of this program.
package capture

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/taste/internal/flavor"
)

// fallbackType labels flavors whose host type identifier is missing.
// Item types are never empty.
const fallbackType = "application/octet-stream"

// Entry is one raw flavor as exposed by a backend, before normalization.
type Entry interface {
	// Type returns the host-reported type identifier.
	Type() string
	// Text returns the textual form of the flavor, which may be empty.
	Text() string
	// Blob returns the binary payload, when the backend can produce one.
	Blob() ([]byte, bool)
}

// Backend provides access to a host clipboard.
type Backend interface {
	// Name identifies the backend in logs and the UI.
	Name() string
	// Available reports whether the backend can run on this system.
	Available() bool
	// Entries enumerates every flavor currently on the clipboard, in the
	// order the host reports them.
	Entries() ([]Entry, error)
}

// Snapshot is the result of reading the clipboard once: every flavor it
// held at that moment, in host order.
type Snapshot struct {
	Items  []flavor.Item `json:"items"`
	Source string        `json:"source"`
	Taken  time.Time     `json:"taken"`
}

// CompletedMsg announces a finished capture. It carries the whole
// snapshot; receivers replace whatever list they held before.
type CompletedMsg struct {
	Snapshot Snapshot
}

// Take reads the clipboard through the given backend and normalizes the
// result. A failed or empty read yields a snapshot with zero items; there
// is no error state distinct from an empty clipboard.
func Take(b Backend) Snapshot {
	snap := Snapshot{
		Items:  []flavor.Item{},
		Source: b.Name(),
		Taken:  time.Now(),
	}

	entries, err := b.Entries()
	if err != nil {
		slog.Warn("Clipboard read failed", "backend", b.Name(), "error", err)
		return snap
	}

	for _, e := range entries {
		item := flavor.Item{
			Type: e.Type(),
			Data: e.Text(),
		}
		if item.Type == "" {
			item.Type = fallbackType
		}
		if blob, ok := e.Blob(); ok {
			item.File = blob
		}
		snap.Items = append(snap.Items, item)
	}
	return snap
}

type entry struct {
	typ     string
	text    string
	blob    []byte
	hasBlob bool
}

func (e entry) Type() string { return e.typ }

func (e entry) Text() string { return e.text }

func (e entry) Blob() ([]byte, bool) { return e.blob, e.hasBlob }

// TextEntry builds an entry for a purely textual flavor.
func TextEntry(typ, text string) Entry {
	return entry{typ: typ, text: text}
}

// BinaryEntry builds an entry carrying a binary payload.
func BinaryEntry(typ string, blob []byte) Entry {
	return entry{typ: typ, blob: blob, hasBlob: true}
}
