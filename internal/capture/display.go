//go:build linux && cgo

package capture

import (
	"os"
	"sync"

	"golang.design/x/clipboard"

	"github.com/charmbracelet/taste/internal/flavor"
)

// displayBackend talks to the display server selection protocol directly,
// without an external tool. Init fails on headless systems, so it is
// probed lazily and at most once.
type displayBackend struct {
	init func() error
}

func newDisplayBackend() Backend {
	return &displayBackend{init: sync.OnceValue(clipboard.Init)}
}

func (b *displayBackend) Name() string { return "display" }

func (b *displayBackend) Available() bool {
	if os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == "" {
		return false
	}
	return b.init() == nil
}

func (b *displayBackend) Entries() ([]Entry, error) {
	if err := b.init(); err != nil {
		return nil, err
	}
	var entries []Entry
	if txt := clipboard.Read(clipboard.FmtText); len(txt) > 0 {
		entries = append(entries, TextEntry(flavor.TypePlain, string(txt)))
	}
	if img := clipboard.Read(clipboard.FmtImage); len(img) > 0 {
		entries = append(entries, BinaryEntry(flavor.TypePNG, img))
	}
	return entries, nil
}
