//go:build (linux || darwin || windows) && !arm && !386 && !ios && !android

package capture

import (
	"github.com/aymanbagabas/go-nativeclipboard"

	"github.com/charmbracelet/taste/internal/flavor"
)

// nativeBackend reads through the operating system clipboard API. Only
// the text and image flavors are reachable this way.
type nativeBackend struct{}

func newNativeBackend() Backend { return nativeBackend{} }

func (nativeBackend) Name() string { return "native" }

func (nativeBackend) Available() bool { return true }

func (nativeBackend) Entries() ([]Entry, error) {
	var entries []Entry
	if txt, err := nativeclipboard.Text.Read(); err == nil && len(txt) > 0 {
		entries = append(entries, TextEntry(flavor.TypePlain, string(txt)))
	}
	if img, err := nativeclipboard.Image.Read(); err == nil && len(img) > 0 {
		entries = append(entries, BinaryEntry(flavor.TypePNG, img))
	}
	return entries, nil
}
