package capture

import (
	"github.com/atotto/clipboard"

	"github.com/charmbracelet/taste/internal/flavor"
)

// fallbackBackend is the lowest common denominator: plain text only, but
// it works almost everywhere.
type fallbackBackend struct{}

func newFallbackBackend() Backend { return fallbackBackend{} }

func (fallbackBackend) Name() string { return "basic" }

func (fallbackBackend) Available() bool { return !clipboard.Unsupported }

func (fallbackBackend) Entries() ([]Entry, error) {
	txt, err := clipboard.ReadAll()
	if err != nil {
		return nil, err
	}
	if txt == "" {
		return nil, nil
	}
	return []Entry{TextEntry(flavor.TypePlain, txt)}, nil
}
