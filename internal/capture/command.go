package capture

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/charmbracelet/taste/internal/flavor"
)

// commandBackend shells out to a platform clipboard tool. On X11 and
// Wayland the tool can enumerate every target held by the selection
// owner, which makes this the only backend that surfaces rich flavors
// like text/html and text/uri-list next to the plain text one.
type commandBackend struct {
	name  string
	probe string // binary that must be on PATH
	env   string // environment variable that must be set, if any
	list  func() ([]string, error)
	read  func(typ string) ([]byte, error)
}

func (b *commandBackend) Name() string { return b.name }

func (b *commandBackend) Available() bool {
	if b.env != "" && os.Getenv(b.env) == "" {
		return false
	}
	_, err := exec.LookPath(b.probe)
	return err == nil
}

func (b *commandBackend) Entries() ([]Entry, error) {
	targets, err := b.list()
	if err != nil {
		return nil, fmt.Errorf("listing clipboard targets: %w", err)
	}

	var entries []Entry
	for _, target := range normalizeTargets(targets) {
		out, err := b.read(target)
		if err != nil {
			// A vanished or unreadable target degrades to skipping that
			// one flavor, never the whole snapshot.
			slog.Debug("Clipboard target read failed",
				"backend", b.name, "target", target, "error", err)
			continue
		}
		if readsBinary(target) {
			entries = append(entries, BinaryEntry(target, out))
		} else {
			entries = append(entries, TextEntry(target, string(out)))
		}
	}
	return entries, nil
}

// readsBinary reports whether the flavor is captured as a binary payload
// rather than text. Images and vCards are handed to their renderers as
// raw bytes and decoded there.
func readsBinary(typ string) bool {
	item := flavor.Item{Type: typ}
	return item.IsImage() || item.MediaType() == flavor.TypeVCard
}

// normalizeTargets filters a raw X11/Wayland target list down to
// MIME-shaped entries, keeping host order and dropping exact duplicates.
// Selection-protocol targets such as TARGETS and TIMESTAMP carry no
// content. UTF8_STRING and STRING stand in for text/plain on clipboards
// that advertise no MIME text target at all.
func normalizeTargets(targets []string) []string {
	hasPlain := false
	for _, t := range targets {
		if (flavor.Item{Type: t}).MediaType() == flavor.TypePlain {
			hasPlain = true
			break
		}
	}

	seen := make(map[string]struct{}, len(targets))
	out := make([]string, 0, len(targets))
	for _, t := range targets {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if !strings.Contains(t, "/") {
			if hasPlain || (t != "UTF8_STRING" && t != "STRING") {
				continue
			}
			t = flavor.TypePlain
			hasPlain = true
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

func newWaylandBackend() *commandBackend {
	return &commandBackend{
		name:  "wl-clipboard",
		probe: "wl-paste",
		env:   "WAYLAND_DISPLAY",
		list: func() ([]string, error) {
			out, err := exec.Command("wl-paste", "--list-types").Output()
			if err != nil {
				return nil, err
			}
			return splitLines(string(out)), nil
		},
		read: func(typ string) ([]byte, error) {
			return exec.Command("wl-paste", "--no-newline", "--type", typ).Output()
		},
	}
}

func newX11Backend() *commandBackend {
	return &commandBackend{
		name:  "xclip",
		probe: "xclip",
		env:   "DISPLAY",
		list: func() ([]string, error) {
			out, err := exec.Command("xclip", "-selection", "clipboard", "-t", "TARGETS", "-o").Output()
			if err != nil {
				return nil, err
			}
			return splitLines(string(out)), nil
		},
		read: func(typ string) ([]byte, error) {
			return exec.Command("xclip", "-selection", "clipboard", "-t", typ, "-o").Output()
		},
	}
}

func newDarwinBackend() *commandBackend {
	return &commandBackend{
		name:  "pbpaste",
		probe: "pbpaste",
		list: func() ([]string, error) {
			// pbpaste cannot enumerate pasteboard classes, so only the
			// textual flavor is reachable through it.
			return []string{flavor.TypePlain}, nil
		},
		read: func(string) ([]byte, error) {
			return exec.Command("pbpaste").Output()
		},
	}
}

func newWindowsBackend() *commandBackend {
	return &commandBackend{
		name:  "powershell",
		probe: "powershell",
		list: func() ([]string, error) {
			return []string{flavor.TypePlain}, nil
		},
		read: func(string) ([]byte, error) {
			return exec.Command("powershell", "-NoProfile", "-Command", "Get-Clipboard", "-Raw").Output()
		},
	}
}

func splitLines(s string) []string {
	var lines []string
	for line := range strings.SplitSeq(strings.TrimRight(s, "\n"), "\n") {
		lines = append(lines, strings.TrimRight(line, "\r"))
	}
	return lines
}
