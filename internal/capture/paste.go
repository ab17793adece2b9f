package capture

import (
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/taste/internal/flavor"
)

// FromPaste normalizes a bracketed terminal paste into a snapshot.
// Terminal pastes carry a single textual body, so richer flavors are
// synthesized from it: markup is sniffed into the html flavor, and a
// paste consisting entirely of file paths also yields the uri-list
// flavor, the way file managers put files on the clipboard.
func FromPaste(text string) Snapshot {
	snap := Snapshot{
		Items:  []flavor.Item{},
		Source: "paste",
		Taken:  time.Now(),
	}
	if text == "" {
		return snap
	}

	if paths := parsePastedPaths(text); len(paths) > 0 {
		snap.Items = append(snap.Items, flavor.Item{
			Type: flavor.TypeURIList,
			Data: uriList(paths),
		})
	}
	if ct := http.DetectContentType([]byte(text)); strings.HasPrefix(ct, flavor.TypeHTML) {
		snap.Items = append(snap.Items, flavor.Item{
			Type: flavor.TypeHTML,
			Data: text,
		})
	}
	snap.Items = append(snap.Items, flavor.Item{
		Type: flavor.TypePlain,
		Data: text,
	})
	return snap
}

// parsePastedPaths interprets the pasted text as a list of file paths and
// returns them when every candidate exists on disk, nil otherwise.
func parsePastedPaths(s string) []string {
	s = strings.TrimSpace(s)

	// NOTE: Rio adds NULL characters on Windows for some reason.
	s = strings.ReplaceAll(s, "\x00", "")

	var candidates []string
	switch {
	case statAll(strings.Split(s, "\n")):
		return strings.Split(s, "\n")
	case os.Getenv("WT_SESSION") != "":
		candidates = windowsTerminalPaths(s)
	default:
		candidates = unixPaths(s)
	}

	if len(candidates) == 0 || !statAll(candidates) {
		return nil
	}
	return candidates
}

func statAll(paths []string) bool {
	for _, path := range paths {
		if info, err := os.Stat(path); err != nil || info.IsDir() {
			return false
		}
	}
	return true
}

// windowsTerminalPaths splits the quoted path list Windows Terminal
// produces when files are dragged or pasted.
func windowsTerminalPaths(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	var (
		paths    []string
		current  strings.Builder
		inQuotes = false
	)
	for i := range len(s) {
		ch := s[i]
		switch {
		case ch == '"':
			if inQuotes {
				if current.Len() > 0 {
					paths = append(paths, current.String())
					current.Reset()
				}
				inQuotes = false
			} else {
				inQuotes = true
			}
		case inQuotes:
			current.WriteByte(ch)
		case ch != ' ':
			// Text outside quotes means this is not a path list.
			return nil
		}
	}

	if current.Len() > 0 && !inQuotes {
		paths = append(paths, current.String())
	}
	if inQuotes {
		return nil
	}
	return paths
}

// unixPaths splits a space-separated path list with backslash escapes,
// the format produced by dragging files into most terminals.
func unixPaths(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	var (
		paths   []string
		current strings.Builder
		escaped = false
	)
	for i := range len(s) {
		ch := s[i]
		switch {
		case escaped:
			current.WriteByte(ch)
			escaped = false
		case ch == '\\':
			if i == len(s)-1 {
				current.WriteByte(ch)
			} else {
				escaped = true
			}
		case ch == ' ':
			if current.Len() > 0 {
				paths = append(paths, current.String())
				current.Reset()
			}
		default:
			current.WriteByte(ch)
		}
	}

	if escaped {
		current.WriteByte('\\')
	}
	if current.Len() > 0 {
		paths = append(paths, current.String())
	}
	return paths
}

func uriList(paths []string) string {
	var b strings.Builder
	for i, p := range paths {
		if abs, err := filepath.Abs(p); err == nil {
			p = abs
		}
		u := url.URL{Scheme: "file", Path: filepath.ToSlash(p)}
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(u.String())
	}
	return b.String()
}
