package capture

import (
	"errors"
	"log/slog"
)

var errUnsupported = errors.New("clipboard access is not supported on this platform")

// Backends returns every backend compiled into this build, in preference
// order. Tool backends that can enumerate targets come first so rich
// flavors are not flattened to plain text by a simpler API.
func Backends() []Backend {
	return []Backend{
		newWaylandBackend(),
		newX11Backend(),
		newNativeBackend(),
		newDisplayBackend(),
		newDarwinBackend(),
		newWindowsBackend(),
		newFallbackBackend(),
	}
}

// Detect picks the backend to read through. A non-empty name forces that
// backend; otherwise the first available one wins, falling back to the
// plain text backend when nothing else is usable.
func Detect(name string) Backend {
	all := Backends()
	if name != "" {
		for _, b := range all {
			if b.Name() == name {
				return b
			}
		}
		slog.Warn("Unknown clipboard backend, autodetecting", "name", name)
	}
	for _, b := range all {
		if b.Available() {
			return b
		}
	}
	return all[len(all)-1]
}
