package ansiext

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Escape replaces control characters with their Unicode control picture
// representation. Clipboard payloads are arbitrary bytes and must not be
// allowed to emit escape sequences into the terminal.
func Escape(content string) string {
	var sb strings.Builder
	sb.Grow(len(content))
	for _, r := range content {
		switch {
		case r >= 0 && r <= 0x1f && r != '\n' && r != '\t':
			sb.WriteRune('␀' + r)
		case r == ansi.DEL:
			sb.WriteRune('␡')
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
