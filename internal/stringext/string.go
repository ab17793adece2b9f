// Package stringext provides small string helpers shared across the UI.
package stringext

import "strings"

// NormalizeNewlines rewrites carriage returns to line feeds so content
// renders consistently regardless of the platform that produced it. Both
// CRLF pairs and bare CRs become a single LF.
func NormalizeNewlines(content string) string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	return content
}

// FirstLine returns the content up to the first line feed.
func FirstLine(content string) string {
	if i := strings.IndexByte(content, '\n'); i >= 0 {
		return content[:i]
	}
	return content
}
