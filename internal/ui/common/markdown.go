package common

import (
	"charm.land/glamour/v2"
	"github.com/charmbracelet/taste/internal/ui/styles"
)

// MarkdownRenderer returns a glamour [glamour.TermRenderer] configured
// with the given styles and width.
func MarkdownRenderer(sty *styles.Styles, width int) *glamour.TermRenderer {
	r, _ := glamour.NewTermRenderer(
		glamour.WithStyles(sty.Markdown),
		glamour.WithWordWrap(width),
	)
	return r
}
