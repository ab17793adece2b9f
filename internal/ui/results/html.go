package results

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/taste/internal/ansiext"
	"github.com/charmbracelet/taste/internal/flavor"
	"github.com/charmbracelet/taste/internal/ui/common"
	"github.com/charmbracelet/taste/internal/ui/styles"
	"github.com/charmbracelet/x/ansi"
	"github.com/google/uuid"
)

// HTMLItem renders text/html items. By default the markup is interpreted
// and rendered for the terminal; the "Show code" toggle switches to the
// literal source with syntax highlighting.
type HTMLItem struct {
	*cachedItem
	*focusableItem

	id       string
	position int
	item     flavor.Item
	sty      *styles.Styles

	showCode bool
}

// NewHTMLItem creates a new [HTMLItem].
func NewHTMLItem(sty *styles.Styles, position int, itm flavor.Item) Item {
	return &HTMLItem{
		cachedItem:    &cachedItem{},
		focusableItem: &focusableItem{},
		id:            uuid.NewString(),
		position:      position,
		item:          itm,
		sty:           sty,
	}
}

// ID implements [Item].
func (h *HTMLItem) ID() string {
	return h.id
}

// DisplayName implements [Renderer].
func (h *HTMLItem) DisplayName() string {
	return "HTML"
}

// WrapperClass implements [Renderer].
func (h *HTMLItem) WrapperClass() string {
	if h.showCode {
		return wrapperPlain
	}
	return wrapperDefault
}

// ShowCode returns whether the show code toggle is on.
func (h *HTMLItem) ShowCode() bool {
	return h.showCode
}

// RenderControls implements [Renderer].
func (h *HTMLItem) RenderControls(width int) string {
	return renderToggle(h.sty, h.showCode, "Show code", "c")
}

// RenderContent implements [Renderer].
func (h *HTMLItem) RenderContent(width int) string {
	if h.item.Data == "" {
		return ""
	}
	// Clipboard markup is untrusted; escape control characters before
	// either path touches it.
	source := ansiext.Escape(h.item.Data)
	if h.showCode {
		return h.renderSource(source)
	}
	return h.renderInterpreted(source, width)
}

// renderSource renders the literal markup with syntax highlighting.
func (h *HTMLItem) renderSource(source string) string {
	highlighted, err := common.SyntaxHighlight(h.sty, source, "clipboard.html", h.sty.BgBaseLighter)
	if err != nil {
		return source
	}
	return highlighted
}

// renderInterpreted converts the markup to markdown and renders it for
// the terminal. When conversion fails the extracted text is shown, and
// failing that the raw markup.
func (h *HTMLItem) renderInterpreted(source string, width int) string {
	if md, err := common.HTMLToMarkdown(source); err == nil {
		renderer := common.MarkdownRenderer(h.sty, width)
		if rendered, err := renderer.Render(md); err == nil {
			return strings.Trim(rendered, "\n")
		}
	}
	if text, err := common.HTMLToText(source); err == nil && text != "" {
		return ansi.Wordwrap(text, width, "")
	}
	return ansi.Hardwrap(source, width, true)
}

// RawRender renders the item content without the frame style.
func (h *HTMLItem) RawRender(width int) string {
	cappedWidth := cappedItemWidth(width)
	content, _, ok := h.getCachedRender(cappedWidth)
	if ok {
		return content
	}
	content = renderFrame(h.sty, cappedWidth, h.position, h.item.MediaType(), h)
	h.setCachedRender(content, cappedWidth, lipgloss.Height(content))
	return content
}

// Render implements [Item].
func (h *HTMLItem) Render(width int) string {
	style := h.sty.Item.Blurred
	if h.focused {
		style = h.sty.Item.Focused
	}
	return style.Render(h.RawRender(width))
}

// HandleKeyEvent implements [KeyEventHandler].
func (h *HTMLItem) HandleKeyEvent(key tea.KeyMsg) (bool, tea.Cmd) {
	if key.String() == "c" {
		h.showCode = !h.showCode
		h.clearCache()
		return true, controlChanged()
	}
	return false, nil
}
