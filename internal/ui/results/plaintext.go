package results

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/taste/internal/ansiext"
	"github.com/charmbracelet/taste/internal/flavor"
	"github.com/charmbracelet/taste/internal/stringext"
	"github.com/charmbracelet/taste/internal/ui/styles"
	"github.com/charmbracelet/x/ansi"
	"github.com/google/uuid"
)

// PlainTextItem renders text/plain items. By default the text flows:
// whitespace runs collapse and the result wraps at the content width.
// The "Preformatted" toggle switches to a verbatim block that keeps the
// original line structure and spacing.
//
// Line endings are normalized to LF at render time only. The item data
// itself is never modified.
type PlainTextItem struct {
	*cachedItem
	*focusableItem

	id       string
	position int
	item     flavor.Item
	sty      *styles.Styles

	preformatted bool
}

// NewPlainTextItem creates a new [PlainTextItem].
func NewPlainTextItem(sty *styles.Styles, position int, itm flavor.Item) Item {
	return &PlainTextItem{
		cachedItem:    &cachedItem{},
		focusableItem: &focusableItem{},
		id:            uuid.NewString(),
		position:      position,
		item:          itm,
		sty:           sty,
	}
}

// ID implements [Item].
func (p *PlainTextItem) ID() string {
	return p.id
}

// DisplayName implements [Renderer].
func (p *PlainTextItem) DisplayName() string {
	return "Plain Text"
}

// WrapperClass implements [Renderer].
func (p *PlainTextItem) WrapperClass() string {
	return wrapperPlain
}

// Preformatted returns whether the preformatted toggle is on.
func (p *PlainTextItem) Preformatted() bool {
	return p.preformatted
}

// RenderControls implements [Renderer].
func (p *PlainTextItem) RenderControls(width int) string {
	return renderToggle(p.sty, p.preformatted, "Preformatted", "p")
}

// RenderContent implements [Renderer].
func (p *PlainTextItem) RenderContent(width int) string {
	if p.item.Data == "" {
		return ""
	}
	text := ansiext.Escape(stringext.NormalizeNewlines(p.item.Data))
	if p.preformatted {
		return text
	}
	return ansi.Wordwrap(strings.Join(strings.Fields(text), " "), width, "")
}

// RawRender renders the item content without the frame style.
func (p *PlainTextItem) RawRender(width int) string {
	cappedWidth := cappedItemWidth(width)
	content, _, ok := p.getCachedRender(cappedWidth)
	if ok {
		return content
	}
	content = renderFrame(p.sty, cappedWidth, p.position, p.item.MediaType(), p)
	p.setCachedRender(content, cappedWidth, lipgloss.Height(content))
	return content
}

// Render implements [Item].
func (p *PlainTextItem) Render(width int) string {
	style := p.sty.Item.Blurred
	if p.focused {
		style = p.sty.Item.Focused
	}
	return style.Render(p.RawRender(width))
}

// HandleKeyEvent implements [KeyEventHandler].
func (p *PlainTextItem) HandleKeyEvent(key tea.KeyMsg) (bool, tea.Cmd) {
	if key.String() == "p" {
		p.preformatted = !p.preformatted
		p.clearCache()
		return true, controlChanged()
	}
	return false, nil
}
