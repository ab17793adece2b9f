package results

import (
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/taste/internal/ansiext"
	"github.com/charmbracelet/taste/internal/flavor"
	"github.com/charmbracelet/taste/internal/ui/styles"
	"github.com/charmbracelet/x/ansi"
	"github.com/google/uuid"
)

// RichTextItem renders text/rtf items. RTF markup is not interpreted;
// the source is shown verbatim.
type RichTextItem struct {
	*cachedItem
	*focusableItem

	id       string
	position int
	item     flavor.Item
	sty      *styles.Styles
}

// NewRichTextItem creates a new [RichTextItem].
func NewRichTextItem(sty *styles.Styles, position int, itm flavor.Item) Item {
	return &RichTextItem{
		cachedItem:    &cachedItem{},
		focusableItem: &focusableItem{},
		id:            uuid.NewString(),
		position:      position,
		item:          itm,
		sty:           sty,
	}
}

// ID implements [Item].
func (r *RichTextItem) ID() string {
	return r.id
}

// DisplayName implements [Renderer].
func (r *RichTextItem) DisplayName() string {
	return "Rich Text Format"
}

// WrapperClass implements [Renderer].
func (r *RichTextItem) WrapperClass() string {
	return wrapperDefault
}

// RenderControls implements [Renderer].
func (r *RichTextItem) RenderControls(width int) string {
	return ""
}

// RenderContent implements [Renderer].
func (r *RichTextItem) RenderContent(width int) string {
	if r.item.Data == "" {
		return ""
	}
	return r.sty.Item.RawData.Render(ansi.Hardwrap(ansiext.Escape(r.item.Data), width, true))
}

// RawRender renders the item content without the frame style.
func (r *RichTextItem) RawRender(width int) string {
	cappedWidth := cappedItemWidth(width)
	content, _, ok := r.getCachedRender(cappedWidth)
	if ok {
		return content
	}
	content = renderFrame(r.sty, cappedWidth, r.position, r.item.MediaType(), r)
	r.setCachedRender(content, cappedWidth, lipgloss.Height(content))
	return content
}

// Render implements [Item].
func (r *RichTextItem) Render(width int) string {
	style := r.sty.Item.Blurred
	if r.focused {
		style = r.sty.Item.Focused
	}
	return style.Render(r.RawRender(width))
}
