package results

import (
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/taste/internal/ansiext"
	"github.com/charmbracelet/taste/internal/flavor"
	"github.com/charmbracelet/taste/internal/ui/styles"
	"github.com/charmbracelet/x/ansi"
	"github.com/google/uuid"
)

// DefaultItem renders clipboard items no dedicated renderer claims. The
// heading shows the raw type identifier and the content shows the raw
// data, so unknown flavors are still fully inspectable.
type DefaultItem struct {
	*cachedItem
	*focusableItem

	id       string
	position int
	item     flavor.Item
	sty      *styles.Styles
}

// NewDefaultItem creates a new [DefaultItem].
func NewDefaultItem(sty *styles.Styles, position int, itm flavor.Item) Item {
	return &DefaultItem{
		cachedItem:    &cachedItem{},
		focusableItem: &focusableItem{},
		id:            uuid.NewString(),
		position:      position,
		item:          itm,
		sty:           sty,
	}
}

// ID implements [Item].
func (d *DefaultItem) ID() string {
	return d.id
}

// DisplayName implements [Renderer]. Unknown flavors are named after
// their raw type identifier.
func (d *DefaultItem) DisplayName() string {
	return d.item.Type
}

// WrapperClass implements [Renderer].
func (d *DefaultItem) WrapperClass() string {
	return wrapperDefault
}

// RenderControls implements [Renderer].
func (d *DefaultItem) RenderControls(width int) string {
	return ""
}

// RenderContent implements [Renderer].
func (d *DefaultItem) RenderContent(width int) string {
	if d.item.Data == "" {
		return ""
	}
	return d.sty.Item.RawData.Render(ansi.Hardwrap(ansiext.Escape(d.item.Data), width, true))
}

// RawRender renders the item content without the frame style.
func (d *DefaultItem) RawRender(width int) string {
	cappedWidth := cappedItemWidth(width)
	content, _, ok := d.getCachedRender(cappedWidth)
	if ok {
		return content
	}
	content = renderFrame(d.sty, cappedWidth, d.position, d.item.MediaType(), d)
	d.setCachedRender(content, cappedWidth, lipgloss.Height(content))
	return content
}

// Render implements [Item].
func (d *DefaultItem) Render(width int) string {
	style := d.sty.Item.Blurred
	if d.focused {
		style = d.sty.Item.Focused
	}
	return style.Render(d.RawRender(width))
}
