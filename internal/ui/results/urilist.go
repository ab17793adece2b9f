package results

import (
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/taste/internal/ansiext"
	"github.com/charmbracelet/taste/internal/flavor"
	"github.com/charmbracelet/taste/internal/ui/styles"
	"github.com/charmbracelet/x/ansi"
	"github.com/google/uuid"
)

// URIListItem renders text/uri-list items. The list is shown verbatim,
// one URI per line, including any comment lines the host put there.
type URIListItem struct {
	*cachedItem
	*focusableItem

	id       string
	position int
	item     flavor.Item
	sty      *styles.Styles
}

// NewURIListItem creates a new [URIListItem].
func NewURIListItem(sty *styles.Styles, position int, itm flavor.Item) Item {
	return &URIListItem{
		cachedItem:    &cachedItem{},
		focusableItem: &focusableItem{},
		id:            uuid.NewString(),
		position:      position,
		item:          itm,
		sty:           sty,
	}
}

// ID implements [Item].
func (u *URIListItem) ID() string {
	return u.id
}

// DisplayName implements [Renderer].
func (u *URIListItem) DisplayName() string {
	return "URI List"
}

// WrapperClass implements [Renderer].
func (u *URIListItem) WrapperClass() string {
	return wrapperDefault
}

// RenderControls implements [Renderer].
func (u *URIListItem) RenderControls(width int) string {
	return ""
}

// RenderContent implements [Renderer].
func (u *URIListItem) RenderContent(width int) string {
	if u.item.Data == "" {
		return ""
	}
	return ansi.Hardwrap(ansiext.Escape(u.item.Data), width, true)
}

// RawRender renders the item content without the frame style.
func (u *URIListItem) RawRender(width int) string {
	cappedWidth := cappedItemWidth(width)
	content, _, ok := u.getCachedRender(cappedWidth)
	if ok {
		return content
	}
	content = renderFrame(u.sty, cappedWidth, u.position, u.item.MediaType(), u)
	u.setCachedRender(content, cappedWidth, lipgloss.Height(content))
	return content
}

// Render implements [Item].
func (u *URIListItem) Render(width int) string {
	style := u.sty.Item.Blurred
	if u.focused {
		style = u.sty.Item.Focused
	}
	return style.Render(u.RawRender(width))
}
