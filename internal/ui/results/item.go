// Package results implements the typed renderers for clipboard items.
// Every item in a snapshot is bound to exactly one renderer, selected by
// media type, and each binding carries a unique ID that tags its
// asynchronous decode results.
package results

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/taste/internal/flavor"
	"github.com/charmbracelet/taste/internal/ui/list"
	"github.com/charmbracelet/taste/internal/ui/styles"
	"github.com/charmbracelet/x/ansi"
)

// ItemLeftPaddingTotal is the total width taken up by the border and
// padding. Content is additionally capped at maxContentWidth to keep it
// readable on very wide terminals.
const ItemLeftPaddingTotal = 2

// maxContentWidth is the maximum width of rendered item content.
const maxContentWidth = 120

// Identifiable is the interface for items that provide a unique
// identifier.
type Identifiable interface {
	ID() string
}

// KeyEventHandler is the interface for items that handle key events.
type KeyEventHandler interface {
	HandleKeyEvent(key tea.KeyMsg) (bool, tea.Cmd)
}

// Decodable is the interface for items whose content needs an
// asynchronous decode before it can be shown. Decode returns nil when
// there is nothing to decode.
type Decodable interface {
	Decode() tea.Cmd
}

// Item represents a clipboard item bound to a renderer, displayable as
// part of a [list.List] and identified by a unique binding ID.
type Item interface {
	list.Item
	list.Focusable
	Identifiable

	// DisplayName returns the heading name of the item.
	DisplayName() string
}

// ControlChangedMsg is sent when a per-item control is toggled. It
// carries no payload: the item that changed has already invalidated its
// own render cache, so only that item is re-rendered.
type ControlChangedMsg struct{}

// controlChanged reports a control toggle to the program.
func controlChanged() tea.Cmd {
	return func() tea.Msg {
		return ControlChangedMsg{}
	}
}

// NewItem binds the given clipboard item to its renderer. The mapping is
// total: types without a dedicated renderer fall back to [DefaultItem].
// Positions are 1-based and appear in the item heading.
func NewItem(sty *styles.Styles, position int, itm flavor.Item) Item {
	switch itm.MediaType() {
	case flavor.TypeJPEG, flavor.TypePNG:
		return NewImageItem(sty, position, itm)
	case flavor.TypeHTML:
		return NewHTMLItem(sty, position, itm)
	case flavor.TypePlain:
		return NewPlainTextItem(sty, position, itm)
	case flavor.TypeRTF:
		return NewRichTextItem(sty, position, itm)
	case flavor.TypeURIList:
		return NewURIListItem(sty, position, itm)
	case flavor.TypeVCard:
		return NewVCardItem(sty, position, itm)
	}
	return NewDefaultItem(sty, position, itm)
}

// ItemsFor binds every item of a snapshot in order, numbering positions
// from 1.
func ItemsFor(sty *styles.Styles, items []flavor.Item) []Item {
	bound := make([]Item, len(items))
	for i, itm := range items {
		bound[i] = NewItem(sty, i+1, itm)
	}
	return bound
}

// Renderer is the uniform surface every typed renderer provides. The
// shared frame composes the heading, the controls, and the content from
// it.
type Renderer interface {
	// DisplayName returns the heading name of the item.
	DisplayName() string
	// WrapperClass selects the treatment of the content section.
	WrapperClass() string
	// RenderControls renders the item's control hints, if any.
	RenderControls(width int) string
	// RenderContent renders the item's content.
	RenderContent(width int) string
}

// Wrapper classes.
const (
	// wrapperDefault leaves the content as the renderer produced it.
	wrapperDefault = ""
	// wrapperPlain puts the content in a monospace panel, kept verbatim
	// apart from wrapping overlong lines.
	wrapperPlain = "plain"
)

// cachedItem caches rendered item content to avoid re-rendering.
//
// The cache holds a single width. A control toggle or a decode
// completion clears it so the next render recomputes.
type cachedItem struct {
	// rendered is the cached rendered string
	rendered string
	// width and height are the dimensions of the cached render
	width  int
	height int
}

// getCachedRender returns the cached render for the given width, if any.
func (c *cachedItem) getCachedRender(width int) (string, int, bool) {
	if c.width == width && c.rendered != "" {
		return c.rendered, c.height, true
	}
	return "", 0, false
}

// setCachedRender sets the cached render.
func (c *cachedItem) setCachedRender(rendered string, width, height int) {
	c.rendered = rendered
	c.width = width
	c.height = height
}

// clearCache clears the cached render.
func (c *cachedItem) clearCache() {
	c.rendered = ""
	c.width = 0
	c.height = 0
}

// focusableItem is the base for items that can receive focus.
type focusableItem struct {
	focused bool
}

// SetFocused implements [list.Focusable].
func (f *focusableItem) SetFocused(focused bool) {
	f.focused = focused
}

// cappedItemWidth returns the maximum width of item content to keep it
// readable.
func cappedItemWidth(availableWidth int) int {
	return min(availableWidth-ItemLeftPaddingTotal, maxContentWidth)
}

// renderHeading renders the position-prefixed heading of an item, e.g.
// "1. Plain Text". The media type is appended as a tag unless it is the
// heading name itself.
func renderHeading(sty *styles.Styles, position int, name, mediaType string) string {
	heading := fmt.Sprintf("%s %s",
		sty.Item.Position.Render(fmt.Sprintf("%d.", position)),
		sty.Item.Heading.Render(name),
	)
	if mediaType != "" && !strings.EqualFold(mediaType, name) {
		heading += " " + sty.Item.TypeTag.Render(mediaType)
	}
	return heading
}

// renderToggle renders a radio-style toggle hint, e.g.
// "◉ Preformatted (p)".
func renderToggle(sty *styles.Styles, on bool, label, keyHint string) string {
	radio := sty.RadioOff
	if on {
		radio = sty.RadioOn
	}
	return fmt.Sprintf("%s %s %s",
		radio.String(),
		label,
		sty.Item.ControlKey.Render("("+keyHint+")"),
	)
}

// renderAction renders a one-shot control hint, e.g.
// "→ save file.vcf (s)".
func renderAction(sty *styles.Styles, label, keyHint string) string {
	return fmt.Sprintf("%s %s %s",
		sty.Item.ControlKey.Render(styles.ArrowRightIcon),
		label,
		sty.Item.ControlKey.Render("("+keyHint+")"),
	)
}

// renderPlainPanel renders content as a monospace panel. Overlong lines
// hard wrap so no characters are lost.
func renderPlainPanel(sty *styles.Styles, content string, width int) string {
	if width <= 0 {
		return content
	}
	wrapped := ansi.Hardwrap(content, width, true)
	lines := strings.Split(wrapped, "\n")
	for i, line := range lines {
		lines[i] = sty.Item.PlainPanel.Width(width).Render(line)
	}
	return strings.Join(lines, "\n")
}

// renderFrame composes the uniform item frame: the heading, the controls
// when present, then the content, separated by blank lines.
func renderFrame(sty *styles.Styles, width, position int, mediaType string, r Renderer) string {
	parts := []string{renderHeading(sty, position, r.DisplayName(), mediaType)}
	if controls := r.RenderControls(width); controls != "" {
		parts = append(parts, controls)
	}
	content := r.RenderContent(width)
	if content != "" && r.WrapperClass() == wrapperPlain {
		content = renderPlainPanel(sty, content, width)
	}
	if content != "" {
		parts = append(parts, content)
	}
	return strings.Join(parts, "\n\n")
}
