package results

import (
	"fmt"
	"image"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/taste/internal/flavor"
	"github.com/charmbracelet/taste/internal/ui/common"
	fimage "github.com/charmbracelet/taste/internal/ui/image"
	"github.com/charmbracelet/taste/internal/ui/styles"
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
)

// imageArtHeight is the height in cells of rendered image art.
const imageArtHeight = 12

// maxImageArtWidth caps the width in cells of rendered image art.
const maxImageArtWidth = 64

// ImageDecodedMsg carries the result of an asynchronous image decode.
// The ID is the binding ID of the owning item. Completions whose ID is
// no longer bound are stale and must be dropped by the receiver.
type ImageDecodedMsg struct {
	ID     string
	Image  image.Image
	Format string
	Err    error
}

// ImageItem renders image/png and image/jpeg items. The binary payload
// decodes asynchronously and a placeholder is shown until the decode
// message lands. Decoded images draw as ANSI block art, or through the
// kitty graphics protocol when the terminal supports it.
type ImageItem struct {
	*cachedItem
	*focusableItem

	id       string
	position int
	item     flavor.Item
	sty      *styles.Styles

	img       image.Image
	format    string
	decoded   bool
	decodeErr error

	enc     fimage.Encoding
	cellW   int
	cellH   int
	isTmux  bool
	artCols int
	artRows int
}

// NewImageItem creates a new [ImageItem].
func NewImageItem(sty *styles.Styles, position int, itm flavor.Item) Item {
	return &ImageItem{
		cachedItem:    &cachedItem{},
		focusableItem: &focusableItem{},
		id:            uuid.NewString(),
		position:      position,
		item:          itm,
		sty:           sty,
	}
}

// ID implements [Item].
func (i *ImageItem) ID() string {
	return i.id
}

// DisplayName implements [Renderer]. The name is derived from the image
// subtype, e.g. "PNG image".
func (i *ImageItem) DisplayName() string {
	return strings.ToUpper(i.item.Subtype()) + " image"
}

// WrapperClass implements [Renderer].
func (i *ImageItem) WrapperClass() string {
	return wrapperDefault
}

// RenderControls implements [Renderer].
func (i *ImageItem) RenderControls(width int) string {
	return ""
}

// SetImageCapabilities configures how the item draws decoded images. A
// change of encoding invalidates the cached render so the art redraws
// under the new protocol.
func (i *ImageItem) SetImageCapabilities(caps *common.Capabilities) {
	if caps == nil {
		return
	}
	enc := fimage.EncodingBlocks
	if caps.SupportsKittyGraphics() {
		enc = fimage.EncodingKitty
	}
	if enc != i.enc {
		i.enc = enc
		i.clearCache()
	}
	i.cellW, i.cellH = caps.CellSize()
	i.isTmux = caps.IsTmux()
}

// Decode implements [Decodable]. The decode runs in a command and the
// result comes back as an [ImageDecodedMsg] tagged with the binding ID.
func (i *ImageItem) Decode() tea.Cmd {
	if !i.item.HasFile() {
		return nil
	}
	id := i.id
	data := i.item.File
	return func() tea.Msg {
		img, format, err := fimage.Decode(data)
		return ImageDecodedMsg{ID: id, Image: img, Format: format, Err: err}
	}
}

// ApplyDecode stores the result of the item's asynchronous decode and
// invalidates the cached render.
func (i *ImageItem) ApplyDecode(msg ImageDecodedMsg) {
	i.decoded = true
	i.img = msg.Image
	i.format = msg.Format
	i.decodeErr = msg.Err
	i.clearCache()
}

// EnsureTransmit returns a command transmitting the decoded image at the
// art size for the given list width. It returns nil while the decode is
// outstanding or when the current size has already been transmitted.
func (i *ImageItem) EnsureTransmit(width int) tea.Cmd {
	if i.img == nil {
		return nil
	}
	cols, rows := artSize(cappedItemWidth(width))
	if cols <= 0 {
		return nil
	}
	if i.artCols != cols || i.artRows != rows {
		i.artCols, i.artRows = cols, rows
		i.clearCache()
	}
	return i.enc.Transmit(i.id, i.img, i.cellSize(), cols, rows, i.isTmux)
}

// cellSize returns the terminal cell size used for image scaling.
func (i *ImageItem) cellSize() fimage.CellSize {
	return fimage.CellSize{
		Width:  i.cellW,
		Height: i.cellH,
	}
}

// artSize returns the art dimensions in cells for a content width.
func artSize(width int) (cols, rows int) {
	return min(width, maxImageArtWidth), imageArtHeight
}

// RenderContent implements [Renderer].
func (i *ImageItem) RenderContent(width int) string {
	if !i.item.HasFile() {
		return i.sty.Item.ErrorText.Render("no image payload")
	}
	meta := i.renderMeta()
	if !i.decoded {
		return strings.Join([]string{
			i.sty.Item.Placeholder.Render("decoding image " + styles.SpinnerIcon),
			meta,
		}, "\n")
	}
	if i.decodeErr != nil {
		return strings.Join([]string{
			i.sty.Item.ErrorTag.Render("DECODE FAILED") + " " +
				i.sty.Item.ErrorText.Render(i.decodeErr.Error()),
			meta,
		}, "\n")
	}
	art := i.enc.Render(i.id, i.artCols, i.artRows)
	if art == "" {
		return strings.Join([]string{
			i.sty.Item.Placeholder.Render("preparing image " + styles.SpinnerIcon),
			meta,
		}, "\n")
	}
	return strings.Join([]string{art, "", meta}, "\n")
}

// renderMeta renders the dimension and size line under the image.
func (i *ImageItem) renderMeta() string {
	parts := []string{humanize.Bytes(uint64(len(i.item.File)))}
	if i.img != nil {
		bounds := i.img.Bounds()
		parts = append([]string{
			fmt.Sprintf("%d×%d", bounds.Dx(), bounds.Dy()),
		}, parts...)
	}
	if i.format != "" {
		parts = append([]string{strings.ToUpper(i.format)}, parts...)
	}
	return i.sty.Item.Meta.Render(strings.Join(parts, "  "))
}

// RawRender renders the item content without the frame style.
//
// The frame is cached only once the art is available. While a transmit
// is in flight every render recomputes, so the art shows up on the next
// update cycle without any extra message plumbing.
func (i *ImageItem) RawRender(width int) string {
	cappedWidth := cappedItemWidth(width)
	content, _, ok := i.getCachedRender(cappedWidth)
	if ok {
		return content
	}
	content = renderFrame(i.sty, cappedWidth, i.position, i.item.MediaType(), i)
	if !i.transmitPending() {
		i.setCachedRender(content, cappedWidth, lipgloss.Height(content))
	}
	return content
}

// transmitPending reports whether the item has a decoded image that has
// not yet reached the terminal image cache.
func (i *ImageItem) transmitPending() bool {
	if i.img == nil || i.decodeErr != nil {
		return false
	}
	return i.artCols == 0 || !fimage.HasTransmitted(i.id, i.artCols, i.artRows)
}

// Render implements [Item].
func (i *ImageItem) Render(width int) string {
	style := i.sty.Item.Blurred
	if i.focused {
		style = i.sty.Item.Focused
	}
	return style.Render(i.RawRender(width))
}
