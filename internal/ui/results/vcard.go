package results

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/taste/internal/ansiext"
	"github.com/charmbracelet/taste/internal/flavor"
	"github.com/charmbracelet/taste/internal/stringext"
	"github.com/charmbracelet/taste/internal/ui/styles"
	"github.com/charmbracelet/taste/internal/ui/util"
	"github.com/google/uuid"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// VCardFileName is the name of the file the save control writes into the
// working directory.
const VCardFileName = "vcard-from-clipboard.vcf"

// VCardDecodedMsg carries the result of an asynchronous vcard decode.
// The ID is the binding ID of the owning item. Completions whose ID is
// no longer bound are stale and must be dropped by the receiver.
type VCardDecodedMsg struct {
	ID   string
	Text string
	Err  error
}

// VCardItem renders text/vcard items. The binary payload decodes
// asynchronously into text and a placeholder is shown until the decode
// message lands. The save control writes the raw payload to
// [VCardFileName].
type VCardItem struct {
	*cachedItem
	*focusableItem

	id       string
	position int
	item     flavor.Item
	sty      *styles.Styles

	text      string
	decoded   bool
	decodeErr error
}

// NewVCardItem creates a new [VCardItem].
func NewVCardItem(sty *styles.Styles, position int, itm flavor.Item) Item {
	return &VCardItem{
		cachedItem:    &cachedItem{},
		focusableItem: &focusableItem{},
		id:            uuid.NewString(),
		position:      position,
		item:          itm,
		sty:           sty,
	}
}

// ID implements [Item].
func (v *VCardItem) ID() string {
	return v.id
}

// DisplayName implements [Renderer].
func (v *VCardItem) DisplayName() string {
	return "vCard"
}

// WrapperClass implements [Renderer].
func (v *VCardItem) WrapperClass() string {
	return wrapperPlain
}

// RenderControls implements [Renderer].
func (v *VCardItem) RenderControls(width int) string {
	if !v.item.HasFile() {
		return ""
	}
	return renderAction(v.sty, "save "+VCardFileName, "s")
}

// Decode implements [Decodable]. The decode runs in a command and the
// result comes back as a [VCardDecodedMsg] tagged with the binding ID.
func (v *VCardItem) Decode() tea.Cmd {
	if !v.item.HasFile() {
		return nil
	}
	id := v.id
	data := v.item.File
	return func() tea.Msg {
		text, err := decodeVCardText(data)
		return VCardDecodedMsg{ID: id, Text: text, Err: err}
	}
}

// ApplyDecode stores the result of the item's asynchronous decode and
// invalidates the cached render.
func (v *VCardItem) ApplyDecode(msg VCardDecodedMsg) {
	v.decoded = true
	v.text = msg.Text
	v.decodeErr = msg.Err
	v.clearCache()
}

// RenderContent implements [Renderer].
func (v *VCardItem) RenderContent(width int) string {
	if !v.item.HasFile() {
		return v.sty.Item.ErrorText.Render("no vcard payload")
	}
	if !v.decoded {
		return v.sty.Item.Placeholder.Render("decoding vcard " + styles.SpinnerIcon)
	}
	if v.decodeErr != nil {
		return v.sty.Item.ErrorTag.Render("DECODE FAILED") + " " +
			v.sty.Item.ErrorText.Render(v.decodeErr.Error())
	}
	return ansiext.Escape(stringext.NormalizeNewlines(v.text))
}

// RawRender renders the item content without the frame style.
func (v *VCardItem) RawRender(width int) string {
	cappedWidth := cappedItemWidth(width)
	content, _, ok := v.getCachedRender(cappedWidth)
	if ok {
		return content
	}
	content = renderFrame(v.sty, cappedWidth, v.position, v.item.MediaType(), v)
	v.setCachedRender(content, cappedWidth, lipgloss.Height(content))
	return content
}

// Render implements [Item].
func (v *VCardItem) Render(width int) string {
	style := v.sty.Item.Blurred
	if v.focused {
		style = v.sty.Item.Focused
	}
	return style.Render(v.RawRender(width))
}

// HandleKeyEvent implements [KeyEventHandler].
func (v *VCardItem) HandleKeyEvent(key tea.KeyMsg) (bool, tea.Cmd) {
	if key.String() == "s" && v.item.HasFile() {
		data := v.item.File
		return true, func() tea.Msg {
			if err := os.WriteFile(VCardFileName, data, 0o644); err != nil {
				return util.NewErrorMsg(fmt.Errorf("save %s: %w", VCardFileName, err))
			}
			return util.NewInfoMsg("saved " + VCardFileName)
		}
	}
	return false, nil
}

// decodeVCardText decodes raw vcard bytes into a string. Payloads are
// UTF-8 unless a byte order mark says otherwise.
func decodeVCardText(data []byte) (string, error) {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	decoded, _, err := transform.Bytes(decoder, data)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}
