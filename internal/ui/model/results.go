package model

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/charmbracelet/taste/internal/capture"
	"github.com/charmbracelet/taste/internal/ui/common"
	fimage "github.com/charmbracelet/taste/internal/ui/image"
	"github.com/charmbracelet/taste/internal/ui/list"
	"github.com/charmbracelet/taste/internal/ui/results"
)

// Results is the list of rendered clipboard items for the current
// snapshot. Items are replaced wholesale on every capture; asynchronous
// decode completions are routed back to their owning item by binding ID,
// and completions for IDs no longer bound are dropped.
type Results struct {
	com      *common.Common
	list     *list.List
	idInxMap map[string]int // binding ID to index in the list

	// caps is shared with the UI so image items always see the latest
	// terminal answers at bind time.
	caps *common.Capabilities
}

// NewResults creates a new [Results] instance.
func NewResults(com *common.Common, caps *common.Capabilities) *Results {
	r := &Results{
		com:      com,
		idInxMap: make(map[string]int),
		caps:     caps,
	}
	l := list.NewList()
	l.SetGap(1)
	l.RegisterRenderCallback(list.FocusedRenderCallback(l))
	r.list = l
	return r
}

// Height returns the height of the results viewport.
func (m *Results) Height() int {
	return m.list.Height()
}

// Width returns the width of the results viewport.
func (m *Results) Width() int {
	return m.list.Width()
}

// Draw renders the results list to the screen at the given area.
func (m *Results) Draw(scr uv.Screen, area uv.Rectangle) {
	uv.NewStyledString(m.list.Render()).Draw(scr, area)
}

// SetSize sets the size of the results viewport. Image art scales with
// the list width, so a width change re-runs transmits for any decoded
// images.
func (m *Results) SetSize(width, height int) tea.Cmd {
	widthChanged := width != m.list.Width()
	m.list.SetSize(width, height)
	if !widthChanged {
		return nil
	}
	var cmds []tea.Cmd
	for i := range m.list.Len() {
		if img, ok := m.list.ItemAt(i).(*results.ImageItem); ok {
			if cmd := img.EnsureTransmit(width); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}
	return tea.Batch(cmds...)
}

// Len returns the number of items in the results list.
func (m *Results) Len() int {
	return m.list.Len()
}

// SetItems replaces the whole results list with the given items. The
// previous bindings are discarded, which is what invalidates any decode
// still in flight for them. It returns a command starting the decodes
// the new items need.
func (m *Results) SetItems(items ...results.Item) tea.Cmd {
	m.idInxMap = make(map[string]int)

	var cmds []tea.Cmd
	listItems := make([]list.Item, len(items))
	for i, item := range items {
		m.idInxMap[item.ID()] = i
		if img, ok := item.(*results.ImageItem); ok {
			img.SetImageCapabilities(m.caps)
		}
		if dec, ok := item.(results.Decodable); ok {
			if cmd := dec.Decode(); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		listItems[i] = item
	}
	m.list.SetItems(listItems...)
	m.list.ScrollToTop()
	m.list.SetSelected(0)
	return tea.Batch(cmds...)
}

// RefreshImageEncoding re-applies the terminal capabilities to image
// items after the images mode changed. The shared art cache is dropped
// so every decoded image retransmits under the new encoding.
func (m *Results) RefreshImageEncoding() tea.Cmd {
	fimage.ResetCache()
	var cmds []tea.Cmd
	for i := range m.list.Len() {
		if img, ok := m.list.ItemAt(i).(*results.ImageItem); ok {
			img.SetImageCapabilities(m.caps)
			if cmd := img.EnsureTransmit(m.list.Width()); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}
	return tea.Batch(cmds...)
}

// Item returns the item bound to the given ID, or nil when the ID is no
// longer bound.
func (m *Results) Item(id string) results.Item {
	idx, ok := m.idInxMap[id]
	if !ok {
		return nil
	}
	item, ok := m.list.ItemAt(idx).(results.Item)
	if !ok {
		return nil
	}
	return item
}

// Update routes decode completions to their owning items. Completions
// whose binding ID is not in the current map belong to a replaced
// snapshot and are dropped.
func (m *Results) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case results.ImageDecodedMsg:
		img, ok := m.Item(msg.ID).(*results.ImageItem)
		if !ok {
			return nil
		}
		img.ApplyDecode(msg)
		return img.EnsureTransmit(m.list.Width())
	case results.VCardDecodedMsg:
		card, ok := m.Item(msg.ID).(*results.VCardItem)
		if !ok {
			return nil
		}
		card.ApplyDecode(msg)
	}
	return nil
}

// HandleKeyMsg offers a key press to the focused item's controls.
func (m *Results) HandleKeyMsg(key tea.KeyMsg) (bool, tea.Cmd) {
	if m.list.Focused() {
		if handler, ok := m.list.SelectedItem().(results.KeyEventHandler); ok {
			return handler.HandleKeyEvent(key)
		}
	}
	return false, nil
}

// Focus sets the focus state on the results list.
func (m *Results) Focus() {
	m.list.Focus()
}

// Blur removes the focus state from the results list.
func (m *Results) Blur() {
	m.list.Blur()
}

// Focused reports whether the results list is focused.
func (m *Results) Focused() bool {
	return m.list.Focused()
}

// ScrollBy scrolls the results view by the given number of lines.
func (m *Results) ScrollBy(lines int) {
	m.list.ScrollBy(lines)
}

// ScrollToTop scrolls the results view to the top.
func (m *Results) ScrollToTop() {
	m.list.ScrollToTop()
}

// ScrollToBottom scrolls the results view to the bottom.
func (m *Results) ScrollToBottom() {
	m.list.ScrollToBottom()
}

// ScrollToSelected scrolls the results view to the selected item.
func (m *Results) ScrollToSelected() {
	m.list.ScrollToSelected()
}

// SelectedItemInView reports whether the selected item is currently in
// view.
func (m *Results) SelectedItemInView() bool {
	return m.list.SelectedItemInView()
}

// SelectPrev selects the previous item in the results list.
func (m *Results) SelectPrev() {
	m.list.SelectPrev()
}

// SelectNext selects the next item in the results list.
func (m *Results) SelectNext() {
	m.list.SelectNext()
}

// SelectFirst selects the first item in the results list.
func (m *Results) SelectFirst() {
	m.list.SelectFirst()
}

// SelectLast selects the last item in the results list.
func (m *Results) SelectLast() {
	m.list.SelectLast()
}

// SelectFirstInView selects the first item currently in view.
func (m *Results) SelectFirstInView() {
	startIdx, _ := m.list.VisibleItemIndices()
	m.list.SetSelected(startIdx)
}

// SelectLastInView selects the last item currently in view.
func (m *Results) SelectLastInView() {
	_, endIdx := m.list.VisibleItemIndices()
	m.list.SetSelected(endIdx)
}

// captureSummary renders the count line shown above the results: the
// item count for non-empty snapshots, a fixed phrase for empty ones, and
// nothing at all before the first capture.
func captureSummary(com *common.Common, snap *capture.Snapshot) string {
	t := com.Styles
	switch {
	case snap == nil:
		return ""
	case len(snap.Items) == 0:
		return t.Summary.Empty.Render("nothing on clipboard")
	case len(snap.Items) == 1:
		return t.Summary.Count.Render("1 item on clipboard")
	default:
		return t.Summary.Count.Render(fmt.Sprintf("%d items on clipboard", len(snap.Items)))
	}
}
