// Package model implements the taste TUI: a paste surface, the results
// list for the most recent clipboard snapshot, and the chrome around
// them.
package model

import (
	"bytes"
	"image"
	"log/slog"
	"strings"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/charmbracelet/ultraviolet/layout"
	"github.com/charmbracelet/ultraviolet/screen"

	"github.com/charmbracelet/taste/internal/capture"
	"github.com/charmbracelet/taste/internal/config"
	"github.com/charmbracelet/taste/internal/fsext"
	"github.com/charmbracelet/taste/internal/home"
	"github.com/charmbracelet/taste/internal/pubsub"
	"github.com/charmbracelet/taste/internal/ui/common"
	"github.com/charmbracelet/taste/internal/ui/results"
	"github.com/charmbracelet/taste/internal/ui/util"
)

// uiFocusState is the current focus target of the UI.
type uiFocusState uint8

const (
	uiFocusCapture uiFocusState = iota
	uiFocusResults
)

type uiState uint8

const (
	// uiLanding is the state before the first capture: no snapshot has
	// been taken and nothing is on screen but the logo and a hint.
	uiLanding uiState = iota
	// uiResults shows the current snapshot, which may be empty.
	uiResults
)

// UI is the root TUI model.
type UI struct {
	com *common.Common

	// snapshot is the most recent capture. It is nil until the first
	// capture happens, which is a different display state than a
	// captured-but-empty clipboard.
	snapshot *capture.Snapshot

	// Terminal width and height in cells.
	width  int
	height int
	layout uiLayout

	focus uiFocusState
	state uiState

	keyMap KeyMap

	status  *Status
	header  *header
	results *Results

	// The capture surface. It is a paste target, not an editor: key
	// input never reaches it and its value stays empty.
	textarea textarea.Model

	// caps holds the terminal capabilities we queried for.
	caps common.Capabilities
}

// New creates a new [UI] model instance.
func New(com *common.Common) *UI {
	ta := textarea.New()
	ta.SetStyles(com.Styles.TextArea)
	ta.ShowLineNumbers = false
	ta.CharLimit = -1
	ta.SetVirtualCursor(false)
	ta.Placeholder = "Paste here to inspect the clipboard."
	ta.Focus()

	ui := &UI{
		com:    com,
		keyMap: DefaultKeyMap(),
		header: newHeader(com),
	}
	ui.caps.ImagesMode = com.ImagesMode
	ui.textarea = ta
	ui.results = NewResults(com, &ui.caps)
	ui.status = NewStatus(com, ui)

	ui.setState(uiLanding, uiFocusCapture)

	return ui
}

// Init implements [tea.Model].
func (m *UI) Init() tea.Cmd {
	return m.textarea.Focus()
}

// setState changes the UI state and focus.
func (m *UI) setState(state uiState, focus uiFocusState) tea.Cmd {
	m.state = state
	m.focus = focus
	// Changing state may change the layout, so update it.
	return m.updateLayoutAndSize()
}

// Update implements [tea.Model].
func (m *UI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// Keep the terminal capabilities current.
	m.caps.Update(msg)

	switch msg := msg.(type) {
	case tea.EnvMsg:
		cmds = append(cmds, common.QueryCmd(uv.Environ(msg)))

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if cmd := m.updateLayoutAndSize(); cmd != nil {
			cmds = append(cmds, cmd)
		}

	case capture.CompletedMsg:
		if cmd := m.setSnapshot(msg.Snapshot); cmd != nil {
			cmds = append(cmds, cmd)
		}

	case pubsub.Event[capture.Snapshot]:
		// The clipboard watcher noticed a change.
		if msg.Type == pubsub.CreatedEvent {
			cmds = append(cmds, util.CmdHandler(capture.CompletedMsg{Snapshot: msg.Payload}))
		}

	case results.ImageDecodedMsg, results.VCardDecodedMsg:
		if cmd := m.results.Update(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}

	case results.ControlChangedMsg:
		// The toggled item already invalidated its own cached render;
		// the message arriving is what forces the redraw cycle.

	case tea.KeyPressMsg:
		if cmd := m.handleKeyPressMsg(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}

	case tea.PasteMsg:
		if cmd := m.handlePasteMsg(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}

	case tea.MouseClickMsg:
		if cmd := m.handleClickFocus(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}

	case tea.MouseWheelMsg:
		if m.state != uiResults {
			break
		}
		switch msg.Button {
		case tea.MouseWheelUp:
			m.results.ScrollBy(-5)
			if !m.results.SelectedItemInView() {
				m.results.SelectPrev()
				m.results.ScrollToSelected()
			}
		case tea.MouseWheelDown:
			m.results.ScrollBy(5)
			if !m.results.SelectedItemInView() {
				m.results.SelectNext()
				m.results.ScrollToSelected()
			}
		}

	case util.InfoMsg:
		m.status.SetInfoMsg(msg)
		ttl := msg.TTL
		if ttl <= 0 {
			ttl = DefaultStatusTTL
		}
		cmds = append(cmds, clearInfoMsgCmd(ttl))

	case util.ClearStatusMsg:
		m.status.ClearInfoMsg()

	case uv.KittyGraphicsEvent:
		if !bytes.HasPrefix(msg.Payload, []byte("OK")) {
			slog.Warn("Unexpected kitty graphics response",
				"response", string(msg.Payload),
				"options", msg.Options)
		}
	}

	return m, tea.Batch(cmds...)
}

// setSnapshot replaces the current snapshot wholesale. Every item gets a
// fresh binding, which resets per-item toggles and orphans any decode
// still in flight for the previous list.
func (m *UI) setSnapshot(snap capture.Snapshot) tea.Cmd {
	m.snapshot = &snap

	var cmds []tea.Cmd
	items := results.ItemsFor(m.com.Styles, snap.Items)
	if cmd := m.results.SetItems(items...); cmd != nil {
		cmds = append(cmds, cmd)
	}

	// A finished capture dismisses the paste surface and hands focus to
	// the results.
	m.textarea.Blur()
	m.results.Focus()
	if cmd := m.setState(uiResults, uiFocusResults); cmd != nil {
		cmds = append(cmds, cmd)
	}

	return tea.Batch(cmds...)
}

// clearSnapshot drops the current snapshot and returns to the landing
// state, as if nothing had been captured yet.
func (m *UI) clearSnapshot() tea.Cmd {
	m.snapshot = nil

	var cmds []tea.Cmd
	if cmd := m.results.SetItems(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	m.results.Blur()
	cmds = append(cmds, m.textarea.Focus())
	if cmd := m.setState(uiLanding, uiFocusCapture); cmd != nil {
		cmds = append(cmds, cmd)
	}

	return tea.Batch(cmds...)
}

// takeSnapshot reads the clipboard through the app service. The read may
// shell out to clipboard tools, so it runs off the UI loop and reports
// back as a capture completion.
func (m *UI) takeSnapshot() tea.Cmd {
	return func() tea.Msg {
		return capture.CompletedMsg{Snapshot: m.com.App.Clipboard.Snapshot()}
	}
}

// handlePasteMsg turns a bracketed paste into a capture. The paste body
// normalizes synchronously and lands as a single completion message
// carrying the whole snapshot, never item by item.
func (m *UI) handlePasteMsg(msg tea.PasteMsg) tea.Cmd {
	return util.CmdHandler(capture.CompletedMsg{Snapshot: capture.FromPaste(msg.Content)})
}

// handleKeyPressMsg handles key presses for the UI model.
func (m *UI) handleKeyPressMsg(msg tea.KeyPressMsg) tea.Cmd {
	var cmds []tea.Cmd

	handleGlobalKeys := func(msg tea.KeyPressMsg) bool {
		switch {
		case key.Matches(msg, m.keyMap.Help):
			m.status.ToggleHelp()
			if cmd := m.updateLayoutAndSize(); cmd != nil {
				cmds = append(cmds, cmd)
			}
			return true
		case key.Matches(msg, m.keyMap.Capture):
			cmds = append(cmds, m.takeSnapshot())
			return true
		case key.Matches(msg, m.keyMap.Clear):
			if m.snapshot != nil {
				if cmd := m.clearSnapshot(); cmd != nil {
					cmds = append(cmds, cmd)
				}
			}
			return true
		case key.Matches(msg, m.keyMap.Images):
			cmds = append(cmds, m.toggleImagesMode())
			return true
		case key.Matches(msg, m.keyMap.Suspend):
			cmds = append(cmds, tea.Suspend)
			return true
		}
		return false
	}

	// Always handle the quit key first.
	if key.Matches(msg, m.keyMap.Quit) {
		return tea.Quit
	}

	switch m.focus {
	case uiFocusCapture:
		switch {
		case key.Matches(msg, m.keyMap.Tab):
			if m.state == uiResults {
				m.focus = uiFocusResults
				m.textarea.Blur()
				m.results.Focus()
			}
		default:
			// The capture surface is a paste target, not an editor.
			// Key input that is not a shortcut goes nowhere.
			handleGlobalKeys(msg)
		}
	case uiFocusResults:
		switch {
		case key.Matches(msg, m.keyMap.Tab):
			m.focus = uiFocusCapture
			cmds = append(cmds, m.textarea.Focus())
			m.results.Blur()
		case key.Matches(msg, m.keyMap.List.Up):
			m.results.ScrollBy(-1)
			if !m.results.SelectedItemInView() {
				m.results.SelectPrev()
				m.results.ScrollToSelected()
			}
		case key.Matches(msg, m.keyMap.List.Down):
			m.results.ScrollBy(1)
			if !m.results.SelectedItemInView() {
				m.results.SelectNext()
				m.results.ScrollToSelected()
			}
		case key.Matches(msg, m.keyMap.List.UpOneItem):
			m.results.SelectPrev()
			m.results.ScrollToSelected()
		case key.Matches(msg, m.keyMap.List.DownOneItem):
			m.results.SelectNext()
			m.results.ScrollToSelected()
		case key.Matches(msg, m.keyMap.List.HalfPageUp):
			m.results.ScrollBy(-m.results.Height() / 2)
			m.results.SelectFirstInView()
		case key.Matches(msg, m.keyMap.List.HalfPageDown):
			m.results.ScrollBy(m.results.Height() / 2)
			m.results.SelectLastInView()
		case key.Matches(msg, m.keyMap.List.PageUp):
			m.results.ScrollBy(-m.results.Height())
			m.results.SelectFirstInView()
		case key.Matches(msg, m.keyMap.List.PageDown):
			m.results.ScrollBy(m.results.Height())
			m.results.SelectLastInView()
		case key.Matches(msg, m.keyMap.List.Home):
			m.results.ScrollToTop()
			m.results.SelectFirst()
		case key.Matches(msg, m.keyMap.List.End):
			m.results.ScrollToBottom()
			m.results.SelectLast()
		default:
			// Offer the key to the focused item's controls before the
			// global shortcuts.
			if ok, cmd := m.results.HandleKeyMsg(msg); ok {
				if cmd != nil {
					cmds = append(cmds, cmd)
				}
			} else {
				handleGlobalKeys(msg)
			}
		}
	}

	return tea.Batch(cmds...)
}

// toggleImagesMode cycles the image rendering protocol and persists the
// choice in the data config. Image items already on screen pick up the
// new encoding immediately.
func (m *UI) toggleImagesMode() tea.Cmd {
	var next string
	switch m.caps.ImagesMode {
	case config.ImagesKitty:
		next = config.ImagesBlocks
	case config.ImagesBlocks:
		next = config.ImagesAuto
	default:
		next = config.ImagesKitty
	}
	m.caps.ImagesMode = next
	m.com.ImagesMode = next

	if err := m.com.Config().SetImagesMode(next); err != nil {
		return util.ReportError(err)
	}

	note := util.ReportInfo("images: " + next)
	if next == config.ImagesKitty && !m.caps.KittyGraphics {
		note = util.ReportWarn("images: kitty (terminal did not report support)")
	}

	return tea.Batch(
		m.results.RefreshImageEncoding(),
		note,
	)
}

// handleClickFocus moves focus to the component under a mouse click.
func (m *UI) handleClickFocus(msg tea.MouseClickMsg) (cmd tea.Cmd) {
	switch {
	case m.focus != uiFocusCapture && image.Pt(msg.X, msg.Y).In(m.layout.capture):
		m.focus = uiFocusCapture
		cmd = m.textarea.Focus()
		m.results.Blur()
	case m.focus != uiFocusResults && m.state == uiResults && image.Pt(msg.X, msg.Y).In(m.layout.main):
		m.focus = uiFocusResults
		m.textarea.Blur()
		m.results.Focus()
	}
	return cmd
}

// drawHeader draws the header for the current snapshot.
func (m *UI) drawHeader(scr uv.Screen, area uv.Rectangle) {
	m.header.drawHeader(
		scr,
		area,
		m.snapshot,
		m.state == uiResults,
		m.width,
	)
}

// Draw implements [uv.Drawable] and draws the UI model.
func (m *UI) Draw(scr uv.Screen, area uv.Rectangle) *tea.Cursor {
	layout := m.generateLayout(area.Dx(), area.Dy())

	if m.layout != layout {
		m.layout = layout
		// Any transmit this produces runs on the next real resize;
		// draws cannot dispatch commands.
		m.updateSize()
	}

	screen.Clear(scr)

	switch m.state {
	case uiLanding:
		m.drawHeader(scr, m.layout.header)

		main := uv.NewStyledString(m.landingView())
		main.Draw(scr, m.layout.main)

	case uiResults:
		m.drawHeader(scr, m.layout.header)

		summary := uv.NewStyledString(captureSummary(m.com, m.snapshot))
		summary.Draw(scr, m.layout.summary)

		m.results.Draw(scr, m.layout.main)
	}

	captureView := uv.NewStyledString(m.textarea.View())
	captureView.Draw(scr, m.layout.capture)

	m.status.Draw(scr, m.layout.status)

	return nil
}

// View implements [tea.Model].
func (m *UI) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.BackgroundColor = m.com.Styles.Background
	v.MouseMode = tea.MouseModeCellMotion
	v.WindowTitle = "taste " + home.Short(m.com.Config().WorkingDir())

	canvas := uv.NewScreenBuffer(m.width, m.height)
	v.Cursor = m.Draw(canvas, canvas.Bounds())

	content := strings.ReplaceAll(canvas.Render(), "\r\n", "\n")
	contentLines := strings.Split(content, "\n")
	for i, line := range contentLines {
		// Trim trailing spaces for cleaner rendering.
		contentLines[i] = strings.TrimRight(line, " ")
	}

	v.Content = strings.Join(contentLines, "\n")

	return v
}

// landingView renders the view shown before the first capture.
func (m *UI) landingView() string {
	t := m.com.Styles
	width := m.layout.main.Dx()

	cwd := t.Muted.Render(fsext.PrettyPath(m.com.Config().WorkingDir()))

	hint := t.Muted.Render("Paste into this window, or press ") +
		t.Header.Keystroke.Render("ctrl+r") +
		t.Muted.Render(" to read the clipboard.")

	parts := []string{
		cwd,
		"",
		hint,
	}

	if name := m.backendName(); name != "" {
		parts = append(parts, "",
			t.Subtle.Render("clipboard backend: ")+t.Muted.Render(name))
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(m.layout.main.Dy() - 1).
		PaddingTop(1).
		Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// backendName names the active clipboard backend, when one is wired.
func (m *UI) backendName() string {
	if m.com.App == nil || m.com.App.Clipboard == nil {
		return ""
	}
	return m.com.App.Clipboard.Backend().Name()
}

// ShortHelp implements [help.KeyMap].
func (m *UI) ShortHelp() []key.Binding {
	var binds []key.Binding
	k := &m.keyMap

	tab := k.Tab
	switch m.state {
	case uiLanding:
		binds = append(binds, k.Capture)
	case uiResults:
		switch m.focus {
		case uiFocusCapture:
			tab.SetHelp("tab", "focus results")
			binds = append(binds, k.Capture, tab)
		case uiFocusResults:
			tab.SetHelp("tab", "focus capture")
			binds = append(binds,
				k.List.UpDown,
				k.List.UpDownOneItem,
				k.Capture,
				tab,
			)
		}
	}

	binds = append(binds,
		k.Quit,
		k.Help,
	)

	return binds
}

// FullHelp implements [help.KeyMap].
func (m *UI) FullHelp() [][]key.Binding {
	var binds [][]key.Binding
	k := &m.keyMap
	help := k.Help
	help.SetHelp("ctrl+g", "less")

	binds = append(binds, []key.Binding{
		k.Capture,
		k.Clear,
		k.Images,
		k.Tab,
	})

	if m.state == uiResults {
		binds = append(binds,
			[]key.Binding{
				k.List.UpDown,
				k.List.UpDownOneItem,
				k.List.PageUp,
				k.List.PageDown,
			},
			[]key.Binding{
				k.List.HalfPageUp,
				k.List.HalfPageDown,
				k.List.Home,
				k.List.End,
			},
		)
	}

	binds = append(binds, []key.Binding{
		k.Suspend,
		k.Quit,
		help,
	})

	return binds
}

// updateLayoutAndSize updates the layout and sizes of the UI components.
func (m *UI) updateLayoutAndSize() tea.Cmd {
	m.layout = m.generateLayout(m.width, m.height)
	return m.updateSize()
}

// updateSize updates the size of the UI components for the current
// layout. Image items retransmit when the list width changed, so this
// can produce a command.
func (m *UI) updateSize() tea.Cmd {
	m.status.SetWidth(m.layout.status.Dx())

	cmd := m.results.SetSize(m.layout.main.Dx(), m.layout.main.Dy())

	m.textarea.SetWidth(m.layout.capture.Dx())
	m.textarea.SetHeight(m.layout.capture.Dy())

	return cmd
}

// generateLayout computes the layout rectangles for every UI component
// given the current UI state and terminal dimensions.
func (m *UI) generateLayout(w, h int) uiLayout {
	// The screen region we are working with.
	area := image.Rect(0, 0, w, h)

	// Help height.
	helpHeight := 1
	// Capture surface height.
	captureHeight := 5
	// Header heights.
	const landingHeaderHeight = 4
	const compactHeaderHeight = 1
	// Count line plus the blank line under it.
	const summaryHeight = 2

	var helpKeyMap help.KeyMap = m
	if m.status.ShowingAll() {
		for _, row := range helpKeyMap.FullHelp() {
			helpHeight = max(helpHeight, len(row))
		}
	}

	// Apply the app margins.
	appRect, helpRect := layout.SplitVertical(area, layout.Fixed(area.Dy()-helpHeight))
	appRect.Min.Y += 1
	appRect.Max.Y -= 1
	helpRect.Min.Y -= 1
	appRect.Min.X += 1
	appRect.Max.X -= 1

	if m.state == uiLanding {
		// Extra padding on the left and right for this state.
		appRect.Min.X += 1
		appRect.Max.X -= 1
	}

	uiLayout := uiLayout{
		area:   area,
		status: helpRect,
	}

	switch m.state {
	case uiLanding:
		// Layout:
		//
		// header
		// ------
		// main
		// ------
		// capture
		// ------
		// help
		headerRect, mainRect := layout.SplitVertical(appRect, layout.Fixed(landingHeaderHeight))
		mainRect, captureRect := layout.SplitVertical(mainRect, layout.Fixed(mainRect.Dy()-captureHeight))
		// Remove the extra padding from the capture surface, keeping it
		// for the header and main content.
		captureRect.Min.X -= 1
		captureRect.Max.X += 1
		uiLayout.header = headerRect
		uiLayout.main = mainRect
		uiLayout.capture = captureRect

	case uiResults:
		// Layout:
		//
		// compact header
		// ------
		// summary
		// ------
		// main
		// ------
		// capture
		// ------
		// help
		headerRect, mainRect := layout.SplitVertical(appRect, layout.Fixed(compactHeaderHeight))
		// One line of gap between the header and the content.
		mainRect.Min.Y += 1
		mainRect, captureRect := layout.SplitVertical(mainRect, layout.Fixed(mainRect.Dy()-captureHeight))
		mainRect.Max.X -= 1 // right padding
		summaryRect, listRect := layout.SplitVertical(mainRect, layout.Fixed(summaryHeight))
		uiLayout.header = headerRect
		uiLayout.summary = summaryRect
		uiLayout.main = listRect
		// Bottom margin for the list.
		uiLayout.main.Max.Y -= 1
		uiLayout.capture = captureRect
	}

	if !uiLayout.capture.Empty() {
		// Margins above and below the capture surface.
		uiLayout.capture.Min.Y += 1
		uiLayout.capture.Max.Y -= 1
	}

	return uiLayout
}

// uiLayout defines the positioning of the UI elements.
type uiLayout struct {
	// area is the overall available area.
	area uv.Rectangle

	// header is the logo area: the full wordmark on the landing page,
	// one compact line when results are shown.
	header uv.Rectangle

	// summary is the item-count line above the results.
	summary uv.Rectangle

	// main is the area of the main panel (results or landing content).
	main uv.Rectangle

	// capture is the area of the paste surface.
	capture uv.Rectangle

	// status is the area of the status view.
	status uv.Rectangle
}
