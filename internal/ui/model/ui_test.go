package model

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/require"

	"github.com/charmbracelet/taste/internal/capture"
	"github.com/charmbracelet/taste/internal/flavor"
	"github.com/charmbracelet/taste/internal/pubsub"
	"github.com/charmbracelet/taste/internal/ui/results"
	"github.com/charmbracelet/taste/internal/ui/util"
)

func newTestUI(t *testing.T) *UI {
	t.Helper()
	m := New(testCommon(t))
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return m
}

func plainSnapshot(data ...string) capture.Snapshot {
	items := make([]flavor.Item, len(data))
	for i, d := range data {
		items[i] = flavor.Item{Type: flavor.TypePlain, Data: d}
	}
	return capture.Snapshot{Items: items, Source: "test"}
}

func pubsubEvent(snap capture.Snapshot) pubsub.Event[capture.Snapshot] {
	return pubsub.Event[capture.Snapshot]{Type: pubsub.CreatedEvent, Payload: snap}
}

func TestUIStartsOnLanding(t *testing.T) {
	t.Parallel()

	m := newTestUI(t)
	require.Equal(t, uiLanding, m.state)
	require.Equal(t, uiFocusCapture, m.focus)
	require.Nil(t, m.snapshot)
	require.True(t, m.textarea.Focused())
}

func TestUICaptureCompleteShowsResults(t *testing.T) {
	t.Parallel()

	m := newTestUI(t)
	m.Update(capture.CompletedMsg{Snapshot: plainSnapshot("one", "two")})

	require.Equal(t, uiResults, m.state)
	require.Equal(t, uiFocusResults, m.focus)
	require.NotNil(t, m.snapshot)
	require.Equal(t, 2, m.results.Len())
	require.False(t, m.textarea.Focused())
}

func TestUICaptureCompleteEmptyClipboard(t *testing.T) {
	t.Parallel()

	// An empty capture still leaves the landing state: having looked
	// and found nothing is not the same as never having looked.
	m := newTestUI(t)
	m.Update(capture.CompletedMsg{Snapshot: plainSnapshot()})

	require.Equal(t, uiResults, m.state)
	require.NotNil(t, m.snapshot)
	require.Empty(t, m.snapshot.Items)
	require.Equal(t, 0, m.results.Len())
}

func TestUIClearReturnsToLanding(t *testing.T) {
	t.Parallel()

	m := newTestUI(t)
	m.Update(capture.CompletedMsg{Snapshot: plainSnapshot("one")})
	require.Equal(t, uiResults, m.state)

	m.Update(tea.KeyPressMsg{Code: 'n', Mod: tea.ModCtrl})

	require.Equal(t, uiLanding, m.state)
	require.Equal(t, uiFocusCapture, m.focus)
	require.Nil(t, m.snapshot)
	require.Equal(t, 0, m.results.Len())
	require.True(t, m.textarea.Focused())
}

func TestUIPasteBecomesCapture(t *testing.T) {
	t.Parallel()

	m := newTestUI(t)
	_, cmd := m.Update(tea.PasteMsg{Content: "hello world"})
	require.NotNil(t, cmd)

	msg, ok := cmd().(capture.CompletedMsg)
	require.True(t, ok)
	require.Equal(t, "paste", msg.Snapshot.Source)
	require.Len(t, msg.Snapshot.Items, 1)
	require.Equal(t, flavor.TypePlain, msg.Snapshot.Items[0].Type)
	require.Equal(t, "hello world", msg.Snapshot.Items[0].Data)

	m.Update(msg)
	require.Equal(t, uiResults, m.state)
	require.Equal(t, 1, m.results.Len())
}

func TestUITabSwitchesFocus(t *testing.T) {
	t.Parallel()

	m := newTestUI(t)
	tab := tea.KeyPressMsg{Code: tea.KeyTab}

	// No results to switch to yet.
	m.Update(tab)
	require.Equal(t, uiFocusCapture, m.focus)

	m.Update(capture.CompletedMsg{Snapshot: plainSnapshot("one")})
	require.Equal(t, uiFocusResults, m.focus)

	m.Update(tab)
	require.Equal(t, uiFocusCapture, m.focus)
	require.True(t, m.textarea.Focused())

	m.Update(tab)
	require.Equal(t, uiFocusResults, m.focus)
	require.False(t, m.textarea.Focused())
}

func TestUIControlKeyReachesFocusedItem(t *testing.T) {
	t.Parallel()

	m := newTestUI(t)
	m.Update(capture.CompletedMsg{Snapshot: plainSnapshot("toggle me")})

	_, cmd := m.Update(tea.KeyPressMsg{Code: 'p', Text: "p"})
	require.NotNil(t, cmd)
	require.Equal(t, results.ControlChangedMsg{}, cmd())

	// The change notification itself is inert.
	_, cmd = m.Update(results.ControlChangedMsg{})
	require.Nil(t, cmd)
}

func TestUIStaleDecodeAfterReplacement(t *testing.T) {
	t.Parallel()

	m := newTestUI(t)
	card := "BEGIN:VCARD\r\nVERSION:3.0\r\nFN:Stale\r\nEND:VCARD\r\n"
	snap := capture.Snapshot{
		Items:  []flavor.Item{{Type: flavor.TypeVCard, File: []byte(card)}},
		Source: "test",
	}

	_, cmd := m.Update(capture.CompletedMsg{Snapshot: snap})
	require.NotNil(t, cmd)

	// A second capture lands before the decode completes.
	m.Update(capture.CompletedMsg{Snapshot: plainSnapshot("new")})

	stale := cmd().(results.VCardDecodedMsg)
	_, cmd = m.Update(stale)
	require.Nil(t, cmd)
	require.Equal(t, 1, m.results.Len())
}

func TestUIWatcherEventBecomesCapture(t *testing.T) {
	t.Parallel()

	m := newTestUI(t)
	_, cmd := m.Update(pubsubEvent(plainSnapshot("watched")))
	require.NotNil(t, cmd)

	msg, ok := cmd().(capture.CompletedMsg)
	require.True(t, ok)
	require.Equal(t, "watched", msg.Snapshot.Items[0].Data)
}

func TestUIStatusMessages(t *testing.T) {
	t.Parallel()

	m := newTestUI(t)
	_, cmd := m.Update(util.InfoMsg{Msg: "saved"})
	require.NotNil(t, cmd)
	require.Equal(t, "saved", m.status.msg.Msg)

	m.Update(util.ClearStatusMsg{})
	require.Empty(t, m.status.msg.Msg)
}

func TestUIHelpToggleGrowsStatusArea(t *testing.T) {
	t.Parallel()

	m := newTestUI(t)
	collapsed := m.layout.status.Dy()

	m.Update(tea.KeyPressMsg{Code: 'g', Mod: tea.ModCtrl})
	require.True(t, m.status.ShowingAll())
	require.Greater(t, m.layout.status.Dy(), collapsed)

	m.Update(tea.KeyPressMsg{Code: 'g', Mod: tea.ModCtrl})
	require.False(t, m.status.ShowingAll())
	require.Equal(t, collapsed, m.layout.status.Dy())
}
