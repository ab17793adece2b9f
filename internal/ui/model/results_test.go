package model

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"github.com/charmbracelet/taste/internal/capture"
	"github.com/charmbracelet/taste/internal/flavor"
	"github.com/charmbracelet/taste/internal/ui/common"
	"github.com/charmbracelet/taste/internal/ui/results"
	"github.com/charmbracelet/taste/internal/ui/styles"
)

func testCommon(t *testing.T) *common.Common {
	t.Helper()
	sty := styles.DefaultStyles()
	return &common.Common{Styles: &sty}
}

func newTestResults(t *testing.T) *Results {
	t.Helper()
	r := NewResults(testCommon(t), &common.Capabilities{})
	r.SetSize(80, 24)
	return r
}

func boundItems(t *testing.T, com *common.Common, items ...flavor.Item) []results.Item {
	t.Helper()
	return results.ItemsFor(com.Styles, items)
}

func TestResultsSetItemsBindsIDs(t *testing.T) {
	t.Parallel()

	r := newTestResults(t)
	bound := boundItems(t, r.com,
		flavor.Item{Type: flavor.TypePlain, Data: "hello"},
		flavor.Item{Type: flavor.TypeHTML, Data: "<p>hi</p>"},
	)
	r.SetItems(bound...)

	require.Equal(t, 2, r.Len())
	for _, item := range bound {
		require.Same(t, item, r.Item(item.ID()))
	}
	require.Nil(t, r.Item("unbound"))
}

func TestResultsReplacementDropsOldBindings(t *testing.T) {
	t.Parallel()

	r := newTestResults(t)
	first := boundItems(t, r.com,
		flavor.Item{Type: flavor.TypePlain, Data: "first"},
		flavor.Item{Type: flavor.TypePlain, Data: "second"},
	)
	r.SetItems(first...)

	second := boundItems(t, r.com,
		flavor.Item{Type: flavor.TypePlain, Data: "third"},
	)
	r.SetItems(second...)

	require.Equal(t, 1, r.Len())
	for _, item := range first {
		require.Nil(t, r.Item(item.ID()))
	}
	require.Same(t, second[0], r.Item(second[0].ID()))
}

func TestResultsVCardDecodeRoundTrip(t *testing.T) {
	t.Parallel()

	r := newTestResults(t)
	card := "BEGIN:VCARD\r\nVERSION:3.0\r\nFN:Ada Lovelace\r\nEND:VCARD\r\n"
	bound := boundItems(t, r.com,
		flavor.Item{Type: flavor.TypeVCard, File: []byte(card)},
	)

	cmd := r.SetItems(bound...)
	require.NotNil(t, cmd)

	msg, ok := cmd().(results.VCardDecodedMsg)
	require.True(t, ok)
	require.Equal(t, bound[0].ID(), msg.ID)
	require.NoError(t, msg.Err)

	require.Nil(t, r.Update(msg))

	rendered := ansi.Strip(bound[0].Render(80))
	require.Contains(t, rendered, "FN:Ada Lovelace")
	require.NotContains(t, rendered, "decoding vcard")
}

func TestResultsStaleDecodeDropped(t *testing.T) {
	t.Parallel()

	r := newTestResults(t)
	card := "BEGIN:VCARD\r\nVERSION:3.0\r\nFN:Stale\r\nEND:VCARD\r\n"
	first := boundItems(t, r.com,
		flavor.Item{Type: flavor.TypeVCard, File: []byte(card)},
	)
	cmd := r.SetItems(first...)
	require.NotNil(t, cmd)

	// Replace the snapshot before the decode lands. The completion now
	// carries an ID that is no longer bound.
	second := boundItems(t, r.com,
		flavor.Item{Type: flavor.TypePlain, Data: "replacement"},
	)
	r.SetItems(second...)

	stale := cmd().(results.VCardDecodedMsg)
	require.Nil(t, r.Update(stale))

	rendered := ansi.Strip(first[0].Render(80))
	require.Contains(t, rendered, "decoding vcard")
}

func TestResultsStaleImageDecodeDropped(t *testing.T) {
	t.Parallel()

	r := newTestResults(t)
	r.SetItems(boundItems(t, r.com,
		flavor.Item{Type: flavor.TypePlain, Data: "text"},
	)...)

	require.Nil(t, r.Update(results.ImageDecodedMsg{ID: "unbound"}))
}

func TestResultsHandleKeyMsgRoutesToFocusedItem(t *testing.T) {
	t.Parallel()

	r := newTestResults(t)
	r.SetItems(boundItems(t, r.com,
		flavor.Item{Type: flavor.TypePlain, Data: "some text"},
	)...)

	press := tea.KeyPressMsg{Code: 'p', Text: "p"}

	// Keys only reach items while the list is focused.
	handled, _ := r.HandleKeyMsg(press)
	require.False(t, handled)

	r.Focus()
	handled, cmd := r.HandleKeyMsg(press)
	require.True(t, handled)
	require.NotNil(t, cmd)
	require.Equal(t, results.ControlChangedMsg{}, cmd())
}

func TestCaptureSummary(t *testing.T) {
	t.Parallel()

	com := testCommon(t)

	require.Empty(t, captureSummary(com, nil))

	empty := &capture.Snapshot{Items: []flavor.Item{}}
	require.Equal(t, "nothing on clipboard", ansi.Strip(captureSummary(com, empty)))

	one := &capture.Snapshot{Items: []flavor.Item{
		{Type: flavor.TypePlain, Data: "a"},
	}}
	require.Equal(t, "1 item on clipboard", ansi.Strip(captureSummary(com, one)))

	two := &capture.Snapshot{Items: []flavor.Item{
		{Type: flavor.TypeHTML, Data: "<b>a</b>"},
		{Type: flavor.TypePlain, Data: "a"},
	}}
	require.Equal(t, "2 items on clipboard", ansi.Strip(captureSummary(com, two)))
}
