package results

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/taste/internal/flavor"
	"github.com/charmbracelet/taste/internal/ui/styles"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

func TestPlainTextFlowsByDefault(t *testing.T) {
	t.Parallel()

	sty := testStyles(t)
	item := NewItem(sty, 1, flavor.Item{Type: flavor.TypePlain, Data: "hi\r\nthere"})

	rendered := ansi.Strip(item.Render(80))
	require.Contains(t, rendered, "hi there")
	require.NotContains(t, rendered, "\r")
	require.Contains(t, rendered, styles.RadioOff+" Preformatted (p)")
}

func TestPlainTextPreformattedKeepsLines(t *testing.T) {
	t.Parallel()

	sty := testStyles(t)
	item := NewItem(sty, 1, flavor.Item{Type: flavor.TypePlain, Data: "hi\r\nthere"}).(*PlainTextItem)

	handled, cmd := item.HandleKeyEvent(tea.KeyPressMsg{Code: 'p', Text: "p"})
	require.True(t, handled)
	require.NotNil(t, cmd)
	require.Equal(t, ControlChangedMsg{}, cmd())
	require.True(t, item.Preformatted())

	rendered := ansi.Strip(item.Render(80))
	require.NotContains(t, rendered, "hi there")
	require.Contains(t, rendered, "hi")
	require.Contains(t, rendered, "there")
	require.NotContains(t, rendered, "\r")
	require.Contains(t, rendered, styles.RadioOn+" Preformatted (p)")
}

func TestPlainTextToggleRoundTrip(t *testing.T) {
	t.Parallel()

	sty := testStyles(t)
	const data = "hi\r\nthere"
	item := NewItem(sty, 1, flavor.Item{Type: flavor.TypePlain, Data: data}).(*PlainTextItem)

	before := item.Render(80)

	press := tea.KeyPressMsg{Code: 'p', Text: "p"}
	item.HandleKeyEvent(press)
	require.NotEqual(t, before, item.Render(80))

	item.HandleKeyEvent(press)
	require.Equal(t, before, item.Render(80))
	require.Equal(t, data, item.item.Data)
}

func TestPlainTextIgnoresOtherKeys(t *testing.T) {
	t.Parallel()

	sty := testStyles(t)
	item := NewItem(sty, 1, flavor.Item{Type: flavor.TypePlain, Data: "hi"}).(*PlainTextItem)

	handled, cmd := item.HandleKeyEvent(tea.KeyPressMsg{Code: 'x', Text: "x"})
	require.False(t, handled)
	require.Nil(t, cmd)
}

func TestPlainTextEscapesControlCharacters(t *testing.T) {
	t.Parallel()

	sty := testStyles(t)
	item := NewItem(sty, 1, flavor.Item{Type: flavor.TypePlain, Data: "safe\x1b[31mred"}).(*PlainTextItem)
	item.HandleKeyEvent(tea.KeyPressMsg{Code: 'p', Text: "p"})

	rendered := item.Render(80)
	require.NotContains(t, rendered, "\x1b[31m")
	require.Contains(t, ansi.Strip(rendered), "␛[31mred")
}
